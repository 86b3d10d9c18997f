package duplex

import (
	"strconv"
	"strings"

	"seguid-core/alphabet"
	"seguid-core/manip"
)

const blanks = " \t\r\v\f"

// 5'/3' end labels drawn around a strand.
var decorations = strings.NewReplacer("5'-", "   ", "3'-", "   ", "-3'", "   ", "-5'", "   ")

// FromText parses a two-line duplex diagram: watson 5'->3' on top, crick
// 3'->5' underneath, staggered with gap characters.
//
//	TATGCC--
//	--ACGGGG      Duplex{"TATGCC", "GGGGCA", -2}
//
// Lines whose first non-blank byte is '#' are comments and are dropped,
// unless '#' is the gap character. End labels (5'-, -3', ...), pairing bars
// and any other byte that is not a table symbol are ignored, as are blank
// lines and common indentation. Strands keep their case; either case of a
// table symbol validates. When the diagram contains no gap character the
// stagger is read from leading whitespace instead:
//
//	5'-TATGCC-3'
//	    |||||
//	 3'-catacg-5'
//
// A diagram that does not reduce to two strand lines is a *FormatError; a
// duplex that does not anneal fails as ValidateAnneal does.
func FromText(text string, table alphabet.Table, gap byte) (Duplex, error) {
	b := []byte(decorations.Replace(uncomment(text, gap)))
	for i, c := range b {
		if c == gap || c == '\n' || strings.IndexByte(blanks, c) >= 0 {
			continue
		}
		if !table.Has(c) && !table.Has(upper(c)) && !table.Has(lower(c)) {
			b[i] = ' '
		}
	}

	var lines []string
	for _, ln := range strings.Split(string(b), "\n") {
		if strings.TrimSpace(ln) != "" {
			lines = append(lines, ln)
		}
	}
	if len(lines) != 2 {
		return Duplex{}, &FormatError{Reason: "expected two strand lines, found " + strconv.Itoa(len(lines))}
	}
	dedent(lines)

	pads := string(gap)
	if !strings.Contains(lines[0]+lines[1], pads) {
		pads = blanks
	}
	var (
		strands [2]string
		leads   [2]int
	)
	for k, ln := range lines {
		ln = strings.TrimRight(ln, blanks+string(gap))
		s := strings.TrimLeft(ln, pads)
		if strings.ContainsAny(s, blanks+string(gap)) {
			return Duplex{}, &FormatError{Reason: "gap or space inside strand " + `"` + strings.TrimSpace(s) + `"`}
		}
		strands[k], leads[k] = s, len(ln)-len(s)
	}

	return New(strands[0], manip.Reverse(strands[1]), leads[0]-leads[1], table.WithLowercase())
}

// uncomment drops lines starting with '#' after optional blanks.
func uncomment(text string, gap byte) string {
	if gap == '#' {
		return text
	}
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, ln := range lines {
		if !strings.HasPrefix(strings.TrimLeft(ln, blanks), "#") {
			kept = append(kept, ln)
		}
	}
	return strings.Join(kept, "\n")
}

// ToText draws d as two lines with gap padding, validating it against
// alphabet.DNA first. Trailing whitespace is dropped.
func ToText(d Duplex, gap byte) (string, error) {
	return ToTextWith(d, alphabet.DNA, gap)
}

// ToTextWith is ToText validating against table.
func ToTextWith(d Duplex, table alphabet.Table, gap byte) (string, error) {
	if err := d.Validate(table); err != nil {
		return "", err
	}
	top, bottom := Layout(d, gap)
	return strings.TrimRight(top+"\n"+bottom, blanks+"\n"), nil
}

// dedent removes the longest whitespace prefix common to all lines.
func dedent(lines []string) {
	prefix := leadingBlanks(lines[0])
	for _, ln := range lines[1:] {
		ws := leadingBlanks(ln)
		n := 0
		for n < len(prefix) && n < len(ws) && prefix[n] == ws[n] {
			n++
		}
		prefix = prefix[:n]
	}
	for i := range lines {
		lines[i] = lines[i][len(prefix):]
	}
}

func leadingBlanks(s string) string {
	return s[:len(s)-len(strings.TrimLeft(s, blanks))]
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// Package duplex models a linear double-stranded molecule as a
// (watson, crick, overhang) triple and checks that the strands anneal.
//
// Both strands are stored 5'->3'. Overhang is the signed stagger of the 5'
// ends: positive when watson is recessed on the left, negative when crick
// is. Drawn with crick reversed underneath watson:
//
//	-TATGCC      Duplex{"TATGCC", "GCATAC", 1}
//	CATACG-
package duplex

import (
	"fmt"
	"strings"

	"seguid-core/alphabet"
	"seguid-core/manip"
)

// Duplex is a linear double-stranded molecule.
type Duplex struct {
	Watson   string
	Crick    string
	Overhang int
}

// New builds a Duplex and validates it against table.
func New(watson, crick string, overhang int, table alphabet.Table) (Duplex, error) {
	d := Duplex{Watson: watson, Crick: crick, Overhang: overhang}
	if err := d.Validate(table); err != nil {
		return Duplex{}, err
	}
	return d, nil
}

// Validate reports whether d anneals under table.
func (d Duplex) Validate(table alphabet.Table) error {
	return ValidateAnneal(d.Watson, d.Crick, d.Overhang, table)
}

// Swap returns the same molecule seen from the other strand.
func (d Duplex) Swap() Duplex {
	return Duplex{
		Watson:   d.Crick,
		Crick:    d.Watson,
		Overhang: len(d.Watson) - len(d.Crick) + d.Overhang,
	}
}

// Upper returns d with both strands uppercased.
func (d Duplex) Upper() Duplex {
	d.Watson = manip.Upper(d.Watson)
	d.Crick = manip.Upper(d.Crick)
	return d
}

// Less orders duplexes by watson, then crick, then overhang.
func (d Duplex) Less(o Duplex) bool {
	if d.Watson != o.Watson {
		return d.Watson < o.Watson
	}
	if d.Crick != o.Crick {
		return d.Crick < o.Crick
	}
	return d.Overhang < o.Overhang
}

// Layout pads both strands with gap so that, one above the other, they
// show the stagger. The bottom line is crick read 3'->5'. Both lines have
// the same width.
func Layout(d Duplex, gap byte) (top, bottom string) {
	lw, lc, o := len(d.Watson), len(d.Crick), d.Overhang
	g := string(gap)
	top = pad(g, o) + d.Watson + pad(g, -o+lc-lw)
	bottom = pad(g, -o) + manip.Reverse(d.Crick) + pad(g, o+lw-lc)
	return top, bottom
}

func pad(g string, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(g, n)
}

// ValidateAnneal checks that watson and crick base-pair over the region
// where both are defined, given overhang. Comparison ignores case.
//
// It fails with *RangeError unless -len(watson) < overhang < len(crick),
// with *alphabet.TableError or *alphabet.AlphabetError when the table or a
// strand is invalid, and with *AnnealError on the first mismatched pair.
func ValidateAnneal(watson, crick string, overhang int, table alphabet.Table) error {
	lw, lc := len(watson), len(crick)
	if overhang <= -lw || overhang >= lc {
		return &RangeError{Overhang: overhang, Watson: lw, Crick: lc}
	}
	if err := alphabet.ValidateTable(table); err != nil {
		return err
	}
	if err := alphabet.ValidateAlphabet(watson, table.Alphabet()); err != nil {
		return err
	}
	rc, err := manip.ReverseComplement(crick, table)
	if err != nil {
		return err
	}

	// watson[i] pairs with rc[i+overhang]
	from := max(0, -overhang)
	to := min(lw, lc-overhang)
	for i := from; i < to; i++ {
		a, b := watson[i], rc[i+overhang]
		if a != b && upper(a) != upper(b) {
			return &AnnealError{Position: i, Watson: a, Crick: crick[lc-1-(i+overhang)]}
		}
	}
	return nil
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}

// RangeError reports an overhang outside (-len(watson), len(crick)).
type RangeError struct {
	Overhang      int
	Watson, Crick int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("overhang %d out of range (%d, %d)", e.Overhang, -e.Watson, e.Crick)
}

// AnnealError reports the first position where the strands do not pair.
// Position indexes watson; Watson and Crick are the two unpaired symbols.
type AnnealError struct {
	Position      int
	Watson, Crick byte
}

func (e *AnnealError) Error() string {
	return fmt.Sprintf("mismatched basepairs: watson %q at %d does not pair with crick %q",
		e.Watson, e.Position, e.Crick)
}

// FormatError reports a text diagram that is not a two-line duplex.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return "duplex text: " + e.Reason
}

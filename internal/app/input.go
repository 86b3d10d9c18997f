package app

import (
	"context"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"seguid-core/alphabet"
	"seguid-core/chksum"
	"seguid-core/duplex"
	"seguid-core/manip"
)

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// readAll reads r to EOF, giving up when ctx is done. The reading
// goroutine is abandoned on cancellation; the process is about to exit.
func readAll(ctx context.Context, r io.Reader) (string, error) {
	type result struct {
		b   []byte
		err error
	}
	ch := make(chan result, 1)
	go func() {
		b, err := io.ReadAll(r)
		ch <- result{b, err}
	}()
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.err != nil {
			return "", ioError(res.err)
		}
		return string(res.b), nil
	}
}

// parseInput turns stdin text into a checksum input. Blank lines and lines
// starting with '#' are skipped. Single-stranded kinds take the first
// remaining line. Double-stranded kinds take a single line as a blunt
// duplex, or a two-line duplex diagram. extra counts the lines that were
// ignored.
func parseInput(kind chksum.Kind, text string, table alphabet.Table) (in chksum.Input, extra int, err error) {
	var lines []string
	for _, l := range strings.Split(text, "\n") {
		if l = strings.TrimSpace(l); l != "" && l[0] != '#' {
			lines = append(lines, l)
		}
	}

	switch {
	case len(lines) == 0:
		return chksum.Input{}, 0, nil
	case !kind.DoubleStranded():
		return chksum.Input{Watson: lines[0]}, len(lines) - 1, nil
	case len(lines) == 1:
		in, err := blunt(lines[0], table)
		return in, 0, err
	}

	d, err := duplex.FromText(text, table, chksum.Spacer)
	if err != nil {
		return chksum.Input{}, 0, err
	}
	return chksum.Input{Watson: d.Watson, Crick: d.Crick, Overhang: d.Overhang}, 0, nil
}

// blunt pairs watson with its reverse complement, the duplex a single
// strand line stands for.
func blunt(watson string, table alphabet.Table) (chksum.Input, error) {
	crick, err := manip.ReverseComplement(manip.Upper(watson), table)
	if err != nil {
		return chksum.Input{}, err
	}
	return chksum.Input{Watson: watson, Crick: crick}, nil
}

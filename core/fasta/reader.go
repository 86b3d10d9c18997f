// Package fasta streams records from FASTA text.
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"io"

	"github.com/pkg/errors"
)

// Record is one FASTA entry. ID is the first word of the header and
// Description the rest of it. Seq has line breaks and surrounding blanks
// removed; case is kept.
type Record struct {
	ID          string
	Description string
	Seq         []byte
}

// maxLine allows very long single-line sequences (64 MiB).
const maxLine = 64 * 1024 * 1024

// Stream parses FASTA from r and calls emit once per record, in input
// order. Blank lines and ';' comment lines are skipped. Sequence data
// before the first header is an error.
//
// Stream returns ctx.Err() promptly once ctx is done, and stops at the
// first error returned by emit.
func Stream(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		cur    *Record
		seq    = make([]byte, 0, 1<<16)
		lineNo int
	)
	flush := func() error {
		if cur == nil {
			return nil
		}
		cur.Seq = append([]byte(nil), seq...)
		seq = seq[:0]
		return emit(*cur)
	}

	for sc.Scan() {
		lineNo++
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 || line[0] == ';' {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			id, desc := parseHeader(line[1:])
			cur = &Record{ID: id, Description: desc}
			continue
		}
		if cur == nil {
			return errors.Errorf("fasta: line %d: sequence before first '>' header", lineNo)
		}
		seq = append(seq, line...)
	}
	if err := sc.Err(); err != nil {
		return errors.Wrapf(err, "fasta: line %d", lineNo+1)
	}
	return flush()
}

// StreamPath opens path with Open and streams it; "-" reads stdin.
func StreamPath(ctx context.Context, path string, stdin io.Reader, emit func(Record) error) error {
	rc, err := Open(path, stdin)
	if err != nil {
		return err
	}
	defer rc.Close()
	return errors.WithMessage(Stream(ctx, rc, emit), path)
}

func parseHeader(hdr []byte) (id, desc string) {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i]), string(bytes.TrimSpace(hdr[i+1:]))
	}
	return string(hdr), ""
}

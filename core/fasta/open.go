package fasta

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strings"
)

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Open opens a FASTA file for reading. "-" reads stdin, which is not closed
// by Close. Gzip input is detected by its magic number, or by a .gz suffix
// for files.
func Open(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "-" {
		return maybeGzip(stdin, io.NopCloser(stdin), false)
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	rc, err := maybeGzip(fh, fh, strings.HasSuffix(path, ".gz"))
	if err != nil {
		_ = fh.Close()
		return nil, err
	}
	return rc, nil
}

func maybeGzip(r io.Reader, c io.Closer, force bool) (io.ReadCloser, error) {
	br := bufio.NewReaderSize(r, 64*1024)
	sig, _ := br.Peek(2)
	if force || (len(sig) == 2 && sig[0] == 0x1f && sig[1] == 0x8b) {
		gr, err := gzip.NewReader(br)
		if err != nil {
			return nil, err
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, c}}, nil
	}
	return &multiReadCloser{Reader: br, closers: []io.Closer{c}}, nil
}

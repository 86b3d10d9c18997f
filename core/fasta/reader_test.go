package fasta

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const plain = `>seq1 first record
ACGT
acgt
>seq2
NNnn

; comment
>empty
>seq3	tab separated
GATT
ACA
`

func collect(t *testing.T, r io.Reader) []Record {
	t.Helper()
	var recs []Record
	err := Stream(context.Background(), r, func(rec Record) error {
		recs = append(recs, rec)
		return nil
	})
	if err != nil {
		t.Fatalf("stream: %v", err)
	}
	return recs
}

// writeGz creates a gzipped FASTA file with provided data, returns the file path.
func writeGz(t *testing.T, name, data string) string {
	path := filepath.Join(t.TempDir(), name)
	fh, err := os.Create(path)
	if err != nil {
		t.Fatalf("tmp: %v", err)
	}
	gw := gzip.NewWriter(fh)
	if _, err := gw.Write([]byte(data)); err != nil {
		t.Fatalf("write gz: %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("close gzip: %v", err)
	}
	if err := fh.Close(); err != nil {
		t.Fatalf("close file: %v", err)
	}
	return path
}

func TestStream(t *testing.T) {
	recs := collect(t, strings.NewReader(plain))
	want := []Record{
		{ID: "seq1", Description: "first record", Seq: []byte("ACGTacgt")},
		{ID: "seq2", Seq: []byte("NNnn")},
		{ID: "empty", Seq: []byte{}},
		{ID: "seq3", Description: "tab separated", Seq: []byte("GATTACA")},
	}
	if len(recs) != len(want) {
		t.Fatalf("got %d records, want %d", len(recs), len(want))
	}
	for i, w := range want {
		g := recs[i]
		if g.ID != w.ID || g.Description != w.Description || string(g.Seq) != string(w.Seq) {
			t.Fatalf("record %d: got %+v, want %+v", i, g, w)
		}
	}
}

func TestStream_CRLF(t *testing.T) {
	recs := collect(t, strings.NewReader(">a\r\nAC\r\nGT\r\n"))
	if len(recs) != 1 || string(recs[0].Seq) != "ACGT" {
		t.Fatalf("CRLF parse failed: %+v", recs)
	}
}

func TestStream_HeaderlessSequence(t *testing.T) {
	err := Stream(context.Background(), strings.NewReader("ACGT\n>a\nAC\n"), func(Record) error { return nil })
	if err == nil || !strings.Contains(err.Error(), "line 1") {
		t.Fatalf("expected a line 1 error, got %v", err)
	}
}

func TestStream_EmitErrorStops(t *testing.T) {
	stop := errors.New("stop")
	n := 0
	err := Stream(context.Background(), strings.NewReader(plain), func(Record) error {
		n++
		return stop
	})
	if !errors.Is(err, stop) || n != 1 {
		t.Fatalf("expected stop after one record, got n=%d err=%v", n, err)
	}
}

func TestStream_CancelImmediately_YieldsNoRecords(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // already canceled

	n := 0
	err := Stream(ctx, strings.NewReader(">s\nACGT\n"), func(Record) error {
		n++
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if n != 0 {
		t.Fatalf("expected 0 records due to immediate cancel, got %d", n)
	}
}

func TestStreamPathGzip(t *testing.T) {
	for _, name := range []string{"test.fa.gz", "test.fa"} {
		path := writeGz(t, name, plain)
		var ids []string
		err := StreamPath(context.Background(), path, nil, func(r Record) error {
			ids = append(ids, r.ID)
			return nil
		})
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if strings.Join(ids, ",") != "seq1,seq2,empty,seq3" {
			t.Fatalf("%s: gzip parse failed, ids=%v", name, ids)
		}
	}
}

func TestStreamPathMissing(t *testing.T) {
	err := StreamPath(context.Background(), filepath.Join(t.TempDir(), "nope.fa"), nil, func(Record) error { return nil })
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestSequenceBeforeHeader(t *testing.T) {
	err := Stream(context.Background(), strings.NewReader("ACGT\n>x\nAC\n"), func(Record) error { return nil })
	if err == nil || !strings.Contains(err.Error(), "line 1: sequence before first '>' header") {
		t.Fatalf("expected header error, got %v", err)
	}
	// %+v prints the stack recorded where the error was made
	if s := fmt.Sprintf("%+v", err); !strings.Contains(s, "fasta.Stream") {
		t.Fatalf("expected a stack trace, got %q", s)
	}
}

func TestOpenStdin(t *testing.T) {
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	_, _ = io.WriteString(gw, plain)
	_ = gw.Close()

	rc, err := Open("-", &buf)
	if err != nil {
		t.Fatalf("open stdin: %v", err)
	}
	defer rc.Close()
	if n := len(collect(t, rc)); n != 4 {
		t.Fatalf("expected 4 records from gzipped stdin, got %d", n)
	}
}

func TestStreamPathStdin(t *testing.T) {
	var ids []string
	err := StreamPath(context.Background(), "-", strings.NewReader(plain), func(r Record) error {
		ids = append(ids, r.ID)
		return nil
	})
	if err != nil {
		t.Fatalf("stream stdin: %v", err)
	}
	if strings.Join(ids, ",") != "seq1,seq2,empty,seq3" {
		t.Fatalf("stdin parse failed, ids=%v", ids)
	}
}

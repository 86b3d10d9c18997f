package writers

import (
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"seguid/pkg/api"
)

// Options are shared by every format.
type Options struct {
	Header  bool // column header line (tsv)
	Message bool // write the canonical message instead of the checksum
}

// Func drains in and writes every result to w.
type Func func(w io.Writer, in <-chan api.ChecksumV1, o Options) error

var (
	mu       sync.RWMutex
	registry = map[string]Func{}
)

// Register adds or replaces the writer for format.
func Register(format string, fn Func) {
	mu.Lock()
	defer mu.Unlock()
	registry[strings.ToLower(format)] = fn
}

// Formats lists the registered format names in sorted order.
func Formats() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Lookup returns the writer registered for format.
func Lookup(format string) (Func, error) {
	mu.RLock()
	fn, ok := registry[strings.ToLower(format)]
	mu.RUnlock()
	if !ok {
		return nil, errors.Errorf("unknown output format %q (want %s)", format, strings.Join(Formats(), "|"))
	}
	return fn, nil
}

// Start spins up a writer goroutine for format. Send results on the
// returned channel, close it, then receive the writer's error. The
// goroutine keeps draining the channel after a write error so senders
// never block.
func Start(out io.Writer, format string, o Options, bufSize int) (chan<- api.ChecksumV1, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan api.ChecksumV1, bufSize)
	done := make(chan error, 1)

	fn, err := Lookup(format)
	go func() {
		if err == nil {
			err = fn(out, in, o)
		}
		for range in {
		}
		done <- err
	}()
	return in, done
}

func init() {
	Register("text", writeText)
	Register("tsv", writeTSV)
	Register("json", writeJSON)
	Register("jsonl", writeJSONL)
}

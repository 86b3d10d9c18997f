// Package batch checksums FASTA records on a bounded worker group and
// hands the results back in input order.
package batch

import (
	"context"
	"io"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"seguid-core/fasta"
)

// Job is one record and the file it came from.
type Job struct {
	Index      int
	SourceFile string
	Record     fasta.Record
}

// Source streams jobs to emit until the input is exhausted, ctx is done or
// emit fails.
type Source func(ctx context.Context, emit func(Job) error) error

// Files streams every record of paths in order; "-" reads stdin.
func Files(stdin io.Reader, paths ...string) Source {
	return func(ctx context.Context, emit func(Job) error) error {
		n := 0
		for _, p := range paths {
			err := fasta.StreamPath(ctx, p, stdin, func(rec fasta.Record) error {
				j := Job{Index: n, SourceFile: p, Record: rec}
				n++
				return emit(j)
			})
			if err != nil {
				return err
			}
		}
		return nil
	}
}

// Reader streams the records of r, reporting name as their source.
func Reader(name string, r io.Reader) Source {
	return func(ctx context.Context, emit func(Job) error) error {
		n := 0
		return fasta.Stream(ctx, r, func(rec fasta.Record) error {
			j := Job{Index: n, SourceFile: name, Record: rec}
			n++
			return emit(j)
		})
	}
}

// Config controls the worker group.
type Config struct {
	Threads int // concurrent workers; 0 = all CPUs
}

type outcome[T any] struct {
	v   T
	err error
}

// Run applies fn to every job of src on up to cfg.Threads goroutines and
// calls emit with the results in input order. The first error, from src,
// fn or emit, cancels the remaining work and is returned; an fn error is
// wrapped with the record id.
func Run[T any](ctx context.Context, cfg Config, src Source, fn func(Job) (T, error), emit func(T) error) error {
	threads := cfg.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)

	// One slot per job, queued in input order; the sequencer below waits on
	// each in turn.
	slots := make(chan chan outcome[T], threads*2)
	sequenced := make(chan error, 1)
	go func() {
		var first error
		for slot := range slots {
			o := <-slot
			if first != nil {
				continue
			}
			if o.err == nil && ctx.Err() != nil {
				o.err = ctx.Err()
			}
			if o.err == nil {
				o.err = emit(o.v)
			}
			if o.err != nil {
				first = o.err
				cancel()
			}
		}
		sequenced <- first
	}()

	srcErr := src(gctx, func(j Job) error {
		slot := make(chan outcome[T], 1)
		select {
		case slots <- slot:
		case <-gctx.Done():
			return gctx.Err()
		}
		g.Go(func() error {
			// ctx, not gctx: a later failure must not void earlier results.
			if err := ctx.Err(); err != nil {
				slot <- outcome[T]{err: err}
				return err
			}
			v, err := fn(j)
			if err != nil {
				err = errors.Wrapf(err, "record %s", j.Record.ID)
			}
			slot <- outcome[T]{v: v, err: err}
			return err
		})
		return nil
	})
	groupErr := g.Wait()
	close(slots)
	seqErr := <-sequenced

	errs := []error{seqErr, groupErr, srcErr}
	for _, err := range errs {
		if err != nil && !isCanceled(err) {
			return err
		}
	}
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func isCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

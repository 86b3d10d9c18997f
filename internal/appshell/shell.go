// Package appshell is the process entry point shared by the commands.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// Main runs run with a context cancelled on SIGINT or SIGTERM and exits
// with its code. No arguments means "read stdin", so argv is passed as is.
func Main(run func(context.Context, []string, io.Writer, io.Writer) int) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := normalize(ctx, run(ctx, os.Args[1:], os.Stdout, os.Stderr))
	// stop cancels ctx, so the code is settled first.
	stop()
	os.Exit(code)
}

// normalize reports 130 for a run that was interrupted but claims success.
func normalize(ctx context.Context, code int) int {
	if ctx.Err() != nil && code == 0 {
		return 130
	}
	return code
}

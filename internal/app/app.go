// internal/app/app.go
package app

import (
	"context"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"seguid/internal/logging"
	"seguid/internal/writers"
)

// env is what a run may touch outside its arguments.
type env struct {
	stdin          io.Reader
	stdout, stderr io.Writer
	lookupEnv      func(string) (string, bool)
	log            *logrus.Logger
}

// RunContext runs the seguid command reading stdin from the process and
// returns its exit code.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	return RunIO(ctx, argv, os.Stdin, stdout, stderr)
}

// RunIO is RunContext with an explicit stdin.
func RunIO(ctx context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	e := &env{
		stdin:     stdin,
		stdout:    stdout,
		stderr:    stderr,
		lookupEnv: os.LookupEnv,
		log:       logging.New(stderr, logrus.InfoLevel),
	}
	return e.execute(ctx, argv)
}

func (e *env) execute(ctx context.Context, argv []string) int {
	cmd := newRootCmd(e)
	cmd.SetArgs(argv)
	err := cmd.ExecuteContext(ctx)
	code := exitCode(err)
	if code == exitOK && ctx.Err() != nil {
		code = exitInterrupted
	}
	switch {
	case writers.IsBrokenPipe(err):
		code = exitOK
	case code == exitInterrupted:
		e.log.Warn("interrupted")
	case err != nil:
		e.log.Error(err.Error())
		if code == exitUsage {
			e.log.Info("run 'seguid --help' for usage")
		}
	}
	return code
}

// Run is RunContext without cancellation.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

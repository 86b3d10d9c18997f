package app

import (
	"context"
	"io/fs"

	"github.com/pkg/errors"
)

// Exit codes.
const (
	exitOK          = 0
	exitInvalid     = 1 // a sequence or duplex failed validation
	exitUsage       = 2 // bad flags, settings or arguments
	exitIO          = 3 // reading input or writing output failed
	exitInterrupted = 130
)

type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }
func (e *exitError) Cause() error  { return e.err }

func usageError(err error) error {
	if err == nil {
		return nil
	}
	return &exitError{code: exitUsage, err: err}
}

func ioError(err error) error {
	if err == nil {
		return nil
	}
	return &exitError{code: exitIO, err: err}
}

// exitCode maps a run error to the process exit code. Errors that carry no
// code are validation failures unless they come from the file system.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	if errors.Is(err, context.Canceled) {
		return exitInterrupted
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return exitIO
	}
	return exitInvalid
}

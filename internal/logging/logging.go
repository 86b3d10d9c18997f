// Package logging builds the command's logrus logger. Diagnostics go to
// stderr so stdout carries only checksums.
package logging

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// New returns a text logger writing to w at level.
func New(w io.Writer, level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp:       true,
		DisableLevelTruncation: true,
		DisableColors:          true,
	})
	return l
}

// Level maps the quiet/verbose switches to a level. Quiet wins.
func Level(quiet, verbose bool) logrus.Level {
	switch {
	case quiet:
		return logrus.ErrorLevel
	case verbose:
		return logrus.DebugLevel
	}
	return logrus.InfoLevel
}

// ParseLevel accepts logrus level names ("warn", "debug", ...).
func ParseLevel(s string) (logrus.Level, error) {
	l, err := logrus.ParseLevel(strings.TrimSpace(s))
	if err != nil {
		return logrus.InfoLevel, errors.Wrap(err, "log level")
	}
	return l, nil
}

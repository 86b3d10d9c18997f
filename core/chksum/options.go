package chksum

import (
	"seguid-core/alphabet"
	"seguid-core/rotation"
)

// Option tunes a checksum call.
type Option func(*settings)

type settings struct {
	table   alphabet.Table
	backend rotation.Backend
	lenient bool
}

// WithTable validates against t instead of alphabet.DNA.
func WithTable(t alphabet.Table) Option {
	return func(s *settings) { s.table = t }
}

// WithBackend uses b for minimum rotations instead of the process-wide
// backend.
func WithBackend(b rotation.Backend) Option {
	return func(s *settings) { s.backend = b }
}

// Lenient skips alphabet validation. Only the legacy SEGUID honours it.
func Lenient() Option {
	return func(s *settings) { s.lenient = true }
}

func newSettings(opts []Option) settings {
	s := settings{table: alphabet.DNA}
	for _, o := range opts {
		o(&s)
	}
	if s.backend == nil {
		s.backend = rotation.Current()
	}
	return s
}

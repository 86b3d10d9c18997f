// Package manip implements strand manipulation: reverse, complement,
// reverse complement and rotation of one or two paired strands.
package manip

import (
	"strconv"

	"seguid-core/alphabet"
)

// Reverse returns seq with its symbols in opposite order.
func Reverse(seq string) string {
	n := len(seq)
	if n == 0 {
		return seq
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = seq[n-1-i]
	}
	return string(out)
}

// Complement maps each symbol of seq through table. The table and the
// sequence are validated first.
func Complement(seq string, table alphabet.Table) (string, error) {
	if err := alphabet.ValidateTable(table); err != nil {
		return "", err
	}
	if err := alphabet.ValidateAlphabet(seq, table.Alphabet()); err != nil {
		return "", err
	}
	out := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		out[i], _ = table.Complement(seq[i])
	}
	return string(out), nil
}

// ReverseComplement is Reverse(Complement(seq, table)) in a single pass.
func ReverseComplement(seq string, table alphabet.Table) (string, error) {
	if err := alphabet.ValidateTable(table); err != nil {
		return "", err
	}
	if err := alphabet.ValidateAlphabet(seq, table.Alphabet()); err != nil {
		return "", err
	}
	n := len(seq)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i], _ = table.Complement(seq[n-1-i])
	}
	return string(out), nil
}

// Upper maps ASCII a-z to A-Z and leaves every other byte alone.
func Upper(seq string) string {
	i := 0
	for i < len(seq) && !isLower(seq[i]) {
		i++
	}
	if i == len(seq) {
		return seq
	}
	out := []byte(seq)
	for ; i < len(out); i++ {
		if isLower(out[i]) {
			out[i] -= 'a' - 'A'
		}
	}
	return string(out)
}

func isLower(b byte) bool { return b >= 'a' && b <= 'z' }

/* ------------------------- lenient (legacy) mode ------------------------ */

// ComplementLenient complements seq without validation. Symbols missing
// from the table are passed through unchanged.
//
// Only the legacy checksum path uses this, and only on request: a silently
// translated symbol yields a plausible but wrong checksum.
func ComplementLenient(seq string, table alphabet.Table) string {
	out := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		out[i] = lenient(table, seq[i])
	}
	return string(out)
}

// ReverseComplementLenient is the lenient counterpart of ReverseComplement.
func ReverseComplementLenient(seq string, table alphabet.Table) string {
	n := len(seq)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = lenient(table, seq[n-1-i])
	}
	return string(out)
}

func lenient(t alphabet.Table, b byte) byte {
	if c, ok := t.Complement(b); ok {
		return c
	}
	return b
}

/* ------------------------------- rotation ------------------------------- */

// Rotate returns seq rotated so that it starts at offset amount:
// Rotate(s, k) == s[k:] + s[:k] for 0 <= k < len(s). Any integer amount is
// accepted and taken modulo len(seq).
func Rotate(seq string, amount int) string {
	n := len(seq)
	if n == 0 {
		return seq
	}
	k := mod(amount, n)
	if k == 0 {
		return seq
	}
	return seq[k:] + seq[:k]
}

// RotatePair rotates a circular duplex as a rigid body: watson by amount,
// crick by len-amount, so the strands stay in register. crick may be empty
// for a single strand.
func RotatePair(watson, crick string, amount int) (string, string, error) {
	n := len(watson)
	if crick != "" && len(crick) != n {
		return "", "", &LengthMismatchError{Watson: n, Crick: len(crick)}
	}
	if n == 0 {
		return watson, crick, nil
	}
	k := mod(amount, n)
	if crick == "" {
		return Rotate(watson, k), crick, nil
	}
	return Rotate(watson, k), Rotate(crick, n-k), nil
}

func mod(a, n int) int {
	a %= n
	if a < 0 {
		a += n
	}
	return a
}

// LengthMismatchError reports strands of unequal length where equal length
// is required (circular duplexes).
type LengthMismatchError struct {
	Watson, Crick int
}

func (e *LengthMismatchError) Error() string {
	return "strand lengths differ: watson " + strconv.Itoa(e.Watson) + ", crick " + strconv.Itoa(e.Crick)
}

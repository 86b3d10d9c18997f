package alphabet

import (
	"strconv"
	"strings"
)

// Set is an unordered set of symbols.
type Set struct {
	has [256]bool
}

// NewSet returns the set of bytes in symbols.
func NewSet(symbols string) Set {
	var s Set
	for i := 0; i < len(symbols); i++ {
		s.has[symbols[i]] = true
	}
	return s
}

// Contains reports whether b is in the set.
func (s Set) Contains(b byte) bool { return s.has[b] }

// Len is the number of distinct symbols.
func (s Set) Len() int {
	n := 0
	for _, ok := range s.has {
		if ok {
			n++
		}
	}
	return n
}

// Union returns a set holding the members of both sets.
func (s Set) Union(o Set) Set {
	for i, ok := range o.has {
		if ok {
			s.has[i] = true
		}
	}
	return s
}

// ValidateAlphabet fails with *AlphabetError when seq holds a symbol that is
// not in alphabet. Empty sequences always pass.
func ValidateAlphabet(seq string, alphabet Set) error {
	if len(seq) == 0 {
		return nil
	}
	if alphabet.Len() == 0 {
		return &TableError{Reason: "alphabet is empty"}
	}
	var (
		seen    [256]bool
		unknown []byte
	)
	for i := 0; i < len(seq); i++ {
		b := seq[i]
		if alphabet.has[b] || seen[b] {
			continue
		}
		seen[b] = true
		unknown = append(unknown, b)
	}
	if len(unknown) > 0 {
		return &AlphabetError{Symbols: unknown}
	}
	return nil
}

// ValidateTable fails with *TableError if any complement is not itself a key,
// i.e. if the table cannot translate in both directions.
func ValidateTable(t Table) error {
	if t.Len() == 0 {
		return &TableError{Reason: "table is empty"}
	}
	var missing []byte
	var seen [256]bool
	for k, ok := range t.has {
		if !ok {
			continue
		}
		v := t.comp[k]
		if !t.has[v] && !seen[v] {
			seen[v] = true
			missing = append(missing, v)
		}
	}
	if len(missing) > 0 {
		return &TableError{Missing: missing, Reason: "values " + joinSymbols(missing) + " are not keys"}
	}
	return nil
}

// AlphabetError reports symbols outside the allowed alphabet.
type AlphabetError struct {
	Symbols []byte // distinct offending symbols, first-seen order
}

func (e *AlphabetError) Error() string {
	return "symbols " + joinSymbols(e.Symbols) + " not in alphabet"
}

// TableError reports a malformed complement table.
type TableError struct {
	Missing []byte
	Reason  string
}

func (e *TableError) Error() string {
	return "invalid table: " + e.Reason
}

func joinSymbols(bs []byte) string {
	parts := make([]string, len(bs))
	for i, b := range bs {
		parts[i] = strconv.Quote(string([]byte{b}))
	}
	return strings.Join(parts, " ")
}


// Package alphabet holds the symbol complement tables and the validators that
// guard every sequence entering the checksum core.
//
// A Table is a value type backed by fixed 256-entry arrays, so copies are
// cheap and the built-in tables cannot be mutated by callers.
package alphabet

import (
	"sort"
	"strconv"
	"strings"
)

// Table maps a symbol to its complement symbol.
type Table struct {
	name string
	comp [256]byte
	has  [256]bool
}

/* ------------------------------ built-ins ------------------------------ */

// DNA is the unambiguous DNA table (GATC). It is the default everywhere.
var DNA = mustPairs("dna", "GATC", "CTAG")

// RNA is the unambiguous RNA table (GAUC).
var RNA = mustPairs("rna", "GAUC", "CUAG")

// IUPAC is the ambiguous DNA table (Cornish-Bowden, 1985).
//
//	G A T C  R Y  M K  S W  H D  B V  N
//	C T A G  Y R  K M  S W  D H  V B  N
var IUPAC = mustPairs("iupac", "ACGTRYSWKMBDHVN", "TGCAYRSWMKVHDBN")

// Protein covers the 20 standard amino acids. Every symbol maps to itself:
// the table only exists for alphabet membership checks.
var Protein = mustPairs("protein", "ACDEFGHIKLMNPQRSTVWY", "ACDEFGHIKLMNPQRSTVWY")

var builtins = map[string]Table{
	"dna":     DNA,
	"rna":     RNA,
	"iupac":   IUPAC,
	"protein": Protein,
}

// Lookup returns a built-in table by name (case-insensitive).
func Lookup(name string) (Table, error) {
	if t, ok := builtins[strings.ToLower(strings.TrimSpace(name))]; ok {
		return t, nil
	}
	return Table{}, &TableError{Reason: "unknown table " + strconv.Quote(name) + "; known: " + strings.Join(Names(), ", ")}
}

// Names lists the built-in table names in sorted order.
func Names() []string {
	out := make([]string, 0, len(builtins))
	for k := range builtins {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

/* ----------------------------- construction ---------------------------- */

// FromPairs builds a table mapping keys[i] to values[i], in the manner of a
// translation table. It does not check that the table is closed; run
// ValidateTable for that.
func FromPairs(name, keys, values string) (Table, error) {
	if len(keys) != len(values) {
		return Table{}, &TableError{Reason: "keys and values differ in length"}
	}
	t := Table{name: name}
	for i := 0; i < len(keys); i++ {
		t.comp[keys[i]] = values[i]
		t.has[keys[i]] = true
	}
	return t, nil
}

// FromMap builds a table from a symbol map.
func FromMap(name string, m map[byte]byte) Table {
	t := Table{name: name}
	for k, v := range m {
		t.comp[k] = v
		t.has[k] = true
	}
	return t
}

func mustPairs(name, keys, values string) Table {
	t, err := FromPairs(name, keys, values)
	if err != nil {
		panic(err)
	}
	return t
}

// WithLowercase returns a case-preserving copy: every uppercase key also
// gets a lowercase key mapped to the lowercase complement.
func (t Table) WithLowercase() Table {
	out := t
	for k := 'A'; k <= 'Z'; k++ {
		if !t.has[k] {
			continue
		}
		lk := byte(k) + ('a' - 'A')
		v := t.comp[k]
		if v >= 'A' && v <= 'Z' {
			v += 'a' - 'A'
		}
		out.comp[lk] = v
		out.has[lk] = true
	}
	return out
}

// With returns a copy extended with symbols that complement to themselves.
func (t Table) With(symbols ...byte) Table {
	out := t
	for _, s := range symbols {
		out.comp[s] = s
		out.has[s] = true
	}
	return out
}

/* ------------------------------- queries ------------------------------- */

// Name is the table's label, empty for anonymous tables.
func (t Table) Name() string { return t.name }

// Complement returns the complement of b and whether b is a key.
func (t Table) Complement(b byte) (byte, bool) {
	return t.comp[b], t.has[b]
}

// Has reports whether b is a key of the table.
func (t Table) Has(b byte) bool { return t.has[b] }

// Len is the number of keys.
func (t Table) Len() int {
	n := 0
	for _, ok := range t.has {
		if ok {
			n++
		}
	}
	return n
}

// Keys returns the key symbols in byte order.
func (t Table) Keys() string {
	var b strings.Builder
	for i, ok := range t.has {
		if ok {
			b.WriteByte(byte(i))
		}
	}
	return b.String()
}

// Alphabet returns the key set of the table.
func (t Table) Alphabet() Set {
	return Set{has: t.has}
}

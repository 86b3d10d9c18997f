// Package rotation computes the offset of the lexicographically smallest
// rotation of a string. Symbols compare by byte value, so uppercase sorts
// before lowercase and no case folding happens here.
//
// The algorithm is pluggable. The process-wide backend is chosen once at
// startup (Use or SetBackend) and read by every checksum afterwards.
package rotation

import (
	"sort"
	"strings"
	"sync"

	"seguid-core/manip"
)

// Backend computes the start offset of the minimum rotation of s. Every
// backend must return exactly what Duval returns.
type Backend interface {
	MinRotation(s string) int
}

// Registered backend names.
const (
	BuiltinName = "builtin"
	BoothName   = "booth"
)

var (
	mu       sync.RWMutex
	current  Backend = Duval{}
	registry         = map[string]Backend{}
	aliases          = map[string]string{
		"built-in": BuiltinName,
		"duval":    BuiltinName,
		"":         BuiltinName,
	}
)

// Current returns the selected backend.
func Current() Backend {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// SetBackend selects b for the whole process. A nil b restores the
// built-in backend.
func SetBackend(b Backend) {
	if b == nil {
		b = Duval{}
	}
	mu.Lock()
	current = b
	mu.Unlock()
}

func init() {
	Register(BuiltinName, Duval{})
	Register(BoothName, Booth{})
}

// Register adds or replaces a named backend. Names are case-insensitive.
func Register(name string, b Backend) {
	mu.Lock()
	registry[strings.ToLower(name)] = b
	mu.Unlock()
}

// Names lists the registered backends in sorted order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Lookup resolves a backend by name without selecting it.
func Lookup(name string) (Backend, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if a, ok := aliases[key]; ok {
		key = a
	}
	mu.RLock()
	defer mu.RUnlock()
	b, ok := registry[key]
	return b, ok
}

// Use selects the named backend. When the name is unknown, or the backend
// disagrees with the built-in algorithm on the probe strings, the built-in
// backend is selected instead and an *UnavailableError is returned so the
// caller can warn and carry on.
func Use(name string) (Backend, error) {
	b, ok := Lookup(name)
	if !ok {
		SetBackend(Duval{})
		return Duval{}, &UnavailableError{Name: name, Reason: "not registered; known: " + strings.Join(Names(), ", ")}
	}
	if probe := selfCheck(b); probe != "" {
		SetBackend(Duval{})
		return Duval{}, &UnavailableError{Name: name, Reason: "disagrees with the built-in algorithm on " + probe}
	}
	SetBackend(b)
	return b, nil
}

// probes exercise ordering (uppercase before lowercase), periodic input and
// the empty string.
var probes = []string{
	"", "Aa", "taaa", "TAAA", "ABAB", "aaaa",
	"ACAACAAACAACACAAACAAACACAAC",
	"abaabaaabaababaaabaaaBabaab",
	"GATACCAGATACCA",
}

func selfCheck(b Backend) string {
	var ref Duval
	for _, p := range probes {
		if b.MinRotation(p) != ref.MinRotation(p) {
			return `"` + p + `"`
		}
	}
	return ""
}

// MinRotation returns the minimum rotation offset of s using the selected
// backend.
func MinRotation(s string) int {
	return Current().MinRotation(s)
}

// RotateToMin rotates watson to its minimum rotation and crick along with
// it. crick may be empty.
func RotateToMin(watson, crick string) (string, string, error) {
	return RotateToMinWith(Current(), watson, crick)
}

// RotateToMinWith is RotateToMin with an explicit backend.
func RotateToMinWith(b Backend, watson, crick string) (string, string, error) {
	return manip.RotatePair(watson, crick, b.MinRotation(watson))
}

// UnavailableError reports a backend that cannot be selected.
type UnavailableError struct {
	Name   string
	Reason string
}

func (e *UnavailableError) Error() string {
	return "min-rotation backend " + `"` + e.Name + `"` + " unavailable: " + e.Reason
}

package chksum

import (
	"seguid-core/alphabet"
	"seguid-core/duplex"
	"seguid-core/manip"
	"seguid-core/rotation"
)

// Characters of the two-line double-stranded message.
const (
	Spacer    byte = '-'
	Separator byte = '\n'
)

// LinearMessage is the canonical form of a linear single strand: seq
// uppercased, validated against table.
func LinearMessage(seq string, table alphabet.Table) (string, error) {
	msg := manip.Upper(seq)
	if err := alphabet.ValidateAlphabet(msg, table.Alphabet()); err != nil {
		return "", err
	}
	return msg, nil
}

// CircularMessage is LinearMessage rotated to its minimum rotation. Case is
// folded before the rotation is chosen.
func CircularMessage(seq string, table alphabet.Table, b rotation.Backend) (string, error) {
	msg, err := LinearMessage(seq, table)
	if err != nil {
		return "", err
	}
	return manip.Rotate(msg, b.MinRotation(msg)), nil
}

// DuplexMessage is the canonical form of a linear duplex. Of the two
// orientations, (watson, crick, overhang) and its Swap, the smaller one is
// drawn with Spacer padding and the lines joined by Separator:
//
//	DuplexMessage("TATGCC", "GCATAC", 1) == "-GCATAC\nCCGTAT-"
//
// A palindromic duplex has equal orientations and keeps the given one.
func DuplexMessage(watson, crick string, overhang int, table alphabet.Table) (string, error) {
	d := duplex.Duplex{Watson: watson, Crick: crick, Overhang: overhang}.Upper()
	if err := d.Validate(table); err != nil {
		return "", err
	}
	if s := d.Swap(); s.Less(d) {
		d = s
	}
	top, bottom := duplex.Layout(d, Spacer)
	return LinearMessage(top+string(Separator)+bottom, table.With(Spacer, Separator))
}

// CircularDuplexMessage is the canonical form of a circular duplex. Both
// strands must have the same length and pair at overhang 0. Each strand is
// rotated to its own minimum with the other strand following, the smaller
// pair wins and is drawn as a blunt linear duplex.
func CircularDuplexMessage(watson, crick string, table alphabet.Table, b rotation.Backend) (string, error) {
	if len(watson) != len(crick) {
		return "", &LengthMismatchError{Watson: len(watson), Crick: len(crick)}
	}
	w, c := manip.Upper(watson), manip.Upper(crick)
	if err := duplex.ValidateAnneal(w, c, 0, table); err != nil {
		return "", err
	}

	w1, c1, err := manip.RotatePair(w, c, b.MinRotation(w))
	if err != nil {
		return "", err
	}
	w2, c2, err := manip.RotatePair(c, w, b.MinRotation(c))
	if err != nil {
		return "", err
	}
	if w2 < w1 || (w2 == w1 && c2 < c1) {
		w1, c1 = w2, c2
	}
	return DuplexMessage(w1, c1, 0, table)
}

// LengthMismatchError reports circular strands of unequal length.
type LengthMismatchError = manip.LengthMismatchError

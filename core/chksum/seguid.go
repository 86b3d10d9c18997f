package chksum

import (
	"github.com/pkg/errors"

	"seguid-core/manip"
)

// SEGUID is the original checksum of Babnigg & Giometti (2006): the
// standard Base64 SHA-1 digest of the uppercased sequence. Proteins need
// WithTable(alphabet.Protein).
//
//	SEGUID("AT") == "seguid:Ax/RG6hzSrMEEWoCO1IWMGska+4"
//
// Prefer SLSEGUID for new identifiers; '+' and '/' are not URL safe.
func SEGUID(seq string, opts ...Option) (string, error) {
	return render(KindSEGUID, Input{Watson: seq}, opts)
}

// SLSEGUID checksums a single-stranded linear sequence.
//
//	SLSEGUID("AT") == "slseguid:Ax_RG6hzSrMEEWoCO1IWMGska-4"
func SLSEGUID(seq string, opts ...Option) (string, error) {
	return render(KindSL, Input{Watson: seq}, opts)
}

// SCSEGUID checksums a single-stranded circular sequence: the SLSEGUID
// digest of its minimum rotation, so every rotation has the same checksum.
//
//	SCSEGUID("ATTT") == SCSEGUID("TTTA") == "scseguid:ot6JPLeAeMmfztW1736Kc6DAqlo"
func SCSEGUID(seq string, opts ...Option) (string, error) {
	return render(KindSC, Input{Watson: seq}, opts)
}

// DLSEGUID checksums a linear duplex. Both strands are given 5'->3';
// overhang is the stagger of the 5' ends (see package duplex). Either
// strand may be passed as watson.
//
//	DLSEGUID("TATGCC", "GCATAC", 1) == "dlseguid:E7YtPGWjj3qCaPzWurlYBaJy_X4"
func DLSEGUID(watson, crick string, overhang int, opts ...Option) (string, error) {
	return render(KindDL, Input{Watson: watson, Crick: crick, Overhang: overhang}, opts)
}

// DCSEGUID checksums a circular duplex. It does not depend on the strand
// passed as watson or on where the circle was opened.
func DCSEGUID(watson, crick string, opts ...Option) (string, error) {
	return render(KindDC, Input{Watson: watson, Crick: crick}, opts)
}

// Input describes a molecule for Compute and Message. Single-stranded
// kinds read only Watson; Overhang is read only by KindDL. Double-stranded
// kinds validate both strands exactly as given.
type Input struct {
	Watson   string
	Crick    string
	Overhang int
}

// Compute checksums in as kind.
func Compute(kind Kind, in Input, opts ...Option) (Result, error) {
	msg, err := Message(kind, in, opts...)
	if err != nil {
		return Result{}, err
	}
	return Result{Kind: kind, Digest: Encode(msg, kind.URLSafe())}, nil
}

// Message returns the canonical message that Compute hashes.
func Message(kind Kind, in Input, opts ...Option) (string, error) {
	s := newSettings(opts)
	msg, err := message(kind, in, s)
	if err != nil {
		return "", errors.WithMessage(err, string(kind))
	}
	return msg, nil
}

func message(kind Kind, in Input, s settings) (string, error) {
	switch kind {
	case KindSEGUID:
		if s.lenient {
			return manip.Upper(in.Watson), nil
		}
		return LinearMessage(in.Watson, s.table)
	case KindSL:
		return LinearMessage(in.Watson, s.table)
	case KindSC:
		return CircularMessage(in.Watson, s.table, s.backend)
	case KindDL:
		return DuplexMessage(in.Watson, in.Crick, in.Overhang, s.table)
	case KindDC:
		return CircularDuplexMessage(in.Watson, in.Crick, s.table, s.backend)
	}
	return "", errors.Errorf("unknown checksum type %q", string(kind))
}

func render(kind Kind, in Input, opts []Option) (string, error) {
	r, err := Compute(kind, in, opts...)
	if err != nil {
		return "", err
	}
	return r.String(), nil
}

package chksum

import (
	"crypto/sha1"
	"encoding/base64"
	"strings"

	"github.com/pkg/errors"
)

// Kind names a checksum variant. Its string form is the checksum prefix.
type Kind string

const (
	KindSEGUID Kind = "seguid"   // legacy, standard Base64
	KindSL     Kind = "slseguid" // single-stranded linear
	KindSC     Kind = "scseguid" // single-stranded circular
	KindDL     Kind = "dlseguid" // double-stranded linear
	KindDC     Kind = "dcseguid" // double-stranded circular
)

// Kinds lists every variant.
func Kinds() []Kind {
	return []Kind{KindSEGUID, KindSL, KindSC, KindDL, KindDC}
}

// ParseKind resolves a case-insensitive variant name.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds() {
		if k == known {
			return k, nil
		}
	}
	names := make([]string, 0, 5)
	for _, known := range Kinds() {
		names = append(names, string(known))
	}
	return "", errors.Errorf("unknown checksum type %q (want %s)", s, strings.Join(names, "|"))
}

// URLSafe reports whether the digest uses the URL-safe Base64 alphabet.
func (k Kind) URLSafe() bool { return k != KindSEGUID }

// Circular reports whether the variant is rotation invariant.
func (k Kind) Circular() bool { return k == KindSC || k == KindDC }

// DoubleStranded reports whether the variant takes two strands.
func (k Kind) DoubleStranded() bool { return k == KindDL || k == KindDC }

// Result is a computed checksum.
type Result struct {
	Kind   Kind
	Digest string
}

// String renders "<kind>:<digest>".
func (r Result) String() string {
	return string(r.Kind) + ":" + r.Digest
}

// Parse splits a rendered checksum. The digest must be an unpadded Base64
// SHA-1 digest in the alphabet of its kind.
func Parse(s string) (Result, error) {
	name, digest, ok := strings.Cut(s, ":")
	if !ok {
		return Result{}, errors.Errorf("checksum %q: missing type prefix", s)
	}
	k, err := ParseKind(name)
	if err != nil {
		return Result{}, errors.Wrapf(err, "checksum %q", s)
	}
	raw, err := encoding(k.URLSafe()).Strict().DecodeString(digest)
	if err != nil || len(raw) != sha1.Size {
		return Result{}, errors.Errorf("checksum %q: malformed %s digest", s, k)
	}
	return Result{Kind: k, Digest: digest}, nil
}

// Encode returns the unpadded Base64 SHA-1 digest of msg.
func Encode(msg string, urlSafe bool) string {
	sum := sha1.Sum([]byte(msg))
	return encoding(urlSafe).EncodeToString(sum[:])
}

func encoding(urlSafe bool) *base64.Encoding {
	if urlSafe {
		return base64.RawURLEncoding
	}
	return base64.RawStdEncoding
}

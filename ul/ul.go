/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ul

import (
	"encoding/hex"
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/suparena/klvregistry/errors"
)

// Size is the length of a Universal Label in bytes.
const Size = 16

// VersionByte is the index of the registry version byte.
const VersionByte = 7

const urnPrefix = "urn:smpte:ul:"

// UL is a 16-byte SMPTE Universal Label.
type UL [Size]byte

// FromBytes copies b into a UL. It fails with an InvalidLengthError unless b
// is exactly 16 bytes long.
func FromBytes(b []byte) (UL, error) {
	var u UL
	if len(b) != Size {
		return u, errors.NewInvalidLengthError(len(b))
	}
	copy(u[:], b)
	return u, nil
}

// New builds a UL from a literal byte list. Lists shorter than 16 bytes are
// zero-padded; longer lists panic.
func New(b ...byte) UL {
	if len(b) > Size {
		panic(fmt.Sprintf("ul: literal has %d bytes, want at most %d", len(b), Size))
	}
	var u UL
	copy(u[:], b)
	return u
}

var separators = strings.NewReplacer(".", "", "-", "", " ", "", ":", "")

// DecodeText decodes label text of any length. Dotted ("06.0e.2b.34..."),
// dashed, space separated, undelimited hex and "urn:smpte:ul:" forms are
// accepted. Use Parse when the result must be a 16-byte label.
func DecodeText(s string) ([]byte, error) {
	in := strings.TrimPrefix(strings.TrimSpace(strings.ToLower(s)), urnPrefix)
	b, err := hex.DecodeString(separators.Replace(in))
	if err != nil {
		return nil, errors.NewValidationError("ul", fmt.Sprintf("%q: %v", s, err))
	}
	return b, nil
}

// Parse decodes the text form of a UL, accepting the forms DecodeText does.
func Parse(s string) (UL, error) {
	b, err := DecodeText(s)
	if err != nil {
		return UL{}, err
	}
	if len(b) != Size {
		return UL{}, errors.NewValidationError("ul", fmt.Sprintf("%q is not a 16-byte label", s))
	}
	return UL(b), nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) UL {
	u, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return u
}

// Bytes returns a copy of the label bytes.
func (u UL) Bytes() []byte {
	b := make([]byte, Size)
	copy(b, u[:])
	return b
}

// Equal reports whether all 16 bytes of u and other match.
func (u UL) Equal(other UL) bool {
	return u == other
}

// Hash returns a stable 64-bit FNV-1a hash of the label bytes.
func (u UL) Hash() uint64 {
	h := fnv.New64a()
	h.Write(u[:])
	return h.Sum64()
}

// Version returns the registry version byte.
func (u UL) Version() byte {
	return u[VersionByte]
}

// WithVersion returns a copy of u with the registry version byte replaced.
func (u UL) WithVersion(v byte) UL {
	u[VersionByte] = v
	return u
}

// IsZero reports whether every byte of u is zero.
func (u UL) IsZero() bool {
	return u == UL{}
}

// String formats u as lower-case dotted hex.
func (u UL) String() string {
	var sb strings.Builder
	sb.Grow(Size*3 - 1)
	for i, b := range u {
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(hex.EncodeToString([]byte{b}))
	}
	return sb.String()
}

// URN formats u as "urn:smpte:ul:xxxxxxxx.xxxxxxxx.xxxxxxxx.xxxxxxxx".
func (u UL) URN() string {
	return fmt.Sprintf("%s%x.%x.%x.%x", urnPrefix, u[0:4], u[4:8], u[8:12], u[12:16])
}

// MarshalText implements encoding.TextMarshaler.
func (u UL) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *UL) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

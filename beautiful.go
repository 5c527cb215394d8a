package bguid

import (
	"encoding/binary"
	"strings"
)

// Beautiful returns the beautiful GUID form of u: four hyphen-separated
// base-32 groups, one per big-endian 32-bit quarter of the UUID. The
// output is deterministic, unique per UUID, and uses only the alphabet
// symbols and hyphens, making it URL-safe.
//
// Note that group boundaries do not line up with the canonical hex
// groups: the second and third beautiful groups each span two adjacent
// canonical fields.
func (u UUID) Beautiful() string {
	buf := make([]byte, 0, 4*maxGroupChars+3)
	for i := 0; i < 16; i += 4 {
		if i > 0 {
			buf = append(buf, '-')
		}
		buf = appendBase32(buf, binary.BigEndian.Uint32(u[i:i+4]))
	}
	return string(buf)
}

// ToBeautiful converts a canonical 36-character UUID string to its
// beautiful form. Anything other than the 36-character hyphenated
// rendering fails with ErrInvalidLength before parsing.
func ToBeautiful(s string) (string, error) {
	if len(s) != 36 {
		return "", ErrInvalidLength
	}
	u, err := Parse(s)
	if err != nil {
		return "", err
	}
	return u.Beautiful(), nil
}

// ParseBeautiful parses a beautiful GUID back into a UUID. The input must
// contain no spaces and split on "-" into at least four groups; groups
// beyond the fourth are ignored. Each group is decoded to a 32-bit value
// and re-padded to its full width, so variable-width encoded groups always
// reassemble into exactly 128 bits.
func ParseBeautiful(s string) (UUID, error) {
	var u UUID
	if strings.IndexByte(s, ' ') >= 0 {
		return Nil, ErrInvalidFormat
	}
	groups := strings.Split(s, "-")
	if len(groups) < 4 {
		return Nil, ErrInvalidFormat
	}
	for i := 0; i < 4; i++ {
		v, err := decodeBase32(groups[i])
		if err != nil {
			return Nil, err
		}
		binary.BigEndian.PutUint32(u[4*i:4*i+4], v)
	}
	return u, nil
}

// FromBeautiful converts a beautiful GUID to the canonical lowercase
// 8-4-4-4-12 UUID string. It is the inverse of ToBeautiful: for any s
// produced by ToBeautiful or UUID.Beautiful, FromBeautiful returns the
// original UUID's canonical rendering.
func FromBeautiful(s string) (string, error) {
	u, err := ParseBeautiful(s)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

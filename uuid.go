package bguid

import (
	"database/sql/driver"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// UUID is a 128-bit universally unique identifier as defined by RFC 4122
// and RFC 9562. It is an immutable value type; all conversions allocate
// fresh output.
type UUID [16]byte

// Nil is the all-zero UUID.
var Nil UUID

// hexGroups describes the canonical 8-4-4-4-12 layout: the byte range of
// each group and the offset of its first hex digit in the 36-char form.
var hexGroups = [5]struct{ lo, hi, pos int }{
	{0, 4, 0},
	{4, 6, 9},
	{6, 8, 14},
	{8, 10, 19},
	{10, 16, 24},
}

// String returns the canonical lowercase representation of the UUID in the
// format xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx. It is always 36 characters.
func (u UUID) String() string {
	var buf [36]byte
	buf[8], buf[13], buf[18], buf[23] = '-', '-', '-', '-'
	for _, g := range hexGroups {
		hex.Encode(buf[g.pos:g.pos+2*(g.hi-g.lo)], u[g.lo:g.hi])
	}
	return string(buf[:])
}

// Parse parses a UUID from its string representation. It accepts the
// canonical hyphenated form, the bare 32-digit hex form, and either of
// those wrapped as urn:uuid:... or {...}. Hex digits may be any case.
func Parse(s string) (UUID, error) {
	var u UUID

	s = strings.TrimPrefix(s, "urn:uuid:")
	if len(s) >= 2 && s[0] == '{' && s[len(s)-1] == '}' {
		s = s[1 : len(s)-1]
	}

	switch len(s) {
	case 36:
		if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
			return Nil, ErrInvalidFormat
		}
		for _, g := range hexGroups {
			end := g.pos + 2*(g.hi-g.lo)
			if _, err := hex.Decode(u[g.lo:g.hi], []byte(s[g.pos:end])); err != nil {
				return Nil, ErrInvalidFormat
			}
		}
		return u, nil
	case 32:
		if _, err := hex.Decode(u[:], []byte(s)); err != nil {
			return Nil, ErrInvalidFormat
		}
		return u, nil
	default:
		return Nil, ErrInvalidFormat
	}
}

// MustParse is like Parse but panics if the string cannot be parsed. It
// simplifies initialization of global variables.
func MustParse(s string) UUID {
	u, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("bguid: Parse(%q): %v", s, err))
	}
	return u
}

// FromBytes creates a UUID from a 16-byte slice.
func FromBytes(b []byte) (UUID, error) {
	var u UUID
	if b == nil {
		return Nil, ErrNilInput
	}
	if len(b) != 16 {
		return Nil, ErrInvalidLength
	}
	copy(u[:], b)
	return u, nil
}

// MustFromBytes is like FromBytes but panics on error.
func MustFromBytes(b []byte) UUID {
	u, err := FromBytes(b)
	if err != nil {
		panic(err)
	}
	return u
}

// Bytes returns the UUID as a byte slice.
func (u UUID) Bytes() []byte {
	return u[:]
}

// IsNil returns true if the UUID is the nil UUID (all zeros).
func (u UUID) IsNil() bool {
	return u == Nil
}

// Equal returns true if u and other represent the same UUID.
func (u UUID) Equal(other UUID) bool {
	return u == other
}

// MarshalText implements encoding.TextMarshaler using the canonical form.
func (u UUID) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts the same
// forms as Parse. A nil slice fails with ErrNilInput, distinct from the
// ErrInvalidFormat returned for empty text.
func (u *UUID) UnmarshalText(data []byte) error {
	if data == nil {
		return ErrNilInput
	}
	id, err := Parse(string(data))
	if err != nil {
		return err
	}
	*u = id
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (u UUID) MarshalBinary() ([]byte, error) {
	return u[:], nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (u *UUID) UnmarshalBinary(data []byte) error {
	if data == nil {
		return ErrNilInput
	}
	if len(data) != 16 {
		return ErrInvalidLength
	}
	copy(u[:], data)
	return nil
}

// Scan implements sql.Scanner. Text values may be in either the canonical
// or the beautiful form; 16-byte values are taken as the raw UUID.
func (u *UUID) Scan(src interface{}) error {
	switch src := src.(type) {
	case nil:
		return nil
	case string:
		return u.scanText(src)
	case []byte:
		if len(src) == 0 {
			return nil
		}
		if len(src) == 16 {
			copy(u[:], src)
			return nil
		}
		return u.scanText(string(src))
	default:
		return fmt.Errorf("bguid: cannot scan type %T into UUID", src)
	}
}

func (u *UUID) scanText(s string) error {
	id, err := Parse(s)
	if errors.Is(err, ErrInvalidFormat) {
		// beautiful forms are at most 31 chars, so the two never overlap
		id, err = ParseBeautiful(s)
	}
	if err != nil {
		return err
	}
	*u = id
	return nil
}

// Value implements driver.Valuer, storing the canonical form.
func (u UUID) Value() (driver.Value, error) {
	return u.String(), nil
}

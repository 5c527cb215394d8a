package bguid

import "errors"

var (
	// ErrInvalidFormat indicates that an input string does not have the
	// expected shape: a malformed UUID, a beautiful GUID with fewer than
	// four groups, or one containing a space.
	ErrInvalidFormat = errors.New("bguid: invalid format")

	// ErrInvalidLength indicates that an input has the wrong length:
	// a canonical UUID string that is not 36 characters, or a byte slice
	// that is not 16 bytes.
	ErrInvalidLength = errors.New("bguid: invalid length")

	// ErrInvalidCharacter indicates that a beautiful GUID group contains
	// a character outside the 32-symbol alphabet. Returned errors wrap
	// this sentinel and carry the offending character.
	ErrInvalidCharacter = errors.New("bguid: invalid base32 character")

	// ErrValueOutOfRange indicates that a beautiful GUID group decodes to
	// more than 32 bits and therefore cannot be part of a 128-bit UUID.
	ErrValueOutOfRange = errors.New("bguid: base32 group exceeds 32 bits")

	// ErrNilInput indicates that a nil slice was passed where input was
	// required. It is distinct from ErrInvalidFormat for empty input.
	ErrNilInput = errors.New("bguid: nil input")
)

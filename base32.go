package bguid

import (
	"fmt"
	"math"
)

// alphabet is Douglas Crockford's base-32 symbol set. I, L, O and U are
// omitted so encoded output avoids look-alike digits and accidental words.
const alphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

// maxGroupChars is the longest base-32 rendering of a 32-bit value,
// ceil(32/5) digits.
const maxGroupChars = 7

// alphabetIndex maps a byte to its index in the alphabet, or -1. Lookup is
// case-sensitive: only the uppercase symbols are valid on decode.
var alphabetIndex = func() (t [256]int8) {
	for i := range t {
		t[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		t[alphabet[i]] = int8(i)
	}
	return t
}()

// appendBase32 appends the shortest base-32 rendering of v to dst, most
// significant digit first. A zero value still produces one digit ("0");
// no other value is emitted with leading zero digits and no padding is
// applied, so output length varies from 1 to maxGroupChars.
func appendBase32(dst []byte, v uint32) []byte {
	var buf [maxGroupChars]byte
	i := len(buf)
	for {
		i--
		buf[i] = alphabet[v&0x1f]
		v >>= 5
		if v == 0 {
			break
		}
	}
	return append(dst, buf[i:]...)
}

// decodeBase32 decodes a single beautiful GUID group back to its 32-bit
// value. Characters outside the alphabet fail with ErrInvalidCharacter;
// groups longer than maxGroupChars, or decoding past 32 bits, fail with
// ErrValueOutOfRange. The empty group decodes to 0.
func decodeBase32(s string) (uint32, error) {
	if len(s) > maxGroupChars {
		return 0, fmt.Errorf("%w: %q", ErrValueOutOfRange, s)
	}
	var v uint64
	for i := 0; i < len(s); i++ {
		idx := alphabetIndex[s[i]]
		if idx < 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidCharacter, rune(s[i]))
		}
		v = v<<5 | uint64(idx)
	}
	if v > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %q", ErrValueOutOfRange, s)
	}
	return uint32(v), nil
}

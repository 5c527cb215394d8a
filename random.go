package bguid

import (
	"crypto/rand"
	"io"
)

// NewRandom returns a random (version 4) UUID read from crypto/rand.
// The beautiful codec itself is version-agnostic; this exists so the
// library can mint shareable identifiers on its own.
func NewRandom() (UUID, error) {
	var u UUID
	if _, err := io.ReadFull(rand.Reader, u[:]); err != nil {
		return Nil, err
	}
	u[6] = (u[6] & 0x0f) | 0x40 // version 4
	u[8] = (u[8] & 0x3f) | 0x80 // variant RFC 4122
	return u, nil
}

// Must is a helper that wraps a call to a function returning (UUID, error)
// and panics if the error is non-nil. It is intended for use in variable
// initializations such as:
//
//	var id = bguid.Must(bguid.NewRandom())
func Must(u UUID, err error) UUID {
	if err != nil {
		panic(err)
	}
	return u
}

// Package stream adapts the Spritz core to the standard
// crypto/cipher.Stream interface, the way
// blitter.com/go/cryptmt.New wraps an mtwist accumulator.
package stream

import (
	"crypto/cipher"

	"blitter.com/go/spritz"
)

type cipherStream struct {
	ctx spritz.Ctx
}

// NewCipher returns a Spritz keystream cipher seeded with key alone.
// key may be 0..255 bytes.
func NewCipher(key []byte) cipher.Stream {
	c := &cipherStream{}
	spritz.Setup(&c.ctx, key)
	return c
}

// NewCipherWithIV returns a Spritz keystream cipher seeded with key
// and nonce, domain-separated per spritz.SetupWithIV. Reusing a
// (key, nonce) pair regenerates the identical keystream, the same
// caveat that applies to any stream cipher.
func NewCipherWithIV(key, nonce []byte) cipher.Stream {
	c := &cipherStream{}
	spritz.SetupWithIV(&c.ctx, key, nonce)
	return c
}

// XORKeyStream XORs each byte of src with a keystream byte and writes
// the result to dst. dst and src may fully overlap (in-place use); if
// they partially overlap the behaviour is undefined, matching the
// crypto/cipher.Stream contract.
//
// Multiple calls behave as if the concatenation of all src buffers
// passed in one call: the cipher carries state across calls.
func (c *cipherStream) XORKeyStream(dst, src []byte) {
	if len(dst) < len(src) {
		panic("spritz/stream: len(dst) < len(src)")
	}
	spritz.Crypt(&c.ctx, src, dst)
}

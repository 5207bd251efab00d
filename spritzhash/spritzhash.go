// Package spritzhash adapts the Spritz core to the standard hash.Hash
// interface, the way coruus-go-sha3's sha3.digest wraps a Keccak
// sponge for the same interface.
package spritzhash

import (
	"hash"

	"blitter.com/go/spritz"
)

type digest struct {
	size int
	ctx  spritz.Ctx
}

// New returns a Spritz hash.Hash producing size bytes of digest on
// Sum. size must not exceed 255 (the digest length is absorbed into
// the state as a single byte).
func New(size int) hash.Hash {
	d := &digest{size: size}
	d.Reset()
	return d
}

func (d *digest) Write(p []byte) (int, error) {
	spritz.HashUpdate(&d.ctx, p)
	return len(p), nil
}

// Sum appends the digest to b without disturbing d's running state,
// so further Write calls continue the same hash (same contract as
// every other hash.Hash implementation).
func (d *digest) Sum(b []byte) []byte {
	tmp := d.ctx
	out := make([]byte, d.size)
	spritz.HashFinal(&tmp, out)
	return append(b, out...)
}

func (d *digest) Reset() {
	spritz.HashSetup(&d.ctx)
}

func (d *digest) Size() int { return d.size }

// BlockSize has no standard meaning for a sponge construction (see
// coruus-go-sha3's sha3.digest.BlockSize doc); Spritz absorbs and
// squeezes one byte at a time, so 1 is the only honest answer.
func (d *digest) BlockSize() int { return 1 }

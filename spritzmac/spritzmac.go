// Package spritzmac adapts the Spritz core to a keyed hash.Hash,
// giving it the same Write/Sum/Reset shape as spritzhash but seeded
// with a shared key. This is the primitive a Session's AuthCookie
// would be computed with, rather than the opaque byte string
// Session.AuthCookie is today in blitter.com/go/xs's session.go.
package spritzmac

import (
	"hash"

	"blitter.com/go/spritz"
)

type mac struct {
	key  []byte
	size int
	ctx  spritz.Ctx
}

// New returns a Spritz MAC keyed with key, producing size bytes of
// tag on Sum. key may be up to 65535 bytes and is never truncated;
// size must not exceed 255.
func New(key []byte, size int) hash.Hash {
	m := &mac{key: key, size: size}
	m.Reset()
	return m
}

func (m *mac) Write(p []byte) (int, error) {
	spritz.MACUpdate(&m.ctx, p)
	return len(p), nil
}

// Sum appends the tag to b without disturbing m's running state.
func (m *mac) Sum(b []byte) []byte {
	tmp := m.ctx
	out := make([]byte, m.size)
	spritz.MACFinal(&tmp, out)
	return append(b, out...)
}

// Reset re-keys the MAC from scratch with the same key it was
// constructed with.
func (m *mac) Reset() {
	spritz.MACSetup(&m.ctx, m.key)
}

func (m *mac) Size() int { return m.size }

func (m *mac) BlockSize() int { return 1 }

// Equal reports whether tag authenticates against an independently
// computed want, in constant time: a plain == or bytes.Equal would
// leak how many leading bytes matched through timing, which is
// exactly the channel a forged tag would probe.
func Equal(tag, want []byte) bool {
	if len(tag) != len(want) {
		return false
	}
	return spritz.Compare(tag, want, len(tag)) == 0
}

// Package spritz - a from-scratch implementation of the Spritz sponge
// construction (Rivest & Schuldt, 2014) for resource-constrained targets.
//
// Spritz is not a standardised primitive and has received far less
// cryptanalysis than stream ciphers in widespread use. Treat this as a
// Spritz reference, not a general-purpose cryptographic toolkit.
//
// S-box indexing is secret-dependent, so this implementation does not
// claim resistance to cache-timing attacks; it targets small MCUs
// without data caches, where that class of attack does not apply.
package spritz

const n = 256

// Ctx is the entire Spritz state: an S-box permutation of 0..255 plus
// six scalar registers. The zero value is not a valid context; build
// one with Setup, SetupWithIV, HashSetup or MACSetup.
type Ctx struct {
	s          [n]byte
	i, j, k, z byte
	a          byte // absorbed nibbles since last shuffle, 0..n/2
	w          byte // odd stride, coprime with n
}

// initialize resets ctx to the identity permutation with stride 1,
// clearing all indices.
func initialize(ctx *Ctx) {
	for idx := range ctx.s {
		ctx.s[idx] = byte(idx)
	}
	ctx.i, ctx.j, ctx.k, ctx.z, ctx.a = 0, 0, 0, 0, 0
	ctx.w = 1
}

func (ctx *Ctx) swap(x, y byte) {
	tx, ty := ctx.s[x], ctx.s[y]
	ctx.s[x], ctx.s[y] = ty, tx
	wipeScratch(&tx)
	wipeScratch(&ty)
}

// update is one mixing step; i advances by the (odd) stride w so it
// visits every S-box index over N steps.
func (ctx *Ctx) update() {
	ctx.i += ctx.w
	ctx.j = ctx.k + ctx.s[ctx.j+ctx.s[ctx.i]]
	ctx.k = ctx.i + ctx.k + ctx.s[ctx.j]
	ctx.swap(ctx.i, ctx.j)
}

// whip runs r mixing steps and then bumps the stride by 2, which
// keeps w odd (hence coprime to n) forever.
func (ctx *Ctx) whip(r int) {
	for x := 0; x < r; x++ {
		ctx.update()
	}
	ctx.w += 2
}

// crush sorts each (p, n-1-p) pair into ascending order, branch-free
// (see crushPair in crush.go); unlike the scratch-wiping tiers in
// paranoid_on.go/paranoid_off.go, this constant-time comparison is
// never gated behind a build tag.
func (ctx *Ctx) crush() {
	for p := byte(0); p < n/2; p++ {
		q := byte(n - 1) - p
		crushPair(ctx, p, q)
	}
}

// shuffle is the expensive reseeding step: three whip(2n)+crush
// rounds (the third whip without a trailing crush), then a reset of
// the absorbed-nibble counter.
func (ctx *Ctx) shuffle() {
	ctx.whip(2 * n)
	ctx.crush()
	ctx.whip(2 * n)
	ctx.crush()
	ctx.whip(2 * n)
	ctx.a = 0
}

func (ctx *Ctx) absorbNibble(x byte) {
	if ctx.a == n/2 {
		ctx.shuffle()
	}
	ctx.swap(ctx.a, n/2+x)
	ctx.a++
}

// absorbByte mixes one byte in low-nibble-first.
func (ctx *Ctx) absorbByte(b byte) {
	ctx.absorbNibble(b & 0x0F)
	ctx.absorbNibble((b >> 4) & 0x0F)
}

// absorb mixes buf into the state in order.
func (ctx *Ctx) absorb(buf []byte) {
	for _, b := range buf {
		ctx.absorbByte(b)
	}
}

// absorbStop is a domain separator between two logically distinct
// absorbed inputs (e.g. key and nonce, or message and digest length).
func (ctx *Ctx) absorbStop() {
	if ctx.a == n/2 {
		ctx.shuffle()
	}
	ctx.a++
}

// output produces one keystream byte without touching a; callers that
// squeeze keystream must first force a == 0 via shuffle (drip does
// this).
func (ctx *Ctx) output() byte {
	ctx.update()
	ctx.z = ctx.s[ctx.j+ctx.s[ctx.i+ctx.s[ctx.z+ctx.k]]]
	return ctx.z
}

// drip returns one keystream byte, reshuffling first if any input is
// still pending (a > 0).
func (ctx *Ctx) drip() byte {
	if ctx.a > 0 {
		ctx.shuffle()
	}
	return ctx.output()
}

// squeeze fills out with drip bytes.
func (ctx *Ctx) squeeze(out []byte) {
	for idx := range out {
		out[idx] = ctx.drip()
	}
}

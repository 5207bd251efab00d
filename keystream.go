package spritz

// RandomByte returns one keystream byte.
func RandomByte(ctx *Ctx) byte {
	return ctx.drip()
}

// RandomU32 assembles four drip bytes big-endian. The byte order is
// normative: it is what makes the known-answer test vectors
// reproducible across implementations.
func RandomU32(ctx *Ctx) uint32 {
	b0 := uint32(ctx.drip())
	b1 := uint32(ctx.drip())
	b2 := uint32(ctx.drip())
	b3 := uint32(ctx.drip())
	return b0<<24 | b1<<16 | b2<<8 | b3
}

// RandomUniform draws a uniformly distributed value in [0, upper) by
// rejection sampling RandomU32, avoiding the modulo bias a naive
// "RandomU32() % upper" would introduce. upper < 2 returns 0 without
// consuming any keystream.
func RandomUniform(ctx *Ctx, upper uint32) uint32 {
	if upper < 2 {
		return 0
	}
	min := (-upper) % upper // 2^32 mod upper: [min, 2^32) holds a whole multiple of upper values
	for {
		r := RandomU32(ctx)
		if r >= min {
			return r % upper
		}
	}
}

// Crypt XORs every byte of in with a keystream byte and writes the
// result to out. in and out may alias the same slice (in-place
// encryption/decryption); out must be at least len(in) long.
func Crypt(ctx *Ctx, in, out []byte) {
	for idx, b := range in {
		ks := ctx.drip()
		out[idx] = b ^ ks
		wipeScratch(&ks)
	}
}

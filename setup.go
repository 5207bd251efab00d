package spritz

// Setup resets ctx and absorbs key, readying it to emit keystream via
// RandomByte/RandomU32/Crypt. key may be 0..255 bytes.
func Setup(ctx *Ctx, key []byte) {
	initialize(ctx)
	ctx.absorb(key)
}

// SetupWithIV is Setup plus a nonce, separated from the key by an
// absorbStop so that key||nonce splits at different points never
// collide. nonce may be 0..255 bytes.
func SetupWithIV(ctx *Ctx, key, nonce []byte) {
	Setup(ctx, key)
	ctx.absorbStop()
	ctx.absorb(nonce)
}

// AddEntropy reseeds an already set-up context without resetting it,
// mixing extra bytes into the state in place.
func AddEntropy(ctx *Ctx, buf []byte) {
	ctx.absorb(buf)
}

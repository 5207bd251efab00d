package spritz

// MACSetup readies ctx for a keyed MAC: MACUpdate zero or more times,
// then exactly one MACFinal. key may be up to 65535 bytes and is never
// truncated.
func MACSetup(ctx *Ctx, key []byte) {
	initialize(ctx)
	ctx.absorb(key)
	ctx.absorbStop()
}

// MACUpdate absorbs more message bytes. Safe to call with an empty
// slice, and safe to call any number of times before MACFinal.
func MACUpdate(ctx *Ctx, msg []byte) {
	ctx.absorb(msg)
}

// MACFinal binds len(out) into the state and squeezes len(out) tag
// bytes into it, then zeroes ctx: a context may only be finalized
// once. As with HashFinal, len(out) must not exceed 255.
func MACFinal(ctx *Ctx, out []byte) {
	if len(out) > 255 {
		panic("spritz: MAC tag length exceeds 255 bytes")
	}
	ctx.absorbStop()
	ctx.absorbByte(byte(len(out)))
	ctx.squeeze(out)
	ctx.Zero()
}

// MAC is the one-shot composition of MACSetup, MACUpdate and
// MACFinal, defined literally in those terms for the same reason as
// Hash: streaming and one-shot MACs of the same (key, msg) can never
// drift apart.
func MAC(out, msg, key []byte) {
	var ctx Ctx
	MACSetup(&ctx, key)
	MACUpdate(&ctx, msg)
	MACFinal(&ctx, out)
}

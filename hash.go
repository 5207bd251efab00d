package spritz

// HashSetup readies ctx for a streaming hash: HashUpdate zero or more
// times, then exactly one HashFinal.
func HashSetup(ctx *Ctx) {
	initialize(ctx)
}

// HashUpdate absorbs more input. Safe to call with an empty slice, and
// safe to call any number of times before HashFinal: splitting one
// input into many HashUpdate calls produces the same digest as a
// single call with the whole input concatenated.
func HashUpdate(ctx *Ctx, data []byte) {
	ctx.absorb(data)
}

// HashFinal binds len(out) into the state (so a 16-byte and a 32-byte
// digest of the same input never share a prefix) and squeezes
// len(out) digest bytes into it. ctx is zeroed before return: a
// context may only be finalized once.
//
// len(out) must not exceed 255 — the digest length is itself absorbed
// as a single byte, so this is a hard ceiling of the construction, not
// a configurable limit.
func HashFinal(ctx *Ctx, out []byte) {
	if len(out) > 255 {
		panic("spritz: hash digest length exceeds 255 bytes")
	}
	ctx.absorbStop()
	ctx.absorbByte(byte(len(out)))
	ctx.squeeze(out)
	ctx.Zero()
}

// Hash is the one-shot composition of HashSetup, HashUpdate and
// HashFinal. It is defined literally in terms of those three so that
// streaming and one-shot hashing of the same input are guaranteed to
// agree; there is no separately optimised one-shot path to drift out
// of sync.
func Hash(out, data []byte) {
	var ctx Ctx
	HashSetup(&ctx)
	HashUpdate(&ctx, data)
	HashFinal(&ctx, out)
}

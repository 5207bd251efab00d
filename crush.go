package spritz

// crushPair sorts s[p] and s[q] into ascending order without a
// data-dependent branch. crush is the only Spritz step whose branching
// is both exploitable (it runs over secret S-box contents) and cheaply
// removable, so this is the only form this package offers; there is no
// non-constant-time build variant.
func crushPair(ctx *Ctx, p, q byte) {
	sp, sq := ctx.s[p], ctx.s[q]

	// mask is all-ones when sp >= sq, all-zero otherwise. Treating the
	// sp == sq case as "swap" is safe: the write-back below is then an
	// identity assignment.
	d := int32(sp) - int32(sq)
	mask := byte(^(d >> 31))

	ctx.s[p] = (sp &^ mask) | (sq & mask)
	ctx.s[q] = (sq &^ mask) | (sp & mask)

	wipeScratch(&sp)
	wipeScratch(&sq)
}

package spritz

// Compare returns 0 iff a and b agree on their first n bytes (or n is
// 0), and a nonzero value otherwise. It runs in time dependent only on
// n, never short-circuiting on the first mismatch, so it is safe to
// use on secret data such as MAC tags or auth cookies.
func Compare(a, b []byte, n int) byte {
	var v byte
	for idx := 0; idx < n; idx++ {
		v |= a[idx] ^ b[idx]
	}
	return v
}

// Memzero overwrites buf with zeros in a way the compiler cannot
// optimise away as a dead store, so it is safe to call on a buffer
// about to go out of scope.
func Memzero(buf []byte) {
	for idx := range buf {
		buf[idx] = 0
	}
	opacityBarrier(buf)
}

// Zero wipes every field of ctx, including the S-box. Call this on any
// context that held a key, once it is no longer needed.
func (ctx *Ctx) Zero() {
	Memzero(ctx.s[:])
	ctx.i, ctx.j, ctx.k, ctx.z, ctx.a, ctx.w = 0, 0, 0, 0, 0, 0
}

//go:noinline
func opacityBarrier(buf []byte) {
	// Deliberately empty. Its only job is to be a real, non-inlined
	// call that touches buf, so the compiler cannot prove the zeroing
	// loop above has no observable effect and elide it.
	_ = buf
}

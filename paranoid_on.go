// +build spritzparanoidwipe

package spritz

// wipeScratch zeroes a transient scratch byte that briefly held an
// S-box value. Only compiled in under the spritzparanoidwipe build
// tag; see paranoid_off.go for the default, which skips this for
// speed on targets that don't need it.
//
// swap, crushPair and Crypt pass their scratch bytes here.
//
//go:noinline
func wipeScratch(b *byte) {
	*b = 0
}

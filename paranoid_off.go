// +build !spritzparanoidwipe

package spritz

// wipeScratch is a no-op in the default build. See paranoid_on.go,
// enabled by the spritzparanoidwipe build tag, for the paranoid
// variant that actually clears transient S-box scratch bytes.
func wipeScratch(b *byte) {}

//go:build !arm64 && !purego

package armsha

const hardware = false

// Defined only so the undefined identifier below is the sole build error.
func compress(state *[5]uint32, block *[64]byte)    {}
func compress256(state *[8]uint32, block *[64]byte) {}

// There is no silent fallback. Build for arm64, or pass -tags purego to use
// the portable implementation of the same instruction sequence.
var _ = armsha_requires_arm64_or_the_purego_build_tag

//go:build arm64 && !purego

package compress_arm64

import "github.com/zeebo/armsha/internal/consts"

//go:noescape
func compress(state *[5]uint32, block *[64]byte, k *[16]uint32)

// Compress advances the SHA-1 state by one block with SHA1C/SHA1P/SHA1M.
func Compress(state *[5]uint32, block *[64]byte) {
	compress(state, block, &consts.K1Vec)
}

//go:noescape
func compress256(state *[8]uint32, block *[64]byte, k *[64]uint32)

// Compress256 advances the SHA-256 state by one block with SHA256H/SHA256H2.
func Compress256(state *[8]uint32, block *[64]byte) {
	compress256(state, block, &consts.K256)
}

//go:build arm64 && !purego

package armsha

import "github.com/zeebo/armsha/internal/alg/compress/compress_arm64"

const hardware = true

func compress(state *[5]uint32, block *[64]byte) {
	compress_arm64.Compress(state, block)
}

func compress256(state *[8]uint32, block *[64]byte) {
	compress_arm64.Compress256(state, block)
}

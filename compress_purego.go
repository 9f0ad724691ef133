//go:build purego

package armsha

import "github.com/zeebo/armsha/internal/alg/compress/compress_pure"

const hardware = false

func compress(state *[5]uint32, block *[64]byte) {
	compress_pure.Compress(state, block)
}

func compress256(state *[8]uint32, block *[64]byte) {
	compress_pure.Compress256(state, block)
}

//go:build !arm64 || purego

package compress_arm64

import "github.com/zeebo/armsha/internal/alg/compress/compress_pure"

func Compress(state *[5]uint32, block *[64]byte) {
	compress_pure.Compress(state, block)
}

func Compress256(state *[8]uint32, block *[64]byte) {
	compress_pure.Compress256(state, block)
}

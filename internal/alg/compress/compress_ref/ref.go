// Package compress_ref is the scalar FIPS 180-4 definition of the SHA-1 and
// SHA-256 compression functions. It exists to check the vector pipelines.
package compress_ref

import (
	"math/bits"

	"github.com/zeebo/armsha/internal/consts"
	"github.com/zeebo/armsha/internal/utils"
)

func Compress(state *[5]uint32, block *[64]byte) {
	var w [80]uint32
	utils.BytesToWords(block, (*[16]uint32)(w[:16]))
	for i := 16; i < 80; i++ {
		w[i] = bits.RotateLeft32(w[i-3]^w[i-8]^w[i-14]^w[i-16], 1)
	}

	a, b, c, d, e := state[0], state[1], state[2], state[3], state[4]

	for i := 0; i < 80; i++ {
		var f, k uint32
		switch {
		case i < 20:
			f, k = (b&c)|(^b&d), consts.K1[0]
		case i < 40:
			f, k = b^c^d, consts.K1[1]
		case i < 60:
			f, k = (b&c)|(b&d)|(c&d), consts.K1[2]
		default:
			f, k = b^c^d, consts.K1[3]
		}

		t := bits.RotateLeft32(a, 5) + f + e + k + w[i]
		a, b, c, d, e = t, a, bits.RotateLeft32(b, 30), c, d
	}

	state[0] += a
	state[1] += b
	state[2] += c
	state[3] += d
	state[4] += e
}

func Compress256(state *[8]uint32, block *[64]byte) {
	var w [64]uint32
	utils.BytesToWords(block, (*[16]uint32)(w[:16]))
	for i := 16; i < 64; i++ {
		v1 := w[i-2]
		t1 := bits.RotateLeft32(v1, -17) ^ bits.RotateLeft32(v1, -19) ^ (v1 >> 10)
		v2 := w[i-15]
		t2 := bits.RotateLeft32(v2, -7) ^ bits.RotateLeft32(v2, -18) ^ (v2 >> 3)
		w[i] = t1 + w[i-7] + t2 + w[i-16]
	}

	a, b, c, d := state[0], state[1], state[2], state[3]
	e, f, g, h := state[4], state[5], state[6], state[7]

	for i := 0; i < 64; i++ {
		t1 := h + (bits.RotateLeft32(e, -6) ^ bits.RotateLeft32(e, -11) ^ bits.RotateLeft32(e, -25)) +
			((e & f) ^ (^e & g)) + consts.K256[i] + w[i]
		t2 := (bits.RotateLeft32(a, -2) ^ bits.RotateLeft32(a, -13) ^ bits.RotateLeft32(a, -22)) +
			((a & b) ^ (a & c) ^ (b & c))

		h, g, f, e, d, c, b, a = g, f, e, d+t1, c, b, a, t1+t2
	}

	state[0] += a
	state[1] += b
	state[2] += c
	state[3] += d
	state[4] += e
	state[5] += f
	state[6] += g
	state[7] += h
}

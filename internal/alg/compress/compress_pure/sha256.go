package compress_pure

import (
	"github.com/zeebo/armsha/internal/consts"
	"github.com/zeebo/armsha/internal/vec"
)

// Compress256 advances the SHA-256 state by one block using the same sequence
// of four-round vector steps as the arm64 assembly.
func Compress256(state *[8]uint32, block *[64]byte) {
	h0 := vec.LoadWords(state[0:4])
	h1 := vec.LoadWords(state[4:8])
	w0, w1 := h0, h1

	a := vec.Rev32(vec.Load(block[0:16]))
	b := vec.Rev32(vec.Load(block[16:32]))
	c := vec.Rev32(vec.Load(block[32:48]))
	d := vec.Rev32(vec.Load(block[48:64]))

	for n := 0; n < 16; n++ {
		t := vec.Add(a, vec.LoadWords(consts.K256[4*n:]))

		// SHA256H2 needs abcd from before SHA256H overwrites it.
		wt := w0
		w0 = vec.SHA256H(w0, w1, t)
		w1 = vec.SHA256H2(w1, wt, t)

		// the last four steps have no later consumer for new schedule words.
		if n < 12 {
			a = vec.SHA256SU1(vec.SHA256SU0(a, b), c, d)
		}
		a, b, c, d = b, c, d, a
	}

	vec.StoreWords(state[0:4], vec.Add(w0, h0))
	vec.StoreWords(state[4:8], vec.Add(w1, h1))
}

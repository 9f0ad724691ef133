package compress_pure

import (
	"github.com/zeebo/armsha/internal/consts"
	"github.com/zeebo/armsha/internal/vec"
)

// Compress advances the SHA-1 state by one block using the same sequence of
// four-round vector steps as the arm64 assembly.
func Compress(state *[5]uint32, block *[64]byte) {
	abcd := vec.LoadWords(state[0:4])
	e := state[4]

	origABCD, origE := abcd, e

	w := [4]vec.Vec{
		vec.Rev32(vec.Load(block[0:16])),
		vec.Rev32(vec.Load(block[16:32])),
		vec.Rev32(vec.Load(block[32:48])),
		vec.Rev32(vec.Load(block[48:64])),
	}

	for g := 0; g < 20; g++ {
		t := vec.Add(w[g%4], vec.LoadWords(consts.K1Vec[4*(g/5):]))

		// the e for the next step comes from the state before this step.
		enext := vec.SHA1H(vec.Lane0(abcd))
		switch g / 5 {
		case 0:
			abcd = vec.SHA1C(abcd, e, t)
		case 2:
			abcd = vec.SHA1M(abcd, e, t)
		default:
			abcd = vec.SHA1P(abcd, e, t)
		}
		e = enext

		if g < 16 {
			w[g%4] = vec.SHA1SU1(vec.SHA1SU0(w[g%4], w[(g+1)%4], w[(g+2)%4]), w[(g+3)%4])
		}
	}

	vec.StoreWords(state[0:4], vec.Add(abcd, origABCD))
	state[4] = e + origE
}

package vec

import (
	"math/bits"
)

func choose(x, y, z uint32) uint32   { return (x & y) | (^x & z) }
func parity(x, y, z uint32) uint32   { return x ^ y ^ z }
func majority(x, y, z uint32) uint32 { return (x & y) | (x & z) | (y & z) }

// sha1Rounds runs four SHA-1 rounds. abcd holds a in lane 0, e is the fifth
// word and w holds the four schedule words with the round constant already
// added. The final e is shifted out of the register and dropped; callers
// recover it with SHA1H.
func sha1Rounds(f func(x, y, z uint32) uint32, abcd Vec, e uint32, w Vec) Vec {
	a, b, c, d := abcd[0], abcd[1], abcd[2], abcd[3]
	for i := 0; i < 4; i++ {
		t := e + bits.RotateLeft32(a, 5) + f(b, c, d) + w[i]
		a, b, c, d, e = t, a, bits.RotateLeft32(b, 30), c, d
	}
	return Vec{a, b, c, d}
}

// SHA1C performs four rounds with the choice function (SHA1C Qd, Sn, Vm.4S).
func SHA1C(abcd Vec, e uint32, w Vec) Vec { return sha1Rounds(choose, abcd, e, w) }

// SHA1P performs four rounds with the parity function (SHA1P Qd, Sn, Vm.4S).
func SHA1P(abcd Vec, e uint32, w Vec) Vec { return sha1Rounds(parity, abcd, e, w) }

// SHA1M performs four rounds with the majority function (SHA1M Qd, Sn, Vm.4S).
func SHA1M(abcd Vec, e uint32, w Vec) Vec { return sha1Rounds(majority, abcd, e, w) }

// SHA1H is the fixed rotate (SHA1H Sd, Sn). Applied to lane 0 of abcd before
// a four round step it yields the e input of the following step.
func SHA1H(a uint32) uint32 { return bits.RotateLeft32(a, 30) }

// SHA1SU0 is the first half of the schedule update (SHA1SU0 Vd, Vn, Vm):
// w0 ^ (w0[2:4] || w1[0:2]) ^ w2.
func SHA1SU0(w0, w1, w2 Vec) Vec {
	return Vec{
		w0[0] ^ w0[2] ^ w2[0],
		w0[1] ^ w0[3] ^ w2[1],
		w0[2] ^ w1[0] ^ w2[2],
		w0[3] ^ w1[1] ^ w2[3],
	}
}

// SHA1SU1 completes the schedule update (SHA1SU1 Vd, Vn). The last lane
// depends on the first and folds in a second rotation.
func SHA1SU1(t, w3 Vec) Vec {
	t0 := t[0] ^ w3[1]
	t1 := t[1] ^ w3[2]
	t2 := t[2] ^ w3[3]
	t3 := t[3]
	return Vec{
		bits.RotateLeft32(t0, 1),
		bits.RotateLeft32(t1, 1),
		bits.RotateLeft32(t2, 1),
		bits.RotateLeft32(t3, 1) ^ bits.RotateLeft32(t0, 2),
	}
}

package vec

import (
	"math/bits"
)

func bigSigma0(x uint32) uint32 {
	return bits.RotateLeft32(x, -2) ^ bits.RotateLeft32(x, -13) ^ bits.RotateLeft32(x, -22)
}

func bigSigma1(x uint32) uint32 {
	return bits.RotateLeft32(x, -6) ^ bits.RotateLeft32(x, -11) ^ bits.RotateLeft32(x, -25)
}

func sigma0(x uint32) uint32 {
	return bits.RotateLeft32(x, -7) ^ bits.RotateLeft32(x, -18) ^ (x >> 3)
}

func sigma1(x uint32) uint32 {
	return bits.RotateLeft32(x, -17) ^ bits.RotateLeft32(x, -19) ^ (x >> 10)
}

// sha256Rounds runs four SHA-256 rounds over the split state. abcd holds a in
// lane 0 and efgh holds e in lane 0.
func sha256Rounds(abcd, efgh, w Vec) (Vec, Vec) {
	a, b, c, d := abcd[0], abcd[1], abcd[2], abcd[3]
	e, f, g, h := efgh[0], efgh[1], efgh[2], efgh[3]
	for i := 0; i < 4; i++ {
		t1 := h + bigSigma1(e) + choose(e, f, g) + w[i]
		t2 := bigSigma0(a) + majority(a, b, c)
		a, b, c, d, e, f, g, h = t1+t2, a, b, c, d+t1, e, f, g
	}
	return Vec{a, b, c, d}, Vec{e, f, g, h}
}

// SHA256H returns the abcd half after four rounds (SHA256H Qd, Qn, Vm.4S).
func SHA256H(abcd, efgh, w Vec) Vec {
	abcd, _ = sha256Rounds(abcd, efgh, w)
	return abcd
}

// SHA256H2 returns the efgh half after four rounds (SHA256H2 Qd, Qn, Vm.4S).
// abcd must be the value from before the matching SHA256H.
func SHA256H2(efgh, abcd, w Vec) Vec {
	_, efgh = sha256Rounds(abcd, efgh, w)
	return efgh
}

// SHA256SU0 adds sigma0 of the next four words (SHA256SU0 Vd, Vn).
func SHA256SU0(w0, w1 Vec) Vec {
	return Vec{
		w0[0] + sigma0(w0[1]),
		w0[1] + sigma0(w0[2]),
		w0[2] + sigma0(w0[3]),
		w0[3] + sigma0(w1[0]),
	}
}

// SHA256SU1 finishes the schedule update (SHA256SU1 Vd, Vn, Vm). The upper two
// lanes consume the lower two lanes of the result.
func SHA256SU1(t, w2, w3 Vec) Vec {
	r0 := t[0] + w2[1] + sigma1(w3[2])
	r1 := t[1] + w2[2] + sigma1(w3[3])
	r2 := t[2] + w2[3] + sigma1(r0)
	r3 := t[3] + w3[0] + sigma1(r1)
	return Vec{r0, r1, r2, r3}
}

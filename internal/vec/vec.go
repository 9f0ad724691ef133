// Package vec is a portable model of the 128-bit vector operations used by the
// ARMv8 SHA1 and SHA2 instructions. Each function has the lane semantics of the
// instruction it is named after, so code written against it can be checked
// line for line against the assembly.
package vec

import (
	"encoding/binary"
	"math/bits"
)

// Vec is a 128-bit register viewed as four 32-bit lanes. Lane 0 holds the
// lowest addressed word.
type Vec = [4]uint32

// Load reads 16 bytes from the front of b into a vector with little-endian
// lanes. There is no alignment requirement on b.
func Load(b []byte) Vec {
	_ = b[15]
	return Vec{
		binary.LittleEndian.Uint32(b[0:]),
		binary.LittleEndian.Uint32(b[4:]),
		binary.LittleEndian.Uint32(b[8:]),
		binary.LittleEndian.Uint32(b[12:]),
	}
}

// Store writes v into the first 16 bytes of b with little-endian lanes.
func Store(b []byte, v Vec) {
	_ = b[15]
	binary.LittleEndian.PutUint32(b[0:], v[0])
	binary.LittleEndian.PutUint32(b[4:], v[1])
	binary.LittleEndian.PutUint32(b[8:], v[2])
	binary.LittleEndian.PutUint32(b[12:], v[3])
}

// LoadWords reads the first four words of w.
func LoadWords(w []uint32) Vec {
	_ = w[3]
	return Vec{w[0], w[1], w[2], w[3]}
}

// StoreWords writes v into the first four words of w.
func StoreWords(w []uint32, v Vec) {
	_ = w[3]
	w[0], w[1], w[2], w[3] = v[0], v[1], v[2], v[3]
}

// Rev32 reverses the bytes within each lane (REV32 Vd.16B, Vn.16B).
func Rev32(a Vec) Vec {
	return Vec{
		bits.ReverseBytes32(a[0]),
		bits.ReverseBytes32(a[1]),
		bits.ReverseBytes32(a[2]),
		bits.ReverseBytes32(a[3]),
	}
}

// Add is lane-wise addition mod 2^32 (ADD Vd.4S).
func Add(a, b Vec) Vec {
	return Vec{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

// Dup replicates x into every lane.
func Dup(x uint32) Vec {
	return Vec{x, x, x, x}
}

// Lane0 extracts the lowest lane.
func Lane0(a Vec) uint32 {
	return a[0]
}

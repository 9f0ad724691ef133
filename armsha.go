// Package armsha provides the SHA-1 and SHA-256 block compression functions
// using the arm64 SHA1 and SHA2 cryptographic extension instructions.
//
// Only the compression step is provided. Callers own the chaining state and
// are responsible for the initial values, message padding, length encoding
// and output serialization of the full hash.
//
// The package builds on arm64, where it uses the hardware instructions, or
// anywhere with the purego build tag, where it runs a portable model of the
// same instructions. Any other configuration fails to compile.
package armsha

import "github.com/zeebo/armsha/internal/consts"

// BlockSize is the number of bytes consumed by one compression.
const BlockSize = consts.BlockLen

// Compress advances a SHA-1 chaining state by one 64 byte block. The block is
// read as sixteen big-endian words. state must not overlap block.
func Compress(state *[5]uint32, block *[64]byte) {
	compress(state, block)
}

// Compress256 advances a SHA-256 chaining state by one 64 byte block. The
// block is read as sixteen big-endian words. It also serves SHA-224 when the
// caller starts from the SHA-224 initial values. state must not overlap
// block.
func Compress256(state *[8]uint32, block *[64]byte) {
	compress256(state, block)
}

// Accelerated reports if the hardware implementation was compiled in and the
// running CPU advertises the SHA1 and SHA2 instructions. It is informational
// and never changes which implementation runs.
func Accelerated() bool {
	return hardware && consts.HasSHA1 && consts.HasSHA2
}

package armsha

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/zeebo/armsha/internal/consts"
	"github.com/zeebo/armsha/internal/utils"
)

//
// a minimal Merkle–Damgård driver so vectors can be checked end to end
//

func pad(msg []byte) []byte {
	out := make([]byte, len(msg), len(msg)+2*BlockSize)
	copy(out, msg)
	out = append(out, 0x80)
	for len(out)%BlockSize != BlockSize-8 {
		out = append(out, 0)
	}
	var length [8]byte
	binary.BigEndian.PutUint64(length[:], uint64(len(msg))<<3)
	return append(out, length[:]...)
}

func sum1(msg []byte) string {
	state := consts.IV1
	for p := pad(msg); len(p) > 0; p = p[BlockSize:] {
		Compress(&state, (*[64]byte)(p[:BlockSize]))
	}

	var out [20]byte
	utils.WordsToBytes(state[:], out[:])
	return hex.EncodeToString(out[:])
}

func sum256From(iv [8]uint32, words int, msg []byte) string {
	state := iv
	for p := pad(msg); len(p) > 0; p = p[BlockSize:] {
		Compress256(&state, (*[64]byte)(p[:BlockSize]))
	}

	var out [32]byte
	utils.WordsToBytes(state[:words], out[:])
	return hex.EncodeToString(out[:4*words])
}

func sum224(msg []byte) string { return sum256From(consts.IV224, 7, msg) }
func sum256(msg []byte) string { return sum256From(consts.IV256, 8, msg) }

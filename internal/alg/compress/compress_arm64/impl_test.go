package compress_arm64_test

import (
	"testing"

	"github.com/zeebo/assert"
	"github.com/zeebo/armsha/internal/alg/compress/compress_arm64"
	"github.com/zeebo/armsha/internal/alg/compress/compress_ref"
	"github.com/zeebo/armsha/internal/consts"
	"github.com/zeebo/pcg"
)

func randomBlock(block *[64]byte) {
	for i := 0; i < 64; i += 4 {
		v := pcg.Uint32()
		block[i+0], block[i+1], block[i+2], block[i+3] = byte(v), byte(v>>8), byte(v>>16), byte(v>>24)
	}
}

func TestCompress(t *testing.T) {
	if !consts.HasSHA1 {
		t.SkipNow()
	}

	var state [5]uint32
	var block [64]byte

	for i := 0; i < 1e5; i++ {
		for i := range &state {
			state[i] = pcg.Uint32()
		}
		randomBlock(&block)

		s1, s2 := state, state
		compress_arm64.Compress(&s1, &block)
		compress_ref.Compress(&s2, &block)

		assert.Equal(t, s1, s2)
	}
}

func TestCompress256(t *testing.T) {
	if !consts.HasSHA2 {
		t.SkipNow()
	}

	var state [8]uint32
	var block [64]byte

	for i := 0; i < 1e5; i++ {
		for i := range &state {
			state[i] = pcg.Uint32()
		}
		randomBlock(&block)

		s1, s2 := state, state
		compress_arm64.Compress256(&s1, &block)
		compress_ref.Compress256(&s2, &block)

		assert.Equal(t, s1, s2)
	}
}

func TestCompress_Unaligned(t *testing.T) {
	if !consts.HasSHA1 || !consts.HasSHA2 {
		t.SkipNow()
	}

	var buf [64 + 16]byte
	for i := range buf {
		buf[i] = byte(pcg.Uint32())
	}

	for off := 0; off < 16; off++ {
		block := (*[64]byte)(buf[off : off+64])

		s1, s2 := consts.IV1, consts.IV1
		compress_arm64.Compress(&s1, block)
		compress_ref.Compress(&s2, block)
		assert.Equal(t, s1, s2)

		h1, h2 := consts.IV256, consts.IV256
		compress_arm64.Compress256(&h1, block)
		compress_ref.Compress256(&h2, block)
		assert.Equal(t, h1, h2)
	}
}

func BenchmarkCompress(b *testing.B) {
	var state [5]uint32
	var block [64]byte

	b.SetBytes(64)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		compress_arm64.Compress(&state, &block)
	}
}

func BenchmarkCompress256(b *testing.B) {
	var state [8]uint32
	var block [64]byte

	b.SetBytes(64)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		compress_arm64.Compress256(&state, &block)
	}
}

package compress_pure_test

import (
	"testing"

	"github.com/zeebo/assert"
	"github.com/zeebo/armsha/internal/alg/compress/compress_pure"
	"github.com/zeebo/armsha/internal/alg/compress/compress_ref"
	"github.com/zeebo/armsha/internal/consts"
	"github.com/zeebo/pcg"
)

func TestCompress(t *testing.T) {
	var state [5]uint32
	var block [64]byte

	for i := 0; i < 1e5; i++ {
		for i := range &state {
			state[i] = pcg.Uint32()
		}
		for i := range &block {
			block[i] = byte(pcg.Uint32())
		}

		s1, s2 := state, state
		compress_pure.Compress(&s1, &block)
		compress_ref.Compress(&s2, &block)

		assert.Equal(t, s1, s2)
	}
}

func TestCompress256(t *testing.T) {
	var state [8]uint32
	var block [64]byte

	for i := 0; i < 1e5; i++ {
		for i := range &state {
			state[i] = pcg.Uint32()
		}
		for i := range &block {
			block[i] = byte(pcg.Uint32())
		}

		s1, s2 := state, state
		compress_pure.Compress256(&s1, &block)
		compress_ref.Compress256(&s2, &block)

		assert.Equal(t, s1, s2)
	}
}

func TestCompress_ZeroBlock(t *testing.T) {
	var block [64]byte

	s1 := consts.IV1
	compress_pure.Compress(&s1, &block)
	assert.Equal(t, s1, [5]uint32{
		0x92b404e5, 0x56588ced, 0x6c1acd4e, 0xbf053f68, 0x09f73a93,
	})

	s256 := consts.IV256
	compress_pure.Compress256(&s256, &block)
	assert.Equal(t, s256, [8]uint32{
		0xda5698be, 0x17b9b469, 0x62335799, 0x779fbeca,
		0x8ce5d491, 0xc0d26243, 0xbafef9ea, 0x1837a9d8,
	})
}

func BenchmarkCompress(b *testing.B) {
	var state [5]uint32
	var block [64]byte

	b.SetBytes(64)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		compress_pure.Compress(&state, &block)
	}
}

func BenchmarkCompress256(b *testing.B) {
	var state [8]uint32
	var block [64]byte

	b.SetBytes(64)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		compress_pure.Compress256(&state, &block)
	}
}

// go-skyfigure
// Copyright (c) 2025 The go-skyfigure Contributors.
// SPDX-License-Identifier: LGPL-3.0-or-later

package skyfigure

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// expectedChecksums independently reconstructs the game's checksum pipeline
// from orig, without calling any of recomputeChecksums' own helpers: it
// re-slices the windows and re-derives the placeholder bytes by hand, so it
// cannot share a bug with the code under test.
func expectedChecksums(orig [NumBytes]byte) (type3a, type3b, type2a, type2b, type1a, type1b, type6a, type6b uint16) {
	data := orig
	put := func(off int, v uint16) {
		data[off] = byte(v)
		data[off+1] = byte(v >> 8)
	}

	// Type 1 and Type 6 placeholders go in first, since each of those two
	// slots lies inside its own checksum's input window.
	put(0x8E, 0x0005)
	put(0x24E, 0x0005)
	put(0x110, 0x0106)
	put(0x2D0, 0x0106)

	seed3 := func(start int) []byte {
		s := make([]byte, 0, 272)
		s = append(s, data[start+0x50:start+0x70]...)
		s = append(s, data[start+0x80:start+0x90]...)
		return append(s, make([]byte, 272-48)...) // 224 zero bytes of padding
	}
	type3a = crc16CCITTFalse(seed3(area0Start))
	put(area0Start+0x0A, type3a)
	type3b = crc16CCITTFalse(seed3(area1Start))
	put(area1Start+0x0A, type3b)

	seed2 := func(start int) []byte {
		s := make([]byte, 0, 48)
		s = append(s, data[start+0x10:start+0x30]...)
		s = append(s, data[start+0x40:start+0x50]...)
		return s
	}
	type2a = crc16CCITTFalse(seed2(area0Start))
	put(area0Start+0x0C, type2a)
	type2b = crc16CCITTFalse(seed2(area1Start))
	put(area1Start+0x0C, type2b)

	type1a = crc16CCITTFalse(data[area0Start : area0Start+0x10])
	put(area0Start+0x0E, type1a)
	type1b = crc16CCITTFalse(data[area1Start : area1Start+0x10])
	put(area1Start+0x0E, type1b)

	seed6 := func(start int) []byte {
		s := make([]byte, 0, 64)
		s = append(s, data[start+0x00:start+0x20]...)
		s = append(s, data[start+0x30:start+0x50]...)
		return s
	}
	type6a = crc16CCITTFalse(seed6(area2Start))
	type6b = crc16CCITTFalse(seed6(area3Start))
	return
}

func TestRecomputeChecksumsMatchesGroundTruthPipeline(t *testing.T) {
	t.Parallel()
	var data [NumBytes]byte
	for i := range data {
		data[i] = byte(i * 7)
	}
	orig := data

	wantType3a, wantType3b, wantType2a, wantType2b, wantType1a, wantType1b, wantType6a, wantType6b := expectedChecksums(orig)

	recomputeChecksums(&data)

	le16 := func(off int) uint16 { return uint16(data[off]) | uint16(data[off+1])<<8 }

	assert.Equal(t, wantType3a, le16(0x8A), "area0 Type3 slot at +0x0A")
	assert.Equal(t, wantType3b, le16(0x24A), "area1 Type3 mirror at +0x0A")
	assert.Equal(t, wantType2a, le16(0x8C), "area0 Type2 slot at +0x0C")
	assert.Equal(t, wantType2b, le16(0x24C), "area1 Type2 mirror at +0x0C")
	assert.Equal(t, wantType1a, le16(0x8E), "area0 Type1 slot at +0x0E")
	assert.Equal(t, wantType1b, le16(0x24E), "area1 Type1 mirror at +0x0E")
	assert.Equal(t, wantType6a, le16(0x110), "area2 Type6 slot at +0x00")
	assert.Equal(t, wantType6b, le16(0x2D0), "area3 Type6 mirror at +0x00")
}

func TestRecomputeChecksumsIsDeterministic(t *testing.T) {
	t.Parallel()
	var a, b [NumBytes]byte
	a[area0Start+2] = 0x77
	b[area0Start+2] = 0x77

	recomputeChecksums(&a)
	recomputeChecksums(&b)
	assert.Equal(t, a, b)
}

// TestType1WindowSeesPlaceholderNotFinalValue pins the order dependency the
// game's checksum pass relies on: Type 1's own 16-byte window covers its
// output slot, so its input must be computed against the placeholder bytes,
// not whatever value ends up written there.
func TestType1WindowSeesPlaceholderNotFinalValue(t *testing.T) {
	t.Parallel()
	var data [NumBytes]byte
	for i := range data {
		data[i] = byte(i * 13)
	}

	recomputeChecksums(&data)

	naive := data
	naive[area0Start+0x0E] = 0x99
	naive[area0Start+0x0F] = 0x99
	naiveType1 := crc16CCITTFalse(naive[area0Start : area0Start+0x10])

	realType1 := crc16CCITTFalse(data[area0Start : area0Start+0x10])
	assert.NotEqual(t, naiveType1, realType1, "changing the already-written output byte must change the recomputed CRC, proving the window covers it")

	withPlaceholder := data
	withPlaceholder[area0Start+0x0E] = 0x05
	withPlaceholder[area0Start+0x0F] = 0x00
	stored := uint16(data[area0Start+0x0E]) | uint16(data[area0Start+0x0F])<<8
	assert.Equal(t, crc16CCITTFalse(withPlaceholder[area0Start:area0Start+0x10]), stored,
		"the stored Type 1 checksum must be the CRC of its window with the placeholder in its own slot")
}

func TestBuildType3SeedOnlyFirst48BytesPopulated(t *testing.T) {
	t.Parallel()
	var data [NumBytes]byte
	for i := 0; i < 0x20; i++ {
		data[area0Start+0x50+i] = byte(i + 1)
	}
	for i := 0; i < 0x10; i++ {
		data[area0Start+0x80+i] = byte(0x21 + i)
	}
	data[area0Start+0x90] = 0xFF // must not leak into the seed

	seed := buildType3Seed(&data, area0Start)
	for i := 0; i < 0x20; i++ {
		assert.Equal(t, byte(i+1), seed[i])
	}
	for i := 0; i < 0x10; i++ {
		assert.Equal(t, byte(0x21+i), seed[0x20+i])
	}
	for i := 0x30; i < type3SeedSize; i++ {
		assert.Equal(t, byte(0), seed[i], "byte %d must stay zero", i)
	}
}

func TestBuildType2SeedFullyPopulated(t *testing.T) {
	t.Parallel()
	var data [NumBytes]byte
	for i := 0; i < 0x20; i++ {
		data[area0Start+0x10+i] = byte(i + 1)
	}
	for i := 0; i < 0x10; i++ {
		data[area0Start+0x40+i] = byte(0x21 + i)
	}

	seed := buildType2Seed(&data, area0Start)
	for i := 0; i < 0x20; i++ {
		assert.Equal(t, byte(i+1), seed[i])
	}
	for i := 0; i < 0x10; i++ {
		assert.Equal(t, byte(0x21+i), seed[0x20+i])
	}
}

func TestBuildType6SeedFullyPopulated(t *testing.T) {
	t.Parallel()
	var data [NumBytes]byte
	for i := 0; i < 0x20; i++ {
		data[area2Start+i] = byte(i + 1)
	}
	for i := 0; i < 0x20; i++ {
		data[area2Start+0x30+i] = byte(0x21 + i)
	}

	seed := buildType6Seed(&data, area2Start)
	for i := 0; i < 0x20; i++ {
		assert.Equal(t, byte(i+1), seed[i])
	}
	for i := 0; i < 0x20; i++ {
		assert.Equal(t, byte(0x21+i), seed[0x20+i])
	}
}

// go-skyfigure
// Copyright (c) 2025 The go-skyfigure Contributors.
// SPDX-License-Identifier: LGPL-3.0-or-later

package skyfigure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsedBlockMaskFlagsNonzeroBlocksOnly(t *testing.T) {
	t.Parallel()
	var data [NumBytes]byte
	data[blockOffset(3)+5] = 0x01
	data[blockOffset(40)+0] = 0xFF

	used := usedBlockMask(&data)
	for b := 0; b < numBlocks; b++ {
		want := b == 3 || b == 40
		assert.Equal(t, want, used[b], "block %d", b)
	}
}

func TestBuildFreshTagHeaderFields(t *testing.T) {
	t.Parallel()
	uid := [4]byte{0x11, 0x22, 0x33, 0x44}
	data := buildFreshTag(42, 7, uid)

	assert.Equal(t, uid[:], data[0:4])
	assert.Equal(t, bcc(uid), data[4])
	assert.Equal(t, byte(0x81), data[5])
	assert.Equal(t, [2]byte{0x01, 0x0F}, [2]byte{data[6], data[7]})
	assert.Equal(t, byte(42), data[0x10])
	assert.Equal(t, byte(0), data[0x11])
	assert.Equal(t, byte(7), data[0x1C])

	checksum := crc16CCITTFalse(data[0x00:0x1E])
	assert.Equal(t, byte(checksum), data[0x1E])
	assert.Equal(t, byte(checksum>>8), data[0x1F])
}

func TestBuildFreshTagSectorTrailersDiffer(t *testing.T) {
	t.Parallel()
	uid := [4]byte{0xAA, 0xBB, 0xCC, 0xDD}
	data := buildFreshTag(1, 1, uid)

	seen := map[[6]byte]bool{}
	for s := 1; s < NumSectors; s++ {
		off := sectorTrailerOffset(s)
		var key [6]byte
		copy(key[:], data[off:off+6])
		assert.False(t, seen[key], "sector %d key collides with a previous sector", s)
		seen[key] = true
	}
}

func TestSectorKeyAMatchesSector0Constant(t *testing.T) {
	t.Parallel()
	uid := [4]byte{1, 2, 3, 4}
	assert.Equal(t, sector0KeyA, SectorKeyA(uid, 0))
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	t.Parallel()
	uid := [4]byte{0x01, 0x02, 0x03, 0x04}
	data := buildFreshTag(99, 5, uid)
	data[blockOffset(9)] = 0x42 // mark a data block used

	used := usedBlockMask(&data)
	encoded, err := encodeTag(data, used)
	require.NoError(t, err)

	decoded, decodedUsed, err := decodeTag(encoded)
	require.NoError(t, err)
	assert.Equal(t, data, decoded)
	assert.Equal(t, used, decodedUsed)
}

func TestEncodeDecodeLeavesSector0Plaintext(t *testing.T) {
	t.Parallel()
	uid := [4]byte{9, 9, 9, 9}
	data := buildFreshTag(1, 1, uid)
	used := usedBlockMask(&data)

	encoded, err := encodeTag(data, used)
	require.NoError(t, err)

	assert.Equal(t, data[0:BlockSize*BlocksPerSector], encoded[0:BlockSize*BlocksPerSector])
}

// go-skyfigure
// Copyright (c) 2025 The go-skyfigure Contributors.
// SPDX-License-Identifier: LGPL-3.0-or-later
//
// This file is part of go-skyfigure.
//
// go-skyfigure is free software; you can redistribute it and/or
// modify it under the terms of the GNU Lesser General Public
// License as published by the Free Software Foundation; either
// version 3 of the License, or (at your option) any later version.
//
// go-skyfigure is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with go-skyfigure; if not, write to the Free Software Foundation,
// Inc., 51 Franklin Street, Fifth Floor, Boston, MA  02110-1301, USA.

package skyfigure

// Area byte ranges. Areas 0/1 mirror each other, as do areas 2/3; the
// mirrored area sits 0x1C0 bytes after its partner.
const (
	area0Start, area0End = 0x080, 0x110
	area1Start, area1End = 0x240, 0x2D0
	area2Start, area2End = 0x110, 0x1A0
	area3Start, area3End = 0x2D0, 0x360

	mirrorOffset = area1Start - area0Start // 0x1C0

	// Checksum output offsets, relative to the start of the area each
	// checksum is computed over.
	type3ChecksumRelOff = 0x0A
	type2ChecksumRelOff = 0x0C
	type1ChecksumRelOff = 0x0E
	type6ChecksumRelOff = 0x00

	writeCounterOff0 = 0x089
	writeCounterOff1 = 0x249
	writeCounterOff2 = 0x112
	writeCounterOff3 = 0x2D2

	type3SeedSize = 272 // padded; only the first 48 bytes are populated
	type2SeedSize = 48
	type6SeedSize = 64
)

// type1Placeholder and type6Placeholder are written into their checksum
// slots before any checksum is computed, since each of those two slots lies
// inside its own checksum's input window. Type 2 and Type 3's output slots
// lie inside Type 1's window, but they already hold their final values when
// Type 1 is computed, so they need no placeholder.
var (
	type1Placeholder = [2]byte{0x05, 0x00}
	type6Placeholder = [2]byte{0x06, 0x01}
)

// buildType3Seed builds the Type-3 checksum's padded 272-byte input: area
// bytes 0x50..0x70 and 0x80..0x90 (48 bytes total), the rest left zero.
func buildType3Seed(data *[NumBytes]byte, areaStart int) [type3SeedSize]byte {
	var seed [type3SeedSize]byte
	copy(seed[0x00:0x20], data[areaStart+0x50:areaStart+0x70])
	copy(seed[0x20:0x30], data[areaStart+0x80:areaStart+0x90])
	return seed
}

// buildType2Seed builds the Type-2 checksum's 48-byte input: area bytes
// 0x10..0x30 and 0x40..0x50.
func buildType2Seed(data *[NumBytes]byte, areaStart int) [type2SeedSize]byte {
	var seed [type2SeedSize]byte
	copy(seed[0x00:0x20], data[areaStart+0x10:areaStart+0x30])
	copy(seed[0x20:0x30], data[areaStart+0x40:areaStart+0x50])
	return seed
}

// buildType6Seed builds the Type-6 checksum's 64-byte input: area bytes
// 0x00..0x20 and 0x30..0x50.
func buildType6Seed(data *[NumBytes]byte, areaStart int) [type6SeedSize]byte {
	var seed [type6SeedSize]byte
	copy(seed[0x00:0x20], data[areaStart+0x00:areaStart+0x20])
	copy(seed[0x20:0x40], data[areaStart+0x30:areaStart+0x50])
	return seed
}

// recomputeChecksums recomputes all eight area checksums — Types 1, 2 and 3
// against areas 0 and 1, Type 6 against areas 2 and 3 — in place. The order
// matters: Type 1's 16-byte window covers both the Type 2 and Type 3 output
// slots, so those two must be computed and written before Type 1 reads the
// area.
// Computing in 3, 2, 1, 6 order and writing each result immediately
// reproduces the game's own checksum pass byte for byte.
func recomputeChecksums(data *[NumBytes]byte) {
	putLE16(data[area0Start+type1ChecksumRelOff:], be16(type1Placeholder))
	putLE16(data[area1Start+type1ChecksumRelOff:], be16(type1Placeholder))
	putLE16(data[area2Start+type6ChecksumRelOff:], be16(type6Placeholder))
	putLE16(data[area3Start+type6ChecksumRelOff:], be16(type6Placeholder))

	seed3a := buildType3Seed(data, area0Start)
	putLE16(data[area0Start+type3ChecksumRelOff:], crc16CCITTFalse(seed3a[:]))
	seed3b := buildType3Seed(data, area1Start)
	putLE16(data[area1Start+type3ChecksumRelOff:], crc16CCITTFalse(seed3b[:]))

	seed2a := buildType2Seed(data, area0Start)
	putLE16(data[area0Start+type2ChecksumRelOff:], crc16CCITTFalse(seed2a[:]))
	seed2b := buildType2Seed(data, area1Start)
	putLE16(data[area1Start+type2ChecksumRelOff:], crc16CCITTFalse(seed2b[:]))

	type1a := crc16CCITTFalse(data[area0Start : area0Start+0x10])
	putLE16(data[area0Start+type1ChecksumRelOff:], type1a)
	type1b := crc16CCITTFalse(data[area1Start : area1Start+0x10])
	putLE16(data[area1Start+type1ChecksumRelOff:], type1b)

	seed6a := buildType6Seed(data, area2Start)
	putLE16(data[area2Start+type6ChecksumRelOff:], crc16CCITTFalse(seed6a[:]))
	seed6b := buildType6Seed(data, area3Start)
	putLE16(data[area3Start+type6ChecksumRelOff:], crc16CCITTFalse(seed6b[:]))
}

func putLE16(dst []byte, v uint16) {
	dst[0] = byte(v)
	dst[1] = byte(v >> 8)
}

// be16 reinterprets a placeholder's two stored bytes as the little-endian
// uint16 putLE16 expects, so placeholders can be written with the same
// helper as real checksum values.
func be16(placeholder [2]byte) uint16 {
	return uint16(placeholder[0]) | uint16(placeholder[1])<<8
}

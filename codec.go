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

import "encoding/binary"

const numBlocks = NumSectors * BlocksPerSector // 64

// usedBlockMask computes which 16-byte blocks of data contain at least one
// nonzero byte. Only used blocks participate in per-block AES encryption.
func usedBlockMask(data *[NumBytes]byte) [numBlocks]bool {
	var used [numBlocks]bool
	for b := range numBlocks {
		off := blockOffset(b)
		for _, v := range data[off : off+BlockSize] {
			if v != 0 {
				used[b] = true
				break
			}
		}
	}
	return used
}

// deriveSectorKeyA computes sector s's (1..15) Key-A as the low six
// little-endian bytes of CRC-48(UID || sector).
func deriveSectorKeyA(uid [4]byte, sector int) [6]byte {
	input := make([]byte, 0, 5)
	input = append(input, uid[:]...)
	input = append(input, byte(sector))

	crc := crc48KeyA(input)
	var full [8]byte
	binary.LittleEndian.PutUint64(full[:], crc)

	var key [6]byte
	copy(key[:], full[:6])
	return key
}

// SectorKeyA returns the Key-A that authenticates sector (0..15) of a tag
// with the given UID. Sector 0 always uses the fixed manufacturer key;
// sectors 1-15 use the per-sector CRC-48 derivation. This is exported for
// the nfc package, which needs it to authenticate against a physical
// reader before it can read or write blocks.
func SectorKeyA(uid [4]byte, sector int) [6]byte {
	if sector == 0 {
		return sector0KeyA
	}
	return deriveSectorKeyA(uid, sector)
}

// buildFreshTag constructs a brand-new 1024-byte buffer for (toyID, variantID, uid)
// per spec section 4.3's construction steps. Only the toy header's CRC-16 is
// written here; area checksums and write counters are not touched — those
// are established on the first mutation.
func buildFreshTag(toyID, variantID uint16, uid [4]byte) [NumBytes]byte {
	var data [NumBytes]byte

	copy(data[0:4], uid[:])
	data[4] = bcc(uid)
	data[5] = sak
	copy(data[6:8], atqa[:])

	binary.LittleEndian.PutUint16(data[0x10:0x12], toyID)
	binary.LittleEndian.PutUint16(data[0x1C:0x1E], variantID)

	checksum := crc16CCITTFalse(data[0x00:0x1E])
	binary.LittleEndian.PutUint16(data[0x1E:0x20], checksum)

	sector0Trailer := sectorTrailerOffset(0)
	copy(data[sector0Trailer:sector0Trailer+6], sector0KeyA[:])
	copy(data[sector0Trailer+6:sector0Trailer+10], sector0Acc[:])

	for s := 1; s < NumSectors; s++ {
		keyA := deriveSectorKeyA(uid, s)
		trailer := sectorTrailerOffset(s)
		copy(data[trailer:trailer+6], keyA[:])
		copy(data[trailer+6:trailer+10], dataSectAcc[:])
	}

	return data
}

// isSectorTrailerBlock reports whether absolute block b is the last block
// (trailer) of its sector.
func isSectorTrailerBlock(b int) bool {
	return b%BlocksPerSector == BlocksPerSector-1
}

// decryptTagInPlace decrypts every used, non-trailer block of sectors 1..15
// in data, using the keys derived from the (still-plaintext) sector 0 / toy
// header blocks. Sector 0 and sector trailers are never encrypted.
func decryptTagInPlace(data *[NumBytes]byte, used [numBlocks]bool) error {
	return cryptUsedBlocks(data, used, false)
}

// encryptTagInPlace is the inverse of decryptTagInPlace, used just before a save.
func encryptTagInPlace(data *[NumBytes]byte, used [numBlocks]bool) error {
	return cryptUsedBlocks(data, used, true)
}

func cryptUsedBlocks(data *[NumBytes]byte, used [numBlocks]bool, encrypt bool) error {
	for sector := 1; sector < NumSectors; sector++ {
		for j := range BlocksPerSector - 1 {
			block := sector*BlocksPerSector + j
			if isSectorTrailerBlock(block) || !used[block] {
				continue
			}
			key := blockKey(data, block)
			off := blockOffset(block)
			if err := cryptBlock(data[off:off+BlockSize], key, encrypt); err != nil {
				return err
			}
		}
	}
	return nil
}

// decodeTag parses a raw 1024-byte tag image into a plaintext working copy
// plus its used-block mask. The used mask is computed from the ciphertext
// (a nonzero byte survives encryption) before decryption runs.
func decodeTag(raw [NumBytes]byte) ([NumBytes]byte, [numBlocks]bool, error) {
	used := usedBlockMask(&raw)
	if err := decryptTagInPlace(&raw, used); err != nil {
		return raw, used, err
	}
	return raw, used, nil
}

// encodeTag takes a plaintext working buffer and used mask and returns the
// ciphertext ready to write to a file or a physical tag. The input buffer is
// left untouched; encryption runs on a copy.
func encodeTag(data [NumBytes]byte, used [numBlocks]bool) ([NumBytes]byte, error) {
	if err := encryptTagInPlace(&data, used); err != nil {
		return data, err
	}
	return data, nil
}

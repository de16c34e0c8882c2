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

// Mifare Classic 1K geometry.
const (
	BlockSize        = 16 // bytes per block
	BlocksPerSector  = 4
	NumSectors       = 16
	NumBytes         = BlockSize * BlocksPerSector * NumSectors // 1024
	manufacturerSect = 0
)

// Fixed sector-0 constants.
var (
	sak          = byte(0x81)
	atqa         = [2]byte{0x01, 0x0F}
	sector0KeyA  = [6]byte{0x4B, 0x0B, 0x20, 0x10, 0x7C, 0xCB}
	sector0Acc   = [4]byte{0x0F, 0x0F, 0x0F, 0x69}
	dataSectAcc  = [4]byte{0x7F, 0x0F, 0x08, 0x69}
	copyrightStr = []byte(" Copyright (C) 2010 Activision. All Rights Reserved. ")
)

// sectorTrailerOffset returns the absolute byte offset of sector s's trailer
// block (the fourth block in the sector).
func sectorTrailerOffset(sector int) int {
	return (sector*BlocksPerSector + (BlocksPerSector - 1)) * BlockSize
}

// blockOffset returns the absolute byte offset of an absolute block index.
func blockOffset(block int) int {
	return block * BlockSize
}

// bcc computes the XOR checksum of the 4-byte UID.
func bcc(uid [4]byte) byte {
	return uid[0] ^ uid[1] ^ uid[2] ^ uid[3]
}

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

// crc16CCITTFalse computes CRC-16/CCITT-FALSE: width 16, poly 0x1021,
// init 0xFFFF, no reflection, xorout 0. Check value for "123456789" is 0x29B1.
func crc16CCITTFalse(data []byte) uint16 {
	const poly = 0x1021
	crc := uint16(0xFFFF)
	for _, b := range data {
		crc ^= uint16(b) << 8
		for range 8 {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ poly
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}

// crc48KeyA computes the game's custom CRC-48 used to derive sector-trailer
// Key-A from UID||sector: width 48, poly 0x42F0E1EBA9EA3693,
// init 2*2*3*1103*12868356821 = 170581923840876, no reflection, xorout 0.
func crc48KeyA(data []byte) uint64 {
	const (
		poly      = 0x42F0E1EBA9EA3693
		initValue = 170581923840876
		width     = 48
		topBit    = uint64(1) << (width - 1)
		mask      = uint64(1)<<width - 1
	)
	crc := uint64(initValue) & mask
	for _, b := range data {
		crc ^= uint64(b) << (width - 8)
		for range 8 {
			if crc&topBit != 0 {
				crc = (crc<<1 ^ poly) & mask
			} else {
				crc = (crc << 1) & mask
			}
		}
	}
	return crc
}

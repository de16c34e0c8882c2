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

import (
	"crypto/aes"
	"crypto/md5" //nolint:gosec // required by the tag format, not used for secrecy
)

const seedSize = 0x56 // 86 bytes

// blockSeed builds the 86-byte per-block encryption seed: bytes 0..0x20 are
// the UID block and toy header block, byte 0x20 is the absolute block index,
// and the remainder is the fixed copyright constant.
func blockSeed(data *[NumBytes]byte, blockIdx int) [seedSize]byte {
	var seed [seedSize]byte
	copy(seed[0:0x20], data[0:0x20])
	seed[0x20] = byte(blockIdx)
	copy(seed[0x21:], copyrightStr)
	return seed
}

// blockKey derives the AES-128 key for a given absolute block index: MD5 of
// the block's seed.
func blockKey(data *[NumBytes]byte, blockIdx int) [16]byte {
	seed := blockSeed(data, blockIdx)
	return md5.Sum(seed[:]) //nolint:gosec // key derivation per tag format, not a security boundary
}

// cryptBlock encrypts or decrypts a single 16-byte block in place with
// AES-128-ECB under the given key. AES is its own inverse choice point here:
// encrypting and decrypting only differ in which cipher method is invoked.
func cryptBlock(block []byte, key [16]byte, encrypt bool) error {
	cipherBlock, err := aes.NewCipher(key[:])
	if err != nil {
		return err
	}
	out := make([]byte, BlockSize)
	if encrypt {
		cipherBlock.Encrypt(out, block)
	} else {
		cipherBlock.Decrypt(out, block)
	}
	copy(block, out)
	return nil
}

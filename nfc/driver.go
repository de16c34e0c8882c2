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

// Package nfc talks to Mifare Classic 1K-capable NFC readers over whatever
// transport the hardware exposes (serial/UART, I2C). It knows nothing about
// the tag's own encoding — that's the root skyfigure package's job — it
// only moves 16-byte blocks in and out of sectors under a supplied key.
package nfc

import (
	"context"
	"errors"
)

// Errors returned by Driver implementations.
var (
	ErrNoTag            = errors.New("nfc: no tag present")
	ErrNotAuthenticated = errors.New("nfc: sector not authenticated")
	ErrAuthFailed       = errors.New("nfc: authentication failed")
	ErrNoReader         = errors.New("nfc: no reader found")
)

// KeyType selects which of a Mifare sector trailer's two keys to
// authenticate with.
type KeyType int

const (
	KeyA KeyType = iota
	KeyB
)

// Driver is the contract a transport implementation (serial, I2C, or a test
// mock) must satisfy to read and write a Mifare Classic 1K tag.
type Driver interface {
	// Connect opens the underlying transport. It must be called before any
	// other method.
	Connect(ctx context.Context) error

	// Close releases the underlying transport.
	Close() error

	// UID returns the UID of the tag currently on the reader's field.
	UID(ctx context.Context) ([4]byte, error)

	// Authenticate proves knowledge of the given key for sector's trailer,
	// required before ReadBlock/WriteBlock against any block in that sector.
	Authenticate(ctx context.Context, sector int, keyType KeyType, key [6]byte) error

	// ReadBlock reads the 16 bytes at the given absolute block index.
	ReadBlock(ctx context.Context, block int) ([16]byte, error)

	// WriteBlock writes the 16 bytes at the given absolute block index.
	WriteBlock(ctx context.Context, block int, data [16]byte) error
}

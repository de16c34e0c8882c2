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

package nfc

import (
	"context"
	"sync"
)

// MockDriver is an in-memory Driver backed by a 1024-byte buffer, for tests
// and offline development. It has no notion of real Mifare authentication:
// Authenticate always succeeds unless FailAuthFor has been called for the
// given sector.
type MockDriver struct {
	mu          sync.Mutex
	uid         [4]byte
	blocks      [64][16]byte
	authed      map[int]bool
	failAuthFor map[int]bool
	connected   bool
}

// NewMockDriver returns a MockDriver seeded with a raw 1024-byte tag image
// (as produced by skyfigure.Figure.Encode) and the tag's UID.
func NewMockDriver(uid [4]byte, raw [1024]byte) *MockDriver {
	d := &MockDriver{
		uid:         uid,
		authed:      make(map[int]bool),
		failAuthFor: make(map[int]bool),
	}
	for b := 0; b < 64; b++ {
		copy(d.blocks[b][:], raw[b*16:b*16+16])
	}
	return d
}

// FailAuthFor makes Authenticate fail for the given sector, to exercise
// error paths.
func (d *MockDriver) FailAuthFor(sector int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.failAuthFor[sector] = true
}

// Image returns a copy of the mock tag's current 1024-byte contents.
func (d *MockDriver) Image() [1024]byte {
	d.mu.Lock()
	defer d.mu.Unlock()
	var out [1024]byte
	for b := 0; b < 64; b++ {
		copy(out[b*16:b*16+16], d.blocks[b][:])
	}
	return out
}

func (d *MockDriver) Connect(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.connected = true
	return nil
}

func (d *MockDriver) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.connected = false
	return nil
}

func (d *MockDriver) UID(ctx context.Context) ([4]byte, error) {
	if !d.connected {
		return [4]byte{}, ErrNoReader
	}
	return d.uid, nil
}

func (d *MockDriver) Authenticate(ctx context.Context, sector int, keyType KeyType, key [6]byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.failAuthFor[sector] {
		return ErrAuthFailed
	}
	d.authed[sector] = true
	return nil
}

func (d *MockDriver) ReadBlock(ctx context.Context, block int) ([16]byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if block < 0 || block >= 64 {
		return [16]byte{}, ErrNoTag
	}
	if !d.authed[block/4] {
		return [16]byte{}, ErrNotAuthenticated
	}
	return d.blocks[block], nil
}

func (d *MockDriver) WriteBlock(ctx context.Context, block int, data [16]byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if block < 0 || block >= 64 {
		return ErrNoTag
	}
	if !d.authed[block/4] {
		return ErrNotAuthenticated
	}
	d.blocks[block] = data
	return nil
}

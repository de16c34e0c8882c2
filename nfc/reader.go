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
	"fmt"

	skyfigure "github.com/skyfigure-project/go-skyfigure"
)

// ReadFigure authenticates every sector of the tag on d and reads its full
// 1024-byte image, then decodes it into a Figure. Reads retry transient
// per-block failures via skyfigure.Retry; a persistent failure on any
// sector aborts the whole read.
func ReadFigure(ctx context.Context, d Driver, policy skyfigure.RetryPolicy) (*skyfigure.Figure, error) {
	uid, err := d.UID(ctx)
	if err != nil {
		return nil, fmt.Errorf("nfc: read uid: %w", err)
	}

	var raw [skyfigure.NumBytes]byte
	for sector := 0; sector < skyfigure.NumSectors; sector++ {
		key := skyfigure.SectorKeyA(uid, sector)
		err := skyfigure.Retry(ctx, policy, isTransient, func() error {
			return d.Authenticate(ctx, sector, KeyA, key)
		})
		if err != nil {
			return nil, fmt.Errorf("nfc: authenticate sector %d: %w", sector, err)
		}

		for j := 0; j < skyfigure.BlocksPerSector; j++ {
			block := sector*skyfigure.BlocksPerSector + j
			var data [16]byte
			err := skyfigure.Retry(ctx, policy, isTransient, func() error {
				var readErr error
				data, readErr = d.ReadBlock(ctx, block)
				return readErr
			})
			if err != nil {
				return nil, fmt.Errorf("nfc: read block %d: %w", block, err)
			}
			copy(raw[block*16:block*16+16], data[:])
		}
	}

	return skyfigure.Decode(raw[:])
}

// WriteFigure authenticates sectors 1..15 of the tag on d and writes their
// data blocks from fig's encoded 1024-byte image. Sector 0 (UID and toy
// header) and the sector trailers are never written: they do not change
// after the tag was first personalized.
func WriteFigure(ctx context.Context, d Driver, policy skyfigure.RetryPolicy, fig *skyfigure.Figure) error {
	uid, err := d.UID(ctx)
	if err != nil {
		return fmt.Errorf("nfc: read uid: %w", err)
	}

	encoded, err := fig.Encode()
	if err != nil {
		return fmt.Errorf("nfc: encode: %w", err)
	}

	for sector := 1; sector < skyfigure.NumSectors; sector++ {
		key := skyfigure.SectorKeyA(uid, sector)
		err := skyfigure.Retry(ctx, policy, isTransient, func() error {
			return d.Authenticate(ctx, sector, KeyA, key)
		})
		if err != nil {
			return fmt.Errorf("nfc: authenticate sector %d: %w", sector, err)
		}

		for j := 0; j < skyfigure.BlocksPerSector-1; j++ {
			block := sector*skyfigure.BlocksPerSector + j
			var data [16]byte
			copy(data[:], encoded[block*16:block*16+16])
			err := skyfigure.Retry(ctx, policy, isTransient, func() error {
				return d.WriteBlock(ctx, block, data)
			})
			if err != nil {
				return fmt.Errorf("nfc: write block %d: %w", block, err)
			}
		}
	}
	return nil
}

// isTransient decides which Driver errors are worth retrying. Missing-tag
// and not-authenticated conditions are stable failures, not RF noise.
func isTransient(err error) bool {
	switch err {
	case ErrNoTag, ErrNotAuthenticated, ErrNoReader:
		return false
	default:
		return true
	}
}

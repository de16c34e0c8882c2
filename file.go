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
	"fmt"
	"os"
	"path/filepath"
)

// FromFile reads a raw 1024-byte tag image from path and decodes it.
func FromFile(path string) (*Figure, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("skyfigure: read %s: %w", path, err)
	}
	fig, err := Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("skyfigure: decode %s: %w", path, err)
	}
	return fig, nil
}

// SaveToFile encodes the figure and atomically replaces path's contents: the
// image is written to a temp file in path's directory, then renamed over
// path, so a reader never observes a partially-written image.
func (f *Figure) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if _, err := os.Stat(dir); err != nil {
		return fmt.Errorf("%w: %s", ErrNoParentDir, dir)
	}

	encoded, err := f.Encode()
	if err != nil {
		return fmt.Errorf("skyfigure: encode: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".skyfigure-*.tmp")
	if err != nil {
		return fmt.Errorf("skyfigure: create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(encoded[:]); err != nil {
		tmp.Close()
		return fmt.Errorf("skyfigure: write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("skyfigure: close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("skyfigure: replace %s: %w", path, err)
	}
	return nil
}

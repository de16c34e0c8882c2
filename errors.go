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

import "errors"

// Codec and figure errors.
var (
	// ErrShortBuffer is returned when a raw tag buffer is not exactly NumBytes long.
	ErrShortBuffer = errors.New("skyfigure: buffer is not 1024 bytes")

	// ErrWrongKind is returned when a kind-specific accessor (Character, Vehicle)
	// is invoked on a figure whose toy does not belong to that kind.
	ErrWrongKind = errors.New("skyfigure: figure is not of the requested kind")

	// ErrNoParentDir is returned by SaveToFile when the destination's parent
	// directory does not exist.
	ErrNoParentDir = errors.New("skyfigure: destination has no parent directory")
)

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

package catalog

// Named variant IDs. A variant ID is a composite: the high byte is the game
// wave the mold first shipped in, the low byte is a per-wave deco index.
// These constants are the representative subset this module ships with.
const (
	VariantSeries1  uint16 = 0x0000
	VariantSeries2  uint16 = 0x0100
	VariantSeries3  uint16 = 0x0200
	VariantLightCore uint16 = 0x0301
	VariantLegendary uint16 = 0x0401
)

var variantNames = map[uint16]string{
	VariantSeries1:   "Series 1",
	VariantSeries2:   "Series 2",
	VariantSeries3:   "Series 3",
	VariantLightCore: "LightCore",
	VariantLegendary: "Legendary",
}

// Variant is the decomposition of a 16-bit variant ID into the game wave it
// belongs to and its deco index within that wave.
type Variant struct {
	ID      uint16
	Name    string // catalogue name, "" if unrecognized
	Game    uint8  // high byte: wave the mold shipped in
	DecoID  uint8  // low byte: per-wave deco index
}

// DecomposeVariant splits a variant ID into its Game/DecoID halves and
// resolves its catalogue name, if any.
func DecomposeVariant(variantID uint16) Variant {
	return Variant{
		ID:     variantID,
		Name:   variantNames[variantID],
		Game:   uint8(variantID >> 8),
		DecoID: uint8(variantID),
	}
}

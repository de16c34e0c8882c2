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

// Named hat IDs. Hats are a Character-only cosmetic field; this is a
// representative subset of the full hat catalogue.
const (
	HatNone       uint16 = 0
	HatPartyHat   uint16 = 1
	HatTopHat     uint16 = 2
	HatPirateHat  uint16 = 3
	HatCrown      uint16 = 4
	HatWizardHat  uint16 = 5
)

var hats = map[uint16]string{
	HatNone:      "None",
	HatPartyHat:  "Party Hat",
	HatTopHat:    "Top Hat",
	HatPirateHat: "Pirate Hat",
	HatCrown:     "Crown",
	HatWizardHat: "Wizard Hat",
}

// HatName returns the catalogue name for a hat ID, or "" if unrecognized.
func HatName(hatID uint16) string {
	return hats[hatID]
}

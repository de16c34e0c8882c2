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

// Package catalog holds the external naming tables for toy IDs, hat IDs and
// variant IDs: data the tag codec round-trips but never interprets on its
// own. Tables here are a representative subset of the franchise's full
// catalogue, large enough to exercise every toy Kind and the variant
// decomposition rules; extending a table means adding entries to its map.
package catalog

// Kind classifies a toy ID into one of the franchise's figure categories.
type Kind int

const (
	KindUnknown Kind = iota
	KindCharacter
	KindVehicle
	KindTrap
	KindItem
	KindExpansion
	KindImaginatorCrystal
)

func (k Kind) String() string {
	switch k {
	case KindCharacter:
		return "Character"
	case KindVehicle:
		return "Vehicle"
	case KindTrap:
		return "Trap"
	case KindItem:
		return "Item"
	case KindExpansion:
		return "Expansion"
	case KindImaginatorCrystal:
		return "ImaginatorCrystal"
	default:
		return "Unknown"
	}
}

// Toy is the tagged union of everything a toy ID can classify as: the ID,
// its catalogue name (empty when unrecognized) and its Kind.
type Toy struct {
	ID   uint16
	Name string
	Kind Kind
}

// Named toy IDs, grouped by kind. IDs and names are drawn from the
// franchise's published figure catalogue across its Spyro's Adventure
// through Imaginators waves.
const (
	TriggerHappy  uint16 = 1
	Gill_Grunt    uint16 = 2
	SpyroChar     uint16 = 3
	Stealth_Elf   uint16 = 12
	Eruptor       uint16 = 7
	Chop_Chop     uint16 = 14
	BoomerChar    uint16 = 18
	WreckingBall  uint16 = 19
	CamoChar      uint16 = 9
	ZapChar       uint16 = 8
)

const (
	Dragonfire_Cannon uint16 = 1000
	Sky_Jet           uint16 = 1001
	Shield_Striker    uint16 = 1002
)

const (
	Hand_Of_Fate uint16 = 2000
	Piggy_Bank   uint16 = 2001
	Scorp_Trap   uint16 = 2002
)

const (
	Healing_Elixir     uint16 = 3000
	Ghost_Pirate_Sword uint16 = 3001
)

const (
	Dragonfire_Cannon_Expansion uint16 = 4000
	Scorpion_Striker_Expansion  uint16 = 4001
)

const (
	Air_Crystal   uint16 = 5000
	Earth_Crystal uint16 = 5001
)

var characters = map[uint16]string{
	TriggerHappy: "Trigger Happy",
	Gill_Grunt:   "Gill Grunt",
	SpyroChar:    "Spyro",
	Stealth_Elf:  "Stealth Elf",
	Eruptor:      "Eruptor",
	Chop_Chop:    "Chop Chop",
	BoomerChar:   "Boomer",
	WreckingBall: "Wrecking Ball",
	CamoChar:     "Camo",
	ZapChar:      "Zap",
}

var vehicles = map[uint16]string{
	Dragonfire_Cannon: "Dragonfire Cannon",
	Sky_Jet:           "Sky Jet",
	Shield_Striker:    "Shield Striker",
}

var traps = map[uint16]string{
	Hand_Of_Fate: "Hand of Fate",
	Piggy_Bank:   "Piggy Bank",
	Scorp_Trap:   "Scorp",
}

var items = map[uint16]string{
	Healing_Elixir:     "Healing Elixir",
	Ghost_Pirate_Sword: "Ghost Pirate Sword",
}

var expansions = map[uint16]string{
	Dragonfire_Cannon_Expansion: "Dragonfire Cannon Expansion",
	Scorpion_Striker_Expansion:  "Scorpion Striker Expansion",
}

var imaginatorCrystals = map[uint16]string{
	Air_Crystal:   "Air Crystal",
	Earth_Crystal: "Earth Crystal",
}

// Classify resolves a 16-bit toy ID to a Toy. Unrecognized IDs decode to
// KindUnknown with an empty Name rather than an error — catalogue misses
// are a normal occurrence, not a failure.
func Classify(toyID uint16) Toy {
	if name, ok := characters[toyID]; ok {
		return Toy{ID: toyID, Name: name, Kind: KindCharacter}
	}
	if name, ok := vehicles[toyID]; ok {
		return Toy{ID: toyID, Name: name, Kind: KindVehicle}
	}
	if name, ok := traps[toyID]; ok {
		return Toy{ID: toyID, Name: name, Kind: KindTrap}
	}
	if name, ok := items[toyID]; ok {
		return Toy{ID: toyID, Name: name, Kind: KindItem}
	}
	if name, ok := expansions[toyID]; ok {
		return Toy{ID: toyID, Name: name, Kind: KindExpansion}
	}
	if name, ok := imaginatorCrystals[toyID]; ok {
		return Toy{ID: toyID, Name: name, Kind: KindImaginatorCrystal}
	}
	return Toy{ID: toyID, Kind: KindUnknown}
}

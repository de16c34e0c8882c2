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
	"encoding/binary"
	"sort"

	"github.com/skyfigure-project/go-skyfigure/catalog"
)

// Character field offsets. Gold, the upgrade word and Hat are relative to
// the main area pair's base (areas 0/1); XP is split across both pairs; Wow
// Pow lives in the extra pair (areas 2/3). Every setter writes both halves
// of whichever pair it targets, mirroring the tag format's own writers.
const (
	charXPPart1Off = 0x00 // pairMain; uint16, cap maxXPPart1
	charGoldOff    = 0x03 // pairMain; uint16
	charUpgradeOff = 0x10 // pairMain; bits 0-1: path, bits 2-9: upgrade bitmap
	charHatOff     = 0x14 // pairMain; uint16

	charWowPowOff  = 0x06 // pairExtra; 1 byte, 0 or 1
	charXPPart2Off = 0x03 // pairExtra; uint16, cap maxXPPart2
	charXPPart3Off = 0x08 // pairExtra; 3 little-endian bytes, cap maxXPPart3

	maxLevel   = 20
	maxXPPart1 = 33_000
	maxXPPart2 = 63_500
	maxXPPart3 = 101_000
	maxXP      = maxXPPart1 + maxXPPart2 + maxXPPart3 // 197_500
	maxGold    = 0xFFFF
)

// levelThresholds[n] is the XP required to reach level n. Index 0 is an
// unreachable sentinel below the minimum possible XP; levels run [1, maxLevel].
var levelThresholds = []int64{
	-1, 0, 1000, 2200, 3800, 6000, 9000, 13000, 18200, 24800,
	33000, 42700, 53900, 66600, 80800, 96500, 113700, 132400, 152600, 174300, 197500,
}

// levelForXP returns the largest level n such that levelThresholds[n] <= xp.
func levelForXP(xp uint32) int {
	idx := sort.Search(len(levelThresholds), func(i int) bool {
		return levelThresholds[i] > int64(xp)
	})
	return idx - 1
}

// UpgradePath is a character's chosen upgrade path, packed into the low 2
// bits of the upgrade word.
type UpgradePath uint8

const (
	UpgradePathNone   UpgradePath = 0b00
	UpgradePathTop    UpgradePath = 0b01
	UpgradePathBottom UpgradePath = 0b11
)

// Character is the field accessor facade for toys classified as
// catalog.KindCharacter. It holds no state of its own beyond the Figure it
// borrows.
type Character struct {
	fig *Figure
}

func (c Character) areaBase() int {
	start, _ := areaBoundsFor(currentArea(&c.fig.data, pairMain))
	return start
}

func (c Character) areaBaseExtra() int {
	start, _ := areaBoundsFor(currentArea(&c.fig.data, pairExtra))
	return start
}

// writeMain writes b to relOff in both area 0 and area 1.
func (c Character) writeMain(relOff int, b []byte) {
	c.fig.SetBytes(area0Start+relOff, b)
	c.fig.SetBytes(area1Start+relOff, b)
}

// writeExtra writes b to relOff in both area 2 and area 3.
func (c Character) writeExtra(relOff int, b []byte) {
	c.fig.SetBytes(area2Start+relOff, b)
	c.fig.SetBytes(area3Start+relOff, b)
}

// Gold returns the character's stored gold count.
func (c Character) Gold() uint16 {
	off := c.areaBase() + charGoldOff
	return binary.LittleEndian.Uint16(c.fig.data[off : off+2])
}

// SetGold sets the character's gold count. The codec does not enforce the
// game's own gold cap — callers wanting that behavior must clamp themselves.
func (c Character) SetGold(gold uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], gold)
	c.writeMain(charGoldOff, b[:])
}

// SetMaxGold sets gold to its maximum representable value.
func (c Character) SetMaxGold() {
	c.SetGold(maxGold)
}

// XP returns the character's total experience points: the sum of its three
// saturating parts spread across both area pairs.
func (c Character) XP() uint32 {
	mainOff := c.areaBase() + charXPPart1Off
	part1 := binary.LittleEndian.Uint16(c.fig.data[mainOff : mainOff+2])

	extraBase := c.areaBaseExtra()
	part2Off := extraBase + charXPPart2Off
	part2 := binary.LittleEndian.Uint16(c.fig.data[part2Off : part2Off+2])

	part3Off := extraBase + charXPPart3Off
	b := c.fig.data[part3Off : part3Off+3]
	part3 := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16

	return uint32(part1) + uint32(part2) + part3
}

// SetXP sets the character's total experience points, saturating at maxXP
// and splitting the result across its three stored parts: part 1 fills
// first (cap maxXPPart1), then part 2 (cap maxXPPart2), then part 3 (cap
// maxXPPart3).
func (c Character) SetXP(xp uint32) {
	if xp > maxXP {
		xp = maxXP
	}

	part1 := xp
	if part1 > maxXPPart1 {
		part1 = maxXPPart1
	}
	rem := xp - part1

	part2 := rem
	if part2 > maxXPPart2 {
		part2 = maxXPPart2
	}
	rem -= part2

	part3 := rem
	if part3 > maxXPPart3 {
		part3 = maxXPPart3
	}

	var b1 [2]byte
	binary.LittleEndian.PutUint16(b1[:], uint16(part1))
	c.writeMain(charXPPart1Off, b1[:])

	var b2 [2]byte
	binary.LittleEndian.PutUint16(b2[:], uint16(part2))
	c.writeExtra(charXPPart2Off, b2[:])

	b3 := []byte{byte(part3), byte(part3 >> 8), byte(part3 >> 16)}
	c.writeExtra(charXPPart3Off, b3)
}

// SetMaxXP sets XP to its maximum representable value.
func (c Character) SetMaxXP() {
	c.SetXP(maxXP)
}

// Level returns the character's level, derived from its stored XP: the
// largest level whose XP threshold does not exceed the character's XP.
func (c Character) Level() int {
	return levelForXP(c.XP())
}

// SetLevel sets the character's level by setting its XP to that level's
// exact threshold. level outside [1, maxLevel] is a programmer error:
// callers must validate before invoking, matching the format's own
// assertion discipline.
func (c Character) SetLevel(level int) {
	if level < 1 || level > maxLevel {
		panic("skyfigure: level out of range [1, 20]")
	}
	c.SetXP(uint32(levelThresholds[level]))
}

// HatID returns the character's equipped hat ID.
func (c Character) HatID() uint16 {
	off := c.areaBase() + charHatOff
	return binary.LittleEndian.Uint16(c.fig.data[off : off+2])
}

// HatName resolves the equipped hat's catalogue name, "" if unrecognized.
func (c Character) HatName() string {
	return catalog.HatName(c.HatID())
}

// SetHatID sets the character's equipped hat by ID.
func (c Character) SetHatID(hatID uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], hatID)
	c.writeMain(charHatOff, b[:])
}

func (c Character) upgradeWord() uint16 {
	off := c.areaBase() + charUpgradeOff
	return binary.LittleEndian.Uint16(c.fig.data[off : off+2])
}

func (c Character) setUpgradeWord(word uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], word)
	c.writeMain(charUpgradeOff, b[:])
}

// Path returns the character's chosen upgrade path. The bit pattern 0b10 is
// not assigned to either path and decodes as UpgradePathNone.
func (c Character) Path() UpgradePath {
	switch UpgradePath(c.upgradeWord() & 0b11) {
	case UpgradePathTop:
		return UpgradePathTop
	case UpgradePathBottom:
		return UpgradePathBottom
	default:
		return UpgradePathNone
	}
}

// SetPath sets the character's upgrade path, preserving the upgrade bitmap.
func (c Character) SetPath(path UpgradePath) {
	word := (c.upgradeWord() &^ 0b11) | uint16(path)&0b11
	c.setUpgradeWord(word)
}

// Upgrades returns the raw 8-bit upgrade-unlock bitmap (bit i set means
// upgrade slot i has been purchased).
func (c Character) Upgrades() uint8 {
	return uint8(c.upgradeWord() >> 2)
}

// SetUpgrades sets the upgrade-unlock bitmap, preserving the upgrade path.
func (c Character) SetUpgrades(bitmap uint8) {
	pathBits := c.upgradeWord() & 0b11
	c.setUpgradeWord(uint16(bitmap)<<2 | pathBits)
}

// WowPowUnlocked reports whether the character's Wow Pow ability has been
// unlocked.
func (c Character) WowPowUnlocked() bool {
	return c.fig.data[c.areaBaseExtra()+charWowPowOff] != 0
}

// SetWowPowUnlocked sets the character's Wow Pow unlock flag.
func (c Character) SetWowPowUnlocked(unlocked bool) {
	var v byte
	if unlocked {
		v = 1
	}
	c.writeExtra(charWowPowOff, []byte{v})
}

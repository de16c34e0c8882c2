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
	"math/bits"
)

// Vehicle field offsets. The upgrade word, mod byte and horn byte are
// relative to the main area pair's base (areas 0/1); gears lives in the
// extra pair (areas 2/3). Vehicles and characters never share a Figure, so
// reusing the character offsets' numeric range for a disjoint field layout
// is safe. Every setter writes both halves of whichever pair it targets.
const (
	vehUpgradeOff = 0x10 // pairMain; uint16: shield bits 0-4, weapon bits 5-9, unary-encoded
	vehModOff     = 0x4E // pairMain; low nibble: performance upgrade, high nibble: speciality mod
	vehHornOff    = 0x4F // pairMain; 1 byte, enum [1, 4]
	vehGearsOff   = 0x08 // pairExtra; uint16

	minVehEnum    = 1
	maxVehEnum    = 4
	maxVehUpgrade = 5
)

// Vehicle is the field accessor facade for toys classified as
// catalog.KindVehicle.
type Vehicle struct {
	fig *Figure
}

func (v Vehicle) areaBase() int {
	start, _ := areaBoundsFor(currentArea(&v.fig.data, pairMain))
	return start
}

func (v Vehicle) areaBaseExtra() int {
	start, _ := areaBoundsFor(currentArea(&v.fig.data, pairExtra))
	return start
}

// writeMain writes b to relOff in both area 0 and area 1.
func (v Vehicle) writeMain(relOff int, b []byte) {
	v.fig.SetBytes(area0Start+relOff, b)
	v.fig.SetBytes(area1Start+relOff, b)
}

// writeExtra writes b to relOff in both area 2 and area 3.
func (v Vehicle) writeExtra(relOff int, b []byte) {
	v.fig.SetBytes(area2Start+relOff, b)
	v.fig.SetBytes(area3Start+relOff, b)
}

// Gears returns the vehicle's stored gear count (its in-game currency).
func (v Vehicle) Gears() uint16 {
	off := v.areaBaseExtra() + vehGearsOff
	return binary.LittleEndian.Uint16(v.fig.data[off : off+2])
}

// SetGears sets the vehicle's gear count.
func (v Vehicle) SetGears(gears uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], gears)
	v.writeExtra(vehGearsOff, b[:])
}

// PerformanceUpgrade returns the vehicle's performance upgrade level [1, 4].
func (v Vehicle) PerformanceUpgrade() int {
	return int(v.fig.data[v.areaBase()+vehModOff] & 0x0F)
}

// SetPerformanceUpgrade sets the vehicle's performance upgrade level,
// preserving the speciality mod nibble. level must be in [1, 4].
func (v Vehicle) SetPerformanceUpgrade(level int) {
	if level < minVehEnum || level > maxVehEnum {
		panic("skyfigure: performance upgrade out of range [1, 4]")
	}
	b := v.fig.data[v.areaBase()+vehModOff]
	b = (b &^ 0x0F) | byte(level)
	v.writeMain(vehModOff, []byte{b})
}

// SpecialityMod returns the vehicle's speciality mod level [1, 4].
func (v Vehicle) SpecialityMod() int {
	return int(v.fig.data[v.areaBase()+vehModOff] >> 4)
}

// SetSpecialityMod sets the vehicle's speciality mod level, preserving the
// performance upgrade nibble. level must be in [1, 4].
func (v Vehicle) SetSpecialityMod(level int) {
	if level < minVehEnum || level > maxVehEnum {
		panic("skyfigure: speciality mod out of range [1, 4]")
	}
	b := v.fig.data[v.areaBase()+vehModOff]
	b = (b & 0x0F) | byte(level<<4)
	v.writeMain(vehModOff, []byte{b})
}

// Horn returns the vehicle's horn upgrade level [1, 4]. Unlike the shield
// and weapon upgrades, horn is a single stored value, not a purchase count.
func (v Vehicle) Horn() int {
	return int(v.fig.data[v.areaBase()+vehHornOff])
}

// SetHorn sets the vehicle's horn upgrade level. level must be in [1, 4].
func (v Vehicle) SetHorn(level int) {
	if level < minVehEnum || level > maxVehEnum {
		panic("skyfigure: horn upgrade out of range [1, 4]")
	}
	v.writeMain(vehHornOff, []byte{byte(level)})
}

func (v Vehicle) upgradeWord() uint16 {
	off := v.areaBase() + vehUpgradeOff
	return binary.LittleEndian.Uint16(v.fig.data[off : off+2])
}

func (v Vehicle) setUpgradeWord(word uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], word)
	v.writeMain(vehUpgradeOff, b[:])
}

// unaryUpgradeWord returns n's contiguous-from-bit-0 unary encoding: bit i
// set means upgrade i+1 has been purchased.
func unaryUpgradeWord(n int) uint16 {
	if n <= 0 {
		return 0
	}
	return uint16(1<<uint(n)) - 1
}

// ShieldUpgrades returns the count of purchased shield upgrades (0-5), the
// population count of the upgrade word's low 5 bits.
func (v Vehicle) ShieldUpgrades() int {
	return bits.OnesCount16(v.upgradeWord() & 0x1F)
}

// SetShieldUpgrades sets the count of purchased shield upgrades, preserving
// the weapon upgrade bits. n must be in [0, 5].
func (v Vehicle) SetShieldUpgrades(n int) {
	if n < 0 || n > maxVehUpgrade {
		panic("skyfigure: shield upgrades out of range [0, 5]")
	}
	word := (v.upgradeWord() &^ 0x1F) | unaryUpgradeWord(n)
	v.setUpgradeWord(word)
}

// WeaponUpgrades returns the count of purchased weapon upgrades (0-5), the
// population count of the upgrade word's next 5 bits.
func (v Vehicle) WeaponUpgrades() int {
	return bits.OnesCount16((v.upgradeWord() >> 5) & 0x1F)
}

// SetWeaponUpgrades sets the count of purchased weapon upgrades, preserving
// the shield upgrade bits. n must be in [0, 5].
func (v Vehicle) SetWeaponUpgrades(n int) {
	if n < 0 || n > maxVehUpgrade {
		panic("skyfigure: weapon upgrades out of range [0, 5]")
	}
	word := (v.upgradeWord() &^ (0x1F << 5)) | (unaryUpgradeWord(n) << 5)
	v.setUpgradeWord(word)
}

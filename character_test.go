// go-skyfigure
// Copyright (c) 2025 The go-skyfigure Contributors.
// SPDX-License-Identifier: LGPL-3.0-or-later

package skyfigure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyfigure-project/go-skyfigure/catalog"
)

func newTestCharacter(t *testing.T) Character {
	t.Helper()
	fig, err := New(catalog.TriggerHappy, catalog.VariantSeries3)
	require.NoError(t, err)
	ch, err := fig.Character()
	require.NoError(t, err)
	return ch
}

func TestLevelForXPBinarySearch(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 1, levelForXP(0))
	assert.Equal(t, 1, levelForXP(999))
	assert.Equal(t, 2, levelForXP(1000))
	assert.Equal(t, 15, levelForXP(100_000))
	assert.Equal(t, 20, levelForXP(maxXP))
}

func TestCharacterGoldRoundTrip(t *testing.T) {
	t.Parallel()
	ch := newTestCharacter(t)
	ch.SetGold(42000)
	assert.Equal(t, uint16(42000), ch.Gold())
}

func TestCharacterSetMaxGold(t *testing.T) {
	t.Parallel()
	ch := newTestCharacter(t)
	ch.SetMaxGold()
	assert.Equal(t, uint16(0xFFFF), ch.Gold())
}

func TestCharacterXPRoundTripsBelowMax(t *testing.T) {
	t.Parallel()
	ch := newTestCharacter(t)
	for _, xp := range []uint32{0, 1, 32999, 33000, 33001, 96500, 96501, 197500} {
		ch.SetXP(xp)
		assert.Equal(t, xp, ch.XP(), "xp=%d", xp)
	}
}

func TestCharacterXPSaturatesAtOverallMax(t *testing.T) {
	t.Parallel()
	ch := newTestCharacter(t)
	ch.SetXP(300_000)
	assert.Equal(t, uint32(maxXP), ch.XP())
	assert.Equal(t, uint32(197_500), ch.XP())
}

func TestCharacterSetMaxXP(t *testing.T) {
	t.Parallel()
	ch := newTestCharacter(t)
	ch.SetMaxXP()
	assert.Equal(t, uint32(maxXP), ch.XP())
}

// TestCharacterSeedScenarioXPSplitBytes pins the exact on-tag byte layout of
// a three-part XP split: part 1 saturates into area 0's XP slot before any
// of the remainder spills into area 2's two slots.
func TestCharacterSeedScenarioXPSplitBytes(t *testing.T) {
	t.Parallel()
	ch := newTestCharacter(t)
	ch.SetXP(100_000)

	base0 := ch.areaBase()
	assert.Equal(t, []byte{0xE8, 0x80}, ch.fig.data[base0+charXPPart1Off:base0+charXPPart1Off+2])

	baseExtra := ch.areaBaseExtra()
	assert.Equal(t, []byte{0x0C, 0xF8}, ch.fig.data[baseExtra+charXPPart2Off:baseExtra+charXPPart2Off+2])
	assert.Equal(t, []byte{0xAC, 0x0D, 0x00}, ch.fig.data[baseExtra+charXPPart3Off:baseExtra+charXPPart3Off+3])

	assert.Equal(t, uint32(100_000), ch.XP())
}

// TestCharacterSeedScenarioLevelThresholds pins the level <-> XP threshold
// relationship: setting a level sets XP to that level's exact threshold, and
// the boundary XP value one below a threshold reads back one level lower.
func TestCharacterSeedScenarioLevelThresholds(t *testing.T) {
	t.Parallel()
	ch := newTestCharacter(t)

	ch.SetLevel(10)
	assert.Equal(t, uint32(33_000), ch.XP())
	assert.Equal(t, 10, ch.Level())

	ch.SetXP(32_999)
	assert.Equal(t, 9, ch.Level())
}

func TestCharacterSetLevelOutOfRangePanics(t *testing.T) {
	t.Parallel()
	ch := newTestCharacter(t)
	assert.Panics(t, func() { ch.SetLevel(0) })
	assert.Panics(t, func() { ch.SetLevel(21) })
}

func TestCharacterHatRoundTrip(t *testing.T) {
	t.Parallel()
	ch := newTestCharacter(t)
	ch.SetHatID(catalog.HatCrown)
	assert.Equal(t, catalog.HatCrown, ch.HatID())
	assert.Equal(t, "Crown", ch.HatName())
}

func TestCharacterPathRoundTrip(t *testing.T) {
	t.Parallel()
	ch := newTestCharacter(t)
	ch.SetPath(UpgradePathBottom)
	assert.Equal(t, UpgradePathBottom, ch.Path())

	ch.SetPath(UpgradePathTop)
	assert.Equal(t, UpgradePathTop, ch.Path())
}

func TestCharacterPathGapValueDecodesToNone(t *testing.T) {
	t.Parallel()
	ch := newTestCharacter(t)
	ch.SetUpgrades(0)
	base := ch.areaBase()
	word := ch.fig.data[base+charUpgradeOff] // low 2 bits only, leave rest as-is
	ch.fig.SetBytes(base+charUpgradeOff, []byte{(word &^ 0b11) | 0b10})
	assert.Equal(t, UpgradePathNone, ch.Path())
}

func TestCharacterUpgradeBitmapIndependentOfPath(t *testing.T) {
	t.Parallel()
	ch := newTestCharacter(t)
	ch.SetPath(UpgradePathTop)
	ch.SetUpgrades(0b0000_1001)

	assert.Equal(t, UpgradePathTop, ch.Path())
	assert.Equal(t, uint8(0b0000_1001), ch.Upgrades())

	ch.SetUpgrades(0b0000_0001)
	assert.Equal(t, uint8(0b0000_0001), ch.Upgrades())
	assert.Equal(t, UpgradePathTop, ch.Path(), "changing the upgrade bitmap must not disturb the path bits")
}

func TestCharacterWowPowRoundTrip(t *testing.T) {
	t.Parallel()
	ch := newTestCharacter(t)
	assert.False(t, ch.WowPowUnlocked())
	ch.SetWowPowUnlocked(true)
	assert.True(t, ch.WowPowUnlocked())
}

func TestCharacterFieldsDoNotClobberAreaWriteCounter(t *testing.T) {
	t.Parallel()
	ch := newTestCharacter(t)
	ch.SetGold(0xFFFF)
	ch.SetXP(maxXP)
	ch.SetHatID(0xFFFF)
	ch.SetPath(UpgradePathBottom)
	ch.SetUpgrades(0xFF)
	ch.SetWowPowUnlocked(true)

	base := ch.areaBase()
	assert.Equal(t, byte(1), ch.fig.data[base+0x09], "write counter byte must remain exactly as writeOnes left it")
}

func TestCharacterSettersWriteBothMirrors(t *testing.T) {
	t.Parallel()
	ch := newTestCharacter(t)
	ch.SetGold(555)

	assert.Equal(t, ch.fig.data[area0Start+charGoldOff:area0Start+charGoldOff+2],
		ch.fig.data[area1Start+charGoldOff:area1Start+charGoldOff+2])
}

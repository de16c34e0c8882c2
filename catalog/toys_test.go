// go-skyfigure
// Copyright (c) 2025 The go-skyfigure Contributors.
// SPDX-License-Identifier: LGPL-3.0-or-later

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyKnownToys(t *testing.T) {
	t.Parallel()
	cases := []struct {
		id   uint16
		kind Kind
		name string
	}{
		{TriggerHappy, KindCharacter, "Trigger Happy"},
		{Dragonfire_Cannon, KindVehicle, "Dragonfire Cannon"},
		{Hand_Of_Fate, KindTrap, "Hand of Fate"},
		{Healing_Elixir, KindItem, "Healing Elixir"},
		{Dragonfire_Cannon_Expansion, KindExpansion, "Dragonfire Cannon Expansion"},
		{Air_Crystal, KindImaginatorCrystal, "Air Crystal"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			toy := Classify(tc.id)
			assert.Equal(t, tc.kind, toy.Kind)
			assert.Equal(t, tc.name, toy.Name)
		})
	}
}

func TestClassifyUnknownToyFallsBackToUnknownKind(t *testing.T) {
	t.Parallel()
	toy := Classify(0xBEEF)
	assert.Equal(t, KindUnknown, toy.Kind)
	assert.Empty(t, toy.Name)
}

func TestKindString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Character", KindCharacter.String())
	assert.Equal(t, "Unknown", Kind(99).String())
}

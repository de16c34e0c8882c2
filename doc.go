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

/*
Package skyfigure implements the tag codec and figure data model for a
toys-to-life franchise whose physical figures are Mifare Classic 1K NFC
tags carrying per-toy game state.

The codec reproduces the game's own on-tag encoding bit-for-bit: sector/block
geometry, sector-trailer key derivation from the tag UID via a custom CRC-48,
per-block AES-128-ECB encryption keyed by an MD5 digest of tag-specific seed
material, a dual-area "save slot" scheme whose current half is chosen by a
per-area write counter (set once, on a figure's first mutation), and four
CRC-16 checksum kinds (Type 1/2/3/6), each recomputed against both halves of
its area pair on every save after a mutation.

Basic Usage:

	import (
	    "github.com/skyfigure-project/go-skyfigure"
	    "github.com/skyfigure-project/go-skyfigure/catalog"
	)

	fig, err := skyfigure.New(catalog.TriggerHappy, catalog.VariantSeries3)
	if err != nil {
	    log.Fatal(err)
	}
	ch, err := fig.Character()
	if err != nil {
	    log.Fatal(err)
	}
	ch.SetLevel(10)
	ch.SetGold(5000)

	if err := fig.SaveToFile("trigger_happy.bin"); err != nil {
	    log.Fatal(err)
	}

Loading from a file or a connected reader:

	fig, err := skyfigure.FromFile("trigger_happy.bin")
	if err != nil {
	    log.Fatal(err)
	}

	fig, err = nfc.ReadFigure(ctx, driver, skyfigure.DefaultRetryPolicy)
	if err != nil {
	    log.Fatal(err)
	}

Toy Kinds:

Every figure has a Kind determined by its 16-bit toy ID: Character, Vehicle,
Trap, Item, Expansion, ImaginatorCrystal, or Unknown. Kind-specific accessors
(Character, Vehicle) are only meaningful for their matching kind and return
ErrWrongKind otherwise.

Error Handling:

Catalogue misses (unrecognized toy/hat/variant IDs) are not failures — they
decode to an "unknown"/"none" sentinel. IO and NFC failures are surfaced
verbatim with no automatic recovery. Precondition violations (e.g. setting a
level outside [1, 20]) are programmer errors and panic via the accessor's
own validation, matching spec section 7's error taxonomy.
*/
package skyfigure

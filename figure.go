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
	"fmt"

	"github.com/skyfigure-project/go-skyfigure/catalog"
)

// Figure is the shared mutable core for a single toy: one owned 1024-byte
// buffer plus the bookkeeping the codec needs (used-block mask, whether the
// buffer has been mutated since it was loaded/constructed, and whether the
// first-mutation write-counter policy has already fired). Kind-specific
// facades (Character, Vehicle) are stateless views that borrow a *Figure.
type Figure struct {
	data            [NumBytes]byte
	used            [numBlocks]bool
	modified        bool
	countersFlipped bool
}

// New constructs a brand-new figure for (toyID, variantID), with a random
// UID unless WithUID overrides it.
func New(toyID, variantID uint16, opts ...Option) (*Figure, error) {
	cfg, err := newFigureConfigFromOptions(opts)
	if err != nil {
		return nil, fmt.Errorf("skyfigure: generate uid: %w", err)
	}

	fig := &Figure{
		data: buildFreshTag(toyID, variantID, cfg.uid),
	}
	fig.used = usedBlockMask(&fig.data)
	return fig, nil
}

// Decode builds a Figure from a raw, ciphertext 1024-byte tag image, such as
// one read from a physical tag or loaded from a file.
func Decode(raw []byte) (*Figure, error) {
	if len(raw) != NumBytes {
		return nil, ErrShortBuffer
	}
	var buf [NumBytes]byte
	copy(buf[:], raw)

	data, used, err := decodeTag(buf)
	if err != nil {
		return nil, fmt.Errorf("skyfigure: decode: %w", err)
	}

	return &Figure{data: data, used: used}, nil
}

// Encode produces the ciphertext 1024-byte image ready to write to a file or
// a physical tag, recomputing checksums first if the figure was mutated
// since it was constructed or loaded.
func (f *Figure) Encode() ([NumBytes]byte, error) {
	if f.modified {
		recomputeChecksums(&f.data)
		// Recompute from scratch rather than patch f.used incrementally:
		// the checksum slots can land in blocks no accessor ever touched
		// directly (e.g. area 2/3's header when only a character field in
		// area 0/1 was set), and usedBlockMask is cheap enough to just rerun.
		f.used = usedBlockMask(&f.data)
	}
	return encodeTag(f.data, f.used)
}

// ToyID returns the raw 16-bit toy identifier from the toy header block.
func (f *Figure) ToyID() uint16 {
	return binary.LittleEndian.Uint16(f.data[0x10:0x12])
}

// VariantID returns the raw 16-bit variant identifier from the toy header
// block.
func (f *Figure) VariantID() uint16 {
	return binary.LittleEndian.Uint16(f.data[0x1C:0x1E])
}

// Kind classifies the figure's toy ID via the catalogue.
func (f *Figure) Kind() catalog.Kind {
	return catalog.Classify(f.ToyID()).Kind
}

// Toy resolves the figure's full catalogue entry (name + kind).
func (f *Figure) Toy() catalog.Toy {
	return catalog.Classify(f.ToyID())
}

// Variant resolves the figure's variant decomposition (game wave + deco id).
func (f *Figure) Variant() catalog.Variant {
	return catalog.DecomposeVariant(f.VariantID())
}

// UID returns the figure's 4-byte tag UID.
func (f *Figure) UID() [4]byte {
	var uid [4]byte
	copy(uid[:], f.data[0:4])
	return uid
}

// Character returns a Character facade if the figure's toy is a character,
// otherwise ErrWrongKind.
func (f *Figure) Character() (Character, error) {
	if f.Kind() != catalog.KindCharacter {
		return Character{}, ErrWrongKind
	}
	return Character{fig: f}, nil
}

// Vehicle returns a Vehicle facade if the figure's toy is a vehicle,
// otherwise ErrWrongKind.
func (f *Figure) Vehicle() (Vehicle, error) {
	if f.Kind() != catalog.KindVehicle {
		return Vehicle{}, ErrWrongKind
	}
	return Vehicle{fig: f}, nil
}

// SetBytes overwrites data[start:start+len(b)] with b, marking every block
// it touches used and the figure modified. The range [start, start+len(b))
// must lie within [0, NumBytes); callers violating this is a programmer error.
func (f *Figure) SetBytes(start int, b []byte) {
	end := start + len(b)
	if start < 0 || end > NumBytes {
		panic("skyfigure: SetBytes out of range")
	}
	copy(f.data[start:end], b)
	f.markMutated(start, end)
}

// Bytes returns a copy of data[start:start+n].
func (f *Figure) Bytes(start, n int) []byte {
	out := make([]byte, n)
	copy(out, f.data[start:start+n])
	return out
}

// Clear zeroes the figure's game-state payload and resets all bookkeeping,
// leaving the UID/SAK/ATQA (block 0), the toy header (block 1), and every
// sector trailer untouched.
func (f *Figure) Clear() {
	var zeroBlock [BlockSize]byte
	for b := 2; b < numBlocks; b++ {
		if isSectorTrailerBlock(b) {
			continue
		}
		off := blockOffset(b)
		copy(f.data[off:off+BlockSize], zeroBlock[:])
	}
	f.used = usedBlockMask(&f.data)
	f.modified = false
	f.countersFlipped = false
}

// markMutated applies the first-mutation write-counter policy (once after
// construction, load or Clear), marks the figure modified, and refreshes the used-block
// mask for every block the edit touched.
func (f *Figure) markMutated(start, end int) {
	if !f.countersFlipped {
		writeOnes(&f.data)
		f.countersFlipped = true
	}
	f.modified = true

	firstBlock := start / BlockSize
	lastBlock := (end - 1) / BlockSize
	for b := firstBlock; b <= lastBlock; b++ {
		off := blockOffset(b)
		for _, v := range f.data[off : off+BlockSize] {
			if v != 0 {
				f.used[b] = true
				break
			}
		}
	}
}

// Summary returns a short human-readable description of the figure, useful
// for CLI output and debugging.
func (f *Figure) Summary() string {
	toy := f.Toy()
	variant := f.Variant()
	name := toy.Name
	if name == "" {
		name = fmt.Sprintf("toy#%d", toy.ID)
	}
	return fmt.Sprintf("%s (%s) kind=%s variant=%#04x uid=%x", name, variant.Name, toy.Kind, variant.ID, f.UID())
}

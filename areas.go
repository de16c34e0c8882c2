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

// areaPair identifies one of the two mirrored area pairs: areas 0/1, whose
// counters live at writeCounterOff0/1, and areas 2/3, at writeCounterOff2/3.
type areaPair int

const (
	pairMain  areaPair = iota // areas 0 and 1
	pairExtra                 // areas 2 and 3
)

// currentArea returns 0 or 1 for pairMain, 2 or 3 for pairExtra — whichever
// half of the pair has the higher write counter. A tie defaults to the
// lower-numbered (first) area.
func currentArea(data *[NumBytes]byte, pair areaPair) int {
	var counterA, counterB byte
	var areaA, areaB int
	switch pair {
	case pairMain:
		counterA, counterB = data[writeCounterOff0], data[writeCounterOff1]
		areaA, areaB = 0, 1
	case pairExtra:
		counterA, counterB = data[writeCounterOff2], data[writeCounterOff3]
		areaA, areaB = 2, 3
	}
	if counterB > counterA {
		return areaB
	}
	return areaA
}

// writeOnes applies the tag format's first-mutation write-counter policy:
// the first time a buffer is mutated after construction or load, both pairs'
// counters are forced to {1, 0}, making area 0 and area 2 current regardless
// of whatever counter values were present before. This is not a true
// monotonic counter scheme — later mutations of the same buffer do not touch
// these bytes again — but it is what the tag format actually does.
func writeOnes(data *[NumBytes]byte) {
	data[writeCounterOff0] = 1
	data[writeCounterOff1] = 0
	data[writeCounterOff2] = 1
	data[writeCounterOff3] = 0
}

// areaBoundsFor returns the [start, end) byte range for a given area index
// (0-3).
func areaBoundsFor(area int) (start, end int) {
	switch area {
	case 0:
		return area0Start, area0End
	case 1:
		return area1Start, area1End
	case 2:
		return area2Start, area2End
	case 3:
		return area3Start, area3End
	default:
		panic("skyfigure: invalid area index")
	}
}

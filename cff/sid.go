// harfbuzz - a library for font subsetting
// Copyright (C) 2024  the harfbuzz contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package cff

// numStandardStrings is the size of the reserved "standard strings" prefix
// of the CFF SID namespace (spec.md §3). SIDs below this value are fixed
// points of the remap; SIDs at or above it index the font's String INDEX.
const numStandardStrings = 391

// maxSIDCount is the largest number of non-standard SIDs a subset may
// retain: the CFF SID operand is a 16-bit field, and this package reserves
// the upper half of that space the way spec.md §4.1 requires.
const maxSIDCount = 0x8000

// sidRemap compacts the font's non-standard SIDs (>= numStandardStrings)
// into a dense range starting at numStandardStrings, in first-seen order,
// while leaving standard SIDs (< numStandardStrings) untouched.
type sidRemap struct {
	dense []int32          // dense index -> original SID-numStandardStrings
	index map[int32]int32  // original SID-numStandardStrings -> dense index
}

func newSIDRemap() *sidRemap {
	return &sidRemap{index: make(map[int32]int32)}
}

// add inserts sid into the remap if it is non-standard and not already
// present, and returns its remapped value. Standard SIDs are returned
// unchanged.
func (r *sidRemap) add(sid int32) int32 {
	if sid < numStandardStrings {
		return sid
	}
	key := sid - numStandardStrings
	if idx, ok := r.index[key]; ok {
		return numStandardStrings + idx
	}
	idx := int32(len(r.dense))
	r.dense = append(r.dense, key)
	r.index[key] = idx
	return numStandardStrings + idx
}

// lookup returns the remapped value of sid without mutating the remap.
// Callers must have already add()ed sid; looking up an SID that was never
// added returns its pre-remap value, which is only correct for standard
// SIDs (this mirrors spec.md §4.1's note that this is undefined behavior
// for un-added non-standard SIDs).
func (r *sidRemap) lookup(sid int32) int32 {
	if sid < numStandardStrings {
		return sid
	}
	key := sid - numStandardStrings
	if idx, ok := r.index[key]; ok {
		return numStandardStrings + idx
	}
	return sid
}

// count returns the number of distinct non-standard SIDs retained so far.
func (r *sidRemap) count() int32 {
	return int32(len(r.dense))
}

// original returns, for each retained SID in dense order, its original SID
// (>= numStandardStrings). This drives the output String INDEX: entry i
// holds the bytes of original(i)'s string.
func (r *sidRemap) original() []int32 {
	out := make([]int32, len(r.dense))
	for i, key := range r.dense {
		out[i] = numStandardStrings + key
	}
	return out
}

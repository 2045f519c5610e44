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

// planFDSelect builds the output FDSelect payload for the retained glyphs
// in output order, mapping each glyph's original FD (via fds) to its dense
// FD index. It picks format 0 (one byte per glyph) whenever that is
// smaller than format 3 (ranges of {firstGlyph, fd} plus a sentinel),
// breaking ties toward format 3 since it always encodes the sentinel.
func planFDSelect(glyphs []GID, glyphToFD func(GID) int, fds *fdRemap) []byte {
	n := len(glyphs)
	denseFD := make([]byte, n)
	for i, gid := range glyphs {
		denseFD[i] = byte(fds.lookup(glyphToFD(gid)))
	}
	return encodeFDSelect(denseFD)
}

// encodeFDSelect returns the smaller of the format 0 and format 3
// encodings of denseFD, a one-entry-per-glyph slice of already-dense FD
// indices.
func encodeFDSelect(denseFD []byte) []byte {
	n := len(denseFD)

	format0 := make([]byte, 1+n)
	format0[0] = 0
	copy(format0[1:], denseFD)

	var ranges [][2]int // {firstGlyph, fd}
	for i, fd := range denseFD {
		if i == 0 || fd != denseFD[i-1] {
			ranges = append(ranges, [2]int{i, int(fd)})
		}
	}

	format3 := make([]byte, 0, 3+3*len(ranges)+2)
	format3 = append(format3, 3, byte(len(ranges)>>8), byte(len(ranges)))
	for _, r := range ranges {
		format3 = append(format3, byte(r[0]>>8), byte(r[0]), byte(r[1]))
	}
	format3 = append(format3, byte(n>>8), byte(n))

	if len(format3) <= len(format0) {
		return format3
	}
	return format0
}

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

// planCharset builds the output Charset payload for the retained glyphs in
// output order (glyphs[0], the .notdef glyph, is implicit and never
// encoded). For non-CID fonts each glyph's original SID is compacted
// through sids, alongside every other SID the subset references, so that
// charset SIDs and DICT string SIDs share one dense namespace (spec.md
// §4.5, §9). For CID fonts the Charset holds CIDs, which are not SIDs and
// are passed through unchanged.
func planCharset(glyphs []GID, isCID bool, glyphToSID func(GID) int32, sids *sidRemap) []byte {
	values := make([]int32, len(glyphs))
	for i, gid := range glyphs {
		v := glyphToSID(gid)
		if !isCID {
			v = sids.add(v)
		}
		values[i] = v
	}
	return encodeCharset(values)
}

// encodeCharset returns the smallest of the format 0, 1, and 2 encodings of
// values, an output-GID-indexed array whose element 0 (for the .notdef
// glyph) is never itself encoded.
func encodeCharset(values []int32) []byte {
	names := values[1:]

	var runs []int
	for i := 0; i < len(names); i++ {
		if i == 0 || names[i] != names[i-1]+1 {
			runs = append(runs, i)
		}
	}
	runs = append(runs, len(names))

	length0 := 1 + 2*len(names)

	length1 := 1 + 3*(len(runs)-1)
	for i := 0; i < len(runs)-1; i++ {
		d := runs[i+1] - runs[i]
		for d > 256 {
			length1 += 3
			d -= 256
		}
	}

	length2 := 1 + 4*(len(runs)-1)

	var buf []byte
	switch {
	case length0 <= length1 && length0 <= length2:
		buf = make([]byte, length0)
		buf[0] = 0
		for i, name := range names {
			buf[2*i+1] = byte(name >> 8)
			buf[2*i+2] = byte(name)
		}
	case length1 <= length2:
		buf = make([]byte, length1)
		buf[0] = 1
		pos := 1
		for i := 0; i < len(runs)-1; i++ {
			name := names[runs[i]]
			dd := runs[i+1] - runs[i]
			for dd > 0 {
				d := dd - 1
				if d > 255 {
					d = 255
				}
				buf[pos] = byte(name >> 8)
				buf[pos+1] = byte(name)
				buf[pos+2] = byte(d)
				pos += 3
				name += int32(d + 1)
				dd -= d + 1
			}
		}
	default:
		buf = make([]byte, length2)
		buf[0] = 2
		for i := 0; i < len(runs)-1; i++ {
			name := names[runs[i]]
			d := runs[i+1] - runs[i] - 1
			buf[4*i+1] = byte(name >> 8)
			buf[4*i+2] = byte(name)
			buf[4*i+3] = byte(d >> 8)
			buf[4*i+4] = byte(d)
		}
	}
	return buf
}

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

// buildFontDict returns a rewritten copy of src (one CID font's Font DICT)
// suitable for both measuring and serializing: FontName's SID is remapped
// and forced to the 3-byte fixed-width form, and Private is forced to its
// fixed-width size+offset form with placeholder zero values, per spec.md
// §4.6. Every other operator copies through unchanged.
func buildFontDict(src Dict, sids *sidRemap) Dict {
	out := src.Copy()

	if e, ok := out.Get(OpFontName); ok {
		sid := e.Operands[0].(int32)
		out = out.Set(OpFontName, []DictOperand{sids.add(sid)}, []int{2})
	}
	if _, ok := out.Get(OpPrivate); ok {
		out = out.Set(OpPrivate, []DictOperand{int32(0), int32(0)}, []int{2, 4})
	}

	return out
}

// patchFontDict returns a copy of fd with Private's size/offset operands
// set to private's final planned values.
func patchFontDict(fd Dict, private TableInfo) Dict {
	out := fd.Copy()
	if _, ok := out.Get(OpPrivate); ok {
		out = out.Set(OpPrivate, []DictOperand{int32(private.Size), int32(private.Offset)}, []int{2, 4})
	}
	return out
}

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

// hintOps lists the Private DICT operators that describe stem hints and
// alignment zones, dropped by buildPrivateDict when drop_hints is set.
var hintOps = []Op{
	OpBlueValues, OpOtherBlues, OpFamilyBlues, OpFamilyOtherBlues,
	OpStdHW, OpStdVW, OpBlueScale, OpBlueShift, OpBlueFuzz,
	OpStemSnapH, OpStemSnapV, OpForceBold, OpLanguageGroup,
}

// buildPrivateDict returns a rewritten copy of src suitable for both
// measuring and serializing a retained FD's output Private DICT (spec.md
// §4.6): Subrs is forced to the fixed-width 3-byte form with a placeholder
// zero value the caller patches once the Private DICT's own size is known
// (local subrs, always flattened away, start immediately after it), and the
// hint operators are dropped when dropHints is set. hasSubrs reports
// whether src carried a Subrs operand at all — a retained FD whose input
// Private DICT had none gets none in the output either, since there is
// nothing to point at.
func buildPrivateDict(src Dict, dropHints bool) (Dict, bool) {
	out := src
	if dropHints {
		out = out.Without(hintOps...)
	}
	out = out.Copy()

	_, hasSubrs := out.Get(OpSubrs)
	if hasSubrs {
		out = out.Set(OpSubrs, []DictOperand{int32(0)}, []int{2})
	}
	return out, hasSubrs
}

// patchPrivateDict returns a copy of pd with Subrs set to size, the
// serialized length of the Private DICT itself.
func patchPrivateDict(pd Dict, size int64) Dict {
	out := pd.Copy()
	if _, ok := out.Get(OpSubrs); ok {
		out = out.Set(OpSubrs, []DictOperand{int32(size)}, []int{2})
	}
	return out
}

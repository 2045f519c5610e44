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

// nameSIDOps lists the Top DICT / Font DICT operators whose sole operand is
// a string-naming SID, per spec.md §4.6's rewrite table.
var nameSIDOps = []Op{
	OpVersion, OpNotice, OpCopyright, OpFullName, OpFamilyName,
	OpWeight, OpPostScript, OpBaseFontName,
}

// buildTopDict returns a rewritten copy of src suitable for both measuring
// and serializing the output Top DICT (spec.md §4.6): every name-SID
// operand is remapped through sids and forced to the 3-byte fixed-width
// form, and ROS's registry/ordering SIDs are remapped and forced
// fixed-width while its Supplement operand passes through unchanged.
//
// CharStrings is always forced to a fixed-width 4-byte placeholder offset,
// since every CFF1 font has exactly one CharStrings INDEX and its offset
// always changes once the font is subsetted. FDArray and FDSelect get the
// same treatment, but only for a CID font (hasFDSelect).
//
// charset and Encoding are only touched when the corresponding
// subsetCharset/subsetEncoding flag is set: in that case any existing
// operand is overwritten (or, if absent, appended) with a fixed-width
// 4-byte placeholder offset that patchTopDict fills in once the target
// sub-table's offset is known. When the flag is clear, the subset keeps
// using the font's predefined charset or encoding, and any operand already
// present (a small integer selecting it, never a real offset) copies
// through unchanged.
//
// Private, if present, is always forced to its fixed-width size+offset
// placeholder form, since a retained FD's Private DICT is always
// serialized fresh regardless of subsetCharset/subsetEncoding.
func buildTopDict(src Dict, sids *sidRemap, rosSupplement []byte, subsetCharset, subsetEncoding, hasFDSelect bool) Dict {
	out := src.Copy()

	for _, op := range nameSIDOps {
		if e, ok := out.Get(op); ok {
			sid := e.Operands[0].(int32)
			out = out.Set(op, []DictOperand{sids.add(sid)}, []int{2})
		}
	}

	if e, ok := out.Get(OpROS); ok {
		reg := sids.add(e.Operands[0].(int32))
		ord := sids.add(e.Operands[1].(int32))
		var supp DictOperand
		if len(e.Operands) > 2 {
			supp = e.Operands[2]
		} else {
			supp = rawOperand(rosSupplement)
		}
		out = out.Set(OpROS, []DictOperand{reg, ord, supp}, []int{2, 2, 0})
	}

	out = out.Set(OpCharStrings, []DictOperand{int32(0)}, []int{4})

	if subsetCharset {
		out = out.Set(OpCharset, []DictOperand{int32(0)}, []int{4})
	}
	if subsetEncoding {
		out = out.Set(OpEncoding, []DictOperand{int32(0)}, []int{4})
	}
	if hasFDSelect {
		out = out.Set(OpFDArray, []DictOperand{int32(0)}, []int{4})
		out = out.Set(OpFDSelect, []DictOperand{int32(0)}, []int{4})
	}
	if _, ok := out.Get(OpPrivate); ok {
		out = out.Set(OpPrivate, []DictOperand{int32(0), int32(0)}, []int{2, 4})
	}

	return out
}

// patchTopDict returns a copy of td with CharStrings, charset, Encoding,
// FDArray, FDSelect, and Private's offset/size operands set to their final
// planned values, for the entries buildTopDict put in fixed-width form.
// Called during writing, once every sub-table's TableInfo is known; this
// never changes td's serialized size.
func patchTopDict(td Dict, subsetCharset, subsetEncoding, hasFDSelect bool, charStringsOffset, charsetOffset, encodingOffset, fdArrayOffset, fdSelectOffset int64, private TableInfo) Dict {
	out := td.Copy()
	out = out.Set(OpCharStrings, []DictOperand{int32(charStringsOffset)}, []int{4})
	if subsetCharset {
		out = out.Set(OpCharset, []DictOperand{int32(charsetOffset)}, []int{4})
	}
	if subsetEncoding {
		out = out.Set(OpEncoding, []DictOperand{int32(encodingOffset)}, []int{4})
	}
	if hasFDSelect {
		out = out.Set(OpFDArray, []DictOperand{int32(fdArrayOffset)}, []int{4})
		out = out.Set(OpFDSelect, []DictOperand{int32(fdSelectOffset)}, []int{4})
	}
	if _, ok := out.Get(OpPrivate); ok {
		out = out.Set(OpPrivate, []DictOperand{int32(private.Size), int32(private.Offset)}, []int{2, 4})
	}
	return out
}

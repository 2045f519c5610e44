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

// GID is an original glyph ID, as indexed by the input CFF1 table.
type GID = int

// SubsetPlan is the caller's request: which glyphs to keep, and whether to
// strip hinting operators from the flattened CharStrings.
//
// Glyphs[0] must be 0 (the .notdef glyph); Glyphs[i] is the original GID
// that becomes output GID i.
type SubsetPlan struct {
	Glyphs    []GID
	DropHints bool
}

// Accessor is the read-only view of a parsed CFF1 table that Create and
// Write need. CFF1 parsing itself is out of scope for this package; a
// caller supplies an Accessor built on top of whatever parser it already
// has.
//
// All methods are queried with original (pre-subset) glyph IDs and FD
// indices, except String, which is queried with a raw SID.
type Accessor interface {
	// NameIndexBytes returns the already-encoded Name INDEX sub-table
	// (count, offSize, offsets, payload), copied verbatim into the
	// output.
	NameIndexBytes() []byte

	// TopDict returns the font's Top DICT, decoded but with every
	// string-valued operand left as its raw SID (not resolved to text),
	// since the SID remap (§4.1) needs the original integer.
	TopDict() Dict

	// IsCID reports whether the font is a CIDFont (has a ROS operator).
	IsCID() bool

	// ROS returns the Top DICT's ROS operator: registrySID and
	// orderingSID are its first two operands (SIDs, subject to the SID
	// remap), and supplement is the raw encoded bytes of its third
	// operand (the Supplement number), copied through unchanged rather
	// than decoded. ok is false for non-CID fonts.
	ROS() (registrySID, orderingSID int32, supplement []byte, ok bool)

	// NumStrings returns the number of entries in the input String
	// INDEX. Valid SIDs for String are [391, 391+NumStrings()-1].
	NumStrings() int

	// String returns the bytes of the non-standard string identified by
	// sid.
	String(sid int32) []byte

	// GlobalSubrs returns the Global Subrs INDEX entries, indexed from 0;
	// a CharString's callgsubr operand is this index minus the bias (see
	// bias in charstring.go).
	GlobalSubrs() [][]byte

	// IsPredefEncoding reports whether the font uses one of the two
	// predefined encodings (Standard or Expert) rather than a custom
	// Encoding sub-table.
	IsPredefEncoding() bool

	// GlyphToCode returns the single-byte code the input Encoding
	// assigns to gid as its primary code, if any.
	GlyphToCode(gid GID) (code int, ok bool)

	// SupplementalCodes returns any additional codes the input Encoding
	// maps to gid's SID besides its primary code.
	SupplementalCodes(gid GID) []int

	// IsPredefCharset reports whether the font uses one of the three
	// predefined charsets (ISOAdobe, Expert, ExpertSubset) rather than a
	// custom Charset sub-table.
	IsPredefCharset() bool

	// GlyphToSID returns the Charset entry for gid: an SID for non-CID
	// fonts, a CID for CID-keyed fonts.
	GlyphToSID(gid GID) int32

	// HasFDSelect reports whether the input font carries an FDSelect
	// sub-table. Always false for non-CID fonts.
	HasFDSelect() bool

	// FDCount returns the number of Font DICTs. For a non-CID font this
	// is always 1 (an implicit FD 0 owning the Top DICT's Private DICT).
	FDCount() int

	// GlyphToFD returns the FD index gid is assigned to. Always 0 for
	// non-CID fonts.
	GlyphToFD(gid GID) int

	// FontDict returns Font DICT fd. Ignored for non-CID fonts.
	FontDict(fd int) Dict

	// PrivateDict returns the Private DICT owned by FD fd (FD 0 for a
	// non-CID font's single implicit FD).
	PrivateDict(fd int) Dict

	// LocalSubrs returns the Local Subrs INDEX entries owned by FD fd,
	// indexed from 0; a callsubr operand is this index minus the bias.
	LocalSubrs(fd int) [][]byte

	// NumGlyphs returns the number of entries in the input CharStrings
	// INDEX.
	NumGlyphs() int

	// CharString returns the raw Type 2 CharString program for gid.
	CharString(gid GID) []byte
}

// TableInfo records the planned position and encoding width of one
// sub-table of the output CFF1 blob.
type TableInfo struct {
	Offset  int64
	Size    int64
	OffSize int // 1..4, meaningful only for INDEX structures
}

// End returns the offset immediately after this sub-table.
func (t TableInfo) End() int64 {
	return t.Offset + t.Size
}

// offSize returns the number of bytes needed to encode an INDEX offset
// large enough to address size+1 (the INDEX offset array is 1-based), i.e.
// the smallest n in [1,3] with size+1 < 256^n, or 4 for anything larger.
func offSize(size int64) int {
	n := size + 1
	switch {
	case n < 1<<8:
		return 1
	case n < 1<<16:
		return 2
	case n < 1<<24:
		return 3
	default:
		return 4
	}
}

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

// Write emits plan's output CFF1 table into buf, which must be exactly
// plan.FinalSize bytes, following spec.md §4.8. It asserts that the write
// cursor equals each sub-table's planned offset before emitting it and
// equals plan.FinalSize on completion; any divergence is a bug in this
// package's own planning, surfaced as a SerializeError rather than a
// corrupt buffer.
func Write(plan *Plan, a Accessor, buf []byte) error {
	if int64(len(buf)) != plan.FinalSize {
		return serializeError("buffer", "got %d bytes, plan requires %d", len(buf), plan.FinalSize)
	}

	var cursor int64

	if err := assertCursor(cursor, plan.Header.Offset, "header"); err != nil {
		return err
	}
	buf[0], buf[1], buf[2], buf[3] = 1, 0, 4, 4
	cursor += plan.Header.Size

	if err := assertCursor(cursor, plan.NameIndex.Offset, "name index"); err != nil {
		return err
	}
	copy(buf[cursor:], plan.nameBytes)
	cursor += plan.NameIndex.Size

	if err := assertCursor(cursor, plan.TopDictIndex.Offset, "top dict index"); err != nil {
		return err
	}
	var topPrivate TableInfo
	if !plan.IsCID && len(plan.fds) > 0 {
		topPrivate = plan.fds[0].private
	}
	topDictBytes := patchTopDict(plan.topDict, plan.SubsetCharset, plan.SubsetEncoding, plan.HasFDSelect,
		plan.CharStringsIndex.Offset, plan.Charset.Offset, plan.Encoding.Offset, plan.FDArrayIndex.Offset, plan.FDSelect.Offset,
		topPrivate).encode()
	if got, want := indexSize([]int64{int64(len(topDictBytes))}), plan.TopDictIndex.Size; got != want {
		return serializeError("top dict index", "serialized to %d bytes, planned %d", got, want)
	}
	cursor = writeIndex(buf, cursor, [][]byte{topDictBytes})

	if err := assertCursor(cursor, plan.StringIndex.Offset, "string index"); err != nil {
		return err
	}
	cursor = writeIndex(buf, cursor, plan.strings)

	if err := assertCursor(cursor, plan.GlobalSubrs.Offset, "global subrs index"); err != nil {
		return err
	}
	cursor = writeIndex(buf, cursor, nil)

	if plan.SubsetEncoding {
		if err := assertCursor(cursor, plan.Encoding.Offset, "encoding"); err != nil {
			return err
		}
		copy(buf[cursor:], plan.encodingBytes)
		cursor += plan.Encoding.Size
	}

	if plan.SubsetCharset {
		if err := assertCursor(cursor, plan.Charset.Offset, "charset"); err != nil {
			return err
		}
		copy(buf[cursor:], plan.charsetBytes)
		cursor += plan.Charset.Size
	}

	if plan.HasFDSelect {
		if err := assertCursor(cursor, plan.FDSelect.Offset, "fdselect"); err != nil {
			return err
		}
		copy(buf[cursor:], plan.fdSelectBytes)
		cursor += plan.FDSelect.Size

		if err := assertCursor(cursor, plan.FDArrayIndex.Offset, "fdarray index"); err != nil {
			return err
		}
		fontDictBytes := make([][]byte, len(plan.fds))
		for i, fd := range plan.fds {
			fontDictBytes[i] = patchFontDict(fd.fontDict, fd.private).encode()
		}
		if got, want := indexSize(lengthsOf(fontDictBytes)), plan.FDArrayIndex.Size; got != want {
			return serializeError("fdarray index", "serialized to %d bytes, planned %d", got, want)
		}
		cursor = writeIndex(buf, cursor, fontDictBytes)
	}

	if err := assertCursor(cursor, plan.CharStringsIndex.Offset, "charstrings index"); err != nil {
		return err
	}
	cursor = writeIndex(buf, cursor, plan.charStrings)

	for _, fd := range plan.fds {
		if err := assertCursor(cursor, fd.private.Offset, "private dict"); err != nil {
			return err
		}
		privBytes := patchPrivateDict(fd.privateDict, fd.private.Size).encode()
		if int64(len(privBytes)) != fd.private.Size {
			return serializeError("private dict", "serialized to %d bytes, planned %d", len(privBytes), fd.private.Size)
		}
		copy(buf[cursor:], privBytes)
		cursor += fd.private.Size

		if err := assertCursor(cursor, fd.localSubrs.Offset, "local subrs index"); err != nil {
			return err
		}
		cursor = writeIndex(buf, cursor, nil)
	}

	if cursor != plan.FinalSize {
		return serializeError("final", "cursor %d != planned final size %d", cursor, plan.FinalSize)
	}
	return nil
}

func assertCursor(cursor, want int64, table string) error {
	if cursor != want {
		return serializeError(table, "write cursor %d != planned offset %d", cursor, want)
	}
	return nil
}

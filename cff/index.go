package cff

// indexSize returns the size in bytes of a CFF INDEX structure holding
// items of the given lengths: a 2-byte count, a 1-byte offSize (only if
// count>0), count+1 offsets of offSize bytes each, and the concatenated
// payload.
func indexSize(itemLens []int64) int64 {
	count := len(itemLens)
	if count == 0 {
		return 2
	}
	var payload int64
	for _, l := range itemLens {
		payload += l
	}
	return 2 + 1 + int64(count+1)*int64(offSize(payload)) + payload
}

// writeIndex writes a CFF INDEX holding items, into buf starting at
// cursor, and returns the cursor positioned just past the INDEX. len(buf)
// must be large enough; writeIndex panics instead of returning a
// SerializeError because a short buffer here is always a bug in this
// package's own size accounting, never a property of the input.
func writeIndex(buf []byte, cursor int64, items [][]byte) int64 {
	start := cursor
	count := len(items)
	buf[cursor] = byte(count >> 8)
	buf[cursor+1] = byte(count)
	cursor += 2
	if count == 0 {
		return cursor
	}

	var payload int64
	for _, it := range items {
		payload += int64(len(it))
	}
	sz := offSize(payload)
	buf[cursor] = byte(sz)
	cursor++

	offsetsAt := cursor
	cursor += int64(count+1) * int64(sz)

	putOffset := func(slot int, v int64) {
		pos := offsetsAt + int64(slot)*int64(sz)
		for i := 0; i < sz; i++ {
			buf[pos+int64(i)] = byte(v >> (8 * (sz - i - 1)))
		}
	}

	pos := int64(1)
	putOffset(0, pos)
	for i, it := range items {
		n := copy(buf[cursor:], it)
		cursor += int64(n)
		pos += int64(len(it))
		putOffset(i+1, pos)
	}

	if cursor-start != indexSize(lengthsOf(items)) {
		panic("cff: INDEX size accounting bug")
	}
	return cursor
}

func lengthsOf(items [][]byte) []int64 {
	out := make([]int64, len(items))
	for i, it := range items {
		out[i] = int64(len(it))
	}
	return out
}

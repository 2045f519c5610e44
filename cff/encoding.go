package cff

// maxEncodedCodes is the largest number of primary codes an Encoding can
// hold: the count field in both Encoding formats is one byte (spec.md
// §4.4).
const maxEncodedCodes = 255

type encCode struct {
	gid  int // output GID, 1-based within the encoded prefix
	code byte
}

type encSupplement struct {
	code byte
	sid  int32
}

// planEncoding builds the output Encoding payload for a non-CID subset.
// It walks the retained glyphs in output order starting at GID 1, stopping
// at the first glyph with no assigned code (the remaining glyphs stay
// unencoded, per spec.md §4.4); for every glyph that does get a code, any
// supplemental codes the input Encoding carries for that glyph's SID are
// collected too, with their SID run through sids so the value written into
// the Encoding sub-table matches the dense namespace used everywhere else.
func planEncoding(glyphs []GID, a Accessor, sids *sidRemap) ([]byte, error) {
	var codes []encCode
	for i := 1; i < len(glyphs); i++ {
		code, ok := a.GlyphToCode(glyphs[i])
		if !ok {
			break
		}
		codes = append(codes, encCode{gid: i, code: byte(code)})
	}
	if len(codes) > maxEncodedCodes {
		return nil, planError("encoding: %d codes exceeds the %d-code limit", len(codes), maxEncodedCodes)
	}

	var supplements []encSupplement
	for _, c := range codes {
		origGID := glyphs[c.gid]
		for _, sc := range a.SupplementalCodes(origGID) {
			sid := sids.add(a.GlyphToSID(origGID))
			supplements = append(supplements, encSupplement{code: byte(sc), sid: sid})
		}
	}
	if len(supplements) > maxEncodedCodes {
		return nil, planError("encoding: %d supplemental codes exceeds the %d-code limit", len(supplements), maxEncodedCodes)
	}

	return encodeEncoding(codes, supplements), nil
}

// encodeEncoding returns the smaller of the format 0 and format 1
// encodings of codes, with supplements appended if non-empty (setting the
// high bit of the format byte), per spec.md §4.4.
func encodeEncoding(codes []encCode, supplements []encSupplement) []byte {
	var base []byte
	if len(codes) == 0 {
		base = []byte{0, 0}
	} else {
		maxGid := codes[len(codes)-1].gid

		type seg struct {
			firstCode byte
			nLeft     byte
		}
		var segs []seg
		startGid, startCode := codes[0].gid, codes[0].code
		for k := 1; k < len(codes); k++ {
			gid, code := codes[k].gid, codes[k].code
			if gid-startGid != int(code)-int(startCode) {
				segs = append(segs, seg{startCode, byte(gid - 1 - startGid)})
				startGid, startCode = gid, code
			}
		}
		segs = append(segs, seg{startCode, byte(maxGid - startGid)})

		format0Len := 2 + maxGid
		format1Len := 2 + len(segs)*2

		if format0Len <= format1Len {
			base = make([]byte, format0Len)
			base[0] = 0
			base[1] = byte(maxGid)
			for _, c := range codes {
				base[c.gid+1] = c.code
			}
		} else {
			base = make([]byte, format1Len)
			base[0] = 1
			base[1] = byte(len(segs))
			for i, s := range segs {
				base[2+2*i] = s.firstCode
				base[2+2*i+1] = s.nLeft
			}
		}
	}

	if len(supplements) == 0 {
		return base
	}
	base[0] |= 0x80
	out := append(base, byte(len(supplements)))
	for _, s := range supplements {
		out = append(out, s.code, byte(s.sid>>8), byte(s.sid))
	}
	return out
}

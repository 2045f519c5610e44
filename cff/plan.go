package cff

// perFD holds the rewritten DICTs and final layout of one retained Font
// DICT's worth of output: its Private DICT (always) and, for a CID font,
// the Font DICT that owns it. A non-CID font has exactly one perFD, for
// its single implicit FD 0 (spec.md §7's PrivateDict/FDCount unification).
type perFD struct {
	origFD      int
	fontDict    Dict // zero value for a non-CID font
	privateDict Dict
	hasSubrs    bool

	private    TableInfo
	localSubrs TableInfo
}

// Plan is the fully-computed layout of one subset operation: the offset,
// size, and (for INDEX structures) offSize of every sub-table, plus the
// already-built payloads Write needs to emit them. It is produced once by
// Create and consumed once by Write.
type Plan struct {
	Glyphs         []GID
	DropHints      bool
	IsCID          bool
	SubsetCharset  bool
	SubsetEncoding bool
	HasFDSelect    bool

	Header           TableInfo
	NameIndex        TableInfo
	TopDictIndex     TableInfo
	StringIndex      TableInfo
	GlobalSubrs      TableInfo
	Encoding         TableInfo
	Charset          TableInfo
	FDSelect         TableInfo
	FDArrayIndex     TableInfo
	CharStringsIndex TableInfo
	FinalSize        int64

	nameBytes     []byte
	topDict       Dict
	strings       [][]byte
	encodingBytes []byte
	charsetBytes  []byte
	fdSelectBytes []byte
	charStrings   [][]byte
	fds           []*perFD
}

// Create computes the output layout for sp against a, without writing any
// bytes, following spec.md §4.7's twelve steps in order.
func Create(a Accessor, sp *SubsetPlan) (*Plan, error) {
	glyphs := sp.Glyphs
	if len(glyphs) == 0 || glyphs[0] != 0 {
		return nil, planError("glyphs[0] must be the .notdef glyph (0)")
	}

	gidRenum := false
	for i, gid := range glyphs {
		if gid != i {
			gidRenum = true
			break
		}
	}

	isCID := a.IsCID()
	p := &Plan{
		Glyphs:         glyphs,
		DropHints:      sp.DropHints,
		IsCID:          isCID,
		SubsetCharset:  gidRenum || !a.IsPredefCharset(),
		SubsetEncoding: !isCID && (gidRenum || !a.IsPredefEncoding()),
		HasFDSelect:    a.HasFDSelect(),
	}

	var cursor int64

	// 1: header.
	p.Header = TableInfo{Offset: cursor, Size: 4}
	cursor += 4

	// 5: Name INDEX, copied verbatim.
	p.nameBytes = a.NameIndexBytes()
	p.NameIndex = TableInfo{Offset: cursor, Size: int64(len(p.nameBytes))}
	cursor += p.NameIndex.Size

	sids := newSIDRemap()

	// 6: modified Top DICT, sized with placeholder offsets; this also
	// collects the Top DICT's own name SIDs and, for a CID font, its ROS
	// registry/ordering SIDs (step 8's first half).
	var rosSupplement []byte
	if isCID {
		if _, _, supp, ok := a.ROS(); ok {
			rosSupplement = supp
		}
	}
	p.topDict = buildTopDict(a.TopDict(), sids, rosSupplement, p.SubsetCharset, p.SubsetEncoding, p.HasFDSelect)
	topDictBytes := p.topDict.encode()
	p.TopDictIndex = TableInfo{
		Offset:  cursor,
		Size:    indexSize([]int64{int64(len(topDictBytes))}),
		OffSize: offSize(int64(len(topDictBytes))),
	}
	cursor += p.TopDictIndex.Size

	// 7: FD remap. A non-CID font behaves as if it has exactly one FD (0),
	// owning the Top DICT's Private DICT.
	var fds *fdRemap
	if p.HasFDSelect {
		fds = newFDRemap(a.FDCount(), glyphs, a.GlyphToFD)
	} else {
		fds = newFDRemap(1, glyphs, func(GID) int { return 0 })
	}

	// 8 (second half): per-retained-FD FontName SIDs, then Charset (which
	// adds per-glyph SIDs for non-CID fonts). Order matters only in that
	// every DICT SID must be add()ed before Charset's glyph SIDs, per
	// spec.md §9's SID-namespace-unification note; sids.add is otherwise
	// idempotent and order-independent for the values already assigned.
	for _, orig := range fds.originals() {
		fd := &perFD{origFD: orig}
		if isCID {
			fd.fontDict = buildFontDict(a.FontDict(orig), sids)
		}
		fd.privateDict, fd.hasSubrs = buildPrivateDict(a.PrivateDict(orig), sp.DropHints)
		p.fds = append(p.fds, fd)
	}

	if p.SubsetCharset {
		p.charsetBytes = planCharset(glyphs, isCID, a.GlyphToSID, sids)
	}
	if p.SubsetEncoding {
		var err error
		p.encodingBytes, err = planEncoding(glyphs, a, sids)
		if err != nil {
			return nil, err
		}
	}
	if sids.count() > maxSIDCount {
		return nil, planError("sid remap: %d SIDs exceeds the %d limit", sids.count(), maxSIDCount)
	}

	// 9: String INDEX, compacted via the remap.
	for _, sid := range sids.original() {
		p.strings = append(p.strings, a.String(sid))
	}
	p.StringIndex = TableInfo{
		Offset:  cursor,
		Size:    indexSize(lengthsOf(p.strings)),
		OffSize: offSize(sumLens(p.strings)),
	}
	cursor += p.StringIndex.Size

	// 10: flatten CharStrings.
	gsubrs := a.GlobalSubrs()
	p.charStrings = make([][]byte, len(glyphs))
	for i, origGID := range glyphs {
		fd := 0
		if p.HasFDSelect {
			fd = a.GlyphToFD(origGID)
		}
		cs, err := flattenCharString(i, a.CharString(origGID), gsubrs, a.LocalSubrs(fd), sp.DropHints)
		if err != nil {
			return nil, err
		}
		p.charStrings[i] = cs
	}

	// 11: Global Subrs (always empty), Encoding, Charset, FDSelect,
	// FDArray INDEX, CharStrings INDEX, in output order.
	p.GlobalSubrs = TableInfo{Offset: cursor, Size: 2}
	cursor += 2

	if p.SubsetEncoding {
		p.Encoding = TableInfo{Offset: cursor, Size: int64(len(p.encodingBytes))}
		cursor += p.Encoding.Size
	}
	if p.SubsetCharset {
		p.Charset = TableInfo{Offset: cursor, Size: int64(len(p.charsetBytes))}
		cursor += p.Charset.Size
	}
	if p.HasFDSelect {
		p.fdSelectBytes = planFDSelect(glyphs, a.GlyphToFD, fds)
		p.FDSelect = TableInfo{Offset: cursor, Size: int64(len(p.fdSelectBytes))}
		cursor += p.FDSelect.Size

		fontDictBytes := make([][]byte, len(p.fds))
		for i, fd := range p.fds {
			fontDictBytes[i] = fd.fontDict.encode()
		}
		p.FDArrayIndex = TableInfo{
			Offset:  cursor,
			Size:    indexSize(lengthsOf(fontDictBytes)),
			OffSize: offSize(sumLens(fontDictBytes)),
		}
		cursor += p.FDArrayIndex.Size
	}

	p.CharStringsIndex = TableInfo{
		Offset:  cursor,
		Size:    indexSize(lengthsOf(p.charStrings)),
		OffSize: offSize(sumLens(p.charStrings)),
	}
	cursor += p.CharStringsIndex.Size

	// 12: concatenated per-FD Private DICT + (always empty) Local Subrs.
	for _, fd := range p.fds {
		privBytes := fd.privateDict.encode()
		fd.private = TableInfo{Offset: cursor, Size: int64(len(privBytes))}
		cursor += fd.private.Size

		fd.localSubrs = TableInfo{Offset: cursor, Size: 2}
		cursor += fd.localSubrs.Size
	}

	p.FinalSize = cursor
	return p, nil
}

func sumLens(items [][]byte) int64 {
	var n int64
	for _, it := range items {
		n += int64(len(it))
	}
	return n
}

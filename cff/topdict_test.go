package cff

import "testing"

func TestBuildTopDictRemapsNameSIDsAndForcesWidth(t *testing.T) {
	src := Dict{
		{Op: OpVersion, Operands: []DictOperand{int32(500)}},
		{Op: OpFamilyName, Operands: []DictOperand{int32(391)}},
	}
	sids := newSIDRemap()
	out := buildTopDict(src, sids, nil, false, false, false)

	enc := out.encode()
	entries := decodeDict(t, enc)
	version, ok := getDecoded(entries, OpVersion)
	if !ok {
		t.Fatal("missing version operator")
	}
	if version.Operands[0].(int32) != 391 {
		t.Errorf("version SID = %d, want 391 (first non-standard SID added)", version.Operands[0])
	}
	family, ok := getDecoded(entries, OpFamilyName)
	if !ok {
		t.Fatal("missing FamilyName operator")
	}
	if family.Operands[0].(int32) != 392 {
		t.Errorf("FamilyName SID = %d, want 392", family.Operands[0])
	}
	for _, op := range []Op{OpVersion, OpFamilyName} {
		if e, _ := out.Get(op); len(e.Widths) == 0 || e.Widths[0] != 2 {
			t.Errorf("operator %#x operand must use the fixed 3-byte form, got widths %v", op, e.Widths)
		}
	}
}

func TestBuildTopDictAlwaysForcesCharStringsOffset(t *testing.T) {
	src := Dict{}
	sids := newSIDRemap()
	out := buildTopDict(src, sids, nil, false, false, false)
	e, ok := out.Get(OpCharStrings)
	if !ok {
		t.Fatal("CharStrings operator must always be present, even when absent from the input")
	}
	if len(e.Widths) == 0 || e.Widths[0] != 4 {
		t.Errorf("CharStrings operand must use the fixed 4-byte form, got widths %v", e.Widths)
	}
}

func TestBuildTopDictAddsCharsetAndEncodingOnlyWhenSubsetting(t *testing.T) {
	src := Dict{}
	sids := newSIDRemap()
	out := buildTopDict(src, sids, nil, true, true, false)
	if _, ok := out.Get(OpCharset); !ok {
		t.Error("expected a charset operator to be added")
	}
	if _, ok := out.Get(OpEncoding); !ok {
		t.Error("expected an Encoding operator to be added")
	}

	out2 := buildTopDict(src, sids, nil, false, false, false)
	if _, ok := out2.Get(OpCharset); ok {
		t.Error("charset operator should not be added when the predefined charset is kept")
	}
	if _, ok := out2.Get(OpEncoding); ok {
		t.Error("Encoding operator should not be added when the predefined encoding is kept")
	}
}

func TestBuildTopDictKeepsPredefinedCharsetSelectorUntouched(t *testing.T) {
	// A predefined-charset font's Top DICT may still carry a charset
	// operator — a small integer selector (1 = ISOAdobe, say), not an
	// offset. With subsetCharset false this must pass through unchanged,
	// not be forced to the 4-byte offset form.
	src := Dict{{Op: OpCharset, Operands: []DictOperand{int32(1)}}}
	sids := newSIDRemap()
	out := buildTopDict(src, sids, nil, false, false, false)
	e, _ := out.Get(OpCharset)
	if len(e.Widths) != 0 {
		t.Errorf("predefined charset selector must keep minimal-width encoding, got widths %v", e.Widths)
	}
	if e.Operands[0].(int32) != 1 {
		t.Errorf("predefined charset selector value changed: got %v, want 1", e.Operands[0])
	}
}

func TestBuildTopDictAddsFDArrayAndFDSelectForCID(t *testing.T) {
	src := Dict{}
	sids := newSIDRemap()
	out := buildTopDict(src, sids, nil, false, false, true)
	if _, ok := out.Get(OpFDArray); !ok {
		t.Error("expected an FDArray operator for a CID font")
	}
	if _, ok := out.Get(OpFDSelect); !ok {
		t.Error("expected an FDSelect operator for a CID font")
	}
}

func TestBuildTopDictCopiesROSSupplementVerbatim(t *testing.T) {
	src := Dict{{Op: OpROS, Operands: []DictOperand{int32(500), int32(501)}}}
	sids := newSIDRemap()
	rosSupplement := []byte{29, 0, 0, 0, 7}
	out := buildTopDict(src, sids, rosSupplement, false, false, true)
	e, ok := out.Get(OpROS)
	if !ok {
		t.Fatal("missing ROS operator")
	}
	raw, ok := e.Operands[2].(rawOperand)
	if !ok {
		t.Fatalf("ROS supplement operand is %T, want rawOperand", e.Operands[2])
	}
	if string(raw) != string(rosSupplement) {
		t.Errorf("ROS supplement bytes changed: got %#v, want %#v", []byte(raw), rosSupplement)
	}
}

func TestPatchTopDictWritesAllPlannedOffsets(t *testing.T) {
	src := Dict{{Op: OpPrivate, Operands: []DictOperand{int32(0), int32(0)}}}
	sids := newSIDRemap()
	built := buildTopDict(src, sids, nil, true, true, true)
	patched := patchTopDict(built, true, true, true, 1000, 2000, 3000, 4000, 5000, TableInfo{Size: 40, Offset: 6000})

	entries := decodeDict(t, patched.encode())
	cases := map[Op]int32{
		OpCharStrings: 1000,
		OpCharset:     2000,
		OpEncoding:    3000,
		OpFDArray:     4000,
		OpFDSelect:    5000,
	}
	for op, want := range cases {
		e, ok := getDecoded(entries, op)
		if !ok {
			t.Fatalf("missing operator %#x after patch", op)
		}
		if e.Operands[0].(int32) != want {
			t.Errorf("operator %#x operand = %d, want %d", op, e.Operands[0], want)
		}
	}
	priv, ok := getDecoded(entries, OpPrivate)
	if !ok {
		t.Fatal("expected Private operator after forcing it in buildTopDict")
	}
	if priv.Operands[0].(int32) != 40 || priv.Operands[1].(int32) != 6000 {
		t.Errorf("Private size/offset = %v, want [40 6000]", priv.Operands)
	}
}

func TestPatchTopDictSizeMatchesBuildTopDictSize(t *testing.T) {
	src := Dict{
		{Op: OpVersion, Operands: []DictOperand{int32(500)}},
		{Op: OpROS, Operands: []DictOperand{int32(501), int32(502)}},
	}
	sids := newSIDRemap()
	built := buildTopDict(src, sids, []byte{29, 0, 0, 0, 0}, true, true, true)
	placeholderSize := len(built.encode())

	patched := patchTopDict(built, true, true, true, 987654321, 123456, 7, 99999999, 1, TableInfo{Size: 512, Offset: 999999})
	if got := len(patched.encode()); got != placeholderSize {
		t.Errorf("patched size %d != placeholder size %d", got, placeholderSize)
	}
}

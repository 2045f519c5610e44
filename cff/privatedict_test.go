package cff

import "testing"

func TestBuildPrivateDictDropsHintOperatorsWhenRequested(t *testing.T) {
	src := Dict{
		{Op: OpBlueValues, Operands: []DictOperand{int32(1)}},
		{Op: OpDefaultWidthX, Operands: []DictOperand{int32(50)}},
		{Op: OpStdHW, Operands: []DictOperand{int32(2)}},
	}
	out, hasSubrs := buildPrivateDict(src, true)
	if hasSubrs {
		t.Error("hasSubrs should be false when the input has no Subrs operator")
	}
	if _, ok := out.Get(OpBlueValues); ok {
		t.Error("BlueValues should have been dropped")
	}
	if _, ok := out.Get(OpStdHW); ok {
		t.Error("StdHW should have been dropped")
	}
	if _, ok := out.Get(OpDefaultWidthX); !ok {
		t.Error("DefaultWidthX is not a hint operator and must survive")
	}
}

func TestBuildPrivateDictKeepsHintsWhenNotDropped(t *testing.T) {
	src := Dict{{Op: OpBlueValues, Operands: []DictOperand{int32(1)}}}
	out, _ := buildPrivateDict(src, false)
	if _, ok := out.Get(OpBlueValues); !ok {
		t.Error("BlueValues should survive when drop_hints is false")
	}
}

func TestBuildAndPatchPrivateDictSubrsPointsPastItself(t *testing.T) {
	src := Dict{
		{Op: OpDefaultWidthX, Operands: []DictOperand{int32(50)}},
		{Op: OpSubrs, Operands: []DictOperand{int32(999)}},
	}
	built, hasSubrs := buildPrivateDict(src, false)
	if !hasSubrs {
		t.Fatal("hasSubrs should be true")
	}
	placeholderSize := len(built.encode())

	patched := patchPrivateDict(built, int64(placeholderSize))
	entries := decodeDict(t, patched.encode())
	e, ok := getDecoded(entries, OpSubrs)
	if !ok {
		t.Fatal("missing Subrs operator")
	}
	if int(e.Operands[0].(int32)) != placeholderSize {
		t.Errorf("Subrs operand = %v, want %d (the Private DICT's own size)", e.Operands[0], placeholderSize)
	}
	if got := len(patched.encode()); got != placeholderSize {
		t.Errorf("patched size %d != placeholder size %d", got, placeholderSize)
	}
}

func TestBuildPrivateDictWithoutSubrsStaysAbsent(t *testing.T) {
	src := Dict{{Op: OpDefaultWidthX, Operands: []DictOperand{int32(50)}}}
	built, hasSubrs := buildPrivateDict(src, false)
	if hasSubrs {
		t.Error("hasSubrs should be false")
	}
	if _, ok := built.Get(OpSubrs); ok {
		t.Error("Subrs operator should not be synthesized when absent from the input")
	}
}

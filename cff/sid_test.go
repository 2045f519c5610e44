package cff

import "testing"

func TestSIDRemapStandardUnchanged(t *testing.T) {
	r := newSIDRemap()
	for _, sid := range []int32{0, 1, 107, 390} {
		if got := r.add(sid); got != sid {
			t.Errorf("add(%d) = %d, want %d (standard SIDs are fixed points)", sid, got, sid)
		}
	}
	if r.count() != 0 {
		t.Errorf("count() = %d, want 0", r.count())
	}
}

func TestSIDRemapDenseFirstSeenOrder(t *testing.T) {
	r := newSIDRemap()
	got := []int32{r.add(500), r.add(391), r.add(500), r.add(600)}
	want := []int32{391, 392, 391, 393}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("add #%d = %d, want %d", i, got[i], want[i])
		}
	}
	if r.count() != 3 {
		t.Errorf("count() = %d, want 3", r.count())
	}
}

func TestSIDRemapIdempotent(t *testing.T) {
	r := newSIDRemap()
	for _, sid := range []int32{0, 107, 500, 391, 700} {
		first := r.add(sid)
		second := r.lookup(first)
		if second != first {
			t.Errorf("lookup(add(%d)) = %d, want %d (idempotence)", sid, second, first)
		}
	}
}

func TestSIDRemapOriginal(t *testing.T) {
	r := newSIDRemap()
	r.add(500)
	r.add(391)
	r.add(600)
	got := r.original()
	want := []int32{500, 391, 600}
	if len(got) != len(want) {
		t.Fatalf("original() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("original()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

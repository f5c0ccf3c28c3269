package bitset

import "testing"

func TestRowSetGetClear(t *testing.T) {
	r := NewRow(130)
	r.Set(0)
	r.Set(63)
	r.Set(64)
	r.Set(129)
	for _, i := range []int{0, 63, 64, 129} {
		if !r.Get(i) {
			t.Errorf("bit %d should be set", i)
		}
	}
	r.Clear(64)
	if r.Get(64) {
		t.Errorf("bit 64 should be cleared")
	}
}

func TestRowOrReportsChange(t *testing.T) {
	a := NewRow(64)
	b := NewRow(64)
	b.Set(5)
	if changed := a.Or(b); !changed {
		t.Errorf("Or should report a change")
	}
	if changed := a.Or(b); changed {
		t.Errorf("Or should be idempotent once bits are merged")
	}
}

func TestRowEachAscending(t *testing.T) {
	r := NewRow(200)
	want := []int{1, 64, 65, 199}
	for _, i := range want {
		r.Set(i)
	}
	var got []int
	r.Each(func(i int) bool {
		got = append(got, i)
		return true
	})
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func TestRelationReflexiveTransitiveClosure(t *testing.T) {
	// 0 -> 1 -> 2, expect closure to add 0->2, 0->0, 1->1, 2->2.
	rel := NewRelation(3)
	rel.Set(0, 1)
	rel.Set(1, 2)
	rel.ReflexiveTransitiveClosure()

	for _, pair := range [][2]int{{0, 0}, {1, 1}, {2, 2}, {0, 1}, {1, 2}, {0, 2}} {
		if !rel.Get(pair[0], pair[1]) {
			t.Errorf("expected closure bit (%d,%d) to be set", pair[0], pair[1])
		}
	}
	if rel.Get(2, 0) {
		t.Errorf("closure should not add a nonexistent back-edge")
	}
}

func TestMatrixIndependentOfSquareRelation(t *testing.T) {
	m := NewMatrix(2, 5)
	m.Set(0, 4)
	m.Set(1, 0)
	if !m.Get(0, 4) || !m.Get(1, 0) {
		t.Fatalf("matrix bits did not round-trip")
	}
	if m.Get(0, 0) {
		t.Errorf("unset bit should read false")
	}
	if m.Rows() != 2 || m.Cols() != 5 {
		t.Errorf("unexpected dimensions %d x %d", m.Rows(), m.Cols())
	}
}

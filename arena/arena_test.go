package arena

import "testing"

func TestArenaLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		insert       int
		removeIndex  int // -1 = none
		expectedLeft int
	}{
		{"single", 1, 0, 0},
		{"three_remove_middle", 3, 1, 2},
		{"none_removed", 2, -1, 2},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := New[string]()
			handles := make([]Handle, 0, c.insert)
			for i := 0; i < c.insert; i++ {
				handles = append(handles, a.Insert(string(rune('a'+i))))
			}
			if c.removeIndex >= 0 {
				if !a.Remove(handles[c.removeIndex]) {
					t.Fatalf("Remove should return true for a live handle")
				}
				if a.Alive(handles[c.removeIndex]) {
					t.Fatalf("handle should not be alive after removal")
				}
				if a.Remove(handles[c.removeIndex]) {
					t.Fatalf("second Remove should return false")
				}
			}
			if a.Len() != c.expectedLeft {
				t.Fatalf("expected %d values, got %d", c.expectedLeft, a.Len())
			}
			for i, h := range handles {
				if i == c.removeIndex {
					continue
				}
				v, ok := a.Get(h)
				if !ok || v != string(rune('a'+i)) {
					t.Fatalf("Get(%v) = %q, %v", h, v, ok)
				}
			}
		})
	}
}

func TestArenaStaleHandleAfterReuse(t *testing.T) {
	a := New[int]()
	first := a.Insert(1)
	a.Remove(first)
	second := a.Insert(2)

	if first.slot() != second.slot() {
		t.Fatalf("expected slot reuse, got ids %d and %d", first.slot(), second.slot())
	}
	if first == second {
		t.Fatalf("reused slot must carry a new generation")
	}
	if first.String() != "1@0" || second.String() != "1@1" {
		t.Fatalf("handles print as %s and %s", first, second)
	}
	if _, ok := a.Get(first); ok {
		t.Fatalf("stale handle resolved after slot reuse")
	}
	if v, ok := a.Get(second); !ok || v != 2 {
		t.Fatalf("Get(second) = %d, %v", v, ok)
	}
}

func TestArenaZeroHandle(t *testing.T) {
	a := New[int]()
	a.Insert(7)
	var zero Handle
	if zero.Valid() || zero.String() != "nil" {
		t.Fatalf("zero handle should be invalid, got %s", zero)
	}
	if a.Alive(zero) {
		t.Fatalf("zero handle should never be alive")
	}
}

func TestArenaHandlesAndClear(t *testing.T) {
	a := New[int]()
	h1 := a.Insert(1)
	h2 := a.Insert(2)
	h3 := a.Insert(3)

	got := a.Handles()
	want := []Handle{h1, h2, h3}
	if len(got) != len(want) {
		t.Fatalf("expected %d handles, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("handle %d: expected %v, got %v", i, want[i], got[i])
		}
	}

	a.Clear()
	if a.Len() != 0 {
		t.Fatalf("expected empty arena after Clear, got %d", a.Len())
	}
	for _, h := range want {
		if a.Alive(h) {
			t.Fatalf("handle %v survived Clear", h)
		}
	}
}

func TestNilArena(t *testing.T) {
	var a *Arena[int]
	if a.Len() != 0 || a.Alive(Handle(1)) || a.Remove(Handle(1)) {
		t.Fatalf("nil arena should behave as empty")
	}
	if _, ok := a.Get(Handle(1)); ok {
		t.Fatalf("nil arena Get should miss")
	}
}

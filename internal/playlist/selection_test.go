// internal/playlist/selection_test.go
//
//nolint:goconst // test file with repeated string literals
package playlist

import "testing"

func newSelection(items ...string) *Selection[string] {
	s := NewSelection[string]()
	s.SetItems(items)
	return s
}

func TestNewSelection(t *testing.T) {
	s := NewSelection[string]()

	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
	if _, ok := s.Selected(); ok {
		t.Error("Selected() should report no cursor")
	}
	if _, ok := s.Current(); ok {
		t.Error("Current() should report no item")
	}
}

func TestSelection_EmptyIsNoOp(t *testing.T) {
	s := NewSelection[string]()

	s.Next()
	s.Previous()

	if _, ok := s.Selected(); ok {
		t.Error("Next/Previous on empty list should not select anything")
	}
}

func TestSelection_FirstMoveSelectsFirstItem(t *testing.T) {
	tests := []struct {
		name string
		move func(*Selection[string])
	}{
		{"next", (*Selection[string]).Next},
		{"previous", (*Selection[string]).Previous},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSelection("a", "b", "c")

			tt.move(s)

			if idx, ok := s.Selected(); !ok || idx != 0 {
				t.Errorf("Selected() = %d, %v; want 0, true", idx, ok)
			}
		})
	}
}

func TestSelection_Wraps(t *testing.T) {
	s := newSelection("a", "b", "c")

	s.Select(2)
	s.Next()
	if idx, _ := s.Selected(); idx != 0 {
		t.Errorf("Next() from last = %d, want 0", idx)
	}

	s.Previous()
	if idx, _ := s.Selected(); idx != 2 {
		t.Errorf("Previous() from first = %d, want 2", idx)
	}
}

func TestSelection_NextThenPreviousRoundTrips(t *testing.T) {
	for size := 1; size <= 5; size++ {
		items := make([]string, size)
		for start := range size {
			for steps := range 2 * size {
				s := newSelection(items...)
				s.Select(start)

				for range steps {
					s.Next()
				}
				for range steps {
					s.Previous()
				}

				if idx, _ := s.Selected(); idx != start {
					t.Errorf("size %d start %d steps %d: got %d", size, start, steps, idx)
				}
			}
		}
	}
}

func TestSelection_SetItemsClearsCursor(t *testing.T) {
	s := newSelection("a", "b")
	s.Next()

	s.SetItems([]string{"c", "d", "e"})

	if _, ok := s.Selected(); ok {
		t.Error("SetItems should clear the cursor")
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
}

func TestSelection_SetItemsCopies(t *testing.T) {
	items := []string{"a", "b"}
	s := newSelection(items...)

	items[0] = "changed"
	got := s.Items()
	got[1] = "changed"

	if cur := s.Items(); cur[0] != "a" || cur[1] != "b" {
		t.Errorf("Items() = %v, want [a b]", cur)
	}
}

func TestSelection_SelectOutOfRange(t *testing.T) {
	s := newSelection("a")

	if s.Select(1) || s.Select(-1) {
		t.Error("Select out of range should return false")
	}
	if _, ok := s.Selected(); ok {
		t.Error("cursor should be unchanged")
	}
}

func TestSelection_Current(t *testing.T) {
	s := newSelection("a", "b")
	s.Select(1)

	if item, ok := s.Current(); !ok || item != "b" {
		t.Errorf("Current() = %q, %v; want b, true", item, ok)
	}
}

// Package playlist holds the displayed track list and its selection cursor.
package playlist

import "slices"

// Selection is an ordered list of items with a cyclic single-item cursor.
// The cursor, when set, always points inside the list.
type Selection[T any] struct {
	items    []T
	selected int // -1 if nothing selected
}

// NewSelection creates an empty selection.
func NewSelection[T any]() *Selection[T] {
	return &Selection[T]{selected: -1}
}

// SetItems replaces the list and clears the cursor.
func (s *Selection[T]) SetItems(items []T) {
	s.items = slices.Clone(items)
	s.selected = -1
}

// Items returns a copy of the list.
func (s *Selection[T]) Items() []T {
	return slices.Clone(s.items)
}

// Len returns the number of items.
func (s *Selection[T]) Len() int {
	return len(s.items)
}

// IsEmpty returns true if the list has no items.
func (s *Selection[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// Next moves the cursor forward, wrapping to the first item.
// With no cursor it selects the first item; on an empty list it does nothing.
func (s *Selection[T]) Next() {
	if len(s.items) == 0 {
		return
	}
	if s.selected < 0 {
		s.selected = 0
		return
	}
	s.selected = (s.selected + 1) % len(s.items)
}

// Previous moves the cursor backward, wrapping to the last item.
// With no cursor it selects the first item; on an empty list it does nothing.
func (s *Selection[T]) Previous() {
	if len(s.items) == 0 {
		return
	}
	if s.selected < 0 {
		s.selected = 0
		return
	}
	s.selected = (s.selected - 1 + len(s.items)) % len(s.items)
}

// Select moves the cursor to index. Returns false if index is out of range.
func (s *Selection[T]) Select(index int) bool {
	if index < 0 || index >= len(s.items) {
		return false
	}
	s.selected = index
	return true
}

// Selected returns the cursor position, if any.
func (s *Selection[T]) Selected() (int, bool) {
	if s.selected < 0 {
		return 0, false
	}
	return s.selected, true
}

// Current returns the item under the cursor, if any.
func (s *Selection[T]) Current() (T, bool) {
	if s.selected < 0 {
		var zero T
		return zero, false
	}
	return s.items[s.selected], true
}

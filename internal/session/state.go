// Package session holds the "now playing" facts shown by the duration gauge.
package session

import (
	"errors"
	"time"
)

// ErrNotInitialized is returned by Refresh before Initialize.
var ErrNotInitialized = errors.New("session not initialized")

// State is either Init or Initialized{elapsed, total}. It is a projection of
// the player refreshed every tick, never edited on its own.
type State struct {
	initialized bool
	elapsed     time.Duration
	total       time.Duration
}

// Initialize moves to Initialized with zero elapsed time. Loading another
// track initializes again with the new total.
func (s *State) Initialize(total time.Duration) {
	s.initialized = true
	s.elapsed = 0
	s.total = total
}

// Refresh updates the elapsed time.
func (s *State) Refresh(elapsed time.Duration) error {
	if !s.initialized {
		return ErrNotInitialized
	}
	s.elapsed = elapsed
	return nil
}

func (s State) IsInitialized() bool { return s.initialized }

// Elapsed returns the elapsed time, if initialized.
func (s State) Elapsed() (time.Duration, bool) {
	return s.elapsed, s.initialized
}

// Total returns the total duration, if initialized.
func (s State) Total() (time.Duration, bool) {
	return s.total, s.initialized
}

// Ratio returns elapsed/total clamped to [0, 1].
func (s State) Ratio() float64 {
	if !s.initialized || s.total <= 0 {
		return 0
	}
	return min(max(float64(s.elapsed)/float64(s.total), 0), 1)
}

// internal/playback/status.go
package playback

import (
	"errors"
	"time"
)

// ErrEmpty is returned when a transport transition is requested while
// nothing is loaded.
var ErrEmpty = errors.New("no track loaded")

// Kind identifies the variant held by a Status.
//
//	┌──────────┐   load    ┌──────────┐   play    ┌──────────┐
//	│  Empty   │ ─────────▶│  Paused  │ ─────────▶│ Playing  │
//	└──────────┘           └──────────┘◀───────── └──────────┘
//	     ▲                      │          pause        │
//	     └──────────────────────┴───────────────────────┘
//	                 stop / end of track
type Kind int

const (
	Empty Kind = iota
	Paused
	Playing
)

// String returns the variant name for debugging.
func (k Kind) String() string {
	switch k {
	case Empty:
		return "Empty"
	case Paused:
		return "Paused"
	case Playing:
		return "Playing"
	default:
		return "Unknown"
	}
}

// Status tracks elapsed playback time across play/pause transitions.
//
// The zero value is Empty. Accumulated time only grows: pausing folds the
// wall time spent playing into it and playing never touches it.
type Status struct {
	kind        Kind
	start       time.Time // valid only while Playing
	accumulated time.Duration
}

// NewPaused returns a Paused status that already accounts for d.
func NewPaused(d time.Duration) Status {
	return Status{kind: Paused, accumulated: d}
}

// Kind returns the current variant.
func (s Status) Kind() Kind { return s.kind }

func (s Status) IsEmpty() bool   { return s.kind == Empty }
func (s Status) IsPaused() bool  { return s.kind == Paused }
func (s Status) IsPlaying() bool { return s.kind == Playing }

// Play starts the clock. Playing is left untouched so repeated calls do
// not restart the current run.
func (s *Status) Play() error {
	switch s.kind {
	case Empty:
		return ErrEmpty
	case Paused:
		s.kind = Playing
		s.start = time.Now()
	case Playing:
	}
	return nil
}

// Pause stops the clock and folds the current run into the accumulated time.
func (s *Status) Pause() error {
	switch s.kind {
	case Empty:
		return ErrEmpty
	case Playing:
		s.accumulated += time.Since(s.start)
		s.kind = Paused
		s.start = time.Time{}
	case Paused:
	}
	return nil
}

// Elapsed returns the time spent in the Playing state. It does not mutate s.
func (s Status) Elapsed() time.Duration {
	switch s.kind {
	case Playing:
		return s.accumulated + time.Since(s.start)
	case Paused:
		return s.accumulated
	case Empty:
	}
	return 0
}

// String renders the status for log lines.
func (s Status) String() string {
	if s.kind == Empty {
		return s.kind.String()
	}
	return s.kind.String() + "(" + s.Elapsed().Truncate(time.Millisecond).String() + ")"
}

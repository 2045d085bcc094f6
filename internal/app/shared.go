package app

import (
	"sync"

	"github.com/llehouerou/daylist/internal/catalog"
	"github.com/llehouerou/daylist/internal/keymap"
	"github.com/llehouerou/daylist/internal/playback"
	"github.com/llehouerou/daylist/internal/session"
)

// Shared guards an App used by both the render loop and the worker. Every
// multi-field update happens inside a single Do call.
type Shared struct {
	mu  sync.Mutex
	app *App
}

// NewShared wraps a.
func NewShared(a *App) *Shared {
	return &Shared{app: a}
}

// Do runs fn with exclusive access to the app.
func (s *Shared) Do(fn func(a *App)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.app)
}

// Snapshot is a consistent copy of what the render layer draws.
type Snapshot struct {
	Tracks     []*catalog.Track
	Selected   int // -1 if nothing selected
	Loading    bool
	Session    session.State
	Status     playback.Status
	NowPlaying *catalog.Track
	Bindings   []keymap.Binding
}

// Snapshot copies the current state.
func (s *Shared) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := s.app
	selected := -1
	if i, ok := a.tracks.Selected(); ok {
		selected = i
	}
	return Snapshot{
		Tracks:     a.tracks.Items(),
		Selected:   selected,
		Loading:    a.IsLoading(),
		Session:    a.session,
		Status:     a.player.Status(),
		NowPlaying: a.nowPlaying,
		Bindings:   keymap.All,
	}
}

// Package player owns the audio sink and the playback status of the loaded track.
package player

import (
	"errors"
	"fmt"
	"time"

	"github.com/llehouerou/daylist/internal/audio"
	"github.com/llehouerou/daylist/internal/playback"
)

// ErrNoTrack is returned by transport operations when nothing is loaded.
var ErrNoTrack = errors.New("no track loaded")

// Loaded describes the track currently held by the player.
type Loaded struct {
	Path  string
	Total time.Duration
}

// Player keeps one sink and one playback.Status consistent with each other:
// a sink is held exactly when the status is Playing or Paused.
//
// Player is not safe for concurrent use; callers serialize access.
type Player struct {
	device audio.Device
	sink   audio.Sink
	status playback.Status
	loaded *Loaded
}

// New creates an empty player that opens sinks on device.
func New(device audio.Device) *Player {
	return &Player{device: device}
}

// Load replaces the current track with the file at path. The new sink is
// paused before the source is enqueued so nothing plays until Play.
// On failure the previously loaded track is kept.
func (p *Player) Load(path string, total time.Duration) error {
	sink, err := p.device.Open()
	if err != nil {
		return fmt.Errorf("open sink: %w", err)
	}
	sink.Pause()
	if err := sink.Enqueue(path); err != nil {
		sink.Stop()
		return fmt.Errorf("enqueue: %w", err)
	}

	p.Stop()
	p.sink = sink
	p.status = playback.NewPaused(0)
	p.loaded = &Loaded{Path: path, Total: total}
	return nil
}

// Stop releases the sink and returns to Empty. It is safe on an empty player.
func (p *Player) Stop() {
	if p.sink != nil {
		p.sink.Stop()
	}
	p.sink = nil
	p.status = playback.Status{}
	p.loaded = nil
}

// Status returns a snapshot of the playback status. A sink that ran out of
// audio (end of track) is released first, so the result is Empty.
func (p *Player) Status() playback.Status {
	if !p.status.IsEmpty() && (p.sink == nil || p.sink.IsIdle()) {
		p.Stop()
	}
	return p.status
}

// Elapsed returns the time spent playing the loaded track.
func (p *Player) Elapsed() time.Duration {
	return p.Status().Elapsed()
}

// Loaded returns the loaded track, if any.
func (p *Player) Loaded() (Loaded, bool) {
	if p.Status().IsEmpty() {
		return Loaded{}, false
	}
	return *p.loaded, true
}

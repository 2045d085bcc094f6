package player

import "github.com/llehouerou/daylist/internal/playback"

// Play resumes the loaded track.
func (p *Player) Play() error {
	if p.Status().IsEmpty() {
		return ErrNoTrack
	}
	p.sink.Play()
	return p.status.Play()
}

// Pause pauses the loaded track.
func (p *Player) Pause() error {
	if p.Status().IsEmpty() {
		return ErrNoTrack
	}
	p.sink.Pause()
	return p.status.Pause()
}

// Toggle switches between playing and paused and returns the resulting kind.
func (p *Player) Toggle() (playback.Kind, error) {
	var err error
	switch p.Status().Kind() {
	case playback.Playing:
		err = p.Pause()
	case playback.Paused:
		err = p.Play()
	case playback.Empty:
		err = ErrNoTrack
	}
	return p.status.Kind(), err
}

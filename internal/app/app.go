// Package app is the orchestration core: it owns the player, the track list
// and the session, turns keys and ticks into state changes, and forwards I/O
// to the background worker.
package app

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/llehouerou/daylist/internal/catalog"
	"github.com/llehouerou/daylist/internal/dispatch"
	"github.com/llehouerou/daylist/internal/errmsg"
	"github.com/llehouerou/daylist/internal/keymap"
	"github.com/llehouerou/daylist/internal/playback"
	"github.com/llehouerou/daylist/internal/player"
	"github.com/llehouerou/daylist/internal/playlist"
	"github.com/llehouerou/daylist/internal/session"
)

// Return tells the render loop whether to keep running.
type Return int

const (
	Continue Return = iota
	Exit
)

// Submitter queues background requests without blocking.
type Submitter interface {
	Submit(req dispatch.Request) error
}

// App is not safe for concurrent use; share it through Shared.
type App struct {
	player    *player.Player
	tracks    *playlist.Selection[*catalog.Track]
	session   session.State
	submitter Submitter
	keys      *keymap.Resolver
	log       logrus.FieldLogger

	// requests submitted and not yet committed
	pending int
	// status kind seen by the previous tick, for end-of-track detection
	lastKind   playback.Kind
	nowPlaying *catalog.Track
}

// New creates an app with no tracks and nothing loaded.
func New(p *player.Player, submitter Submitter, keys *keymap.Resolver, log logrus.FieldLogger) *App {
	return &App{
		player:    p,
		tracks:    playlist.NewSelection[*catalog.Track](),
		submitter: submitter,
		keys:      keys,
		log:       log,
	}
}

// DoAction runs the action bound to key. Local actions complete before it
// returns; I/O actions are queued.
func (a *App) DoAction(key string) Return {
	switch a.keys.Resolve(key) {
	case keymap.ActionQuit:
		return Exit
	case keymap.ActionPlayPause:
		a.togglePlayback()
	case keymap.ActionStop:
		a.stop()
	case keymap.ActionMoveDown:
		a.tracks.Next()
	case keymap.ActionMoveUp:
		a.tracks.Previous()
	case keymap.ActionSelect:
		a.playSelected()
	case keymap.ActionInitialize:
		_ = a.Dispatch(dispatch.Request{Kind: dispatch.Initialize})
	case keymap.ActionRandom:
		_ = a.Dispatch(dispatch.Request{Kind: dispatch.RandomTrack})
	}
	return Continue
}

// UpdateOnTick refreshes the session from the player. A track that ended on
// its own moves the selection forward and requests the next one.
func (a *App) UpdateOnTick() Return {
	st := a.player.Status()

	if st.IsEmpty() && a.lastKind == playback.Playing {
		a.trackFinished()
	}
	a.lastKind = st.Kind()

	if a.session.IsInitialized() {
		_ = a.session.Refresh(st.Elapsed())
	}
	return Continue
}

// Dispatch queues req for the worker and raises the loading flag. If the
// queue rejects it the flag is lowered again and the failure logged.
func (a *App) Dispatch(req dispatch.Request) error {
	a.pending++
	if err := a.submitter.Submit(req); err != nil {
		a.pending--
		a.log.WithField("request", req.Kind).Error(errmsg.Format(errmsg.OpSubmitRequest, err))
		return err
	}
	return nil
}

// IsLoading reports whether any submitted request is still outstanding.
func (a *App) IsLoading() bool {
	return a.pending > 0
}

func (a *App) togglePlayback() {
	kind, err := a.player.Toggle()
	if err != nil {
		if errors.Is(err, player.ErrNoTrack) {
			a.log.Warn("Nothing to play: load a track first")
			return
		}
		a.log.Error(errmsg.Format(errmsg.OpTogglePlayback, err))
		return
	}
	a.lastKind = kind
	a.log.Debugf("Playback %s", kind)
}

func (a *App) stop() {
	a.player.Stop()
	a.lastKind = playback.Empty
	a.nowPlaying = nil
	if a.session.IsInitialized() {
		_ = a.session.Refresh(0)
	}
}

func (a *App) playSelected() {
	t, ok := a.tracks.Current()
	if !ok {
		a.log.Warn("No track selected")
		return
	}
	_ = a.Dispatch(dispatch.Request{Kind: dispatch.PlayTrack, Track: t})
}

func (a *App) trackFinished() {
	a.log.Info("Track finished")
	a.nowPlaying = nil
	if a.tracks.IsEmpty() {
		return
	}
	a.tracks.Next()
	a.playSelected()
}

// setTracks replaces the list and selects the first track.
func (a *App) setTracks(tracks []*catalog.Track) {
	a.tracks.SetItems(tracks)
	a.tracks.Next()
}

// load puts t, downloaded at path, into the player and resets the session.
// With play set the track starts right away.
func (a *App) load(t *catalog.Track, path string, play bool) error {
	if err := a.player.Load(path, t.TotalDuration()); err != nil {
		return err
	}
	a.session.Initialize(t.TotalDuration())
	a.nowPlaying = t
	a.lastKind = playback.Paused
	if play {
		if err := a.player.Play(); err != nil {
			return err
		}
		a.lastKind = playback.Playing
	}
	return nil
}

// done marks one submitted request as committed.
func (a *App) done() {
	if a.pending > 0 {
		a.pending--
	}
}

// Close stops playback and releases the sink.
func (a *App) Close() {
	a.stop()
}

package app

import (
	"context"
	"errors"
	"testing"
	"testing/synctest"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/llehouerou/daylist/internal/audio"
	"github.com/llehouerou/daylist/internal/catalog"
	"github.com/llehouerou/daylist/internal/dispatch"
	"github.com/llehouerou/daylist/internal/keymap"
	"github.com/llehouerou/daylist/internal/player"
)

// gatedCatalog hands out one playlist per call, each released by gate.
type gatedCatalog struct {
	gate      chan struct{}
	playlists [][]*catalog.Track
	random    *catalog.Track
	err       error
}

func (c *gatedCatalog) FetchDailyPlaylist(ctx context.Context) ([]*catalog.Track, error) {
	if c.gate != nil {
		select {
		case <-c.gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if c.err != nil {
		return nil, c.err
	}
	next := c.playlists[0]
	c.playlists = c.playlists[1:]
	return next, nil
}

func (c *gatedCatalog) FetchRandomTrack(context.Context) (*catalog.Track, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.random, nil
}

type fixedTags struct {
	tags catalog.Tags
}

func (f fixedTags) ReadTags(string) (catalog.Tags, error) {
	return f.tags, nil
}

type harness struct {
	shared *Shared
	device *audio.MockDevice
	queue  *dispatch.Dispatcher
	worker *Worker
	hook   *test.Hook
}

func newHarness(t *testing.T, c Catalog, tags TagReader) *harness {
	t.Helper()
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	dev := audio.NewMockDevice()
	queue := dispatch.New(10)
	shared := NewShared(New(player.New(dev), queue, keymap.Default(), logger))
	return &harness{
		shared: shared,
		device: dev,
		queue:  queue,
		worker: NewWorker(shared, c, tags, logger),
		hook:   hook,
	}
}

// runWorker starts the worker role and stops it when the test ends.
func (h *harness) runWorker(t *testing.T) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = h.queue.Run(ctx, h.worker.Handle)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
}

// handle runs req through the worker as if it had been dispatched.
func (h *harness) handle(req dispatch.Request) {
	h.shared.Do(func(a *App) { a.pending++ })
	h.worker.Handle(context.Background(), req)
}

func titles(tracks []*catalog.Track) []string {
	out := make([]string, len(tracks))
	for i, t := range tracks {
		out[i] = t.Title
	}
	return out
}

func TestWorker_CommitsInSubmissionOrder(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		cat := &gatedCatalog{
			gate: make(chan struct{}),
			playlists: [][]*catalog.Track{
				{newTrack("first", time.Minute)},
				{newTrack("second-a", time.Minute), newTrack("second-b", time.Minute)},
			},
		}
		h := newHarness(t, cat, nil)
		h.runWorker(t)

		h.shared.Do(func(a *App) {
			_ = a.Dispatch(dispatch.Request{Kind: dispatch.Initialize})
			_ = a.Dispatch(dispatch.Request{Kind: dispatch.Initialize})
		})
		synctest.Wait()
		if !h.shared.Snapshot().Loading {
			t.Fatal("loading flag should be raised while requests are pending")
		}

		cat.gate <- struct{}{}
		synctest.Wait()
		snap := h.shared.Snapshot()
		if got := titles(snap.Tracks); len(got) != 1 || got[0] != "first" {
			t.Fatalf("after first commit tracks = %v, want [first]", got)
		}
		if !snap.Loading {
			t.Error("loading flag must stay raised while the second request is pending")
		}

		cat.gate <- struct{}{}
		synctest.Wait()
		snap = h.shared.Snapshot()
		if got := titles(snap.Tracks); len(got) != 2 || got[0] != "second-a" {
			t.Fatalf("after second commit tracks = %v, want [second-a second-b]", got)
		}
		if snap.Loading {
			t.Error("loading flag should clear once both requests committed")
		}
	})
}

func TestWorker_InitializeLoadsFirstTrackPaused(t *testing.T) {
	first := newTrack("first", 3*time.Minute)
	h := newHarness(t, &gatedCatalog{playlists: [][]*catalog.Track{{first, newTrack("b", time.Minute)}}}, nil)

	h.handle(dispatch.Request{Kind: dispatch.Initialize})

	snap := h.shared.Snapshot()
	if snap.Selected != 0 || snap.NowPlaying != first {
		t.Errorf("selected = %d, now playing = %v", snap.Selected, snap.NowPlaying)
	}
	if !snap.Status.IsPaused() || snap.Status.Elapsed() != 0 {
		t.Errorf("status = %v, want Paused(0s)", snap.Status)
	}
	if total, _ := snap.Session.Total(); total != 3*time.Minute {
		t.Errorf("session total = %v, want 3m", total)
	}
	if got := h.device.Last().Queued(); len(got) != 1 || got[0] != "/cache/first.mp3" {
		t.Errorf("queued = %v", got)
	}
	if snap.Loading {
		t.Error("loading flag should be cleared")
	}
}

func TestWorker_InitializeEmptyPlaylist(t *testing.T) {
	h := newHarness(t, &gatedCatalog{playlists: [][]*catalog.Track{{}}}, nil)

	h.handle(dispatch.Request{Kind: dispatch.Initialize})

	snap := h.shared.Snapshot()
	if len(snap.Tracks) != 0 || snap.Selected != -1 || !snap.Status.IsEmpty() {
		t.Errorf("unexpected snapshot %+v", snap)
	}
	if snap.Loading {
		t.Error("loading flag should be cleared")
	}
}

func TestWorker_FetchFailureKeepsState(t *testing.T) {
	cat := &gatedCatalog{playlists: [][]*catalog.Track{{newTrack("kept", time.Minute)}}}
	h := newHarness(t, cat, nil)
	h.handle(dispatch.Request{Kind: dispatch.Initialize})

	cat.err = errors.New("catalog unreachable")
	h.handle(dispatch.Request{Kind: dispatch.Initialize})
	h.handle(dispatch.Request{Kind: dispatch.RandomTrack})

	snap := h.shared.Snapshot()
	if got := titles(snap.Tracks); len(got) != 1 || got[0] != "kept" {
		t.Errorf("tracks = %v, want [kept]", got)
	}
	if !snap.Status.IsPaused() {
		t.Errorf("status = %v, want Paused", snap.Status)
	}
	if snap.Loading {
		t.Error("loading flag should be cleared after failures")
	}
	if !hasEntry(h.hook, logrus.ErrorLevel) {
		t.Error("failure should be logged")
	}
}

func TestWorker_DownloadFailureKeepsPlayer(t *testing.T) {
	h := newHarness(t, &gatedCatalog{}, nil)
	playing := newTrack("playing", time.Minute)
	h.shared.Do(func(a *App) { _ = a.load(playing, "/cache/playing.mp3", true) })

	broken := catalog.NewTrack("x", "broken", "", time.Minute, "", fakeDownloader{err: errors.New("timeout")})
	h.handle(dispatch.Request{Kind: dispatch.PlayTrack, Track: broken})

	snap := h.shared.Snapshot()
	if snap.NowPlaying != playing || !snap.Status.IsPlaying() {
		t.Errorf("now playing = %v, status = %v", snap.NowPlaying, snap.Status)
	}
	if snap.Loading {
		t.Error("loading flag should be cleared")
	}
}

func TestWorker_LoadFailureIsLogged(t *testing.T) {
	h := newHarness(t, &gatedCatalog{}, nil)
	h.device.SetOpenError(errors.New("no output device"))

	h.handle(dispatch.Request{Kind: dispatch.PlayTrack, Track: newTrack("a", time.Minute)})

	snap := h.shared.Snapshot()
	if !snap.Status.IsEmpty() || snap.NowPlaying != nil {
		t.Errorf("unexpected snapshot %+v", snap)
	}
	if snap.Loading || !hasEntry(h.hook, logrus.ErrorLevel) {
		t.Error("load failure should clear loading and be logged")
	}
}

func TestWorker_PlayTrackStartsPlayback(t *testing.T) {
	h := newHarness(t, &gatedCatalog{}, fixedTags{catalog.Tags{Artist: "Band", Title: "Tagged", Format: "MP3"}})
	track := newTrack("a", 2*time.Minute)

	h.handle(dispatch.Request{Kind: dispatch.PlayTrack, Track: track})

	snap := h.shared.Snapshot()
	if !snap.Status.IsPlaying() || snap.NowPlaying != track {
		t.Errorf("status = %v, now playing = %v", snap.Status, snap.NowPlaying)
	}
	if h.device.Last().Paused() {
		t.Error("sink should be playing")
	}
	last := h.hook.LastEntry()
	if last == nil || last.Message != "Now playing Band - Tagged" {
		t.Errorf("last log entry = %+v", last)
	}
}

func TestWorker_PlayTrackWithoutTrack(t *testing.T) {
	h := newHarness(t, &gatedCatalog{}, nil)

	h.handle(dispatch.Request{Kind: dispatch.PlayTrack})

	if h.shared.Snapshot().Loading {
		t.Error("loading flag should be cleared")
	}
}

func TestWorker_RandomTrack(t *testing.T) {
	random := newTrack("lucky", time.Minute)
	h := newHarness(t, &gatedCatalog{random: random}, nil)
	h.shared.Do(func(a *App) { a.setTracks([]*catalog.Track{newTrack("listed", time.Minute)}) })

	h.handle(dispatch.Request{Kind: dispatch.RandomTrack})

	snap := h.shared.Snapshot()
	if snap.NowPlaying != random || !snap.Status.IsPlaying() {
		t.Errorf("now playing = %v, status = %v", snap.NowPlaying, snap.Status)
	}
	if got := titles(snap.Tracks); len(got) != 1 || got[0] != "listed" {
		t.Errorf("random track should not replace the list, got %v", got)
	}
	if last := h.hook.LastEntry(); last == nil || last.Message != "Now playing lucky" {
		t.Errorf("last log entry = %+v", last)
	}
}

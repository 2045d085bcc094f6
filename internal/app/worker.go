package app

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/llehouerou/daylist/internal/catalog"
	"github.com/llehouerou/daylist/internal/dispatch"
	"github.com/llehouerou/daylist/internal/errmsg"
)

// Catalog is the remote source of tracks.
type Catalog interface {
	FetchDailyPlaylist(ctx context.Context) ([]*catalog.Track, error)
	FetchRandomTrack(ctx context.Context) (*catalog.Track, error)
}

// TagReader reads embedded metadata of a downloaded file.
type TagReader interface {
	ReadTags(path string) (catalog.Tags, error)
}

// Worker performs the I/O of background requests. Network and disk work runs
// without the app lock; results are committed, and the request marked done,
// in one Do call.
type Worker struct {
	shared  *Shared
	catalog Catalog
	tags    TagReader
	log     logrus.FieldLogger
}

// NewWorker creates a worker committing into shared. tags may be nil.
func NewWorker(shared *Shared, c Catalog, tags TagReader, log logrus.FieldLogger) *Worker {
	return &Worker{
		shared:  shared,
		catalog: c,
		tags:    tags,
		log:     log,
	}
}

// Handle implements dispatch.Handler.
func (w *Worker) Handle(ctx context.Context, req dispatch.Request) {
	switch req.Kind {
	case dispatch.Initialize:
		w.initialize(ctx)
	case dispatch.PlayTrack:
		w.playTrack(ctx, req.Track)
	case dispatch.RandomTrack:
		w.randomTrack(ctx)
	default:
		w.log.Warnf("Unknown request %v", req.Kind)
		w.shared.Do((*App).done)
	}
}

// initialize fetches the daily playlist and loads its first track, paused.
func (w *Worker) initialize(ctx context.Context) {
	w.log.Info("Initialize the application")

	tracks, err := w.catalog.FetchDailyPlaylist(ctx)
	if err != nil {
		w.fail(errmsg.Format(errmsg.OpFetchPlaylist, err))
		return
	}
	w.log.Infof("Fetched %d tracks", len(tracks))

	var first *catalog.Track
	var path string
	if len(tracks) > 0 {
		first = tracks[0]
		path, err = first.Download(ctx)
		if err != nil {
			w.log.Error(errmsg.FormatWith(errmsg.OpDownload, first.Title, err))
			first = nil
		}
	}

	w.shared.Do(func(a *App) {
		defer a.done()
		a.setTracks(tracks)
		if first == nil {
			return
		}
		if err := a.load(first, path, false); err != nil {
			w.log.Error(errmsg.FormatWith(errmsg.OpLoadTrack, first.Title, err))
			return
		}
		w.log.Info("Application initialized")
	})
}

func (w *Worker) playTrack(ctx context.Context, t *catalog.Track) {
	if t == nil {
		w.fail("Play request without a track")
		return
	}
	w.downloadAndPlay(ctx, t)
}

func (w *Worker) randomTrack(ctx context.Context) {
	t, err := w.catalog.FetchRandomTrack(ctx)
	if err != nil {
		w.fail(errmsg.Format(errmsg.OpFetchRandom, err))
		return
	}
	w.downloadAndPlay(ctx, t)
}

func (w *Worker) downloadAndPlay(ctx context.Context, t *catalog.Track) {
	path, err := t.Download(ctx)
	if err != nil {
		w.fail(errmsg.FormatWith(errmsg.OpDownload, t.Title, err))
		return
	}
	entry, title := w.describe(t, path)

	w.shared.Do(func(a *App) {
		defer a.done()
		if err := a.load(t, path, true); err != nil {
			w.log.Error(errmsg.FormatWith(errmsg.OpLoadTrack, t.Title, err))
			return
		}
		entry.Infof("Now playing %s", title)
	})
}

// fail logs msg and marks the request done without touching other state.
func (w *Worker) fail(msg string) {
	w.log.Error(msg)
	w.shared.Do((*App).done)
}

// describe names the track from its embedded tags, falling back to the
// catalog entry.
func (w *Worker) describe(t *catalog.Track, path string) (logrus.FieldLogger, string) {
	entry := w.log.WithField("duration", t.TotalDuration())
	if w.tags == nil {
		return entry, t.String()
	}
	tags, err := w.tags.ReadTags(path)
	if err != nil || tags.Title == "" {
		return entry, t.String()
	}
	entry = entry.WithField("format", tags.Format)
	if tags.Artist == "" {
		return entry, tags.Title
	}
	return entry, tags.Artist + " - " + tags.Title
}

// Package catalog talks to the remote music catalog and keeps downloaded
// tracks in a local cache.
package catalog

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrNoDownloader is returned by Track.Download for tracks built without a
// download source.
var ErrNoDownloader = errors.New("track has no download source")

// Downloader stores a track locally and returns the file path.
type Downloader interface {
	Download(ctx context.Context, t *Track) (string, error)
}

// Track is a catalog entry. Its fields are fixed once built; only the local
// path is filled in by Download.
type Track struct {
	ID       string
	Title    string
	Artist   string
	Duration time.Duration
	URL      string

	downloader Downloader

	mu   sync.Mutex
	path string
}

// NewTrack builds a track downloaded through d.
func NewTrack(id, title, artist string, duration time.Duration, url string, d Downloader) *Track {
	return &Track{
		ID:         id,
		Title:      title,
		Artist:     artist,
		Duration:   duration,
		URL:        url,
		downloader: d,
	}
}

// TotalDuration returns the length announced by the catalog.
func (t *Track) TotalDuration() time.Duration {
	return t.Duration
}

// Download returns the local file of the track, fetching it on first use.
func (t *Track) Download(ctx context.Context) (string, error) {
	if path, ok := t.Path(); ok {
		return path, nil
	}
	if t.downloader == nil {
		return "", ErrNoDownloader
	}

	path, err := t.downloader.Download(ctx, t)
	if err != nil {
		return "", err
	}

	t.mu.Lock()
	t.path = path
	t.mu.Unlock()
	return path, nil
}

// Path returns the local file if the track was already downloaded.
func (t *Track) Path() (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.path, t.path != ""
}

// String returns "Artist - Title", or just the title without an artist.
func (t *Track) String() string {
	if t.Artist == "" {
		return t.Title
	}
	return t.Artist + " - " + t.Title
}

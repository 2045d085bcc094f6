package catalog

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/llehouerou/daylist/internal/state"
)

// Index records finished downloads.
type Index interface {
	RecordDownload(d state.Download) error
}

// OpenFunc opens the remote body of a download.
type OpenFunc func(ctx context.Context) (io.ReadCloser, error)

// Cache stores downloaded tracks as <dir>/<title>.<format>. A file that
// exists is never fetched again.
type Cache struct {
	fs     afero.Fs
	dir    string
	format string
	index  Index
	log    logrus.FieldLogger
}

// NewCache creates a cache in dir. index may be nil.
func NewCache(fs afero.Fs, dir, format string, index Index, log logrus.FieldLogger) *Cache {
	return &Cache{
		fs:     fs,
		dir:    dir,
		format: format,
		index:  index,
		log:    log,
	}
}

// Dir returns the cache directory.
func (c *Cache) Dir() string {
	return c.dir
}

// Path returns where a track titled title is stored.
func (c *Cache) Path(title string) string {
	return filepath.Join(c.dir, sanitizeFilename(title)+"."+c.format)
}

// Fetch returns the cached file for title, downloading it through open if
// missing. The body is written to a temporary file first so a failed
// download leaves nothing under the final name.
func (c *Cache) Fetch(ctx context.Context, title string, open OpenFunc) (string, error) {
	path := c.Path(title)
	exists, err := afero.Exists(c.fs, path)
	if err != nil {
		return "", err
	}
	if exists {
		return path, nil
	}

	if err := c.fs.MkdirAll(c.dir, 0o755); err != nil {
		return "", fmt.Errorf("create cache directory: %w", err)
	}

	body, err := open(ctx)
	if err != nil {
		return "", err
	}
	defer body.Close()

	tmp, err := afero.TempFile(c.fs, c.dir, ".download-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	size, err := io.Copy(tmp, body)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = c.fs.Remove(tmpName)
		return "", fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}

	if err := c.fs.Rename(tmpName, path); err != nil {
		_ = c.fs.Remove(tmpName)
		return "", fmt.Errorf("move into cache: %w", err)
	}

	c.log.WithField("size", humanize.Bytes(uint64(size))).Infof("Downloaded %s", title)

	if c.index != nil {
		err := c.index.RecordDownload(state.Download{
			Title:        title,
			Path:         path,
			Size:         size,
			DownloadedAt: time.Now(),
		})
		if err != nil {
			// The file is usable without its index entry.
			c.log.WithError(err).Warn("Failed to index download")
		}
	}

	return path, nil
}

// Clear removes every cached track and returns how many files were removed.
func (c *Cache) Clear() (int, error) {
	entries, err := afero.ReadDir(c.fs, c.dir)
	if err != nil {
		if ok, _ := afero.DirExists(c.fs, c.dir); !ok {
			return 0, nil
		}
		return 0, err
	}

	removed := 0
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), "."+c.format) {
			continue
		}
		if err := c.fs.Remove(filepath.Join(c.dir, e.Name())); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}

// sanitizeFilename replaces characters that are not allowed in file names.
func sanitizeFilename(s string) string {
	replacer := strings.NewReplacer(
		"/", "-",
		"\\", "-",
		":", "-",
		"*", "-",
		"?", "-",
		"\"", "-",
		"<", "-",
		">", "-",
		"|", "-",
	)
	result := strings.TrimSpace(replacer.Replace(s))
	if result == "" || result == "." || result == ".." {
		return "untitled"
	}

	if len(result) > 200 {
		result = result[:200]
	}

	return result
}

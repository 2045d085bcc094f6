// Package state keeps the index of downloaded tracks in a SQLite database.
package state

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite" // SQLite driver
)

// Download is one cached track file.
type Download struct {
	Title        string
	Path         string
	Size         int64
	DownloadedAt time.Time
}

type Manager struct {
	mu sync.Mutex
	db *sql.DB
}

// Open opens (or creates) the index at path.
func Open(path string) (*Manager, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Manager{db: db}, nil
}

func (m *Manager) Close() error {
	return m.db.Close()
}

// RecordDownload stores or replaces the entry for d.Path.
func (m *Manager) RecordDownload(d Download) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if d.DownloadedAt.IsZero() {
		d.DownloadedAt = time.Now()
	}
	_, err := m.db.Exec(`
		INSERT INTO downloads (path, title, size, downloaded_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			title = excluded.title,
			size = excluded.size,
			downloaded_at = excluded.downloaded_at
	`, d.Path, d.Title, d.Size, d.DownloadedAt.Unix())
	if err != nil {
		return fmt.Errorf("record download: %w", err)
	}
	return nil
}

// Downloads returns every entry, most recent first.
func (m *Manager) Downloads() ([]Download, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rows, err := m.db.Query(`
		SELECT title, path, size, downloaded_at
		FROM downloads
		ORDER BY downloaded_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query downloads: %w", err)
	}
	defer rows.Close()

	var result []Download
	for rows.Next() {
		var d Download
		var at int64
		if err := rows.Scan(&d.Title, &d.Path, &d.Size, &at); err != nil {
			return nil, err
		}
		d.DownloadedAt = time.Unix(at, 0)
		result = append(result, d)
	}
	return result, rows.Err()
}

// ClearDownloads removes every entry and returns how many were removed.
func (m *Manager) ClearDownloads() (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	res, err := m.db.Exec(`DELETE FROM downloads`)
	if err != nil {
		return 0, fmt.Errorf("clear downloads: %w", err)
	}
	return res.RowsAffected()
}

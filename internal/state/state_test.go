package state

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestManager(t *testing.T) *Manager {
	t.Helper()

	m, err := Open(filepath.Join(t.TempDir(), "data", "daylist.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { m.Close() })
	return m
}

func TestDownloads_Empty(t *testing.T) {
	m := openTestManager(t)

	got, err := m.Downloads()
	if err != nil {
		t.Fatalf("Downloads() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no downloads, got %d", len(got))
	}
}

func TestRecordDownload_NewestFirst(t *testing.T) {
	m := openTestManager(t)
	base := time.Unix(1_700_000_000, 0)

	records := []Download{
		{Title: "First", Path: "/cache/First.mp3", Size: 100, DownloadedAt: base},
		{Title: "Second", Path: "/cache/Second.mp3", Size: 200, DownloadedAt: base.Add(time.Minute)},
	}
	for _, d := range records {
		if err := m.RecordDownload(d); err != nil {
			t.Fatalf("RecordDownload() error = %v", err)
		}
	}

	got, err := m.Downloads()
	if err != nil {
		t.Fatalf("Downloads() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 downloads, got %d", len(got))
	}
	if got[0].Title != "Second" || got[1].Title != "First" {
		t.Errorf("order = %q, %q; want Second, First", got[0].Title, got[1].Title)
	}
	if got[0].Size != 200 || !got[0].DownloadedAt.Equal(base.Add(time.Minute)) {
		t.Errorf("unexpected record %+v", got[0])
	}
}

func TestRecordDownload_ReplacesSamePath(t *testing.T) {
	m := openTestManager(t)

	_ = m.RecordDownload(Download{Title: "Song", Path: "/cache/Song.mp3", Size: 10})
	if err := m.RecordDownload(Download{Title: "Song", Path: "/cache/Song.mp3", Size: 20}); err != nil {
		t.Fatalf("RecordDownload() error = %v", err)
	}

	got, _ := m.Downloads()
	if len(got) != 1 {
		t.Fatalf("expected 1 download, got %d", len(got))
	}
	if got[0].Size != 20 {
		t.Errorf("Size = %d, want 20", got[0].Size)
	}
	if got[0].DownloadedAt.IsZero() {
		t.Error("DownloadedAt should default to now")
	}
}

func TestClearDownloads(t *testing.T) {
	m := openTestManager(t)
	_ = m.RecordDownload(Download{Title: "A", Path: "/a.mp3", Size: 1})
	_ = m.RecordDownload(Download{Title: "B", Path: "/b.mp3", Size: 2})

	n, err := m.ClearDownloads()
	if err != nil {
		t.Fatalf("ClearDownloads() error = %v", err)
	}
	if n != 2 {
		t.Errorf("removed %d, want 2", n)
	}
	if got, _ := m.Downloads(); len(got) != 0 {
		t.Errorf("expected no downloads after clear, got %d", len(got))
	}
}

func TestOpen_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daylist.db")

	m, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	_ = m.RecordDownload(Download{Title: "Kept", Path: "/kept.mp3", Size: 5})
	m.Close()

	m, err = Open(path)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer m.Close()

	got, _ := m.Downloads()
	if len(got) != 1 || got[0].Title != "Kept" {
		t.Errorf("Downloads() after reopen = %+v", got)
	}
}

// Package logpane configures logging and keeps recent entries for the
// operator log pane.
package logpane

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Entry is one line shown in the log pane.
type Entry struct {
	Time    time.Time
	Level   logrus.Level
	Message string
}

// Buffer is a logrus hook that keeps the last entries in memory.
type Buffer struct {
	mu      sync.Mutex
	entries []Entry
	size    int
}

// NewBuffer creates a buffer that keeps at most size entries.
func NewBuffer(size int) *Buffer {
	return &Buffer{size: max(size, 1)}
}

// Levels implements logrus.Hook.
func (b *Buffer) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire implements logrus.Hook.
func (b *Buffer) Fire(e *logrus.Entry) error {
	msg := e.Message
	if len(e.Data) > 0 {
		var sb strings.Builder
		sb.WriteString(msg)
		for k, v := range e.Data {
			fmt.Fprintf(&sb, " %s=%v", k, v)
		}
		msg = sb.String()
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries = append(b.entries, Entry{Time: e.Time, Level: e.Level, Message: msg})
	if over := len(b.entries) - b.size; over > 0 {
		b.entries = append(b.entries[:0:0], b.entries[over:]...)
	}
	return nil
}

// Lines returns a copy of the kept entries, oldest first.
func (b *Buffer) Lines() []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Entry(nil), b.entries...)
}

// Options configures Setup.
type Options struct {
	Level string // logrus level name
	Lines int    // entries kept for the pane
	File  string // optional log file, appended to
}

// Setup creates the application logger. Entries go to the returned buffer and,
// if set, to the log file; nothing is written to the terminal. The returned
// closer releases the log file.
func Setup(opts Options) (*logrus.Logger, *Buffer, io.Closer, error) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})

	lvl, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)

	buf := NewBuffer(opts.Lines)
	logger.AddHook(buf)

	var closer io.Closer = nopCloser{}
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return nil, nil, nil, fmt.Errorf("create log directory: %w", err)
		}
		f, err := os.OpenFile(opts.File, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("open log file: %w", err)
		}
		logger.SetOutput(f)
		closer = f
	}

	return logger, buf, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

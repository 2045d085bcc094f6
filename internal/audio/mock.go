// internal/audio/mock.go
package audio

import (
	"errors"
	"sync"
)

// ErrSinkStopped is returned by MockSink.Enqueue after Stop.
var ErrSinkStopped = errors.New("sink stopped")

// MockDevice is a test double for Device that records opened sinks.
type MockDevice struct {
	mu         sync.Mutex
	sinks      []*MockSink
	openErr    error
	enqueueErr error
}

// NewMockDevice creates a mock device.
func NewMockDevice() *MockDevice {
	return &MockDevice{}
}

func (d *MockDevice) Open() (Sink, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.openErr != nil {
		return nil, d.openErr
	}
	s := &MockSink{enqueueErr: d.enqueueErr}
	d.sinks = append(d.sinks, s)
	return s, nil
}

// Test helpers

func (d *MockDevice) SetOpenError(err error) {
	d.mu.Lock()
	d.openErr = err
	d.mu.Unlock()
}

// SetEnqueueError makes sinks opened afterwards fail on Enqueue.
func (d *MockDevice) SetEnqueueError(err error) {
	d.mu.Lock()
	d.enqueueErr = err
	d.mu.Unlock()
}

// Sinks returns every sink opened so far.
func (d *MockDevice) Sinks() []*MockSink {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]*MockSink(nil), d.sinks...)
}

// Last returns the most recently opened sink, or nil.
func (d *MockDevice) Last() *MockSink {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.sinks) == 0 {
		return nil
	}
	return d.sinks[len(d.sinks)-1]
}

// MockSink is a test double for Sink.
type MockSink struct {
	mu         sync.Mutex
	queued     []string
	paused     bool
	stopped    bool
	enqueueErr error
	// paused state observed at each Enqueue call
	pausedOnEnqueue []bool
}

func (s *MockSink) Enqueue(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.enqueueErr != nil {
		return s.enqueueErr
	}
	if s.stopped {
		return ErrSinkStopped
	}
	s.queued = append(s.queued, path)
	s.pausedOnEnqueue = append(s.pausedOnEnqueue, s.paused)
	return nil
}

func (s *MockSink) Play() {
	s.mu.Lock()
	s.paused = false
	s.mu.Unlock()
}

func (s *MockSink) Pause() {
	s.mu.Lock()
	s.paused = true
	s.mu.Unlock()
}

func (s *MockSink) Stop() {
	s.mu.Lock()
	s.queued = nil
	s.stopped = true
	s.mu.Unlock()
}

func (s *MockSink) IsIdle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopped || len(s.queued) == 0
}

func (s *MockSink) Paused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paused
}

func (s *MockSink) Stopped() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopped
}

func (s *MockSink) Queued() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.queued...)
}

// PausedOnEnqueue reports whether the sink was paused when each source was enqueued.
func (s *MockSink) PausedOnEnqueue() []bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]bool(nil), s.pausedOnEnqueue...)
}

// Finish simulates the head source reaching its natural end.
func (s *MockSink) Finish() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queued) > 0 {
		s.queued = s.queued[1:]
	}
}

// Verify mocks implement the interfaces at compile time.
var (
	_ Device = (*MockDevice)(nil)
	_ Sink   = (*MockSink)(nil)
)

// Package dispatch carries background requests from the interactive loop to a
// single worker, in submission order.
package dispatch

import (
	"context"
	"errors"
	"sync"

	"github.com/llehouerou/daylist/internal/catalog"
)

var (
	// ErrQueueFull is returned by Submit when the queue is at capacity.
	ErrQueueFull = errors.New("request queue full")
	// ErrClosed is returned by Submit after Close.
	ErrClosed = errors.New("request queue closed")
)

// Kind identifies the work a request asks for.
type Kind int

const (
	// Initialize fetches the daily playlist.
	Initialize Kind = iota
	// PlayTrack downloads Track and loads it.
	PlayTrack
	// RandomTrack fetches a random track, downloads it and loads it.
	RandomTrack
)

func (k Kind) String() string {
	switch k {
	case Initialize:
		return "initialize"
	case PlayTrack:
		return "play track"
	case RandomTrack:
		return "random track"
	default:
		return "unknown"
	}
}

// Request is one unit of background work.
type Request struct {
	Kind  Kind
	Track *catalog.Track // PlayTrack only
}

// Handler processes one request. It runs on the worker goroutine.
type Handler func(ctx context.Context, req Request)

// Dispatcher is a bounded FIFO of requests.
type Dispatcher struct {
	mu     sync.Mutex
	ch     chan Request
	closed bool
}

// New creates a dispatcher holding at most size pending requests.
func New(size int) *Dispatcher {
	return &Dispatcher{ch: make(chan Request, max(size, 1))}
}

// Submit queues req without blocking.
func (d *Dispatcher) Submit(req Request) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return ErrClosed
	}
	select {
	case d.ch <- req:
		return nil
	default:
		return ErrQueueFull
	}
}

// Close stops accepting requests. Requests already queued are still handled
// by Run. Close is idempotent.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.closed {
		d.closed = true
		close(d.ch)
	}
}

// Run hands requests to h one at a time until the dispatcher is closed and
// drained or ctx is done.
func (d *Dispatcher) Run(ctx context.Context, h Handler) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case req, ok := <-d.ch:
			if !ok {
				return nil
			}
			h(ctx, req)
		}
	}
}

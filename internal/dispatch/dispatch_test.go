package dispatch

import (
	"context"
	"errors"
	"testing"
	"testing/synctest"
	"time"
)

func TestDispatcher_RunsInSubmissionOrder(t *testing.T) {
	d := New(10)
	for _, k := range []Kind{Initialize, RandomTrack, PlayTrack} {
		if err := d.Submit(Request{Kind: k}); err != nil {
			t.Fatalf("Submit(%v) error = %v", k, err)
		}
	}
	d.Close()

	var got []Kind
	err := d.Run(context.Background(), func(_ context.Context, req Request) {
		got = append(got, req.Kind)
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := []Kind{Initialize, RandomTrack, PlayTrack}
	if len(got) != len(want) {
		t.Fatalf("handled %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("request %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDispatcher_SubmitFull(t *testing.T) {
	d := New(1)

	if err := d.Submit(Request{Kind: Initialize}); err != nil {
		t.Fatalf("first Submit() error = %v", err)
	}
	if err := d.Submit(Request{Kind: Initialize}); !errors.Is(err, ErrQueueFull) {
		t.Errorf("second Submit() error = %v, want ErrQueueFull", err)
	}
}

func TestDispatcher_SubmitAfterClose(t *testing.T) {
	d := New(1)
	d.Close()
	d.Close()

	if err := d.Submit(Request{Kind: Initialize}); !errors.Is(err, ErrClosed) {
		t.Errorf("Submit() error = %v, want ErrClosed", err)
	}
}

func TestDispatcher_HandlesOneAtATime(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		d := New(10)
		active, peak := 0, 0
		done := make(chan struct{})

		go func() {
			defer close(done)
			_ = d.Run(context.Background(), func(context.Context, Request) {
				active++
				peak = max(peak, active)
				time.Sleep(time.Second)
				active--
			})
		}()

		for range 3 {
			_ = d.Submit(Request{Kind: Initialize})
		}
		d.Close()
		<-done

		if peak != 1 {
			t.Errorf("peak concurrency = %d, want 1", peak)
		}
	})
}

func TestDispatcher_RunStopsOnCancel(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		d := New(1)
		ctx, cancel := context.WithCancel(context.Background())
		errc := make(chan error, 1)

		go func() { errc <- d.Run(ctx, func(context.Context, Request) {}) }()
		synctest.Wait()
		cancel()

		if err := <-errc; !errors.Is(err, context.Canceled) {
			t.Errorf("Run() error = %v, want context.Canceled", err)
		}
	})
}

func TestKind_String(t *testing.T) {
	if got := PlayTrack.String(); got != "play track" {
		t.Errorf("PlayTrack.String() = %q", got)
	}
	if got := Kind(42).String(); got != "unknown" {
		t.Errorf("Kind(42).String() = %q", got)
	}
}

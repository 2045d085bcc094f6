// Package audio provides the audio output device used by the player.
package audio

// Sink is an exclusive audio output that plays enqueued sources in order.
type Sink interface {
	// Enqueue decodes the file at path and appends it to the sink.
	Enqueue(path string) error
	Play()
	Pause()
	// Stop drops every pending source and releases the output.
	Stop()
	// IsIdle reports whether the sink has no pending audio left.
	IsIdle() bool
}

// Device opens sinks on the audio output.
type Device interface {
	Open() (Sink, error)
}

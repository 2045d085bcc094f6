package audio

import (
	"io"

	"github.com/gopxl/beep/v2"
)

// queue streams its sources back to back and plays silence once drained,
// so the speaker keeps pulling from it for the whole life of a sink.
// All methods must be called with the speaker lock held.
type queue struct {
	sources []source
}

type source struct {
	streamer beep.Streamer
	closer   io.Closer
}

func (q *queue) push(s beep.Streamer, c io.Closer) {
	q.sources = append(q.sources, source{streamer: s, closer: c})
}

func (q *queue) len() int {
	return len(q.sources)
}

// clear closes and drops every pending source.
func (q *queue) clear() {
	for _, s := range q.sources {
		if s.closer != nil {
			_ = s.closer.Close()
		}
	}
	q.sources = nil
}

func (q *queue) pop() {
	if s := q.sources[0]; s.closer != nil {
		_ = s.closer.Close()
	}
	q.sources = q.sources[1:]
}

func (q *queue) Stream(samples [][2]float64) (n int, ok bool) {
	filled := 0
	for filled < len(samples) {
		if len(q.sources) == 0 {
			clear(samples[filled:])
			break
		}
		n, ok := q.sources[0].streamer.Stream(samples[filled:])
		if !ok {
			q.pop()
			continue
		}
		filled += n
	}
	return len(samples), true
}

func (q *queue) Err() error { return nil }

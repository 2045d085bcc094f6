package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
)

const (
	extMP3  = ".mp3"
	extFLAC = ".flac"

	defaultSampleRate = beep.SampleRate(44100)
)

// Speaker is the Device backed by the system audio output.
// The speaker is initialized on the first Open.
type Speaker struct {
	mu          sync.Mutex
	initialized bool
	sampleRate  beep.SampleRate
}

// NewSpeaker creates a speaker device with the standard sample rate.
func NewSpeaker() *Speaker {
	return &Speaker{sampleRate: defaultSampleRate}
}

// Open initializes the speaker if needed and starts a new silent sink on it.
func (s *Speaker) Open() (Sink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		if err := speaker.Init(s.sampleRate, s.sampleRate.N(time.Second/10)); err != nil {
			return nil, fmt.Errorf("init speaker: %w", err)
		}
		s.initialized = true
	}

	sink := &speakerSink{
		sampleRate: s.sampleRate,
		queue:      &queue{},
	}
	sink.ctrl = &beep.Ctrl{Streamer: sink.queue}
	speaker.Play(sink.ctrl)
	return sink, nil
}

// Close stops every sink and releases the audio output.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.initialized {
		speaker.Close()
		s.initialized = false
	}
}

type speakerSink struct {
	sampleRate beep.SampleRate
	ctrl       *beep.Ctrl
	queue      *queue
	stopped    bool
}

func (k *speakerSink) Enqueue(path string) error {
	streamer, format, err := decode(path)
	if err != nil {
		return err
	}

	var s beep.Streamer = streamer
	if format.SampleRate != k.sampleRate {
		s = beep.Resample(4, format.SampleRate, k.sampleRate, streamer)
	}

	speaker.Lock()
	defer speaker.Unlock()
	if k.stopped {
		streamer.Close()
		return fmt.Errorf("enqueue %s: sink stopped", filepath.Base(path))
	}
	k.queue.push(s, streamer)
	return nil
}

func (k *speakerSink) Play() {
	speaker.Lock()
	k.ctrl.Paused = false
	speaker.Unlock()
}

func (k *speakerSink) Pause() {
	speaker.Lock()
	k.ctrl.Paused = true
	speaker.Unlock()
}

func (k *speakerSink) Stop() {
	speaker.Lock()
	defer speaker.Unlock()
	if k.stopped {
		return
	}
	k.queue.clear()
	// A nil streamer makes the mixer drop the ctrl.
	k.ctrl.Streamer = nil
	k.stopped = true
}

func (k *speakerSink) IsIdle() bool {
	speaker.Lock()
	defer speaker.Unlock()
	return k.stopped || k.queue.len() == 0
}

func decode(path string) (beep.StreamSeekCloser, beep.Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != extMP3 && ext != extFLAC {
		return nil, beep.Format{}, fmt.Errorf("unsupported format: %s", ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, err
	}

	var streamer beep.StreamSeekCloser
	var format beep.Format
	switch ext {
	case extMP3:
		streamer, format, err = mp3.Decode(f)
	case extFLAC:
		streamer, format, err = flac.Decode(f)
	}
	if err != nil {
		f.Close()
		return nil, beep.Format{}, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return streamer, format, nil
}

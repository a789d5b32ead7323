package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// DefaultSampleRate is the output rate used when the host does not pick one.
const DefaultSampleRate = beep.SampleRate(44100)

// Sink is the audio output the footstep player writes into.
type Sink interface {
	// Play starts streaming s. Must not block on playback.
	//
	// Parameters:
	//   - s: the streamer to play
	Play(s beep.Streamer)

	// Do runs fn while the output is locked, so streamers being played can be mutated safely.
	//
	// Parameters:
	//   - fn: the mutation to run
	Do(fn func())

	// SampleRate returns the output sample rate.
	//
	// Returns:
	//   - beep.SampleRate: samples per second
	SampleRate() beep.SampleRate
}

// speakerSink plays through the process-wide beep speaker.
type speakerSink struct {
	sampleRate beep.SampleRate
}

var _ Sink = &speakerSink{}

// NewSpeakerSink initializes the beep speaker and returns a Sink over it.
// The speaker is process-wide; call this once per process.
//
// Parameters:
//   - sampleRate: output sample rate (DefaultSampleRate if zero)
//   - bufferSize: speaker buffer duration; smaller means lower latency
//
// Returns:
//   - Sink: the speaker-backed sink
//   - error: error if the audio device cannot be opened
func NewSpeakerSink(sampleRate beep.SampleRate, bufferSize time.Duration) (Sink, error) {
	if sampleRate == 0 {
		sampleRate = DefaultSampleRate
	}
	if err := speaker.Init(sampleRate, sampleRate.N(bufferSize)); err != nil {
		return nil, fmt.Errorf("failed to initialize speaker: %w", err)
	}
	return &speakerSink{sampleRate: sampleRate}, nil
}

func (s *speakerSink) Play(st beep.Streamer) {
	speaker.Play(st)
}

func (s *speakerSink) Do(fn func()) {
	speaker.Lock()
	defer speaker.Unlock()
	fn()
}

func (s *speakerSink) SampleRate() beep.SampleRate {
	return s.sampleRate
}

package audio

import (
	"fmt"
	"io"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

// FootstepAsset is a pre-loaded, fully decoded footstep sample.
// Every playback gets its own seeker over the shared buffer, so overlapping
// footsteps never cut each other off.
type FootstepAsset struct {
	buffer *beep.Buffer
}

// NewFootstepAsset decodes a streamer into memory.
//
// Parameters:
//   - format: sample format of the streamer
//   - s: the streamer to buffer; it is drained completely
//
// Returns:
//   - *FootstepAsset: the buffered asset
func NewFootstepAsset(format beep.Format, s beep.Streamer) *FootstepAsset {
	buffer := beep.NewBuffer(format)
	buffer.Append(s)
	return &FootstepAsset{buffer: buffer}
}

// LoadWAV decodes a WAV stream into a FootstepAsset.
//
// Parameters:
//   - r: reader positioned at the start of a WAV file
//
// Returns:
//   - *FootstepAsset: the decoded asset
//   - error: error if the stream is not a decodable WAV file
func LoadWAV(r io.Reader) (*FootstepAsset, error) {
	s, format, err := wav.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode footstep wav: %w", err)
	}
	defer s.Close()

	asset := NewFootstepAsset(format, s)
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("failed to read footstep wav: %w", err)
	}
	return asset, nil
}

// Ready reports whether the asset holds playable samples. A nil asset is not ready.
func (a *FootstepAsset) Ready() bool {
	return a != nil && a.buffer != nil && a.buffer.Len() > 0
}

// Format returns the sample format of the buffered audio.
func (a *FootstepAsset) Format() beep.Format {
	return a.buffer.Format()
}

// Len returns the number of buffered samples.
func (a *FootstepAsset) Len() int {
	return a.buffer.Len()
}

// streamer returns a fresh seeker over the whole buffer.
func (a *FootstepAsset) streamer() beep.StreamSeeker {
	return a.buffer.Streamer(0, a.buffer.Len())
}

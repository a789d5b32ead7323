package effect

import (
	"math/rand/v2"

	"github.com/Carmen-Shannon/oxy-storefront/engine/audio"
)

// BobOption is a functional option for configuring a Bob.
type BobOption func(*Bob)

// WithFootstepPlayer sets where footstep cues are emitted. Without one, cues are only counted.
//
// Parameters:
//   - player: the footstep player
//
// Returns:
//   - BobOption: functional option to set the player
func WithFootstepPlayer(player audio.FootstepPlayer) BobOption {
	return func(b *Bob) {
		b.player = player
	}
}

// WithMovingThreshold sets the speed above which the camera counts as walking.
//
// Parameters:
//   - threshold: speed in units per second
//
// Returns:
//   - BobOption: functional option to set the threshold
func WithMovingThreshold(threshold float32) BobOption {
	return func(b *Bob) {
		b.movingThreshold = threshold
	}
}

// WithLoopMode plays one continuous footstep loop while walking instead of discrete cues.
//
// Parameters:
//   - enabled: true to use the loop
//
// Returns:
//   - BobOption: functional option to set loop mode
func WithLoopMode(enabled bool) BobOption {
	return func(b *Bob) {
		b.loopMode = enabled
	}
}

// WithRand sets the random source for footstep playback-rate jitter.
//
// Parameters:
//   - rng: the random source
//
// Returns:
//   - BobOption: functional option to set the random source
func WithRand(rng *rand.Rand) BobOption {
	return func(b *Bob) {
		if rng != nil {
			b.rng = rng
		}
	}
}

package audio

import (
	"time"

	"go.uber.org/zap"
)

// FootstepPlayerOption is a functional option for configuring a FootstepPlayer.
type FootstepPlayerOption func(*footstepPlayer)

// WithLogger sets the logger used for degraded-audio warnings.
//
// Parameters:
//   - log: the zap logger (nil keeps the no-op default)
//
// Returns:
//   - FootstepPlayerOption: functional option to set the logger
func WithLogger(log *zap.Logger) FootstepPlayerOption {
	return func(p *footstepPlayer) {
		if log != nil {
			p.log = log
		}
	}
}

// WithDisposeAfter sets the lifetime cap of a single footstep instance.
//
// Parameters:
//   - d: instance lifetime; values <= 0 keep DefaultDisposeAfter
//
// Returns:
//   - FootstepPlayerOption: functional option to set the dispose timeout
func WithDisposeAfter(d time.Duration) FootstepPlayerOption {
	return func(p *footstepPlayer) {
		if d > 0 {
			p.disposeAfter = d
		}
	}
}

// WithWorkers sets how many disposal workers may run at once.
//
// Parameters:
//   - n: worker count; values <= 0 are ignored
//
// Returns:
//   - FootstepPlayerOption: functional option to set the worker count
func WithWorkers(n int) FootstepPlayerOption {
	return func(p *footstepPlayer) {
		if n > 0 {
			p.workers = n
		}
	}
}

// WithAttenuation sets the inverse-distance attenuation model parameters.
//
// Parameters:
//   - refDistance: distance within which sounds play at full gain
//   - rolloff: how quickly gain falls off past refDistance
//
// Returns:
//   - FootstepPlayerOption: functional option to set attenuation
func WithAttenuation(refDistance, rolloff float32) FootstepPlayerOption {
	return func(p *footstepPlayer) {
		if refDistance > 0 {
			p.refDistance = refDistance
		}
		if rolloff >= 0 {
			p.rolloffFactor = rolloff
		}
	}
}

package controller

import (
	"github.com/Carmen-Shannon/oxy-storefront/engine/audio"
	"github.com/Carmen-Shannon/oxy-storefront/engine/effect"
	"github.com/Carmen-Shannon/oxy-storefront/engine/input"
	"go.uber.org/zap"
)

// ControllerOption is a functional option for configuring a Controller.
type ControllerOption func(*controllerImpl)

// WithLogger sets the logger. Store name and controller id are attached as fields.
//
// Parameters:
//   - log: the zap logger (nil keeps the no-op default)
//
// Returns:
//   - ControllerOption: functional option to set the logger
func WithLogger(log *zap.Logger) ControllerOption {
	return func(c *controllerImpl) {
		if log != nil {
			c.log = log
		}
	}
}

// WithEventSource sets the device-event source the controller listens on.
//
// Parameters:
//   - source: the event source, typically the host window
//
// Returns:
//   - ControllerOption: functional option to set the event source
func WithEventSource(source input.EventSource) ControllerOption {
	return func(c *controllerImpl) {
		c.source = source
	}
}

// WithGamepadPoller sets the gamepad poller read once per tick.
//
// Parameters:
//   - poller: the gamepad poller, typically the host window
//
// Returns:
//   - ControllerOption: functional option to set the gamepad poller
func WithGamepadPoller(poller input.GamepadPoller) ControllerOption {
	return func(c *controllerImpl) {
		c.gamepad = poller
	}
}

// WithFootstepPlayer sets the player that receives footstep cues. The controller
// stops it on Dispose. Without one, footsteps are silent.
//
// Parameters:
//   - player: the footstep player
//
// Returns:
//   - ControllerOption: functional option to set the player
func WithFootstepPlayer(player audio.FootstepPlayer) ControllerOption {
	return func(c *controllerImpl) {
		c.player = player
	}
}

// WithDampingRate sets the yaw/pitch damping rate per second.
//
// Parameters:
//   - rate: damping rate; values <= 0 use camera.DefaultDampingRate
//
// Returns:
//   - ControllerOption: functional option to set the damping rate
func WithDampingRate(rate float32) ControllerOption {
	return func(c *controllerImpl) {
		c.dampingRate = rate
	}
}

// WithMovingThreshold sets the speed above which bob and footsteps run.
//
// Parameters:
//   - threshold: speed in units per second
//
// Returns:
//   - ControllerOption: functional option to set the moving threshold
func WithMovingThreshold(threshold float32) ControllerOption {
	return func(c *controllerImpl) {
		c.movingThreshold = threshold
	}
}

// WithDeadzone sets the gamepad stick deadzone.
//
// Parameters:
//   - deadzone: stick magnitude at or below which input is ignored
//
// Returns:
//   - ControllerOption: functional option to set the deadzone
func WithDeadzone(deadzone float32) ControllerOption {
	return func(c *controllerImpl) {
		c.deadzone = deadzone
	}
}

// WithMaxStep sets the longest simulation step. Longer ticks are split into equal substeps.
//
// Parameters:
//   - step: maximum seconds per substep; values <= 0 are ignored
//
// Returns:
//   - ControllerOption: functional option to set the max step
func WithMaxStep(step float32) ControllerOption {
	return func(c *controllerImpl) {
		if step > 0 {
			c.maxStep = step
		}
	}
}

// WithBobOptions passes extra options to the bob effect, such as a seeded random source.
//
// Parameters:
//   - options: bob effect options applied after the controller's own
//
// Returns:
//   - ControllerOption: functional option to extend the bob effect
func WithBobOptions(options ...effect.BobOption) ControllerOption {
	return func(c *controllerImpl) {
		c.bobOptions = append(c.bobOptions, options...)
	}
}

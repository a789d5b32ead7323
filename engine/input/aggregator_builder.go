package input

// AggregatorOption is a functional option for configuring an Aggregator.
type AggregatorOption func(*aggregatorImpl)

// WithSensitivity sets the pointer-drag look sensitivity.
//
// Parameters:
//   - sensitivity: radians per pixel of drag
//
// Returns:
//   - AggregatorOption: functional option to set the sensitivity
func WithSensitivity(sensitivity float32) AggregatorOption {
	return func(a *aggregatorImpl) {
		a.sensitivity = sensitivity
	}
}

// WithDeadzone sets the gamepad stick deadzone.
//
// Parameters:
//   - deadzone: stick magnitude at or below which input is ignored
//
// Returns:
//   - AggregatorOption: functional option to set the deadzone
func WithDeadzone(deadzone float32) AggregatorOption {
	return func(a *aggregatorImpl) {
		a.deadzone = deadzone
	}
}

// WithGamepadPoller sets the source of gamepad stick readings, polled once per Consume.
//
// Parameters:
//   - poller: the gamepad poller, or nil to disable gamepad input
//
// Returns:
//   - AggregatorOption: functional option to set the gamepad poller
func WithGamepadPoller(poller GamepadPoller) AggregatorOption {
	return func(a *aggregatorImpl) {
		a.gamepad = poller
	}
}

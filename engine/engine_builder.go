package engine

import (
	"github.com/Carmen-Shannon/oxy-storefront/engine/audio"
	"github.com/Carmen-Shannon/oxy-storefront/engine/camera"
	"github.com/Carmen-Shannon/oxy-storefront/engine/config"
	"github.com/Carmen-Shannon/oxy-storefront/engine/controller"
	"github.com/Carmen-Shannon/oxy-storefront/engine/logger"
	"go.uber.org/zap"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables periodic walk statistics.
//
// Parameters:
//   - enabled: if true, enables profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithWindow sets the host the engine receives input from and runs its frame loop on.
//
// Parameters:
//   - h: the host, typically a window.Window
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(h Host) EngineBuilderOption {
	return func(e *engine) {
		e.host = h
	}
}

// WithLogger sets the logger shared by the engine and every controller it creates.
//
// Parameters:
//   - log: the zap logger (nil keeps the no-op default)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithLogger(log *zap.Logger) EngineBuilderOption {
	return func(e *engine) {
		e.log = logger.Or(log)
	}
}

// WithCatalog sets the stores that can be entered.
//
// Parameters:
//   - catalog: the validated store catalog
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithCatalog(catalog *config.Catalog) EngineBuilderOption {
	return func(e *engine) {
		if catalog != nil {
			e.catalog = catalog
		}
	}
}

// WithPose sets the camera pose driven by every controller. Defaults to a new pose at the origin.
//
// Parameters:
//   - pose: the shared pose
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithPose(pose camera.Pose) EngineBuilderOption {
	return func(e *engine) {
		e.pose = pose
	}
}

// WithAudioSink enables footsteps, played through the given sink.
//
// Parameters:
//   - sink: the audio output
//   - options: options applied to every store's footstep player
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithAudioSink(sink audio.Sink, options ...audio.FootstepPlayerOption) EngineBuilderOption {
	return func(e *engine) {
		e.sink = sink
		e.playerOpts = append(e.playerOpts, options...)
	}
}

// WithAssetLoader replaces how footstep assets are loaded from a store's footstep_asset path.
// The default opens the path as a WAV file.
//
// Parameters:
//   - loader: the asset loader
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithAssetLoader(loader AssetLoader) EngineBuilderOption {
	return func(e *engine) {
		if loader != nil {
			e.loadAsset = loader
		}
	}
}

// WithControllerOptions passes extra options to every controller the engine creates.
//
// Parameters:
//   - options: controller options applied after the engine's own
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithControllerOptions(options ...controller.ControllerOption) EngineBuilderOption {
	return func(e *engine) {
		e.controlOpts = append(e.controlOpts, options...)
	}
}

// WithFrameLimit sets an optional frame rate cap in frames per second.
// Pass 0 to uncap the frame loop (default).
//
// Parameters:
//   - fps: maximum frames per second (0 = uncapped)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithFrameLimit(fps float64) EngineBuilderOption {
	return func(e *engine) {
		e.frameLimit = frameDuration(fps)
	}
}

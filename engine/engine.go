package engine

import (
	"fmt"
	"math"
	"os"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-storefront/engine/audio"
	"github.com/Carmen-Shannon/oxy-storefront/engine/camera"
	"github.com/Carmen-Shannon/oxy-storefront/engine/config"
	"github.com/Carmen-Shannon/oxy-storefront/engine/controller"
	"github.com/Carmen-Shannon/oxy-storefront/engine/input"
	"github.com/Carmen-Shannon/oxy-storefront/engine/profiler"
	"go.uber.org/zap"
)

// Host is the platform side the engine runs on, normally a window.Window.
type Host interface {
	input.EventSource
	input.GamepadPoller

	// SetUpdateCallback sets the function called once per message loop iteration.
	SetUpdateCallback(callback func())

	// ProcessMessages runs the message loop until the host closes.
	ProcessMessages()

	// Close shuts the host down.
	Close() error
}

// AssetLoader resolves a footstep asset path from a store configuration.
type AssetLoader func(path string) (*audio.FootstepAsset, error)

// engine implements the Engine interface.
// Ticks, input dispatch and store switches all happen on the host's message loop thread.
type engine struct {
	host Host
	log  *zap.Logger

	pose    camera.Pose
	catalog *config.Catalog

	sink        audio.Sink
	loadAsset   AssetLoader
	assets      map[string]*audio.FootstepAsset
	playerOpts  []audio.FootstepPlayerOption
	controlOpts []controller.ControllerOption

	controllers map[string]controller.Controller
	active      controller.Controller

	profiler         *profiler.Profiler
	profilingEnabled bool

	frameCallback func(deltaTime float32)
	frameLimit    time.Duration

	quitChannel chan struct{}
	quitOnce    sync.Once
}

// Engine hosts the storefront walk: it owns the shared camera pose, one walk controller
// per visited store and the frame loop that ticks the active one.
type Engine interface {
	// Pose returns the camera pose shared by every store's controller.
	//
	// Returns:
	//   - camera.Pose: the shared pose
	Pose() camera.Pose

	// Stores returns the names of the stores that can be entered, in catalog order.
	//
	// Returns:
	//   - []string: store names
	Stores() []string

	// SwitchStore disposes the active controller and activates the named store's controller,
	// creating it on first visit. Switching to the already active store does nothing.
	//
	// Parameters:
	//   - name: the store to enter
	//
	// Returns:
	//   - error: error if the store is unknown or its controller cannot be created
	SwitchStore(name string) error

	// Active returns the controller of the current store, or nil before the first switch.
	//
	// Returns:
	//   - controller.Controller: the active controller
	Active() controller.Controller

	// Tick advances the active controller by dt seconds. Run calls it once per frame.
	//
	// Parameters:
	//   - dt: elapsed time since the previous frame in seconds
	Tick(dt float32)

	// EnableProfiler enables periodic walk statistics in the log.
	EnableProfiler()

	// DisableProfiler disables periodic walk statistics.
	DisableProfiler()

	// SetFrameCallback registers the function called each frame after the controller tick,
	// typically to render the store from Pose.
	//
	// Parameters:
	//   - callback: function receiving the frame delta time in seconds
	SetFrameCallback(callback func(deltaTime float32))

	// Run starts the frame loop on the calling goroutine and blocks until the host closes.
	// The active controller is disposed on return.
	Run()

	// Quit closes the host at the start of the next frame.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

// NewEngine creates a new Engine with the provided options.
// The engine needs a store catalog; a host is only needed for Run.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		log:         zap.NewNop(),
		catalog:     &config.Catalog{},
		loadAsset:   loadAssetFile,
		assets:      make(map[string]*audio.FootstepAsset),
		controllers: make(map[string]controller.Controller),
		quitChannel: make(chan struct{}),
	}
	for _, opt := range options {
		opt(e)
	}
	if e.pose == nil {
		e.pose = camera.NewPose()
	}
	e.profiler = profiler.NewProfiler(e.log)
	return e
}

func (e *engine) Pose() camera.Pose {
	return e.pose
}

func (e *engine) Stores() []string {
	return e.catalog.Names()
}

func (e *engine) Active() controller.Controller {
	return e.active
}

func (e *engine) SwitchStore(name string) error {
	if e.active != nil && e.active.Config().Name == name {
		return nil
	}

	next, ok := e.controllers[name]
	if !ok {
		cfg, found := e.catalog.Store(name)
		if !found {
			return fmt.Errorf("failed to switch store: unknown store %q", name)
		}
		c, err := e.newController(cfg)
		if err != nil {
			return fmt.Errorf("failed to switch to store %q: %w", name, err)
		}
		// A new controller registers its listeners immediately; keep it detached until
		// the previous store has released the input.
		c.Dispose()
		e.controllers[name] = c
		next = c
	}

	if e.active != nil {
		e.active.Dispose()
	}
	next.Mount()
	e.active = next

	e.log.Info("entered store", zap.String("store", name))
	return nil
}

func (e *engine) Tick(dt float32) {
	if e.active == nil {
		return
	}
	e.active.Tick(dt)
	if e.profilingEnabled {
		e.profiler.Tick(e.active.Stats())
	}
}

func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) SetFrameCallback(callback func(deltaTime float32)) {
	e.frameCallback = callback
}

func (e *engine) Run() {
	if e.host == nil {
		e.log.Error("engine has no host to run on")
		return
	}

	closed := false
	closeHost := func() {
		if closed {
			return
		}
		closed = true
		if err := e.host.Close(); err != nil {
			e.log.Warn("failed to close host", zap.Error(err))
		}
	}

	lastFrame := time.Now()
	e.host.SetUpdateCallback(func() {
		select {
		case <-e.quitChannel:
			closeHost()
			return
		default:
		}

		now := time.Now()
		dt := float32(now.Sub(lastFrame).Seconds())
		lastFrame = now

		e.Tick(dt)
		if e.frameCallback != nil {
			e.frameCallback(dt)
		}

		if e.frameLimit > 0 {
			if remaining := e.frameLimit - time.Since(now); remaining > 0 {
				time.Sleep(remaining)
			}
		}
	})
	e.host.ProcessMessages()
	// The loop also ends when the user closes the window, which leaves it open.
	closeHost()

	if e.active != nil {
		e.active.Dispose()
	}
	e.log.Info("engine stopped")
}

func (e *engine) Quit() {
	e.quitOnce.Do(func() {
		close(e.quitChannel)
	})
}

// newController builds the walk controller for a store, wiring the host's input and a
// footstep player when an audio sink is configured.
func (e *engine) newController(cfg config.StoreConfig) (controller.Controller, error) {
	options := []controller.ControllerOption{
		controller.WithLogger(e.log),
	}
	if e.host != nil {
		options = append(options,
			controller.WithEventSource(e.host),
			controller.WithGamepadPoller(e.host),
		)
	}
	if player := e.newFootstepPlayer(cfg); player != nil {
		options = append(options, controller.WithFootstepPlayer(player))
	}
	options = append(options, e.controlOpts...)
	return controller.NewController(e.pose, cfg, options...)
}

// newFootstepPlayer returns nil when the store has no audio. A missing or broken asset
// still yields a player so the store walks silently and logs once.
func (e *engine) newFootstepPlayer(cfg config.StoreConfig) audio.FootstepPlayer {
	if e.sink == nil {
		return nil
	}
	var asset *audio.FootstepAsset
	if cfg.FootstepAsset != "" {
		asset = e.asset(cfg.FootstepAsset)
	}
	options := append([]audio.FootstepPlayerOption{
		audio.WithLogger(e.log.With(zap.String("store", cfg.Name))),
	}, e.playerOpts...)
	return audio.NewFootstepPlayer(asset, e.sink, options...)
}

// asset loads a footstep asset once per path. Failures are cached as nil.
func (e *engine) asset(path string) *audio.FootstepAsset {
	if a, ok := e.assets[path]; ok {
		return a
	}
	a, err := e.loadAsset(path)
	if err != nil {
		e.log.Warn("footstep asset unavailable, walking silently",
			zap.String("path", path),
			zap.Error(err),
		)
		a = nil
	}
	e.assets[path] = a
	return a
}

func loadAssetFile(path string) (*audio.FootstepAsset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open footstep asset: %w", err)
	}
	defer f.Close()
	return audio.LoadWAV(f)
}

// frameDuration converts a frames-per-second cap to a frame duration; 0 means uncapped.
func frameDuration(fps float64) time.Duration {
	if fps <= 0 || math.IsInf(fps, 0) || math.IsNaN(fps) {
		return 0
	}
	return time.Duration(float64(time.Second) / fps)
}

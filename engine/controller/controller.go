package controller

import (
	"errors"
	"fmt"
	"math"

	"github.com/Carmen-Shannon/oxy-storefront/engine/audio"
	"github.com/Carmen-Shannon/oxy-storefront/engine/camera"
	"github.com/Carmen-Shannon/oxy-storefront/engine/collision"
	"github.com/Carmen-Shannon/oxy-storefront/engine/config"
	"github.com/Carmen-Shannon/oxy-storefront/engine/effect"
	"github.com/Carmen-Shannon/oxy-storefront/engine/input"
	"github.com/Carmen-Shannon/oxy-storefront/engine/motion"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultMaxStep is the longest simulation step. Longer frames are split into equal
// substeps so a stalled frame cannot carry the camera across an obstacle in one step.
const DefaultMaxStep float32 = 0.1

// maxSubsteps bounds the work of one tick; time beyond maxSubsteps*maxStep is dropped.
const maxSubsteps = 600

// ErrNilPose is returned when a controller is created without a pose to drive.
var ErrNilPose = errors.New("controller requires a camera pose")

// Stats are running counters of a controller, read by the profiler.
type Stats struct {
	// Ticks is the number of ticks that advanced the simulation.
	Ticks uint64
	// Rejections is the number of ticks whose displacement was blocked by an obstacle.
	Rejections uint64
	// Footsteps is the number of footstep cues emitted.
	Footsteps int
}

// Controller is the first-person walk controller of one storefront.
// It owns input, orientation, motion, collision and bob state, and writes the
// resulting pose once per tick.
type Controller interface {
	// Tick advances the controller by one rendered frame.
	// The first tick snaps the pose to the configured initial pose.
	// Non-positive or non-finite dt is ignored; dt longer than the max step is
	// simulated in equal substeps.
	//
	// Parameters:
	//   - dt: elapsed time since the previous frame in seconds
	Tick(dt float32)

	// Mount re-registers input listeners after Dispose and writes this controller's last
	// position and orientation back to the pose. The initial-pose snap is not repeated.
	Mount()

	// Dispose removes all input listeners, stops owned audio and brings motion to rest.
	// Ticks are ignored until Mount is called. Safe to call more than once.
	Dispose()

	// Mounted reports whether the controller is receiving input and ticks.
	//
	// Returns:
	//   - bool: false between Dispose and Mount
	Mounted() bool

	// Initialized reports whether the initial-pose snap has happened.
	//
	// Returns:
	//   - bool: true after the first tick
	Initialized() bool

	// ID returns the unique identifier of this controller instance.
	//
	// Returns:
	//   - uuid.UUID: the controller id
	ID() uuid.UUID

	// Config returns the store configuration with defaults applied.
	//
	// Returns:
	//   - config.StoreConfig: the configuration
	Config() config.StoreConfig

	// Pose returns the driven camera pose.
	//
	// Returns:
	//   - camera.Pose: the pose written each tick
	Pose() camera.Pose

	// Speed returns the current walking speed.
	//
	// Returns:
	//   - float32: speed in [0, MaxSpeed]
	Speed() float32

	// Stats returns the running counters.
	//
	// Returns:
	//   - Stats: a copy of the counters
	Stats() Stats
}

// controllerImpl is the single implementation of Controller.
// All methods run on the host's frame thread.
type controllerImpl struct {
	id   uuid.UUID
	cfg  config.StoreConfig
	pose camera.Pose
	log  *zap.Logger

	source  input.EventSource
	gamepad input.GamepadPoller
	player  audio.FootstepPlayer

	input       input.Aggregator
	orientation *camera.Orientation
	integrator  *motion.Integrator
	resolver    *collision.Resolver
	bob         *effect.Bob

	dampingRate     float32
	movingThreshold float32
	deadzone        float32
	maxStep         float32
	bobOptions      []effect.BobOption

	// position is the last resolved camera position. The pose may be shared with other
	// stores' controllers, so it is never read back.
	position mgl32.Vec3

	initialized bool
	mounted     bool
	stats       Stats
}

var _ Controller = &controllerImpl{}

// NewController creates a walk controller for one storefront and registers its input listeners.
// The configuration is filled with defaults and validated; an invalid configuration fails with
// an error wrapping config.ErrInvalidConfig.
//
// Parameters:
//   - pose: the shared camera pose to drive
//   - cfg: the store configuration
//   - options: functional options to configure the controller
//
// Returns:
//   - Controller: the newly created, mounted controller
//   - error: configuration or argument error
func NewController(pose camera.Pose, cfg config.StoreConfig, options ...ControllerOption) (Controller, error) {
	if pose == nil {
		return nil, ErrNilPose
	}
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create controller: %w", err)
	}

	c := &controllerImpl{
		id:              uuid.New(),
		cfg:             cfg,
		pose:            pose,
		log:             zap.NewNop(),
		dampingRate:     camera.DefaultDampingRate,
		movingThreshold: effect.DefaultMovingThreshold,
		deadzone:        input.DefaultDeadzone,
		maxStep:         DefaultMaxStep,
	}
	for _, option := range options {
		option(c)
	}
	c.log = c.log.With(zap.String("store", cfg.Name), zap.Stringer("controller", c.id))

	c.input = input.NewAggregator(c.source,
		input.WithSensitivity(cfg.MouseSensitivity),
		input.WithDeadzone(c.deadzone),
		input.WithGamepadPoller(c.gamepad),
	)
	c.orientation = camera.NewOrientation(c.dampingRate)
	c.integrator = motion.NewIntegrator(cfg.MaxSpeed, cfg.Acceleration, cfg.Deceleration)
	c.resolver = collision.NewResolver(cfg.Room, cfg.Obstacles)
	c.bob = effect.NewBob(cfg.BaseHeight, cfg.BobAmplitude, cfg.BobFrequency, cfg.FootstepInterval,
		append([]effect.BobOption{
			effect.WithFootstepPlayer(c.player),
			effect.WithMovingThreshold(c.movingThreshold),
			effect.WithLoopMode(cfg.FootstepLoop),
		}, c.bobOptions...)...,
	)
	c.mounted = true

	c.log.Debug("controller created",
		zap.Int("obstacles", len(cfg.Obstacles)),
		zap.Float32("max_speed", cfg.MaxSpeed),
		zap.Bool("audio", c.player != nil),
	)
	return c, nil
}

func (c *controllerImpl) Tick(dt float32) {
	if !c.mounted || !(dt > 0) || math.IsInf(float64(dt), 1) {
		return
	}

	if !c.initialized {
		c.snapToInitialPose()
	}
	c.stats.Ticks++

	steps, h := maxSubsteps, c.maxStep
	if n := math.Ceil(float64(dt / c.maxStep)); n <= maxSubsteps {
		steps = int(n)
		h = dt / float32(steps)
	}

	intent := c.input.Consume()
	rejected := false
	for i := 0; i < steps; i++ {
		c.orientation.Advance(h)
		if i == 0 {
			c.orientation.AddLook(intent.LookYaw, intent.LookPitch)
		}
		rejected = c.step(intent, h) || rejected
	}

	if rejected {
		c.stats.Rejections++
		c.log.Debug("movement blocked by obstacle",
			zap.Float32("x", c.position[0]),
			zap.Float32("z", c.position[2]),
		)
	}
	c.stats.Footsteps = c.bob.Steps()

	c.pose.SetPosition(c.position)
	c.pose.SetOrientation(c.orientation.Yaw(), c.orientation.Pitch())
}

// step runs one simulation step of length h from the controller's own position.
// Reports whether the displacement was blocked by an obstacle.
func (c *controllerImpl) step(intent input.Intent, h float32) bool {
	yaw := c.orientation.Yaw()
	displacement := c.integrator.Step(intent.Move, yaw, h)

	next := c.resolver.Resolve(c.position, displacement)
	if c.player != nil {
		c.player.SetListener(next, yaw)
	}
	next[1] = c.bob.Update(h, c.integrator.Speed(), next)
	c.position = next
	return c.resolver.Rejected()
}

func (c *controllerImpl) Mount() {
	if c.mounted {
		return
	}
	c.input.Open()
	c.mounted = true
	if c.initialized {
		c.pose.SetPosition(c.position)
		c.pose.SetOrientation(c.orientation.Yaw(), c.orientation.Pitch())
	}
	c.log.Debug("controller mounted")
}

func (c *controllerImpl) Dispose() {
	if !c.mounted {
		return
	}
	c.mounted = false
	c.input.Close()
	c.integrator.Stop()
	c.bob.Reset()
	c.position[1] = c.bob.BaseHeight()
	if c.player != nil {
		c.player.Stop()
	}
	c.log.Debug("controller disposed", zap.Uint64("ticks", c.stats.Ticks))
}

func (c *controllerImpl) Mounted() bool {
	return c.mounted
}

func (c *controllerImpl) Initialized() bool {
	return c.initialized
}

func (c *controllerImpl) ID() uuid.UUID {
	return c.id
}

func (c *controllerImpl) Config() config.StoreConfig {
	return c.cfg
}

func (c *controllerImpl) Pose() camera.Pose {
	return c.pose
}

func (c *controllerImpl) Speed() float32 {
	return c.integrator.Speed()
}

func (c *controllerImpl) Stats() Stats {
	return c.stats
}

// snapToInitialPose places the camera at the configured start. Runs once per controller.
func (c *controllerImpl) snapToInitialPose() {
	start := mgl32.Vec3{c.cfg.InitialPosition[0], c.cfg.BaseHeight, c.cfg.InitialPosition[2]}
	c.orientation.Snap(c.cfg.InitialYaw, 0)
	c.position = start
	c.pose.SetPosition(start)
	c.pose.SetOrientation(c.orientation.Yaw(), c.orientation.Pitch())
	c.initialized = true

	c.log.Info("camera placed at store entrance",
		zap.Float32("x", start[0]),
		zap.Float32("y", start[1]),
		zap.Float32("z", start[2]),
		zap.Float32("yaw", c.cfg.InitialYaw),
	)
}

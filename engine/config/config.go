// Package config holds the per-storefront walk configuration and its validation.
package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/Carmen-Shannon/oxy-storefront/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Defaults applied to zero-valued fields by WithDefaults.
const (
	DefaultMaxSpeed         float32 = 3.0
	DefaultAcceleration     float32 = 15.0
	DefaultDeceleration     float32 = 20.0
	DefaultMouseSensitivity float32 = 0.003
	DefaultBobFrequency     float32 = 10.0
	DefaultFootstepInterval float32 = 0.7
	DefaultBaseHeight       float32 = 1.6
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid store configuration")

// ConfigError describes one invalid field of a store configuration.
type ConfigError struct {
	Store  string
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Store == "" {
		return fmt.Sprintf("%v: %s %s", ErrInvalidConfig, e.Field, e.Reason)
	}
	return fmt.Sprintf("%v: store %q: %s %s", ErrInvalidConfig, e.Store, e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

// StoreConfig is the constant bundle for one storefront's walk controller.
// It is loaded once when the controller is created and never mutated afterwards.
type StoreConfig struct {
	// Name identifies the storefront.
	Name string `yaml:"name"`

	// Room is the walkable area; the camera never leaves it.
	Room common.Rect `yaml:"room"`
	// Obstacles are interior no-entry footprints such as tables and counters.
	Obstacles []common.Rect `yaml:"obstacles"`

	// InitialPosition is where the camera is placed on the first tick. Y is ignored in favour of BaseHeight.
	InitialPosition mgl32.Vec3 `yaml:"initial_position"`
	// InitialYaw is the starting horizontal look angle in radians.
	InitialYaw float32 `yaml:"initial_yaw"`
	// BaseHeight is the camera eye height at rest.
	BaseHeight float32 `yaml:"base_height"`

	// MaxSpeed caps walking speed in units per second.
	MaxSpeed float32 `yaml:"max_speed"`
	// Acceleration is the speed gained per second while movement input is held.
	Acceleration float32 `yaml:"acceleration"`
	// Deceleration is the speed lost per second once movement input is released.
	Deceleration float32 `yaml:"deceleration"`
	// MouseSensitivity scales pointer-drag pixels into radians.
	MouseSensitivity float32 `yaml:"mouse_sensitivity"`

	BobAmplitude float32 `yaml:"bob_amplitude"`
	BobFrequency float32 `yaml:"bob_frequency"`

	// FootstepInterval is the minimum seconds between footstep cues.
	FootstepInterval float32 `yaml:"footstep_interval"`
	// FootstepAsset is the path of the footstep WAV, resolved and loaded by the host.
	FootstepAsset string `yaml:"footstep_asset"`
	// FootstepLoop plays a continuous loop while walking instead of discrete cues.
	FootstepLoop bool `yaml:"footstep_loop"`
}

// WithDefaults returns a copy of c with zero-valued tuning fields filled with defaults.
// BobAmplitude is left alone so a zero amplitude can disable head-bob.
//
// Returns:
//   - StoreConfig: the filled configuration
func (c StoreConfig) WithDefaults() StoreConfig {
	c.MaxSpeed = common.Coalesce(c.MaxSpeed, DefaultMaxSpeed)
	c.Acceleration = common.Coalesce(c.Acceleration, DefaultAcceleration)
	c.Deceleration = common.Coalesce(c.Deceleration, DefaultDeceleration)
	c.MouseSensitivity = common.Coalesce(c.MouseSensitivity, DefaultMouseSensitivity)
	c.BobFrequency = common.Coalesce(c.BobFrequency, DefaultBobFrequency)
	c.FootstepInterval = common.Coalesce(c.FootstepInterval, DefaultFootstepInterval)
	c.BaseHeight = common.Coalesce(c.BaseHeight, c.InitialPosition[1], DefaultBaseHeight)
	c.Obstacles = append([]common.Rect(nil), c.Obstacles...)
	return c
}

// Validate checks geometry and tuning values. The returned error is a *ConfigError
// wrapping ErrInvalidConfig, or nil.
//
// Returns:
//   - error: the first invalid field found, or nil
func (c StoreConfig) Validate() error {
	fail := func(field, format string, args ...any) error {
		return &ConfigError{Store: c.Name, Field: field, Reason: fmt.Sprintf(format, args...)}
	}

	if !finiteRect(c.Room) {
		return fail("room", "has a non-finite extent")
	}
	if !c.Room.Valid() {
		return fail("room", "is inverted (min greater than max): %+v", c.Room)
	}
	for i, o := range c.Obstacles {
		if !finiteRect(o) || !o.Valid() {
			return fail(fmt.Sprintf("obstacles[%d]", i), "is inverted or non-finite: %+v", o)
		}
	}

	positive := []struct {
		name  string
		value float32
	}{
		{"max_speed", c.MaxSpeed},
		{"acceleration", c.Acceleration},
		{"deceleration", c.Deceleration},
		{"footstep_interval", c.FootstepInterval},
	}
	for _, p := range positive {
		if !finite(p.value) || p.value <= 0 {
			return fail(p.name, "must be positive, got %v", p.value)
		}
	}

	nonNegative := []struct {
		name  string
		value float32
	}{
		{"mouse_sensitivity", c.MouseSensitivity},
		{"bob_amplitude", c.BobAmplitude},
		{"bob_frequency", c.BobFrequency},
	}
	for _, n := range nonNegative {
		if !finite(n.value) || n.value < 0 {
			return fail(n.name, "must not be negative, got %v", n.value)
		}
	}

	if !finite(c.InitialYaw) || !finite(c.BaseHeight) {
		return fail("initial pose", "must be finite")
	}
	x, z := c.InitialPosition[0], c.InitialPosition[2]
	if !finite(x) || !finite(z) || !c.Room.Contains(x, z) {
		return fail("initial_position", "(%v, %v) is outside the room", x, z)
	}
	for i, o := range c.Obstacles {
		if o.Contains(x, z) {
			return fail("initial_position", "(%v, %v) is inside obstacles[%d]", x, z, i)
		}
	}
	return nil
}

func finite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func finiteRect(r common.Rect) bool {
	return finite(r.MinX) && finite(r.MaxX) && finite(r.MinZ) && finite(r.MaxZ)
}

package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Carmen-Shannon/oxy-storefront/common"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validStore() StoreConfig {
	return StoreConfig{
		Name:            "bakery",
		Room:            common.Rect{MinX: -5, MaxX: 5, MinZ: -5, MaxZ: 5},
		Obstacles:       []common.Rect{{MinX: -1, MaxX: 1, MinZ: -1, MaxZ: 1}},
		InitialPosition: mgl32.Vec3{0, 0, 3},
		BobAmplitude:    0.05,
	}
}

func TestWithDefaults(t *testing.T) {
	cfg := validStore().WithDefaults()
	assert.Equal(t, DefaultMaxSpeed, cfg.MaxSpeed)
	assert.Equal(t, DefaultAcceleration, cfg.Acceleration)
	assert.Equal(t, DefaultDeceleration, cfg.Deceleration)
	assert.Equal(t, DefaultMouseSensitivity, cfg.MouseSensitivity)
	assert.Equal(t, DefaultBobFrequency, cfg.BobFrequency)
	assert.Equal(t, DefaultFootstepInterval, cfg.FootstepInterval)
	assert.Equal(t, DefaultBaseHeight, cfg.BaseHeight)
	assert.Equal(t, float32(0.05), cfg.BobAmplitude)

	t.Run("explicit values are kept", func(t *testing.T) {
		in := validStore()
		in.MaxSpeed = 7
		in.BaseHeight = 1.8
		cfg := in.WithDefaults()
		assert.Equal(t, float32(7), cfg.MaxSpeed)
		assert.Equal(t, float32(1.8), cfg.BaseHeight)
	})

	t.Run("base height falls back to initial position height", func(t *testing.T) {
		in := validStore()
		in.InitialPosition[1] = 1.7
		assert.Equal(t, float32(1.7), in.WithDefaults().BaseHeight)
	})

	t.Run("zero amplitude disables bob", func(t *testing.T) {
		in := validStore()
		in.BobAmplitude = 0
		assert.Zero(t, in.WithDefaults().BobAmplitude)
	})

	t.Run("obstacles are copied", func(t *testing.T) {
		in := validStore()
		cfg := in.WithDefaults()
		in.Obstacles[0].MinX = 4
		assert.Equal(t, float32(-1), cfg.Obstacles[0].MinX)
	})
}

func TestValidate(t *testing.T) {
	require.NoError(t, validStore().WithDefaults().Validate())

	nan := float32(math.NaN())
	tests := []struct {
		name   string
		mutate func(*StoreConfig)
		field  string
	}{
		{"inverted room", func(c *StoreConfig) { c.Room.MinX = 6 }, "room"},
		{"non-finite room", func(c *StoreConfig) { c.Room.MaxZ = float32(math.Inf(1)) }, "room"},
		{"inverted obstacle", func(c *StoreConfig) { c.Obstacles[0].MinZ = 2 }, "obstacles[0]"},
		{"negative max speed", func(c *StoreConfig) { c.MaxSpeed = -1 }, "max_speed"},
		{"negative acceleration", func(c *StoreConfig) { c.Acceleration = -1 }, "acceleration"},
		{"NaN deceleration", func(c *StoreConfig) { c.Deceleration = nan }, "deceleration"},
		{"negative interval", func(c *StoreConfig) { c.FootstepInterval = -0.5 }, "footstep_interval"},
		{"negative sensitivity", func(c *StoreConfig) { c.MouseSensitivity = -0.1 }, "mouse_sensitivity"},
		{"negative amplitude", func(c *StoreConfig) { c.BobAmplitude = -0.1 }, "bob_amplitude"},
		{"start outside room", func(c *StoreConfig) { c.InitialPosition = mgl32.Vec3{0, 0, 6} }, "initial_position"},
		{"start inside obstacle", func(c *StoreConfig) { c.InitialPosition = mgl32.Vec3{0, 0, 1} }, "initial_position"},
		{"NaN yaw", func(c *StoreConfig) { c.InitialYaw = nan }, "initial pose"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validStore().WithDefaults()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)

			var cerr *ConfigError
			require.True(t, errors.As(err, &cerr))
			assert.Equal(t, tt.field, cerr.Field)
			assert.Equal(t, "bakery", cerr.Store)
			assert.Contains(t, err.Error(), "bakery")
		})
	}
}

func TestValidateAllowsEmptyObstacles(t *testing.T) {
	cfg := validStore()
	cfg.Obstacles = nil
	cfg.InitialPosition = mgl32.Vec3{}
	assert.NoError(t, cfg.WithDefaults().Validate())
}

const catalogYAML = `
stores:
  - name: bakery
    room: {min_x: -5, max_x: 5, min_z: -5, max_z: 5}
    obstacles:
      - {min_x: -1, max_x: 1, min_z: -1, max_z: 1}
    initial_position: [0, 1.6, 3]
    bob_amplitude: 0.05
    footstep_asset: steps.wav
  - name: gallery
    room: {min_x: -10, max_x: 10, min_z: -10, max_z: 10}
    initial_position: [0, 0, 9]
    max_speed: 4
    footstep_loop: true
`

func TestLoad(t *testing.T) {
	cat, err := Load(strings.NewReader(catalogYAML))
	require.NoError(t, err)
	require.Len(t, cat.Stores, 2)
	assert.Equal(t, []string{"bakery", "gallery"}, cat.Names())

	bakery, ok := cat.Store("bakery")
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec3{0, 1.6, 3}, bakery.InitialPosition)
	assert.Equal(t, float32(1.6), bakery.BaseHeight)
	assert.Equal(t, DefaultMaxSpeed, bakery.MaxSpeed)
	assert.Equal(t, "steps.wav", bakery.FootstepAsset)
	assert.Len(t, bakery.Obstacles, 1)

	gallery, ok := cat.Store("gallery")
	require.True(t, ok)
	assert.Equal(t, float32(4), gallery.MaxSpeed)
	assert.Equal(t, DefaultBaseHeight, gallery.BaseHeight)
	assert.True(t, gallery.FootstepLoop)
	assert.Empty(t, gallery.Obstacles)

	_, ok = cat.Store("butcher")
	assert.False(t, ok)
}

func TestLoadEmpty(t *testing.T) {
	cat, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, cat.Names())
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		invalid bool
	}{
		{"malformed yaml", "stores: [", false},
		{"unknown field", "stores:\n  - name: a\n    max_sped: 3\n", false},
		{"missing name", "stores:\n  - room: {min_x: -1, max_x: 1, min_z: -1, max_z: 1}\n", true},
		{"duplicate name", "stores:\n  - name: a\n  - name: a\n", true},
		{"invalid store", "stores:\n  - name: a\n    max_speed: -2\n", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.Equal(t, tt.invalid, errors.Is(err, ErrInvalidConfig))
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stores.yaml")
	require.NoError(t, os.WriteFile(path, []byte(catalogYAML), 0o644))

	cat, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, cat.Stores, 2)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

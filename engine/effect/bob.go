// Package effect derives head-bob height and footstep cues from walking speed.
package effect

import (
	"math"
	"math/rand/v2"

	"github.com/Carmen-Shannon/oxy-storefront/engine/audio"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// DefaultMovingThreshold is the speed (units/s) above which the camera counts as walking.
	DefaultMovingThreshold float32 = 0.1

	// Playback-rate range for footstep naturalism.
	minStepRate = 0.9
	maxStepRate = 1.1
)

// Bob derives a vertical camera offset from time spent walking and emits footstep cues
// on a fixed cadence while walking. Everything resets the moment speed drops to the
// moving threshold.
type Bob struct {
	baseHeight      float32
	amplitude       float32
	frequency       float32
	stepInterval    float32
	movingThreshold float32
	loopMode        bool

	player audio.FootstepPlayer
	rng    *rand.Rand

	bobTime       float32
	timeSinceStep float32
	steps         int
}

// NewBob creates a bob effect at rest.
//
// Parameters:
//   - baseHeight: camera height at rest
//   - amplitude: peak vertical offset of the bob
//   - frequency: bob phase advance per second (radians/s)
//   - stepInterval: minimum seconds between footstep cues
//   - options: functional options to configure the effect
//
// Returns:
//   - *Bob: the newly created effect
func NewBob(baseHeight, amplitude, frequency, stepInterval float32, options ...BobOption) *Bob {
	b := &Bob{
		baseHeight:      baseHeight,
		amplitude:       amplitude,
		frequency:       frequency,
		stepInterval:    stepInterval,
		movingThreshold: DefaultMovingThreshold,
		rng:             rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, option := range options {
		option(b)
	}
	return b
}

// Update advances the effect by one tick and returns the camera height.
//
// Parameters:
//   - dt: elapsed time in seconds
//   - speed: current walking speed
//   - pos: camera world position, used as the footstep source
//
// Returns:
//   - float32: camera height for this tick
func (b *Bob) Update(dt, speed float32, pos mgl32.Vec3) float32 {
	if speed <= b.movingThreshold {
		b.rest()
		return b.baseHeight
	}

	b.bobTime += dt * b.frequency
	height := b.baseHeight + float32(math.Sin(float64(b.bobTime)))*b.amplitude

	if b.loopMode {
		if b.player != nil {
			b.player.StartLoop(pos)
		}
		return height
	}

	b.timeSinceStep += dt
	if b.timeSinceStep > b.stepInterval {
		b.step(pos)
		b.timeSinceStep = 0
	}
	return height
}

// Reset returns the effect to rest and silences any footstep loop.
func (b *Bob) Reset() {
	b.rest()
}

// BaseHeight returns the camera height at rest.
func (b *Bob) BaseHeight() float32 { return b.baseHeight }

// Steps returns how many footstep cues have been emitted.
func (b *Bob) Steps() int { return b.steps }

func (b *Bob) rest() {
	b.bobTime = 0
	b.timeSinceStep = 0
	if b.player != nil {
		b.player.StopLoop()
	}
}

func (b *Bob) step(pos mgl32.Vec3) {
	b.steps++
	if b.player == nil {
		return
	}
	rate := minStepRate + b.rng.Float64()*(maxStepRate-minStepRate)
	b.player.PlayAt(pos, rate)
}

// Package motion turns movement intent into per-tick world-space displacement.
package motion

import (
	"github.com/Carmen-Shannon/oxy-storefront/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Integrator holds the speed state of a walking camera and converts local movement
// intent into a world-space displacement each tick. Acceleration applies while intent
// is non-zero and deceleration otherwise; the two rates are independent so starts can
// be gradual while stops stay snappy.
type Integrator struct {
	maxSpeed     float32
	acceleration float32
	deceleration float32

	speed    float32
	velocity mgl32.Vec3
}

// NewIntegrator creates an integrator at rest.
//
// Parameters:
//   - maxSpeed: speed cap in units per second
//   - acceleration: speed gain per second while intent is held
//   - deceleration: speed loss per second while intent is released
//
// Returns:
//   - *Integrator: the newly created integrator
func NewIntegrator(maxSpeed, acceleration, deceleration float32) *Integrator {
	return &Integrator{
		maxSpeed:     maxSpeed,
		acceleration: acceleration,
		deceleration: deceleration,
	}
}

// Step advances speed by one tick and returns the world displacement for it.
// The intent (X right, Y forward) is rotated by yaw about +Y and scaled by speed*dt, so a
// released intent stops translation at once while speed keeps decaying for the bob effect.
//
// Parameters:
//   - intent: local movement intent, length 0..1
//   - yaw: current camera yaw in radians
//   - dt: elapsed time in seconds
//
// Returns:
//   - mgl32.Vec3: world-space displacement for this tick (Y is always 0)
func (in *Integrator) Step(intent mgl32.Vec2, yaw, dt float32) mgl32.Vec3 {
	if intent.Len() > 0 {
		in.speed = min(in.speed+in.acceleration*dt, in.maxSpeed)
	} else {
		in.speed = max(in.speed-in.deceleration*dt, 0)
	}

	forward, right := common.YawBasis(yaw)
	dir := right.Mul(intent[0]).Add(forward.Mul(intent[1]))
	in.velocity = dir.Mul(in.speed)
	return in.velocity.Mul(dt)
}

// Speed returns the current scalar speed in [0, maxSpeed].
func (in *Integrator) Speed() float32 { return in.speed }

// Velocity returns the world-space velocity computed by the last Step.
func (in *Integrator) Velocity() mgl32.Vec3 { return in.velocity }

// MaxSpeed returns the configured speed cap.
func (in *Integrator) MaxSpeed() float32 { return in.maxSpeed }

// Stop drops speed and velocity to rest immediately.
func (in *Integrator) Stop() {
	in.speed = 0
	in.velocity = mgl32.Vec3{}
}

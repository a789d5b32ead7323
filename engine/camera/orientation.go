package camera

import "github.com/Carmen-Shannon/oxy-storefront/common"

// DefaultDampingRate is the exponential damping rate (per second) used to ease
// current yaw/pitch toward their targets.
const DefaultDampingRate float32 = 10

// Orientation holds the current and target yaw/pitch of a first-person camera.
// Look input moves the target; Advance eases the current values toward it.
// Target pitch is clamped on every write, so current pitch stays legal without
// a separate clamp.
type Orientation struct {
	yaw, pitch             float32
	targetYaw, targetPitch float32
	dampingRate            float32
}

// NewOrientation creates an orientation at rest at (0, 0).
//
// Parameters:
//   - dampingRate: blend rate per second; values <= 0 use DefaultDampingRate
//
// Returns:
//   - *Orientation: the newly created orientation
func NewOrientation(dampingRate float32) *Orientation {
	if dampingRate <= 0 {
		dampingRate = DefaultDampingRate
	}
	return &Orientation{dampingRate: dampingRate}
}

// Snap sets current and target orientation at once, skipping damping.
//
// Parameters:
//   - yaw: horizontal look angle in radians
//   - pitch: vertical look angle in radians (clamped)
func (o *Orientation) Snap(yaw, pitch float32) {
	pitch = common.ClampPitch(pitch)
	o.yaw, o.targetYaw = yaw, yaw
	o.pitch, o.targetPitch = pitch, pitch
}

// AddLook offsets the target orientation by a look delta.
//
// Parameters:
//   - dYaw: yaw delta in radians
//   - dPitch: pitch delta in radians
func (o *Orientation) AddLook(dYaw, dPitch float32) {
	o.targetYaw += dYaw
	o.targetPitch = common.ClampPitch(o.targetPitch + dPitch)
}

// Advance eases the current yaw/pitch toward the target:
// current += (target - current) * min(1, rate*dt).
//
// Parameters:
//   - dt: elapsed time in seconds
func (o *Orientation) Advance(dt float32) {
	f := common.DampFactor(o.dampingRate, dt)
	o.yaw += (o.targetYaw - o.yaw) * f
	o.pitch += (o.targetPitch - o.pitch) * f
}

// Yaw returns the current (damped) yaw in radians.
func (o *Orientation) Yaw() float32 { return o.yaw }

// Pitch returns the current (damped) pitch in radians.
func (o *Orientation) Pitch() float32 { return o.pitch }

// TargetYaw returns the yaw the orientation is easing toward.
func (o *Orientation) TargetYaw() float32 { return o.targetYaw }

// TargetPitch returns the clamped pitch the orientation is easing toward.
func (o *Orientation) TargetPitch() float32 { return o.targetPitch }

package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// MaxPitch is the largest legal camera pitch magnitude, just short of straight up/down
// so the view basis never degenerates.
const MaxPitch = float32(math.Pi/2) * 0.99

// ClampPitch clamps a pitch angle into (-MaxPitch, MaxPitch).
//
// Parameters:
//   - pitch: vertical look angle in radians
//
// Returns:
//   - float32: the clamped pitch
func ClampPitch(pitch float32) float32 {
	return mgl32.Clamp(pitch, -MaxPitch, MaxPitch)
}

// DampFactor returns the blend factor for exponential damping over one step: min(1, rate*dt).
//
// Parameters:
//   - rate: damping rate per second
//   - dt: step duration in seconds
//
// Returns:
//   - float32: blend factor in [0, 1]
func DampFactor(rate, dt float32) float32 {
	f := rate * dt
	if f > 1 {
		return 1
	}
	if f < 0 {
		return 0
	}
	return f
}

// YawBasis returns the horizontal forward and right unit vectors for a yaw angle.
// Yaw rotates about +Y; at yaw 0 forward is -Z and right is +X.
//
// Parameters:
//   - yaw: horizontal look angle in radians
//
// Returns:
//   - mgl32.Vec3: forward unit vector (Y = 0)
//   - mgl32.Vec3: right unit vector (Y = 0)
func YawBasis(yaw float32) (forward, right mgl32.Vec3) {
	sin := float32(math.Sin(float64(yaw)))
	cos := float32(math.Cos(float64(yaw)))
	forward = mgl32.Vec3{-sin, 0, -cos}
	right = mgl32.Vec3{cos, 0, -sin}
	return
}

// LookDirection returns the unit view direction for a yaw/pitch pair.
//
// Parameters:
//   - yaw: horizontal look angle in radians
//   - pitch: vertical look angle in radians
//
// Returns:
//   - mgl32.Vec3: unit direction the camera faces
func LookDirection(yaw, pitch float32) mgl32.Vec3 {
	cp := float32(math.Cos(float64(pitch)))
	sp := float32(math.Sin(float64(pitch)))
	forward, _ := YawBasis(yaw)
	return mgl32.Vec3{forward[0] * cp, sp, forward[2] * cp}
}

// LookAt creates a view matrix that positions and orients the camera.
// The resulting matrix transforms world coordinates to view/camera space.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - eyeX, eyeY, eyeZ: camera position in world space
//   - centerX, centerY, centerZ: target point the camera looks at
//   - upX, upY, upZ: up vector defining camera orientation (typically 0,1,0)
func LookAt(out []float32, eyeX, eyeY, eyeZ, centerX, centerY, centerZ, upX, upY, upZ float32) {
	z0 := eyeX - centerX
	z1 := eyeY - centerY
	z2 := eyeZ - centerZ
	val := float64(z0*z0 + z1*z1 + z2*z2)
	if val == 0 {
		val = 1
	}
	invLen := 1.0 / float32(math.Sqrt(val))
	z0 *= invLen
	z1 *= invLen
	z2 *= invLen

	x0 := upY*z2 - upZ*z1
	x1 := upZ*z0 - upX*z2
	x2 := upX*z1 - upY*z0
	val = float64(x0*x0 + x1*x1 + x2*x2)
	if val == 0 {
		val = 1
	}
	invLen = 1.0 / float32(math.Sqrt(val))
	x0 *= invLen
	x1 *= invLen
	x2 *= invLen

	y0 := z1*x2 - z2*x1
	y1 := z2*x0 - z0*x2
	y2 := z0*x1 - z1*x0

	out[0], out[4], out[8], out[12] = x0, x1, x2, -(x0*eyeX + x1*eyeY + x2*eyeZ)
	out[1], out[5], out[9], out[13] = y0, y1, y2, -(y0*eyeX + y1*eyeY + y2*eyeZ)
	out[2], out[6], out[10], out[14] = z0, z1, z2, -(z0*eyeX + z1*eyeY + z2*eyeZ)
	out[3], out[7], out[11], out[15] = 0, 0, 0, 1
}

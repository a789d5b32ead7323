package camera

import "github.com/go-gl/mathgl/mgl32"

// PoseOption is a functional option for configuring a Pose.
type PoseOption func(*poseImpl)

// WithPosition sets the initial world-space position.
//
// Parameters:
//   - x, y, z: world-space coordinates
//
// Returns:
//   - PoseOption: functional option to set the position
func WithPosition(x, y, z float32) PoseOption {
	return func(p *poseImpl) {
		p.position = mgl32.Vec3{x, y, z}
	}
}

// WithOrientation sets the initial yaw and pitch.
//
// Parameters:
//   - yaw: horizontal look angle in radians
//   - pitch: vertical look angle in radians (clamped on construction)
//
// Returns:
//   - PoseOption: functional option to set the orientation
func WithOrientation(yaw, pitch float32) PoseOption {
	return func(p *poseImpl) {
		p.yaw = yaw
		p.pitch = pitch
	}
}

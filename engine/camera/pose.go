package camera

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-storefront/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Pose is the shared viewpoint object of a storefront scene.
// The walk controller writes it once per tick; the rendering layer reads it.
type Pose interface {
	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - mgl32.Vec3: world-space camera position
	Position() mgl32.Vec3

	// SetPosition sets the camera's world-space position directly.
	//
	// Parameters:
	//   - p: world-space position
	SetPosition(p mgl32.Vec3)

	// Yaw returns the horizontal look angle in radians.
	//
	// Returns:
	//   - float32: yaw in radians
	Yaw() float32

	// Pitch returns the vertical look angle in radians.
	//
	// Returns:
	//   - float32: pitch in radians, always within [-common.MaxPitch, common.MaxPitch]
	Pitch() float32

	// SetOrientation sets yaw and pitch. Pitch is clamped to the legal range.
	//
	// Parameters:
	//   - yaw: horizontal look angle in radians
	//   - pitch: vertical look angle in radians
	SetOrientation(yaw, pitch float32)

	// ViewMatrix returns the 4x4 view matrix (column-major) for the current pose.
	//
	// Returns:
	//   - [16]float32: the view matrix
	ViewMatrix() [16]float32
}

// poseImpl is the mutex-guarded implementation of Pose.
type poseImpl struct {
	mu *sync.Mutex

	position mgl32.Vec3
	yaw      float32
	pitch    float32
}

var _ Pose = &poseImpl{}

// NewPose creates a camera pose at the origin looking down -Z.
//
// Parameters:
//   - options: functional options to configure the pose
//
// Returns:
//   - Pose: the newly created pose
func NewPose(options ...PoseOption) Pose {
	p := &poseImpl{
		mu: &sync.Mutex{},
	}
	for _, option := range options {
		option(p)
	}
	p.pitch = common.ClampPitch(p.pitch)
	return p
}

func (p *poseImpl) Position() mgl32.Vec3 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.position
}

func (p *poseImpl) SetPosition(pos mgl32.Vec3) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.position = pos
}

func (p *poseImpl) Yaw() float32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.yaw
}

func (p *poseImpl) Pitch() float32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pitch
}

func (p *poseImpl) SetOrientation(yaw, pitch float32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.yaw = yaw
	p.pitch = common.ClampPitch(pitch)
}

func (p *poseImpl) ViewMatrix() [16]float32 {
	p.mu.Lock()
	defer p.mu.Unlock()

	target := p.position.Add(common.LookDirection(p.yaw, p.pitch))

	var view [16]float32
	common.LookAt(view[:],
		p.position[0], p.position[1], p.position[2],
		target[0], target[1], target[2],
		0, 1, 0,
	)
	return view
}

package motion

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestIntegratorAcceleration(t *testing.T) {
	in := NewIntegrator(3, 15, 20)
	forward := mgl32.Vec2{0, 1}

	d := in.Step(forward, 0, 0.1)
	assert.InDelta(t, 1.5, in.Speed(), 1e-5)
	// Yaw 0 walks toward -Z.
	assert.InDelta(t, 0, d[0], 1e-6)
	assert.InDelta(t, -0.15, d[2], 1e-5)
	assert.Zero(t, d[1])

	in.Step(forward, 0, 0.1)
	assert.InDelta(t, 3, in.Speed(), 1e-5)

	in.Step(forward, 0, 0.1)
	assert.InDelta(t, 3, in.Speed(), 1e-5, "speed is capped")
	assert.InDelta(t, 3, in.Velocity().Len(), 1e-5)
}

func TestIntegratorDecelerationIsIndependent(t *testing.T) {
	in := NewIntegrator(3, 5, 30)
	for i := 0; i < 10; i++ {
		in.Step(mgl32.Vec2{0, 1}, 0, 0.1)
	}
	assert.InDelta(t, 3, in.Speed(), 1e-5)

	d := in.Step(mgl32.Vec2{}, 0, 0.05)
	assert.InDelta(t, 1.5, in.Speed(), 1e-5)
	assert.Equal(t, mgl32.Vec3{}, d, "released intent does not translate")

	in.Step(mgl32.Vec2{}, 0, 0.1)
	assert.Zero(t, in.Speed(), "speed never goes negative")
}

func TestIntegratorRestStaysAtRest(t *testing.T) {
	in := NewIntegrator(3, 15, 20)
	for i := 0; i < 100; i++ {
		d := in.Step(mgl32.Vec2{}, float32(i), 1.0/60)
		assert.Equal(t, mgl32.Vec3{}, d)
	}
	assert.Zero(t, in.Speed())
}

func TestIntegratorYawRotation(t *testing.T) {
	in := NewIntegrator(1, 100, 100)
	// Speed reaches the cap in the first step.
	d := in.Step(mgl32.Vec2{0, 1}, math.Pi/2, 1)
	assert.InDelta(t, -1, d[0], 1e-5)
	assert.InDelta(t, 0, d[2], 1e-5)

	in.Stop()
	d = in.Step(mgl32.Vec2{1, 0}, 0, 1)
	assert.InDelta(t, 1, d[0], 1e-5, "strafe right walks +X at yaw 0")
	assert.InDelta(t, 0, d[2], 1e-5)
}

func TestIntegratorStop(t *testing.T) {
	in := NewIntegrator(3, 15, 20)
	in.Step(mgl32.Vec2{0, 1}, 0, 0.1)
	in.Stop()
	assert.Zero(t, in.Speed())
	assert.Equal(t, mgl32.Vec3{}, in.Velocity())
	assert.Equal(t, float32(3), in.MaxSpeed())
}

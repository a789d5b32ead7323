package collision

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-storefront/common"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

var room = common.Rect{MinX: -5, MaxX: 5, MinZ: -5, MaxZ: 5}

func TestResolverObstacleRejectsDisplacement(t *testing.T) {
	r := NewResolver(room, []common.Rect{{MinX: -1, MaxX: 1, MinZ: -1, MaxZ: 1}})

	current := mgl32.Vec3{0, 1.6, 1.05}
	got := r.Resolve(current, mgl32.Vec3{0, 0, -0.1})
	assert.Equal(t, current, got)
	assert.True(t, r.Rejected())

	got = r.Resolve(current, mgl32.Vec3{0, 0, 0.1})
	assert.InDelta(t, 1.15, got[2], 1e-6)
	assert.False(t, r.Rejected())
}

func TestResolverObstacleEdgeIsSolid(t *testing.T) {
	r := NewResolver(room, []common.Rect{{MinX: -1, MaxX: 1, MinZ: -1, MaxZ: 1}})
	current := mgl32.Vec3{0, 0, 1.5}
	got := r.Resolve(current, mgl32.Vec3{0, 0, -0.5})
	assert.Equal(t, current, got)
}

func TestResolverRejectionDoesNotSlide(t *testing.T) {
	r := NewResolver(room, []common.Rect{{MinX: -1, MaxX: 1, MinZ: -1, MaxZ: 1}})
	current := mgl32.Vec3{-1.5, 0, 0}
	// The X component would enter the obstacle; the Z component alone would be free.
	got := r.Resolve(current, mgl32.Vec3{0.6, 0, 0.1})
	assert.Equal(t, current, got)
}

func TestResolverClampsToRoom(t *testing.T) {
	r := NewResolver(room, nil)

	got := r.Resolve(mgl32.Vec3{4.9, 1.6, 0}, mgl32.Vec3{1, 0, 0})
	assert.Equal(t, mgl32.Vec3{5, 1.6, 0}, got)
	assert.False(t, r.Rejected())

	got = r.Resolve(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{-20, 0, 20})
	assert.Equal(t, mgl32.Vec3{-5, 0, 5}, got)
}

func TestResolverStaysInRoom(t *testing.T) {
	r := NewResolver(room, []common.Rect{
		{MinX: 2, MaxX: 3, MinZ: 2, MaxZ: 3},
		{MinX: -3, MaxX: -2, MinZ: -1, MaxZ: 4},
	})
	pos := mgl32.Vec3{0, 0, 0}
	steps := []mgl32.Vec3{{0.7, 0, 0.3}, {-0.4, 0, 0.9}, {0.2, 0, -1.1}, {-0.9, 0, -0.2}}
	for i := 0; i < 400; i++ {
		pos = r.Resolve(pos, steps[i%len(steps)].Mul(float32(i%7)))
		assert.True(t, room.Contains(pos[0], pos[2]))
		assert.False(t, r.Blocked(pos[0], pos[2]))
	}
}

func TestResolverCopiesObstacles(t *testing.T) {
	obstacles := []common.Rect{{MinX: -1, MaxX: 1, MinZ: -1, MaxZ: 1}}
	r := NewResolver(room, obstacles)
	obstacles[0] = common.Rect{MinX: 4, MaxX: 5, MinZ: 4, MaxZ: 5}

	assert.True(t, r.Blocked(0, 0))
	assert.False(t, r.Blocked(4.5, 4.5))
	assert.Equal(t, room, r.Room())
}

func TestResolverFullyCoveringObstacle(t *testing.T) {
	r := NewResolver(room, []common.Rect{{MinX: -0.5, MaxX: 0.5, MinZ: -0.5, MaxZ: 0.5}})
	got := r.Resolve(mgl32.Vec3{-0.6, 0, 0}, mgl32.Vec3{0.2, 0, 0})
	assert.Equal(t, mgl32.Vec3{-0.6, 0, 0}, got)
	assert.True(t, r.Rejected())
}

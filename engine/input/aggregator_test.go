package input

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-storefront/common"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGamepads struct {
	pads []common.GamepadAxes
}

func (f *fakeGamepads) PollGamepads() []common.GamepadAxes {
	return f.pads
}

func TestAggregatorKeys(t *testing.T) {
	src := NewListenerSet()
	a := NewAggregator(src)
	require.Equal(t, 1, src.Len())

	t.Run("no input is zero intent", func(t *testing.T) {
		assert.Equal(t, Intent{}, a.Consume())
	})

	t.Run("forward", func(t *testing.T) {
		src.DispatchKeyDown(common.KeyW)
		assert.Equal(t, mgl32.Vec2{0, 1}, a.Consume().Move)
		src.DispatchKeyUp(common.KeyW)
		assert.Equal(t, mgl32.Vec2{}, a.Consume().Move)
	})

	t.Run("diagonal is normalized", func(t *testing.T) {
		src.DispatchKeyDown(common.KeyW)
		src.DispatchKeyDown(common.KeyD)
		move := a.Consume().Move
		assert.InDelta(t, 1, move.Len(), 1e-6)
		assert.InDelta(t, move[0], move[1], 1e-6)
		assert.Greater(t, move[0], float32(0))
		src.DispatchKeyUp(common.KeyW)
		src.DispatchKeyUp(common.KeyD)
	})

	t.Run("opposing keys cancel", func(t *testing.T) {
		src.DispatchKeyDown(common.KeyA)
		src.DispatchKeyDown(common.KeyD)
		assert.Equal(t, mgl32.Vec2{}, a.Consume().Move)
		src.DispatchKeyUp(common.KeyA)
		src.DispatchKeyUp(common.KeyD)
	})

	t.Run("arrow keys alias WASD", func(t *testing.T) {
		src.DispatchKeyDown(common.KeyDown)
		src.DispatchKeyDown(common.KeyLeft)
		move := a.Consume().Move
		assert.Less(t, move[0], float32(0))
		assert.Less(t, move[1], float32(0))
		src.DispatchKeyUp(common.KeyDown)
		src.DispatchKeyUp(common.KeyLeft)
	})

	t.Run("key repeat is idempotent", func(t *testing.T) {
		src.DispatchKeyDown(common.KeyS)
		src.DispatchKeyDown(common.KeyS)
		assert.Equal(t, mgl32.Vec2{0, -1}, a.Consume().Move)
		src.DispatchKeyUp(common.KeyS)
		assert.Equal(t, mgl32.Vec2{}, a.Consume().Move)
	})
}

func TestAggregatorPointerDrag(t *testing.T) {
	src := NewListenerSet()
	a := NewAggregator(src, WithSensitivity(0.01))

	// Moves without a pressed button are not looks.
	src.DispatchPointerMove(50, 50)
	assert.Equal(t, Intent{}, a.Consume())

	src.DispatchPointerDown(100, 100)
	assert.True(t, a.Dragging())
	src.DispatchPointerMove(110, 100)
	src.DispatchPointerMove(120, 95)

	intent := a.Consume()
	assert.InDelta(t, -0.2, intent.LookYaw, 1e-6)
	assert.InDelta(t, 0.05, intent.LookPitch, 1e-6)

	// Consume zeroes the accumulated delta.
	assert.Zero(t, a.Consume().LookYaw)

	src.DispatchPointerUp(120, 95)
	assert.False(t, a.Dragging())
	src.DispatchPointerMove(200, 200)
	assert.Zero(t, a.Consume().LookYaw)
}

func TestAggregatorGamepad(t *testing.T) {
	pads := &fakeGamepads{}
	a := NewAggregator(nil, WithGamepadPoller(pads), WithDeadzone(0.1))

	t.Run("inside deadzone is ignored", func(t *testing.T) {
		pads.pads = []common.GamepadAxes{{X: 0.05, Y: -0.05}}
		assert.Equal(t, mgl32.Vec2{}, a.Consume().Move)
	})

	t.Run("stick up is forward", func(t *testing.T) {
		pads.pads = []common.GamepadAxes{{X: 0, Y: -0.5}}
		move := a.Consume().Move
		assert.InDelta(t, 0, move[0], 1e-6)
		assert.InDelta(t, 0.5, move[1], 1e-6)
	})

	t.Run("strongest pad wins", func(t *testing.T) {
		pads.pads = []common.GamepadAxes{{X: 0.2}, {X: -0.9}}
		assert.InDelta(t, -0.9, a.Consume().Move[0], 1e-6)
	})

	t.Run("stick plus keys stays within unit length", func(t *testing.T) {
		src := NewListenerSet()
		b := NewAggregator(src, WithGamepadPoller(pads))
		src.DispatchKeyDown(common.KeyW)
		pads.pads = []common.GamepadAxes{{X: 0, Y: -1}}
		move := b.Consume().Move
		assert.InDelta(t, 1, move.Len(), 1e-6)
	})
}

func TestAggregatorOpenClose(t *testing.T) {
	src := NewListenerSet()
	a := NewAggregator(src)

	src.DispatchKeyDown(common.KeyW)
	src.DispatchPointerDown(0, 0)

	a.Close()
	assert.Equal(t, 0, src.Len())
	assert.False(t, a.Dragging())
	assert.Equal(t, Intent{}, a.Consume())

	// Events after Close are not seen.
	src.DispatchKeyDown(common.KeyD)
	assert.Equal(t, Intent{}, a.Consume())

	a.Close()
	a.Open()
	a.Open()
	assert.Equal(t, 1, src.Len())
	src.DispatchKeyDown(common.KeyD)
	assert.Equal(t, mgl32.Vec2{1, 0}, a.Consume().Move)
}

func TestAggregatorDefaults(t *testing.T) {
	a := NewAggregator(nil)
	assert.Equal(t, DefaultSensitivity, a.Sensitivity())
	assert.Equal(t, Intent{}, a.Consume())
}

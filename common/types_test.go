package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect(t *testing.T) {
	r := Rect{MinX: -1, MaxX: 1, MinZ: -2, MaxZ: 2}

	t.Run("contains is edge inclusive", func(t *testing.T) {
		assert.True(t, r.Contains(0, 0))
		assert.True(t, r.Contains(1, 2))
		assert.True(t, r.Contains(-1, -2))
		assert.False(t, r.Contains(1.001, 0))
		assert.False(t, r.Contains(0, -2.001))
	})

	t.Run("clamp per axis", func(t *testing.T) {
		x, z := r.Clamp(5, -5)
		assert.Equal(t, float32(1), x)
		assert.Equal(t, float32(-2), z)

		x, z = r.Clamp(0.5, 0.5)
		assert.Equal(t, float32(0.5), x)
		assert.Equal(t, float32(0.5), z)
	})

	t.Run("valid", func(t *testing.T) {
		assert.True(t, r.Valid())
		assert.True(t, Rect{}.Valid())
		assert.False(t, Rect{MinX: 1, MaxX: 0}.Valid())
		assert.False(t, Rect{MinZ: 1, MaxZ: 0}.Valid())
	})
}

func TestCoalesce(t *testing.T) {
	assert.Equal(t, float32(3), Coalesce[float32](0, 3, 4))
	assert.Equal(t, "a", Coalesce("", "a"))
	assert.Zero(t, Coalesce[int]())
}

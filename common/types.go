// package common contains common types that are used throughout this module. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

import "github.com/go-gl/mathgl/mgl32"

// Rect is an axis-aligned rectangle in the horizontal (X/Z) plane.
// It describes both a storefront's walkable room bounds and the footprint of interior obstacles.
type Rect struct {
	// MinX and MaxX bound the rectangle along the world X axis.
	MinX float32 `yaml:"min_x"`
	MaxX float32 `yaml:"max_x"`
	// MinZ and MaxZ bound the rectangle along the world Z axis.
	MinZ float32 `yaml:"min_z"`
	MaxZ float32 `yaml:"max_z"`
}

// Contains reports whether the point (x, z) lies inside the rectangle. Edges count as inside.
//
// Parameters:
//   - x: world X coordinate
//   - z: world Z coordinate
//
// Returns:
//   - bool: true if the point is on or within the rectangle edges
func (r Rect) Contains(x, z float32) bool {
	return x >= r.MinX && x <= r.MaxX && z >= r.MinZ && z <= r.MaxZ
}

// Clamp returns (x, z) clamped independently into the rectangle.
//
// Parameters:
//   - x: world X coordinate
//   - z: world Z coordinate
//
// Returns:
//   - float32, float32: the clamped X and Z coordinates
func (r Rect) Clamp(x, z float32) (float32, float32) {
	return mgl32.Clamp(x, r.MinX, r.MaxX), mgl32.Clamp(z, r.MinZ, r.MaxZ)
}

// Valid reports whether the rectangle has non-inverted extents.
func (r Rect) Valid() bool {
	return r.MinX <= r.MaxX && r.MinZ <= r.MaxZ
}

// InputListener is a set of device-event callbacks registered with a window as a single unit.
// Any callback may be nil. Pointer coordinates are window-space pixels.
type InputListener struct {
	// OnKeyDown is called when a key is pressed or auto-repeats.
	OnKeyDown func(keyCode uint32)
	// OnKeyUp is called when a key is released.
	OnKeyUp func(keyCode uint32)
	// OnPointerDown is called when the primary pointer button is pressed.
	OnPointerDown func(x, y float32)
	// OnPointerMove is called whenever the pointer moves, pressed or not.
	OnPointerMove func(x, y float32)
	// OnPointerUp is called when the primary pointer button is released.
	OnPointerUp func(x, y float32)
}

// GamepadAxes is the left-stick reading of one connected gamepad.
// Values are in [-1, 1]; negative Y is stick-up, matching the GLFW gamepad mapping.
type GamepadAxes struct {
	X float32
	Y float32
}

// Package collision resolves camera displacement against a storefront's horizontal room
// bounds and interior obstacle footprints.
package collision

import (
	"github.com/Carmen-Shannon/oxy-storefront/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Resolver clamps movement to a room and rejects movement into obstacles.
//
// Collision is tested on X/Z only; height is never tested. A candidate that lands inside
// any obstacle rejects the whole displacement for the tick, with no sliding along the
// free axis.
type Resolver struct {
	room      common.Rect
	obstacles []common.Rect

	rejected bool
}

// NewResolver creates a resolver for a room and its obstacles. The obstacle slice is copied.
//
// Parameters:
//   - room: walkable room bounds
//   - obstacles: interior no-entry footprints (may be empty)
//
// Returns:
//   - *Resolver: the newly created resolver
func NewResolver(room common.Rect, obstacles []common.Rect) *Resolver {
	return &Resolver{
		room:      room,
		obstacles: append([]common.Rect(nil), obstacles...),
	}
}

// Resolve returns the position after applying displacement from current.
// The candidate is clamped into the room bounds, then tested against every obstacle
// (edges inclusive). On a hit the unchanged current position is returned.
//
// Parameters:
//   - current: position before the tick
//   - displacement: proposed world-space displacement
//
// Returns:
//   - mgl32.Vec3: the resolved position
func (r *Resolver) Resolve(current, displacement mgl32.Vec3) mgl32.Vec3 {
	candidate := current.Add(displacement)
	candidate[0], candidate[2] = r.room.Clamp(candidate[0], candidate[2])

	r.rejected = r.Blocked(candidate[0], candidate[2])
	if r.rejected {
		return current
	}
	return candidate
}

// Blocked reports whether (x, z) lies inside any obstacle.
func (r *Resolver) Blocked(x, z float32) bool {
	for _, o := range r.obstacles {
		if o.Contains(x, z) {
			return true
		}
	}
	return false
}

// Rejected reports whether the last Resolve call was blocked by an obstacle.
func (r *Resolver) Rejected() bool { return r.rejected }

// Room returns the room bounds.
func (r *Resolver) Room() common.Rect { return r.room }

// package common contains common types that are used throughout this module. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Bounds is an axis-aligned box in world space.
// The frame driver uses it to keep the camera inside the playable area; the camera itself never checks bounds.
type Bounds struct {
	// Min is the lower corner of the box.
	Min mgl32.Vec3 `yaml:"min"`
	// Max is the upper corner of the box.
	Max mgl32.Vec3 `yaml:"max"`
}

// NewBounds creates a Bounds from two corners, ordering each component so that Min <= Max.
//
// Parameters:
//   - a, b: opposite corners of the box
//
// Returns:
//   - Bounds: the normalized box
func NewBounds(a, b mgl32.Vec3) Bounds {
	var bb Bounds
	for i := range 3 {
		bb.Min[i] = min(a[i], b[i])
		bb.Max[i] = max(a[i], b[i])
	}
	return bb
}

// Clamp returns p moved to the closest point inside the box.
//
// Parameters:
//   - p: world-space point
//
// Returns:
//   - mgl32.Vec3: p clamped component-wise into [Min, Max]
func (b Bounds) Clamp(p mgl32.Vec3) mgl32.Vec3 {
	return ClampVec3(p, b.Min, b.Max)
}

// Contains reports whether p lies inside the box, boundaries included.
//
// Parameters:
//   - p: world-space point
//
// Returns:
//   - bool: true if p is inside
func (b Bounds) Contains(p mgl32.Vec3) bool {
	for i := range 3 {
		if p[i] < b.Min[i] || p[i] > b.Max[i] {
			return false
		}
	}
	return true
}

// Valid reports whether Min <= Max on every axis.
func (b Bounds) Valid() bool {
	return b.Min[0] <= b.Max[0] && b.Min[1] <= b.Max[1] && b.Min[2] <= b.Max[2]
}

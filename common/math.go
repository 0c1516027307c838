package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// World-space reference axes. The camera's basis starts aligned to these and FIRST_PERSON
// heading always rotates about WorldYAxis.
var (
	WorldXAxis = mgl32.Vec3{1, 0, 0}
	WorldYAxis = mgl32.Vec3{0, 1, 0}
	WorldZAxis = mgl32.Vec3{0, 0, 1}
)

// ViewMatrix builds a world-to-view matrix from an orthonormal basis and an eye position.
// Matrices in this module use the row-vector convention (v' = v * M): the basis vectors occupy
// the first three columns and the translation is folded into the last row.
//
// Parameters:
//   - xAxis, yAxis, zAxis: the camera's right, up and forward (into the screen) axes
//   - eye: camera position in world space
//
// Returns:
//   - mgl32.Mat4: the view matrix, element (r, c) available via At(r, c)
func ViewMatrix(xAxis, yAxis, zAxis, eye mgl32.Vec3) mgl32.Mat4 {
	m := mgl32.Ident4()

	m.Set(0, 0, xAxis.X())
	m.Set(1, 0, xAxis.Y())
	m.Set(2, 0, xAxis.Z())
	m.Set(3, 0, -xAxis.Dot(eye))

	m.Set(0, 1, yAxis.X())
	m.Set(1, 1, yAxis.Y())
	m.Set(2, 1, yAxis.Z())
	m.Set(3, 1, -yAxis.Dot(eye))

	m.Set(0, 2, zAxis.X())
	m.Set(1, 2, zAxis.Y())
	m.Set(2, 2, zAxis.Z())
	m.Set(3, 2, -zAxis.Dot(eye))

	return m
}

// PerspectiveFovX creates a left-handed perspective projection matrix from a horizontal field of view.
// Depth is mapped to the [0, 1] range. The horizontal FOV stays fixed when the aspect ratio changes,
// so only the vertical extent of the view grows or shrinks on resize.
//
// Parameters:
//   - fovXDegrees: horizontal field of view in degrees
//   - aspect: viewport aspect ratio (width/height)
//   - zNear: near clipping plane distance (must be > 0)
//   - zFar: far clipping plane distance (must be > zNear)
//
// Returns:
//   - mgl32.Mat4: the projection matrix (row-vector convention)
func PerspectiveFovX(fovXDegrees, aspect, zNear, zFar float32) mgl32.Mat4 {
	e := 1.0 / math.Tan(float64(mgl32.DegToRad(fovXDegrees))/2.0)
	aspectInv := 1.0 / float64(aspect)
	fovY := 2.0 * math.Atan(aspectInv/e)
	xScale := float32(1.0 / math.Tan(0.5*fovY))
	yScale := xScale * aspect

	var m mgl32.Mat4
	m.Set(0, 0, xScale)
	m.Set(1, 1, yScale)
	m.Set(2, 2, zFar/(zFar-zNear))
	m.Set(3, 2, -zNear*zFar/(zFar-zNear))
	m.Set(2, 3, 1)
	return m
}

// RotateAboutAxis rotates v by the given angle about a unit-length axis.
// Positive angles follow the same sense as the D3DX RotationAxis family, i.e. rotating the
// world X axis by +90 degrees about world Y yields -Z.
//
// Parameters:
//   - v: the vector to rotate
//   - axis: rotation axis (must be unit length)
//   - degrees: rotation angle in degrees
//
// Returns:
//   - mgl32.Vec3: the rotated vector
func RotateAboutAxis(v, axis mgl32.Vec3, degrees float32) mgl32.Vec3 {
	return mgl32.QuatRotate(mgl32.DegToRad(degrees), axis).Rotate(v)
}

// Orthonormalize regenerates an orthonormal basis from a (possibly drifted) set of axes.
// The forward axis is kept as the reference direction; up and right are rebuilt from it.
//
// Parameters:
//   - xAxis: the current right axis
//   - zAxis: the current forward axis
//
// Returns:
//   - x, y, z: the re-orthogonalized right, up and forward axes
func Orthonormalize(xAxis, zAxis mgl32.Vec3) (x, y, z mgl32.Vec3) {
	z = zAxis.Normalize()
	y = z.Cross(xAxis).Normalize()
	x = y.Cross(z).Normalize()
	return x, y, z
}

// SafeAsin returns asin(v) in radians with v clamped to [-1, 1].
// Floating-point drift can push a unit vector component slightly past 1 near vertical orientations.
//
// Parameters:
//   - v: the sine value
//
// Returns:
//   - float32: the angle in radians
func SafeAsin(v float32) float32 {
	return float32(math.Asin(float64(mgl32.Clamp(v, -1, 1))))
}

// ClampVec3 clamps each component of v into [lo, hi] independently.
//
// Parameters:
//   - v: the vector to clamp
//   - lo: per-component lower bounds
//   - hi: per-component upper bounds
//
// Returns:
//   - mgl32.Vec3: the clamped vector
func ClampVec3(v, lo, hi mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{
		mgl32.Clamp(v[0], lo[0], hi[0]),
		mgl32.Clamp(v[1], lo[1], hi[1]),
		mgl32.Clamp(v[2], lo[2], hi[2]),
	}
}

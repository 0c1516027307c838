package model

import (
	"github.com/go-gl/mathgl/mgl32"
)

// NormalMappedQuad is a two-triangle rectangle with per-vertex tangents for normal mapping.
type NormalMappedQuad struct {
	vertices [6]GPUVertex
}

// Generate rebuilds the quad's vertices.
//
// The quad is centered on origin, faces along normal and has its top edge in the up direction.
// Texture coordinates run from (0,0) at the upper left to (uTile, vTile) at the lower right, so tile
// counts above 1 repeat a wrapping texture across the surface. Each triangle gets its own tangent.
//
// Parameters:
//   - origin: center of the quad
//   - normal: unit facing direction
//   - up: unit direction of the quad's top edge, perpendicular to normal
//   - width: extent along the left/right axis
//   - height: extent along up
//   - uTile: horizontal texture repeat count
//   - vTile: vertical texture repeat count
func (q *NormalMappedQuad) Generate(origin, normal, up mgl32.Vec3, width, height, uTile, vTile float32) {
	uvUpperLeft := mgl32.Vec2{0, 0}
	uvUpperRight := mgl32.Vec2{uTile, 0}
	uvLowerLeft := mgl32.Vec2{0, vTile}
	uvLowerRight := mgl32.Vec2{uTile, vTile}

	left := up.Cross(normal)

	upperCenter := origin.Add(up.Mul(height / 2))
	upperLeft := upperCenter.Add(left.Mul(width / 2))
	upperRight := upperCenter.Sub(left.Mul(width / 2))
	lowerLeft := upperLeft.Sub(up.Mul(height))
	lowerRight := upperRight.Sub(up.Mul(height))

	tangent, _ := CalcTangentVector(upperLeft, upperRight, lowerLeft, uvUpperLeft, uvUpperRight, uvLowerLeft, normal)
	q.vertices[0] = newVertex(upperLeft, uvUpperLeft, normal, tangent)
	q.vertices[1] = newVertex(upperRight, uvUpperRight, normal, tangent)
	q.vertices[2] = newVertex(lowerLeft, uvLowerLeft, normal, tangent)

	tangent, _ = CalcTangentVector(lowerLeft, upperRight, lowerRight, uvLowerLeft, uvUpperRight, uvLowerRight, normal)
	q.vertices[3] = newVertex(lowerLeft, uvLowerLeft, normal, tangent)
	q.vertices[4] = newVertex(upperRight, uvUpperRight, normal, tangent)
	q.vertices[5] = newVertex(lowerRight, uvLowerRight, normal, tangent)
}

// Vertices returns a copy of the quad's six vertices as a triangle list.
//
// Returns:
//   - []GPUVertex: the vertices
func (q *NormalMappedQuad) Vertices() []GPUVertex {
	out := make([]GPUVertex, len(q.vertices))
	copy(out, q.vertices[:])
	return out
}

func newVertex(pos mgl32.Vec3, uv mgl32.Vec2, normal mgl32.Vec3, tangent mgl32.Vec4) GPUVertex {
	return GPUVertex{
		Position: pos,
		Normal:   normal,
		TexCoord: uv,
		Color:    [4]float32{1, 1, 1, 1},
		Tangent:  tangent,
	}
}

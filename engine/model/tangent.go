package model

import (
	"github.com/go-gl/mathgl/mgl32"
)

// degenerateDeterminant is the texture-space determinant below which a triangle's UV mapping is
// treated as singular.
const degenerateDeterminant float32 = 1e-6

// CalcTangentVector computes the tangent-space basis of a triangle from its positions and texture coordinates.
//
// The tangent's w component holds the handedness of the basis, so a shader can rebuild the bitangent as
// cross(normal, tangent.xyz) * tangent.w. Triangles whose texture coordinates are collinear or coincident
// get the fixed basis tangent (1,0,0) and bitangent (0,1,0) instead of a division by a near-zero determinant.
//
// Parameters:
//   - pos1, pos2, pos3: triangle vertex positions
//   - uv1, uv2, uv3: texture coordinates of the same vertices
//   - normal: the triangle's face normal
//
// Returns:
//   - mgl32.Vec4: unit tangent in xyz and handedness (±1) in w
//   - mgl32.Vec3: unit bitangent solved from the UV mapping
func CalcTangentVector(pos1, pos2, pos3 mgl32.Vec3, uv1, uv2, uv3 mgl32.Vec2, normal mgl32.Vec3) (mgl32.Vec4, mgl32.Vec3) {
	edge1 := normalizeOrZero3(pos2.Sub(pos1))
	edge2 := normalizeOrZero3(pos3.Sub(pos1))

	texEdge1 := normalizeOrZero2(uv2.Sub(uv1))
	texEdge2 := normalizeOrZero2(uv3.Sub(uv1))

	var tangent, bitangent mgl32.Vec3

	det := texEdge1.X()*texEdge2.Y() - texEdge1.Y()*texEdge2.X()
	if mgl32.Abs(det) < degenerateDeterminant {
		tangent = mgl32.Vec3{1, 0, 0}
		bitangent = mgl32.Vec3{0, 1, 0}
	} else {
		invDet := 1.0 / det
		tangent = edge1.Mul(texEdge2.Y()).Sub(edge2.Mul(texEdge1.Y())).Mul(invDet)
		bitangent = edge2.Mul(texEdge1.X()).Sub(edge1.Mul(texEdge2.X())).Mul(invDet)

		tangent = normalizeOrZero3(tangent)
		bitangent = normalizeOrZero3(bitangent)
	}

	// Flip the rebuilt bitangent when it disagrees with the solved one (mirrored UVs).
	handedness := float32(1)
	if normal.Cross(tangent).Dot(bitangent) < 0 {
		handedness = -1
	}

	return tangent.Vec4(handedness), bitangent
}

func normalizeOrZero3(v mgl32.Vec3) mgl32.Vec3 {
	if v.LenSqr() == 0 {
		return v
	}
	return v.Normalize()
}

func normalizeOrZero2(v mgl32.Vec2) mgl32.Vec2 {
	if v.LenSqr() == 0 {
		return v
	}
	return v.Normalize()
}

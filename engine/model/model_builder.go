package model

import "github.com/go-gl/mathgl/mgl32"

// ModelBuilderOption is a functional option for configuring a Model.
type ModelBuilderOption func(*model)

// WithName sets the model identifier.
//
// Parameters:
//   - name: the model name
//
// Returns:
//   - ModelBuilderOption: a function that applies the name option to a model
func WithName(name string) ModelBuilderOption {
	return func(m *model) {
		m.name = name
	}
}

// WithVertices sets the model-space vertices. The slice is used directly, not copied.
//
// Parameters:
//   - vertices: the vertices
//
// Returns:
//   - ModelBuilderOption: a function that applies the vertices option to a model
func WithVertices(vertices []GPUVertex) ModelBuilderOption {
	return func(m *model) {
		m.vertices = vertices
	}
}

// WithIndices sets the triangle list indices.
//
// Parameters:
//   - indices: the indices
//
// Returns:
//   - ModelBuilderOption: a function that applies the indices option to a model
func WithIndices(indices []uint32) ModelBuilderOption {
	return func(m *model) {
		m.indices = indices
	}
}

// WithQuad uses the six vertices of a generated NormalMappedQuad as a non-indexed triangle list.
//
// Parameters:
//   - quad: the generated quad
//
// Returns:
//   - ModelBuilderOption: a function that applies the quad vertices to a model
func WithQuad(quad *NormalMappedQuad) ModelBuilderOption {
	return func(m *model) {
		m.vertices = quad.Vertices()
		m.indices = nil
	}
}

// WithOrigin sets the world-space position of the model's origin.
//
// Parameters:
//   - origin: the world-space origin
//
// Returns:
//   - ModelBuilderOption: a function that applies the origin option to a model
func WithOrigin(origin mgl32.Vec3) ModelBuilderOption {
	return func(m *model) {
		m.origin = origin
	}
}

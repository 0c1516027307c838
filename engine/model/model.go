package model

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// model is the implementation of the Model interface.
type model struct {
	name           string
	vertices       []GPUVertex
	indices        []uint32
	origin         mgl32.Vec3
	boundingRadius float32
}

// Model defines the interface for a CPU-side normal-mapped mesh placed in the world.
// It owns its vertex and index data, serializes them for GPU upload and exposes a bounding sphere
// that callers test against a camera frustum.
type Model interface {
	// Name retrieves the model identifier.
	//
	// Returns:
	//   - string: the model name
	Name() string

	// Vertices retrieves the model-space vertices.
	//
	// Returns:
	//   - []GPUVertex: the vertices (shared, not copied)
	Vertices() []GPUVertex

	// Indices retrieves the triangle list indices, nil for a non-indexed triangle list.
	//
	// Returns:
	//   - []uint32: the indices
	Indices() []uint32

	// VertexData returns the vertices serialized for GPU upload.
	//
	// Returns:
	//   - []byte: the vertex data
	VertexData() []byte

	// IndexData returns the indices serialized for GPU upload.
	//
	// Returns:
	//   - []byte: the index data
	IndexData() []byte

	// IndexCount returns the number of indices in the model's mesh.
	//
	// Returns:
	//   - int: the index count
	IndexCount() int

	// TriangleCount returns the number of triangles in the mesh.
	//
	// Returns:
	//   - int: the triangle count
	TriangleCount() int

	// Origin returns the world-space position of the model's origin.
	//
	// Returns:
	//   - mgl32.Vec3: the world-space origin
	Origin() mgl32.Vec3

	// BoundingRadius returns the bounding sphere radius, measured as the maximum vertex distance from
	// the model-space origin. Used by frustum culling.
	//
	// Returns:
	//   - float32: the bounding radius
	BoundingRadius() float32

	// GenerateTangents recomputes every vertex tangent with the given generator.
	//
	// Parameters:
	//   - generator: the generator to use
	//
	// Returns:
	//   - error: error if the mesh topology is malformed
	GenerateTangents(generator TangentGenerator) error
}

var _ Model = &model{}

// NewModel creates a new Model instance with the specified options applied.
// The bounding radius is computed from the final vertex set.
//
// Parameters:
//   - options: a variadic list of ModelBuilderOption functions to configure the Model
//
// Returns:
//   - Model: a new instance of Model configured with the provided options
func NewModel(options ...ModelBuilderOption) Model {
	m := &model{}
	for _, opt := range options {
		opt(m)
	}
	m.boundingRadius = ComputeBoundingRadius(m.vertices)
	return m
}

func (m *model) Name() string {
	return m.name
}

func (m *model) Vertices() []GPUVertex {
	return m.vertices
}

func (m *model) Indices() []uint32 {
	return m.indices
}

func (m *model) VertexData() []byte {
	return MarshalVertices(m.vertices)
}

func (m *model) IndexData() []byte {
	return MarshalIndices(m.indices)
}

func (m *model) IndexCount() int {
	return len(m.indices)
}

func (m *model) TriangleCount() int {
	if m.indices == nil {
		return len(m.vertices) / 3
	}
	return len(m.indices) / 3
}

func (m *model) Origin() mgl32.Vec3 {
	return m.origin
}

func (m *model) BoundingRadius() float32 {
	return m.boundingRadius
}

func (m *model) GenerateTangents(generator TangentGenerator) error {
	if err := generator.Generate(m.vertices, m.indices); err != nil {
		return fmt.Errorf("failed to generate tangents for model %q: %w", m.name, err)
	}
	return nil
}

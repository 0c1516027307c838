package model

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/go-gl/mathgl/mgl32"
)

// DefaultTangentBatchSize is the number of triangles handled by one worker task.
const DefaultTangentBatchSize = 1024

// degenerateTangentLenSqr is the squared length below which an accumulated vertex tangent,
// once projected off the normal, is replaced by the default tangent.
const degenerateTangentLenSqr float32 = 1e-6

// TangentGenerator computes per-vertex tangents for triangle meshes.
type TangentGenerator interface {
	// Generate overwrites the Tangent field of every vertex referenced by the triangle list.
	//
	// Each triangle's tangent is computed with CalcTangentVector; per-vertex tangents are the average of
	// the tangents of all triangles sharing the vertex, re-orthogonalized against the vertex normal.
	// The handedness of a shared vertex follows the majority of its triangles.
	//
	// Parameters:
	//   - vertices: the vertices to update in place
	//   - indices: triangle list indices, or nil for a non-indexed triangle list
	//
	// Returns:
	//   - error: error if the triangle list is malformed
	Generate(vertices []GPUVertex, indices []uint32) error

	// Workers returns the number of pool workers used for per-triangle work.
	//
	// Returns:
	//   - int: the worker count
	Workers() int
}

type tangentGeneratorImpl struct {
	pool      worker.DynamicWorkerPool
	workers   int
	batchSize int
}

var _ TangentGenerator = &tangentGeneratorImpl{}

// NewTangentGenerator creates a TangentGenerator backed by a dynamic worker pool.
//
// Parameters:
//   - options: functional options to configure the generator
//
// Returns:
//   - TangentGenerator: the newly created generator
func NewTangentGenerator(options ...TangentGeneratorOption) TangentGenerator {
	g := &tangentGeneratorImpl{
		workers:   max(runtime.NumCPU()-1, 1),
		batchSize: DefaultTangentBatchSize,
	}

	for _, option := range options {
		option(g)
	}

	// Idle workers exit after a second, so a generator that is only used at load time costs nothing later.
	g.pool = worker.NewDynamicWorkerPool(g.workers, 256, 1*time.Second)
	return g
}

func (g *tangentGeneratorImpl) Workers() int {
	return g.workers
}

func (g *tangentGeneratorImpl) Generate(vertices []GPUVertex, indices []uint32) error {
	indexCount := len(indices)
	if indices == nil {
		indexCount = len(vertices)
	}
	if indexCount%3 != 0 {
		return fmt.Errorf("triangle list has %d indices, not a multiple of 3", indexCount)
	}
	for i, idx := range indices {
		if int(idx) >= len(vertices) {
			return fmt.Errorf("index %d at position %d out of range for %d vertices", idx, i, len(vertices))
		}
	}

	vertexAt := func(i int) int {
		if indices == nil {
			return i
		}
		return int(indices[i])
	}

	triangleCount := indexCount / 3
	faceTangents := make([]mgl32.Vec4, triangleCount)

	// Each task owns a disjoint range of faceTangents; the WaitGroup is the barrier before accumulation.
	var wg sync.WaitGroup
	taskID := 0
	for start := 0; start < triangleCount; start += g.batchSize {
		end := min(start+g.batchSize, triangleCount)

		wg.Add(1)
		id := taskID
		taskID++
		g.pool.SubmitTask(worker.Task{
			ID: id,
			Do: func() (any, error) {
				defer wg.Done()
				for t := start; t < end; t++ {
					a := &vertices[vertexAt(t*3)]
					b := &vertices[vertexAt(t*3+1)]
					c := &vertices[vertexAt(t*3+2)]
					faceTangents[t] = triangleTangent(a, b, c)
				}
				return nil, nil
			},
		})
	}
	wg.Wait()

	sums := make([]mgl32.Vec3, len(vertices))
	handedness := make([]float32, len(vertices))
	used := make([]bool, len(vertices))
	for t, tangent := range faceTangents {
		for k := range 3 {
			v := vertexAt(t*3 + k)
			sums[v] = sums[v].Add(tangent.Vec3())
			handedness[v] += tangent.W()
			used[v] = true
		}
	}

	for v := range vertices {
		if !used[v] {
			continue
		}

		normal := mgl32.Vec3(vertices[v].Normal)
		tangent := sums[v].Sub(normal.Mul(normal.Dot(sums[v])))
		if tangent.LenSqr() < degenerateTangentLenSqr {
			tangent = mgl32.Vec3{1, 0, 0}
		} else {
			tangent = tangent.Normalize()
		}

		w := float32(1)
		if handedness[v] < 0 {
			w = -1
		}
		vertices[v].Tangent = [4]float32{tangent[0], tangent[1], tangent[2], w}
	}

	return nil
}

// triangleTangent computes one triangle's tangent, using the averaged vertex normal as the face normal.
func triangleTangent(a, b, c *GPUVertex) mgl32.Vec4 {
	p1, p2, p3 := mgl32.Vec3(a.Position), mgl32.Vec3(b.Position), mgl32.Vec3(c.Position)

	normal := mgl32.Vec3(a.Normal).Add(b.Normal).Add(c.Normal)
	if normal.LenSqr() == 0 {
		normal = p2.Sub(p1).Cross(p3.Sub(p1))
	}
	normal = normalizeOrZero3(normal)

	tangent, _ := CalcTangentVector(p1, p2, p3, a.TexCoord, b.TexCoord, c.TexCoord, normal)
	return tangent
}

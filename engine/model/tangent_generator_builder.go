package model

// TangentGeneratorOption is a functional option for configuring a TangentGenerator.
type TangentGeneratorOption func(*tangentGeneratorImpl)

// WithWorkers sets the number of pool workers. Values below 1 are ignored.
//
// Parameters:
//   - n: the worker count
//
// Returns:
//   - TangentGeneratorOption: a function that sets the worker count
func WithWorkers(n int) TangentGeneratorOption {
	return func(g *tangentGeneratorImpl) {
		if n > 0 {
			g.workers = n
		}
	}
}

// WithBatchSize sets how many triangles one worker task processes. Values below 1 are ignored.
//
// Parameters:
//   - triangles: triangles per task
//
// Returns:
//   - TangentGeneratorOption: a function that sets the batch size
func WithBatchSize(triangles int) TangentGeneratorOption {
	return func(g *tangentGeneratorImpl) {
		if triangles > 0 {
			g.batchSize = triangles
		}
	}
}

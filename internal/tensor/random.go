package tensor

import "math/rand"

// Generator is the source of uniform randomness for Rand constructors.
// *math/rand.Rand and *math/rand/v2.Rand both satisfy it.
//
// A Generator carries mutable state and is not safe for concurrent use;
// callers own it and thread it explicitly through successive calls.
type Generator interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
}

// NewGenerator returns a generator seeded with seed.
// The same seed always yields the same sequence of containers.
func NewGenerator(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed)) //nolint:gosec // G404: statistical use, reproducibility wanted
}

// uniform draws one value on [-1, 1].
func uniform[T DType](gen Generator) T {
	return T(2*gen.Float64() - 1)
}

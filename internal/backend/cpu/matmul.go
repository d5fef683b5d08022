package cpu

import (
	"github.com/born-ml/datagrid/internal/parallel"
)

// MatMul performs matrix multiplication on row-major buffers.
// C[i,j] = sum_k A[i,k] * B[k,j] for A (m, k) and B (k, n).
//
// Requires: len(a) == m*k, len(b) == k*n, len(c) == m*n.
// Output rows are independent, so rows are distributed across workers.
func MatMul[T Float](c, a, b []T, m, k, n int, cfg parallel.Config) {
	parallel.ForRange(m, func(start, end int) {
		matmulRows(c, a, b, start, end, k, n)
	}, rowConfig(cfg, k*n))
}

// matmulRows fills rows [start, end) of c.
// Naive i-k-j loop order keeps the inner loop streaming over contiguous rows of b.
func matmulRows[T Float](c, a, b []T, start, end, k, n int) {
	for i := start; i < end; i++ {
		out := c[i*n : (i+1)*n]
		for j := range out {
			out[j] = 0
		}
		for kIdx := 0; kIdx < k; kIdx++ {
			aik := a[i*k+kIdx]
			bRow := b[kIdx*n : (kIdx+1)*n]
			for j := range out {
				out[j] += aik * bRow[j]
			}
		}
	}
}

// Dot returns sum_i a[i]*b[i], accumulated in float64.
// Requires: len(a) == len(b).
func Dot[T Float](a, b []T) T {
	var sum float64
	for i := range a {
		sum += float64(a[i]) * float64(b[i])
	}
	return T(sum)
}

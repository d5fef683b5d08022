package tensor

import (
	"fmt"

	"github.com/born-ml/datagrid/internal/backend/cpu"
)

// Batch reshapes the vector into a matrix of consecutive batchSize-wide rows.
//
// The result has Len()/batchSize rows (integer division) and batchSize
// columns, in the original order. Trailing elements that do not fill a whole
// row are dropped. batchSize must be in [1, Len()].
//
// Example:
//
//	v := tensor.VectorFromSlice([]float64{1, 2, 3, 4, 5, 6, 7})
//	m, _ := v.Batch(3) // [[1 2 3] [4 5 6]]; 7 is dropped
func (v *Vector[T]) Batch(batchSize int) (*Matrix[T], error) {
	if batchSize <= 0 || batchSize > len(v.data) {
		return nil, fmt.Errorf("%w: batch size %d for vector of length %d", ErrInvalidParameter, batchSize, len(v.data))
	}
	rows := len(v.data) / batchSize
	out := make([]T, rows*batchSize)
	copy(out, v.data)
	return newMatrix(out, rows, batchSize), nil
}

// Flatten concatenates the rows into one vector. It is the inverse of Batch
// when no elements were dropped.
func (m *Matrix[T]) Flatten() *Vector[T] {
	return VectorFromSlice(m.data)
}

// Transpose returns a new matrix with rows and columns swapped.
// Element (i, j) moves to (j, i); transposing twice restores the original.
//
// Example:
//
//	m, _ := tensor.MatrixFromRows([][]float64{{1, 2}, {3, 4}})
//	mt := m.Transpose() // [[1 3] [2 4]]
func (m *Matrix[T]) Transpose() *Matrix[T] {
	out := make([]T, len(m.data))
	cpu.Transpose(out, m.data, m.rows, m.cols, ParallelConfig())
	return newMatrix(out, m.cols, m.rows)
}

// T is a shortcut for Transpose.
func (m *Matrix[T]) T() *Matrix[T] {
	return m.Transpose()
}

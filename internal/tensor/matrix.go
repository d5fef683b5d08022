package tensor

import (
	"fmt"
	"slices"
)

// Matrix is an immutable two-dimensional grid of numeric elements.
//
// Storage is one contiguous row-major buffer owned by the matrix; row r
// occupies data[r*cols : (r+1)*cols]. Rows and columns are always >= 1.
// Like Vector, a Matrix never shares memory with another container.
//
// Example:
//
//	m, _ := tensor.MatrixFromRows([][]float64{{1, 2}, {3, 4}})
//	colMeans, _ := m.Mean(tensor.AxisCol) // [2 3]
type Matrix[T DType] struct {
	data []T
	rows int
	cols int
}

// newMatrix wraps data without copying. Only for buffers this package just allocated.
func newMatrix[T DType](data []T, rows, cols int) *Matrix[T] {
	return &Matrix[T]{data: data, rows: rows, cols: cols}
}

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int {
	return m.rows
}

// Cols returns the number of columns.
func (m *Matrix[T]) Cols() int {
	return m.cols
}

// Shape returns {Rows(), Cols()}.
func (m *Matrix[T]) Shape() Shape {
	return Shape{m.rows, m.cols}
}

// NumElements returns Rows()*Cols().
func (m *Matrix[T]) NumElements() int {
	return len(m.data)
}

// DType returns the element data type.
func (m *Matrix[T]) DType() DataType {
	return inferDataType[T]()
}

// At returns the element at (row, col).
func (m *Matrix[T]) At(row, col int) (T, error) {
	if err := checkIndex(0, row, m.rows); err != nil {
		return 0, err
	}
	if err := checkIndex(1, col, m.cols); err != nil {
		return 0, err
	}
	return m.data[row*m.cols+col], nil
}

// Row returns a copy of row i as a Vector of length Cols().
func (m *Matrix[T]) Row(i int) (*Vector[T], error) {
	if err := checkIndex(0, i, m.rows); err != nil {
		return nil, err
	}
	return VectorFromSlice(m.data[i*m.cols : (i+1)*m.cols]), nil
}

// Col returns a copy of column j as a Vector of length Rows().
func (m *Matrix[T]) Col(j int) (*Vector[T], error) {
	if err := checkIndex(1, j, m.cols); err != nil {
		return nil, err
	}
	out := make([]T, m.rows)
	for r := range out {
		out[r] = m.data[r*m.cols+j]
	}
	return newVector(out), nil
}

// Data returns a copy of the elements in row-major order.
func (m *Matrix[T]) Data() []T {
	return slices.Clone(m.data)
}

// ToRows returns a copy of the elements as one slice per row.
func (m *Matrix[T]) ToRows() [][]T {
	out := make([][]T, m.rows)
	for r := range out {
		out[r] = slices.Clone(m.data[r*m.cols : (r+1)*m.cols])
	}
	return out
}

// Clone creates a deep copy of the matrix.
func (m *Matrix[T]) Clone() *Matrix[T] {
	return newMatrix(slices.Clone(m.data), m.rows, m.cols)
}

// Equal reports whether both matrices have the same shape and elements.
func (m *Matrix[T]) Equal(other *Matrix[T]) bool {
	return m.rows == other.rows && m.cols == other.cols && slices.Equal(m.data, other.data)
}

// GoString returns a debugging representation.
func (m *Matrix[T]) GoString() string {
	return fmt.Sprintf("Matrix[%s]%s%v", m.DType(), m.Shape(), m.ToRows())
}

func (m *Matrix[T]) sameShape(op string, other *Matrix[T]) error {
	if m.rows != other.rows || m.cols != other.cols {
		return shapeMismatch(op, m.Shape(), other.Shape())
	}
	return nil
}

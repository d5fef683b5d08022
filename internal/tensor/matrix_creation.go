package tensor

import "fmt"

// MatrixFromRows creates a matrix holding a copy of rows.
// There must be at least one row, and every row must have the same non-zero length.
//
// Example:
//
//	m, err := tensor.MatrixFromRows([][]float32{{1, 2, 3}, {4, 5, 6}})
func MatrixFromRows[T DType](rows [][]T) (*Matrix[T], error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: matrix needs at least one row", ErrInvalidParameter)
	}
	cols := len(rows[0])
	m, err := ZeroMatrix[T](len(rows), cols)
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d elements, expected %d", ErrInvalidParameter, r, len(row), cols)
		}
		copy(m.data[r*cols:], row)
	}
	return m, nil
}

// MatrixFromSlice creates a rows x cols matrix from a copy of row-major data.
func MatrixFromSlice[T DType](data []T, rows, cols int) (*Matrix[T], error) {
	m, err := ZeroMatrix[T](rows, cols)
	if err != nil {
		return nil, err
	}
	if len(data) != len(m.data) {
		return nil, fmt.Errorf("%w: shape %s requires %d elements, but got %d",
			ErrInvalidParameter, m.Shape(), len(m.data), len(data))
	}
	copy(m.data, data)
	return m, nil
}

// ZeroMatrix creates a rows x cols matrix of zeros.
func ZeroMatrix[T DType](rows, cols int) (*Matrix[T], error) {
	shape := Shape{rows, cols}
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("matrix %s: %w", shape, err)
	}
	return newMatrix(make([]T, rows*cols), rows, cols), nil
}

// OneMatrix creates a rows x cols matrix of ones.
func OneMatrix[T DType](rows, cols int) (*Matrix[T], error) {
	return FullMatrix[T](rows, cols, 1)
}

// FullMatrix creates a rows x cols matrix filled with value.
func FullMatrix[T DType](rows, cols int, value T) (*Matrix[T], error) {
	m, err := ZeroMatrix[T](rows, cols)
	if err != nil {
		return nil, err
	}
	for i := range m.data {
		m.data[i] = value
	}
	return m, nil
}

// Eye creates an n x n identity matrix.
//
// Example:
//
//	id, _ := tensor.Eye[float32](3) // 3x3 identity matrix
func Eye[T DType](n int) (*Matrix[T], error) {
	m, err := ZeroMatrix[T](n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m, nil
}

// RandMatrix creates a rows x cols matrix of independent draws, uniform on
// [-1, 1], consumed from gen in row-major order.
func RandMatrix[T DType](rows, cols int, gen Generator) (*Matrix[T], error) {
	if gen == nil {
		return nil, fmt.Errorf("%w: nil generator", ErrInvalidParameter)
	}
	m, err := ZeroMatrix[T](rows, cols)
	if err != nil {
		return nil, err
	}
	for i := range m.data {
		m.data[i] = uniform[T](gen)
	}
	return m, nil
}

package tensor

import (
	"fmt"

	"github.com/born-ml/datagrid/internal/backend/cpu"
)

// Add returns m + other elementwise. Shapes must be identical.
func (m *Matrix[T]) Add(other *Matrix[T]) (*Matrix[T], error) {
	return m.binary(cpu.OpAdd, other)
}

// Sub returns m - other elementwise. Shapes must be identical.
func (m *Matrix[T]) Sub(other *Matrix[T]) (*Matrix[T], error) {
	return m.binary(cpu.OpSub, other)
}

// Mul returns m * other elementwise (Hadamard product). Shapes must be identical.
func (m *Matrix[T]) Mul(other *Matrix[T]) (*Matrix[T], error) {
	return m.binary(cpu.OpMul, other)
}

// Div returns m / other elementwise. Shapes must be identical and other
// must not contain zeros.
func (m *Matrix[T]) Div(other *Matrix[T]) (*Matrix[T], error) {
	return m.binary(cpu.OpDiv, other)
}

// AddVector adds v broadcast across m.
//
// A length-1 vector acts as a scalar. A vector of length Cols() is added to
// every row, so element k lands on column k. Any other length is a
// ShapeError.
//
// Example:
//
//	mean, _ := m.Mean(tensor.AxisCol)
//	centered, _ := m.SubVector(mean)
func (m *Matrix[T]) AddVector(v *Vector[T]) (*Matrix[T], error) {
	return m.broadcast(cpu.OpAdd, v)
}

// SubVector subtracts v broadcast across m. See AddVector for the rules.
func (m *Matrix[T]) SubVector(v *Vector[T]) (*Matrix[T], error) {
	return m.broadcast(cpu.OpSub, v)
}

// MulVector multiplies m by v broadcast across it. See AddVector for the rules.
func (m *Matrix[T]) MulVector(v *Vector[T]) (*Matrix[T], error) {
	return m.broadcast(cpu.OpMul, v)
}

// DivVector divides m by v broadcast across it. See AddVector for the rules.
// v must not contain zeros.
func (m *Matrix[T]) DivVector(v *Vector[T]) (*Matrix[T], error) {
	return m.broadcast(cpu.OpDiv, v)
}

// AddScalar returns m + s for every element.
func (m *Matrix[T]) AddScalar(s T) *Matrix[T] {
	return m.scalar(cpu.OpAdd, s)
}

// SubScalar returns m - s for every element.
func (m *Matrix[T]) SubScalar(s T) *Matrix[T] {
	return m.scalar(cpu.OpSub, s)
}

// MulScalar returns m * s for every element.
func (m *Matrix[T]) MulScalar(s T) *Matrix[T] {
	return m.scalar(cpu.OpMul, s)
}

// DivScalar returns m / s for every element. s must be non-zero.
func (m *Matrix[T]) DivScalar(s T) (*Matrix[T], error) {
	if s == 0 {
		return nil, fmt.Errorf("div: scalar divisor: %w", ErrDivisionByZero)
	}
	return m.scalar(cpu.OpDiv, s), nil
}

// MatMul performs matrix multiplication: (M, K) @ (K, N) -> (M, N).
//
// Example:
//
//	a, _ := tensor.RandMatrix[float32](3, 4, gen)
//	b, _ := tensor.RandMatrix[float32](4, 5, gen)
//	c, _ := a.MatMul(b) // Shape: (3, 5)
func (m *Matrix[T]) MatMul(other *Matrix[T]) (*Matrix[T], error) {
	if m.cols != other.rows {
		return nil, shapeMismatch("matmul", m.Shape(), other.Shape())
	}
	out := make([]T, m.rows*other.cols)
	cpu.MatMul(out, m.data, other.data, m.rows, m.cols, other.cols, ParallelConfig())
	return newMatrix(out, m.rows, other.cols), nil
}

// NormalizeColumns standardizes every column independently:
// (m - mean(col)) / std(col). It is the per-feature normalization applied to
// a dataset whose rows are samples. A constant column has zero standard
// deviation and yields ErrDivisionByZero.
func (m *Matrix[T]) NormalizeColumns() (*Matrix[T], error) {
	mean, err := m.Mean(AxisCol)
	if err != nil {
		return nil, fmt.Errorf("normalize columns: %w", err)
	}
	std, err := m.Std(AxisCol)
	if err != nil {
		return nil, fmt.Errorf("normalize columns: %w", err)
	}
	centered, err := m.SubVector(mean)
	if err != nil {
		return nil, fmt.Errorf("normalize columns: %w", err)
	}
	out, err := centered.DivVector(std)
	if err != nil {
		return nil, fmt.Errorf("normalize columns: %w", err)
	}
	return out, nil
}

func (m *Matrix[T]) binary(op cpu.Op, other *Matrix[T]) (*Matrix[T], error) {
	if err := m.sameShape(op.String(), other); err != nil {
		return nil, err
	}
	if op == cpu.OpDiv && cpu.HasZero(other.data) {
		return nil, fmt.Errorf("div: divisor has a zero element: %w", ErrDivisionByZero)
	}
	out := make([]T, len(m.data))
	cpu.Elementwise(op, out, m.data, other.data, ParallelConfig())
	return newMatrix(out, m.rows, m.cols), nil
}

func (m *Matrix[T]) broadcast(op cpu.Op, v *Vector[T]) (*Matrix[T], error) {
	n := v.Len()
	if n != 1 && n != m.cols {
		return nil, shapeMismatch(op.String(), m.Shape(), v.Shape())
	}
	if op == cpu.OpDiv && cpu.HasZero(v.data) {
		return nil, fmt.Errorf("div: divisor has a zero element: %w", ErrDivisionByZero)
	}
	if n == 1 {
		return m.scalar(op, v.data[0]), nil
	}
	out := make([]T, len(m.data))
	cpu.ColumnBroadcast(op, out, m.data, v.data, m.cols, ParallelConfig())
	return newMatrix(out, m.rows, m.cols), nil
}

func (m *Matrix[T]) scalar(op cpu.Op, s T) *Matrix[T] {
	out := make([]T, len(m.data))
	cpu.Scalar(op, out, m.data, s, ParallelConfig())
	return newMatrix(out, m.rows, m.cols)
}

package tensor

import (
	"fmt"

	"github.com/born-ml/datagrid/internal/backend/cpu"
)

// Add returns v + other elementwise. Lengths must match.
func (v *Vector[T]) Add(other *Vector[T]) (*Vector[T], error) {
	return v.binary(cpu.OpAdd, other)
}

// Sub returns v - other elementwise. Lengths must match.
func (v *Vector[T]) Sub(other *Vector[T]) (*Vector[T], error) {
	return v.binary(cpu.OpSub, other)
}

// Mul returns v * other elementwise. Lengths must match.
func (v *Vector[T]) Mul(other *Vector[T]) (*Vector[T], error) {
	return v.binary(cpu.OpMul, other)
}

// Div returns v / other elementwise. Lengths must match and no element of
// other may be zero.
func (v *Vector[T]) Div(other *Vector[T]) (*Vector[T], error) {
	return v.binary(cpu.OpDiv, other)
}

// AddScalar returns v + s for every element.
func (v *Vector[T]) AddScalar(s T) *Vector[T] {
	return v.scalar(cpu.OpAdd, s)
}

// SubScalar returns v - s for every element.
func (v *Vector[T]) SubScalar(s T) *Vector[T] {
	return v.scalar(cpu.OpSub, s)
}

// MulScalar returns v * s for every element.
func (v *Vector[T]) MulScalar(s T) *Vector[T] {
	return v.scalar(cpu.OpMul, s)
}

// DivScalar returns v / s for every element. s must be non-zero.
func (v *Vector[T]) DivScalar(s T) (*Vector[T], error) {
	if s == 0 {
		return nil, fmt.Errorf("div: scalar divisor: %w", ErrDivisionByZero)
	}
	return v.scalar(cpu.OpDiv, s), nil
}

// Dot returns the inner product of v and other. Lengths must match.
func (v *Vector[T]) Dot(other *Vector[T]) (T, error) {
	if err := v.sameLen("dot", other); err != nil {
		var zero T
		return zero, err
	}
	return cpu.Dot(v.data, other.data), nil
}

// Normalize returns (v - mean) / std, giving zero mean and unit population
// standard deviation. It fails with ErrEmptyContainer on an empty vector and
// ErrDivisionByZero when every element is equal.
func (v *Vector[T]) Normalize() (*Vector[T], error) {
	mean, err := v.Mean()
	if err != nil {
		return nil, fmt.Errorf("normalize: %w", err)
	}
	std, err := v.Std()
	if err != nil {
		return nil, fmt.Errorf("normalize: %w", err)
	}
	out, err := v.SubScalar(mean).DivScalar(std)
	if err != nil {
		return nil, fmt.Errorf("normalize: zero standard deviation: %w", err)
	}
	return out, nil
}

func (v *Vector[T]) binary(op cpu.Op, other *Vector[T]) (*Vector[T], error) {
	if err := v.sameLen(op.String(), other); err != nil {
		return nil, err
	}
	if op == cpu.OpDiv && cpu.HasZero(other.data) {
		return nil, fmt.Errorf("div: divisor has a zero element: %w", ErrDivisionByZero)
	}
	out := make([]T, len(v.data))
	cpu.Elementwise(op, out, v.data, other.data, ParallelConfig())
	return newVector(out), nil
}

func (v *Vector[T]) scalar(op cpu.Op, s T) *Vector[T] {
	out := make([]T, len(v.data))
	cpu.Scalar(op, out, v.data, s, ParallelConfig())
	return newVector(out)
}

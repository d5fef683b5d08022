package tensor

import (
	"fmt"

	"github.com/born-ml/datagrid/internal/backend/cpu"
)

// Reductions take an Axis:
//   - AxisAll collapses the whole matrix into a length-1 Vector.
//   - AxisCol collapses each column, returning a Vector of length Cols().
//
// The boxed scalar of AxisAll lets both modes share one result type, so the
// output of any reduction can be fed straight into the *Vector broadcast ops.

// Sum adds elements along axis.
func (m *Matrix[T]) Sum(axis Axis) (*Vector[T], error) {
	if err := checkAxis("sum", axis); err != nil {
		return nil, err
	}
	if axis.perColumn() {
		return fromFloat64[T](m.colSums()), nil
	}
	return newVector([]T{T(cpu.Sum(m.data))}), nil
}

// Mean averages elements along axis.
//
// Example:
//
//	m, _ := tensor.MatrixFromRows([][]float64{{1, 2}, {3, 4}})
//	all, _ := m.Mean(tensor.AxisAll) // [2.5]
//	col, _ := m.Mean(tensor.AxisCol) // [2 3]
func (m *Matrix[T]) Mean(axis Axis) (*Vector[T], error) {
	if err := checkAxis("mean", axis); err != nil {
		return nil, err
	}
	if axis.perColumn() {
		return fromFloat64[T](m.colMeans()), nil
	}
	return newVector([]T{T(m.mean())}), nil
}

// Std returns the population standard deviation along axis, derived from the
// matching Mean.
func (m *Matrix[T]) Std(axis Axis) (*Vector[T], error) {
	if err := checkAxis("std", axis); err != nil {
		return nil, err
	}
	if axis.perColumn() {
		sumSq := make([]float64, m.cols)
		cpu.SumSquaredDiffCols(sumSq, m.data, m.colMeans(), m.cols)
		for c := range sumSq {
			sumSq[c] = cpu.PopulationStd(sumSq[c], m.rows)
		}
		return fromFloat64[T](sumSq), nil
	}
	sumSq := cpu.SumSquaredDiff(m.data, m.mean())
	return newVector([]T{T(cpu.PopulationStd(sumSq, len(m.data)))}), nil
}

// Min returns the smallest element along axis.
func (m *Matrix[T]) Min(axis Axis) (*Vector[T], error) {
	if err := checkAxis("min", axis); err != nil {
		return nil, err
	}
	if axis.perColumn() {
		out := make([]T, m.cols)
		cpu.MinCols(out, m.data, m.cols)
		return newVector(out), nil
	}
	return newVector([]T{cpu.Min(m.data)}), nil
}

// Max returns the largest element along axis.
func (m *Matrix[T]) Max(axis Axis) (*Vector[T], error) {
	if err := checkAxis("max", axis); err != nil {
		return nil, err
	}
	if axis.perColumn() {
		out := make([]T, m.cols)
		cpu.MaxCols(out, m.data, m.cols)
		return newVector(out), nil
	}
	return newVector([]T{cpu.Max(m.data)}), nil
}

func (m *Matrix[T]) mean() float64 {
	return cpu.Sum(m.data) / float64(len(m.data))
}

func (m *Matrix[T]) colSums() []float64 {
	sums := make([]float64, m.cols)
	cpu.SumCols(sums, m.data, m.cols)
	return sums
}

func (m *Matrix[T]) colMeans() []float64 {
	means := m.colSums()
	for c := range means {
		means[c] /= float64(m.rows)
	}
	return means
}

func checkAxis(op string, axis Axis) error {
	if !axis.valid() {
		return fmt.Errorf("%s: %w: unknown axis %s", op, ErrInvalidParameter, axis)
	}
	return nil
}

func fromFloat64[T DType](vals []float64) *Vector[T] {
	out := make([]T, len(vals))
	for i, x := range vals {
		out[i] = T(x)
	}
	return newVector(out)
}

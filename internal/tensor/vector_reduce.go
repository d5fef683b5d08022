package tensor

import (
	"fmt"

	"github.com/born-ml/datagrid/internal/backend/cpu"
)

// Sum returns the sum of all elements.
func (v *Vector[T]) Sum() (T, error) {
	if err := v.nonEmpty("sum"); err != nil {
		return 0, err
	}
	return T(cpu.Sum(v.data)), nil
}

// Mean returns the arithmetic mean of all elements.
func (v *Vector[T]) Mean() (T, error) {
	if err := v.nonEmpty("mean"); err != nil {
		return 0, err
	}
	return T(v.mean()), nil
}

// Std returns the population standard deviation (denominator Len()).
func (v *Vector[T]) Std() (T, error) {
	if err := v.nonEmpty("std"); err != nil {
		return 0, err
	}
	sumSq := cpu.SumSquaredDiff(v.data, v.mean())
	return T(cpu.PopulationStd(sumSq, len(v.data))), nil
}

// Min returns the smallest element.
func (v *Vector[T]) Min() (T, error) {
	if err := v.nonEmpty("min"); err != nil {
		return 0, err
	}
	return cpu.Min(v.data), nil
}

// Max returns the largest element.
func (v *Vector[T]) Max() (T, error) {
	if err := v.nonEmpty("max"); err != nil {
		return 0, err
	}
	return cpu.Max(v.data), nil
}

// Argmax returns the index of the largest element.
// When several elements share the maximum, the lowest index wins.
func (v *Vector[T]) Argmax() (int, error) {
	if err := v.nonEmpty("argmax"); err != nil {
		return -1, err
	}
	return cpu.Argmax(v.data), nil
}

// Argmin returns the index of the smallest element, lowest index on ties.
func (v *Vector[T]) Argmin() (int, error) {
	if err := v.nonEmpty("argmin"); err != nil {
		return -1, err
	}
	return cpu.Argmin(v.data), nil
}

// mean is the float64 mean; callers check non-emptiness.
func (v *Vector[T]) mean() float64 {
	return cpu.Sum(v.data) / float64(len(v.data))
}

func (v *Vector[T]) nonEmpty(op string) error {
	if len(v.data) == 0 {
		return fmt.Errorf("%s: %w", op, ErrEmptyContainer)
	}
	return nil
}

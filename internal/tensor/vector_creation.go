package tensor

import (
	"fmt"
	"math"
)

// ZeroVector creates a vector of n zeros.
//
// Example:
//
//	v, _ := tensor.ZeroVector[float32](10)
func ZeroVector[T DType](n int) (*Vector[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: vector length %d is negative", ErrInvalidParameter, n)
	}
	return newVector(make([]T, n)), nil
}

// OneVector creates a vector of n ones.
func OneVector[T DType](n int) (*Vector[T], error) {
	return FullVector[T](n, 1)
}

// FullVector creates a vector of n copies of value.
func FullVector[T DType](n int, value T) (*Vector[T], error) {
	v, err := ZeroVector[T](n)
	if err != nil {
		return nil, err
	}
	for i := range v.data {
		v.data[i] = value
	}
	return v, nil
}

// RandVector creates a vector of n independent draws, uniform on [-1, 1].
// gen supplies the randomness; reuse one generator across calls.
//
// Example:
//
//	gen := tensor.NewGenerator(42)
//	a, _ := tensor.RandVector[float32](100, gen)
//	b, _ := tensor.RandVector[float32](100, gen) // continues the same stream
func RandVector[T DType](n int, gen Generator) (*Vector[T], error) {
	if gen == nil {
		return nil, fmt.Errorf("%w: nil generator", ErrInvalidParameter)
	}
	v, err := ZeroVector[T](n)
	if err != nil {
		return nil, err
	}
	for i := range v.data {
		v.data[i] = uniform[T](gen)
	}
	return v, nil
}

// RangeVector creates the stepped range start, start+step, start+2*step, ...
//
// The end is exclusive: values stop before reaching end (from below for a
// positive step, from above for a negative one). The length is
// ceil((end-start)/step), or 0 when the range runs the wrong way. Element i is
// computed as start + i*step so long ranges do not accumulate drift.
//
// Example:
//
//	v, _ := tensor.RangeVector[float64](0, 1, 0.25) // [0 0.25 0.5 0.75]
func RangeVector[T DType](start, end, step T) (*Vector[T], error) {
	s, e, d := float64(start), float64(end), float64(step)
	if d == 0 || math.IsNaN(d) || math.IsInf(d, 0) {
		return nil, fmt.Errorf("%w: range step %v", ErrInvalidParameter, step)
	}
	if math.IsNaN(s) || math.IsNaN(e) || math.IsInf(s, 0) || math.IsInf(e, 0) {
		return nil, fmt.Errorf("%w: range bounds [%v, %v)", ErrInvalidParameter, start, end)
	}

	count := math.Ceil((e - s) / d)
	if count <= 0 {
		return newVector([]T{}), nil
	}
	if count > math.MaxInt32 {
		return nil, fmt.Errorf("%w: range of %.0f elements is too large", ErrInvalidParameter, count)
	}

	data := make([]T, 0, int(count))
	for i := 0; i < int(count); i++ {
		x := T(s + float64(i)*d)
		// Rounding in T can land exactly on end; keep the bound exclusive.
		if (d > 0 && float64(x) >= e) || (d < 0 && float64(x) <= e) {
			break
		}
		data = append(data, x)
	}
	return newVector(data), nil
}

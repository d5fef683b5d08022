package tensor

import (
	"fmt"
	"slices"
)

// Vector is an immutable one-dimensional run of numeric elements.
//
// A Vector exclusively owns its storage: constructors copy their input and
// accessors hand out copies, so no two containers ever alias memory. Every
// operation returns a new Vector.
//
// Example:
//
//	v := tensor.VectorFromSlice([]float64{1, 2, 3, 4})
//	mean, _ := v.Mean() // 2.5
type Vector[T DType] struct {
	data []T
}

// newVector wraps data without copying. Only for buffers this package just allocated.
func newVector[T DType](data []T) *Vector[T] {
	return &Vector[T]{data: data}
}

// VectorFromSlice creates a Vector holding a copy of values.
func VectorFromSlice[T DType](values []T) *Vector[T] {
	data := make([]T, len(values))
	copy(data, values)
	return newVector(data)
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int {
	return len(v.data)
}

// Shape returns {Len()}.
func (v *Vector[T]) Shape() Shape {
	return Shape{len(v.data)}
}

// DType returns the element data type.
func (v *Vector[T]) DType() DataType {
	return inferDataType[T]()
}

// At returns the element at index i.
func (v *Vector[T]) At(i int) (T, error) {
	if err := checkIndex(0, i, len(v.data)); err != nil {
		var zero T
		return zero, err
	}
	return v.data[i], nil
}

// Data returns a copy of the elements.
func (v *Vector[T]) Data() []T {
	return slices.Clone(v.data)
}

// Clone creates a deep copy of the vector.
func (v *Vector[T]) Clone() *Vector[T] {
	return VectorFromSlice(v.data)
}

// Equal reports whether both vectors have the same length and elements.
func (v *Vector[T]) Equal(other *Vector[T]) bool {
	return slices.Equal(v.data, other.data)
}

// GoString returns a debugging representation.
func (v *Vector[T]) GoString() string {
	return fmt.Sprintf("Vector[%s]%s%v", v.DType(), v.Shape(), v.data)
}

// sameLen reports a ShapeError unless both vectors have equal length.
func (v *Vector[T]) sameLen(op string, other *Vector[T]) error {
	if len(v.data) != len(other.data) {
		return shapeMismatch(op, v.Shape(), other.Shape())
	}
	return nil
}

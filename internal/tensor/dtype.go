// Package tensor provides the Vector and Matrix containers and their arithmetic.
package tensor

import "reflect"

// DType is a constraint for supported element types.
// Statistics (mean, standard deviation) need real division, so only
// floating-point types are admitted.
type DType interface {
	~float32 | ~float64
}

// DataType represents runtime type information for containers.
type DataType int

// Supported data types.
const (
	Float32 DataType = iota
	Float64
)

// Size returns the byte size of the data type, or 0 for an unknown one.
func (dt DataType) Size() int {
	switch dt {
	case Float32:
		return 4
	case Float64:
		return 8
	default:
		return 0
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}

// bitSize returns 32 or 64 for use with strconv.
func (dt DataType) bitSize() int {
	return dt.Size() * 8
}

// inferDataType infers DataType from a generic type T.
// Named types are classified by their underlying kind.
func inferDataType[T DType]() DataType {
	if reflect.TypeFor[T]().Kind() == reflect.Float32 {
		return Float32
	}
	return Float64
}

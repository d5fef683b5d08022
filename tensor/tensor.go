// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/datagrid/internal/parallel"
	"github.com/born-ml/datagrid/internal/tensor"
)

// Type aliases for public API

// DType is a constraint for element types: float32, float64 and types built on them.
type DType = tensor.DType

// DataType represents the runtime element type of a container.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
)

// Shape represents container dimensions: {n} or {rows, cols}.
type Shape = tensor.Shape

// Vector is an immutable one-dimensional container.
type Vector[T DType] = tensor.Vector[T]

// Matrix is an immutable two-dimensional container.
type Matrix[T DType] = tensor.Matrix[T]

// Axis selects a reduction mode; use AxisAll or AxisCol.
type Axis = tensor.Axis

// Reduction modes.
const (
	AxisAll = tensor.AxisAll
	AxisCol = tensor.AxisCol
)

// Generator supplies uniform randomness on [0, 1).
type Generator = tensor.Generator

// ParallelConfig controls how kernels split work across goroutines.
type ParallelConfig = parallel.Config

// Errors

// Sentinel errors, matched with errors.Is.
var (
	ErrShapeMismatch    = tensor.ErrShapeMismatch
	ErrEmptyContainer   = tensor.ErrEmptyContainer
	ErrInvalidParameter = tensor.ErrInvalidParameter
	ErrIndexOutOfRange  = tensor.ErrIndexOutOfRange
	ErrDivisionByZero   = tensor.ErrDivisionByZero
)

// ShapeError describes incompatible operand shapes.
type ShapeError = tensor.ShapeError

// IndexError describes an out-of-range element access.
type IndexError = tensor.IndexError

// Vector creation

// VectorFromSlice creates a vector holding a copy of values.
func VectorFromSlice[T DType](values []T) *Vector[T] {
	return tensor.VectorFromSlice(values)
}

// ZeroVector creates a vector of n zeros.
func ZeroVector[T DType](n int) (*Vector[T], error) {
	return tensor.ZeroVector[T](n)
}

// OneVector creates a vector of n ones.
func OneVector[T DType](n int) (*Vector[T], error) {
	return tensor.OneVector[T](n)
}

// FullVector creates a vector of n copies of value.
func FullVector[T DType](n int, value T) (*Vector[T], error) {
	return tensor.FullVector(n, value)
}

// RandVector creates a vector of n uniform draws on [-1, 1] taken from gen.
//
// Example:
//
//	gen := tensor.NewGenerator(1)
//	v, err := tensor.RandVector[float64](100, gen)
func RandVector[T DType](n int, gen Generator) (*Vector[T], error) {
	return tensor.RandVector[T](n, gen)
}

// RangeVector creates start, start+step, ... stopping before end.
//
// Example:
//
//	v, _ := tensor.RangeVector[float32](0, 10, 3) // [0 3 6 9]
func RangeVector[T DType](start, end, step T) (*Vector[T], error) {
	return tensor.RangeVector(start, end, step)
}

// Matrix creation

// MatrixFromRows creates a matrix holding a copy of rows.
func MatrixFromRows[T DType](rows [][]T) (*Matrix[T], error) {
	return tensor.MatrixFromRows(rows)
}

// MatrixFromSlice creates a rows x cols matrix from row-major data.
func MatrixFromSlice[T DType](data []T, rows, cols int) (*Matrix[T], error) {
	return tensor.MatrixFromSlice(data, rows, cols)
}

// ZeroMatrix creates a rows x cols matrix of zeros.
func ZeroMatrix[T DType](rows, cols int) (*Matrix[T], error) {
	return tensor.ZeroMatrix[T](rows, cols)
}

// OneMatrix creates a rows x cols matrix of ones.
func OneMatrix[T DType](rows, cols int) (*Matrix[T], error) {
	return tensor.OneMatrix[T](rows, cols)
}

// FullMatrix creates a rows x cols matrix filled with value.
func FullMatrix[T DType](rows, cols int, value T) (*Matrix[T], error) {
	return tensor.FullMatrix(rows, cols, value)
}

// Eye creates an n x n identity matrix.
func Eye[T DType](n int) (*Matrix[T], error) {
	return tensor.Eye[T](n)
}

// RandMatrix creates a rows x cols matrix of uniform draws on [-1, 1].
func RandMatrix[T DType](rows, cols int, gen Generator) (*Matrix[T], error) {
	return tensor.RandMatrix[T](rows, cols, gen)
}

// Randomness and execution

// NewGenerator returns a seeded generator for the Rand constructors.
func NewGenerator(seed int64) Generator {
	return tensor.NewGenerator(seed)
}

// DefaultParallelConfig returns fan-out settings sized to the host CPU count.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// SetParallelConfig changes how subsequent operations split their work.
// Results are identical for every setting.
func SetParallelConfig(cfg ParallelConfig) {
	tensor.SetParallelConfig(cfg)
}

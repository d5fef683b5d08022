package tensor

import (
	"errors"
	"fmt"
)

// Error taxonomy. Every failure returned by this package wraps exactly one of
// these sentinels, so callers can branch with errors.Is.
var (
	ErrShapeMismatch    = errors.New("shape mismatch")
	ErrEmptyContainer   = errors.New("empty container")
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrIndexOutOfRange  = errors.New("index out of range")
	ErrDivisionByZero   = errors.New("division by zero")
)

// ShapeError describes operands whose dimensions are incompatible.
type ShapeError struct {
	Op    string // Operation name (e.g. "add", "matmul")
	Left  Shape  // Shape of the receiver
	Right Shape  // Shape of the other operand
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %s vs %s: %v", e.Op, e.Left, e.Right, ErrShapeMismatch)
}

// Unwrap lets errors.Is match ErrShapeMismatch.
func (e *ShapeError) Unwrap() error {
	return ErrShapeMismatch
}

// IndexError describes an access outside a container's bounds.
type IndexError struct {
	Axis  int // Dimension being indexed (0 for vectors and rows, 1 for columns)
	Index int // Requested index
	Len   int // Size of that dimension
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range for dimension %d (size %d)", e.Index, e.Axis, e.Len)
}

// Unwrap lets errors.Is match ErrIndexOutOfRange.
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

func shapeMismatch(op string, left, right Shape) error {
	return &ShapeError{Op: op, Left: left.Clone(), Right: right.Clone()}
}

func checkIndex(axis, index, n int) error {
	if index < 0 || index >= n {
		return &IndexError{Axis: axis, Index: index, Len: n}
	}
	return nil
}

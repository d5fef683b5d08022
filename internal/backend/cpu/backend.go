// Package cpu implements the pure Go compute kernels behind Vector and Matrix.
//
// Kernels operate on flat row-major slices that the caller has already
// validated and allocated. They never allocate their outputs and never
// report errors; shape and parameter checks live in the tensor package.
package cpu

import "fmt"

// Float is the element constraint accepted by every kernel.
type Float interface {
	~float32 | ~float64
}

// Op identifies an elementwise binary operation.
type Op int

// Supported elementwise operations.
const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
)

// String returns the operator name used in error messages.
func (op Op) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpMul:
		return "mul"
	case OpDiv:
		return "div"
	default:
		return fmt.Sprintf("op(%d)", int(op))
	}
}

// apply evaluates x <op> y.
func apply[T Float](op Op, x, y T) T {
	switch op {
	case OpAdd:
		return x + y
	case OpSub:
		return x - y
	case OpMul:
		return x * y
	case OpDiv:
		return x / y
	default:
		panic(fmt.Sprintf("cpu: unsupported %s", op))
	}
}

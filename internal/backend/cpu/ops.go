package cpu

import (
	"github.com/born-ml/datagrid/internal/parallel"
)

// Elementwise computes dst[i] = a[i] <op> b[i].
// Requires: len(dst) == len(a) == len(b).
func Elementwise[T Float](op Op, dst, a, b []T, cfg parallel.Config) {
	switch op {
	case OpAdd:
		parallel.ForRange(len(dst), func(s, e int) { addVectorized(dst[s:e], a[s:e], b[s:e]) }, cfg)
	case OpSub:
		parallel.ForRange(len(dst), func(s, e int) { subVectorized(dst[s:e], a[s:e], b[s:e]) }, cfg)
	case OpMul:
		parallel.ForRange(len(dst), func(s, e int) { mulVectorized(dst[s:e], a[s:e], b[s:e]) }, cfg)
	case OpDiv:
		parallel.ForRange(len(dst), func(s, e int) { divVectorized(dst[s:e], a[s:e], b[s:e]) }, cfg)
	default:
		parallel.ForRange(len(dst), func(s, e int) {
			for i := s; i < e; i++ {
				dst[i] = apply(op, a[i], b[i])
			}
		}, cfg)
	}
}

// Scalar computes dst[i] = a[i] <op> s.
// Requires: len(dst) == len(a).
func Scalar[T Float](op Op, dst, a []T, s T, cfg parallel.Config) {
	parallel.ForRange(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = apply(op, a[i], s)
		}
	}, cfg)
}

// HasZero reports whether any element of a equals zero.
func HasZero[T Float](a []T) bool {
	for _, v := range a {
		if v == 0 {
			return true
		}
	}
	return false
}

func addVectorized[T Float](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

func subVectorized[T Float](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

func mulVectorized[T Float](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

func divVectorized[T Float](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] / b[i]
	}
}

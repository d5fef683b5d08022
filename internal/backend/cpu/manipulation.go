package cpu

import (
	"github.com/born-ml/datagrid/internal/parallel"
)

// Transpose writes the transpose of the (rows, cols) buffer src into dst,
// which is laid out as (cols, rows).
// Requires: len(dst) == len(src) == rows*cols.
func Transpose[T Float](dst, src []T, rows, cols int, cfg parallel.Config) {
	parallel.For2D(rows, cols, func(r, c int) {
		dst[c*rows+r] = src[r*cols+c]
	}, cfg)
}

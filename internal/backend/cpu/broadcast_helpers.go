package cpu

import (
	"github.com/born-ml/datagrid/internal/parallel"
)

// ColumnBroadcast computes dst[r*cols+c] = a[r*cols+c] <op> row[c].
//
// The row operand has stride 0 along the row axis: the same cols-wide run is
// reused for every row of a.
// Requires: len(dst) == len(a), len(a) % cols == 0, len(row) == cols.
func ColumnBroadcast[T Float](op Op, dst, a, row []T, cols int, cfg parallel.Config) {
	rows := len(a) / cols
	parallel.ForRange(rows, func(start, end int) {
		for r := start; r < end; r++ {
			off := r * cols
			for c := 0; c < cols; c++ {
				dst[off+c] = apply(op, a[off+c], row[c])
			}
		}
	}, rowConfig(cfg, cols))
}

// rowConfig rescales a per-element chunk threshold into rows of width cols.
func rowConfig(cfg parallel.Config, cols int) parallel.Config {
	if cols > 1 {
		cfg.MinChunkSize = max(1, cfg.MinChunkSize/cols)
	}
	return cfg
}

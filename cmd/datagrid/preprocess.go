package main

import (
	"context"
	"fmt"
	"io"

	"github.com/born-ml/datagrid/internal/config"
	"github.com/born-ml/datagrid/tensor"
	"k8s.io/klog/v2"
)

// preprocess runs the vector and per-column normalization stages and writes
// a human-readable report to out.
func preprocess[T tensor.DType](ctx context.Context, cfg config.Config, gen tensor.Generator, out io.Writer) error {
	log := klog.FromContext(ctx)
	w := &reportWriter{w: out}

	vec, err := tensor.RandVector[T](cfg.Length, gen)
	if err != nil {
		return fmt.Errorf("drawing samples: %w", err)
	}
	w.printf("Vector : %s\n", vec)

	normVec, err := vec.Normalize()
	if err != nil {
		return fmt.Errorf("normalizing vector: %w", err)
	}
	mean, err := normVec.Mean()
	if err != nil {
		return fmt.Errorf("normalized mean: %w", err)
	}
	std, err := normVec.Std()
	if err != nil {
		return fmt.Errorf("normalized std: %w", err)
	}
	w.printf("Normalized Vector Mean : %v\n\n", mean)
	w.printf("Normalized Vector STD : %v\n\n", std)
	log.V(1).Info("Normalized vector", "mean", mean, "std", std)

	mat, err := vec.Batch(cfg.BatchSize)
	if err != nil {
		return fmt.Errorf("batching vector: %w", err)
	}
	if dropped := cfg.Length % cfg.BatchSize; dropped > 0 {
		log.Info("Batching dropped trailing samples", "dropped", dropped)
	}
	w.printf("Matrix : \n%s\n", mat)

	normMat, err := mat.NormalizeColumns()
	if err != nil {
		return fmt.Errorf("normalizing columns: %w", err)
	}
	colMean, err := normMat.Mean(tensor.AxisCol)
	if err != nil {
		return fmt.Errorf("normalized column mean: %w", err)
	}
	colStd, err := normMat.Std(tensor.AxisCol)
	if err != nil {
		return fmt.Errorf("normalized column std: %w", err)
	}
	w.printf("Normalized Matrix Mean : %s\n", colMean)
	w.printf("Normalized Matrix STD : %s\n", colStd)
	log.V(1).Info("Normalized matrix", "rows", normMat.Rows(), "cols", normMat.Cols())

	return w.err
}

// reportWriter keeps the first write error so the report code stays linear.
type reportWriter struct {
	w   io.Writer
	err error
}

func (r *reportWriter) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}

// Package main provides the datagrid CLI.
//
// It draws a random dataset, standardizes it as a flat vector, reshapes it
// into samples x features, standardizes each feature column and prints every
// stage.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/born-ml/datagrid/internal/config"
	"github.com/born-ml/datagrid/tensor"
	"k8s.io/klog/v2"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("datagrid %s\n", version)
		return
	}

	ctx := context.Background()
	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("datagrid", flag.ContinueOnError)
	klog.InitFlags(fs)

	configPath := fs.String("config", "", "path to an HCL run configuration")
	length := fs.Int("length", 0, "number of samples to draw (overrides config)")
	batch := fs.Int("batch", 0, "row width when batching (overrides config)")
	seed := fs.Int64("seed", 0, "generator seed (overrides config)")
	workers := fs.Int("workers", 0, "kernel goroutines, 0 = one per CPU (overrides config)")
	dtype := fs.String("dtype", "", "element type: float32 or float64 (overrides config)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	defer klog.Flush()

	log := klog.FromContext(ctx)

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(ctx, *configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	// Only flags given on the command line override the file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "length":
			cfg.Length = *length
		case "batch":
			cfg.BatchSize = *batch
		case "seed":
			cfg.Seed = *seed
		case "workers":
			cfg.Workers = *workers
		case "dtype":
			cfg.DType = *dtype
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	tensor.SetParallelConfig(cfg.Parallel())
	log.Info("Starting preprocessing run", "length", cfg.Length, "batchSize", cfg.BatchSize, "seed", cfg.Seed, "dtype", cfg.DType)

	gen := tensor.NewGenerator(cfg.Seed)
	switch cfg.DType {
	case config.DTypeFloat64:
		return preprocess[float64](ctx, cfg, gen, out)
	default:
		return preprocess[float32](ctx, cfg, gen, out)
	}
}

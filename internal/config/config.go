// Package config loads the preprocessing run settings for the datagrid command.
//
// Settings come from an optional HCL file:
//
//	length     = 100
//	batch_size = 10
//	seed       = 7
//	workers    = cpus
//	dtype      = "float32"
//
// The variable cpus evaluates to the host CPU count.
package config

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/born-ml/datagrid/internal/parallel"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"k8s.io/klog/v2"
)

// Supported element types.
const (
	DTypeFloat32 = "float32"
	DTypeFloat64 = "float64"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config describes one preprocessing run.
type Config struct {
	Length    int    `hcl:"length,optional"`     // Number of random samples to draw.
	BatchSize int    `hcl:"batch_size,optional"` // Row width when reshaping into a matrix.
	Seed      int64  `hcl:"seed,optional"`       // Generator seed.
	Workers   int    `hcl:"workers,optional"`    // Kernel goroutines; 0 means one per CPU.
	DType     string `hcl:"dtype,optional"`      // "float32" or "float64".
}

// Default returns the settings of the reference run: 100 samples in rows of 10.
func Default() Config {
	return Config{
		Length:    100,
		BatchSize: 10,
		Seed:      1,
		Workers:   0,
		DType:     DTypeFloat32,
	}
}

// Load reads an HCL file over the defaults. Attributes absent from the file
// keep their default values.
func Load(ctx context.Context, path string) (Config, error) {
	log := klog.FromContext(ctx)
	log.V(2).Info("Decoding config file", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	cfg, err := decode(file.Body)
	if err != nil {
		return Config{}, fmt.Errorf("failed to decode HCL file %s: %w", path, err)
	}

	log.V(2).Info("Decoded config file", "path", path, "length", cfg.Length, "batchSize", cfg.BatchSize)
	return cfg, nil
}

// Parse decodes HCL source held in memory; filename is used in diagnostics.
func Parse(src []byte, filename string) (Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("failed to parse HCL %s: %w", filename, diags)
	}
	return decode(file.Body)
}

func decode(body hcl.Body) (Config, error) {
	cfg := Default()
	if diags := gohcl.DecodeBody(body, evalContext(), &cfg); diags.HasErrors() {
		return Config{}, diags
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// evalContext exposes host facts to config expressions.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"cpus": cty.NumberIntVal(int64(runtime.NumCPU())),
		},
	}
}

// Validate checks that the run can be executed.
func (c Config) Validate() error {
	switch {
	case c.Length < 1:
		return fmt.Errorf("%w: length must be >= 1, got %d", ErrInvalidConfig, c.Length)
	case c.BatchSize < 1 || c.BatchSize > c.Length:
		return fmt.Errorf("%w: batch_size must be in [1, %d], got %d", ErrInvalidConfig, c.Length, c.BatchSize)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers must be >= 0, got %d", ErrInvalidConfig, c.Workers)
	case c.DType != DTypeFloat32 && c.DType != DTypeFloat64:
		return fmt.Errorf("%w: dtype must be %q or %q, got %q", ErrInvalidConfig, DTypeFloat32, DTypeFloat64, c.DType)
	}
	return nil
}

// Parallel converts Workers into kernel fan-out settings.
func (c Config) Parallel() parallel.Config {
	cfg := parallel.DefaultConfig()
	switch {
	case c.Workers == 1:
		return parallel.Sequential()
	case c.Workers > 1:
		cfg.Enabled = true
		cfg.NumWorkers = c.Workers
	}
	return cfg
}

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/born-ml/datagrid/internal/config"
	"github.com/born-ml/datagrid/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Defaults(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), nil, &out))

	report := out.String()
	assert.Contains(t, report, "Vector : ")
	assert.Contains(t, report, "Normalized Vector Mean : ")
	assert.Contains(t, report, "Matrix : \n")
	assert.Contains(t, report, "Normalized Matrix STD : ")

	// 100 samples in rows of 10: the matrix block has 10 lines of 10 values.
	block := strings.SplitN(report, "Matrix : \n", 2)[1]
	lines := strings.Split(block, "\n")[:10]
	for _, line := range lines {
		assert.Len(t, strings.Fields(line), 10)
	}
}

func TestRun_Deterministic(t *testing.T) {
	var a, b bytes.Buffer
	args := []string{"-seed", "5", "-length", "12", "-batch", "4"}
	require.NoError(t, run(context.Background(), args, &a))
	require.NoError(t, run(context.Background(), args, &b))
	assert.Equal(t, a.String(), b.String())
}

func TestRun_ConfigFileAndFlagOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.hcl")
	src := "length = 20\nbatch_size = 5\ndtype = \"float64\"\nworkers = 1\n"
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-config", path, "-batch", "4"}, &out))

	block := strings.SplitN(out.String(), "Matrix : \n", 2)[1]
	first := strings.Split(block, "\n")[0]
	assert.Len(t, strings.Fields(first), 4)
}

func TestRun_InvalidSettings(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), []string{"-length", "5", "-batch", "6"}, &out)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	err = run(context.Background(), []string{"-config", filepath.Join(t.TempDir(), "nope.hcl")}, &out)
	assert.Error(t, err)
}

func TestPreprocess_SingleSampleReportsZeroDeviation(t *testing.T) {
	cfg := config.Default()
	cfg.Length = 1
	cfg.BatchSize = 1

	var out bytes.Buffer
	err := preprocess[float64](context.Background(), cfg, tensor.NewGenerator(1), &out)
	assert.ErrorIs(t, err, tensor.ErrDivisionByZero)
}

func reportValue(t *testing.T, report, label string) float64 {
	t.Helper()
	rest := strings.SplitN(report, label, 2)
	require.Len(t, rest, 2, "missing %q", label)
	field := strings.Fields(rest[1])[0]
	v, err := strconv.ParseFloat(field, 64)
	require.NoError(t, err)
	return v
}

func TestPreprocess_ReportsNormalizedMoments(t *testing.T) {
	cfg := config.Default()
	cfg.Length = 40
	cfg.BatchSize = 8

	var out bytes.Buffer
	require.NoError(t, preprocess[float64](context.Background(), cfg, tensor.NewGenerator(3), &out))

	report := out.String()
	assert.InDelta(t, 0, reportValue(t, report, "Normalized Vector Mean : "), 1e-9)
	assert.InDelta(t, 1, reportValue(t, report, "Normalized Vector STD : "), 1e-9)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, os.ErrClosed }

func TestPreprocess_WriteError(t *testing.T) {
	cfg := config.Default()
	err := preprocess[float32](context.Background(), cfg, tensor.NewGenerator(1), failingWriter{})
	assert.ErrorIs(t, err, os.ErrClosed)
}

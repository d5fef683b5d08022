// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"errors"
	"testing"

	"github.com/born-ml/datagrid/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicAPI_NormalizationPipeline(t *testing.T) {
	gen := tensor.NewGenerator(42)

	v, err := tensor.RandVector[float32](100, gen)
	require.NoError(t, err)

	norm, err := v.Normalize()
	require.NoError(t, err)
	mean, _ := norm.Mean()
	std, _ := norm.Std()
	assert.InDelta(t, 0, mean, 1e-5)
	assert.InDelta(t, 1, std, 1e-5)

	m, err := v.Batch(10)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{10, 10}, m.Shape())

	colMean, err := m.Mean(tensor.AxisCol)
	require.NoError(t, err)
	colStd, err := m.Std(tensor.AxisCol)
	require.NoError(t, err)
	centered, err := m.SubVector(colMean)
	require.NoError(t, err)
	scaled, err := centered.DivVector(colStd)
	require.NoError(t, err)

	gotMean, _ := scaled.Mean(tensor.AxisCol)
	gotStd, _ := scaled.Std(tensor.AxisCol)
	for c := 0; c < 10; c++ {
		mu, _ := gotMean.At(c)
		sd, _ := gotStd.At(c)
		assert.InDelta(t, 0, mu, 1e-5, "column %d", c)
		assert.InDelta(t, 1, sd, 1e-5, "column %d", c)
	}

	viaHelper, err := m.NormalizeColumns()
	require.NoError(t, err)
	assert.InDeltaSlice(t, scaled.Data(), viaHelper.Data(), 1e-6)
}

func TestPublicAPI_ErrorTaxonomy(t *testing.T) {
	a := tensor.VectorFromSlice([]float64{1, 2, 3})
	b := tensor.VectorFromSlice([]float64{1, 2})

	_, err := a.Add(b)
	var shapeErr *tensor.ShapeError
	assert.True(t, errors.As(err, &shapeErr))
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)

	_, err = tensor.VectorFromSlice([]float64{}).Mean()
	assert.ErrorIs(t, err, tensor.ErrEmptyContainer)

	_, err = tensor.RangeVector[float64](0, 1, 0)
	assert.ErrorIs(t, err, tensor.ErrInvalidParameter)

	_, err = a.At(3)
	var idxErr *tensor.IndexError
	assert.True(t, errors.As(err, &idxErr))
	assert.ErrorIs(t, err, tensor.ErrIndexOutOfRange)

	_, err = a.DivScalar(0)
	assert.ErrorIs(t, err, tensor.ErrDivisionByZero)
}

func TestPublicAPI_Constructors(t *testing.T) {
	id, err := tensor.Eye[float64](2)
	require.NoError(t, err)
	m, err := tensor.MatrixFromSlice([]float64{1, 2, 3, 4}, 2, 2)
	require.NoError(t, err)

	prod, err := m.MatMul(id)
	require.NoError(t, err)
	assert.True(t, prod.Equal(m))

	r, err := tensor.RangeVector[float64](1, 5, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4}, r.Data())

	z, err := tensor.ZeroMatrix[float32](1, 3)
	require.NoError(t, err)
	assert.Equal(t, tensor.Float32, z.DType())
}

func TestPublicAPI_ParallelConfig(t *testing.T) {
	t.Cleanup(func() { tensor.SetParallelConfig(tensor.DefaultParallelConfig()) })

	a, err := tensor.RandMatrix[float64](20, 30, tensor.NewGenerator(1))
	require.NoError(t, err)

	tensor.SetParallelConfig(tensor.ParallelConfig{Enabled: false})
	seq, err := a.MatMul(a.Transpose())
	require.NoError(t, err)

	tensor.SetParallelConfig(tensor.ParallelConfig{Enabled: true, NumWorkers: 3, MinChunkSize: 1})
	par, err := a.MatMul(a.Transpose())
	require.NoError(t, err)

	assert.True(t, seq.Equal(par))
}

package cpu

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSum(t *testing.T) {
	assert.InDelta(t, 10.0, Sum([]float32{1, 2, 3, 4}), 1e-9)
	assert.InDelta(t, -1.5, Sum([]float64{0.5, -2}), 1e-12)
}

func TestSumSquaredDiff(t *testing.T) {
	// [1,2,3,4] around 2.5: 2.25+0.25+0.25+2.25
	assert.InDelta(t, 5.0, SumSquaredDiff([]float64{1, 2, 3, 4}, 2.5), 1e-12)
}

func TestMinMax(t *testing.T) {
	a := []float64{3, -1, 7, 7, -1}
	assert.Equal(t, -1.0, Min(a))
	assert.Equal(t, 7.0, Max(a))
}

func TestArgmax_FirstIndexOnTies(t *testing.T) {
	assert.Equal(t, 2, Argmax([]float32{3, -1, 7, 7, 2}))
	assert.Equal(t, 0, Argmax([]float32{5, 5, 5}))
	assert.Equal(t, 0, Argmax([]float64{1}))
}

func TestArgmin_FirstIndexOnTies(t *testing.T) {
	assert.Equal(t, 1, Argmin([]float64{3, -1, 7, -1}))
}

func TestSumCols(t *testing.T) {
	// [[1,2,3],[4,5,6]]
	a := []float32{1, 2, 3, 4, 5, 6}
	dst := make([]float64, 3)
	SumCols(dst, a, 3)
	assert.Equal(t, []float64{5, 7, 9}, dst)
}

func TestSumSquaredDiffCols(t *testing.T) {
	// [[1,2],[3,4]] with column means [2,3]
	a := []float64{1, 2, 3, 4}
	dst := make([]float64, 2)
	SumSquaredDiffCols(dst, a, []float64{2, 3}, 2)
	assert.Equal(t, []float64{2, 2}, dst)
}

func TestMinMaxCols(t *testing.T) {
	a := []float64{
		1, 9, -3,
		4, 0, 2,
		-2, 5, 8,
	}
	minDst := make([]float64, 3)
	maxDst := make([]float64, 3)
	MinCols(minDst, a, 3)
	MaxCols(maxDst, a, 3)
	assert.Equal(t, []float64{-2, 0, -3}, minDst)
	assert.Equal(t, []float64{4, 9, 8}, maxDst)
}

func TestPopulationStd(t *testing.T) {
	assert.InDelta(t, math.Sqrt(1.25), PopulationStd(5, 4), 1e-12)
	assert.Equal(t, 0.0, PopulationStd(0, 3))
}

package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatch(t *testing.T) {
	v := VectorFromSlice([]float64{1, 2, 3, 4})

	m, err := v.Batch(2)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, m.ToRows())

	whole, err := v.Batch(4)
	require.NoError(t, err)
	assert.Equal(t, Shape{1, 4}, whole.Shape())

	single, err := v.Batch(1)
	require.NoError(t, err)
	assert.Equal(t, Shape{4, 1}, single.Shape())
}

func TestBatch_DropsRemainder(t *testing.T) {
	v := VectorFromSlice([]float64{1, 2, 3, 4, 5, 6, 7})

	m, err := v.Batch(3)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, m.ToRows())
}

func TestBatch_InvalidSize(t *testing.T) {
	v := VectorFromSlice([]float64{1, 2, 3})

	for _, b := range []int{0, -1, 4} {
		_, err := v.Batch(b)
		assert.ErrorIs(t, err, ErrInvalidParameter, "batch size %d", b)
	}

	_, err := VectorFromSlice([]float64{}).Batch(1)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestBatch_DoesNotAliasSource(t *testing.T) {
	v := VectorFromSlice([]float64{1, 2, 3, 4})
	m, _ := v.Batch(2)

	_ = m.AddScalar(10)
	flat := m.Flatten()

	assert.True(t, flat.Equal(v))
}

func TestFlatten(t *testing.T) {
	m, err := MatrixFromRows([][]float32{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6}, m.Flatten().Data())
}

func TestTranspose(t *testing.T) {
	m, err := MatrixFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 3}, {2, 4}}, m.Transpose().ToRows())

	rect, err := MatrixFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	rt := rect.T()
	assert.Equal(t, Shape{3, 2}, rt.Shape())
	assert.Equal(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, rt.ToRows())

	for i := 0; i < rect.Rows(); i++ {
		for j := 0; j < rect.Cols(); j++ {
			want, _ := rect.At(i, j)
			got, _ := rt.At(j, i)
			assert.Equal(t, want, got)
		}
	}
}

// SPDX-License-Identifier: MIT

package dataset_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvgp/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFrame_Shape(t *testing.T) {
	f, err := dataset.NewFrame(3, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, f.Rows())
	assert.Equal(t, 2, f.Cols())
	assert.Equal(t, []float64{0, 0, 0}, f.Column(1))

	_, err = dataset.NewFrame(0, 2)
	assert.ErrorIs(t, err, dataset.ErrBadShape)
	_, err = dataset.NewFrame(2, -1)
	assert.ErrorIs(t, err, dataset.ErrBadShape)

	// Zero feature columns is a valid frame.
	f, err = dataset.NewFrame(4, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, f.Cols())
}

func TestFrame_ColumnMajor(t *testing.T) {
	f, err := dataset.FromRows([][]float64{
		{1, 10},
		{2, 20},
		{3, 30},
	})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, f.Column(0))
	assert.Equal(t, []float64{10, 20, 30}, f.Column(1))

	v, err := f.At(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 30.0, v)

	g, err := dataset.FromColumns([][]float64{{1, 2, 3}, {10, 20, 30}})
	require.NoError(t, err)
	assert.Equal(t, f, g)
	assert.Equal(t, "[1, 10]\n[2, 20]\n[3, 30]\n", g.String())
}

func TestFrame_Errors(t *testing.T) {
	f, err := dataset.NewFrame(2, 2)
	require.NoError(t, err)

	_, err = f.At(2, 0)
	assert.ErrorIs(t, err, dataset.ErrOutOfRange)
	assert.ErrorIs(t, f.Set(0, -1, 1), dataset.ErrOutOfRange)
	assert.ErrorIs(t, f.Set(0, 0, math.NaN()), dataset.ErrNaNInf)

	_, err = dataset.FromColumns([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, dataset.ErrDimensionMismatch)
	_, err = dataset.FromColumns([][]float64{{1, math.Inf(1)}})
	assert.ErrorIs(t, err, dataset.ErrNaNInf)
	_, err = dataset.FromColumns(nil)
	assert.ErrorIs(t, err, dataset.ErrBadShape)
	_, err = dataset.FromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, dataset.ErrDimensionMismatch)
}

func TestFrame_CloneIsDeep(t *testing.T) {
	f, err := dataset.FromColumns([][]float64{{1, 2}})
	require.NoError(t, err)
	var c = f.Clone()
	require.NoError(t, c.Set(0, 0, 9))
	assert.Equal(t, []float64{1, 2}, f.Column(0))
	assert.Equal(t, []float64{9, 2}, c.Column(0))
}

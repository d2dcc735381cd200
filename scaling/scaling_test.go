package scaling_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/chandupentela72/l1l2py/scaling"
)

// TestCenter_Columns verifies column-wise centering and the returned means.
func TestCenter_Columns(t *testing.T) {
	m := mat.NewDense(2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	})

	centered, means := scaling.Center(m)

	assert.Equal(t, []float64{2.5, 3.5, 4.5}, means)
	assert.Equal(t, []float64{-1.5, -1.5, -1.5}, mat.Row(nil, 0, centered))
	assert.Equal(t, []float64{1.5, 1.5, 1.5}, mat.Row(nil, 1, centered))
	assert.Equal(t, 1.0, m.At(0, 0), "input must not be mutated")
}

// TestCenterWith_AppliesTrainingMeans verifies that the secondary matrix is
// shifted by the primary's means, not its own.
func TestCenterWith_AppliesTrainingMeans(t *testing.T) {
	train := mat.NewDense(2, 2, []float64{
		0, 10,
		2, 14,
	})
	test := mat.NewDense(1, 2, []float64{5, 20})

	_, testC, means, err := scaling.CenterWith(train, test)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 12}, means)
	assert.Equal(t, []float64{4, 8}, mat.Row(nil, 0, testC))
}

// TestStandardize_UnitVariance verifies zero-mean unit-variance columns
// with the sample (n−1) divisor.
func TestStandardize_UnitVariance(t *testing.T) {
	m := mat.NewDense(2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	})

	std, means, stds, err := scaling.Standardize(m)
	require.NoError(t, err)

	assert.Equal(t, []float64{2.5, 3.5, 4.5}, means)
	for _, sd := range stds {
		assert.InDelta(t, 3/math.Sqrt2, sd, 1e-12, "sample std of {1,4} etc.")
	}
	inv := 1 / math.Sqrt2
	assert.InDeltaSlice(t, []float64{-inv, -inv, -inv}, mat.Row(nil, 0, std), 1e-12)
	assert.InDeltaSlice(t, []float64{inv, inv, inv}, mat.Row(nil, 1, std), 1e-12)
}

// TestStandardize_ZeroVariance verifies the explicit domain error for
// constant columns.
func TestStandardize_ZeroVariance(t *testing.T) {
	m := mat.NewDense(3, 2, []float64{
		1, 7,
		2, 7,
		3, 7,
	})

	_, _, _, err := scaling.Standardize(m)
	assert.ErrorIs(t, err, scaling.ErrZeroVariance)
}

// TestStandardizeWith_ColumnMismatch verifies secondary-shape validation.
func TestStandardizeWith_ColumnMismatch(t *testing.T) {
	a := mat.NewDense(2, 3, nil)
	b := mat.NewDense(2, 2, nil)

	_, _, _, _, err := scaling.StandardizeWith(a, b)
	assert.ErrorIs(t, err, scaling.ErrDimensionMismatch)
}

// TestCenterVec verifies response-vector centering.
func TestCenterVec(t *testing.T) {
	got, mean := scaling.CenterVec([]float64{1, 2, 3})
	assert.Equal(t, 2.0, mean)
	assert.Equal(t, []float64{-1, 0, 1}, got)
}

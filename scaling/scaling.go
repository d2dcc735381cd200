package scaling

import (
	"errors"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Sentinel errors returned by the scaling transforms.
var (
	// ErrDimensionMismatch indicates that the secondary matrix does not
	// share the primary's column count.
	ErrDimensionMismatch = errors.New("scaling: matrices must have the same number of columns")

	// ErrZeroVariance indicates a column whose sample standard deviation is
	// zero (or undefined, for a single-row input), which cannot be scaled
	// to unit variance.
	ErrZeroVariance = errors.New("scaling: column has zero variance")
)

// Center returns a copy of m with every column shifted to zero mean, along
// with the column means.
func Center(m *mat.Dense) (*mat.Dense, []float64) {
	means := columnMeans(m)
	return shiftScale(m, means, nil), means
}

// CenterWith centers m and applies m's column means to other, returning
// both centered copies and the means. The second matrix must share m's
// column count.
func CenterWith(m, other *mat.Dense) (*mat.Dense, *mat.Dense, []float64, error) {
	if err := sameColumns(m, other); err != nil {
		return nil, nil, nil, err
	}
	means := columnMeans(m)
	return shiftScale(m, means, nil), shiftScale(other, means, nil), means, nil
}

// CenterVec returns a copy of y shifted to zero mean, along with the mean.
func CenterVec(y []float64) ([]float64, float64) {
	mean := stat.Mean(y, nil)
	out := make([]float64, len(y))
	for i, v := range y {
		out[i] = v - mean
	}
	return out, mean
}

// Standardize returns a copy of m with every column shifted to zero mean
// and scaled to unit sample standard deviation, along with the means and
// standard deviations. Columns with zero variance yield ErrZeroVariance.
func Standardize(m *mat.Dense) (*mat.Dense, []float64, []float64, error) {
	means := columnMeans(m)
	stds, err := columnStdDevs(m)
	if err != nil {
		return nil, nil, nil, err
	}
	return shiftScale(m, means, stds), means, stds, nil
}

// StandardizeWith standardizes m and applies m's factors to other,
// returning both transformed copies plus the means and standard
// deviations. The second matrix must share m's column count.
func StandardizeWith(m, other *mat.Dense) (*mat.Dense, *mat.Dense, []float64, []float64, error) {
	if err := sameColumns(m, other); err != nil {
		return nil, nil, nil, nil, err
	}
	means := columnMeans(m)
	stds, err := columnStdDevs(m)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	return shiftScale(m, means, stds), shiftScale(other, means, stds), means, stds, nil
}

func sameColumns(a, b *mat.Dense) error {
	_, ca := a.Dims()
	_, cb := b.Dims()
	if ca != cb {
		return ErrDimensionMismatch
	}
	return nil
}

func columnMeans(m *mat.Dense) []float64 {
	rows, cols := m.Dims()
	col := make([]float64, rows)
	means := make([]float64, cols)
	for j := 0; j < cols; j++ {
		mat.Col(col, j, m)
		means[j] = stat.Mean(col, nil)
	}
	return means
}

// columnStdDevs computes per-column sample standard deviations (n−1
// divisor, matching stat.StdDev).
func columnStdDevs(m *mat.Dense) ([]float64, error) {
	rows, cols := m.Dims()
	col := make([]float64, rows)
	stds := make([]float64, cols)
	for j := 0; j < cols; j++ {
		mat.Col(col, j, m)
		sd := stat.StdDev(col, nil)
		if !(sd > 0) {
			return nil, ErrZeroVariance
		}
		stds[j] = sd
	}
	return stds, nil
}

// shiftScale returns a copy of m with column j shifted by means[j] and,
// when stds is non-nil, divided by stds[j].
func shiftScale(m *mat.Dense, means, stds []float64) *mat.Dense {
	rows, cols := m.Dims()
	out := mat.NewDense(rows, cols, nil)
	for j := 0; j < cols; j++ {
		scale := 1.0
		if stds != nil {
			scale = 1 / stds[j]
		}
		for i := 0; i < rows; i++ {
			out.Set(i, j, (m.At(i, j)-means[j])*scale)
		}
	}
	return out
}

package l1l2_test

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// testSeed fixes every dataset below; same seed ⇒ identical data across runs.
const testSeed int64 = 42

// testDataset builds the canonical 30×40 regression problem used across the
// solver tests: standard-normal design, response generated by a sparse
// two-feature model plus noise, so feature selection is meaningful.
func testDataset() (*mat.Dense, *mat.VecDense) {
	const n, d = 30, 40
	rng := rand.New(rand.NewSource(testSeed))

	data := make([]float64, n*d)
	for i := range data {
		data[i] = rng.NormFloat64()
	}
	x := mat.NewDense(n, d, data)

	y := make([]float64, n)
	for i := 0; i < n; i++ {
		y[i] = 2*x.At(i, 0) - 1.5*x.At(i, 3) + 0.5*rng.NormFloat64()
	}

	return x, mat.NewVecDense(n, y)
}

// tallDataset returns an N > D problem (the transposed regime of
// testDataset's shape) with a matching 40-sample response.
func tallDataset() (*mat.Dense, *mat.VecDense) {
	const n, d = 40, 30
	rng := rand.New(rand.NewSource(testSeed + 1))

	data := make([]float64, n*d)
	for i := range data {
		data[i] = rng.NormFloat64()
	}
	x := mat.NewDense(n, d, data)

	y := make([]float64, n)
	for i := 0; i < n; i++ {
		y[i] = x.At(i, 1) - 0.5*x.At(i, 7) + 0.25*rng.NormFloat64()
	}

	return x, mat.NewVecDense(n, y)
}

// nonzeroCount counts the coefficients of v that are exactly non-zero.
// Soft-thresholding produces exact zeros, so no epsilon is needed.
func nonzeroCount(v *mat.VecDense) int {
	count := 0
	for i := 0; i < v.Len(); i++ {
		if v.AtVec(i) != 0 {
			count++
		}
	}
	return count
}

// vecData copies the coefficients of v into a plain slice for
// assert.InDeltaSlice comparisons.
func vecData(v *mat.VecDense) []float64 {
	out := make([]float64, v.Len())
	for i := range out {
		out[i] = v.AtVec(i)
	}
	return out
}

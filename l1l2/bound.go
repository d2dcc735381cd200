package l1l2

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// L1Bound returns τ_max = 2·‖XᵗY‖∞ / N, the minimal ℓ1 penalty at or above
// which the elastic-net solution is the all-zero vector.
//
// The value is the point at which the very first soft-threshold step from a
// zero start zeroes every coordinate: Regularization with tau = τ_max
// yields an all-zero β, while tau slightly below τ_max keeps at least one
// coefficient alive. Callers use it to choose the upper end of a Path
// sweep.
//
// Complexity: a single O(N·D) pass, no iteration.
//
// Errors:
//   - ErrEmptyInput        — X or Y has a zero dimension.
//   - ErrDimensionMismatch — len(Y) ≠ N.
func L1Bound(x mat.Matrix, y mat.Vector) (float64, error) {
	n, _, err := checkProblem(x, y)
	if err != nil {
		return 0, err
	}

	var corr mat.VecDense
	corr.MulVec(x.T(), y)

	return 2 * floats.Norm(corr.RawVector().Data, math.Inf(1)) / float64(n), nil
}

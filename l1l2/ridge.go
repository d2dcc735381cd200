package l1l2

import (
	"gonum.org/v1/gonum/mat"
)

// RidgeRegression — closed-form ℓ2-penalized least squares.
//
// Description:
//
//	Returns the D×1 coefficient vector β minimizing
//
//	    ‖Y − Xβ‖² + penalty·N·‖β‖²
//
//	via the normal equations. The penalty is scaled by the sample count so
//	that penalty strengths are comparable across datasets of different
//	size, matching the convention used by Regularization.
//
// Algorithm Outline:
//  1. If N ≥ D, solve the primal system (XᵗX + penalty·N·I)β = XᵗY, a
//     single D×D factorization.
//  2. If D > N, solve the dual system (XXᵗ + penalty·N·I)α = Y and map
//     back with β = Xᵗα (the "kernel trick" for wide matrices), which is
//     mathematically identical but factors only an N×N matrix.
//  3. Either system is solved through a rank-aware SVD pseudo-inverse, so
//     penalty = 0 on a singular system still returns the minimum-norm
//     least-squares solution instead of failing.
//
// Both branches produce numerically equivalent β; the branch is an
// internal performance choice, not a behavioral one.
//
// Complexity:
//
//	Time   = O(N·D·min(N,D)) for the Gram product plus the SVD
//	Memory = O(min(N,D)²)
//
// Errors:
//   - ErrEmptyInput         — X or Y has a zero dimension.
//   - ErrDimensionMismatch  — len(Y) ≠ N.
//   - ErrBadPenalty         — penalty < 0.
//   - ErrFactorization      — the SVD failed to converge.
func RidgeRegression(x mat.Matrix, y mat.Vector, penalty float64) (*mat.VecDense, error) {
	n, d, err := checkProblem(x, y)
	if err != nil {
		return nil, err
	}
	if penalty < 0 {
		return nil, ErrBadPenalty
	}

	shift := penalty * float64(n)

	if n >= d {
		// Primal: (XᵗX + penalty·N·I) β = XᵗY
		var gram mat.Dense
		gram.Mul(x.T(), x)
		addDiagonal(&gram, shift)

		var xty mat.VecDense
		xty.MulVec(x.T(), y)

		return pinvSolveVec(&gram, &xty, d)
	}

	// Dual: (XXᵗ + penalty·N·I) α = Y, then β = Xᵗα
	var gram mat.Dense
	gram.Mul(x, x.T())
	addDiagonal(&gram, shift)

	alpha, err := pinvSolveVec(&gram, y, n)
	if err != nil {
		return nil, err
	}

	beta := mat.NewVecDense(d, nil)
	beta.MulVec(x.T(), alpha)

	return beta, nil
}

// addDiagonal adds shift to every diagonal entry of the square matrix a.
func addDiagonal(a *mat.Dense, shift float64) {
	if shift == 0 {
		return
	}
	r, _ := a.Dims()
	for i := 0; i < r; i++ {
		a.Set(i, i, a.At(i, i)+shift)
	}
}

// pinvSolveVec solves a·x = b for a square symmetric a through the SVD
// pseudo-inverse: x = V·Σ⁺·Uᵗ·b. Singular values at or below the rank
// cutoff dim·machEps·σ₁ are dropped, which yields the minimum-norm
// solution whenever a is singular or ill-conditioned.
func pinvSolveVec(a *mat.Dense, b mat.Vector, dim int) (*mat.VecDense, error) {
	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDThin) {
		return nil, ErrFactorization
	}
	s := svd.Values(nil)

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	cutoff := float64(dim) * machEps * s[0]

	// w = Σ⁺·Uᵗ·b
	w := mat.NewVecDense(len(s), nil)
	for j := range s {
		if s[j] <= cutoff {
			continue
		}
		var dot float64
		for i := 0; i < dim; i++ {
			dot += u.At(i, j) * b.AtVec(i)
		}
		w.SetVec(j, dot/s[j])
	}

	x := mat.NewVecDense(dim, nil)
	x.MulVec(&v, w)

	return x, nil
}

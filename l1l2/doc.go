// Package l1l2 solves ℓ1ℓ2 (elastic-net) regularized least-squares
// problems and sweeps penalty paths of increasingly sparse solutions.
//
// 🚀 What does it solve?
//
//	Given a design matrix X (N samples × D features) and a response
//	vector Y, the package minimizes
//
//	    (1/N)·‖Y − Xβ‖² + μ·‖β‖² + τ·‖β‖₁
//
//	where μ ≥ 0 is the ridge (shrinkage) strength and τ ≥ 0 the lasso
//	(sparsity) strength. τ = 0 degenerates to pure ridge regression.
//
// ✨ Key features:
//   - RidgeRegression: closed form via the normal equations, choosing the
//     primal (D×D) or dual "kernel trick" (N×N) system by shape; singular
//     systems degrade gracefully to the minimum-norm solution
//   - Regularization: proximal-gradient (iterative soft-thresholding)
//     solver with warm starts, a hard iteration cap, and a pluggable
//     fixed-Lipschitz or adaptive-backtracking step-size policy
//   - L1Bound: the minimal τ at which the solution is entirely zero,
//     used to bound path sweeps
//   - Path: warm-started sweep over a τ sequence with early termination
//     once two consecutive solutions saturate to all-zero
//
// ⚙️ Usage:
//
//	import "github.com/chandupentela72/l1l2py/l1l2"
//
//	opts := l1l2.DefaultOptions()
//	opts.Tolerance = 1e-4
//
//	beta, iters, err := l1l2.Regularization(X, y, 0.1, 0.5, &opts)
//
// Performance:
//
//   - RidgeRegression: one SVD of a min(N,D)×min(N,D) Gram matrix
//   - Regularization: O(N·D) per iteration, at most MaxIter iterations
//   - L1Bound: a single O(N·D) pass
//
// All operations are synchronous and purely functional over their inputs;
// distinct calls are safe to run concurrently. Non-convergence is not an
// error: the iteration cap bounds every call, and callers inspect the
// returned iteration count to detect a capped run.
//
// See example_test.go for runnable examples.
package l1l2

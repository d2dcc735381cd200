// Package l1l2py estimates sparse linear models via ℓ1ℓ2 (elastic-net)
// regularized least squares — from the core proximal-gradient solver to
// the cross-validation utilities that surround it.
//
// 🚀 What is l1l2py?
//
//	A small, focused library for feature selection and prediction on
//	high-dimensional, low-sample-count data (the classic bioinformatics
//	regime), bringing together:
//		• Ridge regression: closed-form ℓ2-penalized least squares with
//		  automatic primal/dual formulation selection
//		• Elastic net: iterative soft-thresholding with fixed or adaptive
//		  step size, warm starts and hard iteration caps
//		• Penalty paths: warm-started sweeps over ℓ1 strengths with
//		  early termination once the solution saturates to zero
//		• Leaf utilities: penalty ranges, centering/standardization,
//		  error metrics and seedable k-fold splits
//
// ✨ Why choose l1l2py?
//
//   - Deterministic – every random source is an explicit seed parameter
//   - Purely functional – no global state, safe for concurrent callers
//   - Predictable failure – sentinel errors at the call boundary, never
//     mid-iteration
//   - Built on gonum – dense linear algebra via gonum.org/v1/gonum/mat
//
// The module is organized under five subpackages:
//
//	l1l2/    — ridge, elastic-net solver, ℓ1 bound and penalty paths
//	ranges/  — linear and geometric penalty-range generators
//	scaling/ — column centering and standardization
//	metrics/ — classification and regression error functions
//	kfold/   — plain and stratified k-fold index splits
//
// Quick sketch:
//
//	taus, _ := ranges.Geometric(tauMin, tauMax, 20)
//	betas, _ := l1l2.Path(X, y, mu, taus, nil)
//
// Dive into each package's doc.go for the full contracts, complexity
// notes and runnable examples.
//
//	go get github.com/chandupentela72/l1l2py
package l1l2py

package l1l2

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Regularization — iterative soft-thresholding elastic-net solver.
//
// Description:
//
//	Returns the D×1 coefficient vector β minimizing
//
//	    (1/N)·‖Y − Xβ‖² + mu·‖β‖² + tau·‖β‖₁
//
//	together with the number of iterations actually used. The solver is a
//	proximal-gradient fixed point: a gradient step on the smooth
//	(squared-loss + ridge) part followed by elementwise soft-thresholding,
//	the proximal operator of the ℓ1 norm.
//
// Algorithm Outline:
//  1. Bound the curvature with σ = σ₁²(X)/N + mu, where σ₁ is the largest
//     singular value of X. The fixed policy keeps 1/σ as the step for the
//     whole run; the adaptive policy starts from a more optimistic step
//     and backtracks (growing its curvature estimate, up to σ) whenever
//     the penalized objective would increase, so the objective is
//     non-increasing under either policy.
//  2. Start from opts.Beta when provided, else the zero vector.
//  3. Iterate β' = soft((1 − mu/σ)·β + Xᵗ(Y − Xβ)/(N·σ), tau/(2σ)).
//  4. Stop when ‖β'−β‖∞ / ‖β'‖∞ ≤ tolerance (an all-zero iterate counts
//     as converged), or when MaxIter is reached, whichever comes first.
//
// Non-convergence is not an error: a run capped by MaxIter simply reports
// iterations == MaxIter and the caller decides whether the result is
// acceptable.
//
// Complexity:
//
//	Time   = O(N·D) per iteration, plus one SVD of X up front
//	Memory = O(N + D)
//
// Errors (checked before any iteration):
//   - ErrEmptyInput        — X or Y has a zero dimension.
//   - ErrDimensionMismatch — len(Y) ≠ N.
//   - ErrBadPenalty        — mu < 0 or tau < 0.
//   - ErrBadOptions        — MaxIter < 1 or Tolerance < 0.
//   - ErrWarmStartSize     — len(opts.Beta) ≠ D.
//   - ErrFactorization     — the SVD of X failed to converge.
func Regularization(x mat.Matrix, y mat.Vector, mu, tau float64, opts *Options) (*mat.VecDense, int, error) {
	n, d, err := checkProblem(x, y)
	if err != nil {
		return nil, 0, err
	}
	if mu < 0 || tau < 0 {
		return nil, 0, ErrBadPenalty
	}
	o, err := checkOptions(opts, d)
	if err != nil {
		return nil, 0, err
	}

	var svd mat.SVD
	if !svd.Factorize(x, mat.SVDNone) {
		return nil, 0, ErrFactorization
	}
	smax := svd.Values(nil)[0]
	curvature := smax*smax/float64(n) + mu

	// A vanishing curvature means X is (numerically) the zero matrix and
	// mu == 0: the zero vector already minimizes the objective.
	if curvature < machEps {
		return mat.NewVecDense(d, nil), 0, nil
	}

	beta := mat.NewVecDense(d, nil)
	if len(o.Beta) > 0 {
		copy(beta.RawVector().Data, o.Beta)
	}

	var policy stepPolicy = fixedStep{sigma: curvature}
	if o.Adaptive {
		policy = newAdaptiveStep(curvature)
	}

	next := mat.NewVecDense(d, nil)
	resid := mat.NewVecDense(n, nil)
	grad := mat.NewVecDense(d, nil)

	iterations := 0
	for k := 0; k < o.MaxIter; k++ {
		iterations = k + 1

		// resid = Y − Xβ ; grad = Xᵗ·resid
		resid.MulVec(x, beta)
		resid.SubVec(y, resid)
		grad.MulVec(x.T(), resid)

		prevObj := 0.0
		if o.Adaptive {
			prevObj = penalizedObjective(resid, beta, mu, tau, n)
		}

		for {
			proximalStep(next, beta, grad, policy.curvature(), mu, tau, n)
			if !o.Adaptive {
				break
			}
			nextObj := objectiveAt(x, y, next, resid, mu, tau, n)
			if !policy.backtrack(prevObj, nextObj) {
				break
			}
		}
		policy.advance()

		maxDiff := floats.Distance(next.RawVector().Data, beta.RawVector().Data, math.Inf(1))
		maxCoef := floats.Norm(next.RawVector().Data, math.Inf(1))

		beta, next = next, beta

		if maxCoef == 0 || maxDiff/maxCoef <= o.Tolerance {
			break
		}
	}

	return beta, iterations, nil
}

// proximalStep writes the next iterate into dst: a gradient step on the
// smooth part followed by soft-thresholding at tau/(2σ).
func proximalStep(dst, beta, grad *mat.VecDense, sigma, mu, tau float64, n int) {
	shrink := 1 - mu/sigma
	scale := 1 / (float64(n) * sigma)
	threshold := tau / (2 * sigma)
	for i := 0; i < beta.Len(); i++ {
		v := shrink*beta.AtVec(i) + grad.AtVec(i)*scale
		dst.SetVec(i, softThreshold(v, threshold))
	}
}

// softThreshold is the proximal operator of t·|·|: values within [−t, t]
// collapse to zero, the rest shrink toward zero by t.
func softThreshold(v, t float64) float64 {
	switch {
	case v > t:
		return v - t
	case v < -t:
		return v + t
	default:
		return 0
	}
}

// penalizedObjective evaluates (1/N)·‖resid‖² + mu·‖β‖² + tau·‖β‖₁ given a
// precomputed residual.
func penalizedObjective(resid, beta *mat.VecDense, mu, tau float64, n int) float64 {
	rss := mat.Dot(resid, resid) / float64(n)
	l2 := mat.Dot(beta, beta)
	l1 := floats.Norm(beta.RawVector().Data, 1)
	return rss + mu*l2 + tau*l1
}

// objectiveAt evaluates the penalized objective at beta, recomputing the
// residual into scratch.
func objectiveAt(x mat.Matrix, y mat.Vector, beta, scratch *mat.VecDense, mu, tau float64, n int) float64 {
	scratch.MulVec(x, beta)
	scratch.SubVec(y, scratch)
	return penalizedObjective(scratch, beta, mu, tau, n)
}

// stepPolicy abstracts the step-size selection of the proximal iteration.
// The solver loop is written once; the policy decides the curvature
// estimate σ (the step is 1/σ) and whether a candidate must be recomputed.
type stepPolicy interface {
	// curvature returns the σ to use for the current candidate.
	curvature() float64
	// backtrack inspects the objective before and after the candidate step
	// and reports whether σ was raised and the candidate must be redone.
	backtrack(prevObj, nextObj float64) bool
	// advance lets the policy relax after an accepted iteration.
	advance()
}

// fixedStep keeps the conservative Lipschitz-bound curvature for the whole
// run. Descent is guaranteed analytically, so it never backtracks.
type fixedStep struct {
	sigma float64
}

func (f fixedStep) curvature() float64 { return f.sigma }

func (fixedStep) backtrack(_, _ float64) bool { return false }

func (fixedStep) advance() {}

// adaptiveStep probes steps longer than the Lipschitz bound allows and
// backtracks on any objective increase. The estimate never exceeds the
// analytic bound, at which point descent is guaranteed and the inner loop
// terminates.
type adaptiveStep struct {
	sigma float64 // current curvature estimate
	bound float64 // analytic Lipschitz bound, growth ceiling
}

// Growth, relaxation and floor factors for the adaptive policy. Doubling on
// backtrack keeps the inner loop logarithmic in bound/floor; the mild
// relaxation lets the step recover after a conservative stretch.
const (
	adaptiveGrow  = 2.0
	adaptiveRelax = 0.9
	adaptiveFloor = 64.0
)

func newAdaptiveStep(bound float64) *adaptiveStep {
	return &adaptiveStep{sigma: bound / 2, bound: bound}
}

func (a *adaptiveStep) curvature() float64 { return a.sigma }

func (a *adaptiveStep) backtrack(prevObj, nextObj float64) bool {
	if nextObj <= prevObj || a.sigma >= a.bound {
		return false
	}
	a.sigma = math.Min(a.sigma*adaptiveGrow, a.bound)
	return true
}

func (a *adaptiveStep) advance() {
	a.sigma = math.Max(a.sigma*adaptiveRelax, a.bound/adaptiveFloor)
}

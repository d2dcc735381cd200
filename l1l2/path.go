package l1l2

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Path — warm-started sweep of the elastic-net solver over a τ sequence.
//
// Description:
//
//	Solves the elastic-net problem once per value of taus, in the caller's
//	order, warm-starting every solve from the immediately preceding
//	solution (the first solve starts from zero). The sweep is an explicit
//	fold over taus carrying the previous β as accumulator state; there is
//	no shared mutable state between steps.
//
// Saturation:
//
//	Once a computed solution is entirely zero AND the previous solution
//	was also entirely zero, the sweep stops without emitting the current
//	one: by the monotonic-sparsity property of the elastic net, every
//	larger τ would yield all-zero as well, so continuing is wasted work.
//	The output length is therefore ≤ len(taus), and consumers must pair
//	each output with its positional index into taus rather than assume a
//	1:1 correspondence.
//
// opts configures every solve of the sweep; its Beta field is ignored in
// favor of the warm-start chain. A nil opts selects DefaultOptions.
//
// Errors (checked before the first solve):
//   - ErrEmptyInput        — X or Y has a zero dimension.
//   - ErrDimensionMismatch — len(Y) ≠ N.
//   - ErrBadPenalty        — mu < 0 or any tau < 0.
//   - ErrBadOptions        — MaxIter < 1 or Tolerance < 0.
func Path(x mat.Matrix, y mat.Vector, mu float64, taus []float64, opts *Options) ([]*mat.VecDense, error) {
	_, d, err := checkProblem(x, y)
	if err != nil {
		return nil, err
	}
	if mu < 0 {
		return nil, ErrBadPenalty
	}
	for _, tau := range taus {
		if tau < 0 {
			return nil, ErrBadPenalty
		}
	}
	sweep := opts
	if sweep != nil {
		// The warm-start chain below owns the Beta field.
		c := *sweep
		c.Beta = nil
		sweep = &c
	}
	o, err := checkOptions(sweep, d)
	if err != nil {
		return nil, err
	}

	out := make([]*mat.VecDense, 0, len(taus))
	prevZero := false
	for _, tau := range taus {
		beta, _, err := Regularization(x, y, mu, tau, &o)
		if err != nil {
			return nil, err
		}

		zero := allZero(beta)
		if zero && prevZero {
			break
		}

		out = append(out, beta)
		prevZero = zero
		o.Beta = beta.RawVector().Data
	}

	return out, nil
}

// allZero reports whether no coefficient of v is non-zero.
func allZero(v *mat.VecDense) bool {
	return floats.Norm(v.RawVector().Data, math.Inf(1)) == 0
}

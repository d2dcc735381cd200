package l1l2

import "gonum.org/v1/gonum/mat"

// checkProblem validates the shared design-matrix/response contract and
// returns the problem dimensions (N samples, D features). Every public
// operation calls it first, so shape errors surface at the call boundary
// and never inside an iteration.
func checkProblem(x mat.Matrix, y mat.Vector) (n, d int, err error) {
	n, d = x.Dims()
	if n == 0 || d == 0 || y.Len() == 0 {
		return 0, 0, ErrEmptyInput
	}
	if y.Len() != n {
		return 0, 0, ErrDimensionMismatch
	}
	return n, d, nil
}

// checkOptions validates a caller-supplied Options value against the
// feature count d. A nil opts selects DefaultOptions.
func checkOptions(opts *Options, d int) (Options, error) {
	if opts == nil {
		return DefaultOptions(), nil
	}
	o := *opts
	if o.MaxIter < 1 || o.Tolerance < 0 {
		return Options{}, ErrBadOptions
	}
	if len(o.Beta) != 0 && len(o.Beta) != d {
		return Options{}, ErrWarmStartSize
	}
	return o, nil
}

package l1l2

// Default stopping parameters for Regularization and Path. The tolerance
// bounds the relative coefficient change between iterations; the cap is the
// only safeguard against non-termination, so it is deliberately large.
const (
	// DefaultTolerance is the relative-change threshold below which the
	// iteration is considered converged.
	DefaultTolerance = 1e-5

	// DefaultMaxIter is the hard ceiling on solver iterations.
	DefaultMaxIter = 100000
)

// machEps is the double-precision machine epsilon, used to detect a
// degenerate (all-zero) design matrix and to pick the pseudo-inverse
// rank cutoff.
const machEps = 2.220446049250313e-16

// Options configures the iterative elastic-net solver.
//
// Fields:
//   - Beta      — optional warm start for the coefficient vector. When
//     non-empty its length must equal the number of features D; when empty
//     the iteration starts from the zero vector. The slice is copied, never
//     retained.
//   - MaxIter   — hard ceiling on iterations. The returned iteration count
//     equals MaxIter exactly when the cap binds before convergence.
//   - Tolerance — convergence threshold on ‖β_new−β_old‖∞ / ‖β_new‖∞.
//     An all-zero iterate is treated as converged.
//   - Adaptive  — select the adaptive-backtracking step-size policy instead
//     of the fixed Lipschitz-bound step. The adaptive policy probes larger,
//     data-driven steps and backtracks whenever the penalized objective
//     would increase, so the objective stays non-increasing either way.
//
// Example:
//
//	opts := l1l2.DefaultOptions()
//	opts.MaxIter = 1000
//	opts.Adaptive = true
//	beta, iters, err := l1l2.Regularization(X, y, mu, tau, &opts)
type Options struct {
	Beta      []float64
	MaxIter   int
	Tolerance float64
	Adaptive  bool
}

// DefaultOptions returns an Options value initialized with the package
// defaults: zero warm start, MaxIter = DefaultMaxIter,
// Tolerance = DefaultTolerance, fixed step size.
func DefaultOptions() Options {
	return Options{
		MaxIter:   DefaultMaxIter,
		Tolerance: DefaultTolerance,
	}
}

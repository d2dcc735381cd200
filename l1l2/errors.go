package l1l2

import "errors"

// Sentinel errors returned by the public solver surface. Every error is
// detected at the boundary of an operation, before any iteration runs;
// tests match them via errors.Is.
var (
	// ErrEmptyInput indicates a design matrix or response with a zero
	// dimension.
	ErrEmptyInput = errors.New("l1l2: design matrix and response must be non-empty")

	// ErrDimensionMismatch indicates that the response length differs from
	// the number of rows (samples) of the design matrix.
	ErrDimensionMismatch = errors.New("l1l2: response length must equal the number of samples")

	// ErrWarmStartSize indicates a warm-start vector whose length differs
	// from the number of columns (features) of the design matrix.
	ErrWarmStartSize = errors.New("l1l2: warm-start length must equal the number of features")

	// ErrBadPenalty indicates a negative penalty strength (mu, tau or the
	// ridge penalty).
	ErrBadPenalty = errors.New("l1l2: penalties must be non-negative")

	// ErrBadOptions indicates MaxIter < 1 or Tolerance < 0.
	ErrBadOptions = errors.New("l1l2: MaxIter must be positive and Tolerance non-negative")

	// ErrFactorization indicates that the singular value decomposition of
	// the design matrix failed to converge.
	ErrFactorization = errors.New("l1l2: singular value decomposition failed")
)

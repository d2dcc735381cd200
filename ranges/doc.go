// Package ranges generates linear and geometric sequences of penalty
// values for regularization-path sweeps.
//
// Linear returns evenly spaced values; Geometric returns values spaced by
// a constant ratio, the usual choice for ℓ1 penalty grids where orders of
// magnitude matter more than absolute steps.
//
// Degenerate geometric requests (a zero start value or a single-point
// range, where the progression ratio is undefined) surface as an explicit
// ErrZeroRatio instead of silently producing NaN.
package ranges

package ranges

import (
	"errors"
	"math"
)

// ErrZeroRatio indicates a geometric progression whose ratio is undefined:
// the start value is zero or the range has exactly one point.
var ErrZeroRatio = errors.New("ranges: geometric progression requires a non-zero start and at least two points")

// Linear returns n evenly spaced values from min to max inclusive.
// n == 1 yields [min]; n <= 0 yields an empty sequence.
func Linear(min, max float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = min
		return out
	}
	step := (max - min) / float64(n-1)
	for i := range out {
		out[i] = min + float64(i)*step
	}
	// Pin the endpoint: accumulated rounding must not leak into callers
	// that compare against max.
	out[n-1] = max
	return out
}

// Geometric returns n values from min to max generated by a geometric
// progression. n <= 0 yields an empty sequence. min == 0 or n == 1 leave
// the ratio undefined and return ErrZeroRatio.
func Geometric(min, max float64, n int) ([]float64, error) {
	if n <= 0 {
		return []float64{}, nil
	}
	if min == 0 || n == 1 {
		return nil, ErrZeroRatio
	}
	ratio := math.Pow(max/min, 1/float64(n-1))
	out := make([]float64, n)
	for i := range out {
		out[i] = min * math.Pow(ratio, float64(i))
	}
	return out, nil
}

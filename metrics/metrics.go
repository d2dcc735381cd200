package metrics

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Sentinel errors returned by the error functions.
var (
	// ErrLengthMismatch indicates labels and predictions of different length.
	ErrLengthMismatch = errors.New("metrics: labels and predictions must have equal length")

	// ErrNoSamples indicates empty inputs, for which no error rate is defined.
	ErrNoSamples = errors.New("metrics: at least one sample is required")
)

// ClassificationError returns the fraction of predictions whose sign
// disagrees with the corresponding label. Labels are assumed to encode the
// first class as positive numbers and the second as negative ones; the
// values themselves are not validated.
func ClassificationError(labels, predicted []float64) (float64, error) {
	if err := checkPair(labels, predicted); err != nil {
		return 0, err
	}
	miss := 0
	for i := range labels {
		if sign(labels[i]) != sign(predicted[i]) {
			miss++
		}
	}
	return float64(miss) / float64(len(labels)), nil
}

// BalancedClassificationError returns the classification error with each
// mistake weighted by |labelᵢ − mean(labels)|, biasing the rate toward
// errors on the smaller class. A perfectly balanced mistake-free input
// yields zero, as does a one-class input (every weight is zero).
func BalancedClassificationError(labels, predicted []float64) (float64, error) {
	if err := checkPair(labels, predicted); err != nil {
		return 0, err
	}
	mean := stat.Mean(labels, nil)
	sum := 0.0
	for i := range labels {
		if sign(labels[i]) != sign(predicted[i]) {
			sum += math.Abs(labels[i] - mean)
		}
	}
	return sum / float64(len(labels)), nil
}

// RegressionError returns the mean squared difference between labels and
// predictions.
func RegressionError(labels, predicted []float64) (float64, error) {
	if err := checkPair(labels, predicted); err != nil {
		return 0, err
	}
	dist := floats.Distance(labels, predicted, 2)
	return dist * dist / float64(len(labels)), nil
}

func checkPair(labels, predicted []float64) error {
	if len(labels) != len(predicted) {
		return ErrLengthMismatch
	}
	if len(labels) == 0 {
		return ErrNoSamples
	}
	return nil
}

// sign follows the three-way convention: -1, 0 or +1.
func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

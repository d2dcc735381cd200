// Package metrics evaluates prediction quality for model selection around
// the l1l2 solvers.
//
// ClassificationError compares the signs of labels and predictions, the
// convention for two-class problems encoded as positive/negative numbers.
// BalancedClassificationError reweights mistakes by class size so the
// smaller class counts more. RegressionError is the mean squared
// difference.
//
// All functions are stateless scalar reducers; length mismatches and empty
// inputs surface as sentinel errors.
package metrics

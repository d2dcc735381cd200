// Package kfold produces k-fold cross-validation index partitions, plain
// and stratified.
//
// Splits shuffles sample indices with a deterministic, caller-seeded
// source and cuts them into k test chunks whose sizes differ by at most
// one; each split pairs a test chunk with the remaining indices as its
// training set. StratifiedSplits does the same per class for two-class
// labels, holding the class proportions across folds.
//
// Determinism:
//   - Same (n, k, seed) ⇒ identical splits across runs and platforms.
//   - No global random state; every call builds its own source from the
//     seed parameter, so concurrent callers never interfere.
package kfold

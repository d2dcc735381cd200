// Package scaling centers and standardizes data columns ahead of
// regularized regression.
//
// Both transforms operate column-wise and return fresh matrices plus the
// factors (means, sample standard deviations) computed from the primary
// input. The *With variants additionally apply those training factors to a
// second matrix — the standard train/test protocol where the test split
// must never contribute to the normalization.
//
// Constant columns cannot be standardized and surface as ErrZeroVariance;
// centering never fails.
package scaling

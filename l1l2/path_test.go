package l1l2_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chandupentela72/l1l2py/l1l2"
	"github.com/chandupentela72/l1l2py/ranges"
)

// TestPath_MonotonicSparsity checks the structural invariants of a sweep:
// output length bounded by the τ count, and a support (non-zero count) that
// never grows as τ increases.
func TestPath_MonotonicSparsity(t *testing.T) {
	x, y := testDataset()
	taus := ranges.Linear(0.1, 1.0, 5)

	betas, err := l1l2.Path(x, y, 0.1, taus, nil)
	require.NoError(t, err)
	require.LessOrEqual(t, len(betas), len(taus), "never more outputs than τ values")
	require.NotEmpty(t, betas)

	_, d := x.Dims()
	for i, beta := range betas {
		assert.Equal(t, d, beta.Len(), "solution %d must be a full coefficient vector", i)
		if i > 0 {
			assert.LessOrEqual(t, nonzeroCount(beta), nonzeroCount(betas[i-1]),
				"support must not grow from τ=%v to τ=%v", taus[i-1], taus[i])
		}
	}
}

// TestPath_SaturationTruncates checks the early-termination policy: once
// two consecutive solutions are all-zero the sweep stops, so a τ sequence
// that saturates after its second value yields exactly two outputs.
func TestPath_SaturationTruncates(t *testing.T) {
	x, y := testDataset()

	// The dataset's τ_max must sit between the first two sweep values for
	// the scenario to exercise saturation as intended.
	tauMax, err := l1l2.L1Bound(x, y)
	require.NoError(t, err)
	require.Greater(t, tauMax, 0.1, "first τ must select features")
	require.Less(t, tauMax, 10.0, "second τ must saturate to zero")

	taus := []float64{0.1, 1e1, 1e3, 1e4}
	betas, err := l1l2.Path(x, y, 0.1, taus, nil)
	require.NoError(t, err)

	require.Len(t, betas, 2, "sweep must truncate after two consecutive all-zero solutions")
	assert.Greater(t, nonzeroCount(betas[0]), 0, "first solution must select features")
	assert.Equal(t, 0, nonzeroCount(betas[1]), "second solution must be all-zero")
}

// TestPath_Errors verifies boundary validation before the first solve.
func TestPath_Errors(t *testing.T) {
	x, y := testDataset()

	_, err := l1l2.Path(x, y, -0.1, []float64{0.5}, nil)
	assert.ErrorIs(t, err, l1l2.ErrBadPenalty, "negative mu")

	_, err = l1l2.Path(x, y, 0.1, []float64{0.5, -0.5}, nil)
	assert.ErrorIs(t, err, l1l2.ErrBadPenalty, "negative tau in the sweep")

	bad := l1l2.DefaultOptions()
	bad.MaxIter = 0
	_, err = l1l2.Path(x, y, 0.1, []float64{0.5}, &bad)
	assert.ErrorIs(t, err, l1l2.ErrBadOptions)
}

// TestPath_EmptySweep checks that an empty τ sequence is legal and yields
// an empty result.
func TestPath_EmptySweep(t *testing.T) {
	x, y := testDataset()

	betas, err := l1l2.Path(x, y, 0.1, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, betas)
}

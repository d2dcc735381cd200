package kfold

import (
	"errors"
	"math"
	"math/rand"
)

// Sentinel errors returned by the split generators.
var (
	// ErrBadK indicates a fold count outside 0 < k ≤ available samples
	// (per class, for the stratified variant).
	ErrBadK = errors.New("kfold: k must be greater than zero and at most the number of samples")

	// ErrNotTwoClass indicates labels with a class count other than two.
	ErrNotTwoClass = errors.New("kfold: labels must contain exactly two classes")
)

// Split pairs the training and testing index sets of one fold.
type Split struct {
	Train []int
	Test  []int
}

// Splits returns k cross-validation splits over n samples. Indices are
// shuffled with the given seed, then cut into k test chunks; sizes differ
// by at most one. k == 1 yields a single split with an empty training set.
func Splits(n, k int, seed int64) ([]Split, error) {
	if k <= 0 || k > n {
		return nil, ErrBadK
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	shuffle(idx, rngFromSeed(seed))

	return partition(idx, k), nil
}

// StratifiedSplits returns k splits over the samples of a two-class
// labeling, holding each class's proportion constant across folds. Both
// classes must contribute at least k samples.
func StratifiedSplits(labels []float64, k int, seed int64) ([]Split, error) {
	first, second, err := twoClassIndexes(labels)
	if err != nil {
		return nil, err
	}
	if k <= 0 || k > len(first) || k > len(second) {
		return nil, ErrBadK
	}

	rng := rngFromSeed(seed)

	shuffle(first, rng)
	firstSplits := partition(first, k)

	shuffle(second, rng)
	secondSplits := partition(second, k)

	splits := make([]Split, k)
	for i := range splits {
		splits[i] = Split{
			Train: append(append([]int{}, firstSplits[i].Train...), secondSplits[i].Train...),
			Test:  append(append([]int{}, firstSplits[i].Test...), secondSplits[i].Test...),
		}
	}
	return splits, nil
}

// rngFromSeed returns a deterministic source for the given seed. No global
// state: repeated calls with the same seed produce identical streams.
func rngFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func shuffle(idx []int, rng *rand.Rand) {
	rng.Shuffle(len(idx), func(i, j int) {
		idx[i], idx[j] = idx[j], idx[i]
	})
}

// partition cuts idx into k consecutive test chunks, balancing sizes by
// re-rounding the remainder at every cut, and complements each chunk with
// the rest of idx as the training set.
func partition(idx []int, k int) []Split {
	out := make([]Split, 0, k)
	start := 0
	remaining := float64(len(idx))
	for rs := k; rs > 0; rs-- {
		size := int(math.Round(remaining / float64(rs)))
		end := start + size

		test := append([]int{}, idx[start:end]...)
		train := make([]int, 0, len(idx)-size)
		train = append(train, idx[:start]...)
		train = append(train, idx[end:]...)

		out = append(out, Split{Train: train, Test: test})
		start = end
		remaining -= float64(size)
	}
	return out
}

// twoClassIndexes separates sample indices by label value, requiring
// exactly two distinct values.
func twoClassIndexes(labels []float64) (first, second []int, err error) {
	var classes []float64
	for i, v := range labels {
		switch {
		case len(classes) > 0 && v == classes[0]:
			first = append(first, i)
		case len(classes) > 1 && v == classes[1]:
			second = append(second, i)
		case len(classes) == 0:
			classes = append(classes, v)
			first = append(first, i)
		case len(classes) == 1:
			classes = append(classes, v)
			second = append(second, i)
		default:
			return nil, nil, ErrNotTwoClass
		}
	}
	if len(classes) != 2 {
		return nil, nil, ErrNotTwoClass
	}
	return first, second, nil
}

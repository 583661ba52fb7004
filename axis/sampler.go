package axis

import (
	"math"
	"math/rand/v2"
	"sort"

	"github.com/teranos/condax/errors"
)

// WeightedChoice selects one option with probability proportional to its
// weight. Options missing from weights weigh 1.0; nil or empty weights mean
// uniform selection. A nil rng is replaced by a fresh entropy-seeded source.
func WeightedChoice(options []string, weights map[string]float64, rng *rand.Rand) (string, error) {
	if len(options) == 0 {
		return "", errors.NewInvalidInputError("cannot choose from an empty option list")
	}
	if rng == nil {
		rng = newEntropyRand()
	}

	if len(weights) == 0 {
		return options[rng.IntN(len(options))], nil
	}

	cumulative := make([]float64, len(options))
	total := 0.0
	for i, opt := range options {
		w, ok := weights[opt]
		if !ok {
			w = 1.0
		}
		if !(w > 0) || math.IsInf(w, 1) {
			return "", errors.WithDetailf(
				errors.NewInvalidInputError("weight for %q must be a positive finite number, got %v", opt, w),
				"options: %v", options,
			)
		}
		total += w
		cumulative[i] = total
	}

	u := rng.Float64() * total
	idx := sort.Search(len(cumulative), func(i int) bool { return cumulative[i] > u })
	if idx == len(cumulative) {
		idx = len(cumulative) - 1
	}
	return options[idx], nil
}

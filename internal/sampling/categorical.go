// Package sampling provides weighted categorical sampling over fixed item sets.
package sampling

import (
	"fmt"
	"math/rand/v2"
	"sort"
)

// Categorical draws items from a fixed set with relative weights. Weights are
// normalized internally, so any positive vector is accepted whether or not it
// sums to 1. Sampling uses binary search over the cumulative weights and is
// deterministic given the caller's *rand.Rand.
type Categorical struct {
	items      []string
	cumulative []float64
	total      float64
}

// NewCategorical builds a sampler over items with the given relative weights.
// Returns an error if the slices differ in length, any weight is negative,
// or the weights sum to zero.
func NewCategorical(items []string, weights []float64) (*Categorical, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("categorical sampler requires at least one item")
	}
	if len(items) != len(weights) {
		return nil, fmt.Errorf("categorical sampler: %d items but %d weights", len(items), len(weights))
	}

	cumulative := make([]float64, len(weights))
	total := 0.0
	for i, w := range weights {
		if w < 0 {
			return nil, fmt.Errorf("categorical sampler: negative weight %v for item %q", w, items[i])
		}
		total += w
		cumulative[i] = total
	}
	if total <= 0 {
		return nil, fmt.Errorf("categorical sampler: weights sum to zero")
	}

	return &Categorical{
		items:      append([]string(nil), items...),
		cumulative: cumulative,
		total:      total,
	}, nil
}

// Sample draws one item according to the configured weights.
func (c *Categorical) Sample(rng *rand.Rand) string {
	u := rng.Float64() * c.total
	idx := sort.SearchFloat64s(c.cumulative, u)
	// Float64 is in [0,1), so u < total and idx is always in range, but a
	// zero-weight tail could make SearchFloat64s land past a usable bucket.
	if idx >= len(c.items) {
		idx = len(c.items) - 1
	}
	// Skip forward past zero-weight items whose cumulative value equals u.
	for idx < len(c.items)-1 && c.cumulative[idx] <= u {
		idx++
	}
	return c.items[idx]
}

// Items returns the sampler's item set in configured order.
func (c *Categorical) Items() []string {
	return append([]string(nil), c.items...)
}

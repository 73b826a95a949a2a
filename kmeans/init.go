// Package kmeans - center initialization strategies.
//
// Initializers draw the k starting centers for one restart from the dataset.
// They are registered by name so Options.Init stays a plain string, and they
// consume only the restart-local RNG - never global randomness - so every
// restart is reproducible from (Seed, restart index) alone.
package kmeans

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/katalvlaran/tscluster/distance"
	"github.com/katalvlaran/tscluster/series"
)

// initializer draws k starting centers from ds. Returned centers are deep
// copies; mutating them never touches the dataset.
type initializer func(ds []series.Series, k int, metric distance.Metric, rng *rand.Rand) ([]series.Series, error)

// initializers is the named strategy registry consulted by Options.Init.
var initializers = map[InitMethod]initializer{
	InitForgy:    forgyInit,
	InitKMeansPP: kmeansPPInit,
}

// initializerFor resolves a named strategy (empty ⇒ forgy). Unknown names
// are configuration errors that list the valid alternatives.
//
// Complexity: O(1) lookup, O(r log r) over registry size for the error text.
func initializerFor(method InitMethod) (initializer, error) {
	if method == "" {
		method = InitForgy
	}
	fn, ok := initializers[method]
	if !ok {
		return nil, fmt.Errorf("%w: %q (valid: %s)", ErrUnknownInit, method, strings.Join(initNames(), ", "))
	}

	return fn, nil
}

// initNames lists the registered strategies in sorted order.
func initNames() []string {
	names := make([]string, 0, len(initializers))
	for m := range initializers {
		names = append(names, string(m))
	}
	sort.Strings(names)

	return names
}

// forgyInit draws k distinct dataset instances uniformly at random and
// copies them as the starting centers.
//
// Contract:
//   - Distinct indices: no two starting centers alias the same instance,
//     so a fresh restart can never begin with a structurally empty cluster.
//   - Determinism: consumes exactly k draws from rng.
//
// Complexity: O(n + k·samples) time, O(n) auxiliary memory.
func forgyInit(ds []series.Series, k int, _ distance.Metric, rng *rand.Rand) ([]series.Series, error) {
	centers := make([]series.Series, k)
	for i, idx := range sampleDistinct(len(ds), k, rng) {
		centers[i] = ds[idx].Clone()
	}

	return centers, nil
}

// kmeansPPInit seeds centers with the k-means++ scheme: the first center is
// uniform, every further center is drawn with probability proportional to
// the squared distance to the nearest already-chosen center.
//
// Contract:
//   - Weighting uses the configured metric, squared, whatever its family.
//   - Degenerate weights (all remaining mass zero, e.g. duplicate-heavy
//     datasets) fall back to the lowest not-yet-chosen index, keeping the
//     draw deterministic and duplicate-free.
//   - Metric errors abort initialization and surface to the caller.
//
// Complexity: O(n·k) metric evaluations, O(n) auxiliary memory.
func kmeansPPInit(ds []series.Series, k int, metric distance.Metric, rng *rand.Rand) ([]series.Series, error) {
	n := len(ds)
	centers := make([]series.Series, 0, k)
	chosen := make([]bool, n)

	first := rng.Intn(n)
	centers = append(centers, ds[first].Clone())
	chosen[first] = true

	// minDist[i] holds the squared distance from ds[i] to its nearest
	// chosen center, updated incrementally as centers are added.
	minDist := make([]float64, n)
	for i := range minDist {
		d, err := metric.Distance(ds[i], centers[0])
		if err != nil {
			return nil, err
		}
		minDist[i] = d * d
	}

	for len(centers) < k {
		var total float64
		for _, d := range minDist {
			total += d
		}

		var next int
		if total > 0 {
			next = weightedDraw(minDist, total, rng)
		} else {
			// All remaining mass is zero: every instance coincides with a
			// center. Take the lowest unchosen index.
			next = lowestUnchosen(chosen)
		}

		center := ds[next].Clone()
		centers = append(centers, center)
		chosen[next] = true

		for i := range minDist {
			if minDist[i] == 0 {
				continue
			}
			d, err := metric.Distance(ds[i], center)
			if err != nil {
				return nil, err
			}
			if sq := d * d; sq < minDist[i] {
				minDist[i] = sq
			}
		}
	}

	return centers, nil
}

// weightedDraw samples an index proportionally to weights (sum = total > 0).
// Consumes exactly one rng draw.
func weightedDraw(weights []float64, total float64, rng *rand.Rand) int {
	r := rng.Float64() * total
	last := 0
	for i, w := range weights {
		if w == 0 {
			continue
		}
		last = i
		r -= w
		if r < 0 {
			return i
		}
	}

	// Rounding can leave a sliver of r; attribute it to the last positive weight.
	return last
}

// lowestUnchosen returns the smallest index not yet marked chosen.
func lowestUnchosen(chosen []bool) int {
	for i, c := range chosen {
		if !c {
			return i
		}
	}

	return 0
}

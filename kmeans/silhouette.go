package kmeans

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/tscluster/distance"
	"github.com/katalvlaran/tscluster/series"
)

// Silhouette computes the mean silhouette width of a labeling under the
// given metric: per instance, (b−a)/max(a,b) with a the mean distance to
// its own cluster's other members and b the smallest mean distance to
// another non-empty cluster. Scores live in [−1, 1]; higher separates
// better. It is a diagnostic for picking k or comparing metrics, and plays
// no part in Fit's restart selection.
//
// Conventions follow the usual definition: a sole member of its cluster
// scores 0, and a labeling with fewer than two non-empty clusters scores 0
// overall. The metric is treated as symmetric, so each pair is evaluated
// once.
//
// Labels must cover ds exactly, with non-negative cluster indices;
// violations yield ErrBadLabels.
//
// Complexity: O(n²) metric evaluations, O(n·k) auxiliary memory.
func Silhouette(ds []series.Series, labels []int, metric distance.Metric) (float64, error) {
	if err := series.ValidateSet(ds); err != nil {
		return 0, err
	}
	n := len(ds)
	if len(labels) != n {
		return 0, fmt.Errorf("%w: %d labels for %d series", ErrBadLabels, len(labels), n)
	}

	k := 0
	for i, l := range labels {
		if l < 0 {
			return 0, fmt.Errorf("%w: negative label %d at index %d", ErrBadLabels, l, i)
		}
		if l+1 > k {
			k = l + 1
		}
	}

	sizes := make([]int, k)
	for _, l := range labels {
		sizes[l]++
	}
	nonEmpty := 0
	for _, s := range sizes {
		if s > 0 {
			nonEmpty++
		}
	}
	if nonEmpty < 2 {
		return 0, nil
	}

	// sums[i][c] accumulates the distance from instance i to every member
	// of cluster c; each unordered pair is evaluated once.
	sums := make([][]float64, n)
	for i := range sums {
		sums[i] = make([]float64, k)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d, err := metric.Distance(ds[i], ds[j])
			if err != nil {
				return 0, err
			}
			sums[i][labels[j]] += d
			sums[j][labels[i]] += d
		}
	}

	scores := make([]float64, n)
	for i := range ds {
		own := labels[i]
		if sizes[own] < 2 {
			continue // sole member scores 0
		}
		a := sums[i][own] / float64(sizes[own]-1)

		b := math.Inf(1)
		for c := 0; c < k; c++ {
			if c == own || sizes[c] == 0 {
				continue
			}
			if mean := sums[i][c] / float64(sizes[c]); mean < b {
				b = mean
			}
		}

		if div := math.Max(a, b); div > 0 {
			scores[i] = (b - a) / div
		}
	}

	return stat.Mean(scores, nil), nil
}

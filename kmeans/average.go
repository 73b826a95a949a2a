// Package kmeans - center update strategies (the "average" of a cluster).
//
// Two strategies exist, matched to metric capability during validation:
//
//   - meanAverager: elementwise arithmetic mean. Sound only for lockstep
//     metrics, where sample t of one series corresponds to sample t of
//     another - the very assumption elastic metrics drop, which is why the
//     mean×elastic combination is rejected up front (ErrAveragingMismatch).
//   - dbaAverager: DTW Barycenter Averaging. Aligns every member onto the
//     current center, accumulates member samples per aligned center slot,
//     and re-estimates each slot as the mean of everything aligned to it,
//     iterating until the center stops moving.
//
// Both return fresh centers; cluster members are never mutated.
package kmeans

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/tscluster/distance"
	"github.com/katalvlaran/tscluster/series"
)

// averager re-estimates one cluster center from its members.
// An empty member set keeps the current center (recovery upstream makes
// this unreachable in practice, but the contract stays total).
type averager interface {
	Update(members []series.Series, current series.Series) (series.Series, error)
}

// meanAverager computes the elementwise arithmetic mean of the members.
type meanAverager struct{}

// Update averages members elementwise. All members share one shape here:
// validation enforces uniform sample counts whenever this strategy is legal.
//
// Complexity: O(members·channels·samples).
func (meanAverager) Update(members []series.Series, current series.Series) (series.Series, error) {
	if len(members) == 0 {
		return current.Clone(), nil
	}

	out := series.New(members[0].Channels(), members[0].Len())
	for _, m := range members {
		for c := range out {
			floats.Add(out[c], m[c])
		}
	}
	inv := 1 / float64(len(members))
	for c := range out {
		floats.Scale(inv, out[c])
	}

	return out, nil
}

// dbaAverager refines a center by DTW Barycenter Averaging.
type dbaAverager struct {
	aligner distance.Aligner
	maxIter int     // refinement iteration cap
	tol     float64 // stop once the largest elementwise delta is ≤ tol
}

// Update runs DBA refinement warm-started from the current center.
//
// Contract:
//   - The center keeps its own length: alignment re-estimates slot values,
//     never the slot count, so ragged members are fine.
//   - Members whose alignment is infeasible (infinite distance, no path -
//     e.g. a warping window too narrow for the length gap) are skipped for
//     that pass; slots no member aligned to keep their previous value.
//   - Alignment errors from the metric abort the update.
//
// Complexity: O(maxIter·members·align), align being O(center·member) time
// and memory for the path-bearing DTW run.
func (d dbaAverager) Update(members []series.Series, current series.Series) (series.Series, error) {
	if len(members) == 0 {
		return current.Clone(), nil
	}

	center := current.Clone()
	channels, slots := center.Channels(), center.Len()

	for iter := 0; iter < d.maxIter; iter++ {
		sums := series.New(channels, slots)
		counts := make([]float64, slots) // shared across channels: one warping path per member

		for _, m := range members {
			_, path, err := d.aligner.Align(center, m)
			if err != nil {
				return nil, err
			}
			if path == nil {
				continue
			}
			for _, p := range path {
				for c := 0; c < channels; c++ {
					sums[c][p.I] += m.At(c, p.J)
				}
				counts[p.I]++
			}
		}

		var delta float64
		for t, cnt := range counts {
			if cnt == 0 {
				continue
			}
			for c := 0; c < channels; c++ {
				v := sums[c][t] / cnt
				if diff := math.Abs(v - center[c][t]); diff > delta {
					delta = diff
				}
				center[c][t] = v
			}
		}
		if delta <= d.tol {
			break
		}
	}

	return center, nil
}

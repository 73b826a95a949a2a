// Package kmeans - the Lloyd iteration loop of a single restart.
//
// One restart is a pure function of (dataset, k, config, restart index):
// the restart-local RNG is derived from Options.Seed and the restart index,
// assignment and update are deterministic, and empty-cluster recovery picks
// donors by rank, never by chance. Two restarts with equal inputs therefore
// produce bit-identical results no matter how Fit schedules them.
package kmeans

import (
	"math"

	"github.com/katalvlaran/tscluster/series"
)

// runLloyd executes one restart: initialize centers, iterate
// assign → recover → update until the controller stops, then resync labels
// with the final centers.
//
// Contract:
//   - Stop states: converged (label fixpoint, or center movement ≤ Tol
//     under the configured metric) or iteration cap. Iterations counts
//     completed assignment steps.
//   - The returned Result owns its centers and labels (deep copies).
//   - Context cancellation is honored between iterations.
//
// Complexity: O(iterations · n·k · distance) plus the update cost.
func runLloyd(ds []series.Series, k int, cfg *fitConfig, restart int) (*Result, error) {
	rng := restartRNG(cfg.opts.Seed, restart)
	centers, err := cfg.initFn(ds, k, cfg.metric, rng)
	if err != nil {
		return nil, err
	}

	var (
		a          *assignment
		prevLabels []int
		state      = running
		iterations int
		needResync bool
	)

	for iter := 0; iter < cfg.opts.MaxIter; iter++ {
		select {
		case <-cfg.opts.Ctx.Done():
			return nil, cfg.opts.Ctx.Err()
		default:
		}

		if a, err = assignAll(ds, centers, cfg); err != nil {
			return nil, err
		}
		iterations = iter + 1
		cfg.opts.OnIteration(restart, iter, a.inertia)

		// Label fixpoint: the previous update left every assignment in
		// place, so further iterations cannot change anything.
		if intsEqual(prevLabels, a.labels) {
			state, needResync = stateConverged, false

			break
		}
		prevLabels = a.labels

		repairEmpty(ds, centers, a, cfg, restart, iter)

		prev := append([]series.Series(nil), centers...)
		if err = updateCenters(ds, centers, a.labels, cfg); err != nil {
			return nil, err
		}
		needResync = true

		mv, err := movement(prev, centers, cfg.metric)
		if err != nil {
			return nil, err
		}
		if mv <= cfg.opts.Tol {
			state = stateConverged

			break
		}
	}
	if state == running {
		state = stateMaxIter
	}

	// The last update may have moved centers after the last counted
	// assignment; resync so Labels/Inertia describe the returned Centers
	// and predicting the training set reproduces Labels exactly.
	if needResync {
		if a, err = assignAll(ds, centers, cfg); err != nil {
			return nil, err
		}
	}

	out := make([]series.Series, k)
	for i, c := range centers {
		out[i] = c.Clone()
	}

	return &Result{
		Centers:      out,
		Labels:       append([]int(nil), a.labels...),
		Inertia:      round1e9(a.inertia),
		Iterations:   iterations,
		Converged:    state == stateConverged,
		Restart:      restart,
		ClusterSizes: append([]int(nil), a.sizes...),
	}, nil
}

// roundScale controls reported-inertia stabilization precision (1e-9).
const roundScale = 1e9

// round1e9 returns x rounded to 1e-9 absolute precision.
// This keeps reported inertia stable across platforms without affecting
// algorithmic correctness; convergence decisions compare raw values.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// updateCenters re-estimates every center from its members via the
// configured averager. Centers are replaced, never mutated in place, so
// callers may hold references to the previous generation.
func updateCenters(ds []series.Series, centers []series.Series, labels []int, cfg *fitConfig) error {
	memberIdx := make([][]int, len(centers))
	for i, l := range labels {
		memberIdx[l] = append(memberIdx[l], i)
	}

	members := make([]series.Series, 0, len(ds))
	for c := range centers {
		members = members[:0]
		for _, i := range memberIdx[c] {
			members = append(members, ds[i])
		}
		next, err := cfg.avg.Update(members, centers[c])
		if err != nil {
			return err
		}
		centers[c] = next
	}

	return nil
}

// repairEmpty reseeds empty clusters deterministically: ascending over empty
// cluster indices, each takes the instance farthest from its current center
// among clusters that can spare a member (size ≥ 2), lowest instance index
// on ties. The stolen instance becomes the empty cluster's center and sole
// member. No randomness is consumed, so recovery never perturbs the restart
// RNG stream.
//
// A donor always exists: n ≥ k and an empty cluster force some cluster to
// hold at least two members.
func repairEmpty(ds []series.Series, centers []series.Series, a *assignment, cfg *fitConfig, restart, iter int) {
	for c := range centers {
		if a.sizes[c] != 0 {
			continue
		}

		donor := -1
		for i, d := range a.dists {
			if a.sizes[a.labels[i]] < 2 {
				continue
			}
			if donor == -1 || d > a.dists[donor] {
				donor = i
			}
		}
		if donor == -1 {
			continue // unreachable post-validation; keep the step total
		}

		cfg.opts.OnEmptyCluster(restart, iter, c, donor)

		a.sizes[a.labels[donor]]--
		a.labels[donor] = c
		a.sizes[c] = 1
		a.dists[donor] = 0 // coincides with its new center
		centers[c] = ds[donor].Clone()
	}
}

// intsEqual reports elementwise equality; a nil slice equals nothing.
func intsEqual(a, b []int) bool {
	if a == nil || len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// SPDX-License-Identifier: MIT
// Package: tscluster/synth
//
// blobs.go — labeled clustered datasets from prototype series.
//
// Purpose:
//   - Produce a ground-truth-labeled dataset by jittering each prototype
//     series with Gaussian noise: the workhorse behind clustering tests,
//     examples and benchmarks.
//
// Contract:
//   - Blobs(perCluster, protos, sigma, seed) → (dataset, labels) with
//     len(dataset) == len(labels) == len(protos)*perCluster.
//   - Instances are cluster-major: all jittered copies of protos[0] first,
//     then protos[1], and so on; labels[i] is the prototype index.
//   - sigma == 0 yields exact prototype copies (still fresh allocations).
//   - On invalid input (perCluster<1, sigma<0, invalid prototype set)
//     ⇒ return (nil, nil); never panic.
//   - Strict determinism per (protos, sigma, seed).
//
// AI-Hints:
//   - Prototypes may have different lengths; pair such sets with an elastic
//     metric downstream. Channel counts must agree across prototypes.
//   - For anisotropic noise, jitter channels separately outside Blobs.

package synth

import (
	"math/rand"

	"github.com/katalvlaran/tscluster/series"
)

// Blobs returns perCluster jittered copies of every prototype plus the
// ground-truth label (prototype index) of each instance.
//
// Complexity:
//   - O(len(protos) · perCluster · samples) time and memory.
func Blobs(perCluster int, protos []series.Series, sigma float64, seed int64) ([]series.Series, []int) {
	// Validate scalar knobs first (cheap, no allocations).
	if perCluster < 1 || sigma < 0 {
		return nil, nil
	}

	// Validate the prototype set: non-empty, rectangular per series,
	// consistent channel counts. Lengths may differ (elastic fixtures).
	if err := series.ValidateSet(protos); err != nil {
		return nil, nil
	}

	// Private stream per call; Blobs takes no options by design — the
	// positional sigma and seed fully determine the draw sequence.
	rng := rand.New(rand.NewSource(seed))

	// Pre-size both outputs exactly once.
	total := len(protos) * perCluster
	ds := make([]series.Series, 0, total)
	labels := make([]int, 0, total)

	// Emit cluster-major: prototype 0's members first, then prototype 1, ...
	for c, proto := range protos {
		for r := 0; r < perCluster; r++ {
			// Fresh deep copy so callers may mutate instances freely.
			inst := proto.Clone()

			// Jitter every sample; skip draws entirely when noiseless so
			// sigma=0 stays bit-identical regardless of RNG stream state.
			if sigma > 0 {
				for ch := range inst {
					for t := range inst[ch] {
						inst[ch][t] += sigma * rng.NormFloat64()
					}
				}
			}

			ds = append(ds, inst)
			labels = append(labels, c)
		}
	}

	return ds, labels
}

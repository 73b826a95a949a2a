// Package kmeans - RNG utilities shared by initializers and restarts.
//
// This file centralizes deterministic random generation for the clustering
// engine.
//
// Goals:
//   - Determinism: same seed ⇒ identical fits across platforms and across
//     any Parallel/AssignWorkers setting.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Safety: no panics or logging; only sentinel errors from types.go when needed.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Every restart owns the stream
//     derived from (Seed, restart index) and never shares it.
package kmeans

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// normalizeSeed applies the zero-seed policy: seed==0 ⇒ defaultRNGSeed.
//
// Complexity: O(1).
func normalizeSeed(seed int64) int64 {
	if seed == 0 {
		return defaultRNGSeed
	}

	return seed
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed.
//
// Rationale:
//   - Every restart needs an independent substream derived from one user seed.
//   - A SplitMix64-style avalanche mix eliminates correlations between
//     consecutive stream ids.
//
// Notes:
//   - Constants are the canonical SplitMix64 multipliers/finalizer. They provide
//     strong bit diffusion; small changes in inputs produce large, well-distributed
//     output changes.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	// SplitMix64-style finalizer; see Vigna 2014 for the constants and rationale.
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// restartRNG returns the deterministic RNG owned by one restart.
// The derivation is pure in (seed, restart), so streams are identical no
// matter which goroutine runs the restart or in which order restarts finish.
//
// Complexity: O(1).
func restartRNG(seed int64, restart int) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(normalizeSeed(seed), uint64(restart))))
}

// sampleDistinct draws k distinct indices from [0..n-1] via a partial
// Fisher–Yates shuffle. Callers guarantee 1 ≤ k ≤ n.
//
// Complexity: O(n) time, O(n) space.
func sampleDistinct(n, k int, rng *rand.Rand) []int {
	idx := make([]int, n)

	var i, j int
	for i = 0; i < n; i++ {
		idx[i] = i
	}
	for i = 0; i < k; i++ {
		j = i + rng.Intn(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}

	return idx[:k]
}

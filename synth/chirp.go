// SPDX-License-Identifier: MIT
// Package: tscluster/synth
//
// chirp.go — deterministic linear chirp generator.
//
// Purpose:
//   - Produce a univariate linear chirp (frequency sweep) for tests/demos.
//   - Optional linear trend and Gaussian noise.
//   - Strict determinism with the same policy as Pulse.
//
// Contract:
//   - Chirp(n, seed, opts...) returns a 1×n series.Series (or nil).
//   - O(n) time, O(n) memory. No panics. No global state.
//
// Determinism policy (aligned with the other generators):
//   - If cfg.rng != nil → use cfg.rng (shared stream via WithRand(...)).
//   - Else → rng := rand.New(rand.NewSource(seed)).
//
// AI-Hints:
//   - Need exponential sweep? Swap linear fi with geometric interpolation.
//   - Want phase-continuous multi-chirp sequences? Reuse the same theta accumulator.

package synth

import (
	"math"

	"github.com/katalvlaran/tscluster/series"
)

const (
	// defChirpF0 is the default sweep start frequency (cycles/sample).
	defChirpF0 = 0.02
	// defChirpSweep is the terminal/start frequency ratio. At the default
	// start frequency the sweep ends at 0.25 cycles/sample; WithFrequency
	// rescales start and end together so the sweep shape is preserved.
	defChirpSweep = 12.5
)

// Precompute 2π to avoid repeated multiplications in the loop (micro-optimization).
const tau = 2.0 * math.Pi // τ = 2π

// seqChirpParams groups resolved knobs for the chirp generator.
type seqChirpParams struct {
	amp   float64 // amplitude > 0
	f0    float64 // start freq > 0
	f1    float64 // end   freq > 0
	sigma float64 // noise sigma ≥ 0
	trend float64 // linear trend increment per sample
}

// extractChirpParams maps synthConfig → seqChirpParams.
// WithFrequency moves the whole sweep: f1 keeps a fixed ratio to f0.
func extractChirpParams(cfg synthConfig) seqChirpParams {
	// Resolve the frequency sentinel (0 = "use the chirp default").
	f0 := cfg.frequency
	if f0 == unitZero {
		f0 = defChirpF0
	}

	return seqChirpParams{
		amp:   cfg.amplitude,
		f0:    f0,
		f1:    f0 * defChirpSweep,
		sigma: cfg.noiseSigma,
		trend: cfg.trendSlope,
	}
}

// Chirp returns a univariate length-n linear chirp: f sweeps from f0 to f1.
// Model:
//   - fi  = f0 + (f1 − f0) * i/(n−1)  (cycles/sample)
//   - θᵢ₊₁ = θᵢ + τ * fi               (phase accumulator, τ=2π)
//   - yᵢ  = A * sin(θᵢ) + trend*i + noise
//
// Validation:
//   - If n < 1 ⇒ return nil (invalid request).
//
// Complexity:
//   - O(n) time, O(n) memory.
func Chirp(n int, seed int64, opts ...Option) series.Series {
	// Validate size early.
	if n < 1 {
		return nil
	}

	// Resolve generator options.
	cfg := newSynthConfig(opts...)

	// Resolve chirp parameters; option constructors already rejected
	// meaningless values, so the bundle is valid by construction.
	p := extractChirpParams(cfg)

	// RNG selection (shared vs local).
	rng := rngFrom(cfg, seed)

	// Allocate output buffer.
	out := make([]float64, n)

	// Phase accumulator (start at 0 for reproducibility).
	theta := unitZero

	// Predeclare loop temporaries to avoid reallocation.
	var (
		t   float64 // normalized position in [0,1]
		fi  float64 // instantaneous frequency at sample i
		val float64 // sample value before store
	)

	// Fill deterministically.
	for i := 0; i < n; i++ {
		// Linear interpolation factor t in [0,1].
		if n > 1 {
			t = float64(i) / float64(n-1)
		} else {
			t = unitZero
		}

		// Instantaneous frequency fi (linear sweep).
		fi = p.f0 + (p.f1-p.f0)*t

		// Update phase (discrete-time integration with dt=1).
		theta += tau * fi

		// Base sinusoid.
		val = p.amp * math.Sin(theta)

		// Linear trend (predictable slope).
		val += p.trend * float64(i)

		// Additive Gaussian noise (optional).
		if p.sigma > 0 {
			val += p.sigma * rng.NormFloat64()
		}

		// Store sample.
		out[i] = val
	}

	// Wrap the locally-owned buffer as a single-channel series (no copy).
	return series.Series{out}
}

// SPDX-License-Identifier: MIT
// Package: tscluster/synth
//
// pulse.go — deterministic rectangular/triangular pulse generator.
//
// Purpose (single responsibility):
//   • Provide a reproducible univariate pulse series for tests, demos and
//     clustering fixtures.
//   • Shape controls: rectangular (duty ∈ [0,1]) or triangular (0..A envelope).
//   • Optional linear trend and additive Gaussian noise, both deterministic.
//
// Contract:
//   • Pulse(n, seed, opts...) returns a 1×n series.Series (or nil on invalid input).
//   • Strict determinism per (n, seed, options); no panics; no global state.
//   • O(n) time and O(n) memory; tiny constant factors.
//
// Determinism & testing:
//   • For a fixed seed and defaults, the first K samples are stable (golden-friendly).
//   • Duty=0.5 uses the same comparison as general duty (via frac<duty).
//
// AI-Hints (practical):
//   • For DC offsets or piecewise trends, stack them after base and before noise.
//   • For rectangular waveforms, frac := mod(i*f0,1) is faster than trig checks.

package synth

import (
	"math"

	"github.com/katalvlaran/tscluster/series"
)

// defPulseFreq is the default base frequency f0 in cycles/sample (>0). Period ≈ 8.
const defPulseFreq = 0.125

// seqPulseParams holds all resolved knobs for the pulse generator.
// Keeping a single struct makes validation and future expansion straightforward.
type seqPulseParams struct {
	amp        float64 // amplitude > 0
	f0         float64 // base frequency > 0 (cycles/sample)
	duty       float64 // rectangular duty in [0,1]
	triangular bool    // rectangular(false) or triangular(true)
	sigma      float64 // Gaussian noise sigma ≥ 0
	trend      float64 // linear trend increment per sample
}

// extractPulseParams maps synthConfig → seqPulseParams.
// All knobs flow from cfg; only the base frequency falls back to the
// pulse-specific default when WithFrequency was not applied.
func extractPulseParams(cfg synthConfig) seqPulseParams {
	// Resolve the frequency sentinel (0 = "use the pulse default").
	f0 := cfg.frequency
	if f0 == unitZero {
		f0 = defPulseFreq
	}

	// Return a fully specified bundle so Pulse does not branch on cfg.
	return seqPulseParams{
		amp:        cfg.amplitude,
		f0:         f0,
		duty:       cfg.duty,
		triangular: cfg.triangular,
		sigma:      cfg.noiseSigma,
		trend:      cfg.trendSlope,
	}
}

// Pulse returns a univariate length-n pulse series with optional trend and noise.
// Shape:
//   - Rectangular: y ∈ {0, A} chosen by phase fraction < duty.
//   - Triangular:  y ∈ [0, A] via 1 − |2*frac − 1| (no trig).
//
// Additions:
//   - Linear trend: y += trend * i.
//   - Gaussian noise: y += sigma * N(0,1) (deterministic per seed).
//
// Validation:
//   - If n < 1 ⇒ return nil (invalid request).
//
// Complexity:
//   - O(n) time, O(n) memory, constant-small overhead.
func Pulse(n int, seed int64, opts ...Option) series.Series {
	// Early size check avoids any allocations or RNG setup on invalid input.
	if n < 1 {
		return nil // Contract: invalid input → no data, never panic.
	}

	// Resolve deterministic configuration once (O(len(opts))).
	cfg := newSynthConfig(opts...) // Immutable config for this call.

	// Resolve pulse parameters from cfg; option constructors already
	// rejected meaningless values, so the bundle is valid by construction.
	p := extractPulseParams(cfg)

	// RNG selection: prefer cfg.rng to honor global determinism; otherwise fall back to 'seed'.
	rng := rngFrom(cfg, seed)

	// Allocate the output buffer exactly once (tight O(n) memory).
	out := make([]float64, n) // Pre-sized sample buffer.

	// Predeclare loop temporaries to avoid reallocation in tight loops.
	var (
		frac float64 // phase fraction in [0,1)
		base float64 // base waveform before trend/noise
		tri  float64 // triangular [0,1] envelope
	)

	// Fill all samples in a single pass — O(n) time.
	for i := 0; i < n; i++ {
		// Compute phase fraction in [0,1): frac = (i*f0) mod 1.
		// Using Mod avoids trig overhead and keeps rectangular/triangular unified.
		frac = math.Mod(float64(i)*p.f0, unitOne)

		// Branch on shape — keep the math simple within each case.
		if p.triangular {
			// Triangle in [0,1]: 1 − |2*frac − 1|.
			tri = unitOne - math.Abs(triDouble*frac-triCenter)

			base = p.amp * tri // Scale to [0..A].
		} else {
			// Rectangular in {0, A}: on when frac < duty, off otherwise.
			if frac < p.duty {
				base = p.amp
			} else {
				base = unitZero
			}
		}

		// Add predictable linear trend.
		base += p.trend * float64(i)

		// Add Gaussian noise only if enabled (sigma>0 keeps default paths clean).
		if p.sigma > 0 {
			base += p.sigma * rng.NormFloat64()
		}

		// Commit the final sample value.
		out[i] = base
	}

	// Wrap the locally-owned buffer as a single-channel series (no copy).
	return series.Series{out}
}

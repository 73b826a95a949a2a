// SPDX-License-Identifier: MIT
// Package: tscluster/synth
//
// ohlc.go — deterministic close-price series via discrete-time GBM.
//
// Purpose:
//   - Emit a reproducible daily close-price path for 'days' trading days
//     using a geometric-Brownian-motion model with intraday steps.
//   - Intraday steps keep the daily log-return distribution realistic while
//     only the close is exposed (clustering operates on one channel).
//   - Strict determinism: prefer cfg.rng if present; otherwise fall back to 'seed'.
//
// Contract:
//   - OHLCClose(days, seed, opts...) returns a 1×days series.Series (or nil).
//   - On invalid input (days<1) ⇒ return nil; never panic.
//   - O(days * steps) time; O(days) memory; steps is a tiny constant.
//
// Knob mapping (reuses the shared option set):
//   - WithTrend(k)   → daily drift μ     (default 0.0005 when not applied)
//   - WithNoise(s)   → daily volatility σ (default 0.02 when not applied)
//
// AI-Hints:
//   - To make paths closer to real markets: (a) increase intraday steps;
//     (b) add mild vol clustering via an internal multiplier; (c) post-round
//     prices to a tick (e.g., 0.01) outside this function.

package synth

import (
	"math"

	"github.com/katalvlaran/tscluster/series"
)

const (
	defOHLCStart     = 100.0  // Initial price S0 (>0)
	defOHLCDailyMu   = 0.0005 // Default daily drift μ
	defOHLCDailyVol  = 0.02   // Default daily volatility σ (≥0)
	defIntradaySteps = 8      // Fixed intraday steps per day (small constant)
)

// seqOHLCParams groups resolved knobs for the close-price generator.
type seqOHLCParams struct {
	S0    float64 // initial price > 0
	mu    float64 // daily drift
	vol   float64 // daily volatility ≥ 0
	steps int     // intraday steps per day ≥ 1
}

// extractOHLCParams maps synthConfig → seqOHLCParams.
// Drift and volatility fall back to market-flavored defaults unless the
// caller applied WithTrend/WithNoise; 0 is meaningful there (flat drift,
// deterministic path), hence the explicit set-tracking.
func extractOHLCParams(cfg synthConfig) seqOHLCParams {
	p := seqOHLCParams{
		S0:    defOHLCStart,
		mu:    defOHLCDailyMu,
		vol:   defOHLCDailyVol,
		steps: defIntradaySteps,
	}
	if cfg.trendSet {
		p.mu = cfg.trendSlope
	}
	if cfg.noiseSet {
		p.vol = cfg.noiseSigma
	}

	return p
}

// OHLCClose returns a deterministic univariate close-price series for
// 'days' trading days.
// Model (discrete GBM per intraday step with Δt = 1/steps):
//
//	S_{t+1} = S_t * exp((μ - 0.5σ²)Δt + σ√Δt * Z),  Z ~ N(0,1).
//
// The close of day d is the price after the last intraday step of that day.
//
// Complexity:
//   - O(days · steps) time, O(days) memory.
func OHLCClose(days int, seed int64, opts ...Option) series.Series {
	// Validate the requested number of days; if invalid, return nil.
	if days < 1 {
		return nil
	}

	// Resolve generator options once.
	cfg := newSynthConfig(opts...)

	// Resolve GBM parameters (option constructors guarantee σ ≥ 0).
	p := extractOHLCParams(cfg)

	// RNG selection: prefer shared cfg.rng for global determinism; else local fallback.
	rng := rngFrom(cfg, seed)

	// Pre-allocate the output exactly once: O(days) memory.
	out := make([]float64, days)

	// Initialize the starting price (strictly positive).
	S := p.S0

	// Precompute intraday constants (avoid recomputing inside loops).
	// Δt per intraday step; daily μ, σ are split across 'steps'.
	dt := 1.0 / float64(p.steps)        // time step
	driftTerm := p.mu - 0.5*p.vol*p.vol // (μ - 0.5 σ²), reused
	noiseScale := p.vol * math.Sqrt(dt) // σ √Δt, reused

	// Declare loop temporaries once (avoid reallocation in tight loops).
	var (
		d    int     // day index
		s    int     // intraday step index
		Z    float64 // standard normal draw
		incr float64 // log-return increment for the step
	)

	// Simulate day by day (outer loop) and steps within a day (inner loop).
	for d = 0; d < days; d++ {
		// Run the fixed number of intraday steps for this day.
		for s = 0; s < p.steps; s++ {
			// Draw a standard normal (deterministic per rng stream).
			Z = rng.NormFloat64()

			// Compute the log-increment for this step: (μ - 0.5σ²)Δt + σ√Δt * Z.
			incr = driftTerm*dt + noiseScale*Z

			// Update the price multiplicatively (GBM).
			S = S * math.Exp(incr)
		}

		// The close is the last price after the final intraday step.
		out[d] = S
	}

	// Wrap the locally-owned buffer as a single-channel series (no copy).
	return series.Series{out}
}

// SPDX-License-Identifier: MIT
// Package: tscluster/synth
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • synthConfig is the single source of truth for all generator knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newSynthConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng         = nil     (per-call seed fallback unless WithRand is given)
//   • amplitude   = 1.0
//   • frequency   = 0       (sentinel: each generator resolves its own base)
//   • duty        = 0.5
//   • triangular  = false
//   • noiseSigma  = 0.0
//   • trendSlope  = 0.0
//
// AI-Hints:
//   • WithRand shares one RNG stream across composed calls; otherwise each
//     call seeds a private stream from its 'seed' argument.
//   • frequency uses 0 as "unset" because WithFrequency rejects f0 ≤ 0, so
//     a zero can only mean "fall back to the generator default".
//   • noiseSet/trendSet exist for OHLCClose, where 0 is a meaningful value
//     (zero volatility / zero drift) distinct from "use the default".

package synth

import (
	"math/rand" // RNG source for stochastic generators
)

// synthConfig aggregates all knobs used by the generators.
// It is passed by VALUE to generators (immutable to callers).
type synthConfig struct {
	// RNG for noise draws; nil means "seed a private stream per call".
	rng *rand.Rand

	// Waveform controls (Pulse/Chirp).
	amplitude  float64 // > 0
	frequency  float64 // > 0 when set; 0 = generator-specific default
	duty       float64 // rectangular duty cycle in [0,1]
	triangular bool    // pulse shape: rectangular (false) or triangular (true)

	// Stochastic controls (Pulse/Chirp noise; OHLC drift/volatility).
	noiseSigma float64 // ≥ 0
	trendSlope float64 // any real
	noiseSet   bool    // WithNoise was applied (0 is meaningful for OHLC)
	trendSet   bool    // WithTrend was applied (0 is meaningful for OHLC)
}

// Deterministic defaults (named, no magic numbers).
const (
	defaultAmplitude  = 1.0   // waveform amplitude A
	defaultDuty       = 0.5   // rectangular duty cycle
	defaultTriangular = false // rectangular unless WithTriangular
	defaultNoiseSigma = 0.0   // additive Gaussian noise stdev
	defaultTrendSlope = 0.0   // linear trend increment per sample
)

// Tiny numeric named constants shared by the waveform generators.
const (
	unitZero  = 0.0 // named zero to avoid magic 0.0
	unitOne   = 1.0 // named one to avoid magic 1.0
	triDouble = 2.0 // factor used in triangular wave: 2*frac-1
	triCenter = 1.0 // center offset used in triangular wave
)

// newSynthConfig constructs a config with deterministic defaults and applies
// all options in order. Later options override earlier ones.
// Complexity: O(len(opts)) time, O(1) space.
func newSynthConfig(opts ...Option) synthConfig {
	// Start with strict, deterministic defaults.
	cfg := synthConfig{
		rng:        nil,               // no shared stream unless explicitly set
		amplitude:  defaultAmplitude,  // 1.0
		frequency:  unitZero,          // sentinel: resolve per generator
		duty:       defaultDuty,       // 0.5
		triangular: defaultTriangular, // rectangular
		noiseSigma: defaultNoiseSigma, // 0.0
		trendSlope: defaultTrendSlope, // 0.0
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	// Return by value to encourage immutability for callers.
	return cfg
}

// rngFrom returns cfg.rng if present (shared stream), else a local rand
// seeded by 'seed'. This keeps determinism across composed calls.
func rngFrom(cfg synthConfig, seed int64) *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}

	return rand.New(rand.NewSource(seed))
}

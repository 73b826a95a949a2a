// SPDX-License-Identifier: MIT
// Package: tscluster/synth
//
// options.go — functional options for the synth generators.
//
// Contract (strict):
//   • Options are functional (type Option func(*synthConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves MUST NOT panic; they return nil instead.
//   • Determinism is explicit: seeding is done per call or via WithRand.
//   • No hidden globals; everything flows through synthConfig.
//
// AI-Hints:
//   • Prefer the per-call seed argument for independent fixtures; use
//     WithRand only when several generators must share one stream.
//   • WithNoise/WithTrend double as volatility/drift for OHLCClose.

package synth

import (
	"math/rand" // RNG source for stochastic generators
)

// Option customizes a generator by mutating a synthConfig instance before
// any samples are produced.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*synthConfig)

// WithRand provides an explicit RNG shared across composed calls.
// Panics on nil; prefer the per-call seed for independent fixtures.
// Complexity: O(1) time, O(1) space.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("synth: WithRand(nil)")
	}
	return func(c *synthConfig) {
		// Attach the RNG; callers decide the seed policy.
		c.rng = r
	}
}

// WithAmplitude sets the waveform amplitude A (>0) for Pulse/Chirp.
// Panics if A <= 0 to avoid degenerate outputs.
// Complexity: O(1) time, O(1) space.
func WithAmplitude(A float64) Option {
	if A <= 0 {
		panic("synth: WithAmplitude(A<=0)")
	}
	return func(c *synthConfig) {
		// Deterministic scalar controlling signal scale.
		c.amplitude = A
	}
}

// WithFrequency sets the base frequency f0 (>0, cycles/sample).
// Pulse reads it as the period fraction; Chirp as the sweep start.
// Panics if f0 <= 0.
// Complexity: O(1) time, O(1) space.
func WithFrequency(f0 float64) Option {
	if f0 <= 0 {
		panic("synth: WithFrequency(f0<=0)")
	}
	return func(c *synthConfig) {
		// Fundamental frequency parameter for waveform synthesis.
		c.frequency = f0
	}
}

// WithDuty sets the rectangular duty cycle in [0,1] for Pulse.
// Panics if duty is outside [0,1]; 0 and 1 are legal degenerate pulses.
// Complexity: O(1) time, O(1) space.
func WithDuty(duty float64) Option {
	if duty < 0 || duty > 1 {
		panic("synth: WithDuty(duty outside [0,1])")
	}
	return func(c *synthConfig) {
		// Fraction of each period the rectangular pulse stays at A.
		c.duty = duty
	}
}

// WithTriangular switches Pulse from rectangular to a triangular envelope.
// Complexity: O(1) time, O(1) space.
func WithTriangular() Option {
	return func(c *synthConfig) {
		// Shape flag; duty is ignored for triangular pulses.
		c.triangular = true
	}
}

// WithNoise sets Gaussian noise sigma (>=0) for Pulse/Chirp, and the daily
// volatility for OHLCClose. Panics if sigma < 0. Draws are seeded by the
// call's RNG (per-call seed or WithRand stream).
// Complexity: O(1) time, O(1) space.
func WithNoise(sigma float64) Option {
	if sigma < 0 {
		panic("synth: WithNoise(sigma<0)")
	}
	return func(c *synthConfig) {
		// Standard deviation for additive noise; 0 means noiseless.
		c.noiseSigma = sigma
		c.noiseSet = true
	}
}

// WithTrend sets the linear trend coefficient k for Pulse/Chirp, and the
// daily drift for OHLCClose. Any real value is accepted (including 0).
// Complexity: O(1) time, O(1) space.
func WithTrend(k float64) Option {
	return func(c *synthConfig) {
		// Adds k*t to waveform samples; OHLCClose reads it as drift μ.
		c.trendSlope = k
		c.trendSet = true
	}
}

// Package synth provides deterministic synthetic time-series generators for
// tests, examples and benchmarks. It lives alongside the series and kmeans
// packages to centralize fixture construction: every generator is a pure
// function of its arguments, so fixtures stay reproducible across runs,
// platforms and parallelism settings.
//
// The package offers the following key components:
//
//   - Waveform generators (univariate series.Series sources):
//     – Pulse:     rectangular or triangular pulse train (duty, amplitude).
//     – Chirp:     linear frequency sweep with a phase accumulator.
//     – OHLCClose: daily close prices from a discrete-time GBM path.
//   - Dataset generator:
//     – Blobs:     perCluster Gaussian-jittered copies of each prototype
//     series, returned cluster-major with ground-truth labels.
//   - Functional options (shared across generators):
//     – WithAmplitude, WithFrequency, WithDuty, WithTriangular — waveform
//     shape; WithNoise, WithTrend — stochastic terms (doubling as
//     volatility/drift for OHLCClose); WithRand — a shared RNG stream.
//
// Guarantees:
//
//   - Strict determinism per (size, seed, options); no global state.
//   - Fast-fail on meaningless option parameters via panics in option
//     constructors; generators themselves never panic and return nil on
//     invalid sizes instead.
//   - O(n) generation with exactly one output allocation per call.
//
// See individual function documentation for detailed contracts, parameter
// descriptions, and performance notes.
package synth

// Package distance resolves and evaluates time-series distances for the
// clustering engine: lockstep Lp metrics, the elastic DTW metric, plain
// callables, and a pairwise-matrix helper.
//
// What
//
//   - Metric: a named, symmetric, non-negative distance over series.Series.
//   - Aligner: the elastic capability — metrics that also expose the
//     optimal warping path (required by alignment-based averaging).
//   - Provider(name): registry lookup for "euclidean", "sqeuclidean",
//     "manhattan", "chebyshev", "dtw"; unknown names yield ErrUnknownMetric
//     listing the valid choices.
//   - Wrap(name, fn): lift any Func callable into a Metric without
//     touching the registry.
//   - Pairwise(a, b, m): full distance matrix between two series sets.
//
// Shape rules
//
//	Lockstep metrics require identical shapes and surface the series
//	package sentinels (ErrChannelMismatch, ErrLengthMismatch) otherwise.
//	The dtw metric requires equal channel counts only; sample counts may
//	differ, with warping absorbing the difference.
//
// Capability dispatch
//
//	Elastic behavior is discovered through a single interface assertion:
//
//	    if al, ok := m.(distance.Aligner); ok { dist, path, err := al.Align(a, b) }
//
//	No reflection, no name sniffing: a custom metric opts into elastic
//	treatment by implementing Aligner.
//
// Numerics
//
//	Per-channel norms delegate to gonum (floats.Distance); multichannel
//	series combine channels per metric family (sum for L1/squared-L2,
//	root of summed squares for L2, max for L∞).
//
// Errors
//
//   - ErrUnknownMetric           for unregistered names (Provider).
//   - series.ErrEmptySeries etc. for shape violations (pass-through).
package distance

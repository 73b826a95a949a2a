// Package series defines the multichannel time-series value types shared by
// the distance, kmeans and synth packages, together with the shape-validation
// helpers that guard every public entry point of the library.
//
// What
//
//   - Series: one time series as [channel][sample] float64 values.
//     Univariate series are simply 1×L.
//   - Constructors: New (zeroed), Univariate (copying), Clone (deep copy).
//   - Accessors: Channels, Len, At, EqualWithin.
//   - Validation: Validate (one series), ValidateSet (uniform channel count
//     across a dataset), ValidateSetUniform (uniform sample count too),
//     ValidateSetFinite (no NaN/±Inf samples).
//
// Shape contract
//
//	A valid Series has ≥1 channel and all channels share one sample count.
//	A valid dataset is non-empty and all members share one channel count.
//	Sample counts may differ across dataset members: elastic distances
//	(see the dtw package) align series of different lengths. Consumers
//	that require equal lengths (lockstep metrics, elementwise averaging)
//	call ValidateSetUniform instead.
//
// Ownership
//
//	Series behaves as a value in the public API of this library: functions
//	that retain or return series always deep-copy via Clone, so callers can
//	never observe their inputs mutating and returned centers never alias
//	internal state.
//
// Errors
//
//   - ErrEmptySeries    if a series has no channels or an empty channel.
//   - ErrRaggedChannels if channels of one series differ in length.
//   - ErrEmptyDataset   if a dataset has no members.
//   - ErrChannelMismatch if dataset members disagree on channel count.
//   - ErrLengthMismatch  if uniform sample counts are required but violated.
//   - ErrNonFiniteSample if a sample is NaN or ±Inf.
//
// Complexity: all helpers are O(total samples) or cheaper; no allocations
// except in the copying constructors.
package series

package series

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for shape validation.
var (
	// ErrEmptySeries is returned when a series has no channels or an empty channel.
	ErrEmptySeries = errors.New("series: empty series")

	// ErrRaggedChannels is returned when channels of one series differ in length.
	ErrRaggedChannels = errors.New("series: channels differ in length")

	// ErrEmptyDataset is returned when a dataset contains no series.
	ErrEmptyDataset = errors.New("series: empty dataset")

	// ErrChannelMismatch is returned when dataset members disagree on channel count.
	ErrChannelMismatch = errors.New("series: channel count mismatch")

	// ErrLengthMismatch is returned when uniform sample counts are required but violated.
	ErrLengthMismatch = errors.New("series: sample count mismatch")

	// ErrNonFiniteSample is returned when a sample is NaN or ±Inf.
	ErrNonFiniteSample = errors.New("series: non-finite sample")
)

// Series is one multichannel time series, indexed [channel][sample].
// A univariate series of length L is a 1×L Series.
type Series [][]float64

// New returns a zero-valued Series with the given shape.
// Returns nil if channels < 1 or samples < 1.
//
// Complexity: O(channels·samples) time and memory.
func New(channels, samples int) Series {
	if channels < 1 || samples < 1 {
		return nil
	}
	s := make(Series, channels)
	for c := range s {
		s[c] = make([]float64, samples)
	}

	return s
}

// Univariate wraps a copy of vals as a single-channel Series.
// Returns nil for an empty input.
//
// Complexity: O(len(vals)).
func Univariate(vals ...float64) Series {
	if len(vals) == 0 {
		return nil
	}
	ch := make([]float64, len(vals))
	copy(ch, vals)

	return Series{ch}
}

// Channels reports the number of channels.
func (s Series) Channels() int { return len(s) }

// Len reports the per-channel sample count (0 for an empty series).
// Valid series have uniform channel lengths; Len reads channel 0.
func (s Series) Len() int {
	if len(s) == 0 {
		return 0
	}

	return len(s[0])
}

// At returns the sample at channel c, position t.
// Indices follow slice semantics: out-of-range access panics.
func (s Series) At(c, t int) float64 { return s[c][t] }

// Clone returns a deep copy of s. Clone(nil) is nil.
//
// Complexity: O(total samples).
func (s Series) Clone() Series {
	if s == nil {
		return nil
	}
	out := make(Series, len(s))
	for c := range s {
		out[c] = make([]float64, len(s[c]))
		copy(out[c], s[c])
	}

	return out
}

// EqualWithin reports whether s and o share a shape and agree elementwise
// within eps. NaN never compares equal.
//
// Complexity: O(total samples).
func (s Series) EqualWithin(o Series, eps float64) bool {
	if len(s) != len(o) {
		return false
	}
	for c := range s {
		if len(s[c]) != len(o[c]) {
			return false
		}
		for t := range s[c] {
			if math.Abs(s[c][t]-o[c][t]) > eps {
				return false
			}
		}
	}

	return true
}

// Validate checks the single-series shape contract: at least one channel,
// no empty channels, and one sample count shared by all channels.
//
// Complexity: O(channels).
func Validate(s Series) error {
	if len(s) == 0 {
		return ErrEmptySeries
	}
	want := len(s[0])
	if want == 0 {
		return ErrEmptySeries
	}
	for c := 1; c < len(s); c++ {
		switch {
		case len(s[c]) == 0:
			return ErrEmptySeries
		case len(s[c]) != want:
			return ErrRaggedChannels
		}
	}

	return nil
}

// ValidateSet checks the dataset shape contract: non-empty, every member
// valid, and one channel count shared by all members. Sample counts may
// differ across members (elastic distances handle ragged lengths).
//
// Complexity: O(dataset size).
func ValidateSet(ds []Series) error {
	if len(ds) == 0 {
		return ErrEmptyDataset
	}
	channels := ds[0].Channels()
	for _, s := range ds {
		if err := Validate(s); err != nil {
			return err
		}
		if s.Channels() != channels {
			return ErrChannelMismatch
		}
	}

	return nil
}

// ValidateSetUniform checks ValidateSet plus one sample count shared by all
// members, as required by lockstep metrics and elementwise averaging.
//
// Complexity: O(dataset size).
func ValidateSetUniform(ds []Series) error {
	if err := ValidateSet(ds); err != nil {
		return err
	}
	samples := ds[0].Len()
	for _, s := range ds {
		if s.Len() != samples {
			return ErrLengthMismatch
		}
	}

	return nil
}

// ValidateSetFinite scans every sample and rejects NaN and ±Inf values.
// Non-finite samples would otherwise poison distance sums silently, so
// they are refused up front rather than surfacing as bogus results.
//
// Complexity: O(total samples).
func ValidateSetFinite(ds []Series) error {
	for i, s := range ds {
		for c := range s {
			for t, v := range s[c] {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					return fmt.Errorf("%w: series %d, channel %d, sample %d (%v)",
						ErrNonFiniteSample, i, c, t, v)
				}
			}
		}
	}

	return nil
}

package dtw

import "math"

// DTWMulti computes the Dynamic Time Warping distance between two
// multichannel sequences, indexed [channel][sample]. All channels warp
// together (dependent warping): the local cost of aligning sample i of a
// with sample j of b is the sum over channels of |a[c][i] − b[c][j]|,
// which degenerates to the DTW cost for a single channel.
//
// Validation:
//   - empty inputs or empty channels       → ErrEmptyInput
//   - differing channel counts, ragged
//     channels within one input            → ErrBadInput
//   - option errors as in DTW.
//
// Complexity: O(C·n·m) time; memory per MemoryMode.
func DTWMulti(a, b [][]float64, opts *Options) (float64, []Coord, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return 0, nil, err
	}

	n, err := channelLen(a)
	if err != nil {
		return 0, nil, err
	}
	m, err := channelLen(b)
	if err != nil {
		return 0, nil, err
	}
	if len(a) != len(b) {
		return 0, nil, ErrBadInput
	}

	// Single channel: same recurrence, cheaper cost closure.
	if len(a) == 1 {
		ac, bc := a[0], b[0]
		cost := func(i, j int) float64 { return math.Abs(ac[i-1] - bc[j-1]) }

		return warp(n, m, cost, o)
	}

	cost := func(i, j int) float64 {
		var sum float64
		for c := range a {
			sum += math.Abs(a[c][i-1] - b[c][j-1])
		}

		return sum
	}

	return warp(n, m, cost, o)
}

// channelLen validates one multichannel input and returns its sample count.
func channelLen(x [][]float64) (int, error) {
	if len(x) == 0 {
		return 0, ErrEmptyInput
	}
	n := len(x[0])
	if n == 0 {
		return 0, ErrEmptyInput
	}
	for c := 1; c < len(x); c++ {
		switch {
		case len(x[c]) == 0:
			return 0, ErrEmptyInput
		case len(x[c]) != n:
			return 0, ErrBadInput
		}
	}

	return n, nil
}

package series_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tscluster/series"
)

// TestNew_ShapeAndZeroFill verifies New allocates the requested shape
// with zero-valued samples, and rejects degenerate shapes with nil.
func TestNew_ShapeAndZeroFill(t *testing.T) {
	s := series.New(2, 3)
	require.NotNil(t, s)
	assert.Equal(t, 2, s.Channels(), "channel count")
	assert.Equal(t, 3, s.Len(), "sample count")
	assert.Equal(t, 0.0, s.At(1, 2), "fresh series must be zero-filled")

	assert.Nil(t, series.New(0, 3), "channels<1 must yield nil")
	assert.Nil(t, series.New(1, 0), "samples<1 must yield nil")
}

// TestUnivariate_CopiesInput ensures Univariate deep-copies its arguments,
// so later mutation of the source never leaks into the series.
func TestUnivariate_CopiesInput(t *testing.T) {
	src := []float64{1, 2, 3}
	s := series.Univariate(src...)
	require.NotNil(t, s)
	assert.Equal(t, 1, s.Channels())
	assert.Equal(t, 3, s.Len())

	src[0] = 99
	assert.Equal(t, 1.0, s.At(0, 0), "series must not alias the input slice")

	assert.Nil(t, series.Univariate(), "empty input must yield nil")
}

// TestClone_DeepCopy verifies Clone yields an equal series that shares
// no backing storage with the original.
func TestClone_DeepCopy(t *testing.T) {
	s := series.Series{{1, 2}, {3, 4}}
	c := s.Clone()
	assert.True(t, s.EqualWithin(c, 0), "clone must equal the source")

	c[0][0] = 42
	assert.Equal(t, 1.0, s.At(0, 0), "mutating the clone must not touch the source")

	assert.Nil(t, series.Series(nil).Clone(), "Clone(nil) is nil")
}

// TestEqualWithin covers shape mismatch, tolerance acceptance and rejection.
func TestEqualWithin(t *testing.T) {
	a := series.Series{{1, 2, 3}}
	b := series.Series{{1, 2, 3.05}}

	assert.True(t, a.EqualWithin(b, 0.1), "within eps must compare equal")
	assert.False(t, a.EqualWithin(b, 0.01), "beyond eps must compare unequal")
	assert.False(t, a.EqualWithin(series.Series{{1, 2}}, 1), "length mismatch")
	assert.False(t, a.EqualWithin(series.Series{{1, 2, 3}, {0, 0, 0}}, 1), "channel mismatch")
}

// TestValidate_SingleSeries exercises the single-series shape contract.
func TestValidate_SingleSeries(t *testing.T) {
	assert.NoError(t, series.Validate(series.Series{{1, 2}, {3, 4}}))

	assert.ErrorIs(t, series.Validate(nil), series.ErrEmptySeries, "nil series")
	assert.ErrorIs(t, series.Validate(series.Series{}), series.ErrEmptySeries, "no channels")
	assert.ErrorIs(t, series.Validate(series.Series{{}}), series.ErrEmptySeries, "empty channel")
	assert.ErrorIs(t, series.Validate(series.Series{{1, 2}, {}}), series.ErrEmptySeries, "one empty channel")
	assert.ErrorIs(t, series.Validate(series.Series{{1, 2}, {3}}), series.ErrRaggedChannels, "ragged channels")
}

// TestValidateSet covers dataset-level contracts: emptiness, member validity,
// channel uniformity, and ragged sample counts staying legal.
func TestValidateSet(t *testing.T) {
	ds := []series.Series{
		series.Univariate(1, 2, 3),
		series.Univariate(4, 5), // shorter member is fine for elastic consumers
	}
	assert.NoError(t, series.ValidateSet(ds))

	assert.ErrorIs(t, series.ValidateSet(nil), series.ErrEmptyDataset)
	assert.ErrorIs(t, series.ValidateSet([]series.Series{}), series.ErrEmptyDataset)

	bad := []series.Series{series.Univariate(1), {{1}, {2}}}
	assert.ErrorIs(t, series.ValidateSet(bad), series.ErrChannelMismatch)

	invalid := []series.Series{series.Univariate(1), {{1, 2}, {3}}}
	assert.ErrorIs(t, series.ValidateSet(invalid), series.ErrRaggedChannels)
}

// TestValidateSetUniform requires one sample count across members.
func TestValidateSetUniform(t *testing.T) {
	ok := []series.Series{series.Univariate(1, 2), series.Univariate(3, 4)}
	assert.NoError(t, series.ValidateSetUniform(ok))

	ragged := []series.Series{series.Univariate(1, 2), series.Univariate(3)}
	assert.ErrorIs(t, series.ValidateSetUniform(ragged), series.ErrLengthMismatch)
}

// TestValidateSetFinite rejects NaN and ±Inf samples and pinpoints the
// offending coordinates in the error message.
func TestValidateSetFinite(t *testing.T) {
	ok := []series.Series{series.Univariate(1, 2), series.Univariate(-3, 0)}
	assert.NoError(t, series.ValidateSetFinite(ok))

	nan := []series.Series{series.Univariate(1, math.NaN())}
	err := series.ValidateSetFinite(nan)
	require.ErrorIs(t, err, series.ErrNonFiniteSample)
	assert.Contains(t, err.Error(), "series 0, channel 0, sample 1")

	inf := []series.Series{series.Univariate(0), series.Univariate(math.Inf(-1))}
	err = series.ValidateSetFinite(inf)
	require.ErrorIs(t, err, series.ErrNonFiniteSample)
	assert.Contains(t, err.Error(), "series 1")
}

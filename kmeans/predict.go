package kmeans

import (
	"fmt"

	"github.com/katalvlaran/tscluster/series"
)

// Predict labels every instance of ds with its nearest fitted center,
// using the metric the model was fitted with and the assignment tie rule
// of Fit (equal distances resolve to the lowest center index). Centers are
// frozen: Predict never re-estimates anything, so predicting the training
// set reproduces Model.Labels.
//
// Inputs are validated against the fitted shape: the channel count must
// match, and metrics without elastic alignment additionally require the
// fitted sample count. A zero-value or copied-around unfitted Model yields
// ErrNotFitted.
//
// Complexity: O(n·k) metric evaluations.
func (m *Model) Predict(ds []series.Series) ([]int, error) {
	if !m.IsFitted() {
		return nil, ErrNotFitted
	}
	if err := series.ValidateSet(ds); err != nil {
		return nil, err
	}
	if got := ds[0].Channels(); got != m.channels {
		return nil, fmt.Errorf("%w: fitted on %d channels, got %d", series.ErrChannelMismatch, m.channels, got)
	}
	if !m.elastic {
		for i, s := range ds {
			if s.Len() != m.samples {
				return nil, fmt.Errorf("%w: fitted on %d samples, series %d has %d",
					series.ErrLengthMismatch, m.samples, i, s.Len())
			}
		}
	}
	if err := series.ValidateSetFinite(ds); err != nil {
		return nil, err
	}

	labels := make([]int, len(ds))
	for i, s := range ds {
		c, _, err := nearestCenter(s, m.Centers, m.metric)
		if err != nil {
			return nil, err
		}
		labels[i] = c
	}

	return labels, nil
}

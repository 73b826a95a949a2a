package distance

import (
	"github.com/katalvlaran/tscluster/dtw"
	"github.com/katalvlaran/tscluster/series"
)

// DTWMetric is the elastic registry metric. It implements both Metric and
// Aligner, accepts series of different sample counts, and carries its own
// dtw.Options (window, slope penalty, memory mode).
type DTWMetric struct {
	opts dtw.Options
}

// NewDTW returns a DTW metric with the given warping options.
// ReturnPath is ignored: Distance never backtracks, Align always does.
func NewDTW(opts dtw.Options) *DTWMetric {
	return &DTWMetric{opts: opts}
}

// defaultElasticOptions tunes dtw defaults for distance-only workloads:
// rolling storage, since the registry metric backtracks only via Align.
func defaultElasticOptions() dtw.Options {
	o := dtw.DefaultOptions()
	o.MemoryMode = dtw.TwoRows

	return o
}

// Name reports the registry name "dtw".
func (m *DTWMetric) Name() string { return ElasticDTW }

// Options returns a copy of the warping configuration.
func (m *DTWMetric) Options() dtw.Options { return m.opts }

// Distance computes the DTW distance between a and b. Channel counts must
// agree; sample counts are free to differ.
//
// Complexity: O(C·n·m) time; memory per the configured MemoryMode.
func (m *DTWMetric) Distance(a, b series.Series) (float64, error) {
	if err := elasticShape(a, b); err != nil {
		return 0, err
	}
	o := m.opts
	o.ReturnPath = false

	dist, _, err := dtw.DTWMulti(a, b, &o)

	return dist, err
}

// Align computes the DTW distance together with the optimal warping path.
// Path recovery needs the full DP matrix, so Align overrides the configured
// MemoryMode with FullMatrix.
//
// Complexity: O(C·n·m) time, O(n·m) memory.
func (m *DTWMetric) Align(a, b series.Series) (float64, []dtw.Coord, error) {
	if err := elasticShape(a, b); err != nil {
		return 0, nil, err
	}
	o := m.opts
	o.ReturnPath = true
	o.MemoryMode = dtw.FullMatrix

	return dtw.DTWMulti(a, b, &o)
}

// elasticShape enforces the elastic-metric contract: both series valid and
// channel counts equal. Sample counts are deliberately unconstrained.
func elasticShape(a, b series.Series) error {
	if err := series.Validate(a); err != nil {
		return err
	}
	if err := series.Validate(b); err != nil {
		return err
	}
	if a.Channels() != b.Channels() {
		return series.ErrChannelMismatch
	}

	return nil
}

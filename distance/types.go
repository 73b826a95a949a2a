// Package distance defines the metric abstractions shared by the clustering
// engine: plain callables, named registry metrics, and the elastic-alignment
// capability.
package distance

import (
	"errors"

	"github.com/katalvlaran/tscluster/dtw"
	"github.com/katalvlaran/tscluster/series"
)

// Sentinel errors for metric resolution.
var (
	// ErrUnknownMetric is returned by Provider for names absent from the registry.
	ErrUnknownMetric = errors.New("distance: unknown metric")
)

// Func is the plain-callable form of a distance: any symmetric, non-negative
// function over two series. Callables participate in clustering without
// registration; see Wrap to lift one into a Metric.
type Func func(a, b series.Series) (float64, error)

// Metric is a named distance over series. Implementations must be symmetric
// (d(a,b)=d(b,a)), non-negative, and safe for concurrent use.
type Metric interface {
	// Name reports the registry name (or a caller-chosen label for wrapped callables).
	Name() string

	// Distance computes the distance between a and b.
	// Shape violations surface as series sentinel errors.
	Distance(a, b series.Series) (float64, error)
}

// Aligner is the elastic capability: metrics that can also report the
// alignment path coupling two series. Averaging strategies that warp
// members onto a reference (see the kmeans package) require this
// capability and reject metrics without it at configuration time.
type Aligner interface {
	Metric

	// Align returns the distance together with the optimal warping path.
	Align(a, b series.Series) (float64, []dtw.Coord, error)
}

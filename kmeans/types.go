// Package kmeans - sentinel errors, enums, options and result types for
// time-series k-means clustering.
package kmeans

import (
	"context"
	"errors"

	"github.com/katalvlaran/tscluster/distance"
	"github.com/katalvlaran/tscluster/dtw"
	"github.com/katalvlaran/tscluster/series"
)

// Sentinel errors for configuration and fitting.
var (
	// ErrBadClusterCount is returned when k < 1.
	ErrBadClusterCount = errors.New("kmeans: cluster count must be at least 1")

	// ErrTooFewInstances is returned when k exceeds the dataset size.
	ErrTooFewInstances = errors.New("kmeans: more clusters than instances")

	// ErrUnknownInit is returned for initializer names absent from the registry.
	ErrUnknownInit = errors.New("kmeans: unknown initializer")

	// ErrAveragingMismatch is returned when the averaging method cannot serve
	// the configured metric: elementwise mean with an elastic (Aligner) metric,
	// or alignment-based averaging with a metric that cannot align.
	ErrAveragingMismatch = errors.New("kmeans: averaging method incompatible with metric")

	// ErrBadOption is returned for malformed Options fields (negative
	// tolerances, iteration counts, worker counts, ambiguous metric choice).
	ErrBadOption = errors.New("kmeans: invalid option")

	// ErrAllRestartsFailed is returned by Fit when no restart produced a
	// result; it wraps the first restart failure.
	ErrAllRestartsFailed = errors.New("kmeans: all restarts failed")

	// ErrNotFitted is returned by Predict on a model that has not been fitted.
	ErrNotFitted = errors.New("kmeans: model is not fitted")

	// ErrBadLabels is returned when a label slice does not match the dataset.
	ErrBadLabels = errors.New("kmeans: labels do not match dataset")
)

// InitMethod names a center-initialization strategy. The registry is fixed:
// unknown names are a configuration error carrying the valid choices.
type InitMethod string

const (
	// InitForgy draws k distinct instances uniformly at random as the
	// starting centers.
	InitForgy InitMethod = "forgy"

	// InitKMeansPP seeds centers with D²-weighted sampling: each next center
	// is drawn proportionally to the squared distance from the nearest
	// already-chosen center.
	InitKMeansPP InitMethod = "kmeans++"
)

// AveragingMethod selects how cluster centers are recomputed.
type AveragingMethod int

const (
	// AutoAverage resolves to DBAAverage for elastic (Aligner) metrics and
	// MeanAverage otherwise. The default.
	AutoAverage AveragingMethod = iota

	// MeanAverage recomputes each center as the elementwise mean of its
	// members. Valid only for non-elastic metrics: under warping, the
	// positional mean is not a meaningful representative.
	MeanAverage

	// DBAAverage refines each center by alignment-based averaging (DTW
	// Barycenter Averaging): members are warped onto the current center and
	// accumulated along the alignment paths. Requires an Aligner metric.
	DBAAverage
)

// String returns the method name used in error messages.
func (m AveragingMethod) String() string {
	switch m {
	case MeanAverage:
		return "mean"
	case DBAAverage:
		return "dba"
	default:
		return "auto"
	}
}

// runState tracks the convergence controller of one restart.
type runState int

const (
	// running: the iteration loop is still making progress.
	running runState = iota

	// stateConverged: center movement fell within Tol, or two consecutive
	// assignments produced identical labels.
	stateConverged

	// stateMaxIter: the iteration cap was reached before convergence.
	stateMaxIter
)

// IterationHook observes one completed assignment step of one restart.
// With Parallel > 1 it is invoked from multiple goroutines and must be
// safe for concurrent use.
type IterationHook func(restart, iteration int, inertia float64)

// EmptyClusterHook observes a deterministic empty-cluster recovery: during
// iteration `iteration` of restart `restart`, the instance `instance` was
// relabeled into the empty cluster `cluster`. Concurrency as IterationHook.
type EmptyClusterHook func(restart, iteration, cluster, instance int)

// Options configures Fit. The zero value is usable: meaningless zeros
// (restart/iteration counts) resolve to the defaults below, meaningful
// zeros (Tol, Seed, worker counts) keep their documented zero semantics.
type Options struct {
	// Metric is a distance registry name ("euclidean", "sqeuclidean",
	// "manhattan", "chebyshev", "dtw"). Empty means "euclidean".
	Metric string

	// Distance supplies an explicit metric instance, overriding Metric.
	// Supply a distance.Aligner to opt a custom metric into elastic
	// averaging. Mutually exclusive with DistanceFunc.
	Distance distance.Metric

	// DistanceFunc supplies a plain callable, overriding Metric. Wrapped
	// callables are treated as non-elastic. Mutually exclusive with Distance.
	DistanceFunc distance.Func

	// DTW configures the named "dtw" metric (window, slope penalty, memory
	// mode). Ignored for other metrics.
	DTW dtw.Options

	// Init selects the center initializer. Empty means InitForgy.
	Init InitMethod

	// Averaging selects the center-update strategy. Default AutoAverage.
	Averaging AveragingMethod

	// NumRestarts is the number of independent restarts; the restart with
	// the strictly lowest inertia wins, earliest index on ties.
	// 0 resolves to 10; negative values are rejected.
	NumRestarts int

	// MaxIter caps the iterations of one restart. 0 resolves to 300;
	// negative values are rejected.
	MaxIter int

	// Tol is the convergence threshold on total center movement, measured
	// with the configured metric. 0 demands zero movement; negative values
	// are rejected.
	Tol float64

	// BarycenterMaxIter caps the refinement loop of alignment-based
	// averaging per center update. 0 resolves to 10; negative values are
	// rejected.
	BarycenterMaxIter int

	// SquaredInertia switches inertia from Σ d to Σ d² over winning distances.
	SquaredInertia bool

	// Seed feeds the deterministic RNG; restart i derives its own stream
	// from (Seed, i). Seed 0 selects the fixed default stream.
	Seed int64

	// Parallel bounds how many restarts run concurrently; values ≤ 1 run
	// serially. Results are identical for every Parallel value.
	Parallel int

	// AssignWorkers bounds the per-instance fan-out inside one assignment
	// step; values ≤ 1 run serially. Results are identical for every count.
	AssignWorkers int

	// OnIteration, if set, observes every completed assignment step.
	OnIteration IterationHook

	// OnEmptyCluster, if set, observes every empty-cluster recovery.
	OnEmptyCluster EmptyClusterHook

	// Ctx allows cancellation; checked once per restart iteration.
	// Nil means context.Background().
	Ctx context.Context
}

// Default knobs, mirroring the classic estimator surface.
const (
	// DefaultNumRestarts is the number of restarts when Options.NumRestarts
	// is zero.
	DefaultNumRestarts = 10

	// DefaultMaxIter is the iteration cap when Options.MaxIter is zero.
	DefaultMaxIter = 300

	// DefaultTol is the convergence threshold used by DefaultOptions.
	DefaultTol = 1e-4

	// DefaultBarycenterMaxIter caps barycenter refinement when
	// Options.BarycenterMaxIter is zero.
	DefaultBarycenterMaxIter = 10
)

// DefaultOptions returns the canonical configuration: euclidean metric,
// forgy initialization, auto averaging, 10 restarts, 300 iterations,
// Tol 1e-4, serial execution, background context.
func DefaultOptions() Options {
	// Warping inside the clustering loop is distance-heavy and path-light,
	// so the rolling DTW mode is the right default; Align upgrades to a
	// full matrix on its own when a path is required.
	dtwOpts := dtw.DefaultOptions()
	dtwOpts.MemoryMode = dtw.TwoRows

	return Options{
		Metric:            distance.Euclidean,
		DTW:               dtwOpts,
		Init:              InitForgy,
		Averaging:         AutoAverage,
		NumRestarts:       DefaultNumRestarts,
		MaxIter:           DefaultMaxIter,
		Tol:               DefaultTol,
		BarycenterMaxIter: DefaultBarycenterMaxIter,
		Ctx:               context.Background(),
	}
}

// Result is the outcome of one restart (and, embedded in Model, of the
// winning restart).
type Result struct {
	// Centers are the final cluster centers, deep copies owned by the result.
	Centers []series.Series

	// Labels assigns every dataset instance to a center index.
	Labels []int

	// Inertia is the sum of winning distances (or squared distances, per
	// Options.SquaredInertia) under the final centers.
	Inertia float64

	// Iterations is the number of completed assignment steps.
	Iterations int

	// Converged reports whether the run stopped by tolerance or label
	// stability rather than by the iteration cap.
	Converged bool

	// Restart is the index of the restart that produced this result.
	Restart int

	// ClusterSizes counts the members of each cluster under Labels.
	ClusterSizes []int
}

// Model is a fitted clustering model: the winning restart plus the fitted
// metric and shape metadata needed by Predict. The zero value is not
// fitted; Predict on it returns ErrNotFitted.
type Model struct {
	Result

	metric   distance.Metric
	elastic  bool // metric implements distance.Aligner
	channels int  // fitted channel count
	samples  int  // fitted sample count; 0 when the metric accepts ragged lengths
}

// Metric returns the fitted distance metric.
func (m *Model) Metric() distance.Metric { return m.metric }

// IsFitted reports whether the model carries a fitted state.
func (m *Model) IsFitted() bool {
	return m != nil && m.metric != nil && len(m.Centers) > 0
}

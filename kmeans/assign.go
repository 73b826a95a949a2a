// Package kmeans - the assignment step of Lloyd iterations.
//
// Assignment labels every dataset instance with its nearest center under the
// configured metric and accumulates the inertia of the labeling. The step is
// embarrassingly parallel across instances, so an optional worker pool fans
// the argmin loop out over index-disjoint chunks; every write lands at the
// instance's own index and the reduction runs sequentially afterwards, which
// keeps results bit-identical whatever AssignWorkers is set to.
package kmeans

import (
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/tscluster/distance"
	"github.com/katalvlaran/tscluster/series"
)

// assignment is the outcome of one assignment step.
type assignment struct {
	labels  []int     // nearest-center index per instance
	dists   []float64 // winning (raw, unsquared) distance per instance
	inertia float64   // Σ winning distances, squared first if configured
	sizes   []int     // member count per cluster
}

// nearestCenter returns the argmin center for s with its distance.
// Comparison is strict (<), so equal distances resolve to the lowest
// center index.
func nearestCenter(s series.Series, centers []series.Series, metric distance.Metric) (int, float64, error) {
	bestD, err := metric.Distance(s, centers[0])
	if err != nil {
		return 0, 0, err
	}
	best := 0
	for c := 1; c < len(centers); c++ {
		d, err := metric.Distance(s, centers[c])
		if err != nil {
			return 0, 0, err
		}
		if d < bestD {
			best, bestD = c, d
		}
	}

	return best, bestD, nil
}

// assignAll runs one assignment step over the whole dataset.
//
// Contract:
//   - Ties resolve to the lowest center index (strict < comparison).
//   - Output is independent of cfg.opts.AssignWorkers: workers own
//     index-disjoint chunks and the inertia/size reduction is sequential.
//   - The first metric error (in chunk order) aborts the step.
//
// Complexity: O(n·k) metric evaluations; O(n + k) auxiliary memory.
func assignAll(ds []series.Series, centers []series.Series, cfg *fitConfig) (*assignment, error) {
	n := len(ds)
	a := &assignment{
		labels: make([]int, n),
		dists:  make([]float64, n),
		sizes:  make([]int, len(centers)),
	}

	workers := cfg.opts.AssignWorkers
	if workers <= 1 || n < 2 {
		for i, s := range ds {
			c, d, err := nearestCenter(s, centers, cfg.metric)
			if err != nil {
				return nil, err
			}
			a.labels[i], a.dists[i] = c, d
		}
	} else if err := assignChunked(ds, centers, cfg.metric, workers, a); err != nil {
		return nil, err
	}

	for i, d := range a.dists {
		if cfg.opts.SquaredInertia {
			d *= d
		}
		a.inertia += d
		a.sizes[a.labels[i]]++
	}

	return a, nil
}

// assignChunked fans the argmin loop out over index-disjoint chunks.
// Chunk errors are collected per chunk and reported in chunk order, so the
// surfaced error does not depend on goroutine scheduling.
func assignChunked(ds []series.Series, centers []series.Series, metric distance.Metric, workers int, a *assignment) error {
	n := len(ds)
	if workers > n {
		workers = n
	}
	stride := (n + workers - 1) / workers

	var g errgroup.Group
	g.SetLimit(workers)
	errs := make([]error, workers)
	for w := 0; w < workers; w++ {
		lo := w * stride
		hi := lo + stride
		if hi > n {
			hi = n
		}
		if lo >= hi {
			break
		}
		w := w
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				c, d, err := nearestCenter(ds[i], centers, metric)
				if err != nil {
					errs[w] = err

					return nil // siblings keep running; chunk order decides below
				}
				a.labels[i], a.dists[i] = c, d
			}

			return nil
		})
	}
	_ = g.Wait() // closures never return errors; errs carries them

	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}

// movement sums the metric distance between previous and updated centers.
// It is the convergence criterion of the outer loop: a run converges when
// movement drops to the configured tolerance.
func movement(prev, next []series.Series, metric distance.Metric) (float64, error) {
	var total float64
	for i := range prev {
		d, err := metric.Distance(prev[i], next[i])
		if err != nil {
			return math.Inf(1), err
		}
		total += d
	}

	return total, nil
}

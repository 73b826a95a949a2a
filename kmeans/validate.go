// Package kmeans - validation utilities shared by Fit and Predict.
//
// This file contains small, tight helpers that:
//  1. Validate Options combinations (counts, tolerances, metric choice).
//  2. Resolve the metric, initializer and averaging strategy.
//  3. Validate dataset shape per metric capability (lockstep vs elastic).
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go
//     (and shape sentinels passed through from the series package).
//   - Validation is staged: cheap option checks run before any dataset scan.
package kmeans

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/tscluster/distance"
	"github.com/katalvlaran/tscluster/series"
)

// fitConfig is the fully resolved configuration of one Fit call.
// All defaults are applied, the metric and strategies are concrete, and the
// dataset shape facts needed downstream are cached.
type fitConfig struct {
	opts    Options          // normalized copy (defaults resolved, Ctx/hooks non-nil)
	metric  distance.Metric  // resolved metric
	aligner distance.Aligner // non-nil iff the metric is elastic
	initFn  initializer      // resolved center initializer
	avg     averager         // resolved center-update strategy

	k        int // requested cluster count
	n        int // dataset size
	channels int // dataset channel count
	samples  int // uniform sample count; 0 when ragged lengths are legal
}

// validateFit verifies Options + dataset + k and resolves every strategy.
//
// Contract:
//   - Stages run cheapest-first; the first violation wins.
//   - The returned config is self-contained: Fit and the restart runner
//     never consult the raw Options again.
//
// Complexity: O(total samples) for the dataset scans, O(1) otherwise.
func validateFit(ds []series.Series, k int, opts Options) (*fitConfig, error) {
	var (
		cfg fitConfig
		err error
	)

	// Stage 1: Options-only sanity and default resolution.
	if cfg.opts, err = normalizeOptions(opts); err != nil {
		return nil, err
	}

	// Stage 2: metric resolution (explicit instance > callable > name).
	if cfg.metric, err = resolveMetric(cfg.opts); err != nil {
		return nil, err
	}
	cfg.aligner, _ = cfg.metric.(distance.Aligner)

	// Stage 3: initializer registry lookup.
	if cfg.initFn, err = initializerFor(cfg.opts.Init); err != nil {
		return nil, err
	}

	// Stage 4: averaging strategy against metric capability.
	if cfg.avg, err = averagerFor(cfg.opts, cfg.metric, cfg.aligner); err != nil {
		return nil, err
	}

	// Stage 5: dataset shape per metric capability, then value sanity.
	if err = series.ValidateSet(ds); err != nil {
		return nil, err
	}
	if cfg.aligner == nil {
		// Lockstep metrics and elementwise averaging need one sample count.
		if err = series.ValidateSetUniform(ds); err != nil {
			return nil, err
		}
		cfg.samples = ds[0].Len()
	}
	if err = series.ValidateSetFinite(ds); err != nil {
		return nil, err
	}
	cfg.n = len(ds)
	cfg.channels = ds[0].Channels()

	// Stage 6: cluster count against dataset size.
	if k < 1 {
		return nil, fmt.Errorf("%w: k=%d", ErrBadClusterCount, k)
	}
	if k > cfg.n {
		return nil, fmt.Errorf("%w: k=%d, n=%d", ErrTooFewInstances, k, cfg.n)
	}
	cfg.k = k

	return &cfg, nil
}

// normalizeOptions checks internal consistency of Options and resolves the
// zero-value knobs: meaningless zeros become defaults, meaningful zeros
// (Tol, Seed, worker counts) keep their documented semantics, negatives
// are rejected.
//
// Complexity: O(1).
func normalizeOptions(opts Options) (Options, error) {
	if opts.NumRestarts < 0 {
		return opts, fmt.Errorf("%w: NumRestarts cannot be negative (%d)", ErrBadOption, opts.NumRestarts)
	}
	if opts.NumRestarts == 0 {
		opts.NumRestarts = DefaultNumRestarts
	}

	if opts.MaxIter < 0 {
		return opts, fmt.Errorf("%w: MaxIter cannot be negative (%d)", ErrBadOption, opts.MaxIter)
	}
	if opts.MaxIter == 0 {
		opts.MaxIter = DefaultMaxIter
	}

	// A negative tolerance would make convergence unreachable even at zero
	// movement; NaN would poison every comparison.
	if opts.Tol < 0 || math.IsNaN(opts.Tol) {
		return opts, fmt.Errorf("%w: Tol must be non-negative (%g)", ErrBadOption, opts.Tol)
	}

	if opts.BarycenterMaxIter < 0 {
		return opts, fmt.Errorf("%w: BarycenterMaxIter cannot be negative (%d)", ErrBadOption, opts.BarycenterMaxIter)
	}
	if opts.BarycenterMaxIter == 0 {
		opts.BarycenterMaxIter = DefaultBarycenterMaxIter
	}

	if opts.Parallel < 0 {
		return opts, fmt.Errorf("%w: Parallel cannot be negative (%d)", ErrBadOption, opts.Parallel)
	}
	if opts.AssignWorkers < 0 {
		return opts, fmt.Errorf("%w: AssignWorkers cannot be negative (%d)", ErrBadOption, opts.AssignWorkers)
	}

	if opts.Distance != nil && opts.DistanceFunc != nil {
		return opts, fmt.Errorf("%w: Distance and DistanceFunc are mutually exclusive", ErrBadOption)
	}

	switch opts.Averaging {
	case AutoAverage, MeanAverage, DBAAverage:
		// ok
	default:
		return opts, fmt.Errorf("%w: unknown averaging method (%d)", ErrBadOption, opts.Averaging)
	}

	if opts.Ctx == nil {
		opts.Ctx = context.Background()
	}
	if opts.OnIteration == nil {
		opts.OnIteration = func(int, int, float64) {}
	}
	if opts.OnEmptyCluster == nil {
		opts.OnEmptyCluster = func(int, int, int, int) {}
	}

	return opts, nil
}

// resolveMetric picks the distance provider: an explicit instance wins,
// then a wrapped callable, then the registry name (empty ⇒ euclidean).
// The named "dtw" metric is constructed from Options.DTW so warping knobs
// reach the computation.
//
// Complexity: O(1).
func resolveMetric(opts Options) (distance.Metric, error) {
	switch {
	case opts.Distance != nil:
		return opts.Distance, nil
	case opts.DistanceFunc != nil:
		return distance.Wrap("custom", opts.DistanceFunc), nil
	}

	name := opts.Metric
	if name == "" {
		name = distance.Euclidean
	}
	if name == distance.ElasticDTW {
		return distance.NewDTW(opts.DTW), nil
	}

	return distance.Provider(name)
}

// averagerFor resolves the center-update strategy against the metric
// capability. Auto picks DBA for Aligner metrics and mean otherwise;
// explicit mismatches are configuration errors.
//
// Complexity: O(1).
func averagerFor(opts Options, metric distance.Metric, aligner distance.Aligner) (averager, error) {
	method := opts.Averaging
	if method == AutoAverage {
		if aligner != nil {
			method = DBAAverage
		} else {
			method = MeanAverage
		}
	}

	switch method {
	case MeanAverage:
		if aligner != nil {
			return nil, fmt.Errorf("%w: mean averaging cannot serve elastic metric %q", ErrAveragingMismatch, metric.Name())
		}

		return meanAverager{}, nil
	default: // DBAAverage; enum already validated
		if aligner == nil {
			return nil, fmt.Errorf("%w: dba averaging requires an aligning metric, %q cannot align", ErrAveragingMismatch, metric.Name())
		}

		return dbaAverager{
			aligner: aligner,
			maxIter: opts.BarycenterMaxIter,
			tol:     opts.Tol,
		}, nil
	}
}

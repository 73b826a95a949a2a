// Package kmeans_test - end-to-end Fit behavior: clustering quality on
// separable data, scheduling-independence, convergence accounting, restart
// isolation, hooks and cancellation.
package kmeans_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tscluster/distance"
	"github.com/katalvlaran/tscluster/kmeans"
	"github.com/katalvlaran/tscluster/series"
)

// TestFit_TwoClusterEndToEnd clusters six step shapes into two groups and
// expects the ground-truth partition (up to cluster renaming).
func TestFit_TwoClusterEndToEnd(t *testing.T) {
	ds, truth := sixPulses()
	opts := kmeans.DefaultOptions()
	opts.Seed = seedDet

	model, err := kmeans.Fit(ds, 2, opts)
	require.NoError(t, err)

	assert.True(t, model.Converged, "separable data must converge before the cap")
	assert.True(t, sameUpToRelabel(model.Labels, truth),
		"labels %v must match truth %v up to renaming", model.Labels, truth)
	assert.Equal(t, []int{3, 3}, sortedSizes(model.ClusterSizes))
	require.Len(t, model.Centers, 2)
	for _, c := range model.Centers {
		assert.Equal(t, 1, c.Channels())
		assert.Equal(t, 4, c.Len())
	}
	assert.Greater(t, model.Inertia, 0.0, "jittered members keep inertia positive")
}

// TestFit_DeterministicAcrossScheduling pins the core determinism contract:
// Parallel and AssignWorkers change wall-clock behavior only, never results.
func TestFit_DeterministicAcrossScheduling(t *testing.T) {
	ds, _ := twoBlobs()
	base := kmeans.DefaultOptions()
	base.Seed = seedDet

	ref, err := kmeans.Fit(ds, 2, base)
	require.NoError(t, err)

	for _, tc := range []struct {
		name             string
		parallel, fanout int
	}{
		{"parallel restarts", 4, 0},
		{"assignment fan-out", 0, 3},
		{"both", 2, 2},
	} {
		t.Run(tc.name, func(t *testing.T) {
			opts := base
			opts.Parallel = tc.parallel
			opts.AssignWorkers = tc.fanout

			got, err := kmeans.Fit(ds, 2, opts)
			require.NoError(t, err)

			assert.Equal(t, ref.Labels, got.Labels)
			assert.Equal(t, ref.Inertia, got.Inertia)
			assert.Equal(t, ref.Centers, got.Centers)
			assert.Equal(t, ref.Restart, got.Restart)
			assert.Equal(t, ref.Iterations, got.Iterations)
		})
	}
}

// TestFit_SameSeedSameModel locks bit-identical results for repeated runs
// with one seed.
func TestFit_SameSeedSameModel(t *testing.T) {
	ds, _ := twoBlobs()
	opts := kmeans.DefaultOptions()
	opts.Seed = 7

	ref, err := kmeans.Fit(ds, 2, opts)
	require.NoError(t, err)

	repeat(t, 3, func(t *testing.T) {
		got, err := kmeans.Fit(ds, 2, opts)
		require.NoError(t, err)
		assert.Equal(t, ref.Labels, got.Labels)
		assert.Equal(t, ref.Inertia, got.Inertia)
		assert.Equal(t, ref.Centers, got.Centers)
	})
}

// TestFit_PerfectInitConvergesImmediately covers the n==k corner: every
// instance seeds its own cluster, the first assignment is already optimal,
// and the run must report convergence after a single iteration.
func TestFit_PerfectInitConvergesImmediately(t *testing.T) {
	ds := []series.Series{
		series.Univariate(0, 0, 0),
		series.Univariate(5, 5, 5),
		series.Univariate(9, 9, 9),
	}
	opts := kmeans.DefaultOptions()
	opts.NumRestarts = 1
	opts.Seed = seedDet

	model, err := kmeans.Fit(ds, 3, opts)
	require.NoError(t, err)

	assert.True(t, model.Converged)
	assert.Equal(t, 1, model.Iterations, "perfect start must stop after one assignment")
	assert.Equal(t, 0.0, model.Inertia)
	assert.Equal(t, []int{1, 1, 1}, sortedSizes(model.ClusterSizes))
}

// TestFit_SingleRestartTightCapConverges runs one restart under a tight
// iteration cap: separable data must converge to the obvious partition
// well before the cap, whatever instances the draw picks as seeds.
func TestFit_SingleRestartTightCapConverges(t *testing.T) {
	ds, truth := sixPulses()
	opts := kmeans.DefaultOptions()
	opts.NumRestarts = 1
	opts.MaxIter = 10
	opts.Seed = seedDet

	model, err := kmeans.Fit(ds, 2, opts)
	require.NoError(t, err)

	assert.True(t, model.Converged)
	assert.Less(t, model.Iterations, 10)
	assert.True(t, sameUpToRelabel(model.Labels, truth))
	assert.Equal(t, []int{3, 3}, sortedSizes(model.ClusterSizes))
}

// TestFit_InertiaNeverIncreasesWithinRun watches one restart through the
// iteration hook: under squared-euclidean inertia with mean updates, every
// assignment must report an inertia no larger than the previous one, and
// the final result can never exceed the very first (pre-update) value.
func TestFit_InertiaNeverIncreasesWithinRun(t *testing.T) {
	ds, _ := twoBlobs()

	var seen []float64
	opts := kmeans.DefaultOptions()
	opts.NumRestarts = 1
	opts.SquaredInertia = true
	opts.Seed = seedDet
	opts.OnIteration = func(_, _ int, inertia float64) {
		seen = append(seen, inertia)
	}

	model, err := kmeans.Fit(ds, 2, opts)
	require.NoError(t, err)

	require.NotEmpty(t, seen)
	for i := 1; i < len(seen); i++ {
		assert.LessOrEqual(t, seen[i], seen[i-1], "iteration %d increased inertia", i)
	}
	assert.GreaterOrEqual(t, model.Inertia, 0.0)
	assert.LessOrEqual(t, model.Inertia, seen[0])
	for i, l := range model.Labels {
		assert.GreaterOrEqual(t, l, 0, "label %d out of range", i)
		assert.Less(t, l, 2, "label %d out of range", i)
	}
}

// TestFit_DuplicateBlobsReachZeroInertia uses exact duplicates, where the
// global optimum (inertia 0) is reached from any draw - including the
// degenerate both-centers-in-one-blob draws, which must self-heal through
// empty-cluster recovery.
func TestFit_DuplicateBlobsReachZeroInertia(t *testing.T) {
	ds, truth := dupBlobs()
	opts := kmeans.DefaultOptions()
	opts.Seed = seedDet

	model, err := kmeans.Fit(ds, 2, opts)
	require.NoError(t, err)

	assert.True(t, model.Converged)
	assert.Equal(t, 0.0, model.Inertia)
	assert.Equal(t, []int{3, 3}, sortedSizes(model.ClusterSizes))
	assert.True(t, sameUpToRelabel(model.Labels, truth))
	assert.Equal(t, 0, model.Restart, "equal-inertia restarts must keep the earliest index")
}

// TestFit_HooksObserveIterationAndRecovery forces a deterministic empty
// cluster (k equals n with two identical instances) and checks both hooks
// fire with exact coordinates.
func TestFit_HooksObserveIterationAndRecovery(t *testing.T) {
	x := series.Univariate(1, 2, 3)
	ds := []series.Series{x.Clone(), x.Clone()}

	type iterCall struct {
		restart, iter int
		inertia       float64
	}
	type emptyCall struct {
		restart, iter, cluster, instance int
	}
	var iters []iterCall
	var empties []emptyCall

	opts := kmeans.DefaultOptions()
	opts.NumRestarts = 1
	opts.Seed = seedDet
	opts.OnIteration = func(restart, iter int, inertia float64) {
		iters = append(iters, iterCall{restart, iter, inertia})
	}
	opts.OnEmptyCluster = func(restart, iter, cluster, instance int) {
		empties = append(empties, emptyCall{restart, iter, cluster, instance})
	}

	model, err := kmeans.Fit(ds, 2, opts)
	require.NoError(t, err)
	assert.True(t, model.Converged)

	// Both starting centers coincide, so the first assignment sends both
	// instances to cluster 0 and recovery reseeds cluster 1 from instance 0.
	require.Len(t, empties, 1)
	assert.Equal(t, emptyCall{restart: 0, iter: 0, cluster: 1, instance: 0}, empties[0])
	assert.Equal(t, []int{1, 1}, model.ClusterSizes, "the recovered cluster must keep its member")

	// Exactly one Lloyd iteration ran; the label resync after convergence
	// is bookkeeping, not an iteration, and must not reach the hook.
	require.Len(t, iters, 1)
	assert.Equal(t, iterCall{restart: 0, iter: 0, inertia: 0}, iters[0])
}

// TestFit_AllRestartsFailed verifies the failure envelope: a metric that
// always errors must surface ErrAllRestartsFailed wrapping the cause.
func TestFit_AllRestartsFailed(t *testing.T) {
	errBroken := errors.New("broken metric")
	ds, _ := twoBlobs()

	opts := kmeans.DefaultOptions()
	opts.Metric = ""
	opts.NumRestarts = 2
	opts.DistanceFunc = func(a, b series.Series) (float64, error) { return 0, errBroken }

	model, err := kmeans.Fit(ds, 2, opts)
	assert.Nil(t, model)
	require.Error(t, err)
	assert.ErrorIs(t, err, kmeans.ErrAllRestartsFailed)
	assert.ErrorIs(t, err, errBroken, "the first cause must stay in the chain")
}

// TestFit_ContextCanceled aborts before any work and expects the context
// error rather than a model built from zero restarts.
func TestFit_ContextCanceled(t *testing.T) {
	ds, _ := twoBlobs()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	opts := kmeans.DefaultOptions()
	opts.Ctx = ctx

	model, err := kmeans.Fit(ds, 2, opts)
	assert.Nil(t, model)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestFit_SquaredInertiaShrinksSubUnitDistances refits the same separable
// data with both inertia flavors; with every winning distance below one,
// the squared sum must come out strictly smaller.
func TestFit_SquaredInertiaShrinksSubUnitDistances(t *testing.T) {
	ds, truth := twoBlobs()

	raw := kmeans.DefaultOptions()
	raw.Seed = seedDet
	rawModel, err := kmeans.Fit(ds, 2, raw)
	require.NoError(t, err)

	sq := raw
	sq.SquaredInertia = true
	sqModel, err := kmeans.Fit(ds, 2, sq)
	require.NoError(t, err)

	assert.True(t, sameUpToRelabel(rawModel.Labels, truth))
	assert.True(t, sameUpToRelabel(sqModel.Labels, truth))
	assert.Less(t, sqModel.Inertia, rawModel.Inertia)
	assert.Greater(t, sqModel.Inertia, 0.0)
}

// TestFit_CustomMetricInstance plugs an explicit Metric value in through
// Options.Distance and expects plain lockstep clustering to work unchanged.
func TestFit_CustomMetricInstance(t *testing.T) {
	ds, truth := twoBlobs()

	manhattan, err := distance.Provider(distance.Manhattan)
	require.NoError(t, err)

	opts := kmeans.DefaultOptions()
	opts.Metric = ""
	opts.Distance = manhattan
	opts.Seed = seedDet

	model, err := kmeans.Fit(ds, 2, opts)
	require.NoError(t, err)
	assert.True(t, sameUpToRelabel(model.Labels, truth))
}

// TestFit_InputNeverMutated guards value semantics: Fit must not write
// into the caller's dataset, and returned centers must not alias it.
func TestFit_InputNeverMutated(t *testing.T) {
	ds, _ := twoBlobs()
	snapshot := make([]series.Series, len(ds))
	for i, s := range ds {
		snapshot[i] = s.Clone()
	}

	opts := kmeans.DefaultOptions()
	opts.Seed = seedDet
	model, err := kmeans.Fit(ds, 2, opts)
	require.NoError(t, err)

	for i := range ds {
		assert.True(t, ds[i].EqualWithin(snapshot[i], 0), "dataset instance %d was mutated", i)
	}

	// Mutating a returned center must leave the dataset untouched.
	model.Centers[0][0][0] += 1000
	for i := range ds {
		assert.True(t, ds[i].EqualWithin(snapshot[i], 0), "center aliases dataset instance %d", i)
	}
}

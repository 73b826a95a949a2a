// Package kmeans clusters time series with Lloyd's algorithm over pluggable
// distance metrics, including elastic (DTW) clustering with barycenter
// averaging.
//
// 🚀 What does it do?
//
//	Given a dataset of series and a cluster count k, Fit partitions the
//	dataset into k groups around representative centers. The metric is
//	pluggable: lockstep metrics (euclidean & friends) compare sample t to
//	sample t, elastic metrics (dtw) warp the time axis first. The update
//	strategy follows the metric - elementwise means for lockstep, DTW
//	Barycenter Averaging (DBA) for elastic - because averaging warped
//	series elementwise would blur exactly the structure warping preserves.
//
// ✨ Key features:
//   - metric by name (distance registry), instance, or plain callable
//   - forgy and kmeans++ initialization, selectable by name
//   - NumRestarts independent restarts, best inertia wins
//   - deterministic end to end: one seed, per-restart SplitMix64 streams,
//     rank-based empty-cluster recovery, index-ordered tie breaks - results
//     do not change with Parallel or AssignWorkers
//   - optional concurrency: restart fan-out (Parallel) and per-instance
//     assignment fan-out (AssignWorkers), both via errgroup
//   - hooks for observability (OnIteration, OnEmptyCluster), context
//     cancellation between iterations
//   - Silhouette scoring to judge a labeling after the fact
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/tscluster/kmeans"
//
//	opts := kmeans.DefaultOptions()
//	opts.Metric = distance.ElasticDTW // warp-aware clustering
//	opts.DTW.Window = 8               // Sakoe–Chiba band ±8
//	opts.Seed = 42
//
//	model, err := kmeans.Fit(dataset, 3, opts)
//	if err != nil { ... }
//	labels, err := model.Predict(fresh)
//
// Determinism contract:
//
//	Fit(ds, k, opts) is a pure function of its arguments. Restart r draws
//	from rand.New(rand.NewSource(deriveSeed(seed, r))), assignment ties
//	resolve to the lowest center index, restart ties to the lowest restart
//	index, and empty clusters are reseeded from the farthest instance
//	rather than a random one. Scheduling knobs only change wall-clock time.
//
// Performance:
//
//   - Fit: O(NumRestarts · iterations · n·k · distance); the distance term
//     is O(samples) for lockstep metrics and O(len²) for DTW
//   - Predict: O(n·k · distance)
//   - Silhouette: O(n² · distance)
//
// See example_test.go for an end-to-end clustering walkthrough.
package kmeans

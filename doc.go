// Package tscluster is your in-memory toolkit for grouping time series —
// from plain Euclidean k-means to elastic clustering with Dynamic Time
// Warping and barycenter averaging.
//
// 🚀 What is tscluster?
//
//	A deterministic, batteries-included clustering library that brings together:
//		• Series primitives: multichannel [][]float64 values with shape validation
//		• Distance registry: euclidean, sqeuclidean, manhattan, chebyshev, dtw —
//		  plus custom metrics via a one-method interface or a bare function
//		• Dynamic Time Warping: Sakoe–Chiba windows, slope penalties, three
//		  memory modes, optimal warping paths
//		• K-means engine: forgy / k-means++ seeding, multi-restart selection,
//		  empty-cluster repair, mean or DBA center averaging
//		• Synthetic generators: pulses, chirps, GBM close prices and labeled
//		  blob datasets for tests, examples and benchmarks
//
// ✨ Why choose tscluster?
//
//   - Deterministic by construction – one seed fixes every draw, and results
//     are bit-identical at any parallelism setting
//   - Elastic where it matters – DTW and DBA plug into the same Fit call as
//     lockstep metrics, selected by a single capability interface
//   - Rock-solid guarantees – explicit error taxonomy, validated inputs,
//     in-code docs with complexity notes
//   - Extensible – register nothing: hand any Metric implementation or raw
//     func directly to Options
//
// Under the hood, everything is organized under five subpackages:
//
//	series/   — the Series value type, cloning and dataset validation
//	distance/ — the metric registry, lockstep metrics and the DTW adapter
//	dtw/      — the warping-distance engine (windows, penalties, paths)
//	kmeans/   — Fit/Predict/Silhouette with restarts, repair and averaging
//	synth/    — deterministic pulse/chirp/OHLC/blob generators
//
// Quick ASCII example:
//
//	    ▁▁█▁▁   ▁▁▁█▁
//	    shape   shifted
//
//	lockstep metrics call these two far apart; DTW warps the shift away.
//
// Dive into the package docs for full examples, option references and the
// determinism contract.
//
//	go get github.com/katalvlaran/tscluster
package tscluster

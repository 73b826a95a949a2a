// Package dtw computes Dynamic Time Warping (DTW) distances between
// numeric time series, with optional alignment path and memory optimizations.
//
// 🚀 What is DTW?
//
//	DTW finds the best match between two sequences by warping the time
//	axis to minimize cumulative distance.  It’s widely used in:
//	  • Speech recognition & audio alignment
//	  • Gesture / motion matching
//	  • Signature & handwriting verification
//	  • Time-series clustering & anomaly detection
//
// ✨ Key features:
//   - full-matrix mode: exact O(N·M) time & memory, alignment path on demand
//   - two-rows / no-memory modes: O(M) memory when only the distance matters
//   - optional Sakoe–Chiba window (|i−j| ≤ w) for speed & constraint
//   - slope penalty to discourage excessive stretching
//   - deterministic backtracking (diagonal-first tie preference), so the
//     same inputs always yield the same path
//   - multichannel sequences via DTWMulti (all channels warp together)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/tscluster/dtw"
//
//	opts := dtw.DefaultOptions()
//	opts.Window = 10        // Sakoe–Chiba band ±10
//	opts.SlopePenalty = 0.5 // penalty for 1×2 vs 2×1 steps
//	opts.ReturnPath = true  // also return warp path
//
//	dist, path, err := dtw.DTW(a, b, &opts)
//
// Performance:
//
//   - Time:   O(N·M) (×C channels for DTWMulti)
//   - Memory: O(N·M) (FullMatrix) or O(M) (TwoRows, NoMemory)
//
// See examples in example_test.go for detailed walkthroughs.
package dtw

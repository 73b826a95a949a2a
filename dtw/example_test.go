package dtw_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tscluster/dtw"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleDTW_medium
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Compare two moderately sized sequences with slight pacing differences.
//	  a = [1, 3, 4, 9, 8]
//	  b = [1, 4, 5, 9, 7]
//
// Options:
//   - Window = 1         (Sakoe-Chiba band → allow ±1 offset)
//   - SlopePenalty = 0.5 (penalize uneven stretches)
//   - ReturnPath = true  (retrieve alignment path)
//   - MemoryMode = FullMatrix (O(N·M) mem)
//
// Use case:
//
//	Time-series similarity when small local shifts are expected.
//
// Complexity: O(N·M) time, O(N·M) memory
func ExampleDTW_medium() {
	a := []float64{1, 3, 4, 9, 8}
	b := []float64{1, 4, 5, 9, 7}
	opts := dtw.DefaultOptions()
	opts.Window = 1
	opts.SlopePenalty = 0.5
	opts.ReturnPath = true
	opts.MemoryMode = dtw.FullMatrix

	dist, path, err := dtw.DTW(a, b, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("distance=%.1f\nlen(path)=%d\npath=%v\n", dist, len(path), path)
	// Output:
	// distance=3.0
	// len(path)=5
	// path=[{0 0} {1 1} {2 2} {3 3} {4 4}]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleDTW_twoRows
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Compare two medium-length sequences with repetitions, distance only.
//	  a = [0, 0, 1, 2, 1, 0]
//	  b = [0, 1, 1, 1, 0]
//
// Options:
//   - No window constraint (Window = -1 → unlimited)
//   - No slope penalty (SlopePenalty = 0)
//   - ReturnPath = false (rolling storage cannot backtrack)
//   - MemoryMode = TwoRows (O(min(N,M)) mem)
//
// Use case:
//
//	Bulk similarity scans where only the score matters.
//
// Complexity: O(N·M) time, O(min(N,M)) memory
func ExampleDTW_twoRows() {
	a := []float64{0, 0, 1, 2, 1, 0}
	b := []float64{0, 1, 1, 1, 0}
	opts := dtw.DefaultOptions()
	opts.Window = -1
	opts.SlopePenalty = 0
	opts.MemoryMode = dtw.TwoRows

	dist, _, err := dtw.DTW(a, b, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("distance=%.0f\n", dist)
	// Output:
	// distance=1
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleDTW_windowOnly
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Short sequences with strict alignment.
//	  a = [2, 3, 4]
//	  b = [2, 3, 4, 5]
//
// Options:
//   - Window = 0         (exact diagonal only)
//   - SlopePenalty = 0
//   - ReturnPath = false
//   - MemoryMode = FullMatrix
//
// Effect:
//
//	Strict window forces INF when lengths differ by >0.
//
// Complexity: O(N·M) time, O(N·M) memory
func ExampleDTW_windowOnly() {
	a := []float64{2, 3, 4}
	b := []float64{2, 3, 4, 5}
	opts := dtw.DefaultOptions()
	opts.Window = 0
	opts.ReturnPath = false
	opts.MemoryMode = dtw.FullMatrix

	dist, _, _ := dtw.DTW(a, b, &opts)
	if math.IsInf(dist, 1) {
		fmt.Println("distance=+Inf")
	}
	// Output:
	// distance=+Inf
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleDTWMulti
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Align two 2-channel recordings where the second lags by one sample.
//	  a = ch0 [0, 1, 0]       b = ch0 [0, 0, 1, 0]
//	      ch1 [0, 2, 0]           ch1 [0, 0, 2, 0]
//
// Options:
//   - Defaults (unlimited window, no penalty)
//   - ReturnPath = true
//
// Effect:
//
//	Both channels warp together; the shared lag costs nothing.
//
// Complexity: O(C·N·M) time, O(N·M) memory
func ExampleDTWMulti() {
	a := [][]float64{{0, 1, 0}, {0, 2, 0}}
	b := [][]float64{{0, 0, 1, 0}, {0, 0, 2, 0}}
	opts := dtw.DefaultOptions()
	opts.ReturnPath = true

	dist, path, err := dtw.DTWMulti(a, b, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("distance=%.0f\npath=%v\n", dist, path)
	// Output:
	// distance=0
	// path=[{0 0} {0 1} {1 2} {2 3}]
}

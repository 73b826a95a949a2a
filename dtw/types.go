// Package dtw defines options, memory modes and path coordinates for
// Dynamic Time Warping.
package dtw

// MemoryMode controls how DTW stores its DP matrix.
//
//   - FullMatrix — keep the entire (n+1)×(m+1) matrix in memory.
//     Allows distance + full backtrace of the optimal warping path.
//     Memory: O(n·m).
//
//   - TwoRows — keep only two rows (current and previous).
//     Memory drops to O(min(n,m)); the path cannot be recovered.
//
//   - NoMemory — keep a single row updated in place plus one scratch cell.
//     Smallest footprint of the three; distance only.
type MemoryMode int

const (
	// FullMatrix mode: store all rows, support path recovery, O(N·M) memory.
	FullMatrix MemoryMode = iota

	// TwoRows mode: rolling pair of rows, no path recovery, O(min(N,M)) memory.
	TwoRows

	// NoMemory mode: single in-place row, no path recovery, O(min(N,M)) memory.
	NoMemory
)

// Coord is one cell of a warping path, pairing 0-based sample indices:
// I indexes the first sequence, J the second.
type Coord struct {
	I int
	J int
}

// Options configures Dynamic Time Warping.
//
// Fields:
//   - Window       — Sakoe–Chiba band half-width. −1 disables the constraint,
//     0 admits only the strict diagonal |i−j|=0, w>0 admits |i−j| ≤ w.
//     Values below −1 are rejected with ErrBadInput.
//   - SlopePenalty — additive cost for insertion/deletion steps (≥0);
//     0 keeps classic DTW, larger values bias toward diagonal alignment.
//   - ReturnPath   — if true, backtrack and return the optimal warping path.
//     Requires MemoryMode=FullMatrix (ErrPathNeedsMatrix otherwise).
//   - MemoryMode   — FullMatrix, TwoRows or NoMemory storage.
//
// Example:
//
//	opts := DefaultOptions()
//	opts.Window = 10        // only compare samples within ±10 steps
//	opts.SlopePenalty = 0.5 // mild penalty for non-diagonal moves
//	opts.ReturnPath = true  // we need the path, not just the distance
//
//	dist, path, err := DTW(seqA, seqB, &opts)
type Options struct {
	Window       int
	SlopePenalty float64
	ReturnPath   bool
	MemoryMode   MemoryMode
}

// DefaultOptions returns the canonical configuration: unlimited window,
// no slope penalty, distance only, FullMatrix storage.
func DefaultOptions() Options {
	return Options{
		Window:       -1,
		SlopePenalty: 0,
		ReturnPath:   false,
		MemoryMode:   FullMatrix,
	}
}

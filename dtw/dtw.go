package dtw

import (
	"errors"
	"math"
)

// DTW — Dynamic Time Warping
//
// Description:
//
//	DTW measures similarity between two sequences that may vary
//	in time or speed by finding an optimal “warping path”.
//	It is widely used in speech recognition, time-series analysis,
//	gesture recognition, and many other domains.
//
// Algorithm Outline (Full-Matrix):
//  1. Let n = len(a), m = len(b). Allocate (n+1)x(m+1) DP matrix D.
//  2. Initialize:
//     D[0][0] = 0
//     D[i][0] = +∞ for i=1..n
//     D[0][j] = +∞ for j=1..m
//  3. For i = 1..n:
//     For j = 1..m (cells with |i-j| > Window become +∞ when Window ≥ 0):
//     cost  = |a[i-1] - b[j-1]|
//     match = D[i-1][j-1]
//     ins   = D[i-1][j] + SlopePenalty
//     del   = D[i][j-1] + SlopePenalty
//     D[i][j] = cost + min(match, ins, del)
//  4. distance = D[n][m]. A +∞ distance (band too strict) is a valid result,
//     not an error.
//  5. If ReturnPath && MemoryMode==FullMatrix, backtrack from (n,m) to (1,1)
//     choosing the predecessor with minimal D-value; ties prefer the diagonal,
//     then the vertical step. The fixed preference keeps paths reproducible.
//
// Memory Modes:
//   - FullMatrix — store full D, support ReturnPath. Memory: O(n·m).
//   - TwoRows    — store two rows (current & previous). Memory: O(m).
//   - NoMemory   — one row updated in place + a diagonal scratch cell.
//     Memory: O(m). Like TwoRows, cannot recover the path.
//
// Complexity:
//
//	Time   = O(n·m)
//	Memory = O(n·m) (FullMatrix) or O(m) (TwoRows, NoMemory)
//
// Errors:
//   - ErrEmptyInput      — if either input is empty.
//   - ErrBadInput        — if options are malformed (Window < −1,
//     negative/NaN SlopePenalty, unknown MemoryMode) or channels are ragged.
//   - ErrPathNeedsMatrix — if ReturnPath=true without FullMatrix mode.
var (
	// ErrEmptyInput indicates one or both inputs are empty.
	ErrEmptyInput = errors.New("dtw: input sequences must be non-empty")

	// ErrBadInput indicates malformed options or inconsistent input shapes.
	ErrBadInput = errors.New("dtw: invalid options or input shape")

	// ErrPathNeedsMatrix indicates that path recovery requires FullMatrix mode.
	ErrPathNeedsMatrix = errors.New("dtw: ReturnPath requires MemoryMode=FullMatrix")
)

// DTW computes the Dynamic Time Warping distance between a and b.
// Returns (distance, path, error). A nil opts selects DefaultOptions.
//
// The path is non-nil only when opts.ReturnPath is true, which requires
// MemoryMode=FullMatrix. With a finite Window the distance may be +Inf
// when no path satisfies the band; that outcome carries a nil path.
//
// Complexity: O(n·m) time; memory per MemoryMode.
func DTW(a, b []float64, opts *Options) (float64, []Coord, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return 0, nil, err
	}
	if len(a) == 0 || len(b) == 0 {
		return 0, nil, ErrEmptyInput
	}

	// Local cost in 1-based DP coordinates.
	cost := func(i, j int) float64 { return math.Abs(a[i-1] - b[j-1]) }

	return warp(len(a), len(b), cost, o)
}

// resolveOptions applies the nil-defaults policy and validates the result.
// Validation order: option ranges (ErrBadInput) before the path×mode
// combination (ErrPathNeedsMatrix); input emptiness is checked by callers.
func resolveOptions(opts *Options) (Options, error) {
	var o Options
	if opts == nil {
		o = DefaultOptions()
	} else {
		o = *opts
	}

	if o.Window < -1 {
		return o, ErrBadInput
	}
	if o.SlopePenalty < 0 || math.IsNaN(o.SlopePenalty) {
		return o, ErrBadInput
	}
	if o.MemoryMode < FullMatrix || o.MemoryMode > NoMemory {
		return o, ErrBadInput
	}
	if o.ReturnPath && o.MemoryMode != FullMatrix {
		return o, ErrPathNeedsMatrix
	}

	return o, nil
}

// costFn returns the local alignment cost for 1-based DP cell (i,j).
type costFn func(i, j int) float64

// warp runs the DP recurrence shared by DTW and DTWMulti.
// Inputs are assumed validated: n,m ≥ 1 and o well-formed.
func warp(n, m int, cost costFn, o Options) (float64, []Coord, error) {
	if o.MemoryMode == FullMatrix {
		return warpFull(n, m, cost, o)
	}

	return warpRolling(n, m, cost, o)
}

// warpFull fills the complete (n+1)×(m+1) matrix and optionally backtracks.
func warpFull(n, m int, cost costFn, o Options) (float64, []Coord, error) {
	inf := math.Inf(1)

	dp := make([][]float64, n+1)
	for i := range dp {
		dp[i] = make([]float64, m+1)
	}
	for i := 1; i <= n; i++ {
		dp[i][0] = inf
	}
	for j := 1; j <= m; j++ {
		dp[0][j] = inf
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if outsideBand(i, j, o.Window) {
				dp[i][j] = inf
				continue
			}
			match := dp[i-1][j-1]
			ins := dp[i-1][j] + o.SlopePenalty
			del := dp[i][j-1] + o.SlopePenalty
			dp[i][j] = cost(i, j) + min3(match, ins, del)
		}
	}

	dist := dp[n][m]
	if !o.ReturnPath || math.IsInf(dist, 1) {
		return dist, nil, nil
	}

	return dist, backtrack(dp, n, m, o.SlopePenalty), nil
}

// warpRolling computes the distance with O(m) memory.
// TwoRows keeps an explicit previous/current pair; NoMemory updates a single
// row in place, carrying the diagonal in a scratch cell.
func warpRolling(n, m int, cost costFn, o Options) (float64, []Coord, error) {
	inf := math.Inf(1)

	if o.MemoryMode == TwoRows {
		prev := make([]float64, m+1)
		curr := make([]float64, m+1)
		for j := 1; j <= m; j++ {
			prev[j] = inf
		}
		for i := 1; i <= n; i++ {
			curr[0] = inf
			for j := 1; j <= m; j++ {
				if outsideBand(i, j, o.Window) {
					curr[j] = inf
					continue
				}
				curr[j] = cost(i, j) + min3(prev[j-1], prev[j]+o.SlopePenalty, curr[j-1]+o.SlopePenalty)
			}
			prev, curr = curr, prev
		}

		return prev[m], nil, nil
	}

	// NoMemory: row[j] holds D[i][j'] for j'<j and D[i-1][j'] for j'≥j.
	row := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		row[j] = inf
	}
	var diag, up float64
	for i := 1; i <= n; i++ {
		diag = row[0] // D[i-1][0]
		row[0] = inf  // D[i][0]
		for j := 1; j <= m; j++ {
			up = row[j] // D[i-1][j]
			if outsideBand(i, j, o.Window) {
				row[j] = inf
			} else {
				row[j] = cost(i, j) + min3(diag, up+o.SlopePenalty, row[j-1]+o.SlopePenalty)
			}
			diag = up
		}
	}

	return row[m], nil, nil
}

// backtrack recovers the optimal warping path from a filled FullMatrix DP.
// Predecessor preference on ties: diagonal, then vertical, then horizontal.
func backtrack(dp [][]float64, n, m int, penalty float64) []Coord {
	path := make([]Coord, 0, n+m)

	i, j := n, m
	for {
		path = append(path, Coord{I: i - 1, J: j - 1})
		if i == 1 && j == 1 {
			break
		}
		match := dp[i-1][j-1]
		ins := dp[i-1][j] + penalty
		del := dp[i][j-1] + penalty
		switch {
		case match <= ins && match <= del:
			i--
			j--
		case ins <= del:
			i--
		default:
			j--
		}
	}

	// reverse path in-place
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path
}

// outsideBand reports whether cell (i,j) violates the Sakoe–Chiba band.
// window == −1 disables the constraint.
func outsideBand(i, j, window int) bool {
	if window < 0 {
		return false
	}

	return abs(i-j) > window
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

// min3 returns the minimum of three float64 values.
func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}

		return c
	}
	if b < c {
		return b
	}

	return c
}

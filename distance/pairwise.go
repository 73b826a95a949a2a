package distance

import "github.com/katalvlaran/tscluster/series"

// Pairwise computes the full distance matrix between two series sets:
// out[i][j] = m.Distance(a[i], b[j]). The first shape violation or metric
// failure aborts the computation.
//
// Complexity: O(len(a)·len(b)) metric evaluations, O(len(a)·len(b)) memory.
func Pairwise(a, b []series.Series, m Metric) ([][]float64, error) {
	if err := series.ValidateSet(a); err != nil {
		return nil, err
	}
	if err := series.ValidateSet(b); err != nil {
		return nil, err
	}

	out := make([][]float64, len(a))
	var (
		d   float64
		err error
	)
	for i := range a {
		out[i] = make([]float64, len(b))
		for j := range b {
			d, err = m.Distance(a[i], b[j])
			if err != nil {
				return nil, err
			}
			out[i][j] = d
		}
	}

	return out, nil
}

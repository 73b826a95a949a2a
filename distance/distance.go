package distance

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/tscluster/series"
)

// Registry names for the built-in metrics.
const (
	// Euclidean is the L2 lockstep distance: sqrt(Σ (aᵢ−bᵢ)²) over all samples.
	Euclidean = "euclidean"

	// SqEuclidean is the squared L2 lockstep distance: Σ (aᵢ−bᵢ)².
	SqEuclidean = "sqeuclidean"

	// Manhattan is the L1 lockstep distance: Σ |aᵢ−bᵢ|.
	Manhattan = "manhattan"

	// Chebyshev is the L∞ lockstep distance: max |aᵢ−bᵢ|.
	Chebyshev = "chebyshev"

	// ElasticDTW is the Dynamic Time Warping distance (see the dtw package).
	// The only built-in metric accepting series of different lengths, and the
	// only one implementing Aligner.
	ElasticDTW = "dtw"
)

// registry maps metric names to fresh instances. Factories, not singletons:
// the elastic metric carries per-instance dtw.Options.
var registry = map[string]func() Metric{
	Euclidean:   func() Metric { return lockstep{name: Euclidean, p: 2} },
	SqEuclidean: func() Metric { return lockstep{name: SqEuclidean, p: 2, squared: true} },
	Manhattan:   func() Metric { return lockstep{name: Manhattan, p: 1} },
	Chebyshev:   func() Metric { return lockstep{name: Chebyshev, p: math.Inf(1)} },
	ElasticDTW:  func() Metric { return NewDTW(defaultElasticOptions()) },
}

// Provider resolves a registry name to a fresh Metric instance.
// Unknown names yield ErrUnknownMetric carrying the list of valid names.
//
// Complexity: O(1) lookup (O(k log k) on the error path for the name list).
func Provider(name string) (Metric, error) {
	factory, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (valid: %s)", ErrUnknownMetric, name, strings.Join(Names(), ", "))
	}

	return factory(), nil
}

// Names returns the sorted registry names.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Wrap lifts a plain callable into a Metric under the given label.
// Empty labels resolve to "custom". Panics on a nil fn: a nil distance is a
// programmer error, surfaced early the way option constructors do.
func Wrap(name string, fn Func) Metric {
	if fn == nil {
		panic("distance: Wrap(nil)")
	}
	if name == "" {
		name = "custom"
	}

	return funcMetric{name: name, fn: fn}
}

// funcMetric adapts a Func to the Metric interface.
type funcMetric struct {
	name string
	fn   Func
}

func (m funcMetric) Name() string { return m.name }

func (m funcMetric) Distance(a, b series.Series) (float64, error) { return m.fn(a, b) }

// lockstep implements the Lp family over equal-shape series.
// p selects the per-channel norm (1, 2 or +Inf); squared reports the
// summed squares without the final root (sqeuclidean).
type lockstep struct {
	name    string
	p       float64
	squared bool
}

func (m lockstep) Name() string { return m.name }

// Distance combines per-channel gonum norms into one series-level value:
// L1 and squared-L2 sum across channels, L2 takes the root of the summed
// squares, L∞ takes the channel maximum. For univariate series every case
// reduces to floats.Distance on the single channel.
//
// Complexity: O(total samples).
func (m lockstep) Distance(a, b series.Series) (float64, error) {
	if err := lockstepShape(a, b); err != nil {
		return 0, err
	}

	var sum float64
	switch {
	case m.squared:
		for c := range a {
			d := floats.Distance(a[c], b[c], 2)
			sum += d * d
		}

		return sum, nil
	case math.IsInf(m.p, 1):
		for c := range a {
			if d := floats.Distance(a[c], b[c], m.p); d > sum {
				sum = d
			}
		}

		return sum, nil
	case m.p == 1:
		for c := range a {
			sum += floats.Distance(a[c], b[c], 1)
		}

		return sum, nil
	default:
		for c := range a {
			d := floats.Distance(a[c], b[c], 2)
			sum += d * d
		}

		return math.Sqrt(sum), nil
	}
}

// lockstepShape enforces the equal-shape contract of non-elastic metrics:
// both series valid, same channel count, same sample count.
func lockstepShape(a, b series.Series) error {
	if err := series.Validate(a); err != nil {
		return err
	}
	if err := series.Validate(b); err != nil {
		return err
	}
	if a.Channels() != b.Channels() {
		return series.ErrChannelMismatch
	}
	if a.Len() != b.Len() {
		return series.ErrLengthMismatch
	}

	return nil
}

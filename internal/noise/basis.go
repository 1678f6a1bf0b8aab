package noise

import "strings"

// Basis selects the scalar noise evaluator used by the generic dispatch,
// turbulence and the Musgrave combinators.
type Basis int

const (
	ImprovedPerlin Basis = iota
	VoronoiF1
	VoronoiF2
	VoronoiF3
	VoronoiF4
	VoronoiF1F2
	VoronoiCrackle
	CellNoise
	BlenderNoise
)

var basisNames = []string{
	ImprovedPerlin: "perlin",
	VoronoiF1:      "voronoi_f1",
	VoronoiF2:      "voronoi_f2",
	VoronoiF3:      "voronoi_f3",
	VoronoiF4:      "voronoi_f4",
	VoronoiF1F2:    "voronoi_f1f2",
	VoronoiCrackle: "voronoi_crackle",
	CellNoise:      "cell",
	BlenderNoise:   "blender",
}

// Bases lists every basis in declaration order.
func Bases() []Basis {
	out := make([]Basis, len(basisNames))
	for i := range out {
		out[i] = Basis(i)
	}
	return out
}

func (b Basis) String() string {
	if b < 0 || int(b) >= len(basisNames) {
		return basisNames[ImprovedPerlin]
	}
	return basisNames[b]
}

// Next returns the basis after b, wrapping around.
func (b Basis) Next() Basis {
	return Basis((int(b.resolve()) + 1) % len(basisNames))
}

// resolve maps unknown values onto the improved Perlin fallback.
func (b Basis) resolve() Basis {
	if b < 0 || int(b) >= len(basisNames) {
		return ImprovedPerlin
	}
	return b
}

// ParseBasis looks up a basis by name. Matching is case-insensitive and
// dashes are accepted in place of underscores. Unknown names return
// ImprovedPerlin and false.
func ParseBasis(name string) (Basis, bool) {
	name = normalizeName(name)
	for i, n := range basisNames {
		if n == name {
			return Basis(i), true
		}
	}
	return ImprovedPerlin, false
}

// Metric selects how the Voronoi kernel scores candidate feature points.
type Metric int

const (
	Euclidean Metric = iota
	EuclideanSquared
	Manhattan
	Chebyshev
	Minkowski
	MinkowskiHalf
	Minkowski4
)

var metricNames = []string{
	Euclidean:        "euclidean",
	EuclideanSquared: "euclidean_squared",
	Manhattan:        "manhattan",
	Chebyshev:        "chebyshev",
	Minkowski:        "minkowski",
	MinkowskiHalf:    "minkowski_half",
	Minkowski4:       "minkowski4",
}

func (m Metric) String() string {
	if m < 0 || int(m) >= len(metricNames) {
		return metricNames[Euclidean]
	}
	return metricNames[m]
}

// Next returns the metric after m, wrapping around. Unknown values advance
// from Euclidean.
func (m Metric) Next() Metric {
	if m < 0 || int(m) >= len(metricNames) {
		m = Euclidean
	}
	return Metric((int(m) + 1) % len(metricNames))
}

// ParseMetric looks up a metric by name. Unknown names return Euclidean
// and false.
func ParseMetric(name string) (Metric, bool) {
	name = normalizeName(name)
	for i, n := range metricNames {
		if n == name {
			return Metric(i), true
		}
	}
	return Euclidean, false
}

func normalizeName(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
}

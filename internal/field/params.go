package field

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"procnoise/internal/noise"
)

// Kind names the engine operation a field samples.
type Kind string

const (
	KindBasis            Kind = "basis"
	KindVoronoi          Kind = "voronoi"
	KindTurbulence       Kind = "turbulence"
	KindVector           Kind = "vector"
	KindTurbulenceVector Kind = "turbulence_vector"
	KindFBm              Kind = "fbm"
	KindMultiFractal     Kind = "multifractal"
	KindHeteroTerrain    Kind = "hetero"
	KindHybrid           Kind = "hybrid"
	KindRidged           Kind = "ridged"
	KindVLNoise          Kind = "vlnoise"
)

// Kinds lists every kind in cycling order.
var Kinds = []Kind{
	KindBasis, KindVoronoi, KindTurbulence, KindVector, KindTurbulenceVector,
	KindFBm, KindMultiFractal, KindHeteroTerrain, KindHybrid, KindRidged, KindVLNoise,
}

// ParseKind looks up a kind by name. Unknown names return KindBasis and false.
func ParseKind(name string) (Kind, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, k := range Kinds {
		if string(k) == name {
			return k, true
		}
	}
	return KindBasis, false
}

// Next returns the kind after k, wrapping around.
func (k Kind) Next() Kind {
	for i, c := range Kinds {
		if c == k {
			return Kinds[(i+1)%len(Kinds)]
		}
	}
	return Kinds[0]
}

// Params describes a noise field. It is the on-disk JSON format and the
// flag surface of the CLIs.
type Params struct {
	Kind       Kind    `json:"kind"`
	Basis      string  `json:"basis"`
	Basis2     string  `json:"basis2"`
	Metric     string  `json:"metric"`
	Exponent   float64 `json:"exponent"`
	Feature    int     `json:"feature"` // 1..4, which Voronoi distance a voronoi field shows
	H          float64 `json:"h"`
	Lacunarity float64 `json:"lacunarity"`
	Octaves    float64 `json:"octaves"`
	Offset     float64 `json:"offset"`
	Gain       float64 `json:"gain"`
	Distortion float64 `json:"distortion"`
	Hard       bool    `json:"hard"`
	Unsigned   bool    `json:"unsigned"`
	Frequency  float64 `json:"frequency"`
	Z          float64 `json:"z"`
	Seed       uint32  `json:"seed"` // 0 keeps the default table
}

// DefaultParams returns a four-octave Perlin fBm.
func DefaultParams() Params {
	return Params{
		Kind:       KindFBm,
		Basis:      noise.ImprovedPerlin.String(),
		Basis2:     noise.ImprovedPerlin.String(),
		Metric:     noise.Euclidean.String(),
		Exponent:   noise.DefaultMinkowskiExponent,
		Feature:    1,
		H:          1,
		Lacunarity: 2,
		Octaves:    4,
		Offset:     1,
		Gain:       1,
		Distortion: 1,
		Frequency:  0.05,
	}
}

// LoadParams reads a JSON file on top of DefaultParams.
func LoadParams(path string) (Params, error) {
	p := DefaultParams()
	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("read params: %w", err)
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("parse params %s: %w", path, err)
	}
	return p, nil
}

// Validate reports names that will silently fall back to a default when
// sampled. A field with validation errors still samples fine.
func (p Params) Validate() error {
	var errs []error
	if _, ok := ParseKind(string(p.Kind)); !ok {
		errs = append(errs, fmt.Errorf("unknown kind %q (using %s)", p.Kind, KindBasis))
	}
	if _, ok := noise.ParseBasis(p.Basis); !ok {
		errs = append(errs, fmt.Errorf("unknown basis %q (using %s)", p.Basis, noise.ImprovedPerlin))
	}
	if p.Kind == KindVLNoise {
		if _, ok := noise.ParseBasis(p.Basis2); !ok {
			errs = append(errs, fmt.Errorf("unknown basis2 %q (using %s)", p.Basis2, noise.ImprovedPerlin))
		}
	}
	if p.Kind == KindVoronoi {
		if _, ok := noise.ParseMetric(p.Metric); !ok {
			errs = append(errs, fmt.Errorf("unknown metric %q (using %s)", p.Metric, noise.Euclidean))
		}
		if p.Feature < 1 || p.Feature > 4 {
			errs = append(errs, fmt.Errorf("feature %d out of range 1..4 (using 1)", p.Feature))
		}
	}
	return errors.Join(errs...)
}

// Describe returns a one-line summary for logs and status bars.
func (p Params) Describe() string {
	basis, _ := noise.ParseBasis(p.Basis)
	switch p.Kind {
	case KindVoronoi:
		metric, _ := noise.ParseMetric(p.Metric)
		return fmt.Sprintf("voronoi F%d %s", clampFeature(p.Feature), metric)
	case KindBasis, KindVector:
		return fmt.Sprintf("%s %s", p.Kind, basis)
	case KindTurbulence, KindTurbulenceVector:
		return fmt.Sprintf("%s %s oct=%d hard=%v", p.Kind, basis, int(p.Octaves), p.Hard)
	case KindVLNoise:
		basis2, _ := noise.ParseBasis(p.Basis2)
		return fmt.Sprintf("vlnoise %s->%s dist=%.2f", basis, basis2, p.Distortion)
	default:
		return fmt.Sprintf("%s %s H=%.2f lac=%.2f oct=%.2f", p.Kind, basis, p.H, p.Lacunarity, p.Octaves)
	}
}

func clampFeature(f int) int {
	if f < 1 || f > 4 {
		return 1
	}
	return f
}

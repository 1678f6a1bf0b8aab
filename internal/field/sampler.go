package field

import (
	"procnoise/internal/noise"
)

// Sampler evaluates one field description. Each Sampler owns its Engine,
// so samplers with different seeds never share a permutation table.
type Sampler struct {
	params Params
	engine *noise.Engine

	kind    Kind
	basis   noise.Basis
	basis2  noise.Basis
	metric  noise.Metric
	feature int
}

// NewSampler resolves p once so per-sample calls only dispatch.
func NewSampler(p Params) *Sampler {
	s := &Sampler{params: p, engine: noise.New()}
	if p.Seed != 0 {
		s.engine.Reseed(p.Seed)
	}
	s.kind, _ = ParseKind(string(p.Kind))
	s.basis, _ = noise.ParseBasis(p.Basis)
	s.basis2, _ = noise.ParseBasis(p.Basis2)
	s.metric, _ = noise.ParseMetric(p.Metric)
	s.feature = clampFeature(p.Feature)
	return s
}

// Params returns the field description the sampler was built from.
func (s *Sampler) Params() Params { return s.params }

// Engine returns the sampler's own noise engine.
func (s *Sampler) Engine() *noise.Engine { return s.engine }

// At samples the field at plane coordinates (x, y), scaled by the field
// frequency, on the slice z = Params.Z.
func (s *Sampler) At(x, y float64) float64 {
	f := s.params.Frequency
	return s.At3(x*f, y*f, s.params.Z)
}

// At3 samples the field directly in noise space.
func (s *Sampler) At3(x, y, z float64) float64 {
	p := &s.params
	e := s.engine

	switch s.kind {
	case KindVoronoi:
		d, _ := e.Voronoi(x, y, z, s.metric, p.Exponent)
		return d[s.feature-1]
	case KindTurbulence:
		v := e.Turbulence(x, y, z, int(p.Octaves), p.Hard, s.basis)
		if p.Unsigned {
			return noise.SignedToUnsigned(v)
		}
		return v
	case KindVector:
		return e.EvaluateVector(x, y, z, s.basis).Len()
	case KindTurbulenceVector:
		return e.TurbulenceVector(x, y, z, int(p.Octaves), p.Hard, s.basis).Len()
	case KindFBm:
		if p.Unsigned {
			return e.FBmU(x, y, z, p.H, p.Lacunarity, p.Octaves, s.basis)
		}
		return e.FBmS(x, y, z, p.H, p.Lacunarity, p.Octaves, s.basis)
	case KindMultiFractal:
		if p.Unsigned {
			return e.MultiFractalU(x, y, z, p.H, p.Lacunarity, p.Octaves, s.basis)
		}
		return e.MultiFractalS(x, y, z, p.H, p.Lacunarity, p.Octaves, s.basis)
	case KindHeteroTerrain:
		if p.Unsigned {
			return e.HeteroTerrainU(x, y, z, p.H, p.Lacunarity, p.Octaves, p.Offset, s.basis)
		}
		return e.HeteroTerrainS(x, y, z, p.H, p.Lacunarity, p.Octaves, p.Offset, s.basis)
	case KindHybrid:
		if p.Unsigned {
			return e.HybridMultiFractalU(x, y, z, p.H, p.Lacunarity, p.Octaves, p.Offset, p.Gain, s.basis)
		}
		return e.HybridMultiFractalS(x, y, z, p.H, p.Lacunarity, p.Octaves, p.Offset, p.Gain, s.basis)
	case KindRidged:
		if p.Unsigned {
			return e.RidgedMultiFractalU(x, y, z, p.H, p.Lacunarity, p.Octaves, p.Offset, p.Gain, s.basis)
		}
		return e.RidgedMultiFractalS(x, y, z, p.H, p.Lacunarity, p.Octaves, p.Offset, p.Gain, s.basis)
	case KindVLNoise:
		if p.Unsigned {
			return e.VLNoiseU(x, y, z, p.Distortion, s.basis, s.basis2)
		}
		return e.VLNoiseS(x, y, z, p.Distortion, s.basis, s.basis2)
	default:
		if p.Unsigned {
			return e.EvaluateU(x, y, z, s.basis)
		}
		return e.Evaluate(x, y, z, s.basis)
	}
}

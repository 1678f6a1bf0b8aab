package noise

import "math"

// Musgrave fractals. All of them work on signed basis noise; the U variants
// only remap the final signed value. H is the fractal increment, lacunarity
// the frequency gap between octaves. octaves may be fractional: the whole
// part counts full octaves and the remainder weights one extra octave.

// maxFractalOctaves caps the whole octaves any combinator samples.
const maxFractalOctaves = 64

// spectralWeight returns lacunarity^-H, or 0 when that is not finite, so
// degenerate parameters never feed NaN or Inf into a sum.
//
// Degenerate inputs are handled together with octaveCount:
//   - lacunarity 0 with H > 0: weight 0, only the first octave contributes.
//   - lacunarity NaN or Inf: only the first whole octave is sampled and the
//     remainder is dropped, since every later octave sits at a non-finite
//     coordinate.
//   - very large |lacunarity|: octaves are cut once lacunarity^i would pass
//     2^1000.
//   - octaves NaN, zero or negative: no whole octave and no remainder.
//
// NaN coordinates are not guarded and give NaN, as the basis functions do,
// except for the Voronoi bases, which return NoFeature distances outside
// their scan range.
func spectralWeight(H, lacunarity float64) float64 {
	w := math.Pow(lacunarity, -H)
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return 0
	}
	return w
}

// octaveCount splits octaves into whole octaves and the remainder weight,
// limited so that no sampled coordinate is scaled past 2^1000.
func octaveCount(octaves, lacunarity float64) (int, float64) {
	if !(octaves > 0) {
		return 0, 0
	}
	// scalings is how often the coordinates may be multiplied by lacunarity.
	scalings := float64(maxFractalOctaves - 1)
	if l := math.Abs(lacunarity); math.IsNaN(l) || math.IsInf(l, 0) {
		scalings = 0
	} else if l > 1 {
		scalings = math.Min(scalings, math.Floor(1000/math.Log2(l)))
	}
	f := math.Floor(octaves)
	// The remainder octave samples after max(f, 1) scalings.
	if math.Max(f, 1) > scalings {
		return int(math.Min(f, scalings+1)), 0
	}
	return int(f), octaves - f
}

// FBmS is fractional Brownian motion: the plain weighted sum of octaves.
func (e *Engine) FBmS(x, y, z, H, lacunarity, octaves float64, basis Basis) float64 {
	pwHL := spectralWeight(H, lacunarity)
	n, rmd := octaveCount(octaves, lacunarity)

	value, pwr := 0.0, 1.0
	for i := 0; i < n; i++ {
		value += e.Evaluate(x, y, z, basis) * pwr
		pwr *= pwHL
		x *= lacunarity
		y *= lacunarity
		z *= lacunarity
	}

	if rmd != 0 {
		value += rmd * e.Evaluate(x, y, z, basis) * pwr
	}
	return value
}

// FBmU is FBmS shifted by SignedToUnsigned.
func (e *Engine) FBmU(x, y, z, H, lacunarity, octaves float64, basis Basis) float64 {
	return SignedToUnsigned(e.FBmS(x, y, z, H, lacunarity, octaves, basis))
}

// MultiFractalS multiplies the octaves instead of adding them.
func (e *Engine) MultiFractalS(x, y, z, H, lacunarity, octaves float64, basis Basis) float64 {
	pwHL := spectralWeight(H, lacunarity)
	n, rmd := octaveCount(octaves, lacunarity)

	value, pwr := 1.0, 1.0
	for i := 0; i < n; i++ {
		value *= pwr*e.Evaluate(x, y, z, basis) + 1
		pwr *= pwHL
		x *= lacunarity
		y *= lacunarity
		z *= lacunarity
	}

	if rmd != 0 {
		value *= rmd*e.Evaluate(x, y, z, basis)*pwr + 1
	}
	return value
}

// MultiFractalU is MultiFractalS shifted by SignedToUnsigned.
func (e *Engine) MultiFractalU(x, y, z, H, lacunarity, octaves float64, basis Basis) float64 {
	return SignedToUnsigned(e.MultiFractalS(x, y, z, H, lacunarity, octaves, basis))
}

// HeteroTerrainS scales every octave after the first by the running value,
// so high areas get rougher than low ones.
func (e *Engine) HeteroTerrainS(x, y, z, H, lacunarity, octaves, offset float64, basis Basis) float64 {
	pwHL := spectralWeight(H, lacunarity)
	pwr := pwHL
	n, rmd := octaveCount(octaves, lacunarity)

	// The first octave is unscaled.
	value := offset + e.Evaluate(x, y, z, basis)
	x *= lacunarity
	y *= lacunarity
	z *= lacunarity

	for i := 1; i < n; i++ {
		increment := (e.Evaluate(x, y, z, basis) + offset) * pwr * value
		value += increment
		pwr *= pwHL
		x *= lacunarity
		y *= lacunarity
		z *= lacunarity
	}

	if rmd != 0 {
		increment := (e.Evaluate(x, y, z, basis) + offset) * pwr * value
		value += rmd * increment
	}
	return value
}

// HeteroTerrainU is HeteroTerrainS shifted by SignedToUnsigned.
func (e *Engine) HeteroTerrainU(x, y, z, H, lacunarity, octaves, offset float64, basis Basis) float64 {
	return SignedToUnsigned(e.HeteroTerrainS(x, y, z, H, lacunarity, octaves, offset, basis))
}

// HybridMultiFractalS blends additive and multiplicative octaves through a
// decaying weight. The loop stops once the weight drops to 0.001.
func (e *Engine) HybridMultiFractalS(x, y, z, H, lacunarity, octaves, offset, gain float64, basis Basis) float64 {
	pwHL := spectralWeight(H, lacunarity)
	pwr := pwHL
	n, rmd := octaveCount(octaves, lacunarity)

	result := e.Evaluate(x, y, z, basis) + offset
	weight := gain * result
	x *= lacunarity
	y *= lacunarity
	z *= lacunarity

	for i := 1; weight > 0.001 && i < n; i++ {
		if weight > 1 {
			weight = 1
		}
		signal := (e.Evaluate(x, y, z, basis) + offset) * pwr
		pwr *= pwHL
		result += weight * signal
		weight *= gain * signal
		x *= lacunarity
		y *= lacunarity
		z *= lacunarity
	}

	if rmd != 0 {
		result += rmd * ((e.Evaluate(x, y, z, basis) + offset) * pwr)
	}
	return result
}

// HybridMultiFractalU is HybridMultiFractalS shifted by SignedToUnsigned.
func (e *Engine) HybridMultiFractalU(x, y, z, H, lacunarity, octaves, offset, gain float64, basis Basis) float64 {
	return SignedToUnsigned(e.HybridMultiFractalS(x, y, z, H, lacunarity, octaves, offset, gain, basis))
}

// RidgedMultiFractalS folds each octave into (offset-|n|)^2, which turns
// zero crossings of the basis into sharp ridges. Only whole octaves count.
func (e *Engine) RidgedMultiFractalS(x, y, z, H, lacunarity, octaves, offset, gain float64, basis Basis) float64 {
	pwHL := spectralWeight(H, lacunarity)
	pwr := pwHL
	n, _ := octaveCount(octaves, lacunarity)

	signal := offset - math.Abs(e.Evaluate(x, y, z, basis))
	signal *= signal
	result := signal

	for i := 1; i < n; i++ {
		x *= lacunarity
		y *= lacunarity
		z *= lacunarity

		weight := signal * gain
		if weight > 1 {
			weight = 1
		} else if weight < 0 {
			weight = 0
		}

		signal = offset - math.Abs(e.Evaluate(x, y, z, basis))
		signal *= signal
		signal *= weight
		result += signal * pwr
		pwr *= pwHL
	}
	return result
}

// RidgedMultiFractalU is RidgedMultiFractalS shifted by SignedToUnsigned.
func (e *Engine) RidgedMultiFractalU(x, y, z, H, lacunarity, octaves, offset, gain float64, basis Basis) float64 {
	return SignedToUnsigned(e.RidgedMultiFractalS(x, y, z, H, lacunarity, octaves, offset, gain, basis))
}

// VLNoiseS is variable lacunarity noise: basis2 evaluated at a point
// displaced by a vector built from three basis1 samples.
func (e *Engine) VLNoiseS(x, y, z, distortion float64, basis1, basis2 Basis) float64 {
	rx := e.Evaluate(x+13.5, y+13.5, z+13.5, basis1) * distortion
	ry := e.Evaluate(x, y, z, basis1) * distortion
	rz := e.Evaluate(x-13.5, y-13.5, z-13.5, basis1) * distortion
	return e.Evaluate(x+rx, y+ry, z+rz, basis2)
}

// VLNoiseU is VLNoiseS shifted by SignedToUnsigned.
func (e *Engine) VLNoiseU(x, y, z, distortion float64, basis1, basis2 Basis) float64 {
	return SignedToUnsigned(e.VLNoiseS(x, y, z, distortion, basis1, basis2))
}

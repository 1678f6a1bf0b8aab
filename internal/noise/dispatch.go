package noise

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Evaluate returns signed 3D noise of the given basis. Unknown bases fall
// back to improved Perlin.
func (e *Engine) Evaluate(x, y, z float64, basis Basis) float64 {
	switch basis {
	case VoronoiF1:
		return e.VoronoiF1S(x, y, z)
	case VoronoiF2:
		return e.VoronoiF2S(x, y, z)
	case VoronoiF3:
		return e.VoronoiF3S(x, y, z)
	case VoronoiF4:
		return e.VoronoiF4S(x, y, z)
	case VoronoiF1F2:
		return e.VoronoiF1F2S(x, y, z)
	case VoronoiCrackle:
		return e.VoronoiCrackleS(x, y, z)
	case CellNoise:
		return e.CellNoiseS(x, y, z)
	case BlenderNoise:
		return e.BlenderNoiseS(x, y, z)
	default:
		return e.ImprovedPerlin3dS(x, y, z)
	}
}

// EvaluateU is the unsigned counterpart of Evaluate.
func (e *Engine) EvaluateU(x, y, z float64, basis Basis) float64 {
	switch basis {
	case VoronoiF1:
		return e.VoronoiF1U(x, y, z)
	case VoronoiF2:
		return e.VoronoiF2U(x, y, z)
	case VoronoiF3:
		return e.VoronoiF3U(x, y, z)
	case VoronoiF4:
		return e.VoronoiF4U(x, y, z)
	case VoronoiF1F2:
		return e.VoronoiF1F2U(x, y, z)
	case VoronoiCrackle:
		return e.VoronoiCrackleU(x, y, z)
	case CellNoise:
		return e.CellNoiseU(x, y, z)
	case BlenderNoise:
		return e.BlenderNoiseU(x, y, z)
	default:
		return e.ImprovedPerlin3dU(x, y, z)
	}
}

// EvaluateVector builds a 3-vector from a scalar field by sampling it at
// three fixed offsets. Each component is in the signed range.
func (e *Engine) EvaluateVector(x, y, z float64, basis Basis) mgl64.Vec3 {
	return mgl64.Vec3{
		UnsignedToSigned(e.EvaluateU(x+9.321, y-1.531, z-7.951, basis)),
		UnsignedToSigned(e.EvaluateU(x, y, z, basis)),
		UnsignedToSigned(e.EvaluateU(x+6.327, y+0.1671, z-2.672, basis)),
	}
}

// Turbulence sums octaves+1 samples of the basis, halving the amplitude and
// doubling the frequency each time. With hard set every sample is folded
// through |2t-1|. The sum is scaled by 2^octaves / (2^(octaves+1) - 1), so
// octaves == 0 returns the plain basis value. octaves is clamped to
// [0, MaxTurbulenceOctaves].
func (e *Engine) Turbulence(x, y, z float64, octaves int, hard bool, basis Basis) float64 {
	octaves = clampTurbulenceOctaves(octaves)

	var sum float64
	amp, fscale := 1.0, 1.0
	for i := 0; i <= octaves; i++ {
		t := e.Evaluate(fscale*x, fscale*y, fscale*z, basis)
		if hard {
			t = math.Abs(2*t - 1)
		}
		sum += t * amp
		amp *= 0.5
		fscale *= 2
	}
	return sum * turbulenceScale(octaves)
}

// TurbulenceVector is Turbulence over EvaluateVector. hard takes |t| per
// component. The frequency stays at 1 for the first two octaves and only
// doubles from the third one on; existing content depends on that.
func (e *Engine) TurbulenceVector(x, y, z float64, octaves int, hard bool, basis Basis) mgl64.Vec3 {
	octaves = clampTurbulenceOctaves(octaves)

	var sum mgl64.Vec3
	amp, fscale := 1.0, 1.0
	for i := 0; i <= octaves; i++ {
		if i > 1 {
			fscale *= 2
		}
		t := e.EvaluateVector(fscale*x, fscale*y, fscale*z, basis)
		if hard {
			t = mgl64.Vec3{math.Abs(t[0]), math.Abs(t[1]), math.Abs(t[2])}
		}
		sum = sum.Add(t.Mul(amp))
		amp *= 0.5
	}
	return sum.Mul(turbulenceScale(octaves))
}

// MaxTurbulenceOctaves caps the octaves argument of Turbulence and
// TurbulenceVector. Later octaves would weigh less than 2^-60.
const MaxTurbulenceOctaves = 60

func clampTurbulenceOctaves(octaves int) int {
	if octaves < 0 {
		return 0
	}
	if octaves > MaxTurbulenceOctaves {
		return MaxTurbulenceOctaves
	}
	return octaves
}

// turbulenceScale is 2^octaves / (2^(octaves+1) - 1), written so it cannot
// overflow.
func turbulenceScale(octaves int) float64 {
	return 1 / (2 - math.Ldexp(1, -octaves))
}

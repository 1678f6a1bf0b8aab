package noise

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

var samplePoints = [][3]float64{
	{0.5, 1.25, -2.75},
	{3.7, -1.2, 0.4},
	{-12.01, 0.33, 8.5},
	{101.9, -57.3, -0.6},
}

type evalPair struct {
	u, s func(x, y, z float64) float64
}

func basisEvaluators(e *Engine) map[Basis]evalPair {
	return map[Basis]evalPair{
		ImprovedPerlin: {e.ImprovedPerlin3dU, e.ImprovedPerlin3dS},
		VoronoiF1:      {e.VoronoiF1U, e.VoronoiF1S},
		VoronoiF2:      {e.VoronoiF2U, e.VoronoiF2S},
		VoronoiF3:      {e.VoronoiF3U, e.VoronoiF3S},
		VoronoiF4:      {e.VoronoiF4U, e.VoronoiF4S},
		VoronoiF1F2:    {e.VoronoiF1F2U, e.VoronoiF1F2S},
		VoronoiCrackle: {e.VoronoiCrackleU, e.VoronoiCrackleS},
		CellNoise:      {e.CellNoiseU, e.CellNoiseS},
		BlenderNoise:   {e.BlenderNoiseU, e.BlenderNoiseS},
	}
}

func TestSignedIsTwiceUnsignedMinusOne(t *testing.T) {
	e := New()
	for b, ev := range basisEvaluators(e) {
		for _, p := range samplePoints {
			u, s := ev.u(p[0], p[1], p[2]), ev.s(p[0], p[1], p[2])
			if s != 2*u-1 {
				t.Errorf("%v at %v: expected signed %v, got %v", b, p, 2*u-1, s)
			}
		}
	}
}

func TestEvaluateDispatch(t *testing.T) {
	e := New()
	for b, ev := range basisEvaluators(e) {
		for _, p := range samplePoints {
			if got, want := e.Evaluate(p[0], p[1], p[2], b), ev.s(p[0], p[1], p[2]); got != want {
				t.Errorf("Evaluate %v at %v: expected %v, got %v", b, p, want, got)
			}
			if got, want := e.EvaluateU(p[0], p[1], p[2], b), ev.u(p[0], p[1], p[2]); got != want {
				t.Errorf("EvaluateU %v at %v: expected %v, got %v", b, p, want, got)
			}
		}
	}
}

func TestEvaluateUnknownBasisFallsBackToPerlin(t *testing.T) {
	e := New()
	for _, b := range []Basis{ImprovedPerlin, Basis(-1), Basis(9), Basis(1000)} {
		for _, p := range samplePoints {
			want := e.ImprovedPerlin3dS(p[0], p[1], p[2])
			if got := e.Evaluate(p[0], p[1], p[2], b); got != want {
				t.Errorf("basis %d at %v: expected %v, got %v", int(b), p, want, got)
			}
		}
	}
}

func TestEvaluateDeterministic(t *testing.T) {
	e := New()
	for _, b := range Bases() {
		for _, p := range samplePoints {
			if e.Evaluate(p[0], p[1], p[2], b) != e.Evaluate(p[0], p[1], p[2], b) {
				t.Errorf("%v at %v: repeated calls differ", b, p)
			}
		}
	}
}

func TestEvaluateVectorOffsets(t *testing.T) {
	e := New()
	for _, b := range Bases() {
		for _, p := range samplePoints {
			v := e.EvaluateVector(p[0], p[1], p[2], b)
			want := mgl64.Vec3{
				UnsignedToSigned(e.EvaluateU(p[0]+9.321, p[1]-1.531, p[2]-7.951, b)),
				UnsignedToSigned(e.EvaluateU(p[0], p[1], p[2], b)),
				UnsignedToSigned(e.EvaluateU(p[0]+6.327, p[1]+0.1671, p[2]-2.672, b)),
			}
			if v != want {
				t.Errorf("%v at %v: expected %v, got %v", b, p, want, v)
			}
			if math.Abs(v[1]-e.Evaluate(p[0], p[1], p[2], b)) > 1e-12 {
				t.Errorf("%v at %v: middle component %v should match Evaluate", b, p, v[1])
			}
		}
	}
}

func TestTurbulenceSingleOctaveIsBasis(t *testing.T) {
	e := New()
	for _, b := range Bases() {
		for _, p := range samplePoints {
			want := e.Evaluate(p[0], p[1], p[2], b)
			if got := e.Turbulence(p[0], p[1], p[2], 0, false, b); got != want {
				t.Errorf("%v at %v: expected %v, got %v", b, p, want, got)
			}
			if got := e.Turbulence(p[0], p[1], p[2], -3, false, b); got != want {
				t.Errorf("%v at %v with negative octaves: expected %v, got %v", b, p, want, got)
			}
		}
	}
}

func TestTurbulenceTwoOctaves(t *testing.T) {
	e := New()
	for _, p := range samplePoints {
		x, y, z := p[0], p[1], p[2]
		want := (e.Evaluate(x, y, z, BlenderNoise) + 0.5*e.Evaluate(2*x, 2*y, 2*z, BlenderNoise)) * 2 / 3
		got := e.Turbulence(x, y, z, 1, false, BlenderNoise)
		if math.Abs(got-want) > 1e-12 {
			t.Errorf("at %v: expected %v, got %v", p, want, got)
		}

		t0 := e.Evaluate(x, y, z, CellNoise)
		t1 := e.Evaluate(2*x, 2*y, 2*z, CellNoise)
		want = (math.Abs(2*t0-1) + 0.5*math.Abs(2*t1-1)) * 2 / 3
		got = e.Turbulence(x, y, z, 1, true, CellNoise)
		if math.Abs(got-want) > 1e-12 {
			t.Errorf("hard at %v: expected %v, got %v", p, want, got)
		}
	}
}

func TestTurbulenceScale(t *testing.T) {
	tests := []struct {
		octaves int
		want    float64
	}{
		{0, 1},
		{1, 2.0 / 3.0},
		{2, 4.0 / 7.0},
		{3, 8.0 / 15.0},
	}
	for _, tt := range tests {
		if got := turbulenceScale(tt.octaves); got != tt.want {
			t.Errorf("octaves %d: expected %v, got %v", tt.octaves, tt.want, got)
		}
	}

	for _, oct := range []int{60, 1023, 1024, 5000} {
		if got := turbulenceScale(oct); math.IsNaN(got) || math.Abs(got-0.5) > 1e-15 {
			t.Errorf("octaves %d: expected 0.5, got %v", oct, got)
		}
	}
}

func TestTurbulenceHugeOctavesAreClamped(t *testing.T) {
	e := New()
	p := samplePoints[1]
	want := e.Turbulence(p[0], p[1], p[2], MaxTurbulenceOctaves, false, CellNoise)
	wantV := e.TurbulenceVector(p[0], p[1], p[2], MaxTurbulenceOctaves, true, CellNoise)
	if math.IsNaN(want) || math.IsInf(want, 0) {
		t.Fatalf("expected finite turbulence at %d octaves, got %v", MaxTurbulenceOctaves, want)
	}
	for _, oct := range []int{MaxTurbulenceOctaves + 1, 1024, math.MaxInt} {
		if got := e.Turbulence(p[0], p[1], p[2], oct, false, CellNoise); got != want {
			t.Errorf("octaves %d: expected %v, got %v", oct, want, got)
		}
		if got := e.TurbulenceVector(p[0], p[1], p[2], oct, true, CellNoise); got != wantV {
			t.Errorf("vector octaves %d: expected %v, got %v", oct, wantV, got)
		}
	}
}

func TestTurbulenceVectorDelaysFrequencyScaling(t *testing.T) {
	e := New()
	for _, p := range samplePoints {
		x, y, z := p[0], p[1], p[2]

		v0 := e.EvaluateVector(x, y, z, ImprovedPerlin)
		if got := e.TurbulenceVector(x, y, z, 0, false, ImprovedPerlin); got != v0 {
			t.Errorf("octave 0 at %v: expected %v, got %v", p, v0, got)
		}

		// The second octave samples at the base frequency again.
		got := e.TurbulenceVector(x, y, z, 1, false, ImprovedPerlin)
		if !got.ApproxEqualThreshold(v0, 1e-12) {
			t.Errorf("octave 1 at %v: expected %v, got %v", p, v0, got)
		}

		v2 := e.EvaluateVector(2*x, 2*y, 2*z, ImprovedPerlin)
		want := v0.Add(v0.Mul(0.5)).Add(v2.Mul(0.25)).Mul(4.0 / 7.0)
		got = e.TurbulenceVector(x, y, z, 2, false, ImprovedPerlin)
		if !got.ApproxEqualThreshold(want, 1e-12) {
			t.Errorf("octave 2 at %v: expected %v, got %v", p, want, got)
		}
	}
}

func TestTurbulenceVectorHardIsNonNegative(t *testing.T) {
	e := New()
	for _, b := range Bases() {
		for _, p := range samplePoints {
			v := e.TurbulenceVector(p[0], p[1], p[2], 3, true, b)
			for i, c := range v {
				if c < 0 {
					t.Errorf("%v at %v: component %d is %v", b, p, i, c)
				}
			}
		}
	}
}

func TestBlenderNoise(t *testing.T) {
	e := New()
	tests := []struct {
		x, y, z float64
		want    float64
	}{
		{0, 0, 0, 0.5},
		{0.5, 1.25, -2.75, 0.7008847119140625},
		{3.7, -1.2, 0.4, 0.17755771831664632},
	}
	for _, tt := range tests {
		got := e.BlenderNoiseU(tt.x, tt.y, tt.z)
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("BlenderNoiseU(%v, %v, %v): expected %v, got %v", tt.x, tt.y, tt.z, tt.want, got)
		}
	}

	for i := 0; i < 400; i++ {
		v := e.BlenderNoiseU(float64(i)*0.137-20, float64(i)*0.071, -float64(i)*0.29)
		if v < 0 || v > 1 {
			t.Fatalf("sample %d: %v outside [0,1]", i, v)
		}
	}

	const eps = 1e-9
	for _, edge := range []float64{1, -1, 5} {
		a, b := e.BlenderNoiseU(edge-eps, 0.4, 0.7), e.BlenderNoiseU(edge+eps, 0.4, 0.7)
		if math.Abs(a-b) > 1e-6 {
			t.Errorf("jump of %v across %v", math.Abs(a-b), edge)
		}
	}
}

package noise

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// DefaultMinkowskiExponent is the exponent used by the general Minkowski
// metric when callers have no better value.
const DefaultMinkowskiExponent = 2.5

// NoFeature is the distance reported for slots with no feature point.
const NoFeature = 1e10

// voronoiRange bounds the coordinates the cell scan accepts. Beyond it the
// integer cell indices no longer fit the scan loop.
const voronoiRange = 1 << 52

// Voronoi scans the 3x3x3 block of cells around (x, y, z) and returns the
// four smallest feature point distances in ascending order together with
// the feature points they belong to. exponent is only read by the general
// Minkowski metric.
//
// Coordinates that are NaN, infinite or at least 2^52 in magnitude have no
// cells to scan: every distance is NoFeature and every point is zero, so F1F2
// and Crackle are 0 there.
func (e *Engine) Voronoi(x, y, z float64, metric Metric, exponent float64) ([4]float64, [4]mgl64.Vec3) {
	dist := [4]float64{NoFeature, NoFeature, NoFeature, NoFeature}
	var pts [4]mgl64.Vec3
	if !(math.Abs(x) < voronoiRange && math.Abs(y) < voronoiRange && math.Abs(z) < voronoiRange) {
		return dist, pts
	}

	xi := int(math.Floor(x))
	yi := int(math.Floor(y))
	zi := int(math.Floor(z))

	p := &e.perm
	for xx := xi - 1; xx <= xi+1; xx++ {
		for yy := yi - 1; yy <= yi+1; yy++ {
			for zz := zi - 1; zz <= zi+1; zz++ {
				j := &jitterPoints[p[(int(p[(int(p[zz&255])+yy)&255])+xx)&255]]
				fp := mgl64.Vec3{j[0] + float64(xx), j[1] + float64(yy), j[2] + float64(zz)}

				d := distance(x-fp[0], y-fp[1], z-fp[2], metric, exponent)
				insertNearest(&dist, &pts, d, fp)
			}
		}
	}
	return dist, pts
}

// insertNearest keeps dist sorted ascending, shifting the slots below the
// insertion point down by one.
func insertNearest(dist *[4]float64, pts *[4]mgl64.Vec3, d float64, fp mgl64.Vec3) {
	switch {
	case d < dist[0]:
		dist[3], dist[2], dist[1], dist[0] = dist[2], dist[1], dist[0], d
		pts[3], pts[2], pts[1], pts[0] = pts[2], pts[1], pts[0], fp
	case d < dist[1]:
		dist[3], dist[2], dist[1] = dist[2], dist[1], d
		pts[3], pts[2], pts[1] = pts[2], pts[1], fp
	case d < dist[2]:
		dist[3], dist[2] = dist[2], d
		pts[3], pts[2] = pts[2], fp
	case d < dist[3]:
		dist[3] = d
		pts[3] = fp
	}
}

func distance(x, y, z float64, metric Metric, exponent float64) float64 {
	switch metric {
	case EuclideanSquared:
		return x*x + y*y + z*z
	case Manhattan:
		return math.Abs(x) + math.Abs(y) + math.Abs(z)
	case Chebyshev:
		return math.Max(math.Abs(x), math.Max(math.Abs(y), math.Abs(z)))
	case Minkowski:
		return math.Pow(math.Pow(math.Abs(x), exponent)+math.Pow(math.Abs(y), exponent)+math.Pow(math.Abs(z), exponent), 1/exponent)
	case MinkowskiHalf:
		d := math.Sqrt(math.Abs(x)) + math.Sqrt(math.Abs(y)) + math.Sqrt(math.Abs(z))
		return d * d
	case Minkowski4:
		x *= x
		y *= y
		z *= z
		return math.Sqrt(math.Sqrt(x*x + y*y + z*z))
	default:
		return math.Sqrt(x*x + y*y + z*z)
	}
}

func (e *Engine) voronoiEuclidean(x, y, z float64) [4]float64 {
	d, _ := e.Voronoi(x, y, z, Euclidean, DefaultMinkowskiExponent)
	return d
}

// VoronoiF1U returns the distance to the nearest feature point.
func (e *Engine) VoronoiF1U(x, y, z float64) float64 {
	return e.voronoiEuclidean(x, y, z)[0]
}

// VoronoiF1S is VoronoiF1U mapped to the signed range.
func (e *Engine) VoronoiF1S(x, y, z float64) float64 {
	return UnsignedToSigned(e.VoronoiF1U(x, y, z))
}

// VoronoiF2U returns the distance to the second nearest feature point.
func (e *Engine) VoronoiF2U(x, y, z float64) float64 {
	return e.voronoiEuclidean(x, y, z)[1]
}

// VoronoiF2S is VoronoiF2U mapped to the signed range.
func (e *Engine) VoronoiF2S(x, y, z float64) float64 {
	return UnsignedToSigned(e.VoronoiF2U(x, y, z))
}

// VoronoiF3U returns the distance to the third nearest feature point.
func (e *Engine) VoronoiF3U(x, y, z float64) float64 {
	return e.voronoiEuclidean(x, y, z)[2]
}

// VoronoiF3S is VoronoiF3U mapped to the signed range.
func (e *Engine) VoronoiF3S(x, y, z float64) float64 {
	return UnsignedToSigned(e.VoronoiF3U(x, y, z))
}

// VoronoiF4U returns the distance to the fourth nearest feature point.
func (e *Engine) VoronoiF4U(x, y, z float64) float64 {
	return e.voronoiEuclidean(x, y, z)[3]
}

// VoronoiF4S is VoronoiF4U mapped to the signed range.
func (e *Engine) VoronoiF4S(x, y, z float64) float64 {
	return UnsignedToSigned(e.VoronoiF4U(x, y, z))
}

// VoronoiF1F2U returns F2 - F1, which is zero on cell boundaries.
func (e *Engine) VoronoiF1F2U(x, y, z float64) float64 {
	d := e.voronoiEuclidean(x, y, z)
	return d[1] - d[0]
}

// VoronoiF1F2S is VoronoiF1F2U mapped to the signed range.
func (e *Engine) VoronoiF1F2S(x, y, z float64) float64 {
	return UnsignedToSigned(e.VoronoiF1F2U(x, y, z))
}

// VoronoiCrackleU returns 10*(F2-F1) clamped to 1, a network of thin walls.
func (e *Engine) VoronoiCrackleU(x, y, z float64) float64 {
	d := e.voronoiEuclidean(x, y, z)
	t := 10 * (d[1] - d[0])
	if t > 1 {
		return 1
	}
	return t
}

// VoronoiCrackleS is VoronoiCrackleU mapped to the signed range.
func (e *Engine) VoronoiCrackleS(x, y, z float64) float64 {
	return UnsignedToSigned(e.VoronoiCrackleU(x, y, z))
}

// CellNoiseU returns a value in [0,1) that is constant over each unit cell.
// It hashes the floored coordinates only and never reads the tables.
func (e *Engine) CellNoiseU(x, y, z float64) float64 {
	xi := uint32(int32(math.Floor(x)))
	yi := uint32(int32(math.Floor(y)))
	zi := uint32(int32(math.Floor(z)))

	n := xi + yi*1301 + zi*314159
	n ^= n << 13
	return float64(n*(n*n*15731+789221)+1376312589) / 4294967296.0
}

// CellNoiseS is CellNoiseU mapped to [-1,1).
func (e *Engine) CellNoiseS(x, y, z float64) float64 {
	return UnsignedToSigned(e.CellNoiseU(x, y, z))
}

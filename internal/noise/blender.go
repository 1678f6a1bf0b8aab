package noise

import "math"

// BlenderNoiseU returns the classic cubic-falloff gradient noise, clamped
// to [0,1]. Each of the eight cell corners contributes the dot product of
// a table gradient with the corner offset, weighted by the separable
// falloff 1-3t^2+2|t|^3 along each axis.
func (e *Engine) BlenderNoiseU(x, y, z float64) float64 {
	fx, fy, fz := math.Floor(x), math.Floor(y), math.Floor(z)
	ox, oy, oz := x-fx, y-fy, z-fz
	jx, jy, jz := ox-1, oy-1, oz-1

	ix, iy, iz := int(fx), int(fy), int(fz)

	cn1 := ox * ox
	cn2 := oy * oy
	cn3 := oz * oz
	cn4 := jx * jx
	cn5 := jy * jy
	cn6 := jz * jz

	cn1 = 1 - 3*cn1 + 2*cn1*ox
	cn2 = 1 - 3*cn2 + 2*cn2*oy
	cn3 = 1 - 3*cn3 + 2*cn3*oz
	cn4 = 1 - 3*cn4 - 2*cn4*jx
	cn5 = 1 - 3*cn5 - 2*cn5*jy
	cn6 = 1 - 3*cn6 - 2*cn6*jz

	p := &e.perm
	b00 := int(p[int(p[ix&255])+(iy&255)])
	b10 := int(p[int(p[(ix+1)&255])+(iy&255)])
	b01 := int(p[int(p[ix&255])+((iy+1)&255)])
	b11 := int(p[int(p[(ix+1)&255])+((iy+1)&255)])

	b20 := iz & 255
	b21 := (iz + 1) & 255

	n := 0.5
	n += cn1 * cn2 * cn3 * dotGradient(p[b20+b00], ox, oy, oz)
	n += cn1 * cn2 * cn6 * dotGradient(p[b21+b00], ox, oy, jz)
	n += cn1 * cn5 * cn3 * dotGradient(p[b20+b01], ox, jy, oz)
	n += cn1 * cn5 * cn6 * dotGradient(p[b21+b01], ox, jy, jz)
	n += cn4 * cn2 * cn3 * dotGradient(p[b20+b10], jx, oy, oz)
	n += cn4 * cn2 * cn6 * dotGradient(p[b21+b10], jx, oy, jz)
	n += cn4 * cn5 * cn3 * dotGradient(p[b20+b11], jx, jy, oz)
	n += cn4 * cn5 * cn6 * dotGradient(p[b21+b11], jx, jy, jz)

	if n < 0 {
		return 0
	}
	if n > 1 {
		return 1
	}
	return n
}

// BlenderNoiseS is BlenderNoiseU mapped to [-1,1].
func (e *Engine) BlenderNoiseS(x, y, z float64) float64 {
	return UnsignedToSigned(e.BlenderNoiseU(x, y, z))
}

func dotGradient(hash uint8, x, y, z float64) float64 {
	g := &gradientVectors[hash]
	return g[0]*x + g[1]*y + g[2]*z
}

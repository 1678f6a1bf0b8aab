package noise

// Improved Perlin noise in one to four dimensions. Lattice corners are
// hashed by nesting lookups through the permutation table, each corner
// contributes the dot product of a hashed gradient with its offset, and the
// corner values are blended with the quintic fade, x axis first.
//
// The perlinNd kernels return the raw signed value. U shifts it and S is
// derived from U, the same way round as every other basis.

func (e *Engine) perlin1d(x float64) float64 {
	X, fx := lattice(x)
	p := &e.perm

	u := fade(fx)
	return lerp(u, grad1(p[X], fx), grad1(p[X+1], fx-1))
}

func (e *Engine) perlin2d(x, y float64) float64 {
	X, fx := lattice(x)
	Y, fy := lattice(y)
	p := &e.perm

	u, v := fade(fx), fade(fy)

	A := int(p[X]) + Y
	B := int(p[X+1]) + Y

	return lerp(v,
		lerp(u, grad2(p[A], fx, fy), grad2(p[B], fx-1, fy)),
		lerp(u, grad2(p[A+1], fx, fy-1), grad2(p[B+1], fx-1, fy-1)))
}

func (e *Engine) perlin3d(x, y, z float64) float64 {
	X, fx := lattice(x)
	Y, fy := lattice(y)
	Z, fz := lattice(z)
	p := &e.perm

	u, v, w := fade(fx), fade(fy), fade(fz)

	A := int(p[X]) + Y
	AA := int(p[A]) + Z
	AB := int(p[A+1]) + Z
	B := int(p[X+1]) + Y
	BA := int(p[B]) + Z
	BB := int(p[B+1]) + Z

	return lerp(w,
		lerp(v,
			lerp(u, grad3(p[AA], fx, fy, fz), grad3(p[BA], fx-1, fy, fz)),
			lerp(u, grad3(p[AB], fx, fy-1, fz), grad3(p[BB], fx-1, fy-1, fz))),
		lerp(v,
			lerp(u, grad3(p[AA+1], fx, fy, fz-1), grad3(p[BA+1], fx-1, fy, fz-1)),
			lerp(u, grad3(p[AB+1], fx, fy-1, fz-1), grad3(p[BB+1], fx-1, fy-1, fz-1))))
}

func (e *Engine) perlin4d(x, y, z, w float64) float64 {
	X, fx := lattice(x)
	Y, fy := lattice(y)
	Z, fz := lattice(z)
	W, fw := lattice(w)
	p := &e.perm

	a, b, c, d := fade(fx), fade(fy), fade(fz), fade(fw)

	A := int(p[X]) + Y
	AA := int(p[A]) + Z
	AB := int(p[A+1]) + Z
	B := int(p[X+1]) + Y
	BA := int(p[B]) + Z
	BB := int(p[B+1]) + Z

	AAA := int(p[AA]) + W
	AAB := int(p[AA+1]) + W
	ABA := int(p[AB]) + W
	ABB := int(p[AB+1]) + W
	BAA := int(p[BA]) + W
	BAB := int(p[BA+1]) + W
	BBA := int(p[BB]) + W
	BBB := int(p[BB+1]) + W

	near := lerp(c,
		lerp(b,
			lerp(a, grad4(p[AAA], fx, fy, fz, fw), grad4(p[BAA], fx-1, fy, fz, fw)),
			lerp(a, grad4(p[ABA], fx, fy-1, fz, fw), grad4(p[BBA], fx-1, fy-1, fz, fw))),
		lerp(b,
			lerp(a, grad4(p[AAB], fx, fy, fz-1, fw), grad4(p[BAB], fx-1, fy, fz-1, fw)),
			lerp(a, grad4(p[ABB], fx, fy-1, fz-1, fw), grad4(p[BBB], fx-1, fy-1, fz-1, fw))))
	far := lerp(c,
		lerp(b,
			lerp(a, grad4(p[AAA+1], fx, fy, fz, fw-1), grad4(p[BAA+1], fx-1, fy, fz, fw-1)),
			lerp(a, grad4(p[ABA+1], fx, fy-1, fz, fw-1), grad4(p[BBA+1], fx-1, fy-1, fz, fw-1))),
		lerp(b,
			lerp(a, grad4(p[AAB+1], fx, fy, fz-1, fw-1), grad4(p[BAB+1], fx-1, fy, fz-1, fw-1)),
			lerp(a, grad4(p[ABB+1], fx, fy-1, fz-1, fw-1), grad4(p[BBB+1], fx-1, fy-1, fz-1, fw-1))))

	return lerp(d, near, far)
}

// ImprovedPerlin1dU returns 1D improved Perlin noise in about [0,1].
func (e *Engine) ImprovedPerlin1dU(x float64) float64 {
	return SignedToUnsigned(e.perlin1d(x))
}

// ImprovedPerlin1dS returns 1D improved Perlin noise in about [-1,1].
func (e *Engine) ImprovedPerlin1dS(x float64) float64 {
	return UnsignedToSigned(e.ImprovedPerlin1dU(x))
}

// ImprovedPerlin2dU returns 2D improved Perlin noise in about [0,1].
func (e *Engine) ImprovedPerlin2dU(x, y float64) float64 {
	return SignedToUnsigned(e.perlin2d(x, y))
}

// ImprovedPerlin2dS returns 2D improved Perlin noise in about [-1,1].
func (e *Engine) ImprovedPerlin2dS(x, y float64) float64 {
	return UnsignedToSigned(e.ImprovedPerlin2dU(x, y))
}

// ImprovedPerlin3dU returns 3D improved Perlin noise in about [0,1].
func (e *Engine) ImprovedPerlin3dU(x, y, z float64) float64 {
	return SignedToUnsigned(e.perlin3d(x, y, z))
}

// ImprovedPerlin3dS returns 3D improved Perlin noise in about [-1,1].
func (e *Engine) ImprovedPerlin3dS(x, y, z float64) float64 {
	return UnsignedToSigned(e.ImprovedPerlin3dU(x, y, z))
}

// ImprovedPerlin4dU returns 4D improved Perlin noise shifted towards [0,1].
// Its range is a little wider than the lower dimensions, roughly
// [-0.15,1.15].
func (e *Engine) ImprovedPerlin4dU(x, y, z, w float64) float64 {
	return SignedToUnsigned(e.perlin4d(x, y, z, w))
}

// ImprovedPerlin4dS returns 4D improved Perlin noise, roughly [-1.3,1.3].
func (e *Engine) ImprovedPerlin4dS(x, y, z, w float64) float64 {
	return UnsignedToSigned(e.ImprovedPerlin4dU(x, y, z, w))
}

func grad1(hash uint8, x float64) float64 {
	switch hash & 3 {
	case 0:
		return x
	case 1:
		return -x
	case 2:
		return 2 * x
	default:
		return -2 * x
	}
}

func grad2(hash uint8, x, y float64) float64 {
	switch hash & 7 {
	case 0:
		return x + y
	case 1:
		return -x + y
	case 2:
		return x - y
	case 3:
		return -x - y
	case 4:
		return x
	case 5:
		return -x
	case 6:
		return y
	default:
		return -y
	}
}

// grad3 uses the twelve cube-edge directions; the last four cases repeat
// edges so that the hash can be masked to 16.
func grad3(hash uint8, x, y, z float64) float64 {
	switch hash & 15 {
	case 0:
		return x + y
	case 1:
		return -x + y
	case 2:
		return x - y
	case 3:
		return -x - y
	case 4:
		return x + z
	case 5:
		return -x + z
	case 6:
		return x - z
	case 7:
		return -x - z
	case 8:
		return y + z
	case 9:
		return -y + z
	case 10:
		return y - z
	case 11:
		return -y - z
	case 12:
		return y + x
	case 13:
		return -y + z
	case 14:
		return y - x
	default:
		return -y - z
	}
}

// grad4 picks one of the 32 directions with one zero component.
func grad4(hash uint8, x, y, z, w float64) float64 {
	switch hash & 31 {
	case 0:
		return y + z + w
	case 1:
		return y + z - w
	case 2:
		return y - z + w
	case 3:
		return y - z - w
	case 4:
		return -y + z + w
	case 5:
		return -y + z - w
	case 6:
		return -y - z + w
	case 7:
		return -y - z - w
	case 8:
		return x + z + w
	case 9:
		return x + z - w
	case 10:
		return x - z + w
	case 11:
		return x - z - w
	case 12:
		return -x + z + w
	case 13:
		return -x + z - w
	case 14:
		return -x - z + w
	case 15:
		return -x - z - w
	case 16:
		return x + y + w
	case 17:
		return x + y - w
	case 18:
		return x - y + w
	case 19:
		return x - y - w
	case 20:
		return -x + y + w
	case 21:
		return -x + y - w
	case 22:
		return -x - y + w
	case 23:
		return -x - y - w
	case 24:
		return x + y + z
	case 25:
		return x + y - z
	case 26:
		return x - y + z
	case 27:
		return x - y - z
	case 28:
		return -x + y + z
	case 29:
		return -x + y - z
	case 30:
		return -x - y + z
	default:
		return -x - y - z
	}
}

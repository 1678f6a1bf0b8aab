package noise

import (
	"math"
	"math/rand"
)

// Engine evaluates procedural noise over a 512-entry permutation table.
// The jitter and gradient tables are shared, read-only package data that
// is indexed through the permutation.
//
// Evaluators never mutate the engine, so a single Engine may be shared by
// any number of goroutines as long as nobody calls Reseed at the same time.
type Engine struct {
	perm [512]uint8
}

// New creates an engine with the default permutation table.
func New() *Engine {
	return &Engine{perm: defaultPerm}
}

// NewSeeded creates an engine whose permutation table is derived from seed.
func NewSeeded(seed uint32) *Engine {
	e := New()
	e.Reseed(seed)
	return e
}

// Reseed rebuilds the permutation table from seed. The result depends only
// on seed, never on the previous table contents.
//
// Reseed writes the table in place and is not synchronized: it must not be
// called concurrently with any evaluator call on the same Engine.
func (e *Engine) Reseed(seed uint32) {
	r := rand.New(rand.NewSource(int64(seed)))

	var p [256]uint8
	for i := range p {
		p[i] = uint8(i)
	}
	r.Shuffle(256, func(i, j int) { p[i], p[j] = p[j], p[i] })

	for i := 0; i < 512; i++ {
		e.perm[i] = p[i&255]
	}
}

// Perm returns entry i (masked to 0..511) of the permutation table.
func (e *Engine) Perm(i int) uint8 {
	return e.perm[i&511]
}

// UnsignedToSigned maps a value from the [0,1) range to [-1,1).
func UnsignedToSigned(v float64) float64 {
	return 2*v - 1
}

// SignedToUnsigned maps a value from the [-1,1) range to [0,1).
func SignedToUnsigned(v float64) float64 {
	return 0.5*v + 0.5
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

// fade is the quintic smoothing curve 6t^5 - 15t^4 + 10t^3.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

// lattice splits v into its floored cell index, masked for table lookups,
// and the fractional offset inside the cell.
func lattice(v float64) (int, float64) {
	f := math.Floor(v)
	return int(f) & 255, v - f
}

package field

import (
	"math"

	"github.com/dgravesa/go-parallel/parallel"
)

// Window is a rectangular lattice of sample positions in plane coordinates.
type Window struct {
	X, Y          float64 // top-left sample
	Step          float64 // distance between neighbouring samples
	Width, Height int
}

// Grid holds sampled values in row-major order.
type Grid struct {
	Window
	Values []float64
}

// Sample evaluates s at every position of w. Rows are sampled in parallel;
// the sampler's engine is only read, never reseeded, while this runs.
func Sample(s *Sampler, w Window) *Grid {
	if w.Width < 0 {
		w.Width = 0
	}
	if w.Height < 0 {
		w.Height = 0
	}
	g := &Grid{Window: w, Values: make([]float64, w.Width*w.Height)}
	if len(g.Values) == 0 {
		return g
	}

	parallel.For(w.Height, func(row, _ int) {
		y := w.Y + float64(row)*w.Step
		base := row * w.Width
		for col := 0; col < w.Width; col++ {
			g.Values[base+col] = s.At(w.X+float64(col)*w.Step, y)
		}
	})
	return g
}

// At returns the value at column x, row y.
func (g *Grid) At(x, y int) float64 {
	return g.Values[y*g.Width+x]
}

// Rows returns the values as a [row][col] slice for JSON output.
func (g *Grid) Rows() [][]float64 {
	rows := make([][]float64, g.Height)
	for y := range rows {
		rows[y] = g.Values[y*g.Width : (y+1)*g.Width]
	}
	return rows
}

// Stats summarises the value range of a grid.
type Stats struct {
	Min, Max, Mean float64
}

// Stats returns the min, max and mean. An empty grid reports zeros.
func (g *Grid) Stats() Stats {
	if len(g.Values) == 0 {
		return Stats{}
	}
	st := Stats{Min: math.Inf(1), Max: math.Inf(-1)}
	var sum float64
	for _, v := range g.Values {
		st.Min = math.Min(st.Min, v)
		st.Max = math.Max(st.Max, v)
		sum += v
	}
	st.Mean = sum / float64(len(g.Values))
	return st
}

// Normalize maps v from [Min, Max] to [0, 1]. A flat range maps to 0.5.
func (st Stats) Normalize(v float64) float64 {
	span := st.Max - st.Min
	if span <= 0 {
		return 0.5
	}
	return (v - st.Min) / span
}

// Histogram counts normalized values into n equal buckets.
func (g *Grid) Histogram(n int) []int {
	if n < 1 {
		n = 1
	}
	counts := make([]int, n)
	st := g.Stats()
	for _, v := range g.Values {
		b := int(st.Normalize(v) * float64(n))
		if b >= n {
			b = n - 1
		}
		if b < 0 {
			b = 0
		}
		counts[b]++
	}
	return counts
}

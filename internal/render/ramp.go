package render

import (
	"math"
	"strings"
)

// Stop is one colour key of a Ramp at position Pos in [0,1].
type Stop struct {
	Pos   float64
	Color Color
}

// Ramp maps normalized field values to colours by linear interpolation
// between stops sorted by Pos.
type Ramp []Stop

// RampNames lists the built-in ramps in cycling order.
var RampNames = []string{"gray", "terrain", "heat", "ice"}

var ramps = map[string]Ramp{
	"gray": {
		{0, Color{0, 0, 0}},
		{1, Color{255, 255, 255}},
	},
	// Same bands as the wilderness map legend: deep water to snow.
	"terrain": {
		{0.00, Color{20, 40, 120}},
		{0.28, Color{40, 110, 190}},
		{0.32, Color{210, 200, 140}},
		{0.42, Color{80, 160, 60}},
		{0.70, Color{30, 100, 40}},
		{0.78, Color{120, 110, 100}},
		{1.00, Color{250, 250, 250}},
	},
	"heat": {
		{0, Color{0, 0, 0}},
		{0.35, Color{180, 20, 10}},
		{0.7, Color{250, 180, 20}},
		{1, Color{255, 255, 220}},
	},
	"ice": {
		{0, Color{5, 10, 40}},
		{0.5, Color{60, 140, 200}},
		{1, Color{230, 250, 255}},
	},
}

// RampByName returns a built-in ramp. Unknown names return gray and false.
func RampByName(name string) (Ramp, bool) {
	r, ok := ramps[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return ramps["gray"], false
	}
	return r, true
}

// NextRamp returns the name of the ramp after name, wrapping around.
func NextRamp(name string) string {
	for i, n := range RampNames {
		if n == name {
			return RampNames[(i+1)%len(RampNames)]
		}
	}
	return RampNames[0]
}

// At returns the colour for t, clamped to [0,1]. NaN maps to the first stop.
func (r Ramp) At(t float64) Color {
	if len(r) == 0 {
		return Color{}
	}
	if math.IsNaN(t) || t <= r[0].Pos {
		return r[0].Color
	}
	last := r[len(r)-1]
	if t >= last.Pos {
		return last.Color
	}
	for i := 1; i < len(r); i++ {
		if t <= r[i].Pos {
			a, b := r[i-1], r[i]
			f := (t - a.Pos) / (b.Pos - a.Pos)
			return Color{
				R: mixChannel(a.Color.R, b.Color.R, f),
				G: mixChannel(a.Color.G, b.Color.G, f),
				B: mixChannel(a.Color.B, b.Color.B, f),
			}
		}
	}
	return last.Color
}

func mixChannel(a, b uint8, f float64) uint8 {
	return uint8(math.Round(float64(a) + f*(float64(b)-float64(a))))
}

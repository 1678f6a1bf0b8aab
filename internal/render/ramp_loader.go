package render

import (
	"fmt"
	"image/png"
	"os"
	"strings"
)

// maxRampStops caps how many stops are taken from a gradient image.
const maxRampStops = 64

// LoadRamp reads a gradient strip PNG and returns a Ramp sampled evenly
// along its top row. Pixels with alpha below half are skipped.
func LoadRamp(path string) (Ramp, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	bounds := img.Bounds()
	n := bounds.Dx()
	if n > maxRampStops {
		n = maxRampStops
	}
	if n < 2 {
		return nil, fmt.Errorf("%s: gradient needs at least 2 pixels, got %d", path, bounds.Dx())
	}

	var ramp Ramp
	for i := 0; i < n; i++ {
		x := bounds.Min.X + i*(bounds.Dx()-1)/(n-1)
		r, g, b, a := img.At(x, bounds.Min.Y).RGBA()
		if a < 0x8000 {
			continue
		}
		ramp = append(ramp, Stop{
			Pos:   float64(i) / float64(n-1),
			Color: Color{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)},
		})
	}
	if len(ramp) < 2 {
		return nil, fmt.Errorf("%s: fewer than 2 opaque pixels", path)
	}
	return ramp, nil
}

// ResolveRamp returns a built-in ramp by name, or loads one when name is a
// .png path.
func ResolveRamp(name string) (Ramp, error) {
	if strings.HasSuffix(strings.ToLower(name), ".png") {
		return LoadRamp(name)
	}
	r, ok := RampByName(name)
	if !ok {
		return r, fmt.Errorf("unknown ramp %q (available: %s)", name, strings.Join(RampNames, ", "))
	}
	return r, nil
}

package render

import (
	"math"

	"procnoise/internal/field"
)

const (
	MinZoom = 1.0 / 16
	MaxZoom = 64.0

	// panPixels is how many samples one pan step moves the view.
	panPixels = 8
)

// Viewport is a camera over the noise plane. Zoom is samples per plane unit.
type Viewport struct {
	CenterX, CenterY float64
	Zoom             float64
}

// NewViewport returns a viewport centred on the origin at zoom 1.
func NewViewport() Viewport {
	return Viewport{Zoom: 1}
}

// Step is the plane distance between neighbouring samples.
func (v Viewport) Step() float64 {
	return 1 / v.Zoom
}

// Window returns the sampling window for a pixel area of w x h centred on
// the camera.
func (v Viewport) Window(w, h int) field.Window {
	step := v.Step()
	return field.Window{
		X:      v.CenterX - float64(w)/2*step,
		Y:      v.CenterY - float64(h)/2*step,
		Step:   step,
		Width:  w,
		Height: h,
	}
}

// Pan moves the camera by dx, dy pan steps.
func (v *Viewport) Pan(dx, dy int) {
	step := v.Step() * panPixels
	v.CenterX += float64(dx) * step
	v.CenterY += float64(dy) * step
}

// ZoomBy multiplies the zoom by factor, clamped to [MinZoom, MaxZoom].
func (v *Viewport) ZoomBy(factor float64) {
	v.Zoom = math.Max(MinZoom, math.Min(MaxZoom, v.Zoom*factor))
}

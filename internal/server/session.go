package server

import (
	"fmt"

	"procnoise/internal/field"
	"procnoise/internal/noise"
	"procnoise/internal/render"
)

const (
	minOctaves = 1
	maxOctaves = 12
	zoomFactor = 2
)

const helpLine = "arrows/wasd pan  +/- zoom  b basis  f kind  m metric  [ ] octaves  r reseed  c colours  q quit"

// session is the preview state of one connection. It owns its sampler, so
// reseeding one session never touches another's permutation table.
type session struct {
	params  field.Params
	sampler *field.Sampler
	view    render.Viewport
	ramp    string
}

func newSession(defaults field.Params) *session {
	return &session{
		params:  defaults,
		sampler: field.NewSampler(defaults),
		view:    render.NewViewport(),
		ramp:    render.RampNames[0],
	}
}

// apply updates the session for a. It reports whether the frame must be
// redrawn.
func (s *session) apply(a Action) bool {
	p := &s.params
	rebuild := false
	switch a {
	case ActionPanUp:
		s.view.Pan(0, -1)
	case ActionPanDown:
		s.view.Pan(0, 1)
	case ActionPanLeft:
		s.view.Pan(-1, 0)
	case ActionPanRight:
		s.view.Pan(1, 0)
	case ActionZoomIn:
		s.view.ZoomBy(zoomFactor)
	case ActionZoomOut:
		s.view.ZoomBy(1.0 / zoomFactor)
	case ActionNextBasis:
		b, _ := noise.ParseBasis(p.Basis)
		p.Basis = b.Next().String()
		rebuild = true
	case ActionNextKind:
		k, _ := field.ParseKind(string(p.Kind))
		p.Kind = k.Next()
		rebuild = true
	case ActionNextMetric:
		m, _ := noise.ParseMetric(p.Metric)
		p.Metric = m.Next().String()
		rebuild = true
	case ActionNextRamp:
		s.ramp = render.NextRamp(s.ramp)
	case ActionMoreOctaves:
		if p.Octaves+1 > maxOctaves {
			return false
		}
		p.Octaves++
		rebuild = true
	case ActionFewerOctaves:
		if p.Octaves-1 < minOctaves {
			return false
		}
		p.Octaves--
		rebuild = true
	case ActionReseed:
		// wraps to 0, the default table
		p.Seed++
		rebuild = true
	default:
		return false
	}
	if rebuild {
		s.sampler = field.NewSampler(s.params)
	}
	return true
}

func (s *session) status() []string {
	return []string{
		fmt.Sprintf(" %s | seed %d | zoom %.3gx | %s", s.params.Describe(), s.params.Seed, s.view.Zoom, s.ramp),
		" " + helpLine,
	}
}

// frame samples the visible window and renders it for a termW x termH
// terminal.
func (s *session) frame(e *render.Engine, termW, termH int) string {
	pw, ph := render.PixelSize(termW, termH)
	g := field.Sample(s.sampler, s.view.Window(pw, ph))
	ramp, _ := render.RampByName(s.ramp)
	return e.Render(g, ramp, s.status(), termW, termH)
}

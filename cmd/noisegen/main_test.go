package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"procnoise/internal/field"
	"procnoise/internal/render"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		in      string
		w, h    int
		wantErr bool
	}{
		{"256x128", 256, 128, false},
		{"1x1", 1, 1, false},
		{"256", 0, 0, true},
		{"0x10", 0, 0, true},
		{"10x-1", 0, 0, true},
		{"axb", 0, 0, true},
	}
	for _, tt := range tests {
		w, h, err := parseSize(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseSize(%q): expected error=%v, got %v", tt.in, tt.wantErr, err)
			continue
		}
		if w != tt.w || h != tt.h {
			t.Errorf("parseSize(%q): expected %dx%d, got %dx%d", tt.in, tt.w, tt.h, w, h)
		}
	}
}

func TestOverlayFlag(t *testing.T) {
	base := field.DefaultParams()
	base.Kind = field.KindRidged
	base.Octaves = 7

	cli := field.DefaultParams()
	cli.Octaves = 2
	cli.Seed = 5
	cli.Frequency = 0.5

	p := base
	for _, name := range []string{"octaves", "seed", "freq"} {
		overlayFlag(&p, cli, name)
	}
	if p.Kind != field.KindRidged {
		t.Errorf("expected kind from the params file, got %s", p.Kind)
	}
	if p.Octaves != 2 || p.Seed != 5 || p.Frequency != 0.5 {
		t.Errorf("expected explicit flags to win, got %+v", p)
	}
}

func TestWriteFormats(t *testing.T) {
	p := field.DefaultParams()
	g := field.Sample(field.NewSampler(p), field.Window{Step: 1, Width: 8, Height: 5})
	ramp, _ := render.RampByName("terrain")

	var buf bytes.Buffer
	if err := write(&buf, "json", p, g, ramp); err != nil {
		t.Fatalf("json: %v", err)
	}
	var out jsonGrid
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("decode json: %v", err)
	}
	if out.Width != 8 || out.Height != 5 || len(out.Values) != 5 || len(out.Values[0]) != 8 {
		t.Errorf("unexpected json shape %dx%d", out.Width, out.Height)
	}
	if out.Values[4][7] != g.At(7, 4) {
		t.Errorf("expected %v, got %v", g.At(7, 4), out.Values[4][7])
	}

	buf.Reset()
	if err := write(&buf, "png", p, g, ramp); err != nil {
		t.Fatalf("png: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("expected PNG signature")
	}

	buf.Reset()
	if err := write(&buf, "ansi", p, g, ramp); err != nil {
		t.Fatalf("ansi: %v", err)
	}
	if n := strings.Count(buf.String(), string(render.HalfBlock)); n != 8*3 {
		t.Errorf("expected 24 half blocks, got %d", n)
	}

	if err := write(&buf, "bmp", p, g, ramp); err == nil {
		t.Error("expected error for unknown format")
	}
}

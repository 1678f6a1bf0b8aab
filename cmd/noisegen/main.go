package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"procnoise/internal/field"
	"procnoise/internal/render"
)

// jsonGrid is the -format json output.
type jsonGrid struct {
	Params field.Params `json:"params"`
	Width  int          `json:"width"`
	Height int          `json:"height"`
	Step   float64      `json:"step"`
	Min    float64      `json:"min"`
	Max    float64      `json:"max"`
	Mean   float64      `json:"mean"`
	Values [][]float64  `json:"values"`
}

func main() {
	def := field.DefaultParams()
	var cli field.Params
	kind := flag.String("kind", string(def.Kind), "field kind ("+kindList()+")")
	flag.StringVar(&cli.Basis, "basis", def.Basis, "basis function")
	flag.StringVar(&cli.Basis2, "basis2", def.Basis2, "second basis for vlnoise")
	flag.StringVar(&cli.Metric, "metric", def.Metric, "voronoi distance metric")
	flag.Float64Var(&cli.Exponent, "exponent", def.Exponent, "minkowski exponent")
	flag.IntVar(&cli.Feature, "feature", def.Feature, "voronoi feature 1..4")
	flag.Float64Var(&cli.H, "h", def.H, "fractal increment")
	flag.Float64Var(&cli.Lacunarity, "lacunarity", def.Lacunarity, "frequency gap between octaves")
	flag.Float64Var(&cli.Octaves, "octaves", def.Octaves, "number of octaves")
	flag.Float64Var(&cli.Offset, "offset", def.Offset, "multifractal offset")
	flag.Float64Var(&cli.Gain, "gain", def.Gain, "multifractal gain")
	flag.Float64Var(&cli.Distortion, "distortion", def.Distortion, "vlnoise distortion")
	flag.BoolVar(&cli.Hard, "hard", def.Hard, "hard turbulence")
	flag.BoolVar(&cli.Unsigned, "unsigned", def.Unsigned, "unsigned [0,1] output")
	flag.Float64Var(&cli.Frequency, "freq", def.Frequency, "noise units per sample")
	flag.Float64Var(&cli.Z, "z", def.Z, "z slice")
	seed := flag.Uint("seed", 0, "permutation seed (0 = default table)")
	paramsPath := flag.String("params", "", "JSON params file; explicit flags override it")
	size := flag.String("size", "256x256", "output size as WxH")
	format := flag.String("format", "png", "output format (png, json, ansi)")
	rampName := flag.String("ramp", "gray", "colour ramp ("+strings.Join(render.RampNames, ", ")+") or gradient .png")
	out := flag.String("out", "", "output file (default: stdout)")
	flag.Parse()

	cli.Kind = field.Kind(*kind)
	cli.Seed = uint32(*seed)

	p := def
	if *paramsPath != "" {
		loaded, err := field.LoadParams(*paramsPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		p = loaded
	}
	flag.Visit(func(f *flag.Flag) {
		overlayFlag(&p, cli, f.Name)
	})

	if err := p.Validate(); err != nil {
		for _, line := range strings.Split(err.Error(), "\n") {
			fmt.Fprintf(os.Stderr, "Warning: %s\n", line)
		}
	}

	w, h, err := parseSize(*size)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ramp, err := render.ResolveRamp(*rampName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using gray)\n", err)
		ramp, _ = render.RampByName("gray")
	}

	fmt.Fprintf(os.Stderr, "Sampling %dx%d %s (seed %d)...\n", w, h, p.Describe(), p.Seed)

	g := field.Sample(field.NewSampler(p), field.Window{Step: 1, Width: w, Height: h})

	var dst io.Writer = os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		dst = f
	}

	if err := write(dst, *format, p, g, ramp); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *out != "" {
		fmt.Fprintf(os.Stderr, "Wrote %s\n", *out)
	}

	printSummary(os.Stderr, g)
}

func kindList() string {
	names := make([]string, len(field.Kinds))
	for i, k := range field.Kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

// overlayFlag copies the field behind flag name from cli into p.
func overlayFlag(p *field.Params, cli field.Params, name string) {
	switch name {
	case "kind":
		p.Kind = cli.Kind
	case "basis":
		p.Basis = cli.Basis
	case "basis2":
		p.Basis2 = cli.Basis2
	case "metric":
		p.Metric = cli.Metric
	case "exponent":
		p.Exponent = cli.Exponent
	case "feature":
		p.Feature = cli.Feature
	case "h":
		p.H = cli.H
	case "lacunarity":
		p.Lacunarity = cli.Lacunarity
	case "octaves":
		p.Octaves = cli.Octaves
	case "offset":
		p.Offset = cli.Offset
	case "gain":
		p.Gain = cli.Gain
	case "distortion":
		p.Distortion = cli.Distortion
	case "hard":
		p.Hard = cli.Hard
	case "unsigned":
		p.Unsigned = cli.Unsigned
	case "freq":
		p.Frequency = cli.Frequency
	case "z":
		p.Z = cli.Z
	case "seed":
		p.Seed = cli.Seed
	}
}

func write(w io.Writer, format string, p field.Params, g *field.Grid, ramp render.Ramp) error {
	switch format {
	case "png":
		return render.WritePNG(w, g, ramp)
	case "json":
		st := g.Stats()
		data, err := json.MarshalIndent(jsonGrid{
			Params: p,
			Width:  g.Width,
			Height: g.Height,
			Step:   g.Step,
			Min:    st.Min,
			Max:    st.Max,
			Mean:   st.Mean,
			Values: g.Rows(),
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal json: %w", err)
		}
		_, err = w.Write(append(data, '\n'))
		return err
	case "ansi":
		termH := (g.Height+1)/2 + render.HUDRows
		e := render.NewEngine(g.Width, termH)
		_, err := io.WriteString(w, render.ClearScreen()+e.Render(g, ramp, []string{p.Describe()}, g.Width, termH)+"\n")
		return err
	default:
		return fmt.Errorf("unknown format %q (available: png, json, ansi)", format)
	}
}

func parseSize(s string) (int, int, error) {
	parts := strings.SplitN(s, "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid size %q (expected WxH)", s)
	}
	w, err := strconv.Atoi(parts[0])
	if err != nil || w < 1 {
		return 0, 0, fmt.Errorf("invalid width %q (minimum 1)", parts[0])
	}
	h, err := strconv.Atoi(parts[1])
	if err != nil || h < 1 {
		return 0, 0, fmt.Errorf("invalid height %q (minimum 1)", parts[1])
	}
	return w, h, nil
}

// printSummary writes the value range and a coarse distribution to w.
func printSummary(w io.Writer, g *field.Grid) {
	st := g.Stats()
	fmt.Fprintf(w, "\nRange: min %.4f  max %.4f  mean %.4f\n", st.Min, st.Max, st.Mean)
	fmt.Fprintf(w, "Distribution:\n")
	hist := g.Histogram(10)
	total := len(g.Values)
	for i, c := range hist {
		lo := st.Min + (st.Max-st.Min)*float64(i)/10
		fmt.Fprintf(w, "  %8.4f %6d (%5.1f%%) %s\n", lo, c, float64(c)/float64(total)*100, strings.Repeat("#", c*40/total))
	}
}

package noise

import (
	"bytes"
	"math"
	"os"
	"strconv"
	"testing"
)

func TestLiteralTablesMatchGenerator(t *testing.T) {
	check := func(name string, lit, gen [256][3]float64) {
		for i := range lit {
			for c := 0; c < 3; c++ {
				want, err := strconv.ParseFloat(tableLiteral(gen[i][c]), 64)
				if err != nil {
					t.Fatal(err)
				}
				if lit[i][c] != want {
					t.Errorf("%s[%d][%d]: expected %v, got %v", name, i, c, want, lit[i][c])
				}
			}
		}
	}
	check("jitterPoints", jitterPoints, GenerateJitterPoints())
	check("gradientVectors", gradientVectors, GenerateGradientVectors())
}

func TestJitterPointsInUnitCube(t *testing.T) {
	for i, p := range jitterPoints {
		for c, v := range p {
			if v < 0 || v >= 1 {
				t.Errorf("jitterPoints[%d][%d] = %v outside [0,1)", i, c, v)
			}
		}
	}
}

func TestGradientVectorsAreUnit(t *testing.T) {
	for i, g := range gradientVectors {
		l := math.Sqrt(g[0]*g[0] + g[1]*g[1] + g[2]*g[2])
		if math.Abs(l-1) > 1e-5 {
			t.Errorf("gradientVectors[%d] has length %v", i, l)
		}
	}
}

func TestWriteTablesReproducesSource(t *testing.T) {
	want, err := os.ReadFile("tables.go")
	if err != nil {
		t.Fatalf("read tables.go: %v", err)
	}
	var buf bytes.Buffer
	if err := WriteTables(&buf); err != nil {
		t.Fatalf("WriteTables: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Error("generated source differs from tables.go; run gentables")
	}
}

func TestTableHashIsStable(t *testing.T) {
	tests := []struct {
		in, want uint32
	}{
		{0, 0},
		{1, 1753845952},
		{12345, 2435775735},
		{jitterSalt, 3977439331},
	}
	for _, tt := range tests {
		if got := tableHash(tt.in); got != tt.want {
			t.Errorf("tableHash(%d): expected %d, got %d", tt.in, tt.want, got)
		}
	}
	if tableHash(1) == tableHash(2) {
		t.Error("expected distinct hashes for neighbouring inputs")
	}
}

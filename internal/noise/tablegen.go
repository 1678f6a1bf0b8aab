package noise

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"
)

// The literal tables in tables.go come from the generators below. They use
// only integer mixing, exact float conversions, division and sqrt, so any
// IEEE-754 platform reproduces them bit for bit.

const (
	jitterSalt   uint32 = 0x4a495454 // "JITT"
	gradientSalt uint32 = 0x47524144 // "GRAD"
)

// tableHash is a Murmur3-style finalizer.
func tableHash(x uint32) uint32 {
	x ^= x >> 16
	x *= 0x7feb352d
	x ^= x >> 15
	x *= 0x846ca68b
	x ^= x >> 16
	return x
}

func tableUnit(i uint32) float64 {
	return float64(tableHash(i)) / 4294967296.0
}

// GenerateJitterPoints returns the unrounded jitter table.
func GenerateJitterPoints() [256][3]float64 {
	var t [256][3]float64
	for i := range t {
		for c := range t[i] {
			t[i][c] = tableUnit(jitterSalt + uint32(i*3+c))
		}
	}
	return t
}

// GenerateGradientVectors returns the unrounded gradient table. Candidates
// are drawn from the cube [-1,1)^3 and rejected unless they fall inside the
// unit ball and away from the origin, then normalized.
func GenerateGradientVectors() [256][3]float64 {
	var t [256][3]float64
	n := gradientSalt
	for i := range t {
		for {
			x := 2*tableUnit(n) - 1
			y := 2*tableUnit(n+1) - 1
			z := 2*tableUnit(n+2) - 1
			n += 3

			// Explicit conversions keep the compiler from fusing into FMA.
			l := float64(x*x) + float64(y*y) + float64(z*z)
			if l < 0.01 || l > 1 {
				continue
			}
			l = math.Sqrt(l)
			t[i] = [3]float64{x / l, y / l, z / l}
			break
		}
	}
	return t
}

// WriteTables writes the Go source of tables.go.
func WriteTables(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprint(bw, "// Code generated by gentables. DO NOT EDIT.\n\npackage noise\n\n")

	fmt.Fprint(bw, "// defaultPerm is the improved-Perlin permutation, stored twice so that\n")
	fmt.Fprint(bw, "// nested lookups never need a second mask.\n")
	fmt.Fprint(bw, "var defaultPerm = [512]uint8{\n")
	for row := 0; row < 512; row += 16 {
		vals := make([]string, 16)
		for k := range vals {
			vals[k] = fmt.Sprint(perlinPermutation[(row+k)&255])
		}
		fmt.Fprintf(bw, "\t%s,\n", strings.Join(vals, ", "))
	}
	fmt.Fprint(bw, "}\n\n")

	fmt.Fprint(bw, "// jitterPoints holds the per-cell feature point offsets used by the\n")
	fmt.Fprint(bw, "// cellular evaluators. Every component lies in [0,1). The values come from\n")
	fmt.Fprint(bw, "// GenerateJitterPoints, not from the Blender reference table, so cellular\n")
	fmt.Fprint(bw, "// output differs from content made with that table.\n")
	writeVectorTable(bw, "jitterPoints", GenerateJitterPoints())
	fmt.Fprint(bw, "\n")

	fmt.Fprint(bw, "// gradientVectors holds the unit gradients used by BlenderNoiseU. The\n")
	fmt.Fprint(bw, "// values come from GenerateGradientVectors, not from the Blender reference\n")
	fmt.Fprint(bw, "// table, so BlenderNoiseU differs from content made with that table.\n")
	writeVectorTable(bw, "gradientVectors", GenerateGradientVectors())

	return bw.Flush()
}

func writeVectorTable(w io.Writer, name string, t [256][3]float64) {
	fmt.Fprintf(w, "var %s = [256][3]float64{\n", name)
	for _, v := range t {
		fmt.Fprintf(w, "\t{%s, %s, %s},\n", tableLiteral(v[0]), tableLiteral(v[1]), tableLiteral(v[2]))
	}
	fmt.Fprint(w, "}\n")
}

// tableLiteral rounds to six decimals, the precision stored in tables.go.
func tableLiteral(v float64) string {
	s := fmt.Sprintf("%.6f", v)
	if s == "-0.000000" {
		return "0.000000"
	}
	return s
}

// perlinPermutation is Ken Perlin's reference permutation of 0..255.
var perlinPermutation = [256]uint8{
	151, 160, 137, 91, 90, 15, 131, 13, 201, 95, 96, 53, 194, 233, 7, 225,
	140, 36, 103, 30, 69, 142, 8, 99, 37, 240, 21, 10, 23, 190, 6, 148,
	247, 120, 234, 75, 0, 26, 197, 62, 94, 252, 219, 203, 117, 35, 11, 32,
	57, 177, 33, 88, 237, 149, 56, 87, 174, 20, 125, 136, 171, 168, 68, 175,
	74, 165, 71, 134, 139, 48, 27, 166, 77, 146, 158, 231, 83, 111, 229, 122,
	60, 211, 133, 230, 220, 105, 92, 41, 55, 46, 245, 40, 244, 102, 143, 54,
	65, 25, 63, 161, 1, 216, 80, 73, 209, 76, 132, 187, 208, 89, 18, 169,
	200, 196, 135, 130, 116, 188, 159, 86, 164, 100, 109, 198, 173, 186, 3, 64,
	52, 217, 226, 250, 124, 123, 5, 202, 38, 147, 118, 126, 255, 82, 85, 212,
	207, 206, 59, 227, 47, 16, 58, 17, 182, 189, 28, 42, 223, 183, 170, 213,
	119, 248, 152, 2, 44, 154, 163, 70, 221, 153, 101, 155, 167, 43, 172, 9,
	129, 22, 39, 253, 19, 98, 108, 110, 79, 113, 224, 232, 178, 185, 112, 104,
	218, 246, 97, 228, 251, 34, 242, 193, 238, 210, 144, 12, 191, 179, 162, 241,
	81, 51, 145, 235, 249, 14, 239, 107, 49, 192, 214, 31, 181, 199, 106, 157,
	184, 84, 204, 176, 115, 121, 50, 45, 127, 4, 150, 254, 138, 236, 205, 93,
	222, 114, 67, 29, 24, 72, 243, 141, 128, 195, 78, 66, 215, 61, 156, 180,
}

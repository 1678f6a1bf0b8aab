package noise

import (
	"math"
	"testing"
)

func TestDefaultPermIsDuplicatedPermutation(t *testing.T) {
	e := New()
	seen := make(map[uint8]bool)
	for i := 0; i < 256; i++ {
		v := e.Perm(i)
		if seen[v] {
			t.Fatalf("value %d appears twice in the first half", v)
		}
		seen[v] = true
		if e.Perm(i+256) != v {
			t.Errorf("entry %d: expected %d in second half, got %d", i, v, e.Perm(i+256))
		}
		if v != perlinPermutation[i] {
			t.Errorf("entry %d: expected reference value %d, got %d", i, perlinPermutation[i], v)
		}
	}
}

func TestReseedIsDeterministicAndIndependent(t *testing.T) {
	fresh := NewSeeded(42)

	reused := New()
	reused.Reseed(7)
	reused.Reseed(1234567)
	reused.Reseed(42)

	if fresh.perm != reused.perm {
		t.Fatal("expected identical tables after reseeding with the same seed")
	}

	pts := [][3]float64{{0.3, 0.7, 1.1}, {-4.2, 9.9, 0.01}, {100.5, -0.5, 3.25}}
	for _, p := range pts {
		for _, b := range Bases() {
			got, want := reused.Evaluate(p[0], p[1], p[2], b), fresh.Evaluate(p[0], p[1], p[2], b)
			if got != want {
				t.Errorf("%v at %v: expected %v, got %v", b, p, want, got)
			}
		}
	}
}

func TestReseedProducesPermutation(t *testing.T) {
	for _, seed := range []uint32{0, 1, 42, math.MaxUint32} {
		e := NewSeeded(seed)
		var count [256]int
		for i := 0; i < 256; i++ {
			count[e.Perm(i)]++
			if e.Perm(i) != e.Perm(i+256) {
				t.Errorf("seed %d: entry %d not duplicated", seed, i)
			}
		}
		for v, c := range count {
			if c != 1 {
				t.Errorf("seed %d: value %d appears %d times", seed, v, c)
			}
		}
	}
}

func TestDifferentSeedsDiffer(t *testing.T) {
	if NewSeeded(1).perm == NewSeeded(2).perm {
		t.Error("expected seeds 1 and 2 to produce different tables")
	}
}

func TestRangeConversions(t *testing.T) {
	tests := []struct {
		unsigned, signed float64
	}{
		{0, -1},
		{0.5, 0},
		{1, 1},
		{0.25, -0.5},
	}
	for _, tt := range tests {
		if got := UnsignedToSigned(tt.unsigned); got != tt.signed {
			t.Errorf("UnsignedToSigned(%v): expected %v, got %v", tt.unsigned, tt.signed, got)
		}
		if got := SignedToUnsigned(tt.signed); got != tt.unsigned {
			t.Errorf("SignedToUnsigned(%v): expected %v, got %v", tt.signed, tt.unsigned, got)
		}
	}
}

func TestFade(t *testing.T) {
	if fade(0) != 0 || fade(1) != 1 || fade(0.5) != 0.5 {
		t.Errorf("fade endpoints wrong: %v %v %v", fade(0), fade(0.5), fade(1))
	}
}

func TestLatticeFloorsNegatives(t *testing.T) {
	tests := []struct {
		in   float64
		cell int
		frac float64
	}{
		{0.25, 0, 0.25},
		{-0.25, 255, 0.75},
		{-1, 255, 0},
		{256.5, 0, 0.5},
		{-256.5, 255, 0.5},
	}
	for _, tt := range tests {
		cell, frac := lattice(tt.in)
		if cell != tt.cell || frac != tt.frac {
			t.Errorf("lattice(%v): expected (%d, %v), got (%d, %v)", tt.in, tt.cell, tt.frac, cell, frac)
		}
	}
}

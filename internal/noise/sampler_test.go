package noise

import (
	"testing"

	rng "islandgen/pkg/core"
)

func TestSamplersStayInUnitRange(t *testing.T) {
	b := Bounds{MinX: 12.5, MinY: 3.25, MaxX: 40.75, MaxY: 27}
	for _, kind := range Kinds {
		s, err := NewSampler(kind, rng.NewRNG(8), b)
		if err != nil {
			t.Fatalf("NewSampler(%s): %v", kind, err)
		}
		for i := 0; i <= 100; i++ {
			x := b.MinX + (b.MaxX-b.MinX)*float64(i)/100
			y := b.MinY + (b.MaxY-b.MinY)*float64(100-i)/100
			if v := s.At(x, y); v < 0 || v > 1 {
				t.Fatalf("%s sampler At(%v,%v) = %v, outside [0,1]", kind, x, y, v)
			}
		}
	}
}

func TestSamplersDeterministic(t *testing.T) {
	b := Bounds{MaxX: 10, MaxY: 10}
	for _, kind := range Kinds {
		s1, err := NewSampler(kind, rng.NewRNG(21), b)
		if err != nil {
			t.Fatalf("NewSampler(%s): %v", kind, err)
		}
		s2, err := NewSampler(kind, rng.NewRNG(21), b)
		if err != nil {
			t.Fatalf("NewSampler(%s): %v", kind, err)
		}
		for i := 0; i < 50; i++ {
			x, y := float64(i)*0.19, float64(i)*0.13
			if s1.At(x, y) != s2.At(x, y) {
				t.Fatalf("%s sampler not deterministic at (%v,%v)", kind, x, y)
			}
		}
	}
}

func TestLatticeSamplerCoversBounds(t *testing.T) {
	s, err := NewLatticeSampler(rng.NewRNG(2), Bounds{MinX: 7.5, MinY: 0.2, MaxX: 9.9, MaxY: 0.4})
	if err != nil {
		t.Fatalf("NewLatticeSampler: %v", err)
	}
	sx, sy := s.Lattice().Size()
	if sx != 5 || sy != 3 {
		t.Fatalf("lattice size = %dx%d, want 5x3", sx, sy)
	}
	for _, p := range [][2]float64{{7.5, 0.2}, {9.9, 0.4}, {100, -100}} {
		if v := s.At(p[0], p[1]); v < 0 || v > 1 {
			t.Fatalf("At(%v,%v) = %v, outside [0,1]", p[0], p[1], v)
		}
	}
}

func TestUnknownSamplerKind(t *testing.T) {
	if _, err := NewSampler(Kind("worley"), rng.NewRNG(1), Bounds{}); err == nil {
		t.Fatal("expected an error for an unknown sampler kind")
	}
	if Kind("worley").Valid() {
		t.Fatal("unknown kind reported as valid")
	}
}

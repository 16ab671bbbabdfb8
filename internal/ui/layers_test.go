package ui

import (
	"testing"

	"islandgen/internal/core"
)

func TestWaterLayerMarksSubmergedCells(t *testing.T) {
	field := core.NewFloatGrid(3, 1)
	field.Set(0, 0, 0)
	field.Set(1, 0, 0.3)
	field.Set(2, 0, 0.6)
	layer := waterLayer(field, 0.4)
	if layer[2].A != 0 {
		t.Fatalf("land pixel alpha = %d, want 0", layer[2].A)
	}
	if layer[0].A == 0 || layer[1].A == 0 || layer[0].A <= layer[1].A {
		t.Fatalf("water alphas = %d, %d; deeper water should be more opaque", layer[0].A, layer[1].A)
	}
	for _, px := range waterLayer(field, 0) {
		if px.A != 0 {
			t.Fatal("water level 0 should leave every pixel transparent")
		}
	}
}

func TestElevationLayerEndpoints(t *testing.T) {
	field := core.NewFloatGrid(2, 1)
	field.Set(1, 0, 1)
	layer := elevationLayer(field)
	low, high := elevationColor(0), elevationColor(1)
	if layer[0].R != low.R || layer[0].B != low.B {
		t.Fatalf("low pixel = %v, want hue of %v", layer[0], low)
	}
	if layer[1].R != high.R || layer[1].G != high.G {
		t.Fatalf("high pixel = %v, want hue of %v", layer[1], high)
	}

	flat := core.NewFloatGrid(2, 1)
	if flatA := elevationLayer(flat)[0].A; flatA >= layer[0].A {
		t.Fatalf("flat alpha %d should be below steep alpha %d", flatA, layer[0].A)
	}
}

func TestElevationColorInterpolates(t *testing.T) {
	mid := elevationColor(0.125)
	if mid.R != 55 || mid.A != 158 {
		t.Fatalf("elevationColor(0.125) = %v", mid)
	}
}

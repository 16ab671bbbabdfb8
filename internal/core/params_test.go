package core

import "testing"

func TestParameterSnapshotLookupAndValues(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "A", Params: []Parameter{{Key: "w", Value: "10"}}},
		{Name: "B", Params: []Parameter{{Key: "seed", Value: "7"}}},
	}}
	p, ok := snap.Lookup("seed")
	if !ok || p.Value != "7" {
		t.Fatalf("Lookup(seed) = %+v, %v", p, ok)
	}
	if _, ok := snap.Lookup("missing"); ok {
		t.Fatal("Lookup reported a missing key")
	}
	vals := snap.Values()
	if len(vals) != 2 || vals["w"] != "10" {
		t.Fatalf("Values() = %v", vals)
	}
}

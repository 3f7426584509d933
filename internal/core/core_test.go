package core

import (
	"slices"
	"testing"
)

func TestByteGridBoundsAndCount(t *testing.T) {
	g := NewByteGrid(4, 3)
	if g.InBounds(-1, 0) || g.InBounds(0, -1) || g.InBounds(4, 0) || g.InBounds(0, 3) {
		t.Fatal("coordinates outside the grid reported in bounds")
	}
	if !g.InBounds(3, 2) {
		t.Fatal("last cell must be in bounds")
	}

	g.Set(1, 2, 7)
	g.Set(3, 0, 7)
	if got := g.At(1, 2); got != 7 {
		t.Fatalf("At(1,2)=%d, want 7", got)
	}
	if got := g.Cells()[g.Index(1, 2)]; got != 7 {
		t.Fatalf("row-major index mismatch: %d", got)
	}
	if got := g.Count(7); got != 2 {
		t.Fatalf("Count(7)=%d, want 2", got)
	}
	if got := g.Count(0); got != 10 {
		t.Fatalf("Count(0)=%d, want 10", got)
	}
}

func TestNewByteGridClampsDimensions(t *testing.T) {
	g := NewByteGrid(0, -3)
	if g.W != 1 || g.H != 1 || len(g.Cells()) != 1 {
		t.Fatalf("expected 1x1 grid, got %dx%d (%d cells)", g.W, g.H, len(g.Cells()))
	}
}

func TestRNGDeterministic(t *testing.T) {
	draw := func(seed int64) []int {
		r := NewRNG(seed)
		out := make([]int, 32)
		for i := range out {
			out[i] = r.IntN(100)
		}
		return out
	}
	a := draw(42)
	b := draw(42)
	if !slices.Equal(a, b) {
		t.Fatal("same seed produced different sequences")
	}
	if slices.Equal(a, draw(43)) {
		t.Fatal("different seeds produced identical sequences")
	}
	r := NewRNG(42)
	r.IntN(100)
	r.Reseed(42)
	if got := r.IntN(100); got != a[0] {
		t.Fatalf("Reseed did not restart the sequence: got %d want %d", got, a[0])
	}
	if got := NewRNG(1).IntN(0); got != 0 {
		t.Fatalf("IntN(0)=%d, want 0", got)
	}
}

func TestFixedStepFirstCallSteps(t *testing.T) {
	fs := NewFixedStep(1)
	if !fs.ShouldStep() {
		t.Fatal("first call must step")
	}
	if fs.ShouldStep() {
		t.Fatal("second immediate call must not step at 1 TPS")
	}

	fs.Reset()
	if fs.ShouldStep() {
		t.Fatal("Reset must drop the accumulated tick")
	}
}

func TestParameterSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "A", Params: []Parameter{{Key: "x", Value: "1"}}},
		{Name: "B", Params: []Parameter{{Key: "y", Value: "2"}}},
	}}
	p, ok := snap.Lookup("y")
	if !ok || p.Value != "2" {
		t.Fatalf("Lookup(y)=%+v,%v", p, ok)
	}
	if _, ok := snap.Lookup("z"); ok {
		t.Fatal("unexpected parameter z")
	}
}

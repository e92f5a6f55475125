package render

import (
	"math"
	"testing"

	"go.uber.org/zap"
)

func TestComputeBoundingBox(t *testing.T) {
	// Square traced with relative deltas: (0,0) -> (10,0) -> (10,10) -> (0,10)
	box := ComputeBoundingBox("m0 0l10 0l0 10l-10 0z", zap.NewNop())

	if box.Empty() {
		t.Fatal("expected non-empty box")
	}
	if box.MinX != 0 || box.MaxX != 10 || box.MinY != 0 || box.MaxY != 10 {
		t.Errorf("unexpected box: %+v", box)
	}
	if box.CenterX() != 5 || box.CenterY() != 5 {
		t.Errorf("unexpected center: (%v, %v)", box.CenterX(), box.CenterY())
	}
}

func TestComputeBoundingBox_NegativeDeltas(t *testing.T) {
	box := ComputeBoundingBox("m5 5l-10 0l0 -10", zap.NewNop())

	if box.MinX != -5 || box.MaxX != 5 || box.MinY != -5 || box.MaxY != 5 {
		t.Errorf("unexpected box: %+v", box)
	}
}

func TestComputeBoundingBox_Invariant(t *testing.T) {
	paths := []string{
		"m0 0l1 1",
		"m-3.5 2.25l7 0l0 4.5l-7 0z",
		"m100 200l-50 -75l25 30",
		"m0.5 0.5l0 0", // single point
	}
	for _, d := range paths {
		box := ComputeBoundingBox(d, zap.NewNop())
		if box.MinX > box.MaxX || box.MinY > box.MaxY {
			t.Errorf("invariant violated for %q: %+v", d, box)
		}
	}
}

func TestComputeBoundingBox_Empty(t *testing.T) {
	for _, d := range []string{"", "zzz", "M L C"} {
		box := ComputeBoundingBox(d, zap.NewNop())
		if !box.Empty() {
			t.Errorf("expected degenerate box for %q, got %+v", d, box)
		}
		if !math.IsInf(box.MinX, 1) || !math.IsInf(box.MaxX, -1) {
			t.Errorf("expected infinite limits for %q, got %+v", d, box)
		}
	}
}

func TestComputeBoundingBox_OddCountDropsTrailing(t *testing.T) {
	// Trailing 99 has no pair and must be discarded.
	box := ComputeBoundingBox("m0 0l10 10l99", zap.NewNop())

	if box.MaxX != 10 || box.MaxY != 10 {
		t.Errorf("trailing value leaked into box: %+v", box)
	}
}

func TestComputeBoundingBox_SkipsBadTokens(t *testing.T) {
	// "1.2.3" fails to parse as a float and is skipped; the remaining four
	// tokens still form two valid pairs.
	box := ComputeBoundingBox("1.2.3 0 0 4 4", zap.NewNop())

	if box.Empty() {
		t.Fatal("expected non-empty box")
	}
	if box.MaxX != 4 || box.MaxY != 4 {
		t.Errorf("unexpected box: %+v", box)
	}
}

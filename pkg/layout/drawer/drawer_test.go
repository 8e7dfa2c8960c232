package drawer

import (
	"math"
	"testing"

	"github.com/planfab/interio/pkg/limits"
	"github.com/planfab/interio/pkg/zone"
)

func almostEqual(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

func TestZoneSpans(t *testing.T) {
	zones := []zone.DrawerZone{
		{ID: "d1", HeightRatio: 1, Front: &zone.FrontConfig{}, BoxToFrontRatio: 1},
		{ID: "d2", HeightRatio: 2, Front: &zone.FrontConfig{}, BoxToFrontRatio: 0.8},
	}

	// Interior: 736 - 2*18 = 700. Split 1:2.
	spans := ZoneSpans(zones, 736, 18)
	if len(spans) != 2 {
		t.Fatalf("len(spans) = %d, want 2", len(spans))
	}

	d1, d2 := spans[0], spans[1]
	if d1.StartY != 18 {
		t.Errorf("first span StartY = %v, want bodyThickness 18", d1.StartY)
	}
	if !almostEqual(d1.HeightMM, 700.0/3, 1e-6) {
		t.Errorf("d1 height = %v, want %v", d1.HeightMM, 700.0/3)
	}
	if !almostEqual(d2.StartY, 18+700.0/3, 1e-6) {
		t.Errorf("d2 StartY = %v, want cursor after d1", d2.StartY)
	}

	// The front always spans the whole zone.
	if d1.FrontHeightMM != d1.HeightMM || d2.FrontHeightMM != d2.HeightMM {
		t.Error("FrontHeightMM should equal the zone height")
	}

	// BoxToFrontRatio shrinks the box space.
	if !almostEqual(d2.BoxTotalHeightMM, d2.HeightMM*0.8, 1e-6) {
		t.Errorf("d2 box total = %v, want %v", d2.BoxTotalHeightMM, d2.HeightMM*0.8)
	}
}

func TestZoneSpansinternalDrawerForcesRatio(t *testing.T) {
	zones := []zone.DrawerZone{
		// Internal drawer: no front, receding ratio must be ignored.
		{ID: "d1", HeightRatio: 1, Front: nil, BoxToFrontRatio: 0.7},
	}

	spans := ZoneSpans(zones, 636, 18)
	if !almostEqual(spans[0].BoxTotalHeightMM, spans[0].HeightMM, 1e-6) {
		t.Errorf("internal drawer box total = %v, want full height %v", spans[0].BoxTotalHeightMM, spans[0].HeightMM)
	}
}

func TestZoneSpansDegenerateHeight(t *testing.T) {
	zones := []zone.DrawerZone{{ID: "d1", HeightRatio: 1}}

	// Body panels thicker than the zone: interior clamps to zero.
	spans := ZoneSpans(zones, 20, 18)
	if spans[0].HeightMM != 0 {
		t.Errorf("height = %v, want 0 for over-constrained interior", spans[0].HeightMM)
	}
	if spans[0].HeightMM < 0 || spans[0].BoxTotalHeightMM < 0 {
		t.Error("negative sizes must never leak out")
	}
}

func TestBoxSpans(t *testing.T) {
	dz := zone.DrawerZone{ID: "d1", Boxes: []float64{1, 1, 2}}

	spans := BoxSpans(dz, 50, 400)
	if len(spans) != 3 {
		t.Fatalf("len(spans) = %d, want 3", len(spans))
	}

	// 1:1:2 over 400 → 100, 100, 200, each rounded to whole mm.
	wantHeights := []float64{100, 100, 200}
	cursor := 50.0
	for i, s := range spans {
		if s.HeightMM != wantHeights[i] {
			t.Errorf("box %d height = %v, want %v", i, s.HeightMM, wantHeights[i])
		}
		if s.HeightMM != math.Round(s.HeightMM) {
			t.Errorf("box %d height %v not rounded", i, s.HeightMM)
		}
		if !almostEqual(s.StartY, cursor, 1e-6) {
			t.Errorf("box %d StartY = %v, want %v", i, s.StartY, cursor)
		}
		cursor += 400 * dz.Boxes[i] / 4
	}
}

func TestBoxSpansEmpty(t *testing.T) {
	if got := BoxSpans(zone.DrawerZone{}, 0, 100); got != nil {
		t.Errorf("BoxSpans(no boxes) = %v, want nil", got)
	}
}

func TestDimensions(t *testing.T) {
	l := limits.Default()
	slide, err := limits.Slide(limits.SlideSideMount)
	if err != nil {
		t.Fatal(err)
	}

	d := Dimensions(600, 560, 200, 18, slide, 12, l)

	wantWidth := 600 - 2*18.0 - 2*slide.SideOffsetMM
	if d.WidthMM != wantWidth {
		t.Errorf("WidthMM = %v, want %v", d.WidthMM, wantWidth)
	}
	if d.DepthMM != 560-slide.DepthOffsetMM {
		t.Errorf("DepthMM = %v, want %v", d.DepthMM, 560-slide.DepthOffsetMM)
	}
	if d.SideHeightMM != 200-l.BoxHeightReductionMM {
		t.Errorf("SideHeightMM = %v, want %v", d.SideHeightMM, 200-l.BoxHeightReductionMM)
	}
	if d.BottomThicknessMM != 12 {
		t.Errorf("BottomThicknessMM = %v, want 12", d.BottomThicknessMM)
	}
}

func TestDimensionsSideHeightFloor(t *testing.T) {
	l := limits.Default()
	slide, _ := limits.Slide(limits.SlideUndermount)

	// Tiny box space: side height hits the hard floor.
	d := Dimensions(600, 560, 40, 18, slide, 12, l)
	if d.SideHeightMM != l.MinBoxSideHeightMM {
		t.Errorf("SideHeightMM = %v, want floor %v", d.SideHeightMM, l.MinBoxSideHeightMM)
	}
}

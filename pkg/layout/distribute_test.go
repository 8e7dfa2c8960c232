package layout

import (
	"math"
	"testing"

	"github.com/planfab/interio/pkg/zone"
)

func almostEqual(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

func TestDistributeWidthsMixedModes(t *testing.T) {
	// 2 partitions of 18mm leave 564mm available; the fixed child takes
	// 200mm and the remaining 364mm splits 1:2.
	configs := []*zone.WidthConfig{
		{Mode: zone.WidthFixed, FixedMM: 200},
		{Mode: zone.WidthProportional, Ratio: 1},
		{Mode: zone.WidthProportional, Ratio: 2},
	}

	got := DistributeWidths(configs, 600, 18)

	want := []float64{200, 121.33, 242.67}
	for i := range want {
		if !almostEqual(got[i], want[i], 0.1) {
			t.Errorf("width[%d] = %v, want %v ±0.1", i, got[i], want[i])
		}
	}
}

func TestDistributeWidthsProportionalOnly(t *testing.T) {
	configs := []*zone.WidthConfig{
		{Mode: zone.WidthProportional, Ratio: 1},
		{Mode: zone.WidthProportional, Ratio: 3},
		nil, // nil config defaults to proportional ratio 1
	}

	total, thickness := 800.0, 18.0
	got := DistributeWidths(configs, total, thickness)

	available := total - 2*thickness
	sum := 0.0
	for _, w := range got {
		sum += w
	}
	if !almostEqual(sum, available, 1e-6) {
		t.Errorf("sum = %v, want available %v", sum, available)
	}
	if !almostEqual(got[1], 3*got[0], 1e-6) {
		t.Errorf("ratio 3 child = %v, want 3x ratio 1 child %v", got[1], got[0])
	}
	if !almostEqual(got[2], got[0], 1e-6) {
		t.Errorf("nil config child = %v, want same as ratio 1 child %v", got[2], got[0])
	}
}

func TestDistributeWidthsFixedOverflow(t *testing.T) {
	// Fixed request exceeds what is available: clamp, flex children get 0.
	configs := []*zone.WidthConfig{
		{Mode: zone.WidthFixed, FixedMM: 900},
		{Mode: zone.WidthProportional, Ratio: 1},
	}

	got := DistributeWidths(configs, 600, 18)

	available := 600.0 - 18
	if !almostEqual(got[0], available, 1e-6) {
		t.Errorf("fixed child = %v, want clamped to available %v", got[0], available)
	}
	if got[1] != 0 {
		t.Errorf("flex child = %v, want 0", got[1])
	}
	for _, w := range got {
		if w < 0 {
			t.Errorf("negative width %v leaked out", w)
		}
	}
}

func TestDistributeWidthsZeroRatioTotal(t *testing.T) {
	configs := []*zone.WidthConfig{
		{Mode: zone.WidthProportional, Ratio: -1},
		{Mode: zone.WidthProportional, Ratio: -2},
	}

	got := DistributeWidths(configs, 418, 18)

	// All ratios degenerate: remaining 400 splits evenly.
	if !almostEqual(got[0], 200, 1e-6) || !almostEqual(got[1], 200, 1e-6) {
		t.Errorf("got %v, want even 200/200 split", got)
	}
}

func TestDistributeWidthsEmpty(t *testing.T) {
	if got := DistributeWidths(nil, 600, 18); got != nil {
		t.Errorf("DistributeWidths(nil) = %v, want nil", got)
	}
}

func TestDistributeHeights(t *testing.T) {
	tests := []struct {
		name    string
		configs []zone.HeightConfig
		total   float64
		want    []float64
		tol     float64
	}{
		{
			name: "ratio only",
			configs: []zone.HeightConfig{
				{Mode: zone.HeightRatio, Ratio: 1},
				{Mode: zone.HeightRatio, Ratio: 2},
			},
			total: 900,
			want:  []float64{300, 600},
			tol:   1e-6,
		},
		{
			name: "exact consumes first",
			configs: []zone.HeightConfig{
				{Mode: zone.HeightExact, ExactMM: 250},
				{Mode: zone.HeightRatio, Ratio: 1},
				{Mode: zone.HeightRatio, Ratio: 1},
			},
			total: 750,
			want:  []float64{250, 250, 250},
			tol:   1e-6,
		},
		{
			name: "exact overflow clamps and flex gets zero",
			configs: []zone.HeightConfig{
				{Mode: zone.HeightExact, ExactMM: 1000},
				{Mode: zone.HeightRatio, Ratio: 1},
			},
			total: 600,
			want:  []float64{600, 0},
			tol:   1e-6,
		},
		{
			name: "unset ratio defaults to 1",
			configs: []zone.HeightConfig{
				{Mode: zone.HeightRatio},
				{Mode: zone.HeightRatio, Ratio: 1},
			},
			total: 500,
			want:  []float64{250, 250},
			tol:   1e-6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistributeHeights(tt.configs, tt.total)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range tt.want {
				if !almostEqual(got[i], tt.want[i], tt.tol) {
					t.Errorf("height[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestDistributeByRatio(t *testing.T) {
	got := DistributeByRatio([]float64{1, 1, 2}, 400)
	want := []float64{100, 100, 200}
	for i := range want {
		if !almostEqual(got[i], want[i], 1e-6) {
			t.Errorf("share[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	// All-zero ratios split evenly.
	got = DistributeByRatio([]float64{0, 0}, 300)
	if !almostEqual(got[0], 150, 1e-6) || !almostEqual(got[1], 150, 1e-6) {
		t.Errorf("zero ratios: got %v, want even split", got)
	}

	// Negative totals clamp to zero.
	got = DistributeByRatio([]float64{1, 1}, -50)
	if got[0] != 0 || got[1] != 0 {
		t.Errorf("negative total: got %v, want zeros", got)
	}
}

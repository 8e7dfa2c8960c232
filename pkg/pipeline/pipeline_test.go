package pipeline

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/planfab/interio/pkg/cache"
	"github.com/planfab/interio/pkg/ids"
	"github.com/planfab/interio/pkg/limits"
	"github.com/planfab/interio/pkg/zone"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

// testTree builds a cabinet with a shelves zone and a drawers zone side
// by side.
func testTree(t *testing.T) *zone.Zone {
	t.Helper()
	gen := ids.Sequential()
	l := limits.Default()

	root := zone.NewNested(gen, l, zone.DivideVertical, 0, 2)
	for i, ct := range []zone.ContentType{zone.ContentShelves, zone.ContentDrawers} {
		path := zone.FindPath(root, root.Children[i].ID)
		root = zone.UpdateAtPath(root, path, func(z *zone.Zone) *zone.Zone {
			return zone.SetContentType(gen, l, z, ct)
		})
	}
	return root
}

func TestOptionsDefaults(t *testing.T) {
	var opts Options
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error: %v", err)
	}
	if opts.CabinetWidthMM != DefaultCabinetWidthMM {
		t.Errorf("width = %v, want %v", opts.CabinetWidthMM, DefaultCabinetWidthMM)
	}
	if opts.CabinetHeightMM != DefaultCabinetHeightMM {
		t.Errorf("height = %v, want %v", opts.CabinetHeightMM, DefaultCabinetHeightMM)
	}
	if opts.Limits == nil {
		t.Fatal("limits not defaulted")
	}
	if opts.Logger == nil {
		t.Fatal("logger not defaulted")
	}

	// Idempotent: a second call must not reset anything.
	opts.CabinetWidthMM = 900
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("second call error: %v", err)
	}
	if opts.CabinetWidthMM != 900 {
		t.Errorf("second call reset width to %v", opts.CabinetWidthMM)
	}
}

func TestOptionsRejectNegativeDimensions(t *testing.T) {
	opts := Options{CabinetWidthMM: -100}
	if err := opts.ValidateAndSetDefaults(); err == nil {
		t.Error("negative width should be rejected")
	}
}

func TestSolveProducesGeometry(t *testing.T) {
	root := testTree(t)
	sol, err := Solve(root, Options{Logger: quietLogger()})
	if err != nil {
		t.Fatalf("Solve() error: %v", err)
	}

	if len(sol.Zones) != 2 {
		t.Fatalf("leaf zones = %d, want 2", len(sol.Zones))
	}
	if len(sol.Partitions) != 1 {
		t.Errorf("partitions = %d, want 1", len(sol.Partitions))
	}
	if len(sol.Shelves) != 1 {
		t.Fatalf("shelf placements = %d, want 1", len(sol.Shelves))
	}
	if len(sol.Drawers) != 1 {
		t.Fatalf("drawer placements = %d, want 1", len(sol.Drawers))
	}

	sp := sol.Shelves[0]
	if len(sp.PositionsY) == 0 || len(sp.PositionsY) != len(sp.DepthsMM) {
		t.Errorf("shelf placement malformed: %+v", sp)
	}
	dp := sol.Drawers[0]
	if len(dp.Spans) != len(dp.Boxes) {
		t.Errorf("drawer spans/boxes not parallel: %d vs %d", len(dp.Spans), len(dp.Boxes))
	}
	if dp.BoxDims.WidthMM <= 0 {
		t.Errorf("box width = %v, want > 0", dp.BoxDims.WidthMM)
	}
}

func TestSolveSharedBoxDimsFitSmallestBox(t *testing.T) {
	gen := ids.Sequential()
	l := limits.Default()

	root := zone.NewNested(gen, l, zone.DivideVertical, 0, 2)
	path := zone.FindPath(root, root.Children[1].ID)
	root = zone.UpdateAtPath(root, path, func(z *zone.Zone) *zone.Zone {
		z = zone.SetContentType(gen, l, z, zone.ContentDrawers)
		next := *z
		next.Drawers = &zone.DrawerConfig{
			Zones: []zone.DrawerZone{
				{ID: "band", HeightRatio: 1, Boxes: []float64{1, 3}},
			},
		}
		return &next
	})

	// Interior 436 - 2×18 = 400mm, split 100/300 between the boxes.
	opts := Options{CabinetHeightMM: 436, Logger: quietLogger()}
	sol, err := Solve(root, opts)
	if err != nil {
		t.Fatalf("Solve() error: %v", err)
	}
	if len(sol.Drawers) != 1 {
		t.Fatalf("drawer placements = %d, want 1", len(sol.Drawers))
	}

	dp := sol.Drawers[0]
	smallest := 0.0
	for _, stack := range dp.Boxes {
		for _, bs := range stack {
			if smallest == 0 || bs.HeightMM < smallest {
				smallest = bs.HeightMM
			}
		}
	}
	if smallest != 100 {
		t.Fatalf("smallest box height = %v, want 100", smallest)
	}

	// The shared carcass is sized off the smallest box, not the band
	// average: 100 - 30 reduction = 70.
	if dp.BoxDims.SideHeightMM != 70 {
		t.Errorf("side height = %v, want 70", dp.BoxDims.SideHeightMM)
	}
	if dp.BoxDims.SideHeightMM > smallest {
		t.Errorf("side height %v exceeds smallest box %v", dp.BoxDims.SideHeightMM, smallest)
	}
}

func TestExecuteValidatesAndSolves(t *testing.T) {
	root := testTree(t)
	runner := NewRunner(nil, nil, quietLogger())
	defer runner.Close()

	result, err := runner.Execute(context.Background(), root, Options{})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if result.TreeHash == "" {
		t.Error("tree hash not computed")
	}
	if result.Validation == nil {
		t.Fatal("validation stage skipped")
	}
	if !result.Validation.OK() {
		t.Errorf("default tree should validate cleanly: %v", result.Validation.Messages())
	}
	if result.Solution == nil {
		t.Fatal("no solution")
	}
	if result.CacheInfo.SolveHit {
		t.Error("first solve should miss the cache")
	}
	if result.Stats.ZoneCount != 3 {
		t.Errorf("zone count = %d, want 3", result.Stats.ZoneCount)
	}
}

func TestExecuteSkipValidate(t *testing.T) {
	root := testTree(t)
	runner := NewRunner(nil, nil, quietLogger())
	defer runner.Close()

	result, err := runner.Execute(context.Background(), root, Options{SkipValidate: true})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if result.Validation != nil {
		t.Error("validation should be skipped")
	}
}

func TestSolveCaching(t *testing.T) {
	root := testTree(t)
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	runner := NewRunner(fc, nil, quietLogger())
	defer runner.Close()
	ctx := context.Background()

	first, err := runner.Execute(ctx, root, Options{})
	if err != nil {
		t.Fatalf("first Execute() error: %v", err)
	}
	if first.CacheInfo.SolveHit {
		t.Error("first solve should miss")
	}

	second, err := runner.Execute(ctx, root, Options{})
	if err != nil {
		t.Fatalf("second Execute() error: %v", err)
	}
	if !second.CacheInfo.SolveHit {
		t.Error("second solve should hit the cache")
	}
	if len(second.Solution.Zones) != len(first.Solution.Zones) {
		t.Error("cached solution differs from computed one")
	}

	// Different cabinet dimensions must not share cache entries.
	wider, err := runner.Execute(ctx, root, Options{CabinetWidthMM: 900})
	if err != nil {
		t.Fatalf("wider Execute() error: %v", err)
	}
	if wider.CacheInfo.SolveHit {
		t.Error("changed dimensions should miss the cache")
	}

	// Refresh bypasses the cache even for known keys.
	refreshed, err := runner.Execute(ctx, root, Options{Refresh: true})
	if err != nil {
		t.Fatalf("refresh Execute() error: %v", err)
	}
	if refreshed.CacheInfo.SolveHit {
		t.Error("refresh should bypass the cache")
	}
}

func TestHashTreeChangesWithTree(t *testing.T) {
	gen := ids.Sequential()
	l := limits.Default()
	root := testTree(t)

	h1, err := HashTree(root)
	if err != nil {
		t.Fatalf("HashTree() error: %v", err)
	}
	if h2, _ := HashTree(root); h1 != h2 {
		t.Error("hash should be deterministic")
	}

	changed := zone.AddChild(gen, l, root)
	if h3, _ := HashTree(changed); h1 == h3 {
		t.Error("different trees should hash differently")
	}
}

func TestSolveUnknownSlideMount(t *testing.T) {
	gen := ids.Sequential()
	l := limits.Default()
	root := zone.New(gen, l, zone.ContentDrawers, 0)
	root.Drawers.Slide = "maglev"

	if _, err := Solve(root, Options{Logger: quietLogger()}); err == nil {
		t.Error("unknown slide mount should fail the solve")
	}
}

package pipeline

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/planfab/interio/pkg/cache"
	interioio "github.com/planfab/interio/pkg/io"
	"github.com/planfab/interio/pkg/layout"
	"github.com/planfab/interio/pkg/layout/drawer"
	"github.com/planfab/interio/pkg/layout/shelf"
	"github.com/planfab/interio/pkg/limits"
	"github.com/planfab/interio/pkg/zone"
)

// Solution is the complete solved geometry for one cabinet: leaf
// rectangles, partition panels, shelf positions, and drawer boxes.
// It serializes to JSON for caching and API responses.
type Solution struct {
	CabinetWidthMM  float64 `json:"cabinet_width_mm"`
	CabinetHeightMM float64 `json:"cabinet_height_mm"`
	CabinetDepthMM  float64 `json:"cabinet_depth_mm"`

	Zones      []layout.ZoneBounds      `json:"zones"`
	Partitions []layout.PartitionBounds `json:"partitions,omitempty"`
	Shelves    []ShelfPlacement         `json:"shelves,omitempty"`
	Drawers    []DrawerPlacement        `json:"drawers,omitempty"`

	TotalZones   int `json:"total_zones"`
	MaxTreeDepth int `json:"max_tree_depth"`
}

// ShelfPlacement holds the solved shelf geometry for one shelves zone.
// Positions and depths are parallel slices, bottom shelf first.
type ShelfPlacement struct {
	ZoneID     string    `json:"zone_id"`
	PositionsY []float64 `json:"positions_y"`
	DepthsMM   []float64 `json:"depths_mm"`
	WidthMM    float64   `json:"width_mm"`
}

// DrawerPlacement holds the solved drawer geometry for one drawers
// zone. Span and box Y values are relative to the zone's rectangle.
type DrawerPlacement struct {
	ZoneID string            `json:"zone_id"`
	Spans  []drawer.ZoneSpan `json:"spans"`

	// Boxes is parallel to Spans: the box stack of each drawer zone.
	Boxes [][]drawer.BoxSpan `json:"boxes"`

	// BoxDims is shared by every box in the column; box height varies
	// per span but width, depth, and side height do not.
	BoxDims drawer.BoxDimensions `json:"box_dims"`

	SlideMount string `json:"slide_mount,omitempty"`
}

// Solve computes the full geometry of a cabinet interior. The tree is
// not mutated; an invalid tree still yields well-defined geometry via
// the clamping rules of the layout package.
func Solve(root *zone.Zone, opts Options) (*Solution, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	l := *opts.Limits

	outer := layout.Rect{
		X:      0,
		Y:      0,
		Width:  opts.CabinetWidthMM,
		Height: opts.CabinetHeightMM,
	}
	env := layout.Env{
		CabinetDepthMM:       opts.CabinetDepthMM,
		PartitionThicknessMM: opts.PartitionThicknessMM,
		Limits:               l,
	}
	bounds := layout.Calculate(root, outer, env)

	sol := &Solution{
		CabinetWidthMM:  opts.CabinetWidthMM,
		CabinetHeightMM: opts.CabinetHeightMM,
		CabinetDepthMM:  opts.CabinetDepthMM,
		Zones:           bounds.LeafBounds,
		Partitions:      bounds.PartitionBounds,
		TotalZones:      bounds.TotalZones,
		MaxTreeDepth:    bounds.MaxTreeDepth,
	}

	for _, zb := range bounds.LeafBounds {
		z := zone.FindByID(root, zb.ZoneID)
		if z == nil {
			continue
		}
		switch zb.ContentType {
		case zone.ContentShelves:
			if z.Shelves != nil {
				sol.Shelves = append(sol.Shelves, placeShelves(z, zb, opts.CabinetDepthMM, l))
			}
		case zone.ContentDrawers:
			if z.Drawers != nil {
				dp, err := placeDrawers(z, zb, opts, l)
				if err != nil {
					return nil, err
				}
				sol.Drawers = append(sol.Drawers, dp)
			}
		}
	}

	return sol, nil
}

func placeShelves(z *zone.Zone, zb layout.ZoneBounds, cabinetDepth float64, l limits.Limits) ShelfPlacement {
	cfg := z.Shelves
	positions := shelf.Positions(cfg, zb.Rect.Y, zb.Rect.Height, l)

	depths := make([]float64, len(positions))
	for i := range positions {
		if cfg.Mode == zone.ShelfManual && i < len(cfg.Shelves) {
			depths[i] = shelf.EffectiveDepth(cfg.Shelves[i], cfg, cabinetDepth, l)
		} else {
			depths[i] = shelf.Depth(cfg.DepthPreset, cfg.CustomDepthMM, cabinetDepth, l)
		}
	}

	return ShelfPlacement{
		ZoneID:     z.ID,
		PositionsY: positions,
		DepthsMM:   depths,
		WidthMM:    zb.Rect.Width,
	}
}

func placeDrawers(z *zone.Zone, zb layout.ZoneBounds, opts Options, l limits.Limits) (DrawerPlacement, error) {
	cfg := z.Drawers

	mount := limits.SlideMount(cfg.Slide)
	if mount == "" {
		mount = limits.SlideSideMount
	}
	slide, err := limits.Slide(mount)
	if err != nil {
		return DrawerPlacement{}, fmt.Errorf("zone %s: %w", z.ID, err)
	}

	spans := drawer.ZoneSpans(cfg.Zones, zb.Rect.Height, opts.BodyThicknessMM)
	boxes := make([][]drawer.BoxSpan, len(spans))
	minBoxSpace := 0.0
	for i, span := range spans {
		boxes[i] = drawer.BoxSpans(cfg.Zones[i], span.StartY, span.BoxTotalHeightMM)
		// The shared carcass must fit the smallest box of the column,
		// so uneven box ratios matter, not just band heights.
		for _, bs := range boxes[i] {
			if minBoxSpace == 0 || bs.HeightMM < minBoxSpace {
				minBoxSpace = bs.HeightMM
			}
		}
	}

	dims := drawer.Dimensions(zb.Rect.Width, opts.CabinetDepthMM, minBoxSpace,
		opts.BodyThicknessMM, slide, opts.BodyThicknessMM, l)

	return DrawerPlacement{
		ZoneID:     z.ID,
		Spans:      spans,
		Boxes:      boxes,
		BoxDims:    dims,
		SlideMount: string(mount),
	}, nil
}

// =============================================================================
// Serialization
// =============================================================================

// MarshalSolution encodes a solution for caching.
func MarshalSolution(s *Solution) ([]byte, error) {
	return json.Marshal(s)
}

// UnmarshalSolution decodes a cached solution.
func UnmarshalSolution(data []byte) (*Solution, error) {
	var s Solution
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// HashTree returns the content hash of a zone tree, used for cache
// keys and API responses.
func HashTree(root *zone.Zone) (string, error) {
	var buf bytes.Buffer
	if err := interioio.WriteJSON(root, &buf); err != nil {
		return "", err
	}
	return cache.Hash(buf.Bytes()), nil
}

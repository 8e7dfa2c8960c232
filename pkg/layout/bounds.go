package layout

import (
	"github.com/planfab/interio/pkg/limits"
	"github.com/planfab/interio/pkg/zone"
)

// Env carries the cabinet-level context a bounds calculation needs.
// It is passed explicitly so the engine stays free of package globals.
type Env struct {
	// CabinetDepthMM is the interior depth, used to resolve partition
	// and shelf depth presets.
	CabinetDepthMM float64
	// PartitionThicknessMM is the material thickness of partitions
	// between vertically divided siblings.
	PartitionThicknessMM float64
	// Limits parameterizes setbacks and structural caps.
	Limits limits.Limits
}

// ZoneBounds is the resolved rectangle of one leaf zone.
type ZoneBounds struct {
	ZoneID      string           `json:"zone_id"`
	ContentType zone.ContentType `json:"content_type"`
	TreeDepth   int              `json:"tree_depth"`
	Rect        Rect             `json:"rect"`
}

// PartitionBounds is the resolved rectangle of one partition, plus its
// front-to-back extent resolved from the depth preset.
type PartitionBounds struct {
	PartitionID string  `json:"partition_id"`
	Enabled     bool    `json:"enabled"`
	Rect        Rect    `json:"rect"`
	DepthMM     float64 `json:"depth_mm"`
}

// Result is the flattened projection of a zone tree onto concrete
// geometry, decoupled from tree shape. Downstream part generation only
// ever consumes this, never the tree itself.
type Result struct {
	LeafBounds      []ZoneBounds      `json:"leaf_bounds"`
	PartitionBounds []PartitionBounds `json:"partition_bounds"`
	TotalZones      int               `json:"total_zones"`
	MaxTreeDepth    int               `json:"max_tree_depth"`
}

// Calculate walks the tree depth-first in pre-order, assigning each
// nested zone's rectangle to its children via the distribution solver and
// recording every leaf rectangle verbatim. Vertical divisions produce a
// partition rectangle centered on each inter-child gap. A nested zone
// without children degrades to a leaf.
//
// Recursion depth is bounded by the zone depth cap, and each call is
// O(total zone count); the walk is fully deterministic for a given input.
func Calculate(root *zone.Zone, outer Rect, env Env) Result {
	var res Result
	if root == nil {
		return res
	}
	walkBounds(root, outer, env, &res)
	return res
}

func walkBounds(z *zone.Zone, rect Rect, env Env, res *Result) {
	res.TotalZones++
	if z.Depth > res.MaxTreeDepth {
		res.MaxTreeDepth = z.Depth
	}

	if z.IsLeaf() {
		res.LeafBounds = append(res.LeafBounds, ZoneBounds{
			ZoneID:      z.ID,
			ContentType: z.ContentType,
			TreeDepth:   z.Depth,
			Rect:        rect,
		})
		return
	}

	switch z.Division {
	case zone.DivideVertical:
		walkVertical(z, rect, env, res)
	default:
		walkHorizontal(z, rect, env, res)
	}
}

// walkVertical places children left-to-right with a partition in every
// inter-child gap.
func walkVertical(z *zone.Zone, rect Rect, env Env, res *Result) {
	configs := make([]*zone.WidthConfig, len(z.Children))
	for i, c := range z.Children {
		configs[i] = c.Width
	}
	widths := DistributeWidths(configs, rect.Width, env.PartitionThicknessMM)

	cursor := rect.X
	for i, c := range z.Children {
		childRect := Rect{X: cursor, Y: rect.Y, Width: widths[i], Height: rect.Height}
		walkBounds(c, childRect, env, res)
		cursor += widths[i]

		if i < len(z.Children)-1 {
			res.PartitionBounds = append(res.PartitionBounds, partitionAt(z, i, cursor, rect, env))
			cursor += env.PartitionThicknessMM
		}
	}
}

// walkHorizontal stacks children bottom-to-top; no partitions.
func walkHorizontal(z *zone.Zone, rect Rect, env Env, res *Result) {
	configs := make([]zone.HeightConfig, len(z.Children))
	for i, c := range z.Children {
		configs[i] = c.Height
	}
	heights := DistributeHeights(configs, rect.Height)

	cursor := rect.Y
	for i, c := range z.Children {
		childRect := Rect{X: rect.X, Y: cursor, Width: rect.Width, Height: heights[i]}
		walkBounds(c, childRect, env, res)
		cursor += heights[i]
	}
}

// partitionAt builds the bounds for the partition after child i. The
// rectangle is centered on the gap: gapStart is the cursor position right
// after child i, and the partition fills the gap's full thickness and the
// parent rectangle's full height.
func partitionAt(z *zone.Zone, i int, gapStart float64, rect Rect, env Env) PartitionBounds {
	var p zone.Partition
	if i < len(z.Partitions) {
		p = z.Partitions[i]
	} else {
		// Malformed trees (partition list shorter than children-1) still
		// get a divider rectangle; validation reports the mismatch.
		p = zone.Partition{Enabled: true, DepthPreset: zone.DepthFull}
	}

	return PartitionBounds{
		PartitionID: p.ID,
		Enabled:     p.Enabled,
		Rect: Rect{
			X:      gapStart,
			Y:      rect.Y,
			Width:  env.PartitionThicknessMM,
			Height: rect.Height,
		},
		DepthMM: PartitionDepth(p, env),
	}
}

// PartitionDepth resolves a partition's front-to-back extent from its
// depth preset: full is cabinet depth minus the setback, half is half of
// that, custom is the configured depth clamped into [0, full].
func PartitionDepth(p zone.Partition, env Env) float64 {
	full := env.CabinetDepthMM - env.Limits.ShelfSetbackMM
	if full < 0 {
		full = 0
	}
	switch p.DepthPreset {
	case zone.DepthHalf:
		return full / 2
	case zone.DepthCustom:
		d := p.CustomDepthMM
		if d < 0 {
			d = 0
		}
		if d > full {
			d = full
		}
		return d
	default:
		return full
	}
}

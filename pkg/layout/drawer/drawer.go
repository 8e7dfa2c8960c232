// Package drawer subdivides a drawers zone's rectangle into drawer zones
// and drawer boxes.
//
// Drawer zones only ever size by ratio, so the split here is the simple
// one-pass distribution rather than the two-pass fixed/proportional
// solver used for sibling zones. All Y coordinates are millimetres from
// the drawers zone's bottom edge.
package drawer

import (
	"math"

	"github.com/planfab/interio/pkg/layout"
	"github.com/planfab/interio/pkg/limits"
	"github.com/planfab/interio/pkg/zone"
)

// ZoneSpan is the vertical band one drawer zone occupies, plus the
// derived front and box extents.
type ZoneSpan struct {
	ZoneID string  `json:"zone_id"`
	StartY float64 `json:"start_y"`
	// HeightMM is the full band height.
	HeightMM float64 `json:"height_mm"`
	// FrontHeightMM equals the band height: a visible front always spans
	// its whole zone.
	FrontHeightMM float64 `json:"front_height_mm"`
	// BoxTotalHeightMM is the vertical space the box stack actually
	// uses: height x BoxToFrontRatio. Internal drawers (nil front) have
	// nothing to recede behind, so their ratio is forced to 1.
	BoxTotalHeightMM float64 `json:"box_total_height_mm"`
}

// ZoneSpans splits a drawers zone's height into per-drawer-zone bands.
// The interior is the total height minus the cabinet body top and bottom
// panels; the cursor starts at bodyThickness and runs upward.
func ZoneSpans(zones []zone.DrawerZone, totalHeight, bodyThickness float64) []ZoneSpan {
	if len(zones) == 0 {
		return nil
	}

	interior := totalHeight - 2*bodyThickness
	if interior < 0 {
		interior = 0
	}

	ratios := make([]float64, len(zones))
	for i, dz := range zones {
		ratios[i] = dz.HeightRatio
	}
	heights := layout.DistributeByRatio(ratios, interior)

	spans := make([]ZoneSpan, len(zones))
	cursor := bodyThickness
	for i, dz := range zones {
		ratio := dz.BoxToFrontRatio
		if dz.Front == nil || ratio == 0 {
			ratio = 1
		}
		spans[i] = ZoneSpan{
			ZoneID:           dz.ID,
			StartY:           cursor,
			HeightMM:         heights[i],
			FrontHeightMM:    heights[i],
			BoxTotalHeightMM: heights[i] * ratio,
		}
		cursor += heights[i]
	}
	return spans
}

// BoxSpan is the vertical band one drawer box occupies within its zone.
// Heights are rounded to whole millimetres: boxes are leaf manufacturing
// geometry, unlike the solver's fractional intermediates.
type BoxSpan struct {
	Index    int     `json:"index"`
	StartY   float64 `json:"start_y"`
	HeightMM float64 `json:"height_mm"`
}

// BoxSpans splits a drawer zone's box space among its stacked boxes,
// bottom first, using the zone's per-box ratios.
func BoxSpans(dz zone.DrawerZone, zoneStartY, boxTotalHeight float64) []BoxSpan {
	if len(dz.Boxes) == 0 {
		return nil
	}

	heights := layout.DistributeByRatio(dz.Boxes, boxTotalHeight)

	spans := make([]BoxSpan, len(heights))
	cursor := zoneStartY
	for i, h := range heights {
		spans[i] = BoxSpan{
			Index:    i,
			StartY:   cursor,
			HeightMM: math.Round(h),
		}
		cursor += h
	}
	return spans
}

// BoxDimensions is the physical size of one drawer-box carcass.
type BoxDimensions struct {
	WidthMM           float64 `json:"width_mm"`
	DepthMM           float64 `json:"depth_mm"`
	SideHeightMM      float64 `json:"side_height_mm"`
	BottomThicknessMM float64 `json:"bottom_thickness_mm"`
}

// Dimensions derives a box carcass from the cabinet envelope and the
// slide hardware clearances. The side height keeps a hard floor so
// over-subdivided zones never produce degenerate geometry.
func Dimensions(cabinetWidth, cabinetDepth, boxSpaceHeight, bodyThickness float64, slide limits.SlideConfig, bottomThickness float64, l limits.Limits) BoxDimensions {
	width := cabinetWidth - 2*bodyThickness - 2*slide.SideOffsetMM
	if width < 0 {
		width = 0
	}
	depth := cabinetDepth - slide.DepthOffsetMM
	if depth < 0 {
		depth = 0
	}

	sideHeight := boxSpaceHeight - l.BoxHeightReductionMM
	if sideHeight < l.MinBoxSideHeightMM {
		sideHeight = l.MinBoxSideHeightMM
	}

	return BoxDimensions{
		WidthMM:           width,
		DepthMM:           depth,
		SideHeightMM:      sideHeight,
		BottomThicknessMM: bottomThickness,
	}
}

// Package shelf computes shelf Y-positions and depths within a shelves
// zone's assigned rectangle.
package shelf

import (
	"math"

	"github.com/planfab/interio/pkg/limits"
	"github.com/planfab/interio/pkg/zone"
)

// Positions returns the absolute Y position of every shelf in the
// section, bottom first.
//
// Uniform mode with a single shelf centers it at half the section height
// - an explicit special case, not the limit of the multi-shelf formula.
// Uniform mode with more shelves places shelf i at the section ratio
// (i/count)*(1-bottomOffset) + bottomOffset: the spacing is asymmetric,
// with the lowest shelf lifted off the floor by the bottom offset.
//
// Manual mode uses each shelf's explicit PositionY (an offset from the
// section bottom); shelves without one fall back to the centered division
// (i+1)/(n+1) of the section height.
func Positions(cfg *zone.ShelvesConfig, sectionStartY, sectionHeight float64, l limits.Limits) []float64 {
	if cfg == nil {
		return nil
	}

	if cfg.Mode == zone.ShelfManual {
		return manualPositions(cfg.Shelves, sectionStartY, sectionHeight)
	}

	count := cfg.Count
	if count < 1 {
		return nil
	}
	if count == 1 {
		return []float64{sectionStartY + 0.5*sectionHeight}
	}

	offset := l.ShelfBottomOffset
	out := make([]float64, count)
	for i := 0; i < count; i++ {
		ratio := (float64(i)/float64(count))*(1-offset) + offset
		out[i] = sectionStartY + ratio*sectionHeight
	}
	return out
}

func manualPositions(shelves []zone.ShelfItem, sectionStartY, sectionHeight float64) []float64 {
	n := len(shelves)
	if n == 0 {
		return nil
	}
	out := make([]float64, n)
	for i, s := range shelves {
		if s.PositionY != nil {
			out[i] = sectionStartY + *s.PositionY
		} else {
			out[i] = sectionStartY + sectionHeight*float64(i+1)/float64(n+1)
		}
	}
	return out
}

// Depth resolves a depth preset to millimetres: full is cabinet depth
// minus the setback, half rounds half of that, custom uses the explicit
// depth with the half depth as fallback when none is configured.
func Depth(preset zone.DepthPreset, customDepth, cabinetDepth float64, l limits.Limits) float64 {
	full := cabinetDepth - l.ShelfSetbackMM
	if full < 0 {
		full = 0
	}
	switch preset {
	case zone.DepthHalf:
		return math.Round(full / 2)
	case zone.DepthCustom:
		if customDepth > 0 {
			return customDepth
		}
		return math.Round(full / 2)
	default:
		return full
	}
}

// EffectiveDepth resolves the depth of one shelf as a two-level cascade:
// a per-shelf override always beats the zone-level default.
func EffectiveDepth(item zone.ShelfItem, cfg *zone.ShelvesConfig, cabinetDepth float64, l limits.Limits) float64 {
	if item.DepthPreset != "" {
		return Depth(item.DepthPreset, item.CustomDepthMM, cabinetDepth, l)
	}
	if cfg != nil {
		return Depth(cfg.DepthPreset, cfg.CustomDepthMM, cabinetDepth, l)
	}
	return Depth(zone.DepthFull, 0, cabinetDepth, l)
}

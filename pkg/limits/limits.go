// Package limits defines the numeric limits and presets that parameterize
// the layout engine.
//
// The engine never reads ambient globals: every entry point takes a Limits
// value explicitly, so alternate limit sets (tests, product tiers) can run
// side by side. Limits values are plain data and safe to share between
// goroutines once constructed.
package limits

// Limits holds every numeric cap, clearance, and default the engine
// consults. All linear dimensions are millimetres.
type Limits struct {
	// Structural caps on the zone tree.
	MaxZoneDepth       int `toml:"max_zone_depth"`
	MaxChildrenPerZone int `toml:"max_children_per_zone"`

	// Leaf content caps.
	MaxDrawerZonesPerZone int `toml:"max_drawer_zones_per_zone"`
	MaxBoxesPerDrawerZone int `toml:"max_boxes_per_drawer_zone"`
	MaxShelvesPerZone     int `toml:"max_shelves_per_zone"`

	// Minimum usable zone sizes.
	MinZoneHeightMM float64 `toml:"min_zone_height_mm"`
	MinZoneWidthMM  float64 `toml:"min_zone_width_mm"`

	// ShelfSetbackMM is the clearance subtracted from cabinet depth before
	// computing usable shelf and partition depth.
	ShelfSetbackMM float64 `toml:"shelf_setback_mm"`

	// ShelfBottomOffset lifts the lowest uniform shelf off the section
	// floor, as a fraction of section height. The topmost shelf stays
	// flush with the section top.
	ShelfBottomOffset float64 `toml:"shelf_bottom_offset"`

	// BoxHeightReductionMM is subtracted from a box's available vertical
	// space to get its side-panel height.
	BoxHeightReductionMM float64 `toml:"box_height_reduction_mm"`

	// MinBoxSideHeightMM is the hard floor for drawer-box side panels.
	MinBoxSideHeightMM float64 `toml:"min_box_side_height_mm"`
}

// Default returns the stock limit set used by the CLI and server.
func Default() Limits {
	return Limits{
		MaxZoneDepth:          4,
		MaxChildrenPerZone:    6,
		MaxDrawerZonesPerZone: 5,
		MaxBoxesPerDrawerZone: 4,
		MaxShelvesPerZone:     10,
		MinZoneHeightMM:       50,
		MinZoneWidthMM:        100,
		ShelfSetbackMM:        20,
		ShelfBottomOffset:     0.05,
		BoxHeightReductionMM:  30,
		MinBoxSideHeightMM:    50,
	}
}

// Package zone defines the recursive configuration model for a cabinet
// interior and its structural operations.
//
// A cabinet's interior volume is described by a tree of zones. Leaf zones
// carry physical content (shelves, drawers, or nothing); nested zones
// subdivide their rectangle into child zones, stacked vertically or placed
// side by side with partitions between them.
//
// Trees are persistent values: every mutation returns a new tree that
// shares untouched subtrees with its predecessor. Superseded trees remain
// valid, which is what undo/redo relies on. Concurrent readers may safely
// traverse the same tree; there is no shared mutable state.
//
// Structural limits (depth, child counts) are enforced by silent clamping
// or no-ops rather than errors - callers detect "nothing happened" through
// reference equality. Numeric validity is checked separately by Validate,
// so transiently invalid trees are fine during interactive editing.
package zone

// ContentType describes what a zone's rectangle holds.
type ContentType string

// Zone content types.
const (
	ContentEmpty   ContentType = "empty"
	ContentShelves ContentType = "shelves"
	ContentDrawers ContentType = "drawers"
	ContentNested  ContentType = "nested"
)

// DivisionDirection controls how a nested zone splits its rectangle.
type DivisionDirection string

// Division directions for nested zones.
const (
	// DivideHorizontal stacks children bottom-to-top (index 0 lowest).
	DivideHorizontal DivisionDirection = "horizontal"
	// DivideVertical places children left-to-right with partitions
	// between adjacent siblings.
	DivideVertical DivisionDirection = "vertical"
)

// HeightMode selects how a zone's height relates to its siblings.
type HeightMode string

// Height sizing modes.
const (
	// HeightRatio sizes the zone proportionally to sibling ratios.
	HeightRatio HeightMode = "ratio"
	// HeightExact pins the zone to a millimetre height.
	HeightExact HeightMode = "exact"
)

// HeightConfig is a zone's vertical sizing. Exactly one of Ratio or
// ExactMM is meaningful, selected by Mode.
type HeightConfig struct {
	Mode    HeightMode `json:"mode"`
	Ratio   float64    `json:"ratio,omitempty"`
	ExactMM float64    `json:"exact_mm,omitempty"`
}

// WidthMode selects how a zone's width relates to its siblings.
type WidthMode string

// Width sizing modes.
const (
	// WidthFixed pins the zone to a millimetre width.
	WidthFixed WidthMode = "fixed"
	// WidthProportional sizes the zone proportionally to sibling ratios.
	WidthProportional WidthMode = "proportional"
)

// WidthConfig is a zone's horizontal sizing. Only meaningful for children
// of a vertically divided zone; nil means proportional with ratio 1.
type WidthConfig struct {
	Mode    WidthMode `json:"mode"`
	FixedMM float64   `json:"fixed_mm,omitempty"`
	Ratio   float64   `json:"ratio,omitempty"`
}

// DepthPreset selects how deep a partition or shelf extends into the
// cabinet.
type DepthPreset string

// Depth presets shared by partitions and shelves.
const (
	// DepthFull extends to cabinet depth minus the setback.
	DepthFull DepthPreset = "full"
	// DepthHalf extends half as deep as DepthFull.
	DepthHalf DepthPreset = "half"
	// DepthCustom uses an explicit millimetre depth.
	DepthCustom DepthPreset = "custom"
)

// Partition is a thin physical divider between two adjacent children of a
// vertically divided zone. A nested vertical zone with n children carries
// exactly n-1 partitions.
type Partition struct {
	ID            string      `json:"id"`
	Enabled       bool        `json:"enabled"`
	DepthPreset   DepthPreset `json:"depth_preset"`
	CustomDepthMM float64     `json:"custom_depth_mm,omitempty"`
}

// ShelfMode selects how shelf positions are derived.
type ShelfMode string

// Shelf positioning modes.
const (
	// ShelfUniform spreads shelves evenly with a bottom offset.
	ShelfUniform ShelfMode = "uniform"
	// ShelfManual uses explicit per-shelf positions.
	ShelfManual ShelfMode = "manual"
)

// ShelfItem is one shelf within a shelves zone. PositionY, when set, is an
// offset in millimetres from the section's bottom edge and only applies in
// manual mode. DepthPreset overrides the zone-level default when non-empty.
type ShelfItem struct {
	ID            string      `json:"id"`
	DepthPreset   DepthPreset `json:"depth_preset,omitempty"`
	CustomDepthMM float64     `json:"custom_depth_mm,omitempty"`
	PositionY     *float64    `json:"position_y,omitempty"`
	MaterialID    string      `json:"material_id,omitempty"`
}

// ShelvesConfig describes the shelf stack of a shelves zone (or the
// above-box content of a drawer zone).
type ShelvesConfig struct {
	Mode          ShelfMode   `json:"mode"`
	Count         int         `json:"count,omitempty"`
	Shelves       []ShelfItem `json:"shelves,omitempty"`
	DepthPreset   DepthPreset `json:"depth_preset"`
	CustomDepthMM float64     `json:"custom_depth_mm,omitempty"`
	MaterialID    string      `json:"material_id,omitempty"`
}

// FrontConfig describes the visible front panel of a drawer zone.
// A nil front means an internal drawer with no visible panel.
type FrontConfig struct {
	MaterialID string `json:"material_id,omitempty"`
}

// DrawerZone is one visually distinct band of a drawers zone. A band has
// at most one front and stacks one or more boxes behind it. Boxes holds
// the height ratio of each box, bottom first.
type DrawerZone struct {
	ID              string         `json:"id"`
	HeightRatio     float64        `json:"height_ratio"`
	Front           *FrontConfig   `json:"front,omitempty"`
	Boxes           []float64      `json:"boxes"`
	BoxToFrontRatio float64        `json:"box_to_front_ratio,omitempty"`
	AboveBoxContent *ShelvesConfig `json:"above_box_content,omitempty"`
}

// DrawerConfig describes the drawer stack of a drawers zone.
type DrawerConfig struct {
	Zones []DrawerZone `json:"zones"`
	// Slide names the slide hardware family; resolved against limits
	// presets when box dimensions are computed.
	Slide string `json:"slide,omitempty"`
}

// Zone is one rectangular region of the cabinet interior. Exactly one of
// the content configs is non-nil, matching ContentType; nested fields are
// only meaningful when ContentType is ContentNested.
type Zone struct {
	ID          string      `json:"id"`
	ContentType ContentType `json:"content_type"`
	Depth       int         `json:"depth"`

	Height HeightConfig `json:"height"`
	Width  *WidthConfig `json:"width,omitempty"`

	// Nested-only fields.
	Division   DivisionDirection `json:"division,omitempty"`
	Children   []*Zone           `json:"children,omitempty"`
	Partitions []Partition       `json:"partitions,omitempty"`

	// Leaf content configs.
	Shelves *ShelvesConfig `json:"shelves,omitempty"`
	Drawers *DrawerConfig  `json:"drawers,omitempty"`
}

// IsLeaf reports whether the zone carries physical content rather than
// child zones. A nested zone with no children also counts as a leaf for
// bounds purposes.
func (z *Zone) IsLeaf() bool {
	return z.ContentType != ContentNested || len(z.Children) == 0
}

// Count returns the number of zones in the subtree rooted at z,
// including z itself.
func (z *Zone) Count() int {
	if z == nil {
		return 0
	}
	n := 1
	for _, c := range z.Children {
		n += c.Count()
	}
	return n
}

// MaxDepth returns the deepest tree level present in the subtree.
func (z *Zone) MaxDepth() int {
	if z == nil {
		return 0
	}
	max := z.Depth
	for _, c := range z.Children {
		if d := c.MaxDepth(); d > max {
			max = d
		}
	}
	return max
}

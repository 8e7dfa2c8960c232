package zone

import (
	"github.com/planfab/interio/pkg/ids"
	"github.com/planfab/interio/pkg/limits"
)

// New creates a zone of the given content type at the given tree level,
// with content-appropriate default config attached. Ratio height of 1 is
// the default sizing so fresh siblings share space evenly.
func New(gen ids.Generator, l limits.Limits, ct ContentType, depth int) *Zone {
	z := &Zone{
		ID:          gen.NewID(),
		ContentType: ct,
		Depth:       depth,
		Height:      HeightConfig{Mode: HeightRatio, Ratio: 1},
	}
	attachContent(z, gen, ct)
	return z
}

// NewNested creates a nested zone dividing in the given direction with
// childCount empty children. At depth >= MaxZoneDepth-1 the depth cap
// applies and an empty zone is returned instead - a silent substitution,
// not an error.
func NewNested(gen ids.Generator, l limits.Limits, dir DivisionDirection, depth, childCount int) *Zone {
	if depth >= l.MaxZoneDepth-1 {
		return New(gen, l, ContentEmpty, depth)
	}

	if childCount < 1 {
		childCount = 1
	}
	if childCount > l.MaxChildrenPerZone {
		childCount = l.MaxChildrenPerZone
	}

	z := &Zone{
		ID:          gen.NewID(),
		ContentType: ContentNested,
		Depth:       depth,
		Height:      HeightConfig{Mode: HeightRatio, Ratio: 1},
		Division:    dir,
	}
	for i := 0; i < childCount; i++ {
		z.Children = append(z.Children, New(gen, l, ContentEmpty, depth+1))
	}
	if dir == DivideVertical {
		z.Partitions = defaultPartitions(gen, childCount-1)
	}
	return z
}

// DefaultShelvesConfig returns the shelf stack a fresh shelves zone gets:
// two uniform full-depth shelves.
func DefaultShelvesConfig() *ShelvesConfig {
	return &ShelvesConfig{
		Mode:        ShelfUniform,
		Count:       2,
		DepthPreset: DepthFull,
	}
}

// DefaultDrawerConfig returns the drawer stack a fresh drawers zone gets:
// one full-height drawer zone with a front and a single box.
func DefaultDrawerConfig(gen ids.Generator) *DrawerConfig {
	return &DrawerConfig{
		Zones: []DrawerZone{{
			ID:              gen.NewID(),
			HeightRatio:     1,
			Front:           &FrontConfig{},
			Boxes:           []float64{1},
			BoxToFrontRatio: 1,
		}},
		Slide: string(limits.SlideSideMount),
	}
}

// attachContent sets the content config matching ct and clears the rest.
func attachContent(z *Zone, gen ids.Generator, ct ContentType) {
	z.Shelves = nil
	z.Drawers = nil
	switch ct {
	case ContentShelves:
		z.Shelves = DefaultShelvesConfig()
	case ContentDrawers:
		z.Drawers = DefaultDrawerConfig(gen)
	}
}

// defaultPartitions builds n enabled full-depth partitions.
func defaultPartitions(gen ids.Generator, n int) []Partition {
	if n <= 0 {
		return nil
	}
	ps := make([]Partition, n)
	for i := range ps {
		ps[i] = Partition{
			ID:          gen.NewID(),
			Enabled:     true,
			DepthPreset: DepthFull,
		}
	}
	return ps
}

package zone

import (
	"github.com/planfab/interio/pkg/errors"
	"github.com/planfab/interio/pkg/ids"
	"github.com/planfab/interio/pkg/limits"
)

// MoveDirection names the user-facing direction for reordering children.
type MoveDirection string

// Move directions.
const (
	MoveUp   MoveDirection = "up"
	MoveDown MoveDirection = "down"
)

// UpdateAtPath returns a new tree in which the zone addressed by path
// (a chain of child IDs from root, empty for the root itself) has been
// replaced by fn's result. Only the ancestor chain along the path is
// copied; every sibling subtree stays reference-identical to the input.
//
// An unresolvable path returns root unchanged, same reference.
func UpdateAtPath(root *Zone, path []string, fn func(*Zone) *Zone) *Zone {
	if root == nil {
		return nil
	}
	if len(path) == 0 {
		return fn(root)
	}

	idx := -1
	for i, c := range root.Children {
		if c.ID == path[0] {
			idx = i
			break
		}
	}
	if idx < 0 {
		return root
	}

	newChild := UpdateAtPath(root.Children[idx], path[1:], fn)
	if newChild == root.Children[idx] {
		return root
	}

	next := shallowCopy(root)
	next.Children = make([]*Zone, len(root.Children))
	copy(next.Children, root.Children)
	next.Children[idx] = newChild
	return next
}

// AddChild returns a copy of the nested zone z with one additional empty
// child appended. The operation is a silent no-op (same reference back)
// when z is not nested, the child cap is reached, or the new child would
// sit at or beyond the depth cap. Vertical zones gain a partition so the
// partition count stays at len(children)-1.
func AddChild(gen ids.Generator, l limits.Limits, z *Zone) *Zone {
	out, _ := addChild(gen, l, z)
	return out
}

// AddChildE is the fallible variant of AddChild: instead of silently
// returning the input, it reports why nothing was added.
func AddChildE(gen ids.Generator, l limits.Limits, z *Zone) (*Zone, error) {
	return addChild(gen, l, z)
}

func addChild(gen ids.Generator, l limits.Limits, z *Zone) (*Zone, error) {
	if z == nil || z.ContentType != ContentNested {
		return z, errors.New(errors.ErrCodeInvalidTree, "zone is not nested")
	}
	if len(z.Children) >= l.MaxChildrenPerZone {
		return z, errors.New(errors.ErrCodeChildrenLimit, "zone already has %d children (max %d)", len(z.Children), l.MaxChildrenPerZone)
	}
	if z.Depth+1 >= l.MaxZoneDepth {
		return z, errors.New(errors.ErrCodeDepthLimit, "child would exceed max zone depth %d", l.MaxZoneDepth)
	}

	next := shallowCopy(z)
	next.Children = make([]*Zone, len(z.Children), len(z.Children)+1)
	copy(next.Children, z.Children)
	next.Children = append(next.Children, New(gen, l, ContentEmpty, z.Depth+1))

	if z.Division == DivideVertical {
		next.Partitions = make([]Partition, len(z.Partitions), len(z.Partitions)+1)
		copy(next.Partitions, z.Partitions)
		next.Partitions = append(next.Partitions, Partition{
			ID:          gen.NewID(),
			Enabled:     true,
			DepthPreset: DepthFull,
		})
	}
	return next, nil
}

// RemoveChild returns a copy of the nested zone z without the child of
// the given ID. Removing the last remaining child is a silent no-op, as
// is an unknown child ID. Surplus partitions are trimmed from the end so
// vertical zones keep len(partitions) == len(children)-1.
func RemoveChild(z *Zone, childID string) *Zone {
	if z == nil || z.ContentType != ContentNested || len(z.Children) <= 1 {
		return z
	}

	idx := -1
	for i, c := range z.Children {
		if c.ID == childID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return z
	}

	next := shallowCopy(z)
	next.Children = make([]*Zone, 0, len(z.Children)-1)
	next.Children = append(next.Children, z.Children[:idx]...)
	next.Children = append(next.Children, z.Children[idx+1:]...)

	if want := len(next.Children) - 1; len(z.Partitions) > want {
		next.Partitions = make([]Partition, want)
		copy(next.Partitions, z.Partitions[:want])
	}
	return next
}

// MoveChild returns a copy of the nested zone z with the named child
// shifted one slot. Direction semantics follow the on-screen geometry,
// not list order: horizontally divided zones stack bottom-to-top, so
// "up" moves the child toward a higher index; vertically divided zones
// run left-to-right, so "up" moves toward a lower index (leftward).
// Moves past either end, unknown IDs, and non-nested zones are silent
// no-ops.
func MoveChild(z *Zone, childID string, dir MoveDirection) *Zone {
	if z == nil || z.ContentType != ContentNested {
		return z
	}

	idx := -1
	for i, c := range z.Children {
		if c.ID == childID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return z
	}

	delta := 0
	switch {
	case z.Division == DivideHorizontal && dir == MoveUp:
		delta = 1
	case z.Division == DivideHorizontal && dir == MoveDown:
		delta = -1
	case z.Division == DivideVertical && dir == MoveUp:
		delta = -1
	case z.Division == DivideVertical && dir == MoveDown:
		delta = 1
	default:
		return z
	}

	target := idx + delta
	if target < 0 || target >= len(z.Children) {
		return z
	}

	next := shallowCopy(z)
	next.Children = make([]*Zone, len(z.Children))
	copy(next.Children, z.Children)
	next.Children[idx], next.Children[target] = next.Children[target], next.Children[idx]
	return next
}

// SetContentType returns a copy of z with its content switched to ct:
// the prior leaf config is discarded and a fresh default for the new type
// attached. The zone's identity and sizing (ID, depth, height, width) are
// preserved. Switching to nested at or beyond the depth cap is a silent
// no-op returning the original reference.
func SetContentType(gen ids.Generator, l limits.Limits, z *Zone, ct ContentType) *Zone {
	out, _ := setContentType(gen, l, z, ct)
	return out
}

// SetContentTypeE is the fallible variant of SetContentType.
func SetContentTypeE(gen ids.Generator, l limits.Limits, z *Zone, ct ContentType) (*Zone, error) {
	return setContentType(gen, l, z, ct)
}

func setContentType(gen ids.Generator, l limits.Limits, z *Zone, ct ContentType) (*Zone, error) {
	if z == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "nil zone")
	}
	if ct == ContentNested && z.Depth >= l.MaxZoneDepth-1 {
		return z, errors.New(errors.ErrCodeDepthLimit, "cannot nest at depth %d (max zone depth %d)", z.Depth, l.MaxZoneDepth)
	}

	next := shallowCopy(z)
	next.ContentType = ct
	next.Division = ""
	next.Children = nil
	next.Partitions = nil
	attachContent(next, gen, ct)

	if ct == ContentNested {
		next.Division = DivideHorizontal
		next.Children = []*Zone{
			New(gen, l, ContentEmpty, z.Depth+1),
			New(gen, l, ContentEmpty, z.Depth+1),
		}
	}
	return next, nil
}

// Clone returns a deep copy of the subtree with every node (and every
// partition, drawer zone, and shelf) assigned a fresh ID from gen.
// Shape, content types, and sizing are preserved.
func Clone(gen ids.Generator, z *Zone) *Zone {
	if z == nil {
		return nil
	}

	next := shallowCopy(z)
	next.ID = gen.NewID()

	if len(z.Children) > 0 {
		next.Children = make([]*Zone, len(z.Children))
		for i, c := range z.Children {
			next.Children[i] = Clone(gen, c)
		}
	}
	if len(z.Partitions) > 0 {
		next.Partitions = make([]Partition, len(z.Partitions))
		copy(next.Partitions, z.Partitions)
		for i := range next.Partitions {
			next.Partitions[i].ID = gen.NewID()
		}
	}
	if z.Shelves != nil {
		next.Shelves = cloneShelvesConfig(gen, z.Shelves)
	}
	if z.Drawers != nil {
		next.Drawers = cloneDrawerConfig(gen, z.Drawers)
	}
	return next
}

func cloneShelvesConfig(gen ids.Generator, sc *ShelvesConfig) *ShelvesConfig {
	out := *sc
	if len(sc.Shelves) > 0 {
		out.Shelves = make([]ShelfItem, len(sc.Shelves))
		copy(out.Shelves, sc.Shelves)
		for i := range out.Shelves {
			out.Shelves[i].ID = gen.NewID()
			if p := sc.Shelves[i].PositionY; p != nil {
				y := *p
				out.Shelves[i].PositionY = &y
			}
		}
	}
	return &out
}

func cloneDrawerConfig(gen ids.Generator, dc *DrawerConfig) *DrawerConfig {
	out := *dc
	out.Zones = make([]DrawerZone, len(dc.Zones))
	copy(out.Zones, dc.Zones)
	for i := range out.Zones {
		out.Zones[i].ID = gen.NewID()
		if len(dc.Zones[i].Boxes) > 0 {
			out.Zones[i].Boxes = append([]float64(nil), dc.Zones[i].Boxes...)
		}
		if f := dc.Zones[i].Front; f != nil {
			front := *f
			out.Zones[i].Front = &front
		}
		if a := dc.Zones[i].AboveBoxContent; a != nil {
			out.Zones[i].AboveBoxContent = cloneShelvesConfig(gen, a)
		}
	}
	return &out
}

// shallowCopy duplicates the zone struct itself. Slice and pointer fields
// still alias the original; mutators replace those they touch.
func shallowCopy(z *Zone) *Zone {
	cp := *z
	return &cp
}

package zone

import (
	"fmt"
	"strings"

	"github.com/planfab/interio/pkg/errors"
	"github.com/planfab/interio/pkg/limits"
)

// Issue is one validation finding, addressed to a specific zone.
type Issue struct {
	Code    errors.Code `json:"code"`
	ZoneID  string      `json:"zone_id"`
	Path    []string    `json:"path,omitempty"`
	Message string      `json:"message"`
}

// String formats the issue for log and CLI output.
func (i Issue) String() string {
	loc := i.ZoneID
	if len(i.Path) > 0 {
		loc = strings.Join(i.Path, "/")
	}
	return fmt.Sprintf("%s [%s]: %s", i.Code, loc, i.Message)
}

// Result is the outcome of a tree-wide validation pass.
type Result struct {
	Issues []Issue `json:"issues"`
}

// OK reports whether the tree passed validation.
func (r Result) OK() bool { return len(r.Issues) == 0 }

// Messages returns the human-readable message list, for UI display.
func (r Result) Messages() []string {
	msgs := make([]string, len(r.Issues))
	for i, issue := range r.Issues {
		msgs[i] = issue.String()
	}
	return msgs
}

// Validate runs a full structural and numeric validation pass over the
// tree. It is pull-based: editing operations never validate inline, so
// transiently invalid trees are fine until a commit gate calls Validate.
// The pass never mutates the tree and collects every issue rather than
// stopping at the first.
func Validate(root *Zone, l limits.Limits) Result {
	var res Result
	if root == nil {
		res.add(errors.ErrCodeInvalidTree, "", nil, "tree is empty")
		return res
	}

	Walk(root, func(z *Zone, path []string) bool {
		checkDepth(&res, z, path, l)
		checkSizing(&res, z, path, l)
		switch z.ContentType {
		case ContentNested:
			checkNested(&res, z, path, l)
		case ContentShelves:
			checkShelves(&res, z, path, z.Shelves, l)
		case ContentDrawers:
			checkDrawers(&res, z, path, l)
		}
		return true
	})
	return res
}

func (r *Result) add(code errors.Code, zoneID string, path []string, format string, args ...any) {
	r.Issues = append(r.Issues, Issue{
		Code:    code,
		ZoneID:  zoneID,
		Path:    path,
		Message: fmt.Sprintf(format, args...),
	})
}

func checkDepth(r *Result, z *Zone, path []string, l limits.Limits) {
	if z.Depth < 0 || z.Depth >= l.MaxZoneDepth {
		r.add(errors.ErrCodeDepthLimit, z.ID, path, "depth %d outside [0, %d)", z.Depth, l.MaxZoneDepth)
	}
}

func checkSizing(r *Result, z *Zone, path []string, l limits.Limits) {
	switch z.Height.Mode {
	case HeightRatio:
		if z.Height.Ratio <= 0 {
			r.add(errors.ErrCodeInvalidRatio, z.ID, path, "height ratio must be positive, got %v", z.Height.Ratio)
		}
	case HeightExact:
		if z.Height.ExactMM < l.MinZoneHeightMM {
			r.add(errors.ErrCodeInvalidSize, z.ID, path, "exact height %vmm below minimum %vmm", z.Height.ExactMM, l.MinZoneHeightMM)
		}
	default:
		r.add(errors.ErrCodeInvalidInput, z.ID, path, "unknown height mode %q", z.Height.Mode)
	}

	if z.Width == nil {
		return
	}
	switch z.Width.Mode {
	case WidthFixed:
		if z.Width.FixedMM < l.MinZoneWidthMM {
			r.add(errors.ErrCodeInvalidSize, z.ID, path, "fixed width %vmm below minimum %vmm", z.Width.FixedMM, l.MinZoneWidthMM)
		}
	case WidthProportional:
		if z.Width.Ratio <= 0 {
			r.add(errors.ErrCodeInvalidRatio, z.ID, path, "width ratio must be positive, got %v", z.Width.Ratio)
		}
	default:
		r.add(errors.ErrCodeInvalidInput, z.ID, path, "unknown width mode %q", z.Width.Mode)
	}
}

func checkNested(r *Result, z *Zone, path []string, l limits.Limits) {
	n := len(z.Children)
	if n < 1 {
		r.add(errors.ErrCodeInvalidTree, z.ID, path, "nested zone has no children")
	}
	if n > l.MaxChildrenPerZone {
		r.add(errors.ErrCodeChildrenLimit, z.ID, path, "nested zone has %d children (max %d)", n, l.MaxChildrenPerZone)
	}
	for _, c := range z.Children {
		if c.Depth != z.Depth+1 {
			r.add(errors.ErrCodeInvalidTree, c.ID, path, "child depth %d, want parent depth + 1 = %d", c.Depth, z.Depth+1)
		}
	}
	if z.Division == DivideVertical {
		want := n - 1
		if want < 0 {
			want = 0
		}
		if len(z.Partitions) != want {
			r.add(errors.ErrCodeInvalidTree, z.ID, path, "vertical zone has %d partitions, want %d", len(z.Partitions), want)
		}
	}
}

func checkShelves(r *Result, z *Zone, path []string, sc *ShelvesConfig, l limits.Limits) {
	if sc == nil {
		r.add(errors.ErrCodeInvalidTree, z.ID, path, "shelves zone has no shelf config")
		return
	}
	switch sc.Mode {
	case ShelfUniform:
		if sc.Count < 1 {
			r.add(errors.ErrCodeInvalidInput, z.ID, path, "uniform shelf count must be at least 1, got %d", sc.Count)
		}
		if sc.Count > l.MaxShelvesPerZone {
			r.add(errors.ErrCodeShelfLimit, z.ID, path, "uniform shelf count %d exceeds max %d", sc.Count, l.MaxShelvesPerZone)
		}
	case ShelfManual:
		if len(sc.Shelves) == 0 {
			r.add(errors.ErrCodeInvalidInput, z.ID, path, "manual shelf mode with no shelves")
		}
		if len(sc.Shelves) > l.MaxShelvesPerZone {
			r.add(errors.ErrCodeShelfLimit, z.ID, path, "%d shelves exceeds max %d", len(sc.Shelves), l.MaxShelvesPerZone)
		}
		if sc.Count != 0 && sc.Count != len(sc.Shelves) {
			r.add(errors.ErrCodeInvalidInput, z.ID, path, "manual shelf count %d does not match %d shelf entries", sc.Count, len(sc.Shelves))
		}
	default:
		r.add(errors.ErrCodeInvalidInput, z.ID, path, "unknown shelf mode %q", sc.Mode)
	}
}

func checkDrawers(r *Result, z *Zone, path []string, l limits.Limits) {
	dc := z.Drawers
	if dc == nil {
		r.add(errors.ErrCodeInvalidTree, z.ID, path, "drawers zone has no drawer config")
		return
	}
	if len(dc.Zones) < 1 {
		r.add(errors.ErrCodeInvalidInput, z.ID, path, "drawer config has no drawer zones")
	}
	if len(dc.Zones) > l.MaxDrawerZonesPerZone {
		r.add(errors.ErrCodeZoneLimit, z.ID, path, "%d drawer zones exceeds max %d", len(dc.Zones), l.MaxDrawerZonesPerZone)
	}
	for _, dz := range dc.Zones {
		if dz.HeightRatio <= 0 {
			r.add(errors.ErrCodeInvalidRatio, z.ID, path, "drawer zone %s height ratio must be positive, got %v", dz.ID, dz.HeightRatio)
		}
		if len(dz.Boxes) < 1 {
			r.add(errors.ErrCodeInvalidInput, z.ID, path, "drawer zone %s has no boxes", dz.ID)
		}
		if len(dz.Boxes) > l.MaxBoxesPerDrawerZone {
			r.add(errors.ErrCodeBoxLimit, z.ID, path, "drawer zone %s has %d boxes (max %d)", dz.ID, len(dz.Boxes), l.MaxBoxesPerDrawerZone)
		}
		for _, b := range dz.Boxes {
			if b <= 0 {
				r.add(errors.ErrCodeInvalidRatio, z.ID, path, "drawer zone %s box ratio must be positive, got %v", dz.ID, b)
			}
		}
		if dz.AboveBoxContent != nil {
			checkShelves(r, z, path, dz.AboveBoxContent, l)
		}
	}
}

package limits

import "github.com/planfab/interio/pkg/errors"

// SlideMount identifies a drawer-slide hardware family. Each family fixes
// the lateral and depth clearances a box must leave for its slides.
type SlideMount string

// Supported slide mounts.
const (
	SlideSideMount   SlideMount = "side_mount"
	SlideUndermount  SlideMount = "undermount"
	SlideBottomMount SlideMount = "bottom_mount"
	SlideCenterMount SlideMount = "center_mount"
)

// SlideConfig is the clearance pair for one slide family.
type SlideConfig struct {
	// SideOffsetMM is the gap left on each side of the box.
	SideOffsetMM float64 `toml:"side_offset_mm"`
	// DepthOffsetMM is subtracted from cabinet depth for the box depth.
	DepthOffsetMM float64 `toml:"depth_offset_mm"`
}

// slidePresets maps each mount family to its clearances. These are
// manufacturer-typical values; custom hardware goes through LoadTOML.
var slidePresets = map[SlideMount]SlideConfig{
	SlideSideMount:   {SideOffsetMM: 13, DepthOffsetMM: 10},
	SlideUndermount:  {SideOffsetMM: 6, DepthOffsetMM: 25},
	SlideBottomMount: {SideOffsetMM: 10, DepthOffsetMM: 15},
	SlideCenterMount: {SideOffsetMM: 3, DepthOffsetMM: 20},
}

// Slide returns the clearance config for a mount family.
// Unknown mounts return an UNSUPPORTED error.
func Slide(mount SlideMount) (SlideConfig, error) {
	cfg, ok := slidePresets[mount]
	if !ok {
		return SlideConfig{}, errors.New(errors.ErrCodeUnsupported, "unknown slide mount: %q", mount)
	}
	return cfg, nil
}

// SlideMounts returns all supported mount names, for CLI help and
// validation messages.
func SlideMounts() []SlideMount {
	return []SlideMount{SlideSideMount, SlideUndermount, SlideBottomMount, SlideCenterMount}
}

package limits

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/planfab/interio/pkg/errors"
)

// LoadTOML reads a limits file and merges it over Default().
// Only keys present in the file override defaults, so a file can adjust a
// single cap without restating the rest.
//
// Example file:
//
//	max_zone_depth = 5
//	min_zone_height_mm = 60.0
func LoadTOML(path string) (Limits, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Limits{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "limits file %s", path)
		}
		return Limits{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read limits file %s", path)
	}

	l := Default()
	if err := toml.Unmarshal(data, &l); err != nil {
		return Limits{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse limits file %s", path)
	}

	if err := l.Check(); err != nil {
		return Limits{}, err
	}
	return l, nil
}

// Check verifies that a limit set is internally coherent.
func (l Limits) Check() error {
	switch {
	case l.MaxZoneDepth < 1:
		return errors.New(errors.ErrCodeInvalidConfig, "max_zone_depth must be at least 1, got %d", l.MaxZoneDepth)
	case l.MaxChildrenPerZone < 1:
		return errors.New(errors.ErrCodeInvalidConfig, "max_children_per_zone must be at least 1, got %d", l.MaxChildrenPerZone)
	case l.MaxDrawerZonesPerZone < 1:
		return errors.New(errors.ErrCodeInvalidConfig, "max_drawer_zones_per_zone must be at least 1, got %d", l.MaxDrawerZonesPerZone)
	case l.MaxBoxesPerDrawerZone < 1:
		return errors.New(errors.ErrCodeInvalidConfig, "max_boxes_per_drawer_zone must be at least 1, got %d", l.MaxBoxesPerDrawerZone)
	case l.MinZoneHeightMM < 0 || l.MinZoneWidthMM < 0:
		return errors.New(errors.ErrCodeInvalidConfig, "minimum zone sizes must not be negative")
	case l.ShelfBottomOffset < 0 || l.ShelfBottomOffset >= 1:
		return errors.New(errors.ErrCodeInvalidConfig, "shelf_bottom_offset must be in [0, 1), got %v", l.ShelfBottomOffset)
	}
	return nil
}

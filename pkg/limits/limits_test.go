package limits

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/planfab/interio/pkg/errors"
)

func TestDefaultIsCoherent(t *testing.T) {
	if err := Default().Check(); err != nil {
		t.Fatalf("Default().Check() = %v, want nil", err)
	}
}

func TestLoadTOMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "limits.toml")
	content := "max_zone_depth = 6\nmin_zone_height_mm = 75.0\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	l, err := LoadTOML(path)
	if err != nil {
		t.Fatalf("LoadTOML() error = %v", err)
	}

	if l.MaxZoneDepth != 6 {
		t.Errorf("MaxZoneDepth = %d, want 6", l.MaxZoneDepth)
	}
	if l.MinZoneHeightMM != 75 {
		t.Errorf("MinZoneHeightMM = %v, want 75", l.MinZoneHeightMM)
	}
	// Untouched keys keep defaults.
	if l.MaxChildrenPerZone != Default().MaxChildrenPerZone {
		t.Errorf("MaxChildrenPerZone = %d, want default %d", l.MaxChildrenPerZone, Default().MaxChildrenPerZone)
	}
}

func TestLoadTOMLMissingFile(t *testing.T) {
	_, err := LoadTOML(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("LoadTOML() error code = %v, want FILE_NOT_FOUND", errors.GetCode(err))
	}
}

func TestLoadTOMLRejectsIncoherent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "limits.toml")
	if err := os.WriteFile(path, []byte("max_zone_depth = 0\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadTOML(path)
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("LoadTOML() error code = %v, want INVALID_CONFIG", errors.GetCode(err))
	}
}

func TestSlidePresets(t *testing.T) {
	for _, mount := range SlideMounts() {
		cfg, err := Slide(mount)
		if err != nil {
			t.Errorf("Slide(%q) error = %v", mount, err)
			continue
		}
		if cfg.SideOffsetMM < 0 || cfg.DepthOffsetMM < 0 {
			t.Errorf("Slide(%q) has negative offsets: %+v", mount, cfg)
		}
	}

	if _, err := Slide("rollerskate"); !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("Slide(unknown) error code = %v, want UNSUPPORTED", errors.GetCode(err))
	}
}

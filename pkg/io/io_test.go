package io

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/planfab/interio/pkg/errors"
	"github.com/planfab/interio/pkg/ids"
	"github.com/planfab/interio/pkg/limits"
	"github.com/planfab/interio/pkg/zone"
)

func TestReadJSONRecomputesDepths(t *testing.T) {
	// Depths in the document are wrong on purpose.
	doc := `{
		"id": "root",
		"content_type": "nested",
		"depth": 7,
		"division": "vertical",
		"height": {"mode": "ratio", "ratio": 1},
		"children": [
			{"id": "a", "content_type": "shelves", "depth": 0, "height": {"mode": "ratio", "ratio": 1}, "shelves": {"mode": "uniform", "count": 2, "depth_preset": "full"}},
			{"id": "b", "content_type": "empty", "height": {"mode": "ratio", "ratio": 1}}
		],
		"partitions": [{"id": "p1", "enabled": true, "depth_preset": "full"}]
	}`
	root, err := ReadJSON(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ReadJSON() error: %v", err)
	}
	if root.Depth != 0 {
		t.Errorf("root depth = %d, want 0", root.Depth)
	}
	for _, c := range root.Children {
		if c.Depth != 1 {
			t.Errorf("child %s depth = %d, want 1", c.ID, c.Depth)
		}
	}
}

func TestReadJSONStructuralErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"malformed", `{"id": `},
		{"missing id", `{"content_type": "empty", "height": {"mode": "ratio", "ratio": 1}}`},
		{"duplicate id", `{"id": "x", "content_type": "nested", "height": {"mode": "ratio", "ratio": 1}, "children": [{"id": "x", "content_type": "empty", "height": {"mode": "ratio", "ratio": 1}}]}`},
		{"unknown content type", `{"id": "x", "content_type": "cupboard", "height": {"mode": "ratio", "ratio": 1}}`},
		{"children on leaf", `{"id": "x", "content_type": "shelves", "height": {"mode": "ratio", "ratio": 1}, "children": [{"id": "y", "content_type": "empty", "height": {"mode": "ratio", "ratio": 1}}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.doc))
			if err == nil {
				t.Fatal("ReadJSON() succeeded, want error")
			}
			if !errors.Is(err, errors.ErrCodeInvalidFormat) {
				t.Errorf("error code = %v, want INVALID_FORMAT", errors.GetCode(err))
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	gen := ids.Sequential()
	l := limits.Default()
	root := zone.NewNested(gen, l, zone.DivideVertical, 0, 3)
	root.Children[1] = func() *zone.Zone {
		z := zone.New(gen, l, zone.ContentDrawers, 1)
		z.ID = root.Children[1].ID
		return z
	}()

	var buf bytes.Buffer
	if err := WriteJSON(root, &buf); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}
	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON() error: %v", err)
	}
	if got.Count() != root.Count() {
		t.Errorf("round trip zone count = %d, want %d", got.Count(), root.Count())
	}
	if len(got.Partitions) != len(root.Partitions) {
		t.Errorf("round trip partitions = %d, want %d", len(got.Partitions), len(root.Partitions))
	}
	if got.Children[1].ContentType != zone.ContentDrawers {
		t.Errorf("round trip child content = %s, want drawers", got.Children[1].ContentType)
	}
}

func TestImportFileMissing(t *testing.T) {
	_, err := ImportFile(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error code = %v, want FILE_NOT_FOUND", errors.GetCode(err))
	}
}

func TestExportThenImport(t *testing.T) {
	gen := ids.Sequential()
	root := zone.New(gen, limits.Default(), zone.ContentShelves, 0)
	path := filepath.Join(t.TempDir(), "cabinet.json")

	if err := ExportFile(root, path); err != nil {
		t.Fatalf("ExportFile() error: %v", err)
	}
	got, err := ImportFile(path)
	if err != nil {
		t.Fatalf("ImportFile() error: %v", err)
	}
	if got.ID != root.ID || got.ContentType != zone.ContentShelves {
		t.Errorf("imported zone = %+v, want id %s shelves", got, root.ID)
	}
}

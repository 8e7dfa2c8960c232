package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/planfab/interio/pkg/errors"
	"github.com/planfab/interio/pkg/zone"
)

// WriteJSON encodes a zone tree as indented JSON and writes it to w.
// The output includes every zone with its content configuration and
// partitions, and can be re-imported with [ReadJSON] for round-trip
// processing.
func WriteJSON(root *zone.Zone, w io.Writer) error {
	if root == nil {
		return errors.New(errors.ErrCodeInvalidInput, "nil zone tree")
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(root); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportFile writes a zone tree to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportFile(root *zone.Zone, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(root, f)
}

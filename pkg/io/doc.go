// Package io provides JSON import and export for cabinet zone trees.
//
// # Overview
//
// This package serializes zone trees to and from a nested JSON format.
// The format is designed for:
//
//   - Persisting an interior configuration between editing sessions
//   - Integration with external tools that produce or consume layouts
//   - Round-trip preservation: import, edit, export, and re-import identically
//
// # JSON Format
//
// A document is a single zone object; nested zones carry their children
// inline:
//
//	{
//	  "id": "root",
//	  "content_type": "nested",
//	  "division": "vertical",
//	  "children": [
//	    {"id": "left", "content_type": "shelves", "shelves": {"mode": "uniform", "count": 3}},
//	    {"id": "right", "content_type": "drawers", "drawers": {"zones": [{"id": "d1", "height_ratio": 1, "boxes": [1]}]}}
//	  ],
//	  "partitions": [{"id": "p1", "enabled": true, "depth_preset": "full"}]
//	}
//
// Depth fields are recomputed from the nesting structure on import, so
// hand-written documents do not need to carry them.
//
// # Import
//
// Use [ImportFile] to read a tree from a file path, or [ReadJSON] to read
// from any io.Reader:
//
//	root, err := io.ImportFile("cabinet.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Both functions check structural constraints (unique zone IDs, known
// content types, children only under nested zones). Rule-level validation
// against configured limits is a separate concern; see the zone package.
//
// # Export
//
// Use [ExportFile] to write a tree to a file, or [WriteJSON] to write to
// any io.Writer:
//
//	err := io.ExportFile(root, "cabinet.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The export includes every zone with its content configuration and
// partitions, indented for readability. Trees survive a full round trip
// unchanged.
package io

// Package pkg provides the core libraries for Interio cabinet layout solving.
//
// # Overview
//
// Interio turns a declarative cabinet description into millimetre-exact
// interior geometry. A cabinet is a tree of zones: nested zones divide
// their rectangle among children, leaf zones hold shelves, drawers, or
// nothing. The pkg directory is organized into four main areas:
//
//  1. [zone] - The zone tree: construction, editing, validation
//  2. [layout] - Geometry solving (distribution, bounds, shelves, drawers)
//  3. [pipeline] - Orchestration (validate → solve, caching)
//  4. [render] - Visualization (DOT tree diagrams, section-view SVG)
//
// # Architecture
//
// The typical data flow through Interio:
//
//	Cabinet JSON document
//	         ↓
//	    [io] package (decode + structural checks)
//	         ↓
//	    [zone] package (tree model + limit validation)
//	         ↓
//	    [layout] package (distribute sizes, compute bounds,
//	                      place shelves and drawer boxes)
//	         ↓
//	    SVG/JSON output
//
// # Quick Start
//
// Load a cabinet and solve its geometry:
//
//	import (
//	    "context"
//	    "github.com/planfab/interio/pkg/io"
//	    "github.com/planfab/interio/pkg/pipeline"
//	)
//
//	// 1. Load the zone tree
//	root, _ := io.ImportFile("wardrobe.json")
//
//	// 2. Solve with default cabinet dimensions
//	runner := pipeline.NewRunner(nil, nil, nil)
//	result, _ := runner.Execute(context.Background(), root, pipeline.Options{})
//
//	// 3. Inspect the solved geometry
//	for _, zb := range result.Solution.Zones {
//	    fmt.Printf("%s: %.0f×%.0fmm\n", zb.ZoneID, zb.Rect.Width, zb.Rect.Height)
//	}
//
// # Main Packages
//
// [zone] - The zone tree data model: content types (nested, shelves,
// drawers, empty), height/width sizing configs, partitions, factory
// helpers, persistent-tree editing via [zone.UpdateAtPath], and the
// pull-based [zone.Validate] check against structural limits.
//
// [layout] - Pure geometry. Mixed fixed/proportional size distribution,
// recursive bounds calculation over the tree, shelf position and depth
// solving, drawer band and box-stack solving.
//
// [limits] - Immutable structural limit set (spans, thicknesses, slide
// presets) with a TOML override loader.
//
// [io] - JSON import/export of zone trees with structural checks and
// depth recomputation.
//
// [pipeline] - The validate → solve pipeline shared by the CLI and the
// HTTP API, with content-addressed solve caching.
//
// [cache] - Cache backends for solve results: file, Redis, and null.
//
// [render] - Graphviz DOT emission of the zone tree and section-view
// SVG rendering of solved cabinets.
//
// [errors] - Coded errors shared across packages.
//
// [observability] - Hook interfaces for solve, cache, and server events.
//
// [ids] - Zone ID generation (UUID-backed, deterministic for tests).
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/layout/...   # Specific package
//	go test -run Example       # Examples only
//
// [zone]: https://pkg.go.dev/github.com/planfab/interio/pkg/zone
// [layout]: https://pkg.go.dev/github.com/planfab/interio/pkg/layout
// [limits]: https://pkg.go.dev/github.com/planfab/interio/pkg/limits
// [io]: https://pkg.go.dev/github.com/planfab/interio/pkg/io
// [pipeline]: https://pkg.go.dev/github.com/planfab/interio/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/planfab/interio/pkg/cache
// [render]: https://pkg.go.dev/github.com/planfab/interio/pkg/render
// [errors]: https://pkg.go.dev/github.com/planfab/interio/pkg/errors
// [observability]: https://pkg.go.dev/github.com/planfab/interio/pkg/observability
// [ids]: https://pkg.go.dev/github.com/planfab/interio/pkg/ids
package pkg

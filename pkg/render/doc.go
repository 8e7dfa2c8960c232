// Package render turns zone trees and solved layouts into visual output.
//
// Two renderers are provided:
//
//   - [ToDOT] / [RenderDOTSVG]: the logical zone tree as a Graphviz
//     diagram, useful for debugging subdivision structure
//   - [RenderSVG]: a to-scale front view of a solved cabinet with leaf
//     zones, partition panels, shelf lines, and drawer boxes
//
// The front view is hand-written SVG with millimetre coordinates
// mapped 1:1 to SVG units (the viewBox does the scaling), so output
// files diff cleanly between solver runs.
package render

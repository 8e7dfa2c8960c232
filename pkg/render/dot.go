package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/planfab/interio/pkg/zone"
)

// DOTOptions configures zone tree diagram rendering.
type DOTOptions struct {
	// Detailed includes sizing and content configuration in node
	// labels. When false, only the zone ID and content type are shown.
	Detailed bool
}

var contentFill = map[zone.ContentType]string{
	zone.ContentEmpty:   "white",
	zone.ContentShelves: "lightyellow",
	zone.ContentDrawers: "lightblue",
	zone.ContentNested:  "lightgrey",
}

// ToDOT converts a zone tree to Graphviz DOT format. The resulting DOT
// string can be rendered with [RenderDOTSVG].
//
// Nested zones are rendered with dashed outlines; leaf zones are filled
// by content type.
func ToDOT(root *zone.Zone, opts DOTOptions) string {
	var buf bytes.Buffer
	buf.WriteString("digraph cabinet {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	zone.Walk(root, func(z *zone.Zone, path []string) bool {
		label := fmtLabel(z, opts.Detailed)
		attrs := fmtAttrs(z, label)
		fmt.Fprintf(&buf, "  %q [%s];\n", z.ID, strings.Join(attrs, ", "))
		return true
	})

	buf.WriteString("\n")
	zone.Walk(root, func(z *zone.Zone, path []string) bool {
		for _, c := range z.Children {
			fmt.Fprintf(&buf, "  %q -> %q;\n", z.ID, c.ID)
		}
		return true
	})

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(z *zone.Zone, detailed bool) string {
	parts := []string{fmt.Sprintf("%s\n%s", z.ID, z.ContentType)}
	if detailed {
		if z.ContentType == zone.ContentNested {
			parts = append(parts, fmt.Sprintf("division: %s", z.Division))
		}
		if z.Height.Mode == zone.HeightExact {
			parts = append(parts, fmt.Sprintf("height: %.0fmm", z.Height.ExactMM))
		} else {
			parts = append(parts, fmt.Sprintf("height ratio: %.2g", z.Height.Ratio))
		}
		if z.Shelves != nil {
			parts = append(parts, fmt.Sprintf("shelves: %s", z.Shelves.Mode))
		}
		if z.Drawers != nil {
			parts = append(parts, fmt.Sprintf("drawer zones: %d", len(z.Drawers.Zones)))
		}
	}
	return strings.Join(parts, "\n")
}

func fmtAttrs(z *zone.Zone, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	fill := contentFill[z.ContentType]
	if fill == "" {
		fill = "white"
	}
	if z.ContentType == zone.ContentNested {
		attrs = append(attrs, "style=\"rounded,filled,dashed\"")
	}
	attrs = append(attrs, fmt.Sprintf("fillcolor=%s", fill))
	return attrs
}

// RenderDOTSVG renders a DOT diagram to SVG using Graphviz.
func RenderDOTSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

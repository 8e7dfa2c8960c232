package render

import (
	"bytes"
	"fmt"

	"github.com/planfab/interio/pkg/layout"
	"github.com/planfab/interio/pkg/pipeline"
	"github.com/planfab/interio/pkg/zone"
)

// RenderOption configures the front-view renderer.
type RenderOption func(*renderer)

type renderer struct {
	labels    bool
	padding   float64
	panelFill string
}

// WithLabels draws the zone ID in the center of every leaf rectangle.
func WithLabels() RenderOption { return func(r *renderer) { r.labels = true } }

// WithPadding adds a margin (in mm) around the cabinet outline.
func WithPadding(mm float64) RenderOption { return func(r *renderer) { r.padding = mm } }

// RenderSVG renders a solved cabinet as a to-scale front view.
//
// The cabinet's millimetre coordinates map directly to SVG units; the
// cabinet's bottom-left corner is the origin, with the Y axis flipped
// into SVG screen space.
func RenderSVG(sol *pipeline.Solution, opts ...RenderOption) []byte {
	r := renderer{padding: 20, panelFill: "#8a6d4a"}
	for _, opt := range opts {
		opt(&r)
	}

	w := sol.CabinetWidthMM + 2*r.padding
	h := sol.CabinetHeightMM + 2*r.padding

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		w, h, w, h)

	// Cabinet outline.
	fmt.Fprintf(&buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="#333" stroke-width="3"/>`+"\n",
		r.padding, r.padding, sol.CabinetWidthMM, sol.CabinetHeightMM)

	for _, zb := range sol.Zones {
		r.renderZone(&buf, sol, zb)
	}
	for _, pb := range sol.Partitions {
		r.renderPartition(&buf, sol, pb)
	}
	for _, sp := range sol.Shelves {
		r.renderShelves(&buf, sol, sp)
	}
	for _, dp := range sol.Drawers {
		r.renderDrawers(&buf, sol, dp)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// toSVG flips a cabinet rect into SVG screen space.
func (r *renderer) toSVG(sol *pipeline.Solution, rect layout.Rect) (x, y float64) {
	return rect.X + r.padding, sol.CabinetHeightMM - rect.Y - rect.Height + r.padding
}

var zoneFill = map[zone.ContentType]string{
	zone.ContentEmpty:   "#fcfcfc",
	zone.ContentShelves: "#fdf6dd",
	zone.ContentDrawers: "#e3eefa",
	zone.ContentNested:  "#f0f0f0",
}

func (r *renderer) renderZone(buf *bytes.Buffer, sol *pipeline.Solution, zb layout.ZoneBounds) {
	x, y := r.toSVG(sol, zb.Rect)
	fill := zoneFill[zb.ContentType]
	if fill == "" {
		fill = "#fcfcfc"
	}
	fmt.Fprintf(buf, `  <rect id="zone-%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="#999" stroke-width="1"/>`+"\n",
		zb.ZoneID, x, y, zb.Rect.Width, zb.Rect.Height, fill)

	if r.labels {
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-size="24" text-anchor="middle" fill="#666">%s</text>`+"\n",
			x+zb.Rect.Width/2, y+zb.Rect.Height/2, zb.ZoneID)
	}
}

func (r *renderer) renderPartition(buf *bytes.Buffer, sol *pipeline.Solution, pb layout.PartitionBounds) {
	if !pb.Enabled {
		return
	}
	x, y := r.toSVG(sol, pb.Rect)
	fmt.Fprintf(buf, `  <rect id="partition-%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
		pb.PartitionID, x, y, pb.Rect.Width, pb.Rect.Height, r.panelFill)
}

func (r *renderer) renderShelves(buf *bytes.Buffer, sol *pipeline.Solution, sp pipeline.ShelfPlacement) {
	rect, ok := leafRect(sol, sp.ZoneID)
	if !ok {
		return
	}
	for _, posY := range sp.PositionsY {
		y := sol.CabinetHeightMM - posY + r.padding
		fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="4"/>`+"\n",
			rect.X+r.padding, y, rect.X+rect.Width+r.padding, y, r.panelFill)
	}
}

func (r *renderer) renderDrawers(buf *bytes.Buffer, sol *pipeline.Solution, dp pipeline.DrawerPlacement) {
	rect, ok := leafRect(sol, dp.ZoneID)
	if !ok {
		return
	}
	for i, span := range dp.Spans {
		// Drawer front, drawn over the zone rectangle.
		front := layout.Rect{
			X:      rect.X,
			Y:      rect.Y + span.StartY,
			Width:  rect.Width,
			Height: span.FrontHeightMM,
		}
		x, y := r.toSVG(sol, front)
		fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="#c9d8ec" stroke="#667" stroke-width="1.5"/>`+"\n",
			x, y, front.Width, front.Height)

		// Boxes behind the front, dashed.
		for _, box := range dp.Boxes[i] {
			b := layout.Rect{
				X:      rect.X + (rect.Width-dp.BoxDims.WidthMM)/2,
				Y:      rect.Y + box.StartY,
				Width:  dp.BoxDims.WidthMM,
				Height: box.HeightMM,
			}
			bx, by := r.toSVG(sol, b)
			fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="#88a" stroke-width="1" stroke-dasharray="6,4"/>`+"\n",
				bx, by, b.Width, b.Height)
		}
	}
}

func leafRect(sol *pipeline.Solution, zoneID string) (layout.Rect, bool) {
	for _, zb := range sol.Zones {
		if zb.ZoneID == zoneID {
			return zb.Rect, true
		}
	}
	return layout.Rect{}, false
}

// Package layout turns a zone tree plus an outer rectangle into concrete
// physical bounds: one rectangle per leaf zone and one per partition.
//
// All coordinates are millimetres with the origin at the cabinet
// interior's bottom-left corner, X running right and Y running up.
// Intermediate sizes stay fractional; rounding is deferred to final part
// geometry so error never compounds across recursion levels.
package layout

// Rect is an axis-aligned rectangle in cabinet interior coordinates.
// X/Y address the bottom-left corner.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Right returns the X coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Top returns the Y coordinate of the top edge.
func (r Rect) Top() float64 { return r.Y + r.Height }

// CenterX returns the horizontal center point.
func (r Rect) CenterX() float64 { return r.X + r.Width/2 }

// CenterY returns the vertical center point.
func (r Rect) CenterY() float64 { return r.Y + r.Height/2 }

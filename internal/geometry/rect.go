// Package geometry turns a module grid into merged, corner-rounded path data:
// rectangle extraction, connectivity grouping and path unification.
package geometry

import "github.com/veaveberg/qreate/internal/vector"

// Rect is an axis-aligned filled block in document units.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// PathData returns the plain closed outline of r.
func (r Rect) PathData() string {
	return "M" + vector.Num(r.X) + "," + vector.Num(r.Y) +
		"h" + vector.Num(r.Width) +
		"v" + vector.Num(r.Height) +
		"h" + vector.Num(-r.Width) + "z"
}

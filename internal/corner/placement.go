// Package corner places the decorative glyphs that replace the three finder
// patterns.
package corner

import (
	"fmt"

	"github.com/veaveberg/qreate/internal/qr"
	"github.com/veaveberg/qreate/internal/vector"
)

// ViewBox is the side of the document's logical coordinate space.
const ViewBox = 500

// DefaultFinderSize is used before any symbol has been placed.
const DefaultFinderSize = 145

// Corner identifies one of the three finder pattern corners.
type Corner int

const (
	TopLeft Corner = iota
	TopRight
	BottomLeft
)

// Corners lists the corners in drawing order.
var Corners = []Corner{TopLeft, TopRight, BottomLeft}

func (c Corner) String() string {
	switch c {
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	case BottomLeft:
		return "bottom-left"
	}
	return fmt.Sprintf("corner(%d)", int(c))
}

// Placement holds the finder pattern footprint and the glyph anchors for one
// symbol size. All values are rounded to 3 decimals.
type Placement struct {
	FinderSize float64                 `json:"finderPatternSize"`
	Scale      float64                 `json:"scale"`
	Anchors    map[Corner]vector.Point `json:"-"`
}

// NewPlacement computes the placement for an n-module symbol drawn into a
// viewBox-sized square.
func NewPlacement(n int, viewBox float64) Placement {
	return placementFor(viewBox/float64(n)*qr.FinderSize, viewBox)
}

// DefaultPlacement is the placement used while no symbol is available.
func DefaultPlacement() Placement {
	return placementFor(DefaultFinderSize, ViewBox)
}

func placementFor(finder, viewBox float64) Placement {
	half := finder / 2
	r := vector.Round3
	return Placement{
		FinderSize: r(finder),
		Scale:      r(finder / DesignWidth),
		Anchors: map[Corner]vector.Point{
			TopLeft:    vector.Pt(r(half), r(half)),
			TopRight:   vector.Pt(r(viewBox-half), r(half)),
			BottomLeft: vector.Pt(r(half), r(viewBox-half)),
		},
	}
}

// Transform returns the SVG transform that puts the glyph for c centred on
// its anchor: translate to the anchor, rotate, scale, then shift the glyph's
// own centre onto the origin.
func (p Placement) Transform(c Corner) string {
	a := p.Anchors[c]
	h := vector.Num(DesignWidth / 2.0)
	return fmt.Sprintf("translate(%s, %s) rotate(%s) scale(%s) translate(-%s, -%s)",
		vector.Num(a.X), vector.Num(a.Y), vector.Num(GlyphFor(c).Rotation), vector.Num(p.Scale), h, h)
}

// Matrix is the same composition as Transform, as an affine matrix.
func (p Placement) Matrix(c Corner) Matrix {
	a := p.Anchors[c]
	h := vector.Round3(DesignWidth / 2.0)
	return Translate(a.X, a.Y).
		Multiply(Rotate(GlyphFor(c).Rotation)).
		Multiply(Scale(p.Scale)).
		Multiply(Translate(-h, -h))
}

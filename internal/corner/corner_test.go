package corner

import (
	"math"
	"testing"
)

func TestNewPlacement(t *testing.T) {
	p := NewPlacement(21, ViewBox)
	if p.FinderSize != 166.667 {
		t.Errorf("expected finder size 166.667, got %v", p.FinderSize)
	}
	if p.Scale != 0.68 {
		t.Errorf("expected scale 0.68, got %v", p.Scale)
	}

	want := map[Corner][2]float64{
		TopLeft:    {83.333, 83.333},
		TopRight:   {416.667, 83.333},
		BottomLeft: {83.333, 416.667},
	}
	for c, w := range want {
		a := p.Anchors[c]
		if a.X != w[0] || a.Y != w[1] {
			t.Errorf("%s: expected anchor (%v, %v), got (%v, %v)", c, w[0], w[1], a.X, a.Y)
		}
	}
}

func TestDefaultPlacement(t *testing.T) {
	p := DefaultPlacement()
	if p.FinderSize != 145 || p.Scale != 0.592 {
		t.Errorf("expected finder 145 and scale 0.592, got %v and %v", p.FinderSize, p.Scale)
	}
	if a := p.Anchors[TopRight]; a.X != 427.5 || a.Y != 72.5 {
		t.Errorf("expected top-right anchor (427.5, 72.5), got (%v, %v)", a.X, a.Y)
	}
}

func TestTransform(t *testing.T) {
	p := NewPlacement(21, ViewBox)
	tests := []struct {
		corner Corner
		want   string
	}{
		{TopLeft, "translate(83.333, 83.333) rotate(90) scale(0.68) translate(-122.5, -122.5)"},
		{TopRight, "translate(416.667, 83.333) rotate(180) scale(0.68) translate(-122.5, -122.5)"},
		{BottomLeft, "translate(83.333, 416.667) rotate(0) scale(0.68) translate(-122.5, -122.5)"},
	}
	for _, tt := range tests {
		t.Run(tt.corner.String(), func(t *testing.T) {
			if got := p.Transform(tt.corner); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestMatrixCoversFinderPattern(t *testing.T) {
	p := NewPlacement(25, ViewBox)
	f := p.FinderSize
	boxes := map[Corner][4]float64{
		TopLeft:    {0, 0, f, f},
		TopRight:   {ViewBox - f, 0, ViewBox, f},
		BottomLeft: {0, ViewBox - f, f, ViewBox},
	}
	const tol = 0.2
	for _, c := range Corners {
		m := p.Matrix(c)
		x, y := m.Apply(DesignWidth/2.0, DesignWidth/2.0)
		if a := p.Anchors[c]; math.Abs(x-a.X) > 1e-9 || math.Abs(y-a.Y) > 1e-9 {
			t.Errorf("%s: expected glyph centre on anchor (%v, %v), got (%v, %v)", c, a.X, a.Y, x, y)
		}
		box := boxes[c]
		for _, pt := range [][2]float64{{0, 0}, {DesignWidth, 0}, {DesignWidth, DesignWidth}, {0, DesignWidth}} {
			x, y := m.Apply(pt[0], pt[1])
			if x < box[0]-tol || x > box[2]+tol || y < box[1]-tol || y > box[3]+tol {
				t.Errorf("%s: glyph corner %v maps to (%v, %v), outside %v", c, pt, x, y, box)
			}
		}
	}
}

func TestGlyphFor(t *testing.T) {
	for _, c := range Corners {
		g := GlyphFor(c)
		if len(g.Paths) != 2 {
			t.Errorf("%s: expected 2 sub-paths, got %d", c, len(g.Paths))
		}
	}
	if GlyphFor(TopLeft).Rotation != 90 || GlyphFor(TopRight).Rotation != 180 || GlyphFor(BottomLeft).Rotation != 0 {
		t.Error("unexpected rotation table")
	}
}

func TestMatrixSVG(t *testing.T) {
	p := NewPlacement(21, ViewBox)
	if got, want := p.Matrix(TopLeft).SVG(), "matrix(0 0.68 -0.68 0 166.633 0.033)"; got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
	if got, want := p.Matrix(BottomLeft).SVG(), "matrix(0.68 0 0 0.68 0.033 333.367)"; got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

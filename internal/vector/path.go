package vector

import (
	"errors"
	"math"
)

// ErrCurved is returned when a boolean operation is asked to combine a path
// whose corners have already been rounded.
var ErrCurved = errors.New("vector: boolean operations need straight-edged paths")

// ErrDetached is returned when neither operand of a boolean operation belongs
// to a scope any more.
var ErrDetached = errors.New("vector: path is not attached to a scope")

// Point is a location in the document's logical coordinate space.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Add(q Point) Point   { return Point{X: p.X + q.X, Y: p.Y + q.Y} }
func (p Point) Sub(q Point) Point   { return Point{X: p.X - q.X, Y: p.Y - q.Y} }
func (p Point) Mul(f float64) Point { return Point{X: p.X * f, Y: p.Y * f} }
func (p Point) Len() float64        { return math.Hypot(p.X, p.Y) }

func (p Point) Near(q Point, eps float64) bool {
	return math.Abs(p.X-q.X) <= eps && math.Abs(p.Y-q.Y) <= eps
}

// Segment is one piece of a contour, ending at To. A zero Radius means a
// straight line; otherwise the segment is a circular arc of that radius,
// drawn clockwise (in y-down coordinates) when Sweep is set.
type Segment struct {
	To     Point
	Radius float64
	Sweep  bool
}

// IsArc reports whether the segment is a circular arc.
func (s Segment) IsArc() bool {
	return s.Radius > 0
}

// Contour is a closed sub-path. The closing line from the last segment's end
// point back to Start is implied.
type Contour struct {
	Start    Point
	Segments []Segment
}

// Polygon builds a straight-edged contour through pts.
func Polygon(pts []Point) Contour {
	if len(pts) == 0 {
		return Contour{}
	}
	c := Contour{Start: pts[0], Segments: make([]Segment, 0, len(pts)-1)}
	for _, p := range pts[1:] {
		c.Segments = append(c.Segments, Segment{To: p})
	}
	return c
}

// Vertices returns Start followed by every segment end point.
func (c Contour) Vertices() []Point {
	pts := make([]Point, 0, len(c.Segments)+1)
	pts = append(pts, c.Start)
	for _, s := range c.Segments {
		pts = append(pts, s.To)
	}
	return pts
}

// IsCurved reports whether any segment of the contour is an arc.
func (c Contour) IsCurved() bool {
	for _, s := range c.Segments {
		if s.IsArc() {
			return true
		}
	}
	return false
}

// Path is a path item living in a Scope. A path is either a primitive (a
// rectangle), the union of two other paths, or a path whose contours were
// replaced by corner rounding.
type Path struct {
	scope *Scope

	// primitive operands, set for rectangles
	operand []Contour
	// union operands, resolved lazily
	left, right *Path

	contours []Contour
	resolved bool
	curved   bool
}

// Contours returns the closed sub-paths of p. For a union the outline is
// computed on first use.
func (p *Path) Contours() []Contour {
	if !p.resolved {
		p.contours = unionContours(p.operands())
		p.resolved = true
	}
	return p.contours
}

// IsCompound reports whether p consists of more than one contour.
func (p *Path) IsCompound() bool {
	return len(p.Contours()) > 1
}

// Unite returns a new path covering the area of p and other. Both operands
// stay registered in the scope until removed.
func (p *Path) Unite(other *Path) (*Path, error) {
	if p.curved || other.curved {
		return nil, ErrCurved
	}
	s := p.scope
	if s == nil {
		s = other.scope
	}
	if s == nil {
		return nil, ErrDetached
	}
	return s.add(&Path{left: p, right: other}), nil
}

// RoundCorners replaces every vertex of every contour with a tangent arc of
// the given radius. Non-positive radii leave the path untouched.
func (p *Path) RoundCorners(radius float64) {
	if radius <= 0 {
		return
	}
	cs := p.Contours()
	rounded := make([]Contour, 0, len(cs))
	for _, c := range cs {
		if len(c.Segments) == 0 {
			rounded = append(rounded, c)
			continue
		}
		rounded = append(rounded, RoundContour(c, radius))
	}
	p.contours = rounded
	p.curved = true
	p.left, p.right, p.operand = nil, nil, nil
}

// Remove detaches p from its scope.
func (p *Path) Remove() {
	if p.scope != nil {
		p.scope.remove(p)
	}
}

// operands flattens the union tree into the list of primitive outlines.
func (p *Path) operands() [][]Contour {
	var ops [][]Contour
	stack := []*Path{p}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch {
		case n.operand != nil:
			ops = append(ops, n.operand)
		case n.resolved:
			ops = append(ops, n.contours)
		case n.left != nil:
			// right first so the left operand is visited first
			stack = append(stack, n.right, n.left)
		}
	}
	return ops
}

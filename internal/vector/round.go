package vector

import "math"

// RoundContour replaces each vertex of a straight-edged contour with a
// circular arc of the given radius, tangent to both incident edges. The
// radius is not reduced on short edges, so large radii may overshoot.
func RoundContour(c Contour, radius float64) Contour {
	pts := c.Vertices()
	n := len(pts)
	if n < 3 || radius <= 0 {
		return c
	}

	type corner struct {
		in, out Point
		arc     bool
		sweep   bool
	}
	corners := make([]corner, n)
	for k := range pts {
		prev, cur, next := pts[(k+n-1)%n], pts[k], pts[(k+1)%n]
		dIn, dOut := unit(cur.Sub(prev)), unit(next.Sub(cur))
		cross := dIn.X*dOut.Y - dIn.Y*dOut.X
		dot := dIn.X*dOut.X + dIn.Y*dOut.Y
		turn := math.Atan2(math.Abs(cross), dot)
		if turn < 1e-9 || math.Pi-turn < 1e-9 {
			corners[k] = corner{in: cur, out: cur}
			continue
		}
		t := radius * math.Tan(turn/2)
		corners[k] = corner{
			in:    cur.Sub(dIn.Mul(t)),
			out:   cur.Add(dOut.Mul(t)),
			arc:   true,
			sweep: cross > 0,
		}
	}

	out := Contour{Start: corners[0].out}
	emit := func(k int) {
		cr := corners[k]
		out.Segments = append(out.Segments, Segment{To: cr.in})
		if cr.arc {
			out.Segments = append(out.Segments, Segment{To: cr.out, Radius: radius, Sweep: cr.sweep})
		}
	}
	for k := 1; k < n; k++ {
		emit(k)
	}
	emit(0)
	return out
}

func unit(p Point) Point {
	l := p.Len()
	if l == 0 {
		return Point{}
	}
	return p.Mul(1 / l)
}

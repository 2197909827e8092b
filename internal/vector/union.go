package vector

import (
	"math"
	"sort"
)

// coordEps merges coordinates that differ only by float noise. Inputs are
// rounded to 3 decimals, so anything closer than this is the same value.
const coordEps = 1e-6

// Edge directions in y-down coordinates, listed clockwise.
const (
	dirEast = iota
	dirSouth
	dirWest
	dirNorth
)

var dirStep = [4][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

// unionContours computes the outline of the union of straight-edged,
// axis-aligned operands. Each operand is filled with the even-odd rule.
// Outer boundaries come out clockwise, holes counter-clockwise; contours that
// only touch at a corner are kept apart.
func unionContours(operands [][]Contour) []Contour {
	xs, ys := gridLines(operands)
	if len(xs) < 2 || len(ys) < 2 {
		return nil
	}
	cov := newCoverage(len(xs)-1, len(ys)-1)
	for _, op := range operands {
		cov.fill(op, xs, ys)
	}
	return cov.trace(xs, ys)
}

func gridLines(operands [][]Contour) (xs, ys []float64) {
	for _, op := range operands {
		for _, c := range op {
			for _, p := range c.Vertices() {
				xs = append(xs, p.X)
				ys = append(ys, p.Y)
			}
		}
	}
	return dedupe(xs), dedupe(ys)
}

func dedupe(vals []float64) []float64 {
	if len(vals) == 0 {
		return nil
	}
	sort.Float64s(vals)
	out := vals[:1]
	for _, v := range vals[1:] {
		if v-out[len(out)-1] > coordEps {
			out = append(out, v)
		}
	}
	return out
}

// indexOf returns the grid line matching v.
func indexOf(lines []float64, v float64) int {
	return sort.Search(len(lines), func(i int) bool { return lines[i] >= v-coordEps })
}

type coverage struct {
	w, h  int
	cells []bool
}

func newCoverage(w, h int) *coverage {
	return &coverage{w: w, h: h, cells: make([]bool, w*h)}
}

func (c *coverage) at(i, j int) bool {
	if i < 0 || j < 0 || i >= c.w || j >= c.h {
		return false
	}
	return c.cells[j*c.w+i]
}

type vEdge struct {
	x      int
	y0, y1 int
}

// fill marks every cell inside op. Only vertical edges matter for a
// horizontal scanline through cell centres.
func (c *coverage) fill(op []Contour, xs, ys []float64) {
	var edges []vEdge
	minY, maxY := math.MaxInt, -1
	for _, ct := range op {
		pts := ct.Vertices()
		for k := range pts {
			a, b := pts[k], pts[(k+1)%len(pts)]
			if math.Abs(a.X-b.X) > coordEps {
				continue
			}
			y0, y1 := indexOf(ys, a.Y), indexOf(ys, b.Y)
			if y0 == y1 {
				continue
			}
			if y0 > y1 {
				y0, y1 = y1, y0
			}
			edges = append(edges, vEdge{x: indexOf(xs, a.X), y0: y0, y1: y1})
			minY, maxY = min(minY, y0), max(maxY, y1)
		}
	}

	var crossings []int
	for j := minY; j < maxY; j++ {
		crossings = crossings[:0]
		for _, e := range edges {
			if e.y0 <= j && j < e.y1 {
				crossings = append(crossings, e.x)
			}
		}
		sort.Ints(crossings)
		for k := 0; k+1 < len(crossings); k += 2 {
			for i := crossings[k]; i < crossings[k+1]; i++ {
				c.cells[j*c.w+i] = true
			}
		}
	}
}

// trace walks the boundary between covered and uncovered cells. Boundary
// edges are directed so the covered side is on the right.
func (c *coverage) trace(xs, ys []float64) []Contour {
	vw := c.w + 1
	vid := func(i, j int) int { return j*vw + i }
	out := make([][4]bool, vw*(c.h+1))

	for j := 0; j < c.h; j++ {
		for i := 0; i < c.w; i++ {
			if !c.at(i, j) {
				continue
			}
			if !c.at(i, j-1) {
				out[vid(i, j)][dirEast] = true
			}
			if !c.at(i+1, j) {
				out[vid(i+1, j)][dirSouth] = true
			}
			if !c.at(i, j+1) {
				out[vid(i+1, j+1)][dirWest] = true
			}
			if !c.at(i-1, j) {
				out[vid(i, j+1)][dirNorth] = true
			}
		}
	}

	var contours []Contour
	for j := 0; j <= c.h; j++ {
		for i := 0; i <= c.w; i++ {
			for d := dirEast; d <= dirNorth; d++ {
				if !out[vid(i, j)][d] {
					continue
				}
				loop := walk(out, vw, i, j, d)
				contours = append(contours, loopContour(loop, xs, ys))
			}
		}
	}
	return contours
}

type step struct {
	i, j, dir int
}

// walk follows boundary edges from (i, j) heading d until the loop closes.
// At a vertex with two outgoing edges the rightmost turn wins, which keeps
// regions that only share a corner in separate loops.
func walk(out [][4]bool, vw, i, j, d int) []step {
	si, sj, sd := i, j, d
	var loop []step
	for {
		out[j*vw+i][d] = false
		loop = append(loop, step{i: i, j: j, dir: d})
		i += dirStep[d][0]
		j += dirStep[d][1]

		next := -1
		for _, turn := range [3]int{1, 0, 3} {
			nd := (d + turn) % 4
			if out[j*vw+i][nd] || (i == si && j == sj && nd == sd) {
				next = nd
				break
			}
		}
		if next < 0 || (i == si && j == sj && next == sd) {
			return loop
		}
		d = next
	}
}

// loopContour keeps only the corners of a loop and starts it at the first one.
func loopContour(loop []step, xs, ys []float64) Contour {
	n := len(loop)
	var corners []Point
	for k := 0; k < n; k++ {
		prev := loop[(k+n-1)%n].dir
		if prev != loop[k].dir {
			corners = append(corners, Pt(xs[loop[k].i], ys[loop[k].j]))
		}
	}
	return Polygon(corners)
}

package vector

import (
	"math"
	"strconv"
	"strings"
)

// Round3 rounds v to 3 decimal places, halves rounding up.
func Round3(v float64) float64 {
	return math.Floor(v*1000+0.5) / 1000
}

// Num formats v for path data: 3 decimals at most, no trailing zeros.
func Num(v float64) string {
	v = Round3(v)
	if v == 0 {
		v = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// PathData serializes the contour as an absolute move followed by relative
// commands and a close.
func (c Contour) PathData() string {
	var b strings.Builder
	c.writePathData(&b)
	return b.String()
}

func (c Contour) writePathData(b *strings.Builder) {
	b.WriteString("M")
	b.WriteString(Num(c.Start.X))
	b.WriteString(",")
	b.WriteString(Num(c.Start.Y))

	cur := c.Start
	for k, s := range c.Segments {
		dx := Round3(s.To.X) - Round3(cur.X)
		dy := Round3(s.To.Y) - Round3(cur.Y)
		zero := Num(dx) == "0" && Num(dy) == "0"
		switch {
		case s.IsArc():
			b.WriteString("a")
			b.WriteString(Num(s.Radius))
			b.WriteString(",")
			b.WriteString(Num(s.Radius))
			b.WriteString(" 0 0,")
			if s.Sweep {
				b.WriteString("1 ")
			} else {
				b.WriteString("0 ")
			}
			b.WriteString(Num(dx))
			b.WriteString(",")
			b.WriteString(Num(dy))
		case zero:
		case k == len(c.Segments)-1 && s.To.Near(c.Start, coordEps):
			// the close command draws this line
		case Num(dy) == "0":
			b.WriteString("h")
			b.WriteString(Num(dx))
		case Num(dx) == "0":
			b.WriteString("v")
			b.WriteString(Num(dy))
		default:
			b.WriteString("l")
			b.WriteString(Num(dx))
			b.WriteString(",")
			b.WriteString(Num(dy))
		}
		cur = s.To
	}
	b.WriteString("z")
}

// PathData serializes all contours of p back to back.
func (p *Path) PathData() string {
	var b strings.Builder
	for _, c := range p.Contours() {
		c.writePathData(&b)
	}
	return b.String()
}

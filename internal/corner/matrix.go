package corner

import (
	"fmt"
	"math"

	"github.com/veaveberg/qreate/internal/vector"
)

// Matrix is a 2D affine transform:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

func Translate(x, y float64) Matrix {
	return Matrix{A: 1, C: x, E: 1, F: y}
}

func Scale(s float64) Matrix {
	return Matrix{A: s, E: s}
}

// Rotate returns a rotation by deg degrees, clockwise in y-down coordinates.
func Rotate(deg float64) Matrix {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	return Matrix{A: cos, B: -sin, D: sin, E: cos}
}

// Multiply returns m * o, which applies o first.
func (m Matrix) Multiply(o Matrix) Matrix {
	return Matrix{
		A: m.A*o.A + m.B*o.D,
		B: m.A*o.B + m.B*o.E,
		C: m.A*o.C + m.B*o.F + m.C,
		D: m.D*o.A + m.E*o.D,
		E: m.D*o.B + m.E*o.E,
		F: m.D*o.C + m.E*o.F + m.F,
	}
}

// Apply transforms the point (x, y).
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return m.A*x + m.B*y + m.C, m.D*x + m.E*y + m.F
}

// SVG formats m as an SVG matrix() transform.
func (m Matrix) SVG() string {
	n := vector.Num
	return fmt.Sprintf("matrix(%s %s %s %s %s %s)", n(m.A), n(m.D), n(m.B), n(m.E), n(m.C), n(m.F))
}

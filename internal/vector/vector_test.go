package vector

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func unite(t *testing.T, s *Scope, paths ...*Path) *Path {
	t.Helper()
	combined := paths[0]
	for _, p := range paths[1:] {
		next, err := combined.Unite(p)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		combined = next
	}
	return combined
}

func TestRectPathData(t *testing.T) {
	s := NewScope()
	got := s.Rect(0, 0, 10, 10).PathData()
	if got != "M0,0h10v10h-10z" {
		t.Errorf("expected M0,0h10v10h-10z, got %s", got)
	}
}

func TestUnite(t *testing.T) {
	tests := []struct {
		name  string
		rects [][4]float64
		want  string
	}{
		{
			name:  "side by side",
			rects: [][4]float64{{0, 0, 10, 10}, {10, 0, 10, 10}},
			want:  "M0,0h20v10h-20z",
		},
		{
			name:  "overlapping",
			rects: [][4]float64{{0, 0, 20, 10}, {10, 0, 20, 10}},
			want:  "M0,0h30v10h-30z",
		},
		{
			name:  "stacked",
			rects: [][4]float64{{0, 0, 10, 10}, {0, 10, 10, 10}},
			want:  "M0,0h10v20h-10z",
		},
		{
			name:  "ring with hole",
			rects: [][4]float64{{0, 0, 30, 10}, {0, 10, 10, 10}, {20, 10, 10, 10}, {0, 20, 30, 10}},
			want:  "M0,0h30v30h-30zM10,10v10h10v-10z",
		},
		{
			name:  "corner touch",
			rects: [][4]float64{{0, 0, 10, 10}, {10, 10, 10, 10}},
			want:  "M0,0h10v10h-10zM10,10h10v10h-10z",
		},
		{
			name:  "fractional module size",
			rects: [][4]float64{{0, 0, 23.81, 23.81}, {23.81, 0, 23.81, 47.619}},
			want:  "M0,0h47.62v47.619h-23.81v-23.809h-23.81z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScope()
			var paths []*Path
			for _, r := range tt.rects {
				paths = append(paths, s.Rect(r[0], r[1], r[2], r[3]))
			}
			got := unite(t, s, paths...).PathData()
			if got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestUniteCompound(t *testing.T) {
	s := NewScope()
	single := unite(t, s, s.Rect(0, 0, 10, 10), s.Rect(10, 0, 10, 10))
	if single.IsCompound() {
		t.Error("expected a single contour")
	}
	pinched := unite(t, s, s.Rect(0, 0, 10, 10), s.Rect(10, 10, 10, 10))
	if !pinched.IsCompound() {
		t.Error("expected a compound path")
	}
}

func TestUniteCurved(t *testing.T) {
	s := NewScope()
	a := s.Rect(0, 0, 10, 10)
	a.RoundCorners(2)
	if _, err := a.Unite(s.Rect(10, 0, 10, 10)); !errors.Is(err, ErrCurved) {
		t.Errorf("expected ErrCurved, got %v", err)
	}
}

func TestRoundCorners(t *testing.T) {
	s := NewScope()
	p := s.Rect(0, 0, 10, 10)
	p.RoundCorners(2)
	want := "M2,0h6a2,2 0 0,1 2,2v6a2,2 0 0,1 -2,2h-6a2,2 0 0,1 -2,-2v-6a2,2 0 0,1 2,-2z"
	if got := p.PathData(); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestRoundCornersZeroRadius(t *testing.T) {
	s := NewScope()
	p := s.Rect(0, 0, 10, 10)
	p.RoundCorners(0)
	got := p.PathData()
	if strings.ContainsAny(got, "aAcC") {
		t.Errorf("expected no curves, got %s", got)
	}
}

func TestRoundCornersConcave(t *testing.T) {
	// L shape: five convex corners, one concave
	s := NewScope()
	p := unite(t, s, s.Rect(0, 0, 20, 10), s.Rect(0, 10, 10, 10))
	p.RoundCorners(2)
	got := p.PathData()
	if n := strings.Count(got, "0 0,1"); n != 5 {
		t.Errorf("expected 5 clockwise arcs, got %d in %s", n, got)
	}
	if n := strings.Count(got, "0 0,0"); n != 1 {
		t.Errorf("expected 1 counter-clockwise arc, got %d in %s", n, got)
	}
}

func TestNum(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{-0.0001, "0"},
		{10, "10"},
		{23.8095238, "23.81"},
		{166.6666667, "166.667"},
		{0.1 + 0.2, "0.3"},
		{-4.5, "-4.5"},
	}
	for _, tt := range tests {
		if got := Num(tt.in); got != tt.want {
			t.Errorf("Num(%v): expected %s, got %s", tt.in, tt.want, got)
		}
	}
}

func TestScopeLifecycle(t *testing.T) {
	s := NewScope()
	release, err := s.Acquire(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a := s.Rect(0, 0, 1, 1)
	b := s.Rect(1, 0, 1, 1)
	if _, err := a.Unite(b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Len() != 3 {
		t.Errorf("expected 3 items, got %d", s.Len())
	}
	a.Remove()
	if s.Len() != 2 {
		t.Errorf("expected 2 items after remove, got %d", s.Len())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if _, err := s.Acquire(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline exceeded while held, got %v", err)
	}

	release()
	release()
	if s.Len() != 0 {
		t.Errorf("expected empty scope after release, got %d", s.Len())
	}

	release2, err := s.Acquire(context.Background())
	if err != nil {
		t.Fatalf("expected scope to be free again: %v", err)
	}
	release2()
}

func TestUniteDetached(t *testing.T) {
	s := NewScope()
	a := s.Rect(0, 0, 1, 1)
	b := s.Rect(1, 0, 1, 1)
	s.Clear()
	if _, err := a.Unite(b); !errors.Is(err, ErrDetached) {
		t.Errorf("expected ErrDetached, got %v", err)
	}
}

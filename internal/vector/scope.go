package vector

import "context"

// Scope is a temporary drawing context. Every path created through it stays
// registered until it is removed or the scope is cleared. A scope is used by
// one holder at a time; see Acquire.
type Scope struct {
	sem   chan struct{}
	items map[*Path]struct{}
}

// NewScope returns an empty scope.
func NewScope() *Scope {
	return &Scope{
		sem:   make(chan struct{}, 1),
		items: make(map[*Path]struct{}),
	}
}

// Acquire waits until the scope is free, clears it and hands it to the
// caller. The returned release function clears the scope again and frees it.
// Acquire must not be called again by the holder before release.
func (s *Scope) Acquire(ctx context.Context) (release func(), err error) {
	select {
	case s.sem <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	s.Clear()

	released := false
	return func() {
		if released {
			return
		}
		released = true
		s.Clear()
		<-s.sem
	}, nil
}

// Rect creates a rectangle path with its top-left corner at (x, y).
func (s *Scope) Rect(x, y, w, h float64) *Path {
	c := Polygon([]Point{
		Pt(x, y),
		Pt(x+w, y),
		Pt(x+w, y+h),
		Pt(x, y+h),
	})
	return s.add(&Path{
		operand:  []Contour{c},
		contours: []Contour{c},
		resolved: true,
	})
}

// Len returns the number of paths currently registered.
func (s *Scope) Len() int {
	return len(s.items)
}

// Clear removes every registered path.
func (s *Scope) Clear() {
	for p := range s.items {
		p.scope = nil
	}
	clear(s.items)
}

func (s *Scope) add(p *Path) *Path {
	p.scope = s
	s.items[p] = struct{}{}
	return p
}

func (s *Scope) remove(p *Path) {
	delete(s.items, p)
	p.scope = nil
}

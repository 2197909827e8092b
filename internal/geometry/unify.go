package geometry

import (
	"context"
	"strings"

	"github.com/veaveberg/qreate/internal/vector"
	"github.com/veaveberg/qreate/pkg/log"
)

// Unify merges every group into one outline, rounds its corners by radius
// and joins the resulting path data with spaces.
//
// The scope is held for the whole call and cleared after each group, so no
// path outlives the call. With a nil scope the groups are emitted as plain
// rectangles instead, unmerged and unrounded.
func Unify(ctx context.Context, scope *vector.Scope, groups []Group, radius float64) (string, error) {
	if len(groups) == 0 {
		return "", nil
	}
	if scope == nil {
		log.Warn(log.Fields{"groups": len(groups)}, "[geometry.Unify] no drawing scope, emitting plain rectangles")
		var rects []Rect
		for _, g := range groups {
			rects = append(rects, g...)
		}
		return FallbackPathData(rects), nil
	}

	release, err := scope.Acquire(ctx)
	if err != nil {
		return "", err
	}
	defer release()

	parts := make([]string, 0, len(groups))
	for _, g := range groups {
		if len(g) == 0 {
			continue
		}
		if err := ctx.Err(); err != nil {
			return "", err
		}
		d, err := unifyGroup(scope, g, radius)
		if err != nil {
			log.Warn(log.Fields{"error": err.Error(), "rects": len(g)}, "[geometry.Unify] union failed, emitting plain rectangles")
			d = FallbackPathData(g)
		}
		parts = append(parts, d)
	}
	return strings.Join(parts, " "), nil
}

// unifyGroup builds the outline of a single group. Every path it creates is
// gone from the scope when it returns.
func unifyGroup(scope *vector.Scope, g Group, radius float64) (string, error) {
	defer scope.Clear()

	if len(g) == 1 {
		r := g[0]
		p := scope.Rect(r.X, r.Y, r.Width, r.Height)
		p.RoundCorners(radius)
		return p.PathData(), nil
	}

	var combined *vector.Path
	for _, r := range g {
		p := scope.Rect(r.X, r.Y, r.Width, r.Height)
		if combined == nil {
			combined = p
			continue
		}
		next, err := combined.Unite(p)
		if err != nil {
			return "", err
		}
		combined.Remove()
		p.Remove()
		combined = next
	}
	combined.RoundCorners(radius)
	return combined.PathData(), nil
}

// FallbackPathData emits one plain closed rectangle per rect, space-joined.
func FallbackPathData(rects []Rect) string {
	parts := make([]string, len(rects))
	for i, r := range rects {
		parts[i] = r.PathData()
	}
	return strings.Join(parts, " ")
}

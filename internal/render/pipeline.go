// Package render runs the full generation pass, text in and document out,
// and keeps the latest result for callers that re-render on every change.
package render

import (
	"context"
	"fmt"
	"time"

	"github.com/veaveberg/qreate/internal/corner"
	"github.com/veaveberg/qreate/internal/geometry"
	"github.com/veaveberg/qreate/internal/qr"
	"github.com/veaveberg/qreate/internal/vector"
	"github.com/veaveberg/qreate/pkg/log"
)

// DefaultRadius is the corner rounding radius used when none is given.
const DefaultRadius = 10

// Input is everything a generation pass depends on.
type Input struct {
	Text   string
	Radius float64
}

// Pipeline turns an Input into a Document. It is safe for concurrent use;
// the geometry work of concurrent calls is serialized on the shared scope.
type Pipeline struct {
	encoder qr.Encoder
	scope   *vector.Scope
}

// NewPipeline returns a pipeline using enc and scope. A nil scope makes every
// document fall back to plain, unrounded rectangles.
func NewPipeline(enc qr.Encoder, scope *vector.Scope) *Pipeline {
	return &Pipeline{encoder: enc, scope: scope}
}

// Generate encodes in.Text and builds the document for it. Log entries carry
// the request ID found in ctx.
func (p *Pipeline) Generate(ctx context.Context, in Input) (*Document, error) {
	start := time.Now()

	grid, err := p.encoder.Encode(ctx, in.Text)
	if err != nil {
		log.WithRequestID(ctx).WithFields(log.Fields{
			"error":       err.Error(),
			"text_length": len(in.Text),
		}).Warn("[render.Generate] encoding failed")
		return nil, err
	}

	n := grid.Size()
	if n == 0 {
		return nil, fmt.Errorf("%w: empty symbol", qr.ErrEncode)
	}
	radius := in.Radius
	if radius < 0 {
		radius = 0
	}

	moduleSize := float64(corner.ViewBox) / float64(n)
	rects := geometry.ExtractRects(qr.MaskFinderPatterns(grid), moduleSize)
	groups := geometry.GroupConnected(rects)
	d, err := geometry.Unify(ctx, p.scope, groups, radius)
	if err != nil {
		return nil, fmt.Errorf("unify: %w", err)
	}

	log.WithRequestID(ctx).WithFields(log.Fields{
		"modules":     n,
		"rects":       len(rects),
		"groups":      len(groups),
		"radius":      radius,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Debug("[render.Generate] document ready")

	return &Document{
		Text:        in.Text,
		Radius:      radius,
		ModuleCount: n,
		ModulePath:  d,
		Placement:   corner.NewPlacement(n, corner.ViewBox),
		Rects:       rects,
		Groups:      groups,
	}, nil
}

package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/veaveberg/qreate/internal/corner"
	"github.com/veaveberg/qreate/internal/geometry"
)

const DefaultFill = "#000000"

// Style holds the colours of a document. An empty Background draws none.
type Style struct {
	Fill       string
	Background string
}

// Document is one rendered symbol: the merged module path plus the corner
// glyph placement.
type Document struct {
	Text        string
	Radius      float64
	ModuleCount int
	ModulePath  string
	Placement   corner.Placement
	Rects       []geometry.Rect
	Groups      []geometry.Group
	Style       Style
}

// WithStyle returns a copy of d drawn with s.
func (d *Document) WithStyle(s Style) *Document {
	cp := *d
	cp.Style = s
	return &cp
}

// EncodeOptions tweaks the svg element written by Encode.
type EncodeOptions struct {
	// XLink adds the xlink namespace declaration, for standalone files.
	XLink bool
	// MatrixTransforms writes the glyph placement as a single matrix(),
	// for renderers that misread a one-argument scale().
	MatrixTransforms bool
}

// SVG returns the svg element of d.
func (d *Document) SVG() string {
	var b strings.Builder
	_ = d.Encode(&b, EncodeOptions{})
	return b.String()
}

// Encode writes the svg element of d to w.
func (d *Document) Encode(w io.Writer, opts EncodeOptions) error {
	fill := d.Style.Fill
	if fill == "" {
		fill = DefaultFill
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf(`<svg width="%d" height="%d" viewBox="0 0 %d %d" xmlns="http://www.w3.org/2000/svg"`,
		corner.ViewBox, corner.ViewBox, corner.ViewBox, corner.ViewBox))
	if opts.XLink {
		b.WriteString(` xmlns:xlink="http://www.w3.org/1999/xlink"`)
	}
	b.WriteString(` class="custom-qr-svg">`)

	if d.Style.Background != "" {
		b.WriteString(fmt.Sprintf(`<rect width="%d" height="%d" fill="%s"/>`,
			corner.ViewBox, corner.ViewBox, d.Style.Background))
	}

	b.WriteString(fmt.Sprintf(`<path class="qr-modules-path" d="%s" fill="%s" fill-rule="evenodd" shape-rendering="auto"/>`,
		d.ModulePath, fill))

	for _, c := range corner.Corners {
		transform := d.Placement.Transform(c)
		if opts.MatrixTransforms {
			transform = d.Placement.Matrix(c).SVG()
		}
		b.WriteString(fmt.Sprintf(`<g transform="%s" class="corner %s" fill="%s">`,
			transform, c, fill))
		for _, p := range corner.GlyphFor(c).Paths {
			b.WriteString(fmt.Sprintf(`<path d="%s"/>`, p))
		}
		b.WriteString(`</g>`)
	}
	b.WriteString(`</svg>`)

	_, err := io.WriteString(w, b.String())
	return err
}

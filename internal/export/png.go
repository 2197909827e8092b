package export

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/veaveberg/qreate/internal/render"
)

// RasterizePNG draws doc into a size×size image and writes it to w as PNG.
// Without a background style the image is transparent.
func RasterizePNG(w io.Writer, doc *render.Document, size int) error {
	if doc == nil {
		return ErrNothingToExport
	}
	if size <= 0 {
		return fmt.Errorf("export: invalid raster size %d", size)
	}
	// oksvg reads scale(s) as scale(s, 0)
	var svg strings.Builder
	if err := doc.Encode(&svg, render.EncodeOptions{MatrixTransforms: true}); err != nil {
		return err
	}

	icon, err := oksvg.ReadIconStream(strings.NewReader(svg.String()), oksvg.IgnoreErrorMode)
	if err != nil {
		return fmt.Errorf("export: parse svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.Transparent, image.Point{}, draw.Src)
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1)

	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("export: encode png: %w", err)
	}
	return nil
}

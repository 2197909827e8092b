package handlers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/veaveberg/qreate/internal/corner"
	"github.com/veaveberg/qreate/internal/export"
	"github.com/veaveberg/qreate/internal/geometry"
	"github.com/veaveberg/qreate/internal/middleware"
	"github.com/veaveberg/qreate/internal/qr"
	"github.com/veaveberg/qreate/internal/render"
	"github.com/veaveberg/qreate/pkg/log"
)

// qrQuery is shared by the document and geometry endpoints.
type qrQuery struct {
	Text     string   `form:"text" binding:"required"`
	Radius   *float64 `form:"radius" binding:"omitempty,gte=0,lte=250"`
	Format   string   `form:"format" binding:"omitempty,oneof=svg png"`
	Download bool     `form:"download"`
	Size     int      `form:"size" binding:"omitempty,gte=16,lte=4096"`
	FG       string   `form:"fg"`
	BG       string   `form:"bg"`
}

func (h *Handler) bindQuery(c *gin.Context) (qrQuery, bool) {
	var q qrQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return q, false
	}
	if len(q.Text) > h.cfg.MaxTextLen {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("text exceeds %d bytes", h.cfg.MaxTextLen)})
		return q, false
	}
	return q, true
}

func (h *Handler) radius(q qrQuery) float64 {
	if q.Radius == nil {
		return h.cfg.CornerRadius
	}
	return *q.Radius
}

// generate runs the pipeline and writes the error response on failure.
func (h *Handler) generate(c *gin.Context, q qrQuery) (*render.Document, bool) {
	doc, err := h.pipeline.Generate(c.Request.Context(), render.Input{Text: q.Text, Radius: h.radius(q)})
	if err == nil {
		return doc, true
	}

	switch {
	case errors.Is(err, qr.ErrEncode), errors.Is(err, qr.ErrEmptyInput):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, context.Canceled):
		c.Status(499)
	default:
		traceID := log.ErrorWithTraceID(log.Fields{
			log.RequestIDKey: middleware.GetRequestID(c),
			"error":          err.Error(),
		}, "[handlers.generate] pipeline failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create QR code", "trace_id": traceID})
	}
	return nil, false
}

// QRCodeHandler serves GET /api/qr: the rendered document as SVG (default)
// or PNG, inline or as a download.
func (h *Handler) QRCodeHandler(c *gin.Context) {
	q, ok := h.bindQuery(c)
	if !ok {
		return
	}
	doc, ok := h.generate(c, q)
	if !ok {
		return
	}
	doc = doc.WithStyle(render.Style{
		Fill:       parseColorParam(q.FG, render.DefaultFill),
		Background: parseColorParam(q.BG, ""),
	})

	format := q.Format
	if format == "" {
		format = "svg"
	}
	if q.Download {
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, export.Filename(q.Text, format)))
	}
	c.Header("Cache-Control", "public, max-age=3600")
	c.Header("X-QR-Debug", fmt.Sprintf("format=%s;modules=%d;rects=%d;groups=%d",
		format, doc.ModuleCount, len(doc.Rects), len(doc.Groups)))

	if format == "png" {
		size := q.Size
		if size == 0 {
			size = h.cfg.PNGSize
		}
		var buf bytes.Buffer
		if err := export.RasterizePNG(&buf, doc, size); err != nil {
			traceID := log.ErrorWithTraceID(log.Fields{
				log.RequestIDKey: middleware.GetRequestID(c),
				"error":          err.Error(),
			}, "[handlers.QRCodeHandler] rasterization failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate QR code image", "trace_id": traceID})
			return
		}
		c.Data(http.StatusOK, "image/png", buf.Bytes())
		return
	}

	svg, err := export.Standalone(doc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/svg+xml", []byte(svg))
}

type cornerJSON struct {
	Name      string  `json:"name"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Transform string  `json:"transform"`
}

type geometryJSON struct {
	Text        string           `json:"text"`
	Radius      float64          `json:"radius"`
	ModuleCount int              `json:"moduleCount"`
	Rects       []geometry.Rect  `json:"rects"`
	Groups      []geometry.Group `json:"groups"`
	Path        string           `json:"path"`
	Placement   corner.Placement `json:"placement"`
	Corners     []cornerJSON     `json:"corners"`
}

// GeometryHandler serves GET /api/qr/geometry, the intermediate results of
// the pipeline as JSON.
func (h *Handler) GeometryHandler(c *gin.Context) {
	q, ok := h.bindQuery(c)
	if !ok {
		return
	}
	doc, ok := h.generate(c, q)
	if !ok {
		return
	}

	out := geometryJSON{
		Text:        doc.Text,
		Radius:      doc.Radius,
		ModuleCount: doc.ModuleCount,
		Rects:       doc.Rects,
		Groups:      doc.Groups,
		Path:        doc.ModulePath,
		Placement:   doc.Placement,
	}
	if out.Rects == nil {
		out.Rects = []geometry.Rect{}
	}
	if out.Groups == nil {
		out.Groups = []geometry.Group{}
	}
	for _, cr := range corner.Corners {
		anchor := doc.Placement.Anchors[cr]
		out.Corners = append(out.Corners, cornerJSON{
			Name:      cr.String(),
			X:         anchor.X,
			Y:         anchor.Y,
			Transform: doc.Placement.Transform(cr),
		})
	}
	c.JSON(http.StatusOK, out)
}

// parseColorParam normalizes a hex colour parameter to "#rrggbb". The value
// "transparent" yields "", meaning nothing is drawn. Anything unparsable
// falls back to defaultColor.
func parseColorParam(param string, defaultColor string) string {
	if param == "" {
		return defaultColor
	}

	// Handle transparent
	if strings.ToLower(param) == "transparent" {
		return ""
	}

	// Remove # if present
	param = strings.TrimPrefix(param, "#")

	// Expand #rgb shorthand
	if len(param) == 3 {
		param = string([]byte{param[0], param[0], param[1], param[1], param[2], param[2]})
	}

	// Ensure it's 6 characters
	if len(param) != 6 {
		return defaultColor
	}

	if _, err := strconv.ParseUint(param, 16, 32); err != nil {
		return defaultColor
	}

	return "#" + strings.ToLower(param)
}

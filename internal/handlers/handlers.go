package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/veaveberg/qreate/internal/config"
	"github.com/veaveberg/qreate/internal/render"
)

// Handler holds the dependencies of the HTTP handlers.
type Handler struct {
	pipeline *render.Pipeline
	cfg      *config.Config
}

// New returns a new Handler instance.
func New(pipeline *render.Pipeline, cfg *config.Config) *Handler {
	return &Handler{pipeline: pipeline, cfg: cfg}
}

// Register mounts the handler routes on r.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/healthz", h.Healthz)

	api := r.Group("/api")
	api.GET("/qr", h.QRCodeHandler)
	api.GET("/qr/geometry", h.GeometryHandler)
}

// Healthz reports that the process is serving.
func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

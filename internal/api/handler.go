// Package api exposes the pipeline over HTTP.
package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"steam-gamedata/internal/errs"
	"steam-gamedata/internal/pipeline"
)

type Handler struct {
	Pipeline *pipeline.Pipeline
}

func NewHandler(p *pipeline.Pipeline) *Handler {
	return &Handler{Pipeline: p}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.health)
	r.GET("/getgamedata/:targetGame", h.getGameData)
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// getGameData runs the pipeline for the raw path parameter. The parameter
// is used exactly as received; names are case- and whitespace-sensitive.
func (h *Handler) getGameData(c *gin.Context) {
	targetGame := c.Param("targetGame")
	ctx := c.Request.Context()

	result, err := h.Pipeline.Run(ctx, targetGame)
	if err != nil {
		status := statusFor(err)
		slog.ErrorContext(ctx, "pipeline failed", "target", targetGame, "status", status, "err", err)
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	if result.Game != nil {
		c.JSON(http.StatusOK, result.Game)
		return
	}
	c.JSON(http.StatusOK, result.Catalog)
}

func statusFor(err error) int {
	var notFound *errs.GameNotFound
	if errors.As(err, &notFound) {
		return http.StatusNotFound
	}
	var fetch *errs.UpstreamFetch
	var malformed *errs.MalformedResponse
	if errors.As(err, &fetch) || errors.As(err, &malformed) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

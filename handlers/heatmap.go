package handlers

import (
	"context"
	"net/http"
	"time"

	"retail-analytics-api/models"
	"retail-analytics-api/services"

	"github.com/gin-gonic/gin"
)

type HeatmapHandler struct {
	svc   *services.HeatmapService
	cache *services.CacheService
}

func NewHeatmapHandler(svc *services.HeatmapService, cache *services.CacheService) *HeatmapHandler {
	return &HeatmapHandler{svc: svc, cache: cache}
}

func (h *HeatmapHandler) GetLatest(c *gin.Context) {
	const cacheKey = "heatmap:latest"

	var cached []models.Heatmap
	if err := h.cache.Get(c.Request.Context(), cacheKey, &cached); err == nil {
		c.JSON(http.StatusOK, cached)
		return
	}

	rows, err := h.svc.GetLatest()
	if err != nil {
		internalError(c, err)
		return
	}
	if rows == nil {
		rows = []models.Heatmap{}
	}
	go h.cache.Set(context.Background(), cacheKey, rows, 10*time.Second)

	c.JSON(http.StatusOK, rows)
}

func (h *HeatmapHandler) GetAnalysis(c *gin.Context) {
	analysis, err := h.svc.GetDensityAnalysis()
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, analysis)
}

func (h *HeatmapHandler) GetByDensity(c *gin.Context) {
	level := c.Param("level")
	if !models.ValidDensityLevel(level) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "level must be one of high, medium, low"})
		return
	}

	rows, err := h.svc.GetByDensityLevel(level)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

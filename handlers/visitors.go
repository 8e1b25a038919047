package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"retail-analytics-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type VisitorsHandler struct {
	svc       *services.VisitorService
	analytics *services.AnalyticsService
	cache     *services.CacheService
}

func NewVisitorsHandler(svc *services.VisitorService, analytics *services.AnalyticsService, cache *services.CacheService) *VisitorsHandler {
	return &VisitorsHandler{svc: svc, analytics: analytics, cache: cache}
}

func (h *VisitorsHandler) GetAll(c *gin.Context) {
	limit, ok := intQuery(c, "limit", 100, 1, 1000)
	if !ok {
		return
	}
	offset, ok := intQuery(c, "offset", 0, 0, 1<<30)
	if !ok {
		return
	}

	rows, err := h.svc.GetAll(limit, offset)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

type currentVisitorsResponse struct {
	CurrentVisitors int       `json:"current_visitors"`
	Timestamp       time.Time `json:"timestamp"`
}

func (h *VisitorsHandler) GetCurrent(c *gin.Context) {
	const cacheKey = "visitors:current"

	var cached currentVisitorsResponse
	if err := h.cache.Get(c.Request.Context(), cacheKey, &cached); err == nil {
		c.JSON(http.StatusOK, cached)
		return
	}

	count, err := h.svc.GetCurrentCount()
	if err != nil {
		internalError(c, err)
		return
	}

	resp := currentVisitorsResponse{CurrentVisitors: count, Timestamp: time.Now()}
	go h.cache.Set(context.Background(), cacheKey, resp, 5*time.Second)

	c.JSON(http.StatusOK, resp)
}

func (h *VisitorsHandler) GetSections(c *gin.Context) {
	const cacheKey = "visitors:sections"

	var cached []services.SectionTraffic
	if err := h.cache.Get(c.Request.Context(), cacheKey, &cached); err == nil {
		c.JSON(http.StatusOK, cached)
		return
	}

	sections, err := h.svc.GetSectionTraffic()
	if err != nil {
		internalError(c, err)
		return
	}
	if sections == nil {
		sections = []services.SectionTraffic{}
	}
	go h.cache.Set(context.Background(), cacheKey, sections, 30*time.Second)

	c.JSON(http.StatusOK, sections)
}

func (h *VisitorsHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "id must be a positive integer"})
		return
	}

	visitor, err := h.svc.GetByID(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Visitor record not found"})
		return
	}
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, visitor)
}

type timeRangeRequest struct {
	StartTime time.Time  `json:"start_time" binding:"required"`
	EndTime   *time.Time `json:"end_time"`
}

func (h *VisitorsHandler) GetByRange(c *gin.Context) {
	var req timeRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	end := time.Now()
	if req.EndTime != nil {
		end = *req.EndTime
	}

	rows, err := h.svc.GetByDateRange(req.StartTime, end)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *VisitorsHandler) GetDailyAnalytics(c *gin.Context) {
	summary, err := h.analytics.GetDailySummary()
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

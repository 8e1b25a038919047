package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"

	"retail-analytics-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var horizonPattern = regexp.MustCompile(`^(1h|4h|8h|1d|7d)$`)

type PredictionsHandler struct {
	svc       *services.PredictionService
	analytics *services.AnalyticsService
}

func NewPredictionsHandler(svc *services.PredictionService, analytics *services.AnalyticsService) *PredictionsHandler {
	return &PredictionsHandler{svc: svc, analytics: analytics}
}

func (h *PredictionsHandler) GetAll(c *gin.Context) {
	rows, err := h.svc.GetLatestForecasts()
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GetMetric serves the most recent forecast for one metric_type/horizon
// pair. A miss is a 200 with a placeholder message, mirroring the
// empty-is-not-an-error policy of the current-status endpoints.
func (h *PredictionsHandler) GetMetric(c *gin.Context) {
	metricType := c.Param("type")
	horizon := c.DefaultQuery("horizon", "1h")
	if !horizonPattern.MatchString(horizon) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "horizon must match 1h, 4h, 8h, 1d or 7d"})
		return
	}

	prediction, err := h.svc.GetMetricForecast(metricType, horizon)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusOK, gin.H{
			"message": fmt.Sprintf("No prediction available for %s (%s)", metricType, horizon),
		})
		return
	}
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, prediction)
}

func (h *PredictionsHandler) GetTrafficForecast(c *gin.Context) {
	forecast, err := h.analytics.GetTrafficForecast()
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, forecast)
}

package handlers

import (
	"errors"
	"net/http"
	"time"

	"retail-analytics-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CashierHandler struct {
	svc *services.CashierService
}

func NewCashierHandler(svc *services.CashierService) *CashierHandler {
	return &CashierHandler{svc: svc}
}

// GetCurrent serves the latest queue snapshot. An empty table is not an
// error: it answers 200 with a placeholder message.
func (h *CashierHandler) GetCurrent(c *gin.Context) {
	status, err := h.svc.GetCurrentStatus()
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusOK, gin.H{
			"message":   "No cashier data available",
			"timestamp": time.Now(),
		})
		return
	}
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

func (h *CashierHandler) GetHistory(c *gin.Context) {
	hours, ok := intQuery(c, "hours", 6, 1, 168)
	if !ok {
		return
	}

	rows, err := h.svc.GetQueueHistory(hours)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *CashierHandler) GetBusyPeriods(c *gin.Context) {
	threshold, ok := intQuery(c, "threshold", 3, 1, 20)
	if !ok {
		return
	}

	periods, err := h.svc.GetBusyPeriods(float64(threshold))
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, periods)
}

func (h *CashierHandler) GetWaitTime(c *gin.Context) {
	status, err := h.svc.GetCurrentStatus()
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusOK, gin.H{
			"estimated_wait_minutes": 0,
			"message":                "No data",
		})
		return
	}
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"estimated_wait_minutes": services.EstimateWaitMinutes(status),
		"queue_length":           status.QueueLength,
		"timestamp":              time.Now(),
	})
}

package handlers

import (
	"net/http"
	"time"

	"retail-analytics-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

type tableStatus struct {
	Present bool  `json:"present"`
	Rows    int64 `json:"rows"`
}

// Health reports database connectivity plus presence and row count of every
// fact table.
func (h *HealthHandler) Health(c *gin.Context) {
	sqlDB, err := h.db.DB()
	if err != nil {
		internalError(c, err)
		return
	}
	if err := sqlDB.Ping(); err != nil {
		internalError(c, err)
		return
	}

	tables := map[string]any{
		models.Visitor{}.TableName():    &models.Visitor{},
		models.Cashier{}.TableName():    &models.Cashier{},
		models.Heatmap{}.TableName():    &models.Heatmap{},
		models.Prediction{}.TableName(): &models.Prediction{},
	}

	statuses := make(map[string]tableStatus, len(tables))
	for name, model := range tables {
		status := tableStatus{Present: h.db.Migrator().HasTable(model)}
		if status.Present {
			if err := h.db.Model(model).Count(&status.Rows).Error; err != nil {
				internalError(c, err)
				return
			}
		}
		statuses[name] = status
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"database":  "connected",
		"tables":    statuses,
		"timestamp": time.Now(),
	})
}

// Root serves the service banner with an endpoint index.
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service":   "Retail Analytics API",
		"status":    "operational",
		"timestamp": time.Now().Format(time.RFC3339),
		"endpoints": gin.H{
			"visitors":    "/api/visitors",
			"cashier":     "/api/cashier",
			"heatmap":     "/api/heatmap",
			"predictions": "/api/predictions",
			"health":      "/health",
			"metrics":     "/metrics",
		},
	})
}

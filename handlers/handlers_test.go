package handlers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"retail-analytics-api/models"
	"retail-analytics-api/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestRouter wires the API routes over an in-memory database and a
// disabled cache, mirroring the production route table.
func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Visitor{},
		&models.Cashier{},
		&models.Heatmap{},
		&models.Prediction{},
	))

	cache := services.NewDisabledCache()
	visitorSvc := services.NewVisitorService(db)
	cashierSvc := services.NewCashierService(db)
	heatmapSvc := services.NewHeatmapService(db)
	predictionSvc := services.NewPredictionService(db)
	analyticsSvc := services.NewAnalyticsService(db, predictionSvc)

	visitorsHandler := NewVisitorsHandler(visitorSvc, analyticsSvc, cache)
	cashierHandler := NewCashierHandler(cashierSvc)
	heatmapHandler := NewHeatmapHandler(heatmapSvc, cache)
	predictionsHandler := NewPredictionsHandler(predictionSvc, analyticsSvc)
	healthHandler := NewHealthHandler(db)

	router := gin.New()
	router.GET("/health", healthHandler.Health)

	visitors := router.Group("/api/visitors")
	{
		visitors.GET("/", visitorsHandler.GetAll)
		visitors.GET("/current", visitorsHandler.GetCurrent)
		visitors.GET("/sections", visitorsHandler.GetSections)
		visitors.GET("/analytics/daily", visitorsHandler.GetDailyAnalytics)
		visitors.GET("/:id", visitorsHandler.GetByID)
		visitors.POST("/range", visitorsHandler.GetByRange)
	}

	cashier := router.Group("/api/cashier")
	{
		cashier.GET("/current", cashierHandler.GetCurrent)
		cashier.GET("/history", cashierHandler.GetHistory)
		cashier.GET("/busy-periods", cashierHandler.GetBusyPeriods)
		cashier.GET("/wait-time", cashierHandler.GetWaitTime)
	}

	heatmap := router.Group("/api/heatmap")
	{
		heatmap.GET("/", heatmapHandler.GetLatest)
		heatmap.GET("/analysis", heatmapHandler.GetAnalysis)
		heatmap.GET("/density/:level", heatmapHandler.GetByDensity)
	}

	predictions := router.Group("/api/predictions")
	{
		predictions.GET("/", predictionsHandler.GetAll)
		predictions.GET("/metric/:type", predictionsHandler.GetMetric)
		predictions.GET("/traffic/forecast", predictionsHandler.GetTrafficForecast)
	}

	return router, db
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dest))
}

func createVisitor(t *testing.T, db *gorm.DB, section string, count int, ts time.Time) models.Visitor {
	t.Helper()
	v := models.Visitor{Section: section, Count: count, Timestamp: ts}
	require.NoError(t, db.Create(&v).Error)
	return v
}

func createCashier(t *testing.T, db *gorm.DB, queueLength int, wait *float64, ts time.Time) {
	t.Helper()
	c := models.Cashier{
		QueueLength:     queueLength,
		WaitTimeMinutes: wait,
		Status:          models.CashierStatusNormal,
		Timestamp:       ts,
	}
	require.NoError(t, db.Create(&c).Error)
}

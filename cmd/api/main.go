package main

import (
	"fmt"
	"log"
	"net/http"

	"retail-analytics-api/config"
	"retail-analytics-api/handlers"
	"retail-analytics-api/middleware"
	"retail-analytics-api/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Load config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if !cfg.Server.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.GetDSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get sql db handle: %v", err)
	}
	if err := sqlDB.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	log.Printf("Database connected")

	// Redis cache is optional: a failed ping degrades to direct DB reads.
	cache, err := services.NewCacheService(cfg.Redis)
	if err != nil {
		log.Printf("Warning: cache disabled: %v", err)
	}
	defer cache.Close()

	router := setupRouter(cfg, db, cache)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Starting server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRouter(cfg *config.Config, db *gorm.DB, cache *services.CacheService) *gin.Engine {
	visitorSvc := services.NewVisitorService(db)
	cashierSvc := services.NewCashierService(db)
	heatmapSvc := services.NewHeatmapService(db)
	predictionSvc := services.NewPredictionService(db)
	analyticsSvc := services.NewAnalyticsService(db, predictionSvc)

	visitorsHandler := handlers.NewVisitorsHandler(visitorSvc, analyticsSvc, cache)
	cashierHandler := handlers.NewCashierHandler(cashierSvc)
	heatmapHandler := handlers.NewHeatmapHandler(heatmapSvc, cache)
	predictionsHandler := handlers.NewPredictionsHandler(predictionSvc, analyticsSvc)
	healthHandler := handlers.NewHealthHandler(db)

	router := gin.New()
	router.Use(
		gin.Logger(),
		gin.CustomRecovery(func(c *gin.Context, recovered any) {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": fmt.Sprint(recovered),
				"path":  c.Request.URL.Path,
			})
		}),
		middleware.SetupCORS(cfg.CORS),
		middleware.Metrics(),
	)

	router.GET("/", handlers.Root)
	router.GET("/health", healthHandler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

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

	router.GET("/api/live/ws", handlers.LiveWebSocket(cache))

	return router
}

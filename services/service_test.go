package services

import (
	"testing"
	"time"

	"retail-analytics-api/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps the in-memory database alive across queries.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.Visitor{},
		&models.Cashier{},
		&models.Heatmap{},
		&models.Prediction{},
	)
	require.NoError(t, err)

	return db
}

func seedVisitor(t *testing.T, db *gorm.DB, section string, count int, ts time.Time) {
	t.Helper()
	v := models.Visitor{Section: section, Count: count, Timestamp: ts}
	require.NoError(t, db.Create(&v).Error)
}

func seedCashier(t *testing.T, db *gorm.DB, queueLength int, wait *float64, status string, ts time.Time) {
	t.Helper()
	c := models.Cashier{QueueLength: queueLength, WaitTimeMinutes: wait, Status: status, Timestamp: ts}
	require.NoError(t, db.Create(&c).Error)
}

func seedHeatmap(t *testing.T, db *gorm.DB, section, level string, visitors int, ts time.Time) {
	t.Helper()
	h := models.Heatmap{Section: section, DensityLevel: level, VisitorCount: visitors, Timestamp: ts}
	require.NoError(t, db.Create(&h).Error)
}

func seedPrediction(t *testing.T, db *gorm.DB, metricType string, value float64, horizon string, ts time.Time) {
	t.Helper()
	p := models.Prediction{
		MetricType:          metricType,
		PredictedValue:      value,
		ConfidenceLevel:     0.9,
		ForecastHorizon:     horizon,
		PredictionTimestamp: ts,
		CreatedAt:           ts,
	}
	require.NoError(t, db.Create(&p).Error)
}

func floatPtr(v float64) *float64 { return &v }

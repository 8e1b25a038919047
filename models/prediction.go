package models

import "time"

const (
	MetricVisitors     = "visitors"
	MetricCashierQueue = "cashier_queue"
	MetricConversions  = "conversions"
)

// Prediction is a forecast row produced by the external forecasting service.
// ForecastHorizon is a token such as "1h", "4h", "1d" or "7d".
type Prediction struct {
	ID                  uint      `gorm:"column:id;primaryKey" json:"id"`
	MetricType          string    `gorm:"column:metric_type" json:"metric_type"`
	PredictedValue      float64   `gorm:"column:predicted_value" json:"predicted_value"`
	ConfidenceLevel     float64   `gorm:"column:confidence_level" json:"confidence_level"`
	ForecastHorizon     string    `gorm:"column:forecast_horizon" json:"forecast_horizon"`
	PredictionTimestamp time.Time `gorm:"column:prediction_timestamp" json:"prediction_timestamp"`
	CreatedAt           time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Prediction) TableName() string { return "predictions" }

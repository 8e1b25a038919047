package services

import (
	"retail-analytics-api/models"

	"gorm.io/gorm"
)

type PredictionService struct {
	db *gorm.DB
}

func NewPredictionService(db *gorm.DB) *PredictionService {
	return &PredictionService{db: db}
}

// GetLatestForecasts returns the most recent forecast for every
// (metric_type, forecast_horizon) pair present in the table.
func (s *PredictionService) GetLatestForecasts() ([]models.Prediction, error) {
	var rows []models.Prediction
	err := s.db.Raw(`
		SELECT p.* FROM predictions p
		JOIN (
			SELECT metric_type, forecast_horizon, MAX(prediction_timestamp) AS max_ts
			FROM predictions
			GROUP BY metric_type, forecast_horizon
		) latest ON p.metric_type = latest.metric_type
			AND p.forecast_horizon = latest.forecast_horizon
			AND p.prediction_timestamp = latest.max_ts
		ORDER BY p.metric_type, p.forecast_horizon
	`).Scan(&rows).Error
	return rows, err
}

// GetMetricForecast returns the most recent forecast matching both keys, or
// gorm.ErrRecordNotFound.
func (s *PredictionService) GetMetricForecast(metricType, horizon string) (*models.Prediction, error) {
	var row models.Prediction
	err := s.db.
		Where("metric_type = ? AND forecast_horizon = ?", metricType, horizon).
		Order("prediction_timestamp DESC").
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

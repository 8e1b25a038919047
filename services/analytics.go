package services

import (
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	"retail-analytics-api/models"

	"gorm.io/gorm"
)

// Recommendations derived from the 4-hour forecasts.
const (
	RecommendMoreLanes = "Consider opening additional cashier lanes"
	RecommendRestock   = "Good time for restocking and maintenance"
	RecommendNormal    = "Normal operations recommended"
	RecommendNoData    = "Insufficient data for recommendation"
)

// AnalyticsService composes multiple query results into derived reports.
type AnalyticsService struct {
	db          *gorm.DB
	predictions *PredictionService
}

func NewAnalyticsService(db *gorm.DB, predictions *PredictionService) *AnalyticsService {
	return &AnalyticsService{db: db, predictions: predictions}
}

type DailySummary struct {
	TotalVisitorsToday int       `json:"total_visitors_today"`
	BusiestSection     string    `json:"busiest_section"`
	AvgQueueLength     float64   `json:"avg_queue_length"`
	PeakHour           string    `json:"peak_hour"`
	Timestamp          time.Time `json:"timestamp"`
}

// GetDailySummary aggregates today's activity from local midnight to now.
// Four independent queries; each empty result maps to an explicit default
// (0 or "N/A") rather than a null.
func (s *AnalyticsService) GetDailySummary() (*DailySummary, error) {
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	summary := &DailySummary{
		BusiestSection: "N/A",
		PeakHour:       "N/A",
		Timestamp:      now,
	}

	var total int64
	err := s.db.Model(&models.Visitor{}).
		Select("COALESCE(SUM(count), 0)").
		Where("timestamp >= ?", dayStart).
		Scan(&total).Error
	if err != nil {
		return nil, err
	}
	summary.TotalVisitorsToday = int(total)

	var busiest []struct {
		Section string
		Total   int
	}
	err = s.db.Model(&models.Visitor{}).
		Select("section, SUM(count) AS total").
		Where("timestamp >= ?", dayStart).
		Group("section").
		Order("total DESC").
		Limit(1).
		Scan(&busiest).Error
	if err != nil {
		return nil, err
	}
	if len(busiest) > 0 {
		summary.BusiestSection = busiest[0].Section
	}

	var avgQueue sql.NullFloat64
	err = s.db.Model(&models.Cashier{}).
		Select("AVG(queue_length)").
		Where("timestamp >= ?", dayStart).
		Scan(&avgQueue).Error
	if err != nil {
		return nil, err
	}
	if avgQueue.Valid {
		summary.AvgQueueLength = math.Round(avgQueue.Float64*10) / 10
	}

	peakHour, ok, err := s.peakHour(dayStart)
	if err != nil {
		return nil, err
	}
	if ok {
		summary.PeakHour = fmt.Sprintf("%d:00", peakHour)
	}

	return summary, nil
}

// peakHour finds the hour of day with the highest visitor volume since
// dayStart. Bucketing is done here to keep the SQL dialect-neutral.
func (s *AnalyticsService) peakHour(dayStart time.Time) (int, bool, error) {
	var rows []models.Visitor
	err := s.db.
		Select("timestamp, count").
		Where("timestamp >= ?", dayStart).
		Find(&rows).Error
	if err != nil {
		return 0, false, err
	}
	if len(rows) == 0 {
		return 0, false, nil
	}

	totals := make(map[int]int)
	for i := range rows {
		totals[rows[i].Timestamp.Hour()] += rows[i].Count
	}

	peak, best := 0, -1
	for hour, total := range totals {
		if total > best || (total == best && hour < peak) {
			peak, best = hour, total
		}
	}
	return peak, true, nil
}

type TrafficForecast struct {
	VisitorsForecast *models.Prediction `json:"visitors_forecast"`
	QueueForecast    *models.Prediction `json:"queue_forecast"`
	Recommendation   string             `json:"recommendation"`
}

// GetTrafficForecast combines the 4-hour visitor and queue forecasts with a
// textual staffing recommendation. A missing forecast is not an error; it
// degrades the recommendation to "insufficient data".
func (s *AnalyticsService) GetTrafficForecast() (*TrafficForecast, error) {
	visitors, err := s.predictions.GetMetricForecast(models.MetricVisitors, "4h")
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	queue, err := s.predictions.GetMetricForecast(models.MetricCashierQueue, "4h")
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return &TrafficForecast{
		VisitorsForecast: visitors,
		QueueForecast:    queue,
		Recommendation:   recommend(visitors, queue),
	}, nil
}

func recommend(visitors, queue *models.Prediction) string {
	if visitors == nil || queue == nil {
		return RecommendNoData
	}
	switch {
	case visitors.PredictedValue > 50 && queue.PredictedValue > 4:
		return RecommendMoreLanes
	case visitors.PredictedValue < 10:
		return RecommendRestock
	default:
		return RecommendNormal
	}
}

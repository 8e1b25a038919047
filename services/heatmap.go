package services

import (
	"time"

	"retail-analytics-api/models"

	"gorm.io/gorm"
)

type HeatmapService struct {
	db *gorm.DB
}

func NewHeatmapService(db *gorm.DB) *HeatmapService {
	return &HeatmapService{db: db}
}

// GetLatest returns one sample per section, the most recent each.
func (s *HeatmapService) GetLatest() ([]models.Heatmap, error) {
	var rows []models.Heatmap
	err := s.db.Raw(`
		SELECT h.* FROM heatmap h
		JOIN (
			SELECT section, MAX(timestamp) AS max_ts
			FROM heatmap
			GROUP BY section
		) latest ON h.section = latest.section AND h.timestamp = latest.max_ts
		ORDER BY h.section
	`).Scan(&rows).Error
	return rows, err
}

// GetByDensityLevel filters the latest-per-section samples in memory. The
// result set is bounded by the number of sections, so a dedicated query is
// not worth it.
func (s *HeatmapService) GetByDensityLevel(level string) ([]models.Heatmap, error) {
	latest, err := s.GetLatest()
	if err != nil {
		return nil, err
	}
	filtered := make([]models.Heatmap, 0, len(latest))
	for i := range latest {
		if latest[i].DensityLevel == level {
			filtered = append(filtered, latest[i])
		}
	}
	return filtered, nil
}

type DensityAnalysis struct {
	HighCount   int     `json:"high_count"`
	MediumCount int     `json:"medium_count"`
	LowCount    int     `json:"low_count"`
	AvgVisitors float64 `json:"avg_visitors"`
}

// GetDensityAnalysis counts samples per density level over the trailing hour.
// Levels with no samples report zero, never an absent key.
func (s *HeatmapService) GetDensityAnalysis() (*DensityAnalysis, error) {
	var raw struct {
		HighCount   int
		MediumCount int
		LowCount    int
		AvgVisitors *float64
	}
	err := s.db.Model(&models.Heatmap{}).
		Select(`
			COUNT(CASE WHEN density_level = 'high' THEN 1 END) AS high_count,
			COUNT(CASE WHEN density_level = 'medium' THEN 1 END) AS medium_count,
			COUNT(CASE WHEN density_level = 'low' THEN 1 END) AS low_count,
			AVG(visitor_count) AS avg_visitors`).
		Where("timestamp > ?", time.Now().Add(-time.Hour)).
		Scan(&raw).Error
	if err != nil {
		return nil, err
	}

	analysis := &DensityAnalysis{
		HighCount:   raw.HighCount,
		MediumCount: raw.MediumCount,
		LowCount:    raw.LowCount,
	}
	if raw.AvgVisitors != nil {
		analysis.AvgVisitors = *raw.AvgVisitors
	}
	return analysis, nil
}

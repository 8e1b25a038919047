package services

import (
	"time"

	"retail-analytics-api/models"

	"gorm.io/gorm"
)

// currentWindow is the trailing window that defines "currently in the store".
// Rows older than this no longer contribute to the live count.
const currentWindow = 15 * time.Minute

type VisitorService struct {
	db *gorm.DB
}

func NewVisitorService(db *gorm.DB) *VisitorService {
	return &VisitorService{db: db}
}

// GetAll returns up to limit records, newest first.
func (s *VisitorService) GetAll(limit, offset int) ([]models.Visitor, error) {
	var rows []models.Visitor
	err := s.db.Order("timestamp DESC").Limit(limit).Offset(offset).Find(&rows).Error
	return rows, err
}

func (s *VisitorService) GetByID(id uint) (*models.Visitor, error) {
	var v models.Visitor
	if err := s.db.First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

// GetCurrentCount sums visitor counts over the trailing 15 minutes. An empty
// window reads as zero traffic, not "unknown"; that is a deliberate policy.
func (s *VisitorService) GetCurrentCount() (int, error) {
	var total int64
	err := s.db.Model(&models.Visitor{}).
		Select("COALESCE(SUM(count), 0)").
		Where("timestamp > ?", time.Now().Add(-currentWindow)).
		Scan(&total).Error
	return int(total), err
}

// GetByDateRange returns records with start <= timestamp <= end, ascending.
func (s *VisitorService) GetByDateRange(start, end time.Time) ([]models.Visitor, error) {
	var rows []models.Visitor
	err := s.db.
		Where("timestamp BETWEEN ? AND ?", start, end).
		Order("timestamp").
		Find(&rows).Error
	return rows, err
}

type SectionTraffic struct {
	Section       string `json:"section"`
	TotalVisitors int    `json:"total_visitors"`
	RecordsCount  int    `json:"records_count"`
}

// GetSectionTraffic groups the trailing 24 hours by section, busiest first.
// Callers rely on element 0 being the busiest section.
func (s *VisitorService) GetSectionTraffic() ([]SectionTraffic, error) {
	var rows []SectionTraffic
	err := s.db.Model(&models.Visitor{}).
		Select("section, SUM(count) AS total_visitors, COUNT(*) AS records_count").
		Where("timestamp > ?", time.Now().Add(-24*time.Hour)).
		Group("section").
		Order("total_visitors DESC").
		Scan(&rows).Error
	return rows, err
}

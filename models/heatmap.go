package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	DensityHigh   = "high"
	DensityMedium = "medium"
	DensityLow    = "low"
)

// ValidDensityLevel reports whether level is one of the three density buckets.
func ValidDensityLevel(level string) bool {
	switch level {
	case DensityHigh, DensityMedium, DensityLow:
		return true
	}
	return false
}

// Heatmap is a spatial density sample for one store section.
type Heatmap struct {
	ID           uint              `gorm:"column:id;primaryKey" json:"id"`
	Section      string            `gorm:"column:section" json:"section"`
	DensityLevel string            `gorm:"column:density_level" json:"density_level"`
	Coordinates  datatypes.JSONMap `gorm:"column:coordinates" json:"coordinates,omitempty"`
	VisitorCount int               `gorm:"column:visitor_count" json:"visitor_count"`
	Timestamp    time.Time         `gorm:"column:timestamp" json:"timestamp"`
}

func (Heatmap) TableName() string { return "heatmap" }

package models

import (
	"time"

	"gorm.io/datatypes"
)

// Visitor is one camera/sensor observation of a store section.
// Rows are written by the ingestion pipeline and never updated.
type Visitor struct {
	ID                 uint              `gorm:"column:id;primaryKey" json:"id"`
	Section            string            `gorm:"column:section" json:"section"`
	Count              int               `gorm:"column:count" json:"count"`
	GenderDistribution datatypes.JSONMap `gorm:"column:gender_distribution" json:"gender_distribution,omitempty"`
	Timestamp          time.Time         `gorm:"column:timestamp" json:"timestamp"`
}

func (Visitor) TableName() string { return "visitors" }

package services

import (
	"sort"
	"time"

	"retail-analytics-api/models"

	"gorm.io/gorm"
)

// WaitMinutesPerPerson is the fixed heuristic applied when a snapshot carries
// no explicit wait time: two minutes per queued person.
const WaitMinutesPerPerson = 2.0

// EstimateWaitMinutes is the single shared wait-time heuristic. Every caller
// (query layer, wait-time endpoint, chatbot tools) must go through it.
func EstimateWaitMinutes(c *models.Cashier) float64 {
	if c.WaitTimeMinutes != nil {
		return *c.WaitTimeMinutes
	}
	return float64(c.QueueLength) * WaitMinutesPerPerson
}

type CashierService struct {
	db *gorm.DB
}

func NewCashierService(db *gorm.DB) *CashierService {
	return &CashierService{db: db}
}

// GetCurrentStatus returns the most recent snapshot, or
// gorm.ErrRecordNotFound when the table holds no rows.
func (s *CashierService) GetCurrentStatus() (*models.Cashier, error) {
	var row models.Cashier
	if err := s.db.Order("timestamp DESC").First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// GetQueueHistory returns snapshots from the trailing hours window, ascending.
func (s *CashierService) GetQueueHistory(hours int) ([]models.Cashier, error) {
	var rows []models.Cashier
	err := s.db.
		Where("timestamp > ?", time.Now().Add(-time.Duration(hours)*time.Hour)).
		Order("timestamp").
		Find(&rows).Error
	return rows, err
}

type BusyPeriod struct {
	HourStart time.Time `json:"hour_start"`
	AvgQueue  float64   `json:"avg_queue"`
	MaxQueue  int       `json:"max_queue"`
}

// GetBusyPeriods buckets the trailing 7 days of snapshots by clock hour and
// keeps the buckets whose average queue length exceeds threshold, worst
// first. Bucketing happens here rather than in SQL so the query stays
// portable across the production and test dialects.
func (s *CashierService) GetBusyPeriods(threshold float64) ([]BusyPeriod, error) {
	var rows []models.Cashier
	err := s.db.
		Where("timestamp > ?", time.Now().Add(-7*24*time.Hour)).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	type bucket struct {
		sum   int
		count int
		max   int
	}
	buckets := make(map[time.Time]*bucket)
	for i := range rows {
		hour := rows[i].Timestamp.Truncate(time.Hour)
		b := buckets[hour]
		if b == nil {
			b = &bucket{}
			buckets[hour] = b
		}
		b.sum += rows[i].QueueLength
		b.count++
		if rows[i].QueueLength > b.max {
			b.max = rows[i].QueueLength
		}
	}

	periods := make([]BusyPeriod, 0, len(buckets))
	for hour, b := range buckets {
		avg := float64(b.sum) / float64(b.count)
		if avg > threshold {
			periods = append(periods, BusyPeriod{HourStart: hour, AvgQueue: avg, MaxQueue: b.max})
		}
	}

	sort.Slice(periods, func(i, j int) bool {
		return periods[i].AvgQueue > periods[j].AvgQueue
	})
	return periods, nil
}

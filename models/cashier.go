package models

import "time"

const (
	CashierStatusBusy   = "busy"
	CashierStatusNormal = "normal"
	CashierStatusIdle   = "idle"
)

// Cashier is a point-in-time snapshot of the checkout queue.
type Cashier struct {
	ID                uint      `gorm:"column:id;primaryKey" json:"id"`
	QueueLength       int       `gorm:"column:queue_length" json:"queue_length"`
	WaitTimeMinutes   *float64  `gorm:"column:wait_time_minutes" json:"wait_time_minutes"`
	TransactionsCount *int      `gorm:"column:transactions_count" json:"transactions_count"`
	Status            string    `gorm:"column:status" json:"status"`
	Timestamp         time.Time `gorm:"column:timestamp" json:"timestamp"`
}

func (Cashier) TableName() string { return "cashier" }

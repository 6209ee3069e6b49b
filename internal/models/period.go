package models

import "time"

const (
	DefaultCycleLength    = 28
	DefaultPeriodDuration = 5
)

type PeriodRecord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index:idx_period_records_user_start" json:"user_id"`
	StartDate time.Time `gorm:"type:date;not null;index:idx_period_records_user_start,sort:desc" json:"start_date"`
	EndDate   time.Time `gorm:"type:date;not null" json:"end_date"`
	Duration  int       `gorm:"not null" json:"duration"`
	CreatedAt time.Time `json:"created_at"`
}

// PeriodHistory is ordered most recent first.
type PeriodHistory []PeriodRecord

package model

import (
	"time"
)

// ClockEntry represents the database model for clock entries. The time of
// day is stored as its canonical microsecond count since midnight.
type ClockEntry struct {
	ID              uint64    `gorm:"primaryKey;autoIncrement"`
	Label           string    `gorm:"uniqueIndex;size:64;not null"`
	TimeMicros      int64     `gorm:"not null"` // Microseconds since midnight, [0, 86_399_999_999]
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null"`
	AdjustmentCount uint64    `gorm:"default:0"`
}

// TableName specifies the table name for ClockEntry
func (ClockEntry) TableName() string {
	return "clock_entries"
}

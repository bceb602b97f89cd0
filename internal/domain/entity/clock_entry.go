package entity

import (
	"time"

	errs "github.com/mehrdad-arman/daytime-service/internal/domain/error"
	coreport "github.com/mehrdad-arman/daytime-service/internal/domain/port/core"
)

// MaxLabelLength is the maximum number of characters allowed in an entry label
const MaxLabelLength = 64

// ClockEntry represents a named point in the day, like an alarm or a
// schedule marker
type ClockEntry struct {
	ID              uint64    // Unique identifier for the entry
	Label           string    // Human-readable name, unique across entries
	timeOfDay       TimeOfDay // The wall-clock time this entry marks (private)
	CreatedAt       time.Time // When the entry was created
	UpdatedAt       time.Time // When the entry was last updated
	AdjustmentCount uint64    // Count of time adjustments applied to this entry
}

// NewClockEntry creates a new entry with the given ID, label and time
func NewClockEntry(id uint64, label string, t TimeOfDay, timeProvider coreport.TimeProvider) (*ClockEntry, error) {
	if id == 0 {
		return nil, errs.ErrInvalidEntryID
	}
	if label == "" || len(label) > MaxLabelLength {
		return nil, errs.ErrInvalidLabel
	}

	now := timeProvider.Now()
	return &ClockEntry{
		ID:              id,
		Label:           label,
		timeOfDay:       t,
		CreatedAt:       now,
		UpdatedAt:       now,
		AdjustmentCount: 0,
	}, nil
}

// NewPendingEntry creates an entry that has not been persisted yet; the
// repository assigns its ID on insert
func NewPendingEntry(label string, t TimeOfDay, timeProvider coreport.TimeProvider) (*ClockEntry, error) {
	if label == "" || len(label) > MaxLabelLength {
		return nil, errs.ErrInvalidLabel
	}

	now := timeProvider.Now()
	return &ClockEntry{
		Label:     label,
		timeOfDay: t,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Time returns the entry's time-of-day value
func (e *ClockEntry) Time() TimeOfDay {
	return e.timeOfDay
}

// SetTime replaces the entry's time directly (for internal use, like repositories)
func (e *ClockEntry) SetTime(t TimeOfDay, timeProvider coreport.TimeProvider) {
	e.timeOfDay = t
	e.UpdatedAt = timeProvider.Now()
}

// Shift moves the entry's time by the given signed offset. The shift fails
// with an overflow/underflow error when it would cross a midnight boundary;
// the entry is left unchanged in that case.
func (e *ClockEntry) Shift(offset coreport.Duration, timeProvider coreport.TimeProvider) error {
	shifted, err := e.timeOfDay.Add(offset)
	if err != nil {
		return err
	}

	e.timeOfDay = shifted
	e.UpdatedAt = timeProvider.Now()
	e.AdjustmentCount++
	return nil
}

// Until returns the signed span from this entry's time to another entry's
// time, positive when other is later in the day
func (e *ClockEntry) Until(other *ClockEntry) coreport.Duration {
	return other.timeOfDay.Difference(e.timeOfDay)
}

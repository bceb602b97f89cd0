package usecase

import (
	"context"
)

// EntryResponse represents the standardized clock entry response
type EntryResponse struct {
	ID              uint64 `json:"id"`
	Label           string `json:"label"`
	Time            string `json:"time"` // Fixed HH:MM:SS.ffffff rendering
	Micros          int64  `json:"micros"`
	AdjustmentCount uint64 `json:"adjustmentCount"`
}

// DifferenceResponse represents the signed span between two entries
type DifferenceResponse struct {
	FromID   uint64 `json:"fromId"`
	ToID     uint64 `json:"toId"`
	Micros   int64  `json:"micros"`   // Positive when the "to" entry is later in the day
	Duration string `json:"duration"` // Go duration rendering, e.g. "1h30m0s"
}

// FormatResponse represents a pattern rendering of an entry's time
type FormatResponse struct {
	ID       uint64 `json:"id"`
	Pattern  string `json:"pattern"`
	Rendered string `json:"rendered"`
}

// TimeFields carries the five clock fields of an entry creation request
type TimeFields struct {
	Hour        int
	Minute      int
	Second      int
	Millisecond int
	Microsecond int
}

// EntryUseCase defines methods for clock entry business operations
type EntryUseCase interface {
	// CreateEntry creates a new named entry at the given time of day
	CreateEntry(ctx context.Context, label string, fields TimeFields) (*EntryResponse, error)

	// GetEntry retrieves a single entry by ID
	GetEntry(ctx context.Context, id uint64) (*EntryResponse, error)

	// ListEntries retrieves all entries ordered by time of day
	ListEntries(ctx context.Context) ([]*EntryResponse, error)

	// ShiftEntry moves an entry's time by a signed offset string (e.g. "90m", "-1.5h")
	ShiftEntry(ctx context.Context, id uint64, offset string) (*EntryResponse, error)

	// Difference computes the signed span from one entry's time to another's
	Difference(ctx context.Context, fromID, toID uint64) (*DifferenceResponse, error)

	// FormatEntry renders an entry's time with a symbol pattern; an empty
	// pattern falls back to the configured default
	FormatEntry(ctx context.Context, id uint64, pattern string) (*FormatResponse, error)

	// DeleteEntry removes an entry by ID
	DeleteEntry(ctx context.Context, id uint64) error
}

// ClockResponse represents a rendering of the current wall-clock time
type ClockResponse struct {
	Pattern  string `json:"pattern"`
	Rendered string `json:"rendered"`
	Micros   int64  `json:"micros"`
}

// ClockUseCase defines methods for ambient wall-clock rendering
type ClockUseCase interface {
	// Now renders the current wall-clock time-of-day with the given pattern
	Now(ctx context.Context, pattern string) (*ClockResponse, error)
}

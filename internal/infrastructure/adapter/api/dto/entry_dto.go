package dto

// CreateEntryRequest represents the body of POST /entries
type CreateEntryRequest struct {
	Label       string `json:"label" binding:"required"`
	Hour        int    `json:"hour"`
	Minute      int    `json:"minute"`
	Second      int    `json:"second"`
	Millisecond int    `json:"millisecond"`
	Microsecond int    `json:"microsecond"`
}

// ShiftEntryRequest represents the body of POST /entries/{entryId}/shift
type ShiftEntryRequest struct {
	// Offset is a signed Go duration string, e.g. "90m" or "-1.5h"
	Offset string `json:"offset" binding:"required"`
}

// EntryResponse represents the API response for a single clock entry
type EntryResponse struct {
	ID              uint64 `json:"id"`
	Label           string `json:"label"`
	Time            string `json:"time"`
	Micros          int64  `json:"micros"`
	AdjustmentCount uint64 `json:"adjustmentCount"`
}

// DifferenceResponse represents the API response for an entry difference
type DifferenceResponse struct {
	FromID   uint64 `json:"fromId"`
	ToID     uint64 `json:"toId"`
	Micros   int64  `json:"micros"`
	Duration string `json:"duration"`
}

// FormatResponse represents the API response for a pattern rendering
type FormatResponse struct {
	ID       uint64 `json:"id"`
	Pattern  string `json:"pattern"`
	Rendered string `json:"rendered"`
}

// ClockResponse represents the API response for the current wall clock
type ClockResponse struct {
	Pattern  string `json:"pattern"`
	Rendered string `json:"rendered"`
	Micros   int64  `json:"micros"`
}

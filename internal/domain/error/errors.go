package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidFieldValue = 4001
	CodeTimeOverflow      = 4002
	CodeTimeUnderflow     = 4003
	CodeUnknownSymbol     = 4004
	CodeDuplicateSymbol   = 4005
	CodeInvalidEntryID    = 4006
	CodeInvalidLabel      = 4007
	CodeInvalidDuration   = 4008
	CodeDuplicateEntry    = 4009
	CodeEntryNotFound     = 4040

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrInvalidFieldValue is returned when a time-of-day field is outside its legal range
	ErrInvalidFieldValue = errors.New("invalid field value")

	// ErrTimeOverflow is returned when arithmetic would roll past the end of the day
	ErrTimeOverflow = errors.New("time overflow: result exceeds end of day")

	// ErrTimeUnderflow is returned when arithmetic would roll before the start of the day
	ErrTimeUnderflow = errors.New("time underflow: result precedes start of day")

	// ErrUnknownSymbol is returned when a pattern references a format letter with no registered resolver
	ErrUnknownSymbol = errors.New("unknown format symbol")

	// ErrDuplicateSymbol is returned when two resolvers are registered under the same symbol
	ErrDuplicateSymbol = errors.New("format symbol already registered")

	// ErrInvalidEntryID is returned when the entry ID is not a positive integer
	ErrInvalidEntryID = errors.New("entry ID must be positive")

	// ErrInvalidLabel is returned when the entry label is empty or too long
	ErrInvalidLabel = errors.New("invalid entry label")

	// ErrInvalidDuration is returned when a duration string cannot be parsed
	ErrInvalidDuration = errors.New("invalid duration")

	// ErrEntryNotFound is returned when the requested clock entry doesn't exist
	ErrEntryNotFound = errors.New("clock entry not found")

	// ErrDuplicateEntry is returned when an entry with the same label already exists
	ErrDuplicateEntry = errors.New("clock entry with this label already exists")

	// ErrEntryLocked is returned when an entry is locked by another operation
	ErrEntryLocked = errors.New("clock entry is locked by another operation")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidFieldValue):
		return CodeInvalidFieldValue
	case errors.Is(err, ErrTimeOverflow):
		return CodeTimeOverflow
	case errors.Is(err, ErrTimeUnderflow):
		return CodeTimeUnderflow
	case errors.Is(err, ErrUnknownSymbol):
		return CodeUnknownSymbol
	case errors.Is(err, ErrDuplicateSymbol):
		return CodeDuplicateSymbol
	case errors.Is(err, ErrInvalidEntryID):
		return CodeInvalidEntryID
	case errors.Is(err, ErrInvalidLabel):
		return CodeInvalidLabel
	case errors.Is(err, ErrInvalidDuration):
		return CodeInvalidDuration
	case errors.Is(err, ErrDuplicateEntry):
		return CodeDuplicateEntry
	case errors.Is(err, ErrEntryNotFound):
		return CodeEntryNotFound
	default:
		return CodeInternalServer
	}
}

// FieldValueError reports a time-of-day field outside its legal half-open range
type FieldValueError struct {
	Field string // "hour", "minute", "second", "millisecond", "microsecond"
	Value int
	Limit int // exclusive upper bound of the legal range [0, Limit)
}

// Error implements the error interface for FieldValueError
func (e *FieldValueError) Error() string {
	return fmt.Sprintf("invalid value for %s: %d (must be in [0,%d))", e.Field, e.Value, e.Limit)
}

// Is checks if the target error is an ErrInvalidFieldValue
func (e *FieldValueError) Is(target error) bool {
	return target == ErrInvalidFieldValue
}

// LogFields returns a map of fields for structured logging
func (e *FieldValueError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "field_value_error",
		"field":      e.Field,
		"value":      e.Value,
		"limit":      e.Limit,
		"error_code": CodeInvalidFieldValue,
	}
}

// NewFieldValueError creates a new detailed field validation error
func NewFieldValueError(field string, value, limit int) error {
	return &FieldValueError{
		Field: field,
		Value: value,
		Limit: limit,
	}
}

// TimeRangeError reports arithmetic whose result would leave the valid day
type TimeRangeError struct {
	Micros      int64 // microsecond total of the operand
	DeltaMicros int64 // signed microsecond offset applied
	Err         error // ErrTimeOverflow or ErrTimeUnderflow
}

// Error implements the error interface for TimeRangeError
func (e *TimeRangeError) Error() string {
	return fmt.Sprintf("time arithmetic out of range (base: %dus, offset: %dus): %v",
		e.Micros, e.DeltaMicros, e.Err)
}

// Unwrap returns the underlying error
func (e *TimeRangeError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *TimeRangeError) LogFields() map[string]any {
	return map[string]any{
		"error_type":   "time_range_error",
		"base_micros":  e.Micros,
		"delta_micros": e.DeltaMicros,
		"error":        e.Err.Error(),
		"error_code":   ErrorCode(e.Err),
	}
}

// NewTimeRangeError creates a detailed overflow/underflow error for time arithmetic
func NewTimeRangeError(micros, deltaMicros int64, err error) error {
	return &TimeRangeError{
		Micros:      micros,
		DeltaMicros: deltaMicros,
		Err:         err,
	}
}

// UnknownSymbolError reports a format letter with no registered resolver
type UnknownSymbolError struct {
	Symbol  byte
	Pattern string
}

// Error implements the error interface
func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("unknown format symbol %q in pattern %q", string(e.Symbol), e.Pattern)
}

// Is checks if the target error is an ErrUnknownSymbol
func (e *UnknownSymbolError) Is(target error) bool {
	return target == ErrUnknownSymbol
}

// LogFields returns a map of fields for structured logging
func (e *UnknownSymbolError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "unknown_symbol",
		"symbol":     string(e.Symbol),
		"pattern":    e.Pattern,
		"error_code": CodeUnknownSymbol,
	}
}

// NewUnknownSymbolError creates a new detailed unknown symbol error
func NewUnknownSymbolError(symbol byte, pattern string) error {
	return &UnknownSymbolError{
		Symbol:  symbol,
		Pattern: pattern,
	}
}

// IsValidationError checks if the error is a construction-time validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidFieldValue) ||
		errors.Is(err, ErrInvalidEntryID) ||
		errors.Is(err, ErrInvalidLabel)
}

// IsRangeError checks if the error is an arithmetic overflow/underflow error
func IsRangeError(err error) bool {
	return errors.Is(err, ErrTimeOverflow) || errors.Is(err, ErrTimeUnderflow)
}

// IsConfigurationError checks if the error is a formatter configuration error
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrUnknownSymbol) || errors.Is(err, ErrDuplicateSymbol)
}

// IsEntryNotFoundError checks if the error is an entry not found error
func IsEntryNotFoundError(err error) bool {
	return errors.Is(err, ErrEntryNotFound)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrEntryNotFound)
}

// IsDuplicateEntryError checks if the error is a duplicate entry error
func IsDuplicateEntryError(err error) bool {
	return errors.Is(err, ErrDuplicateEntry)
}

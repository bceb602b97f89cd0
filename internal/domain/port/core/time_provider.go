package core

import (
	"context"
	"time"
)

// Duration is a domain-specific wrapper around time.Duration. It is the
// opaque span type consumed and produced by time-of-day arithmetic; the
// domain always converts it to and from a microsecond count.
type Duration time.Duration

// Common duration constants
const (
	Nanosecond  Duration = Duration(time.Nanosecond)
	Microsecond          = Duration(time.Microsecond)
	Millisecond          = Duration(time.Millisecond)
	Second               = Duration(time.Second)
	Minute               = Duration(time.Minute)
	Hour                 = Duration(time.Hour)
)

// DurationFromMicroseconds builds a Duration from a signed microsecond count
func DurationFromMicroseconds(micros int64) Duration {
	return Duration(micros) * Microsecond
}

// Std converts domain Duration to time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Microseconds returns the duration as a signed microsecond count,
// truncated toward zero
func (d Duration) Microseconds() int64 {
	return time.Duration(d).Microseconds()
}

// TimeProvider abstracts time operations for the domain
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) Duration
	Until(t time.Time) Duration
	Sleep(d Duration)
	WithTimeout(ctx context.Context, timeout Duration) (context.Context, context.CancelFunc)
	ParseDuration(s string) (Duration, error)
}

package entity

import (
	"fmt"
	"time"

	errs "github.com/mehrdad-arman/daytime-service/internal/domain/error"
	coreport "github.com/mehrdad-arman/daytime-service/internal/domain/port/core"
)

// Exclusive upper bounds for each time-of-day field
const (
	HoursPerDay          = 24
	MinutesPerHour       = 60
	SecondsPerMinute     = 60
	MillisPerSecond      = 1000
	MicrosPerMillisecond = 1000
)

// Microsecond conversion factors
const (
	microsPerMilli  int64 = 1000
	microsPerSecond int64 = 1000 * microsPerMilli
	microsPerMinute int64 = 60 * microsPerSecond
	microsPerHour   int64 = 60 * microsPerMinute
)

// MaxMicroseconds is the microsecond count of the last representable instant
// of the day, one microsecond short of 24 hours
const MaxMicroseconds int64 = 24*microsPerHour - 1

// TimeOfDay is an immutable wall-clock time independent of calendar date and
// timezone, precise to the microsecond. The zero value is midnight. Every
// field lies in its half-open range at all times; arithmetic produces a new
// value and never mutates the receiver. The struct is canonical, so Go value
// equality coincides with Equals and a TimeOfDay is usable as a map key.
type TimeOfDay struct {
	hour        int
	minute      int
	second      int
	millisecond int
	microsecond int
}

// Named clock values
var (
	// Min is the first representable instant, 00:00:00.000000
	Min = TimeOfDay{}
	// Noon is 12:00:00.000000
	Noon = TimeOfDay{hour: 12}
	// Max is the last representable instant, 23:59:59.999999
	Max = TimeOfDay{hour: 23, minute: 59, second: 59, millisecond: 999, microsecond: 999}
)

// NewTimeOfDay creates a validated time-of-day value. Construction is the
// only place validation occurs; a field outside its legal half-open range
// yields a FieldValueError identifying the field and the offending value.
func NewTimeOfDay(hour, minute, second, millisecond, microsecond int) (TimeOfDay, error) {
	if hour < 0 || hour >= HoursPerDay {
		return TimeOfDay{}, errs.NewFieldValueError("hour", hour, HoursPerDay)
	}
	if minute < 0 || minute >= MinutesPerHour {
		return TimeOfDay{}, errs.NewFieldValueError("minute", minute, MinutesPerHour)
	}
	if second < 0 || second >= SecondsPerMinute {
		return TimeOfDay{}, errs.NewFieldValueError("second", second, SecondsPerMinute)
	}
	if millisecond < 0 || millisecond >= MillisPerSecond {
		return TimeOfDay{}, errs.NewFieldValueError("millisecond", millisecond, MillisPerSecond)
	}
	if microsecond < 0 || microsecond >= MicrosPerMillisecond {
		return TimeOfDay{}, errs.NewFieldValueError("microsecond", microsecond, MicrosPerMillisecond)
	}

	return TimeOfDay{
		hour:        hour,
		minute:      minute,
		second:      second,
		millisecond: millisecond,
		microsecond: microsecond,
	}, nil
}

// FromMicroseconds reconstructs a time-of-day from a flat microsecond count
// in [0, MaxMicroseconds] by successive integer division. Exact integer
// arithmetic only, so the round-trip through ToMicroseconds never drifts.
func FromMicroseconds(micros int64) (TimeOfDay, error) {
	if micros < 0 {
		return TimeOfDay{}, errs.NewTimeRangeError(micros, 0, errs.ErrTimeUnderflow)
	}
	if micros > MaxMicroseconds {
		return TimeOfDay{}, errs.NewTimeRangeError(micros, 0, errs.ErrTimeOverflow)
	}

	microsecond := int(micros % microsPerMilli)
	micros /= microsPerMilli
	millisecond := int(micros % int64(MillisPerSecond))
	micros /= int64(MillisPerSecond)
	second := int(micros % int64(SecondsPerMinute))
	micros /= int64(SecondsPerMinute)
	minute := int(micros % int64(MinutesPerHour))
	hour := int(micros / int64(MinutesPerHour))

	return TimeOfDay{
		hour:        hour,
		minute:      minute,
		second:      second,
		millisecond: millisecond,
		microsecond: microsecond,
	}, nil
}

// FromClock extracts the time-of-day part of a wall-clock reading,
// truncating below microsecond precision
func FromClock(t time.Time) TimeOfDay {
	return TimeOfDay{
		hour:        t.Hour(),
		minute:      t.Minute(),
		second:      t.Second(),
		millisecond: t.Nanosecond() / 1_000_000,
		microsecond: (t.Nanosecond() / 1_000) % 1_000,
	}
}

// Hour returns the hour field in [0,24)
func (t TimeOfDay) Hour() int { return t.hour }

// Minute returns the minute field in [0,60)
func (t TimeOfDay) Minute() int { return t.minute }

// Second returns the second field in [0,60)
func (t TimeOfDay) Second() int { return t.second }

// Millisecond returns the millisecond field in [0,1000)
func (t TimeOfDay) Millisecond() int { return t.millisecond }

// Microsecond returns the microsecond field in [0,1000)
func (t TimeOfDay) Microsecond() int { return t.microsecond }

// ToMicroseconds returns the flat microsecond count since midnight,
// always in [0, MaxMicroseconds]
func (t TimeOfDay) ToMicroseconds() int64 {
	return int64(t.hour)*microsPerHour +
		int64(t.minute)*microsPerMinute +
		int64(t.second)*microsPerSecond +
		int64(t.millisecond)*microsPerMilli +
		int64(t.microsecond)
}

// ToMilliseconds returns the flat millisecond count since midnight,
// discarding the microsecond field
func (t TimeOfDay) ToMilliseconds() int64 {
	return t.ToMicroseconds() / microsPerMilli
}

// Add returns a new time-of-day shifted forward by d. The result never wraps
// around midnight: shifting past the end of the day fails with an overflow
// error, and a negative d that rolls before midnight fails with underflow.
func (t TimeOfDay) Add(d coreport.Duration) (TimeOfDay, error) {
	base := t.ToMicroseconds()
	delta := d.Microseconds()
	candidate := base + delta

	if candidate < 0 {
		return TimeOfDay{}, errs.NewTimeRangeError(base, delta, errs.ErrTimeUnderflow)
	}
	if candidate > MaxMicroseconds {
		return TimeOfDay{}, errs.NewTimeRangeError(base, delta, errs.ErrTimeOverflow)
	}

	return FromMicroseconds(candidate)
}

// Subtract returns a new time-of-day shifted backward by d
func (t TimeOfDay) Subtract(d coreport.Duration) (TimeOfDay, error) {
	return t.Add(-d)
}

// Difference returns the signed span between two times, positive when t is
// later than other
func (t TimeOfDay) Difference(other TimeOfDay) coreport.Duration {
	return coreport.DurationFromMicroseconds(t.ToMicroseconds() - other.ToMicroseconds())
}

// Compare is a three-way comparator consistent with ToMicroseconds: negative
// when t is earlier than other, zero when equal, positive when later
func (t TimeOfDay) Compare(other TimeOfDay) int {
	a, b := t.ToMicroseconds(), other.ToMicroseconds()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Equals reports whether both values denote the same instant of the day
func (t TimeOfDay) Equals(other TimeOfDay) bool {
	return t == other
}

// Before reports whether t is earlier than other
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.Compare(other) < 0
}

// After reports whether t is later than other
func (t TimeOfDay) After(other TimeOfDay) bool {
	return t.Compare(other) > 0
}

// String renders the fixed locale-independent form HH:MM:SS.ffffff, where
// the six fractional digits are millisecond*1000 + microsecond
func (t TimeOfDay) String() string {
	frac := t.millisecond*MicrosPerMillisecond + t.microsecond
	return fmt.Sprintf("%02d:%02d:%02d.%06d", t.hour, t.minute, t.second, frac)
}

package timezone

import (
	"sync/atomic"
	"time"
)

const DefaultTimezone = "UTC"

var current atomic.Pointer[time.Location]

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if loc, err := time.LoadLocation(tz); err == nil && tz != "" {
		return loc
	}
	return time.UTC
}

// Configure sets the business timezone used to read date-only values.
func Configure(tz string) {
	current.Store(Location(tz))
}

func Current() *time.Location {
	if loc := current.Load(); loc != nil {
		return loc
	}
	return time.UTC
}

// ParseDay reads YYYY-MM-DD as midnight in the business timezone.
func ParseDay(raw string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", raw, Current())
}

func Now() time.Time {
	return time.Now().In(Current())
}

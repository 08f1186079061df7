package timeutil

import (
	"fmt"
	"strings"
	"time"
)

const DayLayout = "2006-01-02"

func StartOfDay(value time.Time) time.Time {
	return time.Date(value.Year(), value.Month(), value.Day(), 0, 0, 0, 0, value.Location())
}

// ParseDay parses a YYYY-MM-DD value in the local time zone.
func ParseDay(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	parsed, err := time.ParseInLocation(DayLayout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", value)
	}
	return parsed, nil
}

func FormatDay(value time.Time) string {
	return value.Format(DayLayout)
}

// ElapsedMinutes returns the whole minutes between start and now, never negative.
func ElapsedMinutes(start, now time.Time) int {
	if !now.After(start) {
		return 0
	}
	return int(now.Sub(start) / time.Minute)
}

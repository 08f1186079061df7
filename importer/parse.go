package importer

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"worktally/internal/timeutil"
)

func parseGermanDecimalHoursToMinutes(raw string) (int, error) {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return 0, nil
	}
	if strings.Contains(cleaned, ",") {
		if strings.Contains(cleaned, ".") {
			cleaned = strings.ReplaceAll(cleaned, ".", "")
		}
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	}

	hours, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("parse hours %q: %w", raw, err)
	}

	minutes := int(math.Round(hours * 60))
	if minutes < 0 {
		return 0, fmt.Errorf("hours must not be negative")
	}
	return minutes, nil
}

// parseDate accepts ISO days, German dotted days and full timestamps.
// An empty value yields the zero time.
func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}
	if day, err := timeutil.ParseDay(value); err == nil {
		return day, nil
	}

	layouts := []string{
		"02.01.2006",
		time.RFC3339,
		"2006-01-02 15:04",
		"02.01.2006 15:04",
	}
	for _, layout := range layouts {
		if parsed, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return timeutil.StartOfDay(parsed), nil
		}
	}

	return time.Time{}, fmt.Errorf("unsupported date format: %q", value)
}

func splitBullets(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, "|")
	bullets := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			bullets = append(bullets, trimmed)
		}
	}
	return bullets
}

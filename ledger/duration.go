package ledger

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	hoursPattern   = regexp.MustCompile(`(?i)(\d+)\s*h`)
	minutesPattern = regexp.MustCompile(`(?i)(\d+)\s*m`)
	clockPattern   = regexp.MustCompile(`^(\d{1,3}):(\d{2})$`)
	strictPattern  = regexp.MustCompile(`^(?:(\d+)\s*h)?\s*(?:(\d+)\s*m(?:in)?)?$`)
	digitsPattern  = regexp.MustCompile(`^\d+$`)
)

// maxInputMinutes bounds user supplied durations.
const maxInputMinutes = math.MaxInt32

// ParseDuration converts free text such as "1h 30m", "45m" or "2H" into minutes.
// Text without an hour or minute token yields 0.
func ParseDuration(text string) int {
	return componentValue(hoursPattern, text, 60) + componentValue(minutesPattern, text, 1)
}

func componentValue(pattern *regexp.Regexp, text string, scale int) int {
	match := pattern.FindStringSubmatch(text)
	if match == nil {
		return 0
	}
	value, err := strconv.Atoi(match[1])
	if err != nil || value > math.MaxInt/scale {
		return 0
	}
	return value * scale
}

// FormatDuration renders minutes as "<H>h <M>m", "<H>h" or "<M>m".
func FormatDuration(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	h, m := minutes/60, minutes%60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dm", m)
	}
}

// ParseInput parses a user supplied duration strictly. It accepts "H:MM",
// "<N>h", "<N>m", "<N>h <N>m" and bare integers (minutes).
func ParseInput(raw string) (int, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" {
		return 0, fmt.Errorf("empty duration")
	}

	if match := clockPattern.FindStringSubmatch(value); match != nil {
		hours, _ := strconv.Atoi(match[1])
		minutes, _ := strconv.Atoi(match[2])
		if minutes >= 60 {
			return 0, fmt.Errorf("invalid duration %q: minutes must be < 60", raw)
		}
		return hours*60 + minutes, nil
	}

	if digitsPattern.MatchString(value) {
		minutes, err := strconv.Atoi(value)
		if err != nil || minutes > maxInputMinutes {
			return 0, fmt.Errorf("invalid duration %q: out of range", raw)
		}
		return minutes, nil
	}

	match := strictPattern.FindStringSubmatch(value)
	if match == nil || (match[1] == "" && match[2] == "") {
		return 0, fmt.Errorf("unrecognized duration %q (use 1h 30m, 45m or 1:30)", raw)
	}
	total := 0
	if match[1] != "" {
		hours, err := strconv.Atoi(match[1])
		if err != nil || hours > maxInputMinutes/60 {
			return 0, fmt.Errorf("invalid hours in %q: out of range", raw)
		}
		total += hours * 60
	}
	if match[2] != "" {
		minutes, err := strconv.Atoi(match[2])
		if err != nil || minutes > maxInputMinutes {
			return 0, fmt.Errorf("invalid minutes in %q: out of range", raw)
		}
		total += minutes
	}
	if total > maxInputMinutes {
		return 0, fmt.Errorf("invalid duration %q: out of range", raw)
	}
	return total, nil
}

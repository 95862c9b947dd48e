package planner

import (
	"strconv"
	"strings"
	"time"
)

// IsOpen reports whether place is open on date's weekday at the given hour.
// Comparison is at hour granularity: open when openHour <= hour < closeHour.
// A weekday in the closed list, or without a parseable range, is closed.
func IsOpen(place Place, date time.Time, hour int) bool {
	day := date.Weekday()
	if place.OpeningHours.ClosedOn(day) {
		return false
	}

	openHour, closeHour, ok := parseRange(place.OpeningHours.Range(day))
	if !ok {
		return false
	}
	return hour >= openHour && hour < closeHour
}

// parseRange reads "HH:MM-HH:MM" and returns the two hour components.
func parseRange(raw string) (int, int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, 0, false
	}
	parts := strings.Split(raw, "-")
	if len(parts) != 2 {
		return 0, 0, false
	}
	openHour, ok := parseHour(parts[0])
	if !ok {
		return 0, 0, false
	}
	closeHour, ok := parseHour(parts[1])
	if !ok {
		return 0, 0, false
	}
	return openHour, closeHour, true
}

func parseHour(clock string) (int, bool) {
	hh, mm, found := strings.Cut(strings.TrimSpace(clock), ":")
	if !found {
		return 0, false
	}
	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 0 || hour > 24 {
		return 0, false
	}
	// minutes must be well formed even though only the hour is used
	minute, err := strconv.Atoi(mm)
	if err != nil || len(mm) != 2 || minute < 0 || minute > 59 {
		return 0, false
	}
	if hour == 24 && minute != 0 {
		return 0, false
	}
	return hour, true
}

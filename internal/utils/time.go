package utils

import (
	"fmt"
	"time"

	"github.com/julianstephens/orbit/internal/constants"
)

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	_, err := LoadLocation(timezone)
	return err == nil
}

// StartOfDay truncates an instant to midnight of its calendar day in loc.
// A nil location means UTC.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	year, month, day := t.In(loc).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}

// SameDay reports whether two instants fall on the same calendar day in loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	return StartOfDay(a, loc).Equal(StartOfDay(b, loc))
}

// DayKey returns the YYYY-MM-DD key of the calendar day containing t in loc.
func DayKey(t time.Time, loc *time.Location) string {
	return StartOfDay(t, loc).Format(constants.DateFormat)
}

// AddDays moves a day by n calendar days, staying on midnight across DST changes.
func AddDays(day time.Time, n int) time.Time {
	year, month, d := day.Date()
	return time.Date(year, month, d+n, 0, 0, 0, 0, day.Location())
}

// ParseDateInLocation parses a date string (YYYY-MM-DD) as midnight in loc.
func ParseDateInLocation(dateStr string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", dateStr, err)
	}
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
}

// FormatTimestamp encodes an instant in the persisted ISO-8601 form.
func FormatTimestamp(t time.Time) string {
	return t.Format(constants.TimestampFormat)
}

// ParseTimestamp decodes a persisted ISO-8601 instant.
func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(constants.TimestampFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	return t, nil
}

// Package slot turns raw date and time strings into canonical one-hour
// booking slots and decides whether two slots overlap.
package slot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrMalformedInput is returned when a date or time string cannot be parsed.
var ErrMalformedInput = errors.New("malformed input")

// DateLayout is the accepted calendar-date format.
const DateLayout = "2006-01-02"

const minutesPerDay = 24 * 60

// TimeOfDay is a wall-clock time with no date or zone attached.
type TimeOfDay struct {
	Hour   int
	Minute int
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Minutes returns the time as minutes since midnight.
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

// ParseTimeOfDay parses "HH:MM" with hour in [0,23] and minute in [0,59].
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return TimeOfDay{}, fmt.Errorf("%w: time %q must be formatted HH:MM", ErrMalformedInput, s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: time %q has a non-numeric hour", ErrMalformedInput, s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: time %q has a non-numeric minute", ErrMalformedInput, s)
	}
	if hour < 0 || hour > 23 {
		return TimeOfDay{}, fmt.Errorf("%w: hour %d out of range [0,23]", ErrMalformedInput, hour)
	}
	if minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: minute %d out of range [0,59]", ErrMalformedInput, minute)
	}
	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// ParseDate parses a "YYYY-MM-DD" calendar date.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q must be formatted YYYY-MM-DD", ErrMalformedInput, s)
	}
	return d, nil
}

// EndHour returns the hour a booking ends at given its start hour.
// The 23:00 slot ends at midnight.
func EndHour(startHour int) int {
	if startHour < 23 {
		return startHour + 1
	}
	return 0
}

// FormatHour renders an hour as "HH:00".
func FormatHour(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}

// Slot is a one-hour reservation window on a single calendar date.
// End always lands on an hour boundary regardless of the start minute.
type Slot struct {
	Date  time.Time
	Start TimeOfDay
	End   TimeOfDay
}

// Normalize builds a Slot from raw "YYYY-MM-DD" and "HH:MM" strings.
// The start minute is preserved exactly; the end time is the next hour
// boundary after the start hour.
func Normalize(date, startTime string) (Slot, error) {
	d, err := ParseDate(date)
	if err != nil {
		return Slot{}, err
	}
	start, err := ParseTimeOfDay(startTime)
	if err != nil {
		return Slot{}, err
	}
	return Slot{
		Date:  d,
		Start: start,
		End:   TimeOfDay{Hour: EndHour(start.Hour)},
	}, nil
}

// Interval is a half-open [Start, End) range in minutes since midnight.
type Interval struct {
	Start int
	End   int
}

// NewInterval converts a start/end pair to minutes since midnight.
// An end of 00:00 means end of day (minute 1440), so the 23:00 slot
// becomes [1380,1440) instead of wrapping below its own start.
func NewInterval(start, end TimeOfDay) Interval {
	iv := Interval{Start: start.Minutes(), End: end.Minutes()}
	if iv.End <= iv.Start {
		iv.End = minutesPerDay
	}
	return iv
}

// Interval returns the slot's comparable interval form.
func (s Slot) Interval() Interval {
	return NewInterval(s.Start, s.End)
}

// Overlaps reports whether two intervals intersect. Three cases cover it:
// the candidate starts inside existing, the candidate ends inside existing,
// or existing is fully contained in the candidate.
func Overlaps(existing, candidate Interval) bool {
	return (existing.Start <= candidate.Start && existing.End > candidate.Start) ||
		(existing.Start < candidate.End && existing.End >= candidate.End) ||
		(existing.Start >= candidate.Start && existing.End <= candidate.End)
}

package domain

import (
	"fmt"
	"time"
)

// Wall-clock time within a single day, minute precision.
// Parsed from strict "HH:MM" input; the zero value is midnight.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses strict zero-padded "HH:MM" (00:00 .. 23:59).
// Any other shape (single digits, AM/PM, out-of-range values) is an error,
// never clamped.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if len(s) != 5 || s[2] != ':' {
		return TimeOfDay{}, fmt.Errorf("parse time of day %q: want HH:MM", s)
	}

	digits := [4]int{}
	for i, pos := range [4]int{0, 1, 3, 4} {
		c := s[pos]
		if c < '0' || c > '9' {
			return TimeOfDay{}, fmt.Errorf("parse time of day %q: want HH:MM", s)
		}
		digits[i] = int(c - '0')
	}

	h := digits[0]*10 + digits[1]
	m := digits[2]*10 + digits[3]
	if h > 23 {
		return TimeOfDay{}, fmt.Errorf("parse time of day %q: hour out of range", s)
	}
	if m > 59 {
		return TimeOfDay{}, fmt.Errorf("parse time of day %q: minute out of range", s)
	}

	return TimeOfDay{Hour: h, Minute: m}, nil
}

// Minutes since midnight (0..1439).
func (t TimeOfDay) Minutes() int { return t.Hour*60 + t.Minute }

func (t TimeOfDay) Before(other TimeOfDay) bool { return t.Minutes() < other.Minutes() }

// At anchors the wall-clock value on the calendar day of `day`,
// in that day's location.
func (t TimeOfDay) At(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour, t.Minute, 0, 0, day.Location())
}

// String renders zero-padded "HH:MM".
func (t TimeOfDay) String() string { return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute) }

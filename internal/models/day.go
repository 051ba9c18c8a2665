package models

import (
	"fmt"
	"time"

	"github.com/julianstephens/horta/internal/constants"
)

// Day is a calendar day in YYYY-MM-DD form. Two instants on the same
// calendar day always produce the same Day, whatever their time of day.
type Day string

// DayOf returns the calendar day of t in t's own location.
func DayOf(t time.Time) Day {
	return Day(t.Format(constants.DateFormat))
}

// ParseDay validates a YYYY-MM-DD string.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(constants.DateFormat, s)
	if err != nil {
		return "", fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", s, err)
	}
	return DayOf(t), nil
}

// Time returns midnight of the day in loc.
func (d Day) Time(loc *time.Location) time.Time {
	t, err := time.ParseInLocation(constants.DateFormat, string(d), loc)
	if err != nil {
		return time.Time{}
	}
	return t
}

func (d Day) AddDays(n int) Day {
	t := d.Time(time.UTC)
	return DayOf(t.AddDate(0, 0, n))
}

// The canonical format sorts lexicographically in calendar order.
func (d Day) Before(o Day) bool { return d < o }
func (d Day) After(o Day) bool  { return d > o }

func (d Day) String() string { return string(d) }

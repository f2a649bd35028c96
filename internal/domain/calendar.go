package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

// Date is a calendar date without a time of day or location.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// NewDate normalizes out-of-range values the way time.Date does.
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", s, ErrInvalidArgument)
	}
	return DateOf(t), nil
}

func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) midnight() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) Before(o Date) bool { return d.midnight().Before(o.midnight()) }
func (d Date) After(o Date) bool  { return d.midnight().After(o.midnight()) }
func (d Date) Equal(o Date) bool  { return d == o }

func (d Date) AddDays(n int) Date {
	return DateOf(d.midnight().AddDate(0, 0, n))
}

// At combines the date with a clock in loc. A nil loc means time.Local.
func (d Date) At(c Clock, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(d.Year, d.Month, d.Day, c.Hour(), c.Minute(), 0, 0, loc)
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.midnight().Format(dateLayout)
}

// Clock is a wall-clock time of day with minute resolution.
// The zero Clock is "unset"; use NewClock(0, 0) for midnight.
type Clock struct {
	min int
	set bool
}

func NewClock(hour, minute int) Clock {
	return Clock{min: hour*60 + minute, set: true}
}

// ClockOf returns the wall clock of t, truncated to the minute.
func ClockOf(t time.Time) Clock {
	return NewClock(t.Hour(), t.Minute())
}

// ParseClock parses an HH:MM clock.
func ParseClock(s string) (Clock, error) {
	t, err := time.Parse(clockLayout, strings.TrimSpace(s))
	if err != nil {
		return Clock{}, fmt.Errorf("invalid time %q (expected HH:MM): %w", s, ErrInvalidArgument)
	}
	return ClockOf(t), nil
}

func (c Clock) IsZero() bool { return !c.set }

func (c Clock) Hour() int   { return c.min / 60 }
func (c Clock) Minute() int { return c.min % 60 }

// Minutes returns the minutes since midnight.
func (c Clock) Minutes() int { return c.min }

// Add moves the clock by d (truncated to minutes). It does not wrap at midnight,
// so 23:30 + 1h reports hour 24.
func (c Clock) Add(d time.Duration) Clock {
	return Clock{min: c.min + int(d/time.Minute), set: c.set}
}

func (c Clock) Before(o Clock) bool { return c.min < o.min }
func (c Clock) After(o Clock) bool  { return c.min > o.min }

func (c Clock) String() string {
	if !c.set {
		return ""
	}
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

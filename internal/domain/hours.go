package domain

import "time"

// BookingStartInterval is the granularity of booking start times.
const BookingStartInterval = 30 * time.Minute

// ClinicHours is the daily window during which appointments may run.
type ClinicHours struct {
	Open  Clock
	Close Clock
}

func NewClinicHours(open, close Clock) (ClinicHours, error) {
	const op = "domain.new_clinic_hours"
	if open.IsZero() {
		return ClinicHours{}, invalidArgument(op, "Opening time cannot be null")
	}
	if close.IsZero() {
		return ClinicHours{}, invalidArgument(op, "Closing time cannot be null")
	}
	if open.Minutes()%int(BookingStartInterval/time.Minute) != 0 {
		return ClinicHours{}, invalidArgument(op, "Opening time must be on the hour or half hour")
	}
	if !close.After(open) {
		return ClinicHours{}, invalidArgument(op, "Closing time must be after opening time")
	}
	return ClinicHours{Open: open, Close: close}, nil
}

// DefaultClinicHours is 09:00 to 17:00.
func DefaultClinicHours() ClinicHours {
	return ClinicHours{Open: NewClock(9, 0), Close: NewClock(17, 0)}
}

// Contains reports whether [start, end] falls within the opening hours.
func (h ClinicHours) Contains(start, end Clock) bool {
	return !start.Before(h.Open) && !start.After(h.Close) && !end.After(h.Close)
}

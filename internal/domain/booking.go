package domain

import (
	"time"

	"github.com/google/uuid"
)

// minimumNotice is how far ahead of its start a booking must be made.
const minimumNotice = 2 * time.Hour

// Booking reserves a slot with a practitioner for a patient.
type Booking struct {
	ID           uuid.UUID
	Type         AppointmentType
	Date         Date
	Start        Clock
	Patient      *Patient
	Practitioner *Practitioner
}

// BookingRequest carries everything NewBooking validates.
// Earliest is "now" from the caller's point of view; the booking must start at least
// two hours after it. Date and Start are read in Earliest's location.
type BookingRequest struct {
	Earliest     time.Time
	Hours        *ClinicHours
	Type         AppointmentType
	Date         Date
	Start        Clock
	Patient      *Patient
	Practitioner *Practitioner
}

// NewBooking validates req and returns a booking, or a *ValidationError listing every
// problem found.
func NewBooking(req BookingRequest) (*Booking, error) {
	var problems problemList

	if req.Earliest.IsZero() {
		problems.add(ProblemEarliestDateMissing)
	}
	if req.Hours == nil {
		problems.add(ProblemClinicHoursMissing)
	}
	if !req.Type.Valid() {
		problems.add(ProblemTypeMissing)
	}
	if req.Date.IsZero() {
		problems.add(ProblemDateMissing)
	}
	if req.Start.IsZero() {
		problems.add(ProblemStartTimeMissing)
	}
	if req.Patient == nil {
		problems.add(ProblemPatientMissing)
	}
	if req.Practitioner == nil {
		problems.add(ProblemPractitionerMissing)
	}

	if !req.Earliest.IsZero() && req.Hours != nil && req.Type.Valid() && !req.Date.IsZero() && !req.Start.IsZero() {
		checkStartRules(&problems, req.Earliest, *req.Hours, req.Date, req.Start, req.Start.Add(req.Type.Duration()))
	}

	if err := problems.err("booking"); err != nil {
		return nil, err
	}

	return &Booking{
		ID:           uuid.New(),
		Type:         req.Type,
		Date:         req.Date,
		Start:        req.Start,
		Patient:      req.Patient,
		Practitioner: req.Practitioner,
	}, nil
}

// RestoreBooking rebuilds a stored booking without re-running the start rules,
// which only hold at the time the booking was made.
func RestoreBooking(id uuid.UUID, typ AppointmentType, date Date, start Clock, patient *Patient, practitioner *Practitioner) (*Booking, error) {
	const op = "domain.restore_booking"
	if id == uuid.Nil {
		return nil, invalidArgument(op, "Booking ID cannot be null")
	}
	if !typ.Valid() {
		return nil, invalidArgument(op, "Appointment type cannot be null")
	}
	if date.IsZero() {
		return nil, invalidArgument(op, "Booking date cannot be null")
	}
	if start.IsZero() {
		return nil, invalidArgument(op, "Booking start time cannot be null")
	}
	if patient == nil {
		return nil, invalidArgument(op, "Booking patient cannot be null")
	}
	if practitioner == nil {
		return nil, invalidArgument(op, "Booking practitioner cannot be null")
	}
	return &Booking{ID: id, Type: typ, Date: date, Start: start, Patient: patient, Practitioner: practitioner}, nil
}

// checkStartRules applies the booking business rules:
//   - the date and start time are not in the past
//   - bookings start on the hour or half hour
//   - bookings are made at least two hours ahead
//   - the appointment starts and ends within clinic hours
func checkStartRules(problems *problemList, earliest time.Time, hours ClinicHours, date Date, start, end Clock) {
	today := DateOf(earliest)
	if date.Before(today) {
		problems.add(ProblemDateInPast)
	}
	if date.Equal(today) && start.Before(ClockOf(earliest)) {
		problems.add(ProblemTimeInPast)
	}
	if start.Minute()%int(BookingStartInterval/time.Minute) != 0 {
		problems.add(ProblemDesiredStartTime)
	}
	if !earliest.Add(minimumNotice).Before(date.At(start, earliest.Location())) {
		problems.add(ProblemTooSoonToAppointment)
	}
	if !hours.Contains(start, end) {
		problems.add(ProblemOutsideBusinessHours)
	}
}

func (b *Booking) EndTime() Clock {
	return b.Start.Add(b.Type.Duration())
}

// StartsAt returns the booking start as an instant in loc.
func (b *Booking) StartsAt(loc *time.Location) time.Time {
	return b.Date.At(b.Start, loc)
}

// Overlaps reports whether b overlaps any of others on the same date.
// A booking never overlaps itself.
func (b *Booking) Overlaps(others []*Booking) bool {
	end := b.EndTime()
	for _, o := range others {
		if o == nil || o.ID == b.ID || !o.Date.Equal(b.Date) {
			continue
		}
		if TimesOverlap(b.Start, end, o.Start, o.EndTime()) {
			return true
		}
	}
	return false
}

// OverlapsAny reports whether [start, end) overlaps any of the bookings.
// Callers pass bookings for a single date.
func OverlapsAny(start, end Clock, bookings []*Booking) bool {
	for _, o := range bookings {
		if o == nil {
			continue
		}
		if TimesOverlap(start, end, o.Start, o.EndTime()) {
			return true
		}
	}
	return false
}

// TimesOverlap reports whether two half-open intervals intersect.
func TimesOverlap(firstStart, firstEnd, secondStart, secondEnd Clock) bool {
	return secondStart.Before(firstEnd) && secondEnd.After(firstStart)
}

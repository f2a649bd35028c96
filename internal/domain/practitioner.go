package domain

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Practitioner owns its bookings and appointments. It is not safe for concurrent use;
// callers rehydrate one aggregate per request.
type Practitioner struct {
	ID          uuid.UUID
	FirstName   string
	LastName    string
	PhoneNumber string
	Email       string

	bookings     []*Booking
	appointments []*Appointment
	now          func() time.Time
}

type PractitionerOption func(*Practitioner)

// WithClock sets the source of "now" used for booking rules. Useful for tests.
func WithClock(now func() time.Time) PractitionerOption {
	return func(p *Practitioner) {
		if now != nil {
			p.now = now
		}
	}
}

// WithBookings seeds existing bookings, e.g. when loading from a store.
// Bookings are re-pointed at this practitioner.
func WithBookings(bookings ...*Booking) PractitionerOption {
	return func(p *Practitioner) {
		for _, b := range bookings {
			if b == nil {
				continue
			}
			b.Practitioner = p
			p.bookings = append(p.bookings, b)
		}
	}
}

func NewPractitioner(firstName, lastName, phoneNumber, email string, opts ...PractitionerOption) (*Practitioner, error) {
	return RestorePractitioner(uuid.New(), firstName, lastName, phoneNumber, email, opts...)
}

// RestorePractitioner rebuilds a practitioner with a known ID.
func RestorePractitioner(id uuid.UUID, firstName, lastName, phoneNumber, email string, opts ...PractitionerOption) (*Practitioner, error) {
	const op = "domain.new_practitioner"
	if id == uuid.Nil {
		return nil, invalidArgument(op, "Practitioner ID cannot be null")
	}
	if err := checkPerson(op, "Practitioner", firstName, lastName, phoneNumber, email); err != nil {
		return nil, err
	}

	p := &Practitioner{
		ID:          id,
		FirstName:   firstName,
		LastName:    lastName,
		PhoneNumber: phoneNumber,
		Email:       email,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

func (p *Practitioner) FullName() string {
	return p.FirstName + " " + p.LastName
}

// Bookings returns a copy of all bookings.
func (p *Practitioner) Bookings() []*Booking {
	out := make([]*Booking, len(p.bookings))
	copy(out, p.bookings)
	return out
}

// Appointments returns a copy of all appointments.
func (p *Practitioner) Appointments() []*Appointment {
	out := make([]*Appointment, len(p.appointments))
	copy(out, p.appointments)
	return out
}

// ListBookings returns the bookings on date, ordered by start time.
func (p *Practitioner) ListBookings(date Date) []*Booking {
	out := make([]*Booking, 0)
	for _, b := range p.bookings {
		if b.Date.Equal(date) {
			out = append(out, b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out
}

// AvailableTimes lists start times on date where an appointment of typ fits within hours
// without overlapping an existing booking. Candidates are spaced BookingStartInterval apart
// starting at opening time.
func (p *Practitioner) AvailableTimes(date Date, typ AppointmentType, hours ClinicHours) []Clock {
	times := make([]Clock, 0)
	if !typ.Valid() {
		return times
	}

	existing := p.ListBookings(date)
	for start := hours.Open; start.Before(hours.Close); start = start.Add(BookingStartInterval) {
		end := start.Add(typ.Duration())
		if end.After(hours.Close) {
			continue
		}
		if OverlapsAny(start, end, existing) {
			continue
		}
		times = append(times, start)
	}
	return times
}

// CancelBooking removes the booking and reports whether it was found.
func (p *Practitioner) CancelBooking(b *Booking) bool {
	if b == nil {
		return false
	}
	for i, got := range p.bookings {
		if got.ID == b.ID {
			p.bookings = append(p.bookings[:i], p.bookings[i+1:]...)
			return true
		}
	}
	return false
}

// AddBooking books patient into the slot if it passes the booking rules and is free.
// Missing arguments are programming errors and return KindInvalidArgument; rule failures
// return a *ValidationError.
func (p *Practitioner) AddBooking(patient *Patient, clinic *Clinic, typ AppointmentType, date Date, start Clock) (*Booking, error) {
	const op = "domain.add_booking"
	if patient == nil {
		return nil, invalidArgument(op, "Patient cannot be null")
	}
	if clinic == nil {
		return nil, invalidArgument(op, "Clinic cannot be null")
	}
	if typ == "" {
		return nil, invalidArgument(op, "Appointment type cannot be null")
	}
	if date.IsZero() || start.IsZero() {
		return nil, invalidArgument(op, "Date and time for booking cannot be null")
	}

	hours := clinic.Hours
	booking, err := NewBooking(BookingRequest{
		Earliest:     p.now(),
		Hours:        &hours,
		Type:         typ,
		Date:         date,
		Start:        start,
		Patient:      patient,
		Practitioner: p,
	})
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, &ValidationError{Subject: "booking", Problems: []Problem{ProblemCannotCreateBooking}}
	}

	if booking.Overlaps(p.ListBookings(date)) {
		return nil, &ValidationError{Subject: "booking", Problems: []Problem{ProblemBookingOverlapsAnother}}
	}

	p.bookings = append(p.bookings, booking)
	return booking, nil
}

// CreateAppointment turns a booking into an appointment on this practitioner's list.
func (p *Practitioner) CreateAppointment(b *Booking) (*Appointment, error) {
	if b == nil {
		return nil, &ValidationError{Subject: "appointment", Problems: []Problem{ProblemCannotCreateAppointment}}
	}

	appt, err := NewAppointment(AppointmentRequest{
		Earliest:     p.now(),
		BookingID:    b.ID,
		Type:         b.Type,
		Date:         b.Date,
		Start:        b.Start,
		Patient:      b.Patient,
		Practitioner: p,
	})
	if err != nil {
		return nil, err
	}

	p.appointments = append(p.appointments, appt)
	return appt, nil
}

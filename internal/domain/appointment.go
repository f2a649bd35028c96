package domain

import (
	"time"

	"github.com/google/uuid"
)

// Appointment is a booking the practitioner has taken on.
type Appointment struct {
	ID           uuid.UUID
	BookingID    uuid.UUID // uuid.Nil when not created from a booking
	Type         AppointmentType
	Date         Date
	Start        Clock
	Patient      *Patient
	Practitioner *Practitioner
	Notes        string
}

type AppointmentRequest struct {
	Earliest     time.Time
	BookingID    uuid.UUID
	Type         AppointmentType
	Date         Date
	Start        Clock
	Patient      *Patient
	Practitioner *Practitioner
}

// NewAppointment checks that every field is present. Timing rules belong to the booking.
func NewAppointment(req AppointmentRequest) (*Appointment, error) {
	var problems problemList

	if req.Earliest.IsZero() {
		problems.add(ProblemEarliestDateMissing)
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

	if err := problems.err("appointment"); err != nil {
		return nil, err
	}

	return &Appointment{
		ID:           uuid.New(),
		BookingID:    req.BookingID,
		Type:         req.Type,
		Date:         req.Date,
		Start:        req.Start,
		Patient:      req.Patient,
		Practitioner: req.Practitioner,
	}, nil
}

func (a *Appointment) SetNotes(notes string) {
	a.Notes = notes
}

func (a *Appointment) Duration() time.Duration {
	return a.Type.Duration()
}

func (a *Appointment) IsConsultation() bool {
	return a.Type.IsConsultation()
}

func (a *Appointment) EndTime() Clock {
	return a.Start.Add(a.Type.Duration())
}

package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/dkittle/Jane-clinic-exercise/internal/domain"
)

// PatientRepository persists patients. Get returns a domain.ErrNotFound-wrapping
// error for unknown IDs.
type PatientRepository interface {
	SavePatient(ctx context.Context, p *domain.Patient) error
	GetPatient(ctx context.Context, id uuid.UUID) (*domain.Patient, error)
	ListPatients(ctx context.Context) ([]*domain.Patient, error)
}

type PractitionerRepository interface {
	SavePractitioner(ctx context.Context, p *domain.Practitioner) error
	GetPractitioner(ctx context.Context, id uuid.UUID) (*domain.Practitioner, error)
	ListPractitioners(ctx context.Context) ([]*domain.Practitioner, error)
}

// BookingStore persists bookings. Loaded bookings reference fully loaded patients and
// practitioners.
type BookingStore interface {
	SaveBooking(ctx context.Context, b *domain.Booking) error
	GetBooking(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	DeleteBooking(ctx context.Context, id uuid.UUID) error
	ListBookings(ctx context.Context, practitionerID uuid.UUID, date domain.Date) ([]*domain.Booking, error)
}

type AppointmentStore interface {
	SaveAppointment(ctx context.Context, a *domain.Appointment) error
	// ListAppointments returns appointments on date; uuid.Nil matches every practitioner.
	ListAppointments(ctx context.Context, practitionerID uuid.UUID, date domain.Date) ([]*domain.Appointment, error)
}

package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/dkittle/Jane-clinic-exercise/internal/domain"
	"github.com/dkittle/Jane-clinic-exercise/internal/ports"
)

type BookInput struct {
	PatientID      uuid.UUID
	PractitionerID uuid.UUID
	Type           domain.AppointmentType
	Date           domain.Date
	Start          domain.Clock
}

type BookAppointment struct {
	clinic        *domain.Clinic
	patients      ports.PatientRepository
	practitioners ports.PractitionerRepository
	bookings      ports.BookingStore
	settings
}

func NewBookAppointment(clinic *domain.Clinic, pr ports.PatientRepository, prr ports.PractitionerRepository, bs ports.BookingStore, opts ...Option) *BookAppointment {
	return &BookAppointment{
		clinic:        clinic,
		patients:      pr,
		practitioners: prr,
		bookings:      bs,
		settings:      newSettings(opts),
	}
}

// Execute books the slot if it is free and passes the booking rules, then persists it.
func (uc *BookAppointment) Execute(ctx context.Context, in BookInput) (*domain.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	patient, err := uc.patients.GetPatient(ctx, in.PatientID)
	if err != nil {
		return nil, err
	}
	stored, err := uc.practitioners.GetPractitioner(ctx, in.PractitionerID)
	if err != nil {
		return nil, err
	}
	existing, err := uc.bookings.ListBookings(ctx, stored.ID, in.Date)
	if err != nil {
		return nil, err
	}

	practitioner, err := uc.rehydrate(stored, existing)
	if err != nil {
		return nil, err
	}

	booking, err := practitioner.AddBooking(patient, uc.clinic, in.Type, in.Date, in.Start)
	if err != nil {
		uc.logRejected(in, err)
		return nil, err
	}

	// Another writer may have taken the slot since ListBookings; the store re-checks.
	if err := uc.bookings.SaveBooking(ctx, booking); err != nil {
		uc.logRejected(in, err)
		return nil, err
	}

	uc.log.Info("booking.created",
		"booking_id", booking.ID.String(),
		"practitioner_id", stored.ID.String(),
		"patient_id", patient.ID.String(),
		"type", string(booking.Type),
		"date", booking.Date.String(),
		"start", booking.Start.String(),
	)
	return booking, nil
}

func (uc *BookAppointment) logRejected(in BookInput, err error) {
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		return
	}
	uc.log.Info("booking.rejected",
		"practitioner_id", in.PractitionerID.String(),
		"patient_id", in.PatientID.String(),
		"date", in.Date.String(),
		"start", in.Start.String(),
		"problems", ve.Problems,
	)
}

package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dkittle/Jane-clinic-exercise/internal/domain"
	"github.com/dkittle/Jane-clinic-exercise/internal/ports"
)

type ConfirmAppointment struct {
	bookings     ports.BookingStore
	appointments ports.AppointmentStore
	settings
}

func NewConfirmAppointment(bs ports.BookingStore, as ports.AppointmentStore, opts ...Option) *ConfirmAppointment {
	return &ConfirmAppointment{bookings: bs, appointments: as, settings: newSettings(opts)}
}

// Execute creates the appointment for a stored booking. A booking can be confirmed once.
func (uc *ConfirmAppointment) Execute(ctx context.Context, bookingID uuid.UUID, notes string) (*domain.Appointment, error) {
	booking, err := uc.bookings.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	confirmed, err := uc.appointments.ListAppointments(ctx, booking.Practitioner.ID, booking.Date)
	if err != nil {
		return nil, err
	}
	for _, a := range confirmed {
		if a.BookingID == booking.ID {
			return nil, &domain.OpError{
				Op:   "usecase.confirm_appointment",
				Kind: domain.KindConflict,
				Err:  fmt.Errorf("booking %s already confirmed as appointment %s: %w", booking.ID, a.ID, domain.ErrConflict),
			}
		}
	}

	practitioner, err := uc.rehydrate(booking.Practitioner, []*domain.Booking{booking})
	if err != nil {
		return nil, err
	}
	appt, err := practitioner.CreateAppointment(booking)
	if err != nil {
		return nil, err
	}
	appt.SetNotes(notes)

	if err := uc.appointments.SaveAppointment(ctx, appt); err != nil {
		return nil, err
	}

	uc.log.Info("appointment.created",
		"appointment_id", appt.ID.String(),
		"booking_id", booking.ID.String(),
		"consultation", appt.IsConsultation(),
	)
	return appt, nil
}

package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dkittle/Jane-clinic-exercise/internal/domain"
	"github.com/dkittle/Jane-clinic-exercise/internal/ports"
)

type CancelBooking struct {
	bookings ports.BookingStore
	settings
}

func NewCancelBooking(bs ports.BookingStore, opts ...Option) *CancelBooking {
	return &CancelBooking{bookings: bs, settings: newSettings(opts)}
}

func (uc *CancelBooking) Execute(ctx context.Context, bookingID uuid.UUID) error {
	booking, err := uc.bookings.GetBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	existing, err := uc.bookings.ListBookings(ctx, booking.Practitioner.ID, booking.Date)
	if err != nil {
		return err
	}
	practitioner, err := uc.rehydrate(booking.Practitioner, existing)
	if err != nil {
		return err
	}
	if !practitioner.CancelBooking(booking) {
		return &domain.OpError{
			Op:   "usecase.cancel_booking",
			Kind: domain.KindNotFound,
			Err:  fmt.Errorf("booking %s: %w", bookingID, domain.ErrNotFound),
		}
	}

	if err := uc.bookings.DeleteBooking(ctx, bookingID); err != nil {
		return err
	}

	uc.log.Info("booking.cancelled",
		"booking_id", bookingID.String(),
		"practitioner_id", practitioner.ID.String(),
		"date", booking.Date.String(),
	)
	return nil
}

package tui

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dkittle/Jane-clinic-exercise/internal/domain"
	"github.com/dkittle/Jane-clinic-exercise/internal/ports"
	"github.com/dkittle/Jane-clinic-exercise/internal/usecase"
)

// OpeningsFinder is satisfied by *usecase.FindOpenings.
type OpeningsFinder interface {
	Execute(ctx context.Context, date domain.Date, typ domain.AppointmentType, practitionerIDs ...uuid.UUID) ([]usecase.Openings, error)
}

// Booker is satisfied by *usecase.BookAppointment.
type Booker interface {
	Execute(ctx context.Context, in usecase.BookInput) (*domain.Booking, error)
}

type Deps struct {
	Clinic   *domain.Clinic
	Patients ports.PatientRepository
	Openings OpeningsFinder
	Booker   Booker

	// Date is the first day offered; the picker can move from there.
	Date  domain.Date
	Today domain.Date

	Logger *slog.Logger
	Debug  bool
}

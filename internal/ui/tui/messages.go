package tui

import (
	"github.com/dkittle/Jane-clinic-exercise/internal/domain"
	"github.com/dkittle/Jane-clinic-exercise/internal/usecase"
)

type patientsLoadedMsg struct {
	patients []*domain.Patient
	err      error
}

type openingsLoadedMsg struct {
	date     domain.Date
	typ      domain.AppointmentType
	openings []usecase.Openings
	err      error
}

type bookedMsg struct {
	booking *domain.Booking
	err     error
}

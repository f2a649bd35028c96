package tui

import (
	"context"
	"errors"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dkittle/Jane-clinic-exercise/internal/domain"
	"github.com/dkittle/Jane-clinic-exercise/internal/usecase"
)

const cmdTimeout = 10 * time.Second

func cmdLoadPatients(deps Deps) tea.Cmd {
	return func() tea.Msg {
		if deps.Patients == nil {
			return patientsLoadedMsg{err: errors.New("patient repository is nil")}
		}
		ctx, cancel := context.WithTimeout(context.Background(), cmdTimeout)
		defer cancel()

		patients, err := deps.Patients.ListPatients(ctx)
		return patientsLoadedMsg{patients: patients, err: err}
	}
}

func cmdLoadOpenings(deps Deps, date domain.Date, typ domain.AppointmentType) tea.Cmd {
	return func() tea.Msg {
		if deps.Openings == nil {
			return openingsLoadedMsg{date: date, typ: typ, err: errors.New("openings finder is nil")}
		}
		ctx, cancel := context.WithTimeout(context.Background(), cmdTimeout)
		defer cancel()

		openings, err := deps.Openings.Execute(ctx, date, typ)
		return openingsLoadedMsg{date: date, typ: typ, openings: openings, err: err}
	}
}

func cmdBook(deps Deps, in usecase.BookInput, log *slog.Logger) tea.Cmd {
	return func() tea.Msg {
		if deps.Booker == nil {
			return bookedMsg{err: errors.New("booker is nil")}
		}
		ctx, cancel := context.WithTimeout(context.Background(), cmdTimeout)
		defer cancel()

		log.Debug("tui.book",
			"patient_id", in.PatientID.String(),
			"practitioner_id", in.PractitionerID.String(),
			"date", in.Date.String(),
			"start", in.Start.String(),
		)
		b, err := deps.Booker.Execute(ctx, in)
		return bookedMsg{booking: b, err: err}
	}
}

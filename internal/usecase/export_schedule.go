package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/dkittle/Jane-clinic-exercise/internal/domain"
	"github.com/dkittle/Jane-clinic-exercise/internal/ports"
)

type ExportSchedule struct {
	clinic        *domain.Clinic
	practitioners ports.PractitionerRepository
	bookings      ports.BookingStore
	appointments  ports.AppointmentStore
	exporter      ports.ScheduleExporter
	settings
}

func NewExportSchedule(clinic *domain.Clinic, prr ports.PractitionerRepository, bs ports.BookingStore, as ports.AppointmentStore, ex ports.ScheduleExporter, opts ...Option) *ExportSchedule {
	return &ExportSchedule{
		clinic:        clinic,
		practitioners: prr,
		bookings:      bs,
		appointments:  as,
		exporter:      ex,
		settings:      newSettings(opts),
	}
}

// Build assembles the clinic's schedule for date without persisting it.
func (uc *ExportSchedule) Build(ctx context.Context, date domain.Date) (domain.ScheduleExport, error) {
	out := domain.ScheduleExport{
		Clinic:      uc.clinic.Name,
		Date:        date.String(),
		GeneratedAt: uc.clock(),
		Entries:     []domain.ScheduleEntry{},
	}

	appts, err := uc.appointments.ListAppointments(ctx, uuid.Nil, date)
	if err != nil {
		return out, err
	}
	byBooking := make(map[uuid.UUID]*domain.Appointment, len(appts))
	for _, a := range appts {
		byBooking[a.BookingID] = a
	}

	practitioners, err := uc.practitioners.ListPractitioners(ctx)
	if err != nil {
		return out, err
	}
	for _, p := range practitioners {
		bookings, err := uc.bookings.ListBookings(ctx, p.ID, date)
		if err != nil {
			return out, err
		}
		for _, b := range bookings {
			entry := domain.ScheduleEntry{
				BookingID:    b.ID.String(),
				Practitioner: p.FullName(),
				Patient:      b.Patient.FullName(),
				PatientPhone: b.Patient.PhoneNumber,
				PatientEmail: b.Patient.Email,
				Type:         string(b.Type),
				Start:        b.Start.String(),
				End:          b.EndTime().String(),
			}
			if a, ok := byBooking[b.ID]; ok {
				entry.Confirmed = true
				entry.Notes = a.Notes
			}
			out.Entries = append(out.Entries, entry)
		}
	}
	return out, nil
}

// Execute builds and exports the schedule, returning the export ID.
func (uc *ExportSchedule) Execute(ctx context.Context, date domain.Date) (string, error) {
	sched, err := uc.Build(ctx, date)
	if err != nil {
		return "", err
	}
	id, err := uc.exporter.Export(sched)
	if err != nil {
		return "", err
	}
	uc.log.Info("schedule.exported", "id", id, "date", sched.Date, "entries", len(sched.Entries))
	return id, nil
}

package cli

import (
	"github.com/dkittle/Jane-clinic-exercise/internal/domain"
	"github.com/dkittle/Jane-clinic-exercise/internal/usecase"
)

type personView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type bookingView struct {
	ID           string `json:"id"`
	Practitioner string `json:"practitioner"`
	Patient      string `json:"patient"`
	Type         string `json:"type"`
	Date         string `json:"date"`
	Start        string `json:"start"`
	End          string `json:"end"`
}

type appointmentView struct {
	ID           string `json:"id"`
	BookingID    string `json:"booking_id"`
	Practitioner string `json:"practitioner"`
	Patient      string `json:"patient"`
	Type         string `json:"type"`
	Date         string `json:"date"`
	Start        string `json:"start"`
	End          string `json:"end"`
	Notes        string `json:"notes,omitempty"`
}

type openingsView struct {
	PractitionerID string   `json:"practitioner_id"`
	Practitioner   string   `json:"practitioner"`
	Date           string   `json:"date"`
	Type           string   `json:"type"`
	Times          []string `json:"times"`
}

func patientViews(in []*domain.Patient) []personView {
	out := make([]personView, 0, len(in))
	for _, p := range in {
		out = append(out, personView{ID: p.ID.String(), Name: p.FullName(), Phone: p.PhoneNumber, Email: p.Email})
	}
	return out
}

func practitionerViews(in []*domain.Practitioner) []personView {
	out := make([]personView, 0, len(in))
	for _, p := range in {
		out = append(out, personView{ID: p.ID.String(), Name: p.FullName(), Phone: p.PhoneNumber, Email: p.Email})
	}
	return out
}

func newBookingView(b *domain.Booking) bookingView {
	return bookingView{
		ID:           b.ID.String(),
		Practitioner: b.Practitioner.FullName(),
		Patient:      b.Patient.FullName(),
		Type:         string(b.Type),
		Date:         b.Date.String(),
		Start:        b.Start.String(),
		End:          b.EndTime().String(),
	}
}

func newAppointmentView(a *domain.Appointment) appointmentView {
	return appointmentView{
		ID:           a.ID.String(),
		BookingID:    a.BookingID.String(),
		Practitioner: a.Practitioner.FullName(),
		Patient:      a.Patient.FullName(),
		Type:         string(a.Type),
		Date:         a.Date.String(),
		Start:        a.Start.String(),
		End:          a.EndTime().String(),
		Notes:        a.Notes,
	}
}

func newOpeningsViews(date domain.Date, typ domain.AppointmentType, in []usecase.Openings) []openingsView {
	out := make([]openingsView, 0, len(in))
	for _, o := range in {
		times := make([]string, 0, len(o.Times))
		for _, t := range o.Times {
			times = append(times, t.String())
		}
		out = append(out, openingsView{
			PractitionerID: o.Practitioner.ID.String(),
			Practitioner:   o.Practitioner.FullName(),
			Date:           date.String(),
			Type:           string(typ),
			Times:          times,
		})
	}
	return out
}

package sqlitestore

import (
	"context"

	"github.com/google/uuid"

	"github.com/dkittle/Jane-clinic-exercise/internal/domain"
)

func (s *Store) SaveAppointment(ctx context.Context, a *domain.Appointment) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO appointments (id, booking_id, practitioner_id, patient_id, type, date, start, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET notes = excluded.notes`,
		a.ID.String(), a.BookingID.String(), a.Practitioner.ID.String(), a.Patient.ID.String(),
		string(a.Type), a.Date.String(), a.Start.String(), a.Notes,
	)
	return s.wrap("sqlitestore.save_appointment", err)
}

func (s *Store) ListAppointments(ctx context.Context, practitionerID uuid.UUID, date domain.Date) ([]*domain.Appointment, error) {
	const op = "sqlitestore.list_appointments"

	query := `
		SELECT id, booking_id, practitioner_id, patient_id, type, date, start, notes
		FROM appointments WHERE date = ?`
	args := []any{date.String()}
	if practitionerID != uuid.Nil {
		query += ` AND practitioner_id = ?`
		args = append(args, practitionerID.String())
	}
	query += ` ORDER BY start, practitioner_id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, s.wrap(op, err)
	}

	type apptRow struct {
		slotRow
		bookingID, notes string
	}
	var raw []apptRow
	for rows.Next() {
		var r apptRow
		if err := rows.Scan(&r.id, &r.bookingID, &r.practitionerID, &r.patientID, &r.typ, &r.date, &r.start, &r.notes); err != nil {
			rows.Close()
			return nil, s.wrap(op, err)
		}
		raw = append(raw, r)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, s.wrap(op, err)
	}

	people := newPeopleCache(s)
	out := make([]*domain.Appointment, 0, len(raw))
	for _, r := range raw {
		v, err := r.resolve(ctx, op, people)
		if err != nil {
			return nil, s.wrap(op, err)
		}
		bookingID, err := uuid.Parse(r.bookingID)
		if err != nil {
			return nil, corrupt(op, err)
		}
		out = append(out, &domain.Appointment{
			ID:           v.id,
			BookingID:    bookingID,
			Type:         v.typ,
			Date:         v.date,
			Start:        v.start,
			Patient:      v.patient,
			Practitioner: v.practitioner,
			Notes:        r.notes,
		})
	}
	return out, nil
}

package sqlitestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dkittle/Jane-clinic-exercise/internal/domain"
)

// SaveBooking inserts b unless it overlaps a stored booking for the same practitioner
// and date. The check and the insert are one statement, so concurrent writers cannot
// both claim a slot. An overlap is reported as a ValidationError.
func (s *Store) SaveBooking(ctx context.Context, b *domain.Booking) error {
	const op = "sqlitestore.save_booking"
	practitionerID, date := b.Practitioner.ID.String(), b.Date.String()
	start, finish := b.Start.String(), b.EndTime().String()

	// HH:MM compares correctly as text.
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO bookings (id, practitioner_id, patient_id, type, date, start, finish)
		SELECT ?, ?, ?, ?, ?, ?, ?
		WHERE NOT EXISTS (
			SELECT 1 FROM bookings
			WHERE practitioner_id = ? AND date = ? AND start < ? AND finish > ?
		)`,
		b.ID.String(), practitionerID, b.Patient.ID.String(), string(b.Type), date, start, finish,
		practitionerID, date, finish, start,
	)
	if err != nil {
		return s.wrap(op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return s.wrap(op, err)
	}
	if n == 0 {
		return &domain.ValidationError{Subject: "booking", Problems: []domain.Problem{domain.ProblemBookingOverlapsAnother}}
	}
	return nil
}

func (s *Store) GetBooking(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	const op = "sqlitestore.get_booking"
	var r slotRow
	err := s.db.QueryRowContext(ctx, `
		SELECT id, practitioner_id, patient_id, type, date, start
		FROM bookings WHERE id = ?`, id.String(),
	).Scan(&r.id, &r.practitionerID, &r.patientID, &r.typ, &r.date, &r.start)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound(op, "booking", id)
	}
	if err != nil {
		return nil, s.wrap(op, err)
	}

	people := newPeopleCache(s)
	b, err := r.booking(ctx, op, people)
	return b, s.wrap(op, err)
}

func (s *Store) DeleteBooking(ctx context.Context, id uuid.UUID) error {
	const op = "sqlitestore.delete_booking"
	res, err := s.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = ?`, id.String())
	if err != nil {
		return s.wrap(op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return s.wrap(op, err)
	}
	if n == 0 {
		return notFound(op, "booking", id)
	}
	return nil
}

func (s *Store) ListBookings(ctx context.Context, practitionerID uuid.UUID, date domain.Date) ([]*domain.Booking, error) {
	const op = "sqlitestore.list_bookings"
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, practitioner_id, patient_id, type, date, start
		FROM bookings WHERE practitioner_id = ? AND date = ?
		ORDER BY start`, practitionerID.String(), date.String(),
	)
	if err != nil {
		return nil, s.wrap(op, err)
	}

	var raw []slotRow
	for rows.Next() {
		var r slotRow
		if err := rows.Scan(&r.id, &r.practitionerID, &r.patientID, &r.typ, &r.date, &r.start); err != nil {
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
	out := make([]*domain.Booking, 0, len(raw))
	for _, r := range raw {
		b, err := r.booking(ctx, op, people)
		if err != nil {
			return nil, s.wrap(op, err)
		}
		out = append(out, b)
	}
	return out, nil
}

// slotRow holds the columns shared by bookings and appointments.
type slotRow struct {
	id, practitionerID, patientID string
	typ, date, start              string
}

type slotValues struct {
	id           uuid.UUID
	typ          domain.AppointmentType
	date         domain.Date
	start        domain.Clock
	patient      *domain.Patient
	practitioner *domain.Practitioner
}

func (r slotRow) resolve(ctx context.Context, op string, people *peopleCache) (slotValues, error) {
	var v slotValues
	var err error
	if v.id, err = uuid.Parse(r.id); err != nil {
		return v, corrupt(op, err)
	}
	if v.typ, err = domain.ParseAppointmentType(r.typ); err != nil {
		return v, corrupt(op, err)
	}
	if v.date, err = domain.ParseDate(r.date); err != nil {
		return v, corrupt(op, err)
	}
	if v.start, err = domain.ParseClock(r.start); err != nil {
		return v, corrupt(op, err)
	}
	if v.patient, err = people.patient(ctx, r.patientID); err != nil {
		return v, err
	}
	if v.practitioner, err = people.practitioner(ctx, r.practitionerID); err != nil {
		return v, err
	}
	return v, nil
}

func (r slotRow) booking(ctx context.Context, op string, people *peopleCache) (*domain.Booking, error) {
	v, err := r.resolve(ctx, op, people)
	if err != nil {
		return nil, err
	}
	b, err := domain.RestoreBooking(v.id, v.typ, v.date, v.start, v.patient, v.practitioner)
	if err != nil {
		return nil, corrupt(op, err)
	}
	return b, nil
}

// peopleCache loads each referenced patient and practitioner once per query.
type peopleCache struct {
	s             *Store
	patients      map[string]*domain.Patient
	practitioners map[string]*domain.Practitioner
}

func newPeopleCache(s *Store) *peopleCache {
	return &peopleCache{
		s:             s,
		patients:      map[string]*domain.Patient{},
		practitioners: map[string]*domain.Practitioner{},
	}
}

func (c *peopleCache) patient(ctx context.Context, raw string) (*domain.Patient, error) {
	if p, ok := c.patients[raw]; ok {
		return p, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("patient id %q: %w", raw, err)
	}
	p, err := c.s.GetPatient(ctx, id)
	if err != nil {
		return nil, err
	}
	c.patients[raw] = p
	return p, nil
}

func (c *peopleCache) practitioner(ctx context.Context, raw string) (*domain.Practitioner, error) {
	if p, ok := c.practitioners[raw]; ok {
		return p, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("practitioner id %q: %w", raw, err)
	}
	p, err := c.s.GetPractitioner(ctx, id)
	if err != nil {
		return nil, err
	}
	c.practitioners[raw] = p
	return p, nil
}

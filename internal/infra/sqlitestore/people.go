package sqlitestore

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/dkittle/Jane-clinic-exercise/internal/domain"
)

const personColumns = "id, first_name, last_name, phone, email"

func (s *Store) SavePatient(ctx context.Context, p *domain.Patient) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO patients (`+personColumns+`) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			first_name = excluded.first_name,
			last_name  = excluded.last_name,
			phone      = excluded.phone,
			email      = excluded.email`,
		p.ID.String(), p.FirstName, p.LastName, p.PhoneNumber, p.Email,
	)
	return s.wrap("sqlitestore.save_patient", err)
}

func (s *Store) GetPatient(ctx context.Context, id uuid.UUID) (*domain.Patient, error) {
	const op = "sqlitestore.get_patient"
	row := s.db.QueryRowContext(ctx, `SELECT `+personColumns+` FROM patients WHERE id = ?`, id.String())
	p, err := scanPatient(op, row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound(op, "patient", id)
	}
	return p, s.wrap(op, err)
}

func (s *Store) ListPatients(ctx context.Context) ([]*domain.Patient, error) {
	const op = "sqlitestore.list_patients"
	rows, err := s.db.QueryContext(ctx, `SELECT `+personColumns+` FROM patients ORDER BY last_name, first_name`)
	if err != nil {
		return nil, s.wrap(op, err)
	}
	defer rows.Close()

	out := make([]*domain.Patient, 0)
	for rows.Next() {
		p, err := scanPatient(op, rows)
		if err != nil {
			return nil, s.wrap(op, err)
		}
		out = append(out, p)
	}
	return out, s.wrap(op, rows.Err())
}

func (s *Store) SavePractitioner(ctx context.Context, p *domain.Practitioner) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO practitioners (`+personColumns+`) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			first_name = excluded.first_name,
			last_name  = excluded.last_name,
			phone      = excluded.phone,
			email      = excluded.email`,
		p.ID.String(), p.FirstName, p.LastName, p.PhoneNumber, p.Email,
	)
	return s.wrap("sqlitestore.save_practitioner", err)
}

func (s *Store) GetPractitioner(ctx context.Context, id uuid.UUID) (*domain.Practitioner, error) {
	const op = "sqlitestore.get_practitioner"
	row := s.db.QueryRowContext(ctx, `SELECT `+personColumns+` FROM practitioners WHERE id = ?`, id.String())
	p, err := scanPractitioner(op, row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound(op, "practitioner", id)
	}
	return p, s.wrap(op, err)
}

func (s *Store) ListPractitioners(ctx context.Context) ([]*domain.Practitioner, error) {
	const op = "sqlitestore.list_practitioners"
	rows, err := s.db.QueryContext(ctx, `SELECT `+personColumns+` FROM practitioners ORDER BY last_name, first_name`)
	if err != nil {
		return nil, s.wrap(op, err)
	}
	defer rows.Close()

	out := make([]*domain.Practitioner, 0)
	for rows.Next() {
		p, err := scanPractitioner(op, rows)
		if err != nil {
			return nil, s.wrap(op, err)
		}
		out = append(out, p)
	}
	return out, s.wrap(op, rows.Err())
}

type personRow struct {
	id                        string
	first, last, phone, email string
}

func scanPerson(sc scanner) (personRow, uuid.UUID, error) {
	var r personRow
	if err := sc.Scan(&r.id, &r.first, &r.last, &r.phone, &r.email); err != nil {
		return r, uuid.Nil, err
	}
	id, err := uuid.Parse(r.id)
	return r, id, err
}

func scanPatient(op string, sc scanner) (*domain.Patient, error) {
	r, id, err := scanPerson(sc)
	if err != nil {
		return nil, err
	}
	p, err := domain.RestorePatient(id, r.first, r.last, r.phone, r.email)
	if err != nil {
		return nil, corrupt(op, err)
	}
	return p, nil
}

func scanPractitioner(op string, sc scanner) (*domain.Practitioner, error) {
	r, id, err := scanPerson(sc)
	if err != nil {
		return nil, err
	}
	p, err := domain.RestorePractitioner(id, r.first, r.last, r.phone, r.email)
	if err != nil {
		return nil, corrupt(op, err)
	}
	return p, nil
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/dkittle/Jane-clinic-exercise/internal/domain"
)

// fixedNow is Monday 2026-03-02 08:00 UTC.
var fixedNow = time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

func tomorrow() domain.Date { return domain.DateOf(fixedNow).AddDays(1) }

func testOptions() []Option {
	return []Option{
		WithNow(func() time.Time { return fixedNow }),
		WithLocation(time.UTC),
	}
}

// memStore implements every repository port in memory.
type memStore struct {
	mu            sync.Mutex
	patients      map[uuid.UUID]*domain.Patient
	practitioners map[uuid.UUID]*domain.Practitioner
	bookings      map[uuid.UUID]*domain.Booking
	appointments  map[uuid.UUID]*domain.Appointment

	listErr error
}

func newMemStore() *memStore {
	return &memStore{
		patients:      map[uuid.UUID]*domain.Patient{},
		practitioners: map[uuid.UUID]*domain.Practitioner{},
		bookings:      map[uuid.UUID]*domain.Booking{},
		appointments:  map[uuid.UUID]*domain.Appointment{},
	}
}

func notFound(what string, id uuid.UUID) error {
	return &domain.OpError{Op: "mem.get", Kind: domain.KindNotFound, Err: fmt.Errorf("%s %s: %w", what, id, domain.ErrNotFound)}
}

func (m *memStore) SavePatient(_ context.Context, p *domain.Patient) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.patients[p.ID] = p
	return nil
}

func (m *memStore) GetPatient(_ context.Context, id uuid.UUID) (*domain.Patient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.patients[id]
	if !ok {
		return nil, notFound("patient", id)
	}
	return p, nil
}

func (m *memStore) ListPatients(_ context.Context) ([]*domain.Patient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.Patient, 0, len(m.patients))
	for _, p := range m.patients {
		out = append(out, p)
	}
	return out, nil
}

func (m *memStore) SavePractitioner(_ context.Context, p *domain.Practitioner) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.practitioners[p.ID] = p
	return nil
}

func (m *memStore) GetPractitioner(_ context.Context, id uuid.UUID) (*domain.Practitioner, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.practitioners[id]
	if !ok {
		return nil, notFound("practitioner", id)
	}
	return p, nil
}

func (m *memStore) ListPractitioners(_ context.Context) ([]*domain.Practitioner, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.Practitioner, 0, len(m.practitioners))
	for _, p := range m.practitioners {
		out = append(out, p)
	}
	return out, nil
}

func (m *memStore) SaveBooking(_ context.Context, b *domain.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bookings[b.ID] = b
	return nil
}

func (m *memStore) GetBooking(_ context.Context, id uuid.UUID) (*domain.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bookings[id]
	if !ok {
		return nil, notFound("booking", id)
	}
	return b, nil
}

func (m *memStore) DeleteBooking(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.bookings[id]; !ok {
		return notFound("booking", id)
	}
	delete(m.bookings, id)
	return nil
}

func (m *memStore) ListBookings(_ context.Context, practitionerID uuid.UUID, date domain.Date) ([]*domain.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]*domain.Booking, 0)
	for _, b := range m.bookings {
		if b.Practitioner.ID == practitionerID && b.Date == date {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out, nil
}

func (m *memStore) SaveAppointment(_ context.Context, a *domain.Appointment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.appointments[a.ID] = a
	return nil
}

func (m *memStore) ListAppointments(_ context.Context, practitionerID uuid.UUID, date domain.Date) ([]*domain.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.Appointment, 0)
	for _, a := range m.appointments {
		if a.Date != date {
			continue
		}
		if practitionerID != uuid.Nil && a.Practitioner.ID != practitionerID {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

type fixture struct {
	store         *memStore
	clinic        *domain.Clinic
	patients      []*domain.Patient
	practitioners []*domain.Practitioner
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	clinic, err := domain.NewClinic("Test Clinic", "123-456-7890", "testclinic@email.com")
	require.NoError(t, err)

	f := fixture{store: newMemStore(), clinic: clinic}
	for _, r := range []struct{ first, last, phone, email string }{
		{"Hin-Fan", "Rose", "416-555-3421", "hinfan.rose@email.com"},
		{"Sangah", "Lily", "647-555-8932", "sangah.lily@email.com"},
	} {
		p, err := domain.NewPatient(r.first, r.last, r.phone, r.email)
		require.NoError(t, err)
		require.NoError(t, f.store.SavePatient(context.Background(), p))
		f.patients = append(f.patients, p)
	}
	for _, r := range []struct{ first, last, phone, email string }{
		{"Cheria", "Lee", "416-555-1111", "cheria.lee@email.com"},
		{"Amit", "Bose", "416-555-2222", "amit.bose@email.com"},
	} {
		p, err := domain.NewPractitioner(r.first, r.last, r.phone, r.email)
		require.NoError(t, err)
		require.NoError(t, f.store.SavePractitioner(context.Background(), p))
		f.practitioners = append(f.practitioners, p)
	}
	return f
}

func (f fixture) book(t *testing.T, patient *domain.Patient, practitioner *domain.Practitioner, typ domain.AppointmentType, start domain.Clock) *domain.Booking {
	t.Helper()
	uc := NewBookAppointment(f.clinic, f.store, f.store, f.store, testOptions()...)
	b, err := uc.Execute(context.Background(), BookInput{
		PatientID:      patient.ID,
		PractitionerID: practitioner.ID,
		Type:           typ,
		Date:           tomorrow(),
		Start:          start,
	})
	require.NoError(t, err)
	return b
}

var errBoom = errors.New("boom")

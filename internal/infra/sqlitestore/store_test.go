package sqlitestore

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkittle/Jane-clinic-exercise/internal/domain"
)

type seed struct {
	store        *Store
	patient      *domain.Patient
	practitioner *domain.Practitioner
	date         domain.Date
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), ".clinic", "clinic.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func seeded(t *testing.T) seed {
	t.Helper()
	ctx := context.Background()
	s := openTestStore(t)

	patient, err := domain.NewPatient("Hin-Fan", "Rose", "416-555-3421", "hinfan.rose@email.com")
	require.NoError(t, err)
	practitioner, err := domain.NewPractitioner("Cheria", "Lee", "416-555-1111", "cheria.lee@email.com")
	require.NoError(t, err)
	require.NoError(t, s.SavePatient(ctx, patient))
	require.NoError(t, s.SavePractitioner(ctx, practitioner))

	return seed{store: s, patient: patient, practitioner: practitioner, date: domain.NewDate(2026, 3, 3)}
}

func (sd seed) booking(t *testing.T, typ domain.AppointmentType, start domain.Clock) *domain.Booking {
	t.Helper()
	b, err := domain.RestoreBooking(uuid.New(), typ, sd.date, start, sd.patient, sd.practitioner)
	require.NoError(t, err)
	require.NoError(t, sd.store.SaveBooking(context.Background(), b))
	return b
}

func TestPatientsRoundTripAndUpsert(t *testing.T) {
	sd := seeded(t)
	ctx := context.Background()

	got, err := sd.store.GetPatient(ctx, sd.patient.ID)
	require.NoError(t, err)
	assert.Equal(t, sd.patient, got)

	updated := *sd.patient
	updated.Email = "hinfan@email.com"
	require.NoError(t, sd.store.SavePatient(ctx, &updated))

	all, err := sd.store.ListPatients(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "hinfan@email.com", all[0].Email)
}

func TestPractitionersListedByName(t *testing.T) {
	sd := seeded(t)
	ctx := context.Background()

	other, err := domain.NewPractitioner("Amit", "Bose", "416-555-2222", "amit.bose@email.com")
	require.NoError(t, err)
	require.NoError(t, sd.store.SavePractitioner(ctx, other))

	all, err := sd.store.ListPractitioners(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Amit Bose", all[0].FullName())
	assert.Equal(t, "Cheria Lee", all[1].FullName())
}

func TestGetUnknownIsNotFound(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.GetPatient(ctx, uuid.New())
	assert.True(t, domain.IsKind(err, domain.KindNotFound))
	_, err = s.GetPractitioner(ctx, uuid.New())
	assert.True(t, domain.IsKind(err, domain.KindNotFound))
	_, err = s.GetBooking(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
	err = s.DeleteBooking(ctx, uuid.New())
	assert.True(t, domain.IsKind(err, domain.KindNotFound))
}

func TestBookingsRoundTrip(t *testing.T) {
	sd := seeded(t)
	ctx := context.Background()

	late := sd.booking(t, domain.AppointmentConsultation, domain.NewClock(14, 0))
	early := sd.booking(t, domain.AppointmentCheckIn, domain.NewClock(9, 30))

	got, err := sd.store.GetBooking(ctx, late.ID)
	require.NoError(t, err)
	assert.Equal(t, late.ID, got.ID)
	assert.Equal(t, domain.AppointmentConsultation, got.Type)
	assert.Equal(t, sd.date, got.Date)
	assert.Equal(t, domain.NewClock(14, 0), got.Start)
	assert.Equal(t, sd.patient.ID, got.Patient.ID)
	assert.Equal(t, sd.practitioner.ID, got.Practitioner.ID)

	list, err := sd.store.ListBookings(ctx, sd.practitioner.ID, sd.date)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, early.ID, list[0].ID)
	assert.Equal(t, late.ID, list[1].ID)
	assert.Same(t, list[0].Patient, list[1].Patient)

	other, err := sd.store.ListBookings(ctx, sd.practitioner.ID, sd.date.AddDays(1))
	require.NoError(t, err)
	assert.Empty(t, other)

	require.NoError(t, sd.store.DeleteBooking(ctx, early.ID))
	list, err = sd.store.ListBookings(ctx, sd.practitioner.ID, sd.date)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestBookingRequiresKnownPeople(t *testing.T) {
	sd := seeded(t)
	stranger, err := domain.NewPatient("Ankita", "Daisy", "437-555-2314", "ankita.daisy@email.com")
	require.NoError(t, err)

	b, err := domain.RestoreBooking(uuid.New(), domain.AppointmentStandard, sd.date, domain.NewClock(10, 0), stranger, sd.practitioner)
	require.NoError(t, err)

	err = sd.store.SaveBooking(context.Background(), b)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindConflict))
}

func TestAppointmentsUniquePerBooking(t *testing.T) {
	sd := seeded(t)
	ctx := context.Background()
	b := sd.booking(t, domain.AppointmentStandard, domain.NewClock(10, 0))

	appt := &domain.Appointment{
		ID: uuid.New(), BookingID: b.ID, Type: b.Type, Date: b.Date, Start: b.Start,
		Patient: b.Patient, Practitioner: b.Practitioner, Notes: "first visit",
	}
	require.NoError(t, sd.store.SaveAppointment(ctx, appt))

	again := *appt
	again.ID = uuid.New()
	err := sd.store.SaveAppointment(ctx, &again)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindConflict))
	assert.ErrorIs(t, err, domain.ErrConflict)

	all, err := sd.store.ListAppointments(ctx, uuid.Nil, sd.date)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, b.ID, all[0].BookingID)
	assert.Equal(t, "first visit", all[0].Notes)
	assert.Equal(t, domain.NewClock(11, 0), all[0].EndTime())

	mine, err := sd.store.ListAppointments(ctx, sd.practitioner.ID, sd.date)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	none, err := sd.store.ListAppointments(ctx, uuid.New(), sd.date)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestOpenInMemory(t *testing.T) {
	s, err := Open(":memory:")
	require.NoError(t, err)
	defer s.Close()

	p, err := domain.NewPatient("Sangah", "Lily", "647-555-8932", "sangah.lily@email.com")
	require.NoError(t, err)
	require.NoError(t, s.SavePatient(context.Background(), p))

	got, err := s.GetPatient(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
}

func TestSaveBookingRejectsOverlap(t *testing.T) {
	sd := seeded(t)
	ctx := context.Background()
	sd.booking(t, domain.AppointmentStandard, domain.NewClock(10, 0))

	clash, err := domain.RestoreBooking(uuid.New(), domain.AppointmentCheckIn, sd.date, domain.NewClock(10, 30), sd.patient, sd.practitioner)
	require.NoError(t, err)
	err = sd.store.SaveBooking(ctx, clash)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindValidation))

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.True(t, ve.Has(domain.ProblemBookingOverlapsAnother))

	// Back-to-back slots touch but do not overlap.
	sd.booking(t, domain.AppointmentCheckIn, domain.NewClock(11, 0))
	sd.booking(t, domain.AppointmentCheckIn, domain.NewClock(9, 30))

	list, err := sd.store.ListBookings(ctx, sd.practitioner.ID, sd.date)
	require.NoError(t, err)
	assert.Len(t, list, 3)
}

func TestSaveBookingConcurrentWritersClaimSlotOnce(t *testing.T) {
	sd := seeded(t)
	ctx := context.Background()

	const writers = 8
	start := make(chan struct{})
	errs := make([]error, writers)
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		b, err := domain.RestoreBooking(uuid.New(), domain.AppointmentStandard, sd.date, domain.NewClock(10, 0), sd.patient, sd.practitioner)
		require.NoError(t, err)
		wg.Add(1)
		go func(i int, b *domain.Booking) {
			defer wg.Done()
			<-start
			errs[i] = sd.store.SaveBooking(ctx, b)
		}(i, b)
	}
	close(start)
	wg.Wait()

	saved := 0
	for _, err := range errs {
		if err == nil {
			saved++
			continue
		}
		assert.True(t, domain.IsKind(err, domain.KindValidation), "unexpected error: %v", err)
	}
	assert.Equal(t, 1, saved)

	list, err := sd.store.ListBookings(ctx, sd.practitioner.ID, sd.date)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

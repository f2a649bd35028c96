package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkittle/Jane-clinic-exercise/internal/domain"
)

func TestBookAppointmentPersistsBooking(t *testing.T) {
	f := newFixture(t)

	b := f.book(t, f.patients[0], f.practitioners[0], domain.AppointmentStandard, domain.NewClock(10, 0))

	stored, err := f.store.GetBooking(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.NewClock(11, 0), stored.EndTime())
	assert.Equal(t, f.patients[0].ID, stored.Patient.ID)
	assert.Equal(t, f.practitioners[0].ID, stored.Practitioner.ID)
}

func TestBookAppointmentRejectsOverlap(t *testing.T) {
	f := newFixture(t)
	f.book(t, f.patients[0], f.practitioners[0], domain.AppointmentConsultation, domain.NewClock(10, 0))

	uc := NewBookAppointment(f.clinic, f.store, f.store, f.store, testOptions()...)
	_, err := uc.Execute(context.Background(), BookInput{
		PatientID:      f.patients[1].ID,
		PractitionerID: f.practitioners[0].ID,
		Type:           domain.AppointmentCheckIn,
		Date:           tomorrow(),
		Start:          domain.NewClock(11, 0),
	})

	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.True(t, ve.Has(domain.ProblemBookingOverlapsAnother))
	assert.Len(t, f.store.bookings, 1)
}

func TestBookAppointmentOtherPractitionerIsIndependent(t *testing.T) {
	f := newFixture(t)
	f.book(t, f.patients[0], f.practitioners[0], domain.AppointmentStandard, domain.NewClock(10, 0))
	f.book(t, f.patients[1], f.practitioners[1], domain.AppointmentStandard, domain.NewClock(10, 0))

	assert.Len(t, f.store.bookings, 2)
}

func TestBookAppointmentReportsRuleProblems(t *testing.T) {
	f := newFixture(t)
	uc := NewBookAppointment(f.clinic, f.store, f.store, f.store, testOptions()...)

	// 07:15 today has already passed and falls before opening.
	_, err := uc.Execute(context.Background(), BookInput{
		PatientID:      f.patients[0].ID,
		PractitionerID: f.practitioners[0].ID,
		Type:           domain.AppointmentStandard,
		Date:           domain.DateOf(fixedNow),
		Start:          domain.NewClock(7, 15),
	})

	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindValidation))
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.True(t, ve.Has(domain.ProblemTimeInPast))
	assert.True(t, ve.Has(domain.ProblemDesiredStartTime))
	assert.True(t, ve.Has(domain.ProblemOutsideBusinessHours))
	assert.Empty(t, f.store.bookings)
}

func TestBookAppointmentUnknownPatient(t *testing.T) {
	f := newFixture(t)
	uc := NewBookAppointment(f.clinic, f.store, f.store, f.store, testOptions()...)

	_, err := uc.Execute(context.Background(), BookInput{
		PatientID:      uuid.New(),
		PractitionerID: f.practitioners[0].ID,
		Type:           domain.AppointmentStandard,
		Date:           tomorrow(),
		Start:          domain.NewClock(10, 0),
	})

	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindNotFound))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBookAppointmentHonoursCancelledContext(t *testing.T) {
	f := newFixture(t)
	uc := NewBookAppointment(f.clinic, f.store, f.store, f.store, testOptions()...)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := uc.Execute(ctx, BookInput{})
	assert.ErrorIs(t, err, context.Canceled)
}

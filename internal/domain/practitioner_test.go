package domain

import (
	"strings"
	"testing"
)

func TestNewPractitionerRejectsBadInput(t *testing.T) {
	cases := []struct {
		first, last, phone, email string
		wantMsg                   string
	}{
		{"", "Lee", "416-555-1111", "c@l.com", "Practitioner first name cannot be null or blank"},
		{"Cheria", "", "416-555-1111", "c@l.com", "Practitioner last name cannot be null or blank"},
		{"Cheria", "Lee", "", "c@l.com", "Practitioner phone number cannot be null or blank"},
		{"Cheria", "Lee", "4165551111", "c@l.com", "Practitioner phone number must be in the form ###-###-####"},
		{"Cheria", "Lee", "416-555-1111", "", "Practitioner email cannot be null or blank"},
		{"Cheria", "Lee", "416-555-1111", "cheria", "Practitioner email is invalid"},
	}
	for _, c := range cases {
		_, err := NewPractitioner(c.first, c.last, c.phone, c.email)
		if err == nil {
			t.Fatalf("expected error for %+v", c)
		}
		if !strings.Contains(err.Error(), c.wantMsg) {
			t.Fatalf("expected %q in %q", c.wantMsg, err.Error())
		}
	}
}

func TestAddBookingInOpenSlot(t *testing.T) {
	practitioner := testPractitioner(t)
	clinic := testClinic(t)
	patient := testPatients(t)[0]

	b, err := practitioner.AddBooking(patient, clinic, AppointmentStandard, tomorrow(), clinic.Hours.Open)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Patient != patient || b.Practitioner != practitioner {
		t.Fatalf("expected booking to reference patient and practitioner")
	}
	if b.Type != AppointmentStandard || b.Date != tomorrow() || b.Start != clinic.Hours.Open {
		t.Fatalf("unexpected booking %+v", b)
	}
	if len(practitioner.ListBookings(tomorrow())) != 1 {
		t.Fatalf("expected booking to be recorded")
	}
}

func TestAddBookingFillsGaps(t *testing.T) {
	practitioner := testPractitioner(t)
	clinic := testClinic(t)
	patient := testPatients(t)[0]

	for _, start := range []Clock{NewClock(9, 0), NewClock(11, 0), NewClock(10, 0)} {
		if _, err := practitioner.AddBooking(patient, clinic, AppointmentStandard, tomorrow(), start); err != nil {
			t.Fatalf("booking at %s: unexpected error: %v", start, err)
		}
	}

	got := practitioner.ListBookings(tomorrow())
	if len(got) != 3 {
		t.Fatalf("expected 3 bookings, got %d", len(got))
	}
	for i, want := range []Clock{NewClock(9, 0), NewClock(10, 0), NewClock(11, 0)} {
		if got[i].Start != want {
			t.Fatalf("booking %d: expected %s, got %s", i, want, got[i].Start)
		}
	}
	if len(practitioner.ListBookings(tomorrow().AddDays(1))) != 0 {
		t.Fatalf("expected no bookings on other days")
	}
}

func TestAddBookingRejectsOverlap(t *testing.T) {
	practitioner := testPractitioner(t)
	clinic := testClinic(t)
	patient := testPatients(t)[0]

	if _, err := practitioner.AddBooking(patient, clinic, AppointmentStandard, tomorrow(), NewClock(10, 0)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := practitioner.AddBooking(patient, clinic, AppointmentStandard, tomorrow(), NewClock(9, 30))
	ve := validationProblems(t, err)
	if !ve.Has(ProblemBookingOverlapsAnother) {
		t.Fatalf("expected BookingOverlapsAnother, got %v", ve.Problems)
	}
	if len(practitioner.ListBookings(tomorrow())) != 1 {
		t.Fatalf("rejected booking must not be recorded")
	}
}

func TestAddBookingPropagatesRuleErrors(t *testing.T) {
	practitioner := testPractitioner(t)
	clinic := testClinic(t)

	_, err := practitioner.AddBooking(testPatients(t)[0], clinic, AppointmentStandard, tomorrow(), NewClock(9, 15))
	ve := validationProblems(t, err)
	if !ve.Has(ProblemDesiredStartTime) {
		t.Fatalf("expected DesiredStartTime, got %v", ve.Problems)
	}
}

func TestAddBookingRequiresArguments(t *testing.T) {
	practitioner := testPractitioner(t)
	clinic := testClinic(t)
	patient := testPatients(t)[0]

	cases := []struct {
		name    string
		call    func() error
		wantMsg string
	}{
		{"patient", func() error {
			_, err := practitioner.AddBooking(nil, clinic, AppointmentStandard, tomorrow(), NewClock(9, 0))
			return err
		}, "Patient cannot be null"},
		{"clinic", func() error {
			_, err := practitioner.AddBooking(patient, nil, AppointmentStandard, tomorrow(), NewClock(9, 0))
			return err
		}, "Clinic cannot be null"},
		{"type", func() error {
			_, err := practitioner.AddBooking(patient, clinic, "", tomorrow(), NewClock(9, 0))
			return err
		}, "Appointment type cannot be null"},
		{"date", func() error {
			_, err := practitioner.AddBooking(patient, clinic, AppointmentStandard, Date{}, NewClock(9, 0))
			return err
		}, "Date and time for booking cannot be null"},
		{"start", func() error {
			_, err := practitioner.AddBooking(patient, clinic, AppointmentStandard, tomorrow(), Clock{})
			return err
		}, "Date and time for booking cannot be null"},
	}
	for _, c := range cases {
		err := c.call()
		if !IsKind(err, KindInvalidArgument) {
			t.Fatalf("%s: expected KindInvalidArgument, got %v", c.name, err)
		}
		if !strings.Contains(err.Error(), c.wantMsg) {
			t.Fatalf("%s: expected %q in %q", c.name, c.wantMsg, err.Error())
		}
	}
}

func TestCancelBooking(t *testing.T) {
	practitioner := testPractitioner(t)
	clinic := testClinic(t)

	b, err := practitioner.AddBooking(testPatients(t)[0], clinic, AppointmentCheckIn, tomorrow(), NewClock(14, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !practitioner.CancelBooking(b) {
		t.Fatalf("expected cancel to succeed")
	}
	if practitioner.CancelBooking(b) {
		t.Fatalf("expected second cancel to report not found")
	}
	if practitioner.CancelBooking(nil) {
		t.Fatalf("expected nil cancel to report not found")
	}
	if len(practitioner.Bookings()) != 0 {
		t.Fatalf("expected no bookings left")
	}
}

func TestAvailableTimesOnEmptyDay(t *testing.T) {
	practitioner := testPractitioner(t)
	hours := testClinic(t).Hours

	cases := []struct {
		typ  AppointmentType
		want int
		last Clock
	}{
		{AppointmentCheckIn, 16, NewClock(16, 30)},
		{AppointmentStandard, 15, NewClock(16, 0)},
		{AppointmentConsultation, 14, NewClock(15, 30)},
	}
	for _, c := range cases {
		times := practitioner.AvailableTimes(tomorrow(), c.typ, hours)
		if len(times) != c.want {
			t.Fatalf("%s: expected %d slots, got %d (%v)", c.typ, c.want, len(times), times)
		}
		if times[0] != hours.Open {
			t.Fatalf("%s: expected first slot at opening, got %s", c.typ, times[0])
		}
		if times[len(times)-1] != c.last {
			t.Fatalf("%s: expected last slot %s, got %s", c.typ, c.last, times[len(times)-1])
		}
	}
}

func TestAvailableTimesSkipsBookedHour(t *testing.T) {
	practitioner := testPractitioner(t)
	clinic := testClinic(t)

	if _, err := practitioner.AddBooking(testPatients(t)[0], clinic, AppointmentStandard, tomorrow(), clinic.Hours.Open); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	times := practitioner.AvailableTimes(tomorrow(), AppointmentStandard, clinic.Hours)
	if len(times) != 13 {
		t.Fatalf("expected 13 slots, got %d (%v)", len(times), times)
	}
	if times[0] != NewClock(10, 0) {
		t.Fatalf("expected first open slot at 10:00, got %s", times[0])
	}
	for _, slot := range times {
		if _, err := practitioner.AddBooking(testPatients(t)[1], clinic, AppointmentStandard, tomorrow(), slot); err != nil {
			t.Fatalf("slot %s was offered but rejected: %v", slot, err)
		}
		practitioner.CancelBooking(practitioner.ListBookings(tomorrow())[1])
	}
}

func TestAvailableTimesUsesClinicHours(t *testing.T) {
	practitioner := testPractitioner(t)
	hours, err := NewClinicHours(NewClock(8, 0), NewClock(10, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	times := practitioner.AvailableTimes(tomorrow(), AppointmentStandard, hours)
	want := []Clock{NewClock(8, 0), NewClock(8, 30), NewClock(9, 0)}
	if len(times) != len(want) {
		t.Fatalf("expected %v, got %v", want, times)
	}
	for i := range want {
		if times[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, times)
		}
	}

	if got := practitioner.AvailableTimes(tomorrow(), "surgery", hours); len(got) != 0 {
		t.Fatalf("expected no slots for unknown type, got %v", got)
	}
}

func TestWithBookingsRepointsPractitioner(t *testing.T) {
	other := testPractitioner(t)
	b, err := RestoreBooking(validBookingID(t), AppointmentStandard, tomorrow(), NewClock(9, 0), testPatients(t)[0], other)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p, err := NewPractitioner("Cheria", "Lee", "416-555-1111", "cheria.lee@email.com", WithBookings(b), WithClock(fixedClock))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Practitioner != p {
		t.Fatalf("expected booking to point at the owning practitioner")
	}
	if len(p.AvailableTimes(tomorrow(), AppointmentStandard, DefaultClinicHours())) != 13 {
		t.Fatalf("expected seeded booking to block slots")
	}
}

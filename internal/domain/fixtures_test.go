package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

// fixedNow is Monday 2026-03-02 08:00 UTC.
var fixedNow = time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func tomorrow() Date { return DateOf(fixedNow).AddDays(1) }

func testPatients(t *testing.T) []*Patient {
	t.Helper()
	raw := []struct {
		id                        string
		first, last, phone, email string
	}{
		{"11111111-1111-1111-1111-111111111111", "Hin-Fan", "Rose", "416-555-3421", "hinfan.rose@email.com"},
		{"22222222-2222-2222-2222-222222222222", "Sangah", "Lily", "647-555-8932", "sangah.lily@email.com"},
		{"33333333-3333-3333-3333-333333333333", "Ankita", "Daisy", "437-555-2314", "ankita.daisy@email.com"},
	}
	out := make([]*Patient, 0, len(raw))
	for _, r := range raw {
		p, err := RestorePatient(uuid.MustParse(r.id), r.first, r.last, r.phone, r.email)
		if err != nil {
			t.Fatalf("fixture patient %s: %v", r.first, err)
		}
		out = append(out, p)
	}
	return out
}

func testPractitioner(t *testing.T) *Practitioner {
	t.Helper()
	p, err := NewPractitioner("Cheria", "Lee", "416-555-1111", "cheria.lee@email.com", WithClock(fixedClock))
	if err != nil {
		t.Fatalf("fixture practitioner: %v", err)
	}
	return p
}

func testClinic(t *testing.T) *Clinic {
	t.Helper()
	c, err := NewClinic("Test Clinic", "123-456-7890", "testclinic@email.com")
	if err != nil {
		t.Fatalf("fixture clinic: %v", err)
	}
	return c
}

func validationProblems(t *testing.T, err error) *ValidationError {
	t.Helper()
	if err == nil {
		t.Fatalf("expected validation error, got nil")
	}
	ve, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected *ValidationError, got %T: %v", err, err)
	}
	return ve
}

func validBookingID(t *testing.T) uuid.UUID {
	t.Helper()
	return uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000001")
}

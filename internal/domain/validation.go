package domain

import (
	"fmt"
	"strings"
)

// Problem identifies a single broken booking or appointment rule.
type Problem string

const (
	ProblemCannotCreateBooking     Problem = "cannot_create_booking"
	ProblemCannotCreateAppointment Problem = "cannot_create_appointment"
	ProblemBookingOverlapsAnother  Problem = "booking_overlaps_another"

	ProblemEarliestDateMissing Problem = "earliest_date_missing"
	ProblemClinicHoursMissing  Problem = "clinic_hours_missing"
	ProblemTypeMissing         Problem = "type_missing"
	ProblemDateMissing         Problem = "date_missing"
	ProblemStartTimeMissing    Problem = "start_time_missing"
	ProblemPatientMissing      Problem = "patient_missing"
	ProblemPractitionerMissing Problem = "practitioner_missing"

	ProblemDateInPast           Problem = "date_in_past"
	ProblemTimeInPast           Problem = "time_in_past"
	ProblemDesiredStartTime     Problem = "desired_start_time"
	ProblemTooSoonToAppointment Problem = "too_soon_to_appointment"
	ProblemOutsideBusinessHours Problem = "outside_business_hours"
)

var problemMessages = map[Problem]string{
	ProblemCannotCreateBooking:     "booking could not be created",
	ProblemCannotCreateAppointment: "appointment could not be created",
	ProblemBookingOverlapsAnother:  "booking overlaps another booking",
	ProblemEarliestDateMissing:     "earliest date/time is required",
	ProblemClinicHoursMissing:      "clinic hours are required",
	ProblemTypeMissing:             "appointment type is required",
	ProblemDateMissing:             "date is required",
	ProblemStartTimeMissing:        "start time is required",
	ProblemPatientMissing:          "patient is required",
	ProblemPractitionerMissing:     "practitioner is required",
	ProblemDateInPast:              "date is in the past",
	ProblemTimeInPast:              "start time is in the past",
	ProblemDesiredStartTime:        "start time must be on the hour or half hour",
	ProblemTooSoonToAppointment:    "bookings must be made at least 2 hours in advance",
	ProblemOutsideBusinessHours:    "appointment must start and end within clinic hours",
}

func (p Problem) Message() string {
	if m, ok := problemMessages[p]; ok {
		return m
	}
	return string(p)
}

// ValidationError lists every rule a booking or appointment request broke.
type ValidationError struct {
	Subject  string // "booking" or "appointment"
	Problems []Problem
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	msgs := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		msgs = append(msgs, p.Message())
	}
	return fmt.Sprintf("invalid %s: %s", e.Subject, strings.Join(msgs, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Has reports whether p is among the problems.
func (e *ValidationError) Has(p Problem) bool {
	if e == nil {
		return false
	}
	for _, got := range e.Problems {
		if got == p {
			return true
		}
	}
	return false
}

type problemList []Problem

func (l *problemList) add(p Problem) {
	for _, got := range *l {
		if got == p {
			return
		}
	}
	*l = append(*l, p)
}

func (l problemList) err(subject string) error {
	if len(l) == 0 {
		return nil
	}
	return &ValidationError{Subject: subject, Problems: []Problem(l)}
}

package domain

import (
	"fmt"
	"strings"
	"time"
)

// AppointmentType determines how long a booking lasts.
type AppointmentType string

const (
	AppointmentConsultation AppointmentType = "consultation"
	AppointmentStandard     AppointmentType = "standard"
	AppointmentCheckIn      AppointmentType = "check_in"
)

// AppointmentTypes lists every supported type, longest first.
func AppointmentTypes() []AppointmentType {
	return []AppointmentType{AppointmentConsultation, AppointmentStandard, AppointmentCheckIn}
}

func (t AppointmentType) Duration() time.Duration {
	switch t {
	case AppointmentConsultation:
		return 90 * time.Minute
	case AppointmentStandard:
		return 60 * time.Minute
	case AppointmentCheckIn:
		return 30 * time.Minute
	default:
		return 0
	}
}

func (t AppointmentType) IsConsultation() bool {
	return t == AppointmentConsultation
}

func (t AppointmentType) Valid() bool {
	return t.Duration() > 0
}

// ParseAppointmentType accepts "check-in", "CHECK_IN", "Standard", etc.
func ParseAppointmentType(s string) (AppointmentType, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.ReplaceAll(norm, "-", "_")
	t := AppointmentType(norm)
	if !t.Valid() {
		return "", fmt.Errorf("unsupported appointment type %q (expected consultation|standard|check_in): %w", s, ErrInvalidArgument)
	}
	return t, nil
}

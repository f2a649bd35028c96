package domain

import "github.com/google/uuid"

type Clinic struct {
	ID          uuid.UUID
	Name        string
	PhoneNumber string
	Email       string
	Hours       ClinicHours
}

type ClinicOption func(*Clinic)

// WithHours overrides the default 09:00-17:00 opening hours.
func WithHours(h ClinicHours) ClinicOption {
	return func(c *Clinic) {
		if !h.Open.IsZero() && !h.Close.IsZero() {
			c.Hours = h
		}
	}
}

func NewClinic(name, phoneNumber, email string, opts ...ClinicOption) (*Clinic, error) {
	return RestoreClinic(uuid.New(), name, phoneNumber, email, opts...)
}

// RestoreClinic rebuilds a clinic with a known ID.
func RestoreClinic(id uuid.UUID, name, phoneNumber, email string, opts ...ClinicOption) (*Clinic, error) {
	const op = "domain.new_clinic"
	if id == uuid.Nil {
		return nil, invalidArgument(op, "Clinic ID cannot be null")
	}
	if err := checkClinic(op, name, phoneNumber, email); err != nil {
		return nil, err
	}

	c := &Clinic{
		ID:          id,
		Name:        name,
		PhoneNumber: phoneNumber,
		Email:       email,
		Hours:       DefaultClinicHours(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

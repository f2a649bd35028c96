package domain

import "github.com/google/uuid"

type Patient struct {
	ID          uuid.UUID
	FirstName   string
	LastName    string
	PhoneNumber string
	Email       string
}

// NewPatient registers a new patient with a fresh ID.
func NewPatient(firstName, lastName, phoneNumber, email string) (*Patient, error) {
	if err := checkPerson("domain.new_patient", "Patient", firstName, lastName, phoneNumber, email); err != nil {
		return nil, err
	}
	return &Patient{
		ID:          uuid.New(),
		FirstName:   firstName,
		LastName:    lastName,
		PhoneNumber: phoneNumber,
		Email:       email,
	}, nil
}

// RestorePatient rebuilds a patient read from a datastore.
func RestorePatient(id uuid.UUID, firstName, lastName, phoneNumber, email string) (*Patient, error) {
	const op = "domain.restore_patient"
	if id == uuid.Nil {
		return nil, invalidArgument(op, "Patient ID cannot be null")
	}
	if err := checkPerson(op, "Patient", firstName, lastName, phoneNumber, email); err != nil {
		return nil, err
	}
	return &Patient{
		ID:          id,
		FirstName:   firstName,
		LastName:    lastName,
		PhoneNumber: phoneNumber,
		Email:       email,
	}, nil
}

func (p *Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}

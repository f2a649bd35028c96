package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dkittle/Jane-clinic-exercise/internal/domain"
)

// rosterNamespace seeds IDs derived for roster entries that omit one.
var rosterNamespace = uuid.MustParse("6f1c3a52-8d0e-4f7b-9a61-2c4b5e7d9f10")

func MapRoster(path string, yr YAMLRoster, hours domain.ClinicHours) (domain.Roster, error) {
	clinic, err := mapClinic(path, yr.Clinic, hours)
	if err != nil {
		return domain.Roster{}, err
	}

	roster := domain.Roster{
		Clinic:        clinic,
		Practitioners: make([]*domain.Practitioner, 0, len(yr.Practitioners)),
		Patients:      make([]*domain.Patient, 0, len(yr.Patients)),
	}

	seen := map[uuid.UUID]string{}
	claim := func(field string, id uuid.UUID) error {
		if prev, ok := seen[id]; ok {
			return invalidField(path, field+".id", fmt.Sprintf("duplicate id %s (also used by %s)", id, prev))
		}
		seen[id] = field
		return nil
	}

	for i, yp := range yr.Practitioners {
		field := fmt.Sprintf("practitioners[%d]", i)
		id, err := personID(path, field, "practitioner", yp)
		if err != nil {
			return domain.Roster{}, err
		}
		if err := claim(field, id); err != nil {
			return domain.Roster{}, err
		}
		p, err := domain.RestorePractitioner(id, yp.FirstName, yp.LastName, yp.Phone, yp.Email)
		if err != nil {
			return domain.Roster{}, rejected(path, field, err)
		}
		roster.Practitioners = append(roster.Practitioners, p)
	}

	for i, yp := range yr.Patients {
		field := fmt.Sprintf("patients[%d]", i)
		id, err := personID(path, field, "patient", yp)
		if err != nil {
			return domain.Roster{}, err
		}
		if err := claim(field, id); err != nil {
			return domain.Roster{}, err
		}
		p, err := domain.RestorePatient(id, yp.FirstName, yp.LastName, yp.Phone, yp.Email)
		if err != nil {
			return domain.Roster{}, rejected(path, field, err)
		}
		roster.Patients = append(roster.Patients, p)
	}

	return roster, nil
}

func mapClinic(path string, yc YAMLClinic, hours domain.ClinicHours) (*domain.Clinic, error) {
	if strings.TrimSpace(yc.Name) == "" {
		return nil, invalidField(path, "clinic.name", "clinic name is required")
	}

	id := uuid.NewSHA1(rosterNamespace, []byte("clinic:"+strings.ToLower(yc.Name)))
	if s := strings.TrimSpace(yc.ID); s != "" {
		parsed, err := uuid.Parse(s)
		if err != nil {
			return nil, invalidField(path, "clinic.id", err.Error())
		}
		id = parsed
	}

	c, err := domain.RestoreClinic(id, yc.Name, yc.Phone, yc.Email, domain.WithHours(hours))
	if err != nil {
		return nil, rejected(path, "clinic", err)
	}
	return c, nil
}

// personID returns the declared ID or one derived from the email address so that
// re-importing the same roster updates rows instead of duplicating them.
func personID(path, field, kind string, yp YAMLPerson) (uuid.UUID, error) {
	if s := strings.TrimSpace(yp.ID); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return uuid.Nil, invalidField(path, field+".id", err.Error())
		}
		return id, nil
	}
	email := strings.ToLower(strings.TrimSpace(yp.Email))
	if email == "" {
		return uuid.Nil, invalidField(path, field+".email", "email is required when id is omitted")
	}
	return uuid.NewSHA1(rosterNamespace, []byte(kind+":"+email)), nil
}

// rejected reports a domain constructor error against the roster key it names,
// e.g. patients[2].email.
func rejected(path, field string, err error) error {
	var fe *domain.FieldError
	if errors.As(err, &fe) && fe.Field != "" {
		return invalidField(path, field+"."+fe.Field, fe.Message)
	}
	return invalidField(path, field, reason(err))
}

// reason unwraps a domain constructor error down to its message.
func reason(err error) string {
	var oe *domain.OpError
	if errors.As(err, &oe) && oe.Err != nil {
		return strings.TrimSuffix(oe.Err.Error(), ": "+domain.ErrInvalidArgument.Error())
	}
	return err.Error()
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}

package domain

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// validate is shared by the constructors. It is safe for concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	must := func(err error) {
		if err != nil {
			panic(err)
		}
	}
	must(v.RegisterValidation("notblank", validators.NotBlank))
	must(v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return IsValidPhoneNumber(fl.Field().String())
	}))
	must(v.RegisterValidation("mailbox", func(fl validator.FieldLevel) bool {
		return IsValidEmail(fl.Field().String())
	}))
	return v
}

// personFields are the constructor inputs shared by patients and practitioners.
// Fields are validated in declaration order; the first failure wins.
type personFields struct {
	FirstName string `validate:"notblank"`
	LastName  string `validate:"notblank"`
	Phone     string `validate:"notblank,phone"`
	Email     string `validate:"notblank,mailbox"`
}

type clinicFields struct {
	Name  string `validate:"notblank"`
	Phone string `validate:"notblank,phone"`
	Email string `validate:"notblank,mailbox"`
}

// roster keys, used as FieldError.Field
var fieldKeys = map[string]string{
	"FirstName": "first_name",
	"LastName":  "last_name",
	"Name":      "name",
	"Phone":     "phone",
	"Email":     "email",
}

// checkPerson validates the name and contact fields shared by patients and practitioners.
// who is the capitalized role used in messages ("Patient", "Practitioner").
func checkPerson(op, who, first, last, phone, email string) error {
	return checkFields(op, who, personFields{FirstName: first, LastName: last, Phone: phone, Email: email})
}

func checkClinic(op, name, phone, email string) error {
	return checkFields(op, "Clinic", clinicFields{Name: name, Phone: phone, Email: email})
}

func checkFields(op, who string, fields any) error {
	err := validate.Struct(fields)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) || len(ves) == 0 {
		return &OpError{Op: op, Kind: KindInvalidArgument, Err: err}
	}
	fe := ves[0]
	return invalidField(op, fieldKeys[fe.Field()], fieldMessage(who, fe))
}

func fieldMessage(who string, fe validator.FieldError) string {
	var label string
	switch fe.Field() {
	case "FirstName":
		label = "first name"
	case "LastName":
		label = "last name"
	case "Name":
		label = "name"
	case "Phone":
		label = "phone number"
	case "Email":
		label = "email"
	}

	switch fe.Tag() {
	case "phone":
		return fmt.Sprintf("%s phone number must be in the form ###-###-####", who)
	case "mailbox":
		return fmt.Sprintf("%s email is invalid", who)
	default:
		return fmt.Sprintf("%s %s cannot be null or blank", who, label)
	}
}

package config

// YAMLRoster is the on-disk shape of roster.yaml.
type YAMLRoster struct {
	Clinic        YAMLClinic   `yaml:"clinic"`
	Practitioners []YAMLPerson `yaml:"practitioners"`
	Patients      []YAMLPerson `yaml:"patients"`
}

type YAMLClinic struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Phone string `yaml:"phone"`
	Email string `yaml:"email"`
}

// YAMLPerson describes a practitioner or a patient. ID is optional.
type YAMLPerson struct {
	ID        string `yaml:"id"`
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Phone     string `yaml:"phone"`
	Email     string `yaml:"email"`
}

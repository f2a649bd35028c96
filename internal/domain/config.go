package domain

import "time"

// Config represents the workspace configuration loaded from clinic.yaml.
type Config struct {
	Clinic  ClinicConfig
	Masking MaskingConfig
	Paths   PathsConfig
}

type ClinicConfig struct {
	Hours    ClinicHours
	Location *time.Location
}

type MaskingConfig struct {
	Enabled bool
}

type PathsConfig struct {
	Roster     string
	Database   string
	ExportsDir string
}

// DefaultConfig provides sane defaults if clinic.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Clinic: ClinicConfig{
			Hours:    DefaultClinicHours(),
			Location: time.Local,
		},
		Masking: MaskingConfig{Enabled: true},
		Paths: PathsConfig{
			Roster:     "roster.yaml",
			Database:   ".clinic/clinic.db",
			ExportsDir: "exports",
		},
	}
}

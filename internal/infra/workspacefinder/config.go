package workspacefinder

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dkittle/Jane-clinic-exercise/internal/domain"
)

// ConfigFile marks a clinic workspace root.
const ConfigFile = "clinic.yaml"

// LoadConfig loads clinic.yaml from the workspace root and applies defaults.
func LoadConfig(root string) (domain.Config, error) {
	const op = "workspacefinder.loadconfig"
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, ConfigFile)
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{Op: op, Kind: domain.KindNotFound, Path: path, Err: err}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{Op: op, Kind: domain.KindInvalidConfig, Path: path, Err: err}
	}

	invalid := func(field string, err error) error {
		return &domain.OpError{
			Op:   op,
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  fmt.Errorf("clinic.%s: %w", field, err),
		}
	}

	// Apply parsed values on top of defaults.
	open, close := cfg.Clinic.Hours.Open, cfg.Clinic.Hours.Close
	if y.Clinic.Hours.Open != "" {
		if open, err = domain.ParseClock(y.Clinic.Hours.Open); err != nil {
			return cfg, invalid("hours.open", err)
		}
	}
	if y.Clinic.Hours.Close != "" {
		if close, err = domain.ParseClock(y.Clinic.Hours.Close); err != nil {
			return cfg, invalid("hours.close", err)
		}
	}
	hours, err := domain.NewClinicHours(open, close)
	if err != nil {
		return cfg, invalid("hours", err)
	}
	cfg.Clinic.Hours = hours

	if y.Clinic.Timezone != "" {
		loc, err := time.LoadLocation(y.Clinic.Timezone)
		if err != nil {
			return cfg, invalid("timezone", err)
		}
		cfg.Clinic.Location = loc
	}

	if y.Clinic.Masking.Enabled != nil {
		cfg.Masking.Enabled = *y.Clinic.Masking.Enabled
	}
	if y.Clinic.Paths.Roster != "" {
		cfg.Paths.Roster = y.Clinic.Paths.Roster
	}
	if y.Clinic.Paths.Database != "" {
		cfg.Paths.Database = y.Clinic.Paths.Database
	}
	if y.Clinic.Paths.ExportsDir != "" {
		cfg.Paths.ExportsDir = y.Clinic.Paths.ExportsDir
	}

	return cfg, nil
}

type yamlConfig struct {
	Clinic struct {
		Hours struct {
			Open  string `yaml:"open"`
			Close string `yaml:"close"`
		} `yaml:"hours"`

		Timezone string `yaml:"timezone"`

		Masking struct {
			Enabled *bool `yaml:"enabled"`
		} `yaml:"masking"`

		Paths struct {
			Roster     string `yaml:"roster"`
			Database   string `yaml:"database"`
			ExportsDir string `yaml:"exports_dir"`
		} `yaml:"paths"`
	} `yaml:"clinic"`
}

package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dkittle/Jane-clinic-exercise/internal/domain"
)

// RosterLoader reads roster.yaml files. The clinic it returns keeps Hours.
type RosterLoader struct {
	Hours domain.ClinicHours
}

func NewRosterLoader(hours domain.ClinicHours) *RosterLoader {
	return &RosterLoader{Hours: hours}
}

func (l *RosterLoader) LoadRoster(path string) (domain.Roster, error) {
	return LoadRoster(path, l.Hours)
}

func LoadRoster(path string, hours domain.ClinicHours) (domain.Roster, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Roster{}, &domain.OpError{
			Op:   "config.load_roster",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var dto YAMLRoster
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return domain.Roster{}, &domain.OpError{
			Op:   "config.load_roster",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapRoster(path, dto, hours)
}

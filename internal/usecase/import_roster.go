package usecase

import (
	"context"

	"github.com/dkittle/Jane-clinic-exercise/internal/domain"
	"github.com/dkittle/Jane-clinic-exercise/internal/ports"
)

// ImportResult summarizes what an import wrote.
type ImportResult struct {
	Clinic        *domain.Clinic
	Practitioners int
	Patients      int
}

type ImportRoster struct {
	loader        ports.RosterLoader
	patients      ports.PatientRepository
	practitioners ports.PractitionerRepository
	settings
}

func NewImportRoster(rl ports.RosterLoader, pr ports.PatientRepository, prr ports.PractitionerRepository, opts ...Option) *ImportRoster {
	return &ImportRoster{loader: rl, patients: pr, practitioners: prr, settings: newSettings(opts)}
}

// Execute loads the roster at path and upserts its practitioners and patients.
func (uc *ImportRoster) Execute(ctx context.Context, path string) (ImportResult, error) {
	roster, err := uc.loader.LoadRoster(path)
	if err != nil {
		return ImportResult{}, err
	}

	res := ImportResult{Clinic: roster.Clinic}
	for _, p := range roster.Practitioners {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if err := uc.practitioners.SavePractitioner(ctx, p); err != nil {
			return res, err
		}
		res.Practitioners++
	}
	for _, p := range roster.Patients {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if err := uc.patients.SavePatient(ctx, p); err != nil {
			return res, err
		}
		res.Patients++
	}

	uc.log.Info("roster.imported",
		"path", path,
		"practitioners", res.Practitioners,
		"patients", res.Patients,
	)
	return res, nil
}

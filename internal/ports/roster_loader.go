package ports

import "github.com/dkittle/Jane-clinic-exercise/internal/domain"

// RosterLoader loads the clinic roster from a source (e.g., filesystem).
type RosterLoader interface {
	LoadRoster(path string) (domain.Roster, error)
}

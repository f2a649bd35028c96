package ports

import "github.com/dkittle/Jane-clinic-exercise/internal/domain"

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}

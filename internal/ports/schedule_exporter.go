package ports

import "github.com/dkittle/Jane-clinic-exercise/internal/domain"

// ScheduleExporter persists a day's schedule for sharing outside the workspace.
type ScheduleExporter interface {
	Export(s domain.ScheduleExport) (id string, err error)
}

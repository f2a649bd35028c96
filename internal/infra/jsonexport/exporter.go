package jsonexport

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dkittle/Jane-clinic-exercise/internal/domain"
	"github.com/dkittle/Jane-clinic-exercise/internal/infra/logger"
	"github.com/dkittle/Jane-clinic-exercise/internal/ports"
)

const defaultExportsDir = "exports"
const maskValue = "********"

// Exporter writes day schedules as JSON files under the workspace exports directory.
type Exporter struct {
	rootDir        string
	exportsDirName string
	maskingEnabled bool
	writeIndex     bool
	now            func() time.Time
}

type Option func(*Exporter)

// WithIndex enables a JSONL index: exports/index.jsonl
func WithIndex(enabled bool) Option {
	return func(e *Exporter) { e.writeIndex = enabled }
}

func WithNow(now func() time.Time) Option {
	return func(e *Exporter) { e.now = now }
}

func NewExporter(root string, cfg domain.Config, opts ...Option) *Exporter {
	dir := cfg.Paths.ExportsDir
	if strings.TrimSpace(dir) == "" {
		dir = defaultExportsDir
	}

	e := &Exporter{
		rootDir:        root,
		exportsDirName: dir,
		maskingEnabled: cfg.Masking.Enabled,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var _ ports.ScheduleExporter = (*Exporter)(nil)

func (e *Exporter) dir() string {
	if filepath.IsAbs(e.exportsDirName) {
		return e.exportsDirName
	}
	return filepath.Join(e.rootDir, e.exportsDirName)
}

// Export writes s to <exports>/<date>_schedule.json, replacing any earlier export
// of the same day. The returned id is the file name without extension.
func (e *Exporter) Export(s domain.ScheduleExport) (string, error) {
	if _, err := domain.ParseDate(s.Date); err != nil {
		return "", &domain.OpError{
			Op:   "jsonexport.export",
			Kind: domain.KindInvalidArgument,
			Err:  err,
		}
	}

	dir := e.dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "jsonexport.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	toSave := s
	if toSave.GeneratedAt.IsZero() {
		toSave.GeneratedAt = e.now()
	}
	toSave.GeneratedAt = toSave.GeneratedAt.UTC()
	if toSave.Entries == nil {
		toSave.Entries = []domain.ScheduleEntry{}
	}
	if e.maskingEnabled {
		toSave = MaskSchedule(toSave)
	}

	id := s.Date + "_schedule"
	filename := id + ".json"
	path := filepath.Join(dir, filename)

	b, err := json.MarshalIndent(toSave, "", "  ")
	if err != nil {
		return "", &domain.OpError{
			Op:   "jsonexport.marshal",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return "", &domain.OpError{
			Op:   "jsonexport.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{
			Op:   "jsonexport.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	// The export itself succeeded; a broken index is only logged.
	if e.writeIndex {
		if err := e.appendIndex(dir, id, filename, toSave); err != nil {
			logger.For("export").Warn("export.index_failed", "id", id, "dir", dir, "error", err.Error())
		}
	}
	return id, nil
}

// Load reads back an export by id.
func (e *Exporter) Load(id string) (domain.ScheduleExport, error) {
	path := filepath.Join(e.dir(), id+".json")
	b, err := os.ReadFile(path)
	if err != nil {
		kind := domain.KindExecution
		if os.IsNotExist(err) {
			kind = domain.KindNotFound
			err = fmt.Errorf("%w: %v", domain.ErrNotFound, err)
		}
		return domain.ScheduleExport{}, &domain.OpError{Op: "jsonexport.load", Kind: kind, Path: path, Err: err}
	}

	var s domain.ScheduleExport
	if err := json.Unmarshal(b, &s); err != nil {
		return domain.ScheduleExport{}, &domain.OpError{Op: "jsonexport.load", Kind: domain.KindExecution, Path: path, Err: err}
	}
	return s, nil
}

func (e *Exporter) appendIndex(dir, id, filename string, s domain.ScheduleExport) error {
	type idx struct {
		ID          string    `json:"id"`
		File        string    `json:"file"`
		Date        string    `json:"date"`
		Bookings    int       `json:"bookings"`
		GeneratedAt time.Time `json:"generated_at"`
	}
	line, err := json.Marshal(idx{
		ID:          id,
		File:        filename,
		Date:        s.Date,
		Bookings:    len(s.Entries),
		GeneratedAt: s.GeneratedAt,
	})
	if err != nil {
		return err
	}

	f, err := os.OpenFile(filepath.Join(dir, "index.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(append(line, '\n'))
	return err
}

// MaskSchedule returns a copy with patient contact details hidden. s is not mutated.
func MaskSchedule(s domain.ScheduleExport) domain.ScheduleExport {
	out := s
	out.Entries = make([]domain.ScheduleEntry, len(s.Entries))
	for i, entry := range s.Entries {
		if entry.PatientPhone != "" {
			entry.PatientPhone = maskValue
		}
		if entry.PatientEmail != "" {
			entry.PatientEmail = maskValue
		}
		out.Entries[i] = entry
	}
	return out
}

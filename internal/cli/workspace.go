package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dkittle/Jane-clinic-exercise/internal/domain"
	"github.com/dkittle/Jane-clinic-exercise/internal/infra/config"
	"github.com/dkittle/Jane-clinic-exercise/internal/infra/jsonexport"
	"github.com/dkittle/Jane-clinic-exercise/internal/infra/logger"
	"github.com/dkittle/Jane-clinic-exercise/internal/infra/sqlitestore"
	"github.com/dkittle/Jane-clinic-exercise/internal/infra/workspacefinder"
	"github.com/dkittle/Jane-clinic-exercise/internal/usecase"
)

type workspaceCtx struct {
	root   string
	cfg    domain.Config
	clinic *domain.Clinic

	roster   *config.RosterLoader
	store    *sqlitestore.Store
	exporter *jsonexport.Exporter

	closers []func() error
}

type loadOptions struct {
	workspace string
	debug     bool
}

func loadWorkspace(o loadOptions) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(o.workspace)
	if err != nil {
		return nil, err
	}

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return nil, err
	}

	ws := &workspaceCtx{
		root:   root,
		cfg:    cfg,
		roster: config.NewRosterLoader(cfg.Clinic.Hours),
	}

	if cleanup, lerr := logger.Setup(logger.Config{Root: root, Debug: o.debug}); lerr == nil {
		ws.closers = append(ws.closers, cleanup)
	}
	if err := logger.IsReady(); err != nil {
		if o.debug {
			fmt.Fprintf(os.Stderr, "warning: --debug requested but %v; continuing without a log file\n", err)
		}
	} else {
		logger.For("cli").Debug("workspace.loaded", "root", root, "log", logger.Path(), "log_opened_at", logger.InitTime())
	}

	roster, err := ws.roster.LoadRoster(ws.rosterPath())
	if err != nil {
		_ = ws.Close()
		return nil, fmt.Errorf("load clinic from roster (tip: run `clinic init`): %w", err)
	}
	ws.clinic = roster.Clinic

	store, err := sqlitestore.Open(ws.resolve(cfg.Paths.Database))
	if err != nil {
		_ = ws.Close()
		return nil, err
	}
	ws.store = store
	ws.closers = append(ws.closers, store.Close)

	ws.exporter = jsonexport.NewExporter(root, cfg, jsonexport.WithIndex(true))
	return ws, nil
}

// Close releases the store and the log file, in reverse order of acquisition.
func (ws *workspaceCtx) Close() error {
	var first error
	for i := len(ws.closers) - 1; i >= 0; i-- {
		if err := ws.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	ws.closers = nil
	return first
}

func (ws *workspaceCtx) options() []usecase.Option {
	return []usecase.Option{
		usecase.WithLogger(logger.For("usecase")),
		usecase.WithLocation(ws.cfg.Clinic.Location),
	}
}

func (ws *workspaceCtx) rosterPath() string {
	return ws.resolve(ws.cfg.Paths.Roster)
}

// resolve makes p absolute relative to the workspace root.
func (ws *workspaceCtx) resolve(p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(ws.root, filepath.FromSlash(p))
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	root, err := workspacefinder.NewFinder().FindRoot(wd)
	if err != nil {
		return "", fmt.Errorf("workspace not found from %q (tip: run `clinic init`): %w", wd, err)
	}
	return root, nil
}

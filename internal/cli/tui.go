package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/dkittle/Jane-clinic-exercise/internal/domain"
	"github.com/dkittle/Jane-clinic-exercise/internal/infra/logger"
	"github.com/dkittle/Jane-clinic-exercise/internal/ui/tui"
	"github.com/dkittle/Jane-clinic-exercise/internal/usecase"
)

func tuiCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Interactive slot picker",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, g)
		},
	}
}

func runTUI(_ *cobra.Command, g *globalFlags) error {
	ws, err := g.load()
	if err != nil {
		return err
	}
	defer ws.Close()

	opts := ws.options()
	return tui.Run(tui.Deps{
		Clinic:   ws.clinic,
		Patients: ws.store,
		Openings: usecase.NewFindOpenings(ws.clinic, ws.store, ws.store, opts...),
		Booker:   usecase.NewBookAppointment(ws.clinic, ws.store, ws.store, ws.store, opts...),
		Today:    domain.DateOf(time.Now().In(ws.cfg.Clinic.Location)),
		Logger:   logger.For("tui"),
		Debug:    g.debug,
	})
}

package cli

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	workspace string
	format    string
	debug     bool
}

func (g *globalFlags) load() (*workspaceCtx, error) {
	return loadWorkspace(loadOptions{workspace: g.workspace, debug: g.debug})
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	cmd := &cobra.Command{
		Use:          "clinic",
		Short:        "Clinic booking: practitioners, openings, bookings and appointments",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, g)
		},
	}

	cmd.PersistentFlags().StringVarP(&g.workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.PersistentFlags().StringVar(&g.format, "format", "pretty", "Output format: pretty|json|jsonpath=<expr>")
	cmd.PersistentFlags().BoolVar(&g.debug, "debug", false, "enable verbose logging to .clinic/logs/clinic.log")

	cmd.AddCommand(
		initCmd(),
		importCmd(g),
		patientsCmd(g),
		practitionersCmd(g),
		openingsCmd(g),
		bookCmd(g),
		bookingsCmd(g),
		appointmentsCmd(g),
		exportCmd(g),
		versionCmd(),
		tuiCmd(g),
	)
	return cmd
}

package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/dkittle/Jane-clinic-exercise/internal/usecase"
)

func exportCmd(g *globalFlags) *cobra.Command {
	var date string

	c := &cobra.Command{
		Use:   "export",
		Short: "Write a day's schedule to the exports directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := g.load()
			if err != nil {
				return err
			}
			defer ws.Close()

			d, err := parseDateArg(date, time.Now(), ws.cfg.Clinic.Location)
			if err != nil {
				return err
			}

			uc := usecase.NewExportSchedule(ws.clinic, ws.store, ws.store, ws.store, ws.exporter, ws.options()...)
			id, err := uc.Execute(cmd.Context(), d)
			if err != nil {
				return err
			}

			// Read the file back so the summary reflects what was written.
			written, err := ws.exporter.Load(id)
			if err != nil {
				return err
			}

			path := filepath.Join(ws.resolve(ws.cfg.Paths.ExportsDir), id+".json")
			out := map[string]any{"id": id, "path": path, "bookings": len(written.Entries), "masked": ws.cfg.Masking.Enabled}
			return render(cmd.OutOrStdout(), g.format, out, func(w io.Writer) {
				fmt.Fprintf(w, "%s %s %s\n", okStyle.Render("Exported"), path, mutedStyle.Render(fmt.Sprintf("(%d booking(s))", len(written.Entries))))
				if ws.cfg.Masking.Enabled {
					fmt.Fprintln(w, mutedStyle.Render("patient phone numbers and emails are masked"))
				}
			})
		},
	}

	c.Flags().StringVarP(&date, "date", "d", "today", "Date (YYYY-MM-DD, today or tomorrow)")
	return c
}

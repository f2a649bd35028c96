package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dkittle/Jane-clinic-exercise/internal/usecase"
)

func importCmd(g *globalFlags) *cobra.Command {
	var file string

	c := &cobra.Command{
		Use:   "import",
		Short: "Import practitioners and patients from the roster file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := g.load()
			if err != nil {
				return err
			}
			defer ws.Close()

			path := ws.rosterPath()
			if file != "" {
				path = ws.resolve(file)
			}

			uc := usecase.NewImportRoster(ws.roster, ws.store, ws.store, ws.options()...)
			res, err := uc.Execute(cmd.Context(), path)
			if err != nil {
				return err
			}

			out := map[string]any{
				"clinic":        res.Clinic.Name,
				"practitioners": res.Practitioners,
				"patients":      res.Patients,
			}
			return render(cmd.OutOrStdout(), g.format, out, func(w io.Writer) {
				fmt.Fprintf(w, "%s %d practitioner(s), %d patient(s) for %s\n",
					okStyle.Render("Imported"), res.Practitioners, res.Patients, res.Clinic.Name)
			})
		},
	}

	c.Flags().StringVarP(&file, "file", "f", "", "Roster file (defaults to clinic.paths.roster)")
	return c
}

func patientsCmd(g *globalFlags) *cobra.Command {
	c := &cobra.Command{
		Use:   "patients",
		Short: "Manage patients",
	}
	c.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List patients",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := g.load()
			if err != nil {
				return err
			}
			defer ws.Close()

			patients, err := ws.store.ListPatients(cmd.Context())
			if err != nil {
				return err
			}
			views := patientViews(patients)
			return render(cmd.OutOrStdout(), g.format, views, func(w io.Writer) {
				printPeople(w, "Patients", views)
			})
		},
	})
	return c
}

func practitionersCmd(g *globalFlags) *cobra.Command {
	c := &cobra.Command{
		Use:   "practitioners",
		Short: "Manage practitioners",
	}
	c.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List practitioners",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := g.load()
			if err != nil {
				return err
			}
			defer ws.Close()

			practitioners, err := ws.store.ListPractitioners(cmd.Context())
			if err != nil {
				return err
			}
			views := practitionerViews(practitioners)
			return render(cmd.OutOrStdout(), g.format, views, func(w io.Writer) {
				printPeople(w, "Practitioners", views)
			})
		},
	})
	return c
}

func printPeople(w io.Writer, title string, people []personView) {
	fmt.Fprintln(w, headerStyle.Render(title))
	if len(people) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("(none; run `clinic import`)"))
		return
	}
	for _, p := range people {
		fmt.Fprintf(w, "- %-24s %s  %s  %s\n", p.Name, p.Phone, p.Email, mutedStyle.Render(p.ID))
	}
}

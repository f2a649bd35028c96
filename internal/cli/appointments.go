package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dkittle/Jane-clinic-exercise/internal/usecase"
)

func appointmentsCmd(g *globalFlags) *cobra.Command {
	c := &cobra.Command{
		Use:   "appointments",
		Short: "Confirm bookings as appointments and list them",
	}
	c.AddCommand(appointmentsConfirmCmd(g), appointmentsListCmd(g))
	return c
}

func appointmentsConfirmCmd(g *globalFlags) *cobra.Command {
	var notes string

	c := &cobra.Command{
		Use:   "confirm <booking-id>",
		Short: "Turn a booking into an appointment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg("booking", args[0])
			if err != nil {
				return err
			}

			ws, err := g.load()
			if err != nil {
				return err
			}
			defer ws.Close()

			uc := usecase.NewConfirmAppointment(ws.store, ws.store, ws.options()...)
			appt, err := uc.Execute(cmd.Context(), id, notes)
			if err != nil {
				return err
			}

			v := newAppointmentView(appt)
			return render(cmd.OutOrStdout(), g.format, v, func(w io.Writer) {
				fmt.Fprintf(w, "%s %s %s-%s %s with %s\n", okStyle.Render("Confirmed"), v.Date, v.Start, v.End, v.Patient, v.Practitioner)
				fmt.Fprintf(w, "%s %s\n", mutedStyle.Render("appointment id:"), v.ID)
			})
		},
	}

	c.Flags().StringVarP(&notes, "notes", "n", "", "Notes for the practitioner")
	return c
}

func appointmentsListCmd(g *globalFlags) *cobra.Command {
	var date, practitioner string

	c := &cobra.Command{
		Use:   "list",
		Short: "List appointments on a date",
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
			pid := uuid.Nil
			if practitioner != "" {
				if pid, err = parseIDArg("practitioner", practitioner); err != nil {
					return err
				}
			}

			appts, err := ws.store.ListAppointments(cmd.Context(), pid, d)
			if err != nil {
				return err
			}

			views := make([]appointmentView, 0, len(appts))
			for _, a := range appts {
				views = append(views, newAppointmentView(a))
			}
			return render(cmd.OutOrStdout(), g.format, views, func(w io.Writer) {
				fmt.Fprintf(w, "%s %s\n", headerStyle.Render("Appointments"), d)
				if len(views) == 0 {
					fmt.Fprintln(w, mutedStyle.Render("(none)"))
				}
				for _, v := range views {
					fmt.Fprintf(w, "- %s-%s %-13s %-20s %s\n", v.Start, v.End, v.Type, v.Practitioner, v.Patient)
					if v.Notes != "" {
						fmt.Fprintf(w, "    %s\n", mutedStyle.Render(v.Notes))
					}
				}
			})
		},
	}

	c.Flags().StringVarP(&date, "date", "d", "today", "Date (YYYY-MM-DD, today or tomorrow)")
	c.Flags().StringVarP(&practitioner, "practitioner", "p", "", "Only this practitioner's appointments")
	return c
}

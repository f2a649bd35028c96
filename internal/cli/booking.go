package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dkittle/Jane-clinic-exercise/internal/domain"
	"github.com/dkittle/Jane-clinic-exercise/internal/infra/jsonexport"
	"github.com/dkittle/Jane-clinic-exercise/internal/usecase"
)

func openingsCmd(g *globalFlags) *cobra.Command {
	var date, typ string
	var practitioners []string

	c := &cobra.Command{
		Use:   "openings",
		Short: "Show bookable start times for a date and appointment type",
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
			t, err := parseTypeArg(typ)
			if err != nil {
				return err
			}
			ids, err := parseIDArgs("practitioner", practitioners)
			if err != nil {
				return err
			}

			uc := usecase.NewFindOpenings(ws.clinic, ws.store, ws.store, ws.options()...)
			openings, err := uc.Execute(cmd.Context(), d, t, ids...)
			if err != nil {
				return err
			}

			views := newOpeningsViews(d, t, openings)
			return render(cmd.OutOrStdout(), g.format, views, func(w io.Writer) {
				fmt.Fprintf(w, "%s %s (%s, %s)\n", headerStyle.Render("Openings"), d, t, t.Duration())
				if len(views) == 0 {
					fmt.Fprintln(w, mutedStyle.Render("(no practitioners; run `clinic import`)"))
				}
				for _, v := range views {
					slots := strings.Join(v.Times, " ")
					if slots == "" {
						slots = mutedStyle.Render("fully booked")
					}
					fmt.Fprintf(w, "- %-24s %s\n", v.Practitioner, slots)
				}
			})
		},
	}

	c.Flags().StringVarP(&date, "date", "d", "tomorrow", "Date (YYYY-MM-DD, today or tomorrow)")
	c.Flags().StringVarP(&typ, "type", "t", string(domain.AppointmentStandard), "Appointment type: consultation|standard|check_in")
	c.Flags().StringSliceVarP(&practitioners, "practitioner", "p", nil, "Practitioner id (repeatable; all if omitted)")
	return c
}

func bookCmd(g *globalFlags) *cobra.Command {
	var patient, practitioner, typ, date, start string

	c := &cobra.Command{
		Use:   "book",
		Short: "Book a patient with a practitioner",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := g.load()
			if err != nil {
				return err
			}
			defer ws.Close()

			in := usecase.BookInput{}
			if in.PatientID, err = parseIDArg("patient", patient); err != nil {
				return err
			}
			if in.PractitionerID, err = parseIDArg("practitioner", practitioner); err != nil {
				return err
			}
			if in.Type, err = parseTypeArg(typ); err != nil {
				return err
			}
			if in.Date, err = parseDateArg(date, time.Now(), ws.cfg.Clinic.Location); err != nil {
				return err
			}
			if in.Start, err = parseClockArg(start); err != nil {
				return err
			}

			uc := usecase.NewBookAppointment(ws.clinic, ws.store, ws.store, ws.store, ws.options()...)
			b, err := uc.Execute(cmd.Context(), in)
			if err != nil {
				return err
			}

			v := newBookingView(b)
			return render(cmd.OutOrStdout(), g.format, v, func(w io.Writer) {
				fmt.Fprintf(w, "%s %s %s-%s %s with %s\n", okStyle.Render("Booked"), v.Date, v.Start, v.End, v.Patient, v.Practitioner)
				fmt.Fprintf(w, "%s %s\n", mutedStyle.Render("booking id:"), v.ID)
			})
		},
	}

	c.Flags().StringVar(&patient, "patient", "", "Patient id (required)")
	c.Flags().StringVar(&practitioner, "practitioner", "", "Practitioner id (required)")
	c.Flags().StringVarP(&typ, "type", "t", string(domain.AppointmentStandard), "Appointment type: consultation|standard|check_in")
	c.Flags().StringVarP(&date, "date", "d", "", "Date (YYYY-MM-DD, today or tomorrow) (required)")
	c.Flags().StringVarP(&start, "start", "s", "", "Start time HH:MM (required)")

	for _, f := range []string{"patient", "practitioner", "date", "start"} {
		_ = c.MarkFlagRequired(f)
	}
	return c
}

func bookingsCmd(g *globalFlags) *cobra.Command {
	c := &cobra.Command{
		Use:   "bookings",
		Short: "List or cancel bookings",
	}
	c.AddCommand(bookingsListCmd(g), bookingsCancelCmd(g))
	return c
}

func bookingsListCmd(g *globalFlags) *cobra.Command {
	var date string

	c := &cobra.Command{
		Use:   "list",
		Short: "List the clinic's bookings on a date",
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
			sched, err := uc.Build(cmd.Context(), d)
			if err != nil {
				return err
			}
			if ws.cfg.Masking.Enabled {
				sched = jsonexport.MaskSchedule(sched)
			}

			return render(cmd.OutOrStdout(), g.format, sched.Entries, func(w io.Writer) {
				printSchedule(w, sched)
			})
		},
	}

	c.Flags().StringVarP(&date, "date", "d", "today", "Date (YYYY-MM-DD, today or tomorrow)")
	return c
}

func bookingsCancelCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <booking-id>",
		Short: "Cancel a booking",
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

			if err := usecase.NewCancelBooking(ws.store, ws.options()...).Execute(cmd.Context(), id); err != nil {
				return err
			}

			out := map[string]any{"cancelled": id.String()}
			return render(cmd.OutOrStdout(), g.format, out, func(w io.Writer) {
				fmt.Fprintf(w, "%s %s\n", okStyle.Render("Cancelled booking"), id)
			})
		},
	}
}

func printSchedule(w io.Writer, s domain.ScheduleExport) {
	fmt.Fprintf(w, "%s %s %s\n", headerStyle.Render(s.Clinic), s.Date, mutedStyle.Render(fmt.Sprintf("(%d booking(s))", len(s.Entries))))
	for _, e := range s.Entries {
		mark := " "
		if e.Confirmed {
			mark = okStyle.Render("✓")
		}
		fmt.Fprintf(w, "%s %s-%s %-13s %-20s %-20s %s\n", mark, e.Start, e.End, e.Type, e.Practitioner, e.Patient, mutedStyle.Render(e.BookingID))
		if e.Notes != "" {
			fmt.Fprintf(w, "    %s\n", mutedStyle.Render(e.Notes))
		}
	}
}

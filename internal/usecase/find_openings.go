package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dkittle/Jane-clinic-exercise/internal/domain"
	"github.com/dkittle/Jane-clinic-exercise/internal/ports"
)

const defaultOpeningsConcurrency = 4

// Openings are the bookable start times for one practitioner.
type Openings struct {
	Practitioner *domain.Practitioner
	Times        []domain.Clock
}

type FindOpenings struct {
	clinic        *domain.Clinic
	practitioners ports.PractitionerRepository
	bookings      ports.BookingStore
	concurrency   int
	settings
}

func NewFindOpenings(clinic *domain.Clinic, prr ports.PractitionerRepository, bs ports.BookingStore, opts ...Option) *FindOpenings {
	return &FindOpenings{
		clinic:        clinic,
		practitioners: prr,
		bookings:      bs,
		concurrency:   defaultOpeningsConcurrency,
		settings:      newSettings(opts),
	}
}

// Execute lists open slots on date for typ. With no IDs every practitioner is searched.
// Slots that could no longer be booked (in the past or inside the notice period) are
// dropped. Results are ordered by practitioner name.
func (uc *FindOpenings) Execute(ctx context.Context, date domain.Date, typ domain.AppointmentType, practitionerIDs ...uuid.UUID) ([]Openings, error) {
	targets, err := uc.resolve(ctx, practitionerIDs)
	if err != nil {
		return nil, err
	}

	now := uc.clock()
	out := make([]Openings, len(targets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.concurrency)
	for i, p := range targets {
		g.Go(func() error {
			existing, err := uc.bookings.ListBookings(gctx, p.ID, date)
			if err != nil {
				return err
			}
			agg, err := uc.rehydrate(p, existing)
			if err != nil {
				return err
			}

			times := make([]domain.Clock, 0)
			for _, slot := range agg.AvailableTimes(date, typ, uc.clinic.Hours) {
				if bookable(now, date, slot) {
					times = append(times, slot)
				}
			}
			out[i] = Openings{Practitioner: agg, Times: times}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Practitioner.FullName() < out[j].Practitioner.FullName()
	})

	uc.log.Debug("openings.computed",
		"date", date.String(),
		"type", string(typ),
		"practitioners", len(out),
	)
	return out, nil
}

func (uc *FindOpenings) resolve(ctx context.Context, ids []uuid.UUID) ([]*domain.Practitioner, error) {
	if len(ids) == 0 {
		return uc.practitioners.ListPractitioners(ctx)
	}
	out := make([]*domain.Practitioner, 0, len(ids))
	for _, id := range ids {
		p, err := uc.practitioners.GetPractitioner(ctx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// bookable mirrors the notice rule: a slot must start more than two hours after now.
func bookable(now time.Time, date domain.Date, slot domain.Clock) bool {
	return now.Add(2 * time.Hour).Before(date.At(slot, now.Location()))
}

package usecase

import (
	"io"
	"log/slog"
	"time"

	"github.com/dkittle/Jane-clinic-exercise/internal/domain"
)

type settings struct {
	log *slog.Logger
	now func() time.Time
	loc *time.Location
}

// Option configures the ambient dependencies shared by the use cases.
type Option func(*settings)

func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.log = l
		}
	}
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *settings) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLocation sets the clinic's time zone. Dates and clocks are read in it.
func WithLocation(loc *time.Location) Option {
	return func(s *settings) {
		if loc != nil {
			s.loc = loc
		}
	}
}

func newSettings(opts []Option) settings {
	s := settings{
		log: slog.New(slog.NewJSONHandler(io.Discard, nil)),
		now: time.Now,
		loc: time.Local,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// clock returns "now" in the clinic's time zone.
func (s settings) clock() time.Time {
	return s.now().In(s.loc)
}

// rehydrate rebuilds a practitioner aggregate around its stored bookings.
func (s settings) rehydrate(p *domain.Practitioner, bookings []*domain.Booking) (*domain.Practitioner, error) {
	return domain.RestorePractitioner(
		p.ID, p.FirstName, p.LastName, p.PhoneNumber, p.Email,
		domain.WithClock(s.clock),
		domain.WithBookings(bookings...),
	)
}

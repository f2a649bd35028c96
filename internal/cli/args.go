package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dkittle/Jane-clinic-exercise/internal/domain"
)

// parseDateArg accepts YYYY-MM-DD, "today" or "tomorrow" relative to now in loc.
func parseDateArg(s string, now time.Time, loc *time.Location) (domain.Date, error) {
	today := domain.DateOf(now.In(loc))
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "today":
		return today, nil
	case "tomorrow":
		return today.AddDays(1), nil
	}
	d, err := domain.ParseDate(strings.TrimSpace(s))
	if err != nil {
		return domain.Date{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD, today or tomorrow)", s)
	}
	return d, nil
}

func parseClockArg(s string) (domain.Clock, error) {
	c, err := domain.ParseClock(strings.TrimSpace(s))
	if err != nil {
		return domain.Clock{}, fmt.Errorf("invalid time %q (expected HH:MM)", s)
	}
	return c, nil
}

func parseTypeArg(s string) (domain.AppointmentType, error) {
	return domain.ParseAppointmentType(s)
}

func parseIDArg(what, s string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s id %q: %w", what, s, err)
	}
	return id, nil
}

func parseIDArgs(what string, in []string) ([]uuid.UUID, error) {
	out := make([]uuid.UUID, 0, len(in))
	for _, s := range in {
		id, err := parseIDArg(what, s)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}

package tui

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/list"

	"github.com/dkittle/Jane-clinic-exercise/internal/domain"
	"github.com/dkittle/Jane-clinic-exercise/internal/usecase"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

type patientItem struct{ p *domain.Patient }

func (i patientItem) Title() string       { return i.p.FullName() }
func (i patientItem) Description() string { return i.p.PhoneNumber + "  " + i.p.Email }
func (i patientItem) FilterValue() string { return i.p.FullName() }

type typeItem struct{ t domain.AppointmentType }

func (i typeItem) Title() string {
	return strings.ReplaceAll(string(i.t), "_", "-")
}
func (i typeItem) Description() string { return i.t.Duration().String() }
func (i typeItem) FilterValue() string { return string(i.t) }

type slotItem struct {
	practitioner *domain.Practitioner
	start        domain.Clock
	end          domain.Clock
}

func (i slotItem) Title() string {
	return fmt.Sprintf("%s-%s", i.start, i.end)
}
func (i slotItem) Description() string { return i.practitioner.FullName() }
func (i slotItem) FilterValue() string {
	return i.practitioner.FullName() + " " + i.start.String()
}

func patientItems(in []*domain.Patient) []list.Item {
	out := make([]list.Item, 0, len(in))
	for _, p := range in {
		out = append(out, patientItem{p: p})
	}
	return out
}

func typeItems() []list.Item {
	out := make([]list.Item, 0, len(domain.AppointmentTypes()))
	for _, t := range domain.AppointmentTypes() {
		out = append(out, typeItem{t: t})
	}
	return out
}

// slotItems flattens openings into one item per practitioner and start time,
// ordered by time and then practitioner.
func slotItems(typ domain.AppointmentType, openings []usecase.Openings) []list.Item {
	var slots []slotItem
	for _, o := range openings {
		for _, t := range o.Times {
			slots = append(slots, slotItem{practitioner: o.Practitioner, start: t, end: t.Add(typ.Duration())})
		}
	}
	sort.SliceStable(slots, func(i, j int) bool { return slots[i].start.Before(slots[j].start) })
	out := make([]list.Item, 0, len(slots))
	for _, s := range slots {
		out = append(out, s)
	}
	return out
}

func renderBooking(b *domain.Booking) string {
	return fmt.Sprintf("%s %s-%s\n%s with %s\n%s",
		b.Date, b.Start, b.EndTime(),
		b.Patient.FullName(), b.Practitioner.FullName(),
		b.ID,
	)
}

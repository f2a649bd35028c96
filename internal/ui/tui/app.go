package tui

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dkittle/Jane-clinic-exercise/internal/domain"
	"github.com/dkittle/Jane-clinic-exercise/internal/usecase"
)

type screen int

const (
	screenPatient screen = iota
	screenType
	screenSlot
	screenBooked
)

type model struct {
	theme Theme
	deps  Deps
	log   *slog.Logger

	scr      screen
	patients list.Model
	types    list.Model
	slots    list.Model

	patient *domain.Patient
	typ     domain.AppointmentType
	date    domain.Date
	booking *domain.Booking

	loading bool
	toast   string
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, m.log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newList(title string, items []list.Item) list.Model {
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)
	return l
}

func newModel(deps Deps) model {
	log := deps.Logger
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	date := deps.Date
	if date.IsZero() {
		date = deps.Today.AddDays(1)
	}

	return model{
		theme:    DefaultTheme(),
		deps:     deps,
		log:      log,
		scr:      screenPatient,
		patients: newList("Patient", nil),
		types:    newList("Appointment type", typeItems()),
		slots:    newList("Openings", nil),
		date:     date,
		loading:  true,
	}
}

func (m model) Init() tea.Cmd { return cmdLoadPatients(m.deps) }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w, h := msg.Width-4, msg.Height-10
		m.patients.SetSize(w, h)
		m.types.SetSize(w, h)
		m.slots.SetSize(w, h)
		return m, nil

	case patientsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.log.Error("tui.patients.failed", "err", msg.err)
			m.toast = userMessage(msg.err)
			return m, nil
		}
		cmd := m.patients.SetItems(patientItems(msg.patients))
		if len(msg.patients) == 0 {
			m.toast = "No patients yet (run `clinic import`)"
		}
		return m, cmd

	case openingsLoadedMsg:
		if msg.date != m.date || msg.typ != m.typ {
			return m, nil // stale
		}
		m.loading = false
		if msg.err != nil {
			m.log.Error("tui.openings.failed", "err", msg.err)
			m.toast = userMessage(msg.err)
			return m, m.slots.SetItems(nil)
		}
		items := slotItems(m.typ, msg.openings)
		if len(items) == 0 {
			m.toast = "No openings on " + m.date.String()
		}
		return m, m.slots.SetItems(items)

	case bookedMsg:
		m.loading = false
		if msg.err != nil {
			m.log.Info("tui.book.rejected", "err", msg.err)
			m.toast = userMessage(msg.err)
			return m, cmdLoadOpenings(m.deps, m.date, m.typ)
		}
		m.booking = msg.booking
		m.scr = screenBooked
		m.toast = ""
		return m, nil

	case tea.KeyMsg:
		if m.activeList().FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.scr == screenPatient {
				return m, tea.Quit
			}
			return m.back(), nil

		case "esc", "b":
			if m.scr != screenPatient {
				return m.back(), nil
			}

		case "enter":
			return m.choose()

		case "<", ",":
			if m.scr == screenSlot {
				return m.moveDate(-1)
			}

		case ">", ".":
			if m.scr == screenSlot {
				return m.moveDate(1)
			}
		}
	}

	var cmd tea.Cmd
	switch m.scr {
	case screenPatient:
		m.patients, cmd = m.patients.Update(msg)
	case screenType:
		m.types, cmd = m.types.Update(msg)
	case screenSlot:
		m.slots, cmd = m.slots.Update(msg)
	}
	return m, cmd
}

func (m *model) activeList() *list.Model {
	switch m.scr {
	case screenType:
		return &m.types
	case screenSlot:
		return &m.slots
	default:
		return &m.patients
	}
}

func (m model) choose() (tea.Model, tea.Cmd) {
	if m.loading {
		return m, nil
	}
	switch m.scr {
	case screenPatient:
		it, ok := m.patients.SelectedItem().(patientItem)
		if !ok {
			return m, nil
		}
		m.patient = it.p
		m.scr = screenType
		m.toast = ""
		return m, nil

	case screenType:
		it, ok := m.types.SelectedItem().(typeItem)
		if !ok {
			return m, nil
		}
		m.typ = it.t
		m.scr = screenSlot
		m.loading = true
		return m, cmdLoadOpenings(m.deps, m.date, m.typ)

	case screenSlot:
		it, ok := m.slots.SelectedItem().(slotItem)
		if !ok {
			return m, nil
		}
		m.loading = true
		return m, cmdBook(m.deps, usecase.BookInput{
			PatientID:      m.patient.ID,
			PractitionerID: it.practitioner.ID,
			Type:           m.typ,
			Date:           m.date,
			Start:          it.start,
		}, m.log)

	case screenBooked:
		return m.reset(), cmdLoadPatients(m.deps)
	}
	return m, nil
}

func (m model) moveDate(days int) (tea.Model, tea.Cmd) {
	next := m.date.AddDays(days)
	if !m.deps.Today.IsZero() && next.Before(m.deps.Today) {
		return m, nil
	}
	m.date = next
	m.loading = true
	m.toast = ""
	return m, cmdLoadOpenings(m.deps, m.date, m.typ)
}

func (m model) back() model {
	m.toast = ""
	m.loading = false
	switch m.scr {
	case screenType:
		m.scr = screenPatient
	case screenSlot:
		m.scr = screenType
	case screenBooked:
		return m.reset()
	}
	return m
}

func (m model) reset() model {
	m.scr = screenPatient
	m.patient = nil
	m.typ = ""
	m.booking = nil
	m.toast = ""
	m.loading = false
	return m
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)

	clinic := "Clinic"
	if m.deps.Clinic != nil {
		clinic = m.deps.Clinic.Name
	}
	header := m.theme.Title.Render(clinic) + "\n" + m.theme.Subtitle.Render(m.breadcrumb()) + "\n"

	var body, help string
	switch m.scr {
	case screenPatient:
		body = m.theme.Card.Render(m.patients.View())
		help = "↑/↓ navigate • enter choose • / search • q quit"
	case screenType:
		body = m.theme.Card.Render(m.types.View())
		help = "↑/↓ navigate • enter choose • esc back"
	case screenSlot:
		m.slots.Title = fmt.Sprintf("Openings on %s", m.date)
		body = m.theme.Card.Render(m.slots.View())
		help = "↑/↓ navigate • enter book • </> change day • / search • esc back"
	case screenBooked:
		body = m.theme.Card.Render(m.theme.Success.Render("Booked") + "\n\n" + renderBooking(m.booking))
		help = "enter book another • q back"
	default:
		body = "unknown state"
	}

	status := ""
	switch {
	case m.loading:
		status = m.theme.Help.Render("loading…")
	case m.toast != "":
		status = m.theme.Error.Render(clampString(m.toast, 120))
	}

	return wrap.Render(header + "\n" + body + "\n" + status + "\n" + m.theme.Help.Render(help))
}

func (m model) breadcrumb() string {
	s := "Book an appointment"
	if m.patient != nil {
		s += " › " + m.patient.FullName()
	}
	if m.typ != "" && m.scr >= screenSlot {
		s += " › " + typeItem{t: m.typ}.Title()
	}
	return s
}

package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/horta/internal/ledger"
	"github.com/julianstephens/horta/internal/session"
	"github.com/julianstephens/horta/internal/tui/components/calendar"
	"github.com/julianstephens/horta/internal/tui/components/habits"
)

type SessionState int

const (
	StateGarden SessionState = iota
	StateHabits
	StateCalendar
	StateStats
	StateAddCalendarHabit
	StateConfirmDelete
)

// tabCount is the number of states reachable with tab; they come first.
const tabCount = 4

var tabTitles = [tabCount]string{"Garden", "Habits", "Calendar", "Stats"}

type CalendarHabitFormModel struct {
	Name        string
	Emoji       string
	MinimumDays string
}

type Model struct {
	session         *session.Session
	state           SessionState
	keys            KeyMap
	help            help.Model
	habitsModel     habits.Model
	calendarModel   calendar.Model
	gardenView      viewport.Model
	statsView       viewport.Model
	week            ledger.Week
	statsMonth      time.Time
	form            *huh.Form
	calendarForm    *CalendarHabitFormModel
	habitToDeleteID string
	status          string
	quitting        bool
	width           int
	height          int
}

func NewModel(s *session.Session) Model {
	now := s.Now()
	m := Model{
		session:       s,
		state:         StateGarden,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		habitsModel:   habits.New(s.Garden.Habits(), s.Garden.Plants(), 0, 0),
		calendarModel: calendar.New(s.Location()),
		gardenView:    viewport.New(0, 0),
		statsView:     viewport.New(0, 0),
		week:          s.Week(),
		statsMonth:    time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, s.Location()),
	}
	m.refresh()
	return m
}

// refresh rebuilds every view from the session.
func (m *Model) refresh() {
	g := m.session.Garden
	m.habitsModel.SetHabits(g.Habits(), g.Plants())

	habits := m.session.Calendar.All()
	m.calendarModel.SetWeek(m.week, habits, m.week.Grid(m.session.Ledger, habits))

	m.gardenView.SetContent(m.renderGarden())
	m.statsView.SetContent(m.renderStats())
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateHabits:
		keys = append(keys, m.habitsModel.Keys()...)
	case StateCalendar:
		keys = append(keys, m.calendarModel.Keys()...)
	case StateStats:
		keys = append(keys, m.keys.PrevMonth, m.keys.NextMonth)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}

	var actions []key.Binding
	switch m.state {
	case StateHabits:
		actions = m.habitsModel.Keys()
	case StateCalendar:
		actions = m.calendarModel.Keys()
	case StateStats:
		actions = []key.Binding{m.keys.PrevMonth, m.keys.NextMonth}
	}

	return [][]key.Binding{global, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}

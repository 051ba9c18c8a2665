package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/horta/internal/models"
	"github.com/julianstephens/horta/internal/tui/components/calendar"
	"github.com/julianstephens/horta/internal/tui/components/habits"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.setSize(size.Width, size.Height)
		if m.state != StateAddCalendarHabit {
			return m, nil
		}
	}

	switch m.state {
	case StateAddCalendarHabit:
		return m.updateAddCalendarHabit(msg)
	case StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}

	switch msg := msg.(type) {
	case habits.ToggleHabitMsg:
		if m.session.ToggleHabit(msg.ID, msg.Completed) {
			h, _ := m.session.Garden.Habit(msg.ID)
			p, _ := m.session.Garden.Plant(h.PlantID)
			m.status = fmt.Sprintf("%s %s is %s", p.Icon(), p.Name, p.Stage)
		}
		m.refresh()
		return m, nil

	case habits.DeleteHabitMsg:
		m.habitToDeleteID = msg.ID
		m.state = StateConfirmDelete
		return m, nil

	case calendar.ToggleCellMsg:
		m.session.ToggleCalendarHabit(msg.HabitID, msg.Day.Time(m.session.Location()), msg.Completed)
		m.refresh()
		return m, nil

	case calendar.SkipCellMsg:
		m.session.SkipCalendarHabit(msg.HabitID, msg.Day.Time(m.session.Location()))
		m.refresh()
		return m, nil

	case calendar.ShiftWeekMsg:
		for i := 0; i < msg.Weeks; i++ {
			m.week = m.week.Next()
		}
		for i := 0; i > msg.Weeks; i-- {
			m.week = m.week.Prev()
		}
		m.refresh()
		return m, nil

	case calendar.AddHabitMsg:
		m.calendarForm = &CalendarHabitFormModel{}
		m.form = NewCalendarHabitForm(m.calendarForm)
		m.state = StateAddCalendarHabit
		return m, m.form.Init()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			m.status = ""
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			m.status = ""
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	return m.updateActive(msg)
}

// updateActive forwards msg to the component of the current tab.
func (m Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.state {
	case StateGarden:
		m.gardenView, cmd = m.gardenView.Update(msg)
	case StateHabits:
		m.habitsModel, cmd = m.habitsModel.Update(msg)
	case StateCalendar:
		m.calendarModel, cmd = m.calendarModel.Update(msg)
	case StateStats:
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch {
			case key.Matches(keyMsg, m.keys.PrevMonth):
				m.statsMonth = m.statsMonth.AddDate(0, -1, 0)
				m.refresh()
				return m, nil
			case key.Matches(keyMsg, m.keys.NextMonth):
				m.statsMonth = m.statsMonth.AddDate(0, 1, 0)
				m.refresh()
				return m, nil
			}
		}
		m.statsView, cmd = m.statsView.Update(msg)
	}
	return m, cmd
}

func (m Model) updateAddCalendarHabit(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = StateCalendar
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		in, err := m.calendarForm.input()
		if err == nil {
			var created models.CalendarHabit
			created, err = m.session.AddCalendarHabit(in)
			if err == nil {
				m.status = fmt.Sprintf("Added %s %s", created.Emoji, created.Name)
			}
		}
		if err != nil {
			// Stay in the form so the input can be corrected
			m.status = err.Error()
			m.form.State = huh.StateNormal
			break
		}
		m.refresh()
		m.state = StateCalendar
	case huh.StateAborted:
		m.state = StateCalendar
	}
	return m, tea.Batch(cmds...)
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Confirm):
		if h, ok := m.session.Garden.Habit(m.habitToDeleteID); ok && m.session.DeleteHabit(h.ID) {
			m.status = "Deleted " + h.Name
		}
		m.habitToDeleteID = ""
		m.refresh()
		m.state = StateHabits
	case key.Matches(keyMsg, m.keys.Cancel):
		m.habitToDeleteID = ""
		m.state = StateHabits
	}
	return m, nil
}

func (m *Model) setSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width

	// tabs, status line and help
	contentHeight := max(0, height-4)
	m.habitsModel.SetSize(width, contentHeight)
	m.gardenView.Width = width
	m.gardenView.Height = contentHeight
	m.statsView.Width = width
	m.statsView.Height = contentHeight
	m.refresh()
}

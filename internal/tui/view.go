package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/horta/internal/stats"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case StateGarden:
		content = m.gardenView.View()
	case StateHabits:
		content = m.habitsModel.View()
	case StateCalendar:
		content = docStyle.Render(m.calendarModel.View())
	case StateStats:
		content = m.statsView.View()
	case StateAddCalendarHabit:
		content = docStyle.Render(m.form.View())
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		statusStyle.Render(m.status),
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	active := m.state
	switch m.state {
	case StateAddCalendarHabit:
		active = StateCalendar
	case StateConfirmDelete:
		active = StateHabits
	}

	var tabs []string
	for i, title := range tabTitles {
		if active == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	streak := mutedStyle.Render(fmt.Sprintf("  🔥 %d", m.session.Garden.LongestStreak()))
	tabs = append(tabs, streak)
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewConfirmDelete() string {
	name := m.habitToDeleteID
	if h, ok := m.session.Garden.Habit(m.habitToDeleteID); ok {
		name = h.Name
	}
	return lipgloss.Place(m.width, max(0, m.height-4),
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(fmt.Sprintf("Delete habit %q?", name)),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}

func newBar(width int) progress.Model {
	return progress.New(progress.WithDefaultGradient(), progress.WithWidth(width))
}

func (m Model) renderGarden() string {
	plants := m.session.Garden.Plants()
	if len(plants) == 0 {
		return docStyle.Render("The garden is empty.")
	}

	bar := newBar(24)
	var cards []string
	for _, p := range plants {
		status, _ := m.session.Garden.Inspect(p.ID)

		style := plantCardStyle
		if status.Healthy {
			style = healthyCardStyle
		}

		lines := []string{
			titleStyle.Render(p.Icon() + " " + p.Name),
			mutedStyle.Render(fmt.Sprintf("%s · %s", p.Type, p.Stage)),
			bar.ViewAs(p.Completed / 100),
		}
		for _, h := range status.Habits {
			mark := "○"
			if h.Completed {
				mark = "✓"
			}
			lines = append(lines, fmt.Sprintf("%s %s", mark, h.Name))
		}
		cards = append(cards, style.Render(strings.Join(lines, "\n")))
	}

	perRow := max(1, m.width/lipgloss.Width(cards[0]))
	var rows []string
	for i := 0; i < len(cards); i += perRow {
		end := min(i+perRow, len(cards))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i:end]...))
	}
	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m Model) renderStats() string {
	s := m.session.MonthStats(m.statsMonth.Year(), m.statsMonth.Month())

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s %d", s.Month, s.Year)))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Completion  %5.1f%%  %s\n", s.CompletionRate,
		mutedStyle.Render(fmt.Sprintf("%d of %d", s.TotalCompleted, s.TotalPossible)))
	fmt.Fprintf(&b, "Skipped     %5.1f%%  %s\n", s.SkipRate,
		mutedStyle.Render(fmt.Sprintf("%d of %d", s.TotalSkipped, s.TotalPossible)))
	if s.BestStreak != nil {
		fmt.Fprintf(&b, "Best streak %s %s, %d days\n", s.BestStreak.Emoji, s.BestStreak.Name, s.BestStreak.Streak)
	}

	if len(s.Habits) > 0 {
		b.WriteString("\n")
		bar := newBar(20)
		for _, hp := range s.Habits {
			goal := ""
			if hp.Reached {
				goal = " ✓"
			}
			fmt.Fprintf(&b, "%s %-20s %s %d/%d%s\n",
				hp.Habit.Emoji, hp.Habit.Name, bar.ViewAs(hp.Progress/100),
				hp.Habit.Streak, hp.Habit.MinimumDays, goal)
		}
	}

	b.WriteString("\n")
	b.WriteString(renderMonthGrid(s))
	return docStyle.Render(b.String())
}

// renderMonthGrid lays the month out as weeks starting on Sunday.
func renderMonthGrid(s stats.MonthSummary) string {
	cell := lipgloss.NewStyle().Width(6).Align(lipgloss.Center)

	header := make([]string, 7)
	for i, d := range []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"} {
		header[i] = cell.Foreground(lipgloss.Color("244")).Render(d)
	}
	rows := []string{lipgloss.JoinHorizontal(lipgloss.Top, header...)}

	first := s.Days[0].Day.Time(time.UTC)
	week := make([]string, int(first.Weekday()))
	for i := range week {
		week[i] = cell.Render("")
	}

	for i, d := range s.Days {
		week = append(week, cell.Foreground(dayColor(d)).Render(fmt.Sprintf("%2d", i+1)))
		if len(week) == 7 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, week...))
			week = week[:0]
		}
	}
	if len(week) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, week...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func dayColor(d stats.DaySummary) lipgloss.Color {
	switch {
	case d.Status == stats.DayFuture:
		return lipgloss.Color("238")
	case d.Status == stats.DayNoData:
		return lipgloss.Color("244")
	case d.Percentage >= 100:
		return lipgloss.Color("34")
	case d.Percentage >= 50:
		return lipgloss.Color("114")
	case d.Completed > 0:
		return lipgloss.Color("150")
	}
	return lipgloss.Color("214")
}

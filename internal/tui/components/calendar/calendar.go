package calendar

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/horta/internal/ledger"
	"github.com/julianstephens/horta/internal/models"
)

type ToggleCellMsg struct {
	HabitID   string
	Day       models.Day
	Completed bool
}

type SkipCellMsg struct {
	HabitID string
	Day     models.Day
}

// ShiftWeekMsg asks for the week Weeks weeks away from the current one.
type ShiftWeekMsg struct {
	Weeks int
}

type AddHabitMsg struct{}

type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Toggle   key.Binding
	Skip     key.Binding
	PrevWeek key.Binding
	NextWeek key.Binding
	Add      key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev day"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next day"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "toggle done"),
		),
		Skip: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "skip"),
		),
		PrevWeek: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "prev week"),
		),
		NextWeek: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next week"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add habit"),
		),
	}
}

var (
	headerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Width(cellWidth).Align(lipgloss.Center)
	todayStyle    = headerStyle.Foreground(lipgloss.Color("205")).Bold(true)
	cellStyle     = lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Center)
	selectedStyle = cellStyle.Background(lipgloss.Color("236")).Foreground(lipgloss.Color("205"))
	lockedStyle   = cellStyle.Foreground(lipgloss.Color("238"))
	nameStyle     = lipgloss.NewStyle().Width(nameWidth)
)

const (
	cellWidth = 8
	nameWidth = 22
)

type Model struct {
	keys   KeyMap
	week   ledger.Week
	habits []models.CalendarHabit
	grid   [][]ledger.Cell
	loc    *time.Location
	row    int
	col    int
}

func New(loc *time.Location) Model {
	return Model{keys: DefaultKeyMap(), loc: loc, col: 3}
}

// SetWeek replaces the displayed week. The cursor stays in place when it
// still fits the grid.
func (m *Model) SetWeek(week ledger.Week, habits []models.CalendarHabit, grid [][]ledger.Cell) {
	m.week = week
	m.habits = habits
	m.grid = grid
	m.row = max(0, min(m.row, len(habits)-1))
}

func (m Model) Week() ledger.Week { return m.week }

// Selected returns the cell under the cursor.
func (m Model) Selected() (ledger.Cell, bool) {
	if m.row < 0 || m.row >= len(m.grid) || m.col >= len(m.grid[m.row]) {
		return ledger.Cell{}, false
	}
	return m.grid[m.row][m.col], true
}

func (m Model) Keys() []key.Binding {
	return []key.Binding{m.keys.Toggle, m.keys.Skip, m.keys.PrevWeek, m.keys.NextWeek, m.keys.Add}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.row > 0 {
			m.row--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.row < len(m.habits)-1 {
			m.row++
		}
	case key.Matches(keyMsg, m.keys.Left):
		if m.col > 0 {
			m.col--
		}
	case key.Matches(keyMsg, m.keys.Right):
		if m.col < len(m.week.Days())-1 {
			m.col++
		}
	case key.Matches(keyMsg, m.keys.Toggle):
		if c, ok := m.Selected(); ok && c.CanToggle {
			return m, func() tea.Msg { return ToggleCellMsg{HabitID: c.HabitID, Day: c.Day, Completed: c.Toggled()} }
		}
	case key.Matches(keyMsg, m.keys.Skip):
		if c, ok := m.Selected(); ok && c.CanSkip {
			return m, func() tea.Msg { return SkipCellMsg{HabitID: c.HabitID, Day: c.Day} }
		}
	case key.Matches(keyMsg, m.keys.PrevWeek):
		return m, func() tea.Msg { return ShiftWeekMsg{Weeks: -1} }
	case key.Matches(keyMsg, m.keys.NextWeek):
		return m, func() tea.Msg { return ShiftWeekMsg{Weeks: 1} }
	case key.Matches(keyMsg, m.keys.Add):
		return m, func() tea.Msg { return AddHabitMsg{} }
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	days := m.week.Days()
	header := []string{nameStyle.Render("")}
	for _, d := range days {
		label := d.Time(m.loc).Format("Mon 02")
		if d == m.week.Today {
			header = append(header, todayStyle.Render(label))
		} else {
			header = append(header, headerStyle.Render(label))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, header...))
	b.WriteString("\n")

	if len(m.habits) == 0 {
		b.WriteString("\n  No calendar habits yet.\n  Press 'a' to add one.")
		return b.String()
	}

	for i, row := range m.grid {
		h := m.habits[i]
		cells := []string{nameStyle.Render(h.Emoji + " " + h.Name)}
		for j, c := range row {
			cells = append(cells, m.renderCell(h, c, i == m.row && j == m.col))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderCell(h models.CalendarHabit, c ledger.Cell, selected bool) string {
	var glyph string
	switch c.State {
	case models.StateCompleted:
		glyph = h.Emoji
	case models.StateSkipped:
		glyph = "–"
	default:
		glyph = "·"
	}

	switch {
	case selected:
		return selectedStyle.Render(glyph)
	case !c.CanToggle:
		return lockedStyle.Render(glyph)
	}
	return cellStyle.Render(glyph)
}

package ledger

import (
	"github.com/julianstephens/horta/internal/constants"
	"github.com/julianstephens/horta/internal/models"
)

// Cell is one habit on one day of a week view, with the actions a view may
// offer for it.
type Cell struct {
	HabitID   string
	Day       models.Day
	State     models.RecordState
	IsToday   bool
	CanToggle bool
	CanSkip   bool
}

// Week is a seven-day window centred on Center.
type Week struct {
	Center models.Day
	Today  models.Day
}

func NewWeek(center, today models.Day) Week {
	return Week{Center: center, Today: today}
}

// Days returns the window from three days before Center to three after.
func (w Week) Days() []models.Day {
	days := make([]models.Day, constants.WeekLength)
	for i := range days {
		days[i] = w.Center.AddDays(i - constants.WeekLeadDays)
	}
	return days
}

func (w Week) Prev() Week { return Week{Center: w.Center.AddDays(-constants.WeekLength), Today: w.Today} }
func (w Week) Next() Week { return Week{Center: w.Center.AddDays(constants.WeekLength), Today: w.Today} }

// Cell describes habitID on day. Recorded cells can always be toggled back.
// Unrecorded past days can be completed or skipped, today can only be
// completed, and future days are locked.
func (w Week) Cell(l *Ledger, habitID string, day models.Day) Cell {
	c := Cell{
		HabitID: habitID,
		Day:     day,
		State:   l.State(habitID, day),
		IsToday: day == w.Today,
	}

	switch {
	case c.State != models.StateUnset:
		c.CanToggle = true
	case day.Before(w.Today):
		c.CanToggle = true
		c.CanSkip = true
	case c.IsToday:
		c.CanToggle = true
	}
	return c
}

// Toggled is the completion value a toggle of this cell records: a
// completed cell is undone, anything else is completed.
func (c Cell) Toggled() bool {
	return !c.State.Completed()
}

// Grid returns one row of cells per habit, in the order given.
func (w Week) Grid(l *Ledger, habits []models.CalendarHabit) [][]Cell {
	days := w.Days()
	grid := make([][]Cell, len(habits))
	for i, h := range habits {
		row := make([]Cell, len(days))
		for j, d := range days {
			row[j] = w.Cell(l, h.ID, d)
		}
		grid[i] = row
	}
	return grid
}

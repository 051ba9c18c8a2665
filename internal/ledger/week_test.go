package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/horta/internal/models"
)

func TestWeekDays(t *testing.T) {
	w := NewWeek("2025-03-12", "2025-03-12")

	assert.Equal(t, []models.Day{
		"2025-03-09", "2025-03-10", "2025-03-11", "2025-03-12",
		"2025-03-13", "2025-03-14", "2025-03-15",
	}, w.Days())

	assert.Equal(t, models.Day("2025-03-05"), w.Prev().Center)
	assert.Equal(t, models.Day("2025-03-19"), w.Next().Center)
	assert.Equal(t, w.Today, w.Next().Today)
	assert.Equal(t, w, w.Next().Prev())
}

func TestWeekCell_Actions(t *testing.T) {
	l := New()
	l.Toggle("h1", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), true)
	w := NewWeek("2025-03-12", "2025-03-12")

	tests := []struct {
		name      string
		day       models.Day
		state     models.RecordState
		canToggle bool
		canSkip   bool
		isToday   bool
	}{
		{"recorded past day", "2025-03-10", models.StateCompleted, true, false, false},
		{"unrecorded past day", "2025-03-11", models.StateUnset, true, true, false},
		{"today", "2025-03-12", models.StateUnset, true, false, true},
		{"future", "2025-03-13", models.StateUnset, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := w.Cell(l, "h1", tt.day)
			assert.Equal(t, tt.state, c.State)
			assert.Equal(t, tt.canToggle, c.CanToggle)
			assert.Equal(t, tt.canSkip, c.CanSkip)
			assert.Equal(t, tt.isToday, c.IsToday)
		})
	}
}

func TestWeekGrid(t *testing.T) {
	l := New()
	l.Skip("b", time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC))
	habits := []models.CalendarHabit{{ID: "a"}, {ID: "b"}}

	grid := NewWeek("2025-03-12", "2025-03-12").Grid(l, habits)

	require.Len(t, grid, 2)
	require.Len(t, grid[1], 7)
	assert.Equal(t, "b", grid[1][0].HabitID)
	assert.Equal(t, models.StateSkipped, grid[1][0].State)
	assert.Equal(t, models.StateUnset, grid[0][0].State)
}

func TestCellToggled(t *testing.T) {
	assert.False(t, Cell{State: models.StateCompleted}.Toggled())
	assert.True(t, Cell{State: models.StateSkipped}.Toggled())
	assert.True(t, Cell{State: models.StateUnset}.Toggled())
}

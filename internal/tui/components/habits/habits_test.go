package habits

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/horta/internal/models"
)

func newTestModel() Model {
	plants := []models.Plant{{ID: "p", Name: "Basil", Type: models.PlantHerb, Stage: models.StageSprout}}
	habits := []models.Habit{
		{ID: "h1", Name: "Water", Type: models.HabitWater, Completed: true, Streak: 3, PlantID: "p"},
		{ID: "h2", Name: "Prune", Type: models.HabitPrune, PlantID: "p"},
	}
	return New(habits, plants, 80, 20)
}

func TestToggleSelected(t *testing.T) {
	m := newTestModel()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	require.NotNil(t, cmd)
	assert.Equal(t, ToggleHabitMsg{ID: "h1", Completed: false}, cmd())
}

func TestDeleteSelected(t *testing.T) {
	m := newTestModel()

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")})
	require.NotNil(t, cmd)
	assert.Equal(t, DeleteHabitMsg{ID: "h2"}, cmd())
}

func TestItem(t *testing.T) {
	i := Item{
		Habit: models.Habit{Name: "Water", Type: models.HabitWater, Completed: true, Streak: 3},
		Plant: models.Plant{Name: "Basil", Stage: models.StageSprout},
	}
	assert.Equal(t, "✓ Water", i.Title())
	assert.Equal(t, "water | streak 3 | 🌱 Basil", i.Description())
}

func TestEmptyView(t *testing.T) {
	m := New(nil, nil, 80, 20)
	assert.Contains(t, m.View(), "No habits left")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.Nil(t, cmd)
}

package session

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/horta/internal/garden"
	"github.com/julianstephens/horta/internal/models"
)

const script = `
events:
  - op: toggle_habit
    habit: habit1
    completed: true
  - op: toggle_habit
    habit: ghost
    completed: true
  - op: delete_habit
    habit: habit4
  - op: toggle_calendar
    habit: "1"
    date: "2025-03-12"
    completed: true
  - op: skip_calendar
    habit: "1"
    date: "2025-03-12"
  - op: toggle_calendar
    habit: ghost
    date: "2025-03-11"
    completed: true
  - op: add_calendar_habit
    name: Stretch
    emoji: "🌿"
`

func TestReplay(t *testing.T) {
	s := newSession(t, garden.Options{})
	sc, err := ParseScript(strings.NewReader(script))
	require.NoError(t, err)
	require.Len(t, sc.Events, 7)

	res, err := s.Replay(sc)
	require.NoError(t, err)

	assert.Equal(t, 5, res.Applied)
	assert.Equal(t, 2, res.Ignored)
	require.Len(t, res.Records, 2)
	assert.Equal(t, res.Records[0].ID, res.Records[1].ID)
	assert.Equal(t, models.StateSkipped, res.Records[1].State)
	require.Len(t, res.Added, 1)
	assert.Equal(t, 7, res.Added[0].MinimumDays)

	p, _ := s.Garden.Plant("plant1")
	assert.Equal(t, models.StageMature, p.Stage)
	_, ok := s.Garden.Habit("habit4")
	assert.False(t, ok)
	assert.Equal(t, 1, s.Ledger.Len())
	assert.Len(t, s.Calendar.All(), 5)
}

func TestReplay_InvalidScriptChangesNothing(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"unknown op", "events: [{op: toggle_habit, habit: habit1, completed: true}, {op: water}]", `event 1 (water): unknown op`},
		{"missing habit", "events: [{op: toggle_habit, habit: habit1}, {op: delete_habit}]", "event 1 (delete_habit): habit is required"},
		{"bad date", "events: [{op: toggle_habit, habit: habit1}, {op: skip_calendar, habit: \"1\", date: tomorrow}]", "event 1 (skip_calendar)"},
		{"bad calendar habit", "events: [{op: toggle_habit, habit: habit1}, {op: add_calendar_habit, name: x, emoji: \"🌿\"}]", "event 1 (add_calendar_habit): name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSession(t, garden.Options{})
			before := s.Garden.Habits()

			sc, err := ParseScript(strings.NewReader(tt.raw))
			require.NoError(t, err)

			_, err = s.Replay(sc)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.Equal(t, before, s.Garden.Habits())
			assert.Zero(t, s.Ledger.Len())
		})
	}
}

func TestParseScript_Empty(t *testing.T) {
	sc, err := ParseScript(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, sc.Events)
}

func TestParseScript_Malformed(t *testing.T) {
	_, err := ParseScript(strings.NewReader("events: ["))
	assert.Error(t, err)
}

func TestLoadScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.yaml")
	require.NoError(t, os.WriteFile(path, []byte(script), 0o644))

	sc, err := LoadScript(path)
	require.NoError(t, err)
	assert.Len(t, sc.Events, 6)

	_, err = LoadScript(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

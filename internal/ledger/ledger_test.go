package ledger

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/horta/internal/models"
)

func TestToggleThenSkip_SingleRecordFlipped(t *testing.T) {
	l := New()
	date := time.Date(2025, 3, 12, 9, 30, 0, 0, time.UTC)

	first := l.Toggle("h9", date, true)
	assert.Equal(t, models.StateCompleted, first.State)

	second := l.Skip("h9", date)

	records := l.Records()
	require.Len(t, records, 1)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, models.Day("2025-03-12"), records[0].Date)
	assert.False(t, records[0].State.Completed())
	assert.True(t, records[0].State.Skipped())
}

func TestToggle_TimeOfDayMapsToSameRecord(t *testing.T) {
	l := New()

	l.Toggle("h1", time.Date(2025, 3, 12, 0, 0, 1, 0, time.UTC), true)
	l.Toggle("h1", time.Date(2025, 3, 12, 23, 59, 59, 0, time.UTC), false)

	require.Equal(t, 1, l.Len())
	assert.Equal(t, models.StateUnset, l.State("h1", "2025-03-12"))
}

func TestToggle_ClearsSkip(t *testing.T) {
	l := New()
	date := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	l.Skip("h1", date)
	r := l.Toggle("h1", date, false)

	assert.Equal(t, models.StateUnset, r.State)
	assert.Equal(t, 1, l.Len(), "records are never removed")
}

func TestToggle_NewRecordsGetDistinctIDs(t *testing.T) {
	l := New()
	a := l.Toggle("h1", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), true)
	b := l.Toggle("h1", time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), true)
	c := l.Skip("h2", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.NotEqual(t, a.ID, c.ID)
}

func TestLedger_RandomOperationsKeepOneRecordPerKey(t *testing.T) {
	l := New()
	rng := rand.New(rand.NewSource(42))
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 2000; i++ {
		habit := fmt.Sprintf("h%d", rng.Intn(4))
		date := base.Add(time.Duration(rng.Intn(10*24)) * time.Hour)
		switch rng.Intn(3) {
		case 0:
			l.Toggle(habit, date, true)
		case 1:
			l.Toggle(habit, date, false)
		default:
			l.Skip(habit, date)
		}
	}

	seen := make(map[string]bool)
	for _, r := range l.Records() {
		k := r.HabitID + "|" + r.Date.String()
		require.False(t, seen[k], "duplicate record for %s", k)
		seen[k] = true
		require.False(t, r.State.Completed() && r.State.Skipped())
	}
	assert.LessOrEqual(t, l.Len(), 4*10)
}

func TestLoad_KeepsFirstRecordPerKey(t *testing.T) {
	l := New()
	l.Load([]models.DailyRecord{
		{ID: "a", HabitID: "h1", Date: "2025-03-01", State: models.StateCompleted},
		{ID: "b", HabitID: "h1", Date: "2025-03-01", State: models.StateSkipped},
		{HabitID: "h1", Date: "2025-03-02", State: models.StateSkipped},
	})

	require.Equal(t, 2, l.Len())
	r, ok := l.Lookup("h1", "2025-03-01")
	require.True(t, ok)
	assert.Equal(t, "a", r.ID)

	r, _ = l.Lookup("h1", "2025-03-02")
	assert.NotEmpty(t, r.ID)
}

func TestQueries(t *testing.T) {
	l := New()
	l.Load([]models.DailyRecord{
		{ID: "1", HabitID: "h1", Date: "2025-03-01", State: models.StateCompleted},
		{ID: "2", HabitID: "h2", Date: "2025-03-01", State: models.StateSkipped},
		{ID: "3", HabitID: "h1", Date: "2025-03-05", State: models.StateCompleted},
		{ID: "4", HabitID: "h1", Date: "2025-04-01", State: models.StateCompleted},
	})

	assert.Len(t, l.ForHabit("h1"), 3)
	assert.Len(t, l.ForDay("2025-03-01"), 2)
	assert.Len(t, l.Between("2025-03-01", "2025-03-31"), 3)
	assert.Len(t, l.Between("2025-03-02", "2025-03-05"), 1)

	_, ok := l.Lookup("h3", "2025-03-01")
	assert.False(t, ok)
	assert.Equal(t, models.StateUnset, l.State("h3", "2025-03-01"))
}

package ledger

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/horta/internal/logger"
	"github.com/julianstephens/horta/internal/models"
)

type key struct {
	habitID string
	day     models.Day
}

// Ledger holds at most one DailyRecord per (habit, day). Records are created
// on first toggle or skip and are never removed.
type Ledger struct {
	mu      sync.Mutex
	records []models.DailyRecord
	index   map[key]int
	newID   func() string
}

func New() *Ledger {
	return &Ledger{
		index: make(map[key]int),
		newID: func() string { return uuid.New().String() },
	}
}

// Load inserts existing records, keeping the first one for any repeated key.
func (l *Ledger) Load(records []models.DailyRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, r := range records {
		k := key{r.HabitID, r.Date}
		if _, ok := l.index[k]; ok {
			continue
		}
		if r.ID == "" {
			r.ID = l.newID()
		}
		l.index[k] = len(l.records)
		l.records = append(l.records, r)
	}
}

func (l *Ledger) upsert(habitID string, day models.Day, state models.RecordState) models.DailyRecord {
	l.mu.Lock()
	defer l.mu.Unlock()

	k := key{habitID, day}
	if i, ok := l.index[k]; ok {
		l.records[i].State = state
		logger.Debug("Daily record updated", "habit", habitID, "date", day, "state", state)
		return l.records[i]
	}

	r := models.DailyRecord{
		ID:      l.newID(),
		HabitID: habitID,
		Date:    day,
		State:   state,
	}
	l.index[k] = len(l.records)
	l.records = append(l.records, r)
	logger.Debug("Daily record created", "habit", habitID, "date", day, "state", state)
	return r
}

// Toggle marks habitID as completed, or not completed, on the calendar day of
// date. A skipped day toggled either way is no longer skipped.
func (l *Ledger) Toggle(habitID string, date time.Time, completed bool) models.DailyRecord {
	state := models.StateUnset
	if completed {
		state = models.StateCompleted
	}
	return l.upsert(habitID, models.DayOf(date), state)
}

// Skip marks habitID as skipped on the calendar day of date.
func (l *Ledger) Skip(habitID string, date time.Time) models.DailyRecord {
	return l.upsert(habitID, models.DayOf(date), models.StateSkipped)
}

func (l *Ledger) Lookup(habitID string, day models.Day) (models.DailyRecord, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	i, ok := l.index[key{habitID, day}]
	if !ok {
		return models.DailyRecord{}, false
	}
	return l.records[i], true
}

// State is the state of a day cell; cells without a record are unset.
func (l *Ledger) State(habitID string, day models.Day) models.RecordState {
	r, _ := l.Lookup(habitID, day)
	return r.State
}

func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.records)
}

// Records returns every record in insertion order.
func (l *Ledger) Records() []models.DailyRecord {
	return l.filter(func(models.DailyRecord) bool { return true })
}

func (l *Ledger) ForHabit(habitID string) []models.DailyRecord {
	return l.filter(func(r models.DailyRecord) bool { return r.HabitID == habitID })
}

func (l *Ledger) ForDay(day models.Day) []models.DailyRecord {
	return l.filter(func(r models.DailyRecord) bool { return r.Date == day })
}

// Between returns records dated within [from, to].
func (l *Ledger) Between(from, to models.Day) []models.DailyRecord {
	return l.filter(func(r models.DailyRecord) bool {
		return !r.Date.Before(from) && !r.Date.After(to)
	})
}

func (l *Ledger) filter(keep func(models.DailyRecord) bool) []models.DailyRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []models.DailyRecord
	for _, r := range l.records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

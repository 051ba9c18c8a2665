// Package session wires the garden, the calendar ledger and its habits into
// the single state container a view drives.
package session

import (
	"time"

	"github.com/julianstephens/horta/internal/garden"
	"github.com/julianstephens/horta/internal/ledger"
	"github.com/julianstephens/horta/internal/logger"
	"github.com/julianstephens/horta/internal/models"
	"github.com/julianstephens/horta/internal/seed"
	"github.com/julianstephens/horta/internal/stats"
)

// Options configure a session
type Options struct {
	Garden   garden.Options
	Location *time.Location
	// Now is the clock; time.Now when nil
	Now func() time.Time
}

type Session struct {
	Garden   *garden.Garden
	Ledger   *ledger.Ledger
	Calendar *ledger.Registry

	loc *time.Location
	now func() time.Time
}

// New builds a session from seed data.
func New(data seed.Data, opts Options) (*Session, error) {
	g, err := garden.New(data.Plants, data.Habits, opts.Garden)
	if err != nil {
		return nil, err
	}

	l := ledger.New()
	l.Load(data.DailyRecords())

	s := &Session{
		Garden:   g,
		Ledger:   l,
		Calendar: ledger.NewRegistry(data.CalendarHabits),
		loc:      opts.Location,
		now:      opts.Now,
	}
	if s.loc == nil {
		s.loc = time.Local
	}
	if s.now == nil {
		s.now = time.Now
	}

	logger.Info("Session started",
		"plants", len(data.Plants),
		"habits", len(data.Habits),
		"calendar_habits", len(data.CalendarHabits),
		"records", l.Len())
	return s, nil
}

// Now is the current time in the session's location
func (s *Session) Now() time.Time {
	return s.now().In(s.loc)
}

func (s *Session) Today() models.Day {
	return models.DayOf(s.Now())
}

// Location is the zone calendar days are taken in
func (s *Session) Location() *time.Location {
	return s.loc
}

// ToggleHabit marks a garden habit completed or not and regrows its plant.
func (s *Session) ToggleHabit(id string, completed bool) bool {
	return s.Garden.ToggleHabit(id, completed)
}

// DeleteHabit removes a garden habit.
func (s *Session) DeleteHabit(id string) bool {
	return s.Garden.DeleteHabit(id)
}

// ToggleCalendarHabit records a calendar habit as done, or not, on date's
// day. The day is read in date's own location. An unknown habit records
// nothing and reports false.
func (s *Session) ToggleCalendarHabit(habitID string, date time.Time, completed bool) (models.DailyRecord, bool) {
	if !s.knownCalendarHabit(habitID, "toggle") {
		return models.DailyRecord{}, false
	}
	return s.Ledger.Toggle(habitID, date, completed), true
}

// SkipCalendarHabit records a calendar habit as skipped on date's day.
func (s *Session) SkipCalendarHabit(habitID string, date time.Time) (models.DailyRecord, bool) {
	if !s.knownCalendarHabit(habitID, "skip") {
		return models.DailyRecord{}, false
	}
	return s.Ledger.Skip(habitID, date), true
}

func (s *Session) knownCalendarHabit(habitID, action string) bool {
	if _, ok := s.Calendar.Get(habitID); !ok {
		logger.Debug("Ignoring "+action+" for unknown calendar habit", "habit", habitID)
		return false
	}
	return true
}

// AddCalendarHabit registers a new calendar habit.
func (s *Session) AddCalendarHabit(in ledger.NewCalendarHabit) (models.CalendarHabit, error) {
	h, err := s.Calendar.Add(in)
	if err != nil {
		return models.CalendarHabit{}, err
	}
	logger.Debug("Calendar habit added", "id", h.ID, "name", h.Name)
	return h, nil
}

// DeriveStage maps a completion percentage to a growth stage.
func (s *Session) DeriveStage(percentage float64) models.Stage {
	return garden.DeriveStage(percentage)
}

// Week returns the week view centred on today.
func (s *Session) Week() ledger.Week {
	today := s.Today()
	return ledger.NewWeek(today, today)
}

// MonthStats summarises the given month as of now.
func (s *Session) MonthStats(year int, month time.Month) stats.MonthSummary {
	return stats.Month(year, month, s.Now(), s.Calendar.All(), s.Ledger.Records())
}

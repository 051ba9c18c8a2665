// Package stats aggregates calendar habit records over a month.
package stats

import (
	"time"

	"github.com/julianstephens/horta/internal/models"
)

type DayStatus string

const (
	DayFuture   DayStatus = "future"
	DayNoData   DayStatus = "no_data"
	DayRecorded DayStatus = "recorded"
)

// DaySummary is one cell of the month grid.
type DaySummary struct {
	Day        models.Day
	Completed  int
	Skipped    int
	Total      int
	Percentage float64
	Status     DayStatus
}

// HabitProgress tracks a calendar habit's month and its streak goal.
type HabitProgress struct {
	Habit       models.CalendarHabit
	Completions int
	// Progress is Streak/MinimumDays in percent, capped at 100.
	Progress float64
	Reached  bool
}

type MonthSummary struct {
	Year           int
	Month          time.Month
	TotalPossible  int
	TotalCompleted int
	TotalSkipped   int
	CompletionRate float64
	SkipRate       float64
	BestStreak     *models.CalendarHabit
	Days           []DaySummary
	Habits         []HabitProgress
}

// Month summarises records for the given month as seen on now. Only days up
// to today count toward the totals.
func Month(year int, month time.Month, now time.Time, habits []models.CalendarHabit, records []models.DailyRecord) MonthSummary {
	today := models.DayOf(now)
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	days := daysIn(first)

	s := MonthSummary{Year: year, Month: month}

	inMonth := make([]models.DailyRecord, 0, len(records))
	for _, r := range records {
		if r.Date.Before(days[0]) || r.Date.After(days[len(days)-1]) {
			continue
		}
		inMonth = append(inMonth, r)
	}

	byDay := make(map[models.Day][]models.DailyRecord)
	for _, r := range inMonth {
		byDay[r.Date] = append(byDay[r.Date], r)
	}

	pastDays := 0
	for _, d := range days {
		if !d.After(today) {
			pastDays++
		}
		s.Days = append(s.Days, summarizeDay(d, today, len(habits), byDay[d]))
	}

	s.TotalPossible = pastDays * len(habits)
	for _, r := range inMonth {
		if r.Date.After(today) {
			continue
		}
		switch {
		case r.State.Completed():
			s.TotalCompleted++
		case r.State.Skipped():
			s.TotalSkipped++
		}
	}
	s.CompletionRate = percent(s.TotalCompleted, s.TotalPossible)
	s.SkipRate = percent(s.TotalSkipped, s.TotalPossible)

	s.BestStreak = BestStreak(habits)
	for _, h := range habits {
		s.Habits = append(s.Habits, progressFor(h, inMonth))
	}

	return s
}

func summarizeDay(d, today models.Day, total int, records []models.DailyRecord) DaySummary {
	ds := DaySummary{Day: d, Total: total}
	for _, r := range records {
		switch {
		case r.State.Completed():
			ds.Completed++
		case r.State.Skipped():
			ds.Skipped++
		}
	}
	ds.Percentage = percent(ds.Completed, total)

	switch {
	case d.After(today):
		ds.Status = DayFuture
	case len(records) == 0:
		ds.Status = DayNoData
	default:
		ds.Status = DayRecorded
	}
	return ds
}

func progressFor(h models.CalendarHabit, records []models.DailyRecord) HabitProgress {
	p := HabitProgress{Habit: h}
	for _, r := range records {
		if r.HabitID == h.ID && r.State.Completed() {
			p.Completions++
		}
	}
	if h.MinimumDays > 0 {
		raw := float64(h.Streak) / float64(h.MinimumDays) * 100
		p.Reached = raw >= 100
		p.Progress = min(raw, 100)
	}
	return p
}

// BestStreak returns the habit with the highest streak, the first one on a
// tie, or nil when there are no habits.
func BestStreak(habits []models.CalendarHabit) *models.CalendarHabit {
	if len(habits) == 0 {
		return nil
	}
	best := habits[0]
	for _, h := range habits[1:] {
		if h.Streak > best.Streak {
			best = h
		}
	}
	return &best
}

func daysIn(first time.Time) []models.Day {
	var days []models.Day
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		days = append(days, models.DayOf(d))
	}
	return days
}

func percent(n, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}

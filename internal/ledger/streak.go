package ledger

import "github.com/julianstephens/horta/internal/models"

// RecordedStreak counts consecutive completed days for habitID ending today.
// When today has no completion yet the run may end yesterday instead, so an
// unfinished day does not break a streak. A skipped day ends the run.
func RecordedStreak(records []models.DailyRecord, habitID string, today models.Day) int {
	done := make(map[models.Day]bool)
	for _, r := range records {
		if r.HabitID == habitID && r.State.Completed() {
			done[r.Date] = true
		}
	}

	day := today
	if !done[day] {
		day = day.AddDays(-1)
	}

	streak := 0
	for done[day] {
		streak++
		day = day.AddDays(-1)
	}
	return streak
}

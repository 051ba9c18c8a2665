package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/julianstephens/horta/internal/models"
)

func completed(habit string, days ...models.Day) []models.DailyRecord {
	out := make([]models.DailyRecord, len(days))
	for i, d := range days {
		out[i] = models.DailyRecord{HabitID: habit, Date: d, State: models.StateCompleted}
	}
	return out
}

func TestRecordedStreak(t *testing.T) {
	today := models.Day("2025-03-12")

	tests := []struct {
		name    string
		records []models.DailyRecord
		want    int
	}{
		{"none", nil, 0},
		{"ending today", completed("h", "2025-03-10", "2025-03-11", "2025-03-12"), 3},
		{"ending yesterday", completed("h", "2025-03-10", "2025-03-11"), 2},
		{"gap", completed("h", "2025-03-08", "2025-03-10", "2025-03-11"), 2},
		{"older run only", completed("h", "2025-03-01", "2025-03-02"), 0},
		{"other habit", completed("x", "2025-03-11", "2025-03-12"), 0},
		{"skip breaks run", append(
			completed("h", "2025-03-09", "2025-03-11"),
			models.DailyRecord{HabitID: "h", Date: "2025-03-10", State: models.StateSkipped},
		), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RecordedStreak(tt.records, "h", today))
		})
	}
}

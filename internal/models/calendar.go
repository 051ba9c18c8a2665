package models

import (
	"encoding/json"
	"fmt"
)

// CalendarHabit is an emoji-tracked habit recorded per calendar day. Its ids
// live in a separate space from Habit ids.
type CalendarHabit struct {
	ID          string `json:"id" yaml:"id"`
	Emoji       string `json:"emoji" yaml:"emoji"`
	Name        string `json:"name" yaml:"name"`
	Streak      int    `json:"streak" yaml:"streak"`
	MinimumDays int    `json:"minimumDays" yaml:"minimum_days"`
}

// RecordState is the state of one day cell. A single value keeps completed
// and skipped mutually exclusive.
type RecordState int

const (
	StateUnset RecordState = iota
	StateCompleted
	StateSkipped
)

func (s RecordState) Completed() bool { return s == StateCompleted }
func (s RecordState) Skipped() bool   { return s == StateSkipped }

func (s RecordState) String() string {
	switch s {
	case StateCompleted:
		return "completed"
	case StateSkipped:
		return "skipped"
	default:
		return "unset"
	}
}

// ParseRecordState accepts the names produced by String.
func ParseRecordState(s string) (RecordState, error) {
	switch s {
	case "unset", "":
		return StateUnset, nil
	case "completed":
		return StateCompleted, nil
	case "skipped":
		return StateSkipped, nil
	}
	return StateUnset, fmt.Errorf("invalid record state %q", s)
}

// DailyRecord is the completion state of one calendar habit on one day
type DailyRecord struct {
	ID      string
	HabitID string
	Date    Day
	State   RecordState
}

type dailyRecordJSON struct {
	ID        string `json:"id"`
	HabitID   string `json:"habitId"`
	Date      Day    `json:"date"`
	Completed bool   `json:"completed"`
	Skipped   bool   `json:"skipped"`
}

// MarshalJSON emits the boolean-pair wire shape.
func (r DailyRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(dailyRecordJSON{
		ID:        r.ID,
		HabitID:   r.HabitID,
		Date:      r.Date,
		Completed: r.State.Completed(),
		Skipped:   r.State.Skipped(),
	})
}

// UnmarshalJSON rejects records that are both completed and skipped.
func (r *DailyRecord) UnmarshalJSON(data []byte) error {
	var raw dailyRecordJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Completed && raw.Skipped {
		return fmt.Errorf("record %s: completed and skipped are mutually exclusive", raw.ID)
	}
	*r = DailyRecord{ID: raw.ID, HabitID: raw.HabitID, Date: raw.Date}
	switch {
	case raw.Completed:
		r.State = StateCompleted
	case raw.Skipped:
		r.State = StateSkipped
	}
	return nil
}

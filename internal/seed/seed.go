// Package seed loads the fixture a session starts from.
package seed

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/horta/internal/models"
)

//go:embed default.yaml
var defaultSeed []byte

// Record is a daily record as written in a seed file.
type Record struct {
	ID      string `yaml:"id"`
	HabitID string `yaml:"habit_id"`
	Date    string `yaml:"date"`
	State   string `yaml:"state"`
}

// Data is the decoded fixture.
type Data struct {
	Plants         []models.Plant         `yaml:"plants"`
	Habits         []models.Habit         `yaml:"habits"`
	CalendarHabits []models.CalendarHabit `yaml:"calendar_habits"`
	Records        []Record               `yaml:"records"`
}

// Error reports an invalid seed file.
type Error struct {
	Source string
	Err    error
}

func (e *Error) Error() string { return fmt.Sprintf("seed %s: %v", e.Source, e.Err) }
func (e *Error) Unwrap() error { return e.Err }

// Default returns the embedded fixture.
func Default() (Data, error) {
	return Parse("default", defaultSeed)
}

// Load reads a fixture from path, or the embedded one when path is empty.
func Load(path string) (Data, error) {
	if path == "" {
		return Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Data{}, &Error{Source: path, Err: err}
	}
	return Parse(path, raw)
}

// Parse decodes and validates a fixture. source names it in errors.
func Parse(source string, raw []byte) (Data, error) {
	var d Data
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return Data{}, &Error{Source: source, Err: fmt.Errorf("failed to parse: %w", err)}
	}
	if err := d.validate(); err != nil {
		return Data{}, &Error{Source: source, Err: err}
	}
	return d, nil
}

func (d Data) validate() error {
	plants := make(map[string]bool, len(d.Plants))
	for _, p := range d.Plants {
		if p.ID == "" {
			return fmt.Errorf("plant %q: id is required", p.Name)
		}
		if plants[p.ID] {
			return fmt.Errorf("duplicate plant id %q", p.ID)
		}
		if !p.Type.Valid() {
			return fmt.Errorf("plant %s: invalid type %q", p.ID, p.Type)
		}
		if p.Completed < 0 || p.Completed > 100 {
			return fmt.Errorf("plant %s: completed %.2f out of range [0,100]", p.ID, p.Completed)
		}
		plants[p.ID] = true
	}

	habits := make(map[string]bool, len(d.Habits))
	for _, h := range d.Habits {
		if h.ID == "" {
			return fmt.Errorf("habit %q: id is required", h.Name)
		}
		if habits[h.ID] {
			return fmt.Errorf("duplicate habit id %q", h.ID)
		}
		if !h.Type.Valid() {
			return fmt.Errorf("habit %s: invalid type %q", h.ID, h.Type)
		}
		if h.Streak < 0 {
			return fmt.Errorf("habit %s: negative streak %d", h.ID, h.Streak)
		}
		if !plants[h.PlantID] {
			return fmt.Errorf("habit %s: unknown plant %q", h.ID, h.PlantID)
		}
		habits[h.ID] = true
	}

	calendar := make(map[string]bool, len(d.CalendarHabits))
	for _, h := range d.CalendarHabits {
		if h.ID == "" {
			return fmt.Errorf("calendar habit %q: id is required", h.Name)
		}
		if calendar[h.ID] {
			return fmt.Errorf("duplicate calendar habit id %q", h.ID)
		}
		if h.Streak < 0 {
			return fmt.Errorf("calendar habit %s: negative streak %d", h.ID, h.Streak)
		}
		calendar[h.ID] = true
	}

	for i, r := range d.Records {
		if !calendar[r.HabitID] {
			return fmt.Errorf("record %d: unknown calendar habit %q", i, r.HabitID)
		}
		if _, err := models.ParseDay(r.Date); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		if _, err := models.ParseRecordState(r.State); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}
	return nil
}

// DailyRecords converts the seed records. Data must have been validated.
func (d Data) DailyRecords() []models.DailyRecord {
	out := make([]models.DailyRecord, 0, len(d.Records))
	for _, r := range d.Records {
		day, _ := models.ParseDay(r.Date)
		state, _ := models.ParseRecordState(r.State)
		out = append(out, models.DailyRecord{ID: r.ID, HabitID: r.HabitID, Date: day, State: state})
	}
	return out
}

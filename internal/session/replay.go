package session

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/horta/internal/ledger"
	"github.com/julianstephens/horta/internal/logger"
	"github.com/julianstephens/horta/internal/models"
)

type Op string

const (
	OpToggleHabit      Op = "toggle_habit"
	OpDeleteHabit      Op = "delete_habit"
	OpToggleCalendar   Op = "toggle_calendar"
	OpSkipCalendar     Op = "skip_calendar"
	OpAddCalendarHabit Op = "add_calendar_habit"
)

// Event is one user interaction in a script.
type Event struct {
	Op          Op     `yaml:"op"`
	Habit       string `yaml:"habit"`
	Completed   bool   `yaml:"completed"`
	Date        string `yaml:"date"`
	Name        string `yaml:"name"`
	Emoji       string `yaml:"emoji"`
	MinimumDays int    `yaml:"minimum_days"`
}

// Script is an ordered list of events.
type Script struct {
	Events []Event `yaml:"events"`
}

// Result reports what a replay did.
type Result struct {
	Applied int
	// Ignored counts events naming an unknown habit.
	Ignored int
	Records []models.DailyRecord
	Added   []models.CalendarHabit
}

// ParseScript decodes a YAML event script.
func ParseScript(r io.Reader) (Script, error) {
	var s Script
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		if err == io.EOF {
			return Script{}, nil
		}
		return Script{}, fmt.Errorf("failed to parse script: %w", err)
	}
	return s, nil
}

// LoadScript reads a YAML event script from path.
func LoadScript(path string) (Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return Script{}, fmt.Errorf("failed to open script: %w", err)
	}
	defer f.Close()
	return ParseScript(f)
}

// Validate checks every event so that a bad script changes nothing.
func (sc Script) Validate() error {
	for i, e := range sc.Events {
		if err := e.validate(); err != nil {
			return fmt.Errorf("event %d (%s): %w", i, e.Op, err)
		}
	}
	return nil
}

func (e Event) validate() error {
	switch e.Op {
	case OpToggleHabit, OpDeleteHabit:
		if e.Habit == "" {
			return fmt.Errorf("habit is required")
		}
	case OpToggleCalendar, OpSkipCalendar:
		if e.Habit == "" {
			return fmt.Errorf("habit is required")
		}
		if _, err := models.ParseDay(e.Date); err != nil {
			return err
		}
	case OpAddCalendarHabit:
		return e.calendarHabit().Validate()
	default:
		return fmt.Errorf("unknown op %q", e.Op)
	}
	return nil
}

func (e Event) calendarHabit() ledger.NewCalendarHabit {
	return ledger.NewCalendarHabit{Name: e.Name, Emoji: e.Emoji, MinimumDays: e.MinimumDays}
}

// Replay validates the script and applies its events in order.
func (s *Session) Replay(sc Script) (Result, error) {
	if err := sc.Validate(); err != nil {
		return Result{}, err
	}

	var res Result
	for i, e := range sc.Events {
		logger.Debug("Replaying event", "index", i, "op", e.Op, "habit", e.Habit)

		switch e.Op {
		case OpToggleHabit:
			if !s.ToggleHabit(e.Habit, e.Completed) {
				res.Ignored++
				continue
			}
		case OpDeleteHabit:
			if !s.DeleteHabit(e.Habit) {
				res.Ignored++
				continue
			}
		case OpToggleCalendar:
			day, _ := models.ParseDay(e.Date)
			r, ok := s.ToggleCalendarHabit(e.Habit, day.Time(s.loc), e.Completed)
			if !ok {
				res.Ignored++
				continue
			}
			res.Records = append(res.Records, r)
		case OpSkipCalendar:
			day, _ := models.ParseDay(e.Date)
			r, ok := s.SkipCalendarHabit(e.Habit, day.Time(s.loc))
			if !ok {
				res.Ignored++
				continue
			}
			res.Records = append(res.Records, r)
		case OpAddCalendarHabit:
			h, err := s.AddCalendarHabit(e.calendarHabit())
			if err != nil {
				return res, fmt.Errorf("event %d (%s): %w", i, e.Op, err)
			}
			res.Added = append(res.Added, h)
		}
		res.Applied++
	}
	return res, nil
}

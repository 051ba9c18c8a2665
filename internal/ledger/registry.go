package ledger

import (
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/julianstephens/horta/internal/constants"
	"github.com/julianstephens/horta/internal/models"
)

// ValidationError reports an invalid field of a new calendar habit.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewCalendarHabit is the input for Registry.Add. A zero MinimumDays takes
// the default.
type NewCalendarHabit struct {
	Name        string
	Emoji       string
	MinimumDays int
}

// Validate checks the input as Add would, applying the default minimum days.
func (n NewCalendarHabit) Validate() error {
	if n.MinimumDays == 0 {
		n.MinimumDays = constants.DefaultMinimumDays
	}
	if err := ValidateName(n.Name); err != nil {
		return err
	}
	if err := ValidateEmoji(n.Emoji); err != nil {
		return err
	}
	return ValidateMinimumDays(n.MinimumDays)
}

func ValidateName(name string) error {
	if utf8.RuneCountInString(strings.TrimSpace(name)) < constants.MinCalendarHabitNameLen {
		return &ValidationError{Field: "name", Message: fmt.Sprintf("must have at least %d characters", constants.MinCalendarHabitNameLen)}
	}
	return nil
}

func ValidateEmoji(emoji string) error {
	if strings.TrimSpace(emoji) == "" {
		return &ValidationError{Field: "emoji", Message: "is required"}
	}
	return nil
}

func ValidateMinimumDays(days int) error {
	if days < constants.MinMinimumDays || days > constants.MaxMinimumDays {
		return &ValidationError{Field: "minimum_days", Message: fmt.Sprintf("must be between %d and %d", constants.MinMinimumDays, constants.MaxMinimumDays)}
	}
	return nil
}

// Registry holds the calendar habits tracked by the ledger.
type Registry struct {
	mu     sync.Mutex
	habits []models.CalendarHabit
}

func NewRegistry(habits []models.CalendarHabit) *Registry {
	r := &Registry{}
	r.habits = append(r.habits, habits...)
	return r
}

// Add validates and registers a new calendar habit with a fresh id and a
// zero streak.
func (r *Registry) Add(in NewCalendarHabit) (models.CalendarHabit, error) {
	if in.MinimumDays == 0 {
		in.MinimumDays = constants.DefaultMinimumDays
	}
	if err := in.Validate(); err != nil {
		return models.CalendarHabit{}, err
	}

	h := models.CalendarHabit{
		ID:          uuid.New().String(),
		Emoji:       strings.TrimSpace(in.Emoji),
		Name:        strings.TrimSpace(in.Name),
		MinimumDays: in.MinimumDays,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.habits = append(r.habits, h)
	return h, nil
}

func (r *Registry) Get(id string) (models.CalendarHabit, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, h := range r.habits {
		if h.ID == id {
			return h, true
		}
	}
	return models.CalendarHabit{}, false
}

func (r *Registry) All() []models.CalendarHabit {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.CalendarHabit, len(r.habits))
	copy(out, r.habits)
	return out
}

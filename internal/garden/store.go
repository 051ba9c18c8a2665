package garden

import "github.com/julianstephens/horta/internal/models"

// HabitStore holds habits in insertion order.
//
// It is not safe for concurrent use; the owning Garden serializes access.
type HabitStore struct {
	habits []models.Habit
	strict bool
}

func NewHabitStore(habits []models.Habit, strictStreaks bool) *HabitStore {
	s := &HabitStore{strict: strictStreaks}
	s.habits = append(s.habits, habits...)
	return s
}

func (s *HabitStore) index(id string) int {
	for i, h := range s.habits {
		if h.ID == id {
			return i
		}
	}
	return -1
}

// Toggle sets the completion flag of habit id and moves its streak: up by one
// when completed, down by one (never below zero) otherwise. Unless the store
// is strict, the streak moves even when the flag already had that value.
// It returns the updated habit, or false if id is unknown.
func (s *HabitStore) Toggle(id string, completed bool) (models.Habit, bool) {
	i := s.index(id)
	if i < 0 {
		return models.Habit{}, false
	}

	h := &s.habits[i]
	if s.strict && h.Completed == completed {
		return *h, true
	}

	h.Completed = completed
	if completed {
		h.Streak++
	} else {
		h.Streak = max(0, h.Streak-1)
	}
	return *h, true
}

// Delete removes habit id and returns it, or false if id is unknown.
func (s *HabitStore) Delete(id string) (models.Habit, bool) {
	i := s.index(id)
	if i < 0 {
		return models.Habit{}, false
	}
	removed := s.habits[i]
	s.habits = append(s.habits[:i], s.habits[i+1:]...)
	return removed, true
}

func (s *HabitStore) Get(id string) (models.Habit, bool) {
	i := s.index(id)
	if i < 0 {
		return models.Habit{}, false
	}
	return s.habits[i], true
}

// All returns a copy of every habit.
func (s *HabitStore) All() []models.Habit {
	out := make([]models.Habit, len(s.habits))
	copy(out, s.habits)
	return out
}

func (s *HabitStore) filter(completed bool) []models.Habit {
	var out []models.Habit
	for _, h := range s.habits {
		if h.Completed == completed {
			out = append(out, h)
		}
	}
	return out
}

// Pending returns habits not completed in the current period.
func (s *HabitStore) Pending() []models.Habit { return s.filter(false) }

// Done returns habits completed in the current period.
func (s *HabitStore) Done() []models.Habit { return s.filter(true) }

// LongestStreak is the highest streak across all habits, 0 when empty.
func (s *HabitStore) LongestStreak() int {
	longest := 0
	for _, h := range s.habits {
		longest = max(longest, h.Streak)
	}
	return longest
}

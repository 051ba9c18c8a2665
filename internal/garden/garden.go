package garden

import (
	"fmt"
	"sync"

	"github.com/julianstephens/horta/internal/logger"
	"github.com/julianstephens/horta/internal/models"
)

// Options select between the observed habit behaviour and its corrected
// variants. The zero value keeps the observed behaviour.
type Options struct {
	// StrictStreaks moves a streak only when the completion flag changes.
	StrictStreaks bool
	// RecomputeOnDelete re-derives a plant after one of its habits is deleted.
	RecomputeOnDelete bool
}

// Garden owns the plants and the habits that tend them. Each exported method
// is applied atomically.
type Garden struct {
	mu     sync.Mutex
	opts   Options
	plants []models.Plant
	habits *HabitStore
}

// PlantStatus summarises a plant and the care it still needs.
type PlantStatus struct {
	Plant   models.Plant
	Habits  []models.Habit
	Pending int
	Healthy bool
}

// New builds a garden. Every habit must reference a plant in plants and have
// a non-negative streak. Plant stages are re-derived from their percentage.
func New(plants []models.Plant, habits []models.Habit, opts Options) (*Garden, error) {
	ids := make(map[string]bool, len(plants))
	owned := make([]models.Plant, 0, len(plants))
	for _, p := range plants {
		if ids[p.ID] {
			return nil, fmt.Errorf("duplicate plant id %q", p.ID)
		}
		if p.Completed < 0 || p.Completed > 100 {
			return nil, fmt.Errorf("plant %q: completed %.2f out of range [0,100]", p.ID, p.Completed)
		}
		ids[p.ID] = true
		p.Stage = DeriveStage(p.Completed)
		owned = append(owned, p)
	}

	seen := make(map[string]bool, len(habits))
	for _, h := range habits {
		if seen[h.ID] {
			return nil, fmt.Errorf("duplicate habit id %q", h.ID)
		}
		seen[h.ID] = true
		if !ids[h.PlantID] {
			return nil, fmt.Errorf("habit %q references unknown plant %q", h.ID, h.PlantID)
		}
		if h.Streak < 0 {
			return nil, fmt.Errorf("habit %q: negative streak %d", h.ID, h.Streak)
		}
	}

	return &Garden{
		opts:   opts,
		plants: owned,
		habits: NewHabitStore(habits, opts.StrictStreaks),
	}, nil
}

// ToggleHabit records a habit as completed or not and re-derives the plant it
// tends. Unknown ids are ignored; the return value reports whether id matched.
func (g *Garden) ToggleHabit(id string, completed bool) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	h, ok := g.habits.Toggle(id, completed)
	if !ok {
		logger.Debug("Ignoring toggle for unknown habit", "habit", id)
		return false
	}

	g.recompute(h.PlantID, h.ID, completed)
	logger.Debug("Habit toggled", "habit", id, "completed", completed, "streak", h.Streak)
	return true
}

// DeleteHabit removes a habit. The plant it tended keeps its derived state
// unless RecomputeOnDelete is set.
func (g *Garden) DeleteHabit(id string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	h, ok := g.habits.Delete(id)
	if !ok {
		logger.Debug("Ignoring delete for unknown habit", "habit", id)
		return false
	}

	if g.opts.RecomputeOnDelete {
		g.recompute(h.PlantID, "", false)
	}
	logger.Debug("Habit deleted", "habit", id, "plant", h.PlantID)
	return true
}

func (g *Garden) recompute(plantID, toggledID string, value bool) {
	for i := range g.plants {
		if g.plants[i].ID != plantID {
			continue
		}
		pct, stage := Derive(g.habits.habits, plantID, toggledID, value)
		g.plants[i].Completed = pct
		g.plants[i].Stage = stage
		logger.Debug("Plant recomputed", "plant", plantID, "completed", pct, "stage", stage)
		return
	}
}

func (g *Garden) Plants() []models.Plant {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]models.Plant, len(g.plants))
	copy(out, g.plants)
	return out
}

func (g *Garden) Plant(id string) (models.Plant, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, p := range g.plants {
		if p.ID == id {
			return p, true
		}
	}
	return models.Plant{}, false
}

func (g *Garden) Habits() []models.Habit {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.habits.All()
}

func (g *Garden) Habit(id string) (models.Habit, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.habits.Get(id)
}

func (g *Garden) PendingHabits() []models.Habit {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.habits.Pending()
}

func (g *Garden) CompletedHabits() []models.Habit {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.habits.Done()
}

func (g *Garden) LongestStreak() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.habits.LongestStreak()
}

// Inspect reports a plant's habits and how many are still pending. A plant
// is healthy when it has habits and none are pending.
func (g *Garden) Inspect(plantID string) (PlantStatus, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	var status PlantStatus
	found := false
	for _, p := range g.plants {
		if p.ID == plantID {
			status.Plant = p
			found = true
			break
		}
	}
	if !found {
		return PlantStatus{}, false
	}

	for _, h := range g.habits.habits {
		if h.PlantID != plantID {
			continue
		}
		status.Habits = append(status.Habits, h)
		if !h.Completed {
			status.Pending++
		}
	}
	status.Healthy = len(status.Habits) > 0 && status.Pending == 0
	return status, true
}

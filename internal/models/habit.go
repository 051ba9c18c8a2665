package models

// HabitType is the kind of care a habit gives its plant
type HabitType string

const (
	HabitWater     HabitType = "water"
	HabitPrune     HabitType = "prune"
	HabitFertilize HabitType = "fertilize"
	HabitPlant     HabitType = "plant"
	HabitHarvest   HabitType = "harvest"
)

func (t HabitType) Valid() bool {
	switch t {
	case HabitWater, HabitPrune, HabitFertilize, HabitPlant, HabitHarvest:
		return true
	}
	return false
}

// Habit represents a recurring task that tends one plant
type Habit struct {
	ID          string    `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description" yaml:"description"`
	Type        HabitType `json:"type" yaml:"type"`
	Completed   bool      `json:"completed" yaml:"completed"`
	Streak      int       `json:"streak" yaml:"streak"`
	PlantID     string    `json:"plantId" yaml:"plant_id"`
}

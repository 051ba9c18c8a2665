package garden

import (
	"github.com/julianstephens/horta/internal/constants"
	"github.com/julianstephens/horta/internal/models"
)

// DeriveStage maps a completion percentage to a growth stage. Each
// threshold is inclusive, so 25, 50, 75 and 100 land in the higher band.
func DeriveStage(percentage float64) models.Stage {
	switch {
	case percentage >= constants.MatureThreshold:
		return models.StageMature
	case percentage >= constants.FloweringThreshold:
		return models.StageFlowering
	case percentage >= constants.GrowingThreshold:
		return models.StageGrowing
	case percentage >= constants.SproutThreshold:
		return models.StageSprout
	default:
		return models.StageSeed
	}
}

// Derive computes the completion percentage and stage of plantID from the
// habits that tend it. The habit toggledID is counted as value regardless of
// its stored flag; pass an empty toggledID to use stored flags only.
// A plant with no habits is at 0%.
func Derive(habits []models.Habit, plantID, toggledID string, value bool) (float64, models.Stage) {
	var related, completed int
	for _, h := range habits {
		if h.PlantID != plantID {
			continue
		}
		related++
		done := h.Completed
		if toggledID != "" && h.ID == toggledID {
			done = value
		}
		if done {
			completed++
		}
	}

	if related == 0 {
		return 0, DeriveStage(0)
	}

	percentage := float64(completed) / float64(related) * 100
	return percentage, DeriveStage(percentage)
}

package garden

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/julianstephens/horta/internal/models"
)

func TestDeriveStage_Boundaries(t *testing.T) {
	tests := []struct {
		percentage float64
		want       models.Stage
	}{
		{0, models.StageSeed},
		{24.99, models.StageSeed},
		{25, models.StageSprout},
		{33.33, models.StageSprout},
		{49.99, models.StageSprout},
		{50, models.StageGrowing},
		{74.99, models.StageGrowing},
		{75, models.StageFlowering},
		{99.99, models.StageFlowering},
		{100, models.StageMature},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DeriveStage(tt.percentage), "percentage %v", tt.percentage)
	}
}

func TestDeriveStage_IsDeterministicOverRange(t *testing.T) {
	for p := 0.0; p <= 100; p += 0.25 {
		first := DeriveStage(p)
		assert.True(t, first.Valid(), "stage for %v", p)
		assert.Equal(t, first, DeriveStage(p), "stage for %v changed between calls", p)
	}
}

func TestDerive_OverridesToggledHabit(t *testing.T) {
	habits := []models.Habit{
		{ID: "h1", PlantID: "p", Completed: false},
		{ID: "h2", PlantID: "p", Completed: false},
		{ID: "other", PlantID: "q", Completed: true},
	}

	pct, stage := Derive(habits, "p", "h1", true)
	assert.Equal(t, 50.0, pct)
	assert.Equal(t, models.StageGrowing, stage)

	pct, stage = Derive(habits, "p", "", false)
	assert.Equal(t, 0.0, pct)
	assert.Equal(t, models.StageSeed, stage)
}

func TestDerive_ThirdsFallInSprout(t *testing.T) {
	habits := []models.Habit{
		{ID: "a", PlantID: "p", Completed: true},
		{ID: "b", PlantID: "p"},
		{ID: "c", PlantID: "p"},
	}

	pct, stage := Derive(habits, "p", "", false)
	assert.InDelta(t, 33.333, pct, 0.001)
	assert.Equal(t, models.StageSprout, stage)
}

func TestDerive_NoHabitsIsZero(t *testing.T) {
	pct, stage := Derive(nil, "lonely", "", false)
	assert.Equal(t, 0.0, pct)
	assert.Equal(t, models.StageSeed, stage)

	pct, stage = Derive([]models.Habit{{ID: "h", PlantID: "elsewhere"}}, "lonely", "h", true)
	assert.Equal(t, 0.0, pct)
	assert.Equal(t, models.StageSeed, stage)
}

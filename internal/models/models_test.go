package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayOf_DropsTimeOfDay(t *testing.T) {
	morning := time.Date(2025, 3, 12, 0, 0, 1, 0, time.UTC)
	night := time.Date(2025, 3, 12, 23, 59, 59, 0, time.UTC)

	assert.Equal(t, Day("2025-03-12"), DayOf(morning))
	assert.Equal(t, DayOf(morning), DayOf(night))
}

func TestDayOf_UsesOwnLocation(t *testing.T) {
	tz := time.FixedZone("UTC-5", -5*60*60)
	late := time.Date(2025, 3, 12, 22, 0, 0, 0, tz)

	assert.Equal(t, Day("2025-03-12"), DayOf(late))
	assert.Equal(t, Day("2025-03-13"), DayOf(late.UTC()))
}

func TestParseDay(t *testing.T) {
	d, err := ParseDay("2025-02-28")
	require.NoError(t, err)
	assert.Equal(t, Day("2025-02-28"), d)

	for _, bad := range []string{"", "2025-2-28", "28/02/2025", "2025-02-30"} {
		_, err := ParseDay(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestDay_AddDaysAndOrdering(t *testing.T) {
	d := Day("2025-02-28")

	assert.Equal(t, Day("2025-03-01"), d.AddDays(1))
	assert.Equal(t, Day("2025-02-21"), d.AddDays(-7))
	assert.Equal(t, Day("2024-12-31"), Day("2025-01-01").AddDays(-1))
	assert.True(t, d.Before(d.AddDays(1)))
	assert.True(t, d.AddDays(1).After(d))
	assert.False(t, d.Before(d))
}

func TestDay_Time(t *testing.T) {
	tz := time.FixedZone("UTC+9", 9*60*60)
	got := Day("2025-03-12").Time(tz)

	assert.True(t, got.Equal(time.Date(2025, 3, 12, 0, 0, 0, 0, tz)))
	assert.Equal(t, tz, got.Location())
	assert.True(t, Day("not-a-day").Time(tz).IsZero())
}

func TestRecordState(t *testing.T) {
	assert.True(t, StateCompleted.Completed())
	assert.False(t, StateCompleted.Skipped())
	assert.True(t, StateSkipped.Skipped())
	assert.False(t, StateSkipped.Completed())
	assert.False(t, StateUnset.Completed() || StateUnset.Skipped())

	for _, s := range []RecordState{StateUnset, StateCompleted, StateSkipped} {
		parsed, err := ParseRecordState(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := ParseRecordState("done")
	assert.Error(t, err)
}

func TestDailyRecordJSON_WireShape(t *testing.T) {
	r := DailyRecord{ID: "r1", HabitID: "h9", Date: "2025-03-12", State: StateSkipped}

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"r1","habitId":"h9","date":"2025-03-12","completed":false,"skipped":true}`, string(data))
}

func TestDailyRecordJSON_RejectsCompletedAndSkipped(t *testing.T) {
	var r DailyRecord
	err := json.Unmarshal([]byte(`{"id":"r1","habitId":"h9","date":"2025-03-12","completed":true,"skipped":true}`), &r)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestDailyRecordJSON_DecodesState(t *testing.T) {
	var r DailyRecord
	require.NoError(t, json.Unmarshal([]byte(`{"id":"r1","habitId":"h9","date":"2025-03-12","completed":true,"skipped":false}`), &r))
	assert.Equal(t, StateCompleted, r.State)

	require.NoError(t, json.Unmarshal([]byte(`{"id":"r2","habitId":"h9","date":"2025-03-13"}`), &r))
	assert.Equal(t, StateUnset, r.State)
	assert.Equal(t, Day("2025-03-13"), r.Date)
}

func TestEnumsValid(t *testing.T) {
	assert.True(t, HabitWater.Valid())
	assert.False(t, HabitType("weed").Valid())
	assert.True(t, PlantHerb.Valid())
	assert.False(t, PlantType("cactus").Valid())
	assert.Len(t, Stages(), 5)
	assert.False(t, Stage("sprouting").Valid())
}

func TestPlantIcon(t *testing.T) {
	assert.Equal(t, "·", Plant{Type: PlantTree, Stage: StageSeed}.Icon())
	assert.Equal(t, "🌱", Plant{Type: PlantTree, Stage: StageGrowing}.Icon())
	assert.Equal(t, "🌲", Plant{Type: PlantTree, Stage: StageMature}.Icon())
	assert.Equal(t, "🌸", Plant{Type: PlantFlower, Stage: StageFlowering}.Icon())
	assert.True(t, Plant{Stage: StageFlowering}.Bloomed())
	assert.False(t, Plant{Stage: StageSprout}.Bloomed())
}

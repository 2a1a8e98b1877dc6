package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateWorkoutDuration(t *testing.T) {
	exercises := []Exercise{
		{Sets: 4},
		{Sets: 3},
		{Sets: 3},
	}

	// 10 sets * 2 min + 3 exercises * 1 min = 23, buffered to ceil(23*1.3).
	estimate := EstimateWorkoutDuration(exercises)
	assert.Equal(t, 23, estimate.Min)
	assert.Equal(t, 30, estimate.Max)
}

func TestEstimateWorkoutDuration_Empty(t *testing.T) {
	estimate := EstimateWorkoutDuration(nil)
	assert.Equal(t, 0, estimate.Min)
	assert.Equal(t, 0, estimate.Max)
}

func TestLegacyDurationRange(t *testing.T) {
	// 7 exercises: 7*5 + 7*2 = 49, banded to 49-64.
	assert.Equal(t, "49-64", LegacyDurationRange(7))
	assert.Equal(t, "0-15", LegacyDurationRange(0))
}

func TestEstimateMuscleGroupsForFocus(t *testing.T) {
	assert.Equal(t, 4, EstimateMuscleGroupsForFocus("Upper Body (Horizontal Focus)"))
	assert.Equal(t, 3, EstimateMuscleGroupsForFocus("Lower Body (Squat Focus)"))
	assert.Equal(t, 5, EstimateMuscleGroupsForFocus("Full-Body & Arms"))
	assert.Equal(t, 3, EstimateMuscleGroupsForFocus("Push"))
}

func TestFormatWeight(t *testing.T) {
	weight := "45 lb"
	blank := "   "

	assert.Equal(t, "45 lb", FormatWeight(&weight))
	assert.Equal(t, "Add weight", FormatWeight(nil))
	assert.Equal(t, "Add weight", FormatWeight(&blank))
}

func TestDayTitle(t *testing.T) {
	day := WorkoutDay{DayNumber: 1, Title: "Upper Body", Focus: "Horizontal Focus"}
	assert.Equal(t, "Day 1 - Upper Body (Horizontal Focus)", DayTitle(day))
}

package viewstate

import (
	"testing"

	"alcyxob/workout-tracker/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestNewDayOverview(t *testing.T) {
	day := domain.WorkoutDay{DayNumber: 1, Title: "Upper Body", Focus: "Horizontal Focus"}
	exercises := []domain.Exercise{
		{Name: "Dumbbell Bench Press", Sets: 4}, // chest, shoulders
		{Name: "Lat Pulldown", Sets: 3},         // back
		{Name: "Hammer Curl", Sets: 3},          // biceps, hamstrings
	}

	overview := NewDayOverview(day, exercises)
	assert.Equal(t, "Day 1 - Upper Body (Horizontal Focus)", overview.Title)
	assert.Equal(t, 3, overview.TotalExercises)
	assert.Equal(t, 10, overview.TotalSets)
	// 10 sets * 2 + 3 setups = 23 min, buffered to 30.
	assert.Equal(t, 23, overview.Duration.Min)
	assert.Equal(t, 30, overview.Duration.Max)
	assert.Equal(t, 5, overview.MuscleGroups)
}

func TestNewDayOverview_Empty(t *testing.T) {
	day := domain.WorkoutDay{DayNumber: 2, Title: "Rest", Focus: "Recovery"}

	overview := NewDayOverview(day, nil)
	assert.Equal(t, 0, overview.TotalExercises)
	assert.Equal(t, 0, overview.Duration.Min)
	assert.Equal(t, 0, overview.MuscleGroups)
}

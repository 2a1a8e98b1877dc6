package viewstate

import "alcyxob/workout-tracker/internal/domain"

// DayOverview is the header block rendered above a day's exercise list:
// totals derived from the exercises actually present, unlike the list-page
// summary which works from counts alone.
type DayOverview struct {
	Title          string
	TotalExercises int
	TotalSets      int
	Duration       domain.DurationEstimate
	MuscleGroups   int
}

// NewDayOverview derives the overview for one day.
func NewDayOverview(day domain.WorkoutDay, exercises []domain.Exercise) DayOverview {
	totalSets := 0
	for _, ex := range exercises {
		totalSets += ex.Sets
	}
	return DayOverview{
		Title:          domain.DayTitle(day),
		TotalExercises: len(exercises),
		TotalSets:      totalSets,
		Duration:       domain.EstimateWorkoutDuration(exercises),
		MuscleGroups:   domain.CountUniqueMuscleGroups(exercises),
	}
}

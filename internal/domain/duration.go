package domain

import (
	"fmt"
	"math"
	"strings"
)

// DurationEstimate is an estimated workout duration band in minutes.
type DurationEstimate struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// EstimateWorkoutDuration computes the duration band for a day's exercise
// list: 2 minutes per working set (rest included) plus 1 minute of setup per
// exercise, with a 30% buffer on top.
func EstimateWorkoutDuration(exercises []Exercise) DurationEstimate {
	totalSets := 0
	for _, ex := range exercises {
		totalSets += ex.Sets
	}
	const baseTimePerSet = 2
	setupTime := len(exercises) * 1

	min := totalSets*baseTimePerSet + setupTime
	max := int(math.Ceil(float64(min) * 1.3))
	return DurationEstimate{Min: min, Max: max}
}

// LegacyDurationRange is the older exercise-count-only estimate used by the
// day-summary view: 5 minutes per exercise plus 2 minutes rest, with a flat
// 15-minute band on top. It deliberately disagrees with
// EstimateWorkoutDuration and the two are never reconciled; both call sites
// keep their own formula.
func LegacyDurationRange(exerciseCount int) string {
	baseTime := exerciseCount * 5
	restTime := exerciseCount * 2
	total := baseTime + restTime
	return fmt.Sprintf("%d-%d", total, total+15)
}

// EstimateMuscleGroupsForFocus is the day-summary heuristic that guesses the
// muscle-group count from the day's focus label alone.
func EstimateMuscleGroupsForFocus(focus string) int {
	switch {
	case strings.Contains(focus, "Upper"):
		return 4
	case strings.Contains(focus, "Lower"):
		return 3
	case strings.Contains(focus, "Full-Body"):
		return 5
	default:
		return 3
	}
}

// FormatWeight renders a nullable weight label, with the placeholder the UI
// shows before a weight is set.
func FormatWeight(weight *string) string {
	if weight == nil || strings.TrimSpace(*weight) == "" {
		return "Add weight"
	}
	return *weight
}

// DayTitle renders the full display title of a day, e.g.
// "Day 1 - Upper Body (Horizontal Focus)".
func DayTitle(day WorkoutDay) string {
	return fmt.Sprintf("Day %d - %s (%s)", day.DayNumber, day.Title, day.Focus)
}

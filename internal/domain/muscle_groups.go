package domain

import "strings"

// Exercise type labels. Every exercise is exactly one of the two.
const (
	TypeCompound  = "Compound"
	TypeIsolation = "Isolation"
)

// muscleGroupKeywords maps each muscle group to the name substrings that tag
// it. An exercise may match several groups at once ("thrust" tags legs,
// glutes and hamstrings together) — that overlap is intentional.
var muscleGroupKeywords = []struct {
	group    string
	keywords []string
}{
	{"chest", []string{"bench", "chest", "fly", "press"}},
	{"back", []string{"row", "pulldown", "lat", "pull"}},
	{"shoulders", []string{"shoulder", "lateral", "face pull", "press"}},
	{"biceps", []string{"curl", "bicep"}},
	{"triceps", []string{"tricep", "pushdown", "extension"}},
	{"legs", []string{"squat", "lunge", "leg", "deadlift", "thrust"}},
	{"calves", []string{"calf", "calves", "raise"}},
	{"abs", []string{"crunch", "abs", "plank", "woodchop"}},
	{"glutes", []string{"thrust", "squat", "lunge"}},
	{"quads", []string{"squat", "extension", "lunge"}},
	{"hamstrings", []string{"curl", "deadlift", "thrust"}},
}

// compoundKeywords classifies an exercise as compound; anything else is
// isolation.
var compoundKeywords = []string{"squat", "deadlift", "bench", "row", "pulldown", "press", "thrust"}

// muscleGroupColors holds the fixed display color per muscle group badge.
var muscleGroupColors = map[string]string{
	"chest":      "bg-blue-600",
	"back":       "bg-purple-600",
	"shoulders":  "bg-pink-600",
	"biceps":     "bg-indigo-600",
	"triceps":    "bg-cyan-600",
	"legs":       "bg-green-600",
	"calves":     "bg-orange-600",
	"abs":        "bg-yellow-600",
	"glutes":     "bg-red-600",
	"quads":      "bg-emerald-600",
	"hamstrings": "bg-amber-600",
}

// MuscleGroups returns the muscle groups targeted by an exercise, derived
// purely from its name by case-insensitive substring matching. Zero, one or
// several groups may match. The result is ordered by the fixed catalog order
// so output is deterministic, though callers treat it as a set.
func MuscleGroups(exerciseName string) []string {
	name := strings.ToLower(exerciseName)
	var groups []string
	for _, entry := range muscleGroupKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(name, keyword) {
				groups = append(groups, entry.group)
				break
			}
		}
	}
	return groups
}

// ExerciseType classifies an exercise as compound or isolation from its name.
func ExerciseType(exerciseName string) string {
	name := strings.ToLower(exerciseName)
	for _, keyword := range compoundKeywords {
		if strings.Contains(name, keyword) {
			return TypeCompound
		}
	}
	return TypeIsolation
}

// MuscleGroupColor returns the badge color class for a muscle group, with a
// neutral fallback for unknown groups.
func MuscleGroupColor(group string) string {
	if color, ok := muscleGroupColors[group]; ok {
		return color
	}
	return "bg-gray-600"
}

// ExerciseTypeColor returns the badge color class for the type label.
func ExerciseTypeColor(exerciseType string) string {
	if exerciseType == TypeCompound {
		return "bg-accent-green"
	}
	return "bg-red-500"
}

// CountUniqueMuscleGroups unions the per-exercise muscle-group sets across a
// day's exercises and returns the cardinality.
func CountUniqueMuscleGroups(exercises []Exercise) int {
	seen := make(map[string]struct{})
	for _, ex := range exercises {
		for _, group := range MuscleGroups(ex.Name) {
			seen[group] = struct{}{}
		}
	}
	return len(seen)
}

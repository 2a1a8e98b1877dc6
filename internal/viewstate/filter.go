package viewstate

import (
	"strings"

	"alcyxob/workout-tracker/internal/domain"
)

// Filter is the pair of free-text search inputs on the exercise list: a
// global query and a per-day query. Both are ANDed; an empty query imposes
// no constraint.
type Filter struct {
	Global string
	Day    string
}

// Matches reports whether an exercise name passes both queries,
// case-insensitively.
func (f Filter) Matches(exerciseName string) bool {
	name := strings.ToLower(exerciseName)
	if f.Global != "" && !strings.Contains(name, strings.ToLower(f.Global)) {
		return false
	}
	if f.Day != "" && !strings.Contains(name, strings.ToLower(f.Day)) {
		return false
	}
	return true
}

// Apply returns the visible subset of exercises, preserving order.
func (f Filter) Apply(exercises []domain.Exercise) []domain.Exercise {
	visible := make([]domain.Exercise, 0, len(exercises))
	for _, ex := range exercises {
		if f.Matches(ex.Name) {
			visible = append(visible, ex)
		}
	}
	return visible
}

package viewstate

import (
	"testing"

	"alcyxob/workout-tracker/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestFilter_Matches(t *testing.T) {
	tests := []struct {
		filter Filter
		name   string
		want   bool
	}{
		{Filter{}, "Goblet Squat", true},
		{Filter{Global: "squat"}, "Goblet Squat", true},
		{Filter{Global: "SQUAT"}, "Goblet Squat", true},
		{Filter{Global: "bench"}, "Goblet Squat", false},
		{Filter{Global: "squat", Day: "goblet"}, "Goblet Squat", true},
		// Both queries must match.
		{Filter{Global: "squat", Day: "bench"}, "Goblet Squat", false},
		{Filter{Day: "curl"}, "Hammer Curl", true},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.filter.Matches(tc.name), "filter=%+v name=%q", tc.filter, tc.name)
	}
}

func TestFilter_ApplyPreservesOrder(t *testing.T) {
	exercises := []domain.Exercise{
		{Name: "Goblet Squat"},
		{Name: "Dumbbell Bench Press"},
		{Name: "Cyclist Squat"},
	}

	visible := Filter{Global: "squat"}.Apply(exercises)
	assert.Len(t, visible, 2)
	assert.Equal(t, "Goblet Squat", visible[0].Name)
	assert.Equal(t, "Cyclist Squat", visible[1].Name)

	assert.Empty(t, Filter{Global: "deadlift"}.Apply(exercises))
	assert.Len(t, Filter{}.Apply(exercises), 3)
}

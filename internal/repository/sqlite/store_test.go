package sqlite

import (
	"context"
	"testing"

	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	database, err := Open(":memory:")
	require.NoError(t, err)
	return NewStore(database)
}

func TestSeedDefaultPlan_Idempotent(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.SeedDefaultPlan(ctx))
	require.NoError(t, store.SeedDefaultPlan(ctx))

	days, err := store.ListDays(ctx)
	require.NoError(t, err)
	require.Len(t, days, 5)

	exercises, err := store.ListExercisesByDay(ctx, days[0].ID)
	require.NoError(t, err)
	assert.Len(t, exercises, 8)
}

func TestListDays_SortedByDayNumber(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	for _, n := range []int{3, 1, 2} {
		_, err := store.CreateDay(ctx, domain.InsertWorkoutDay{DayNumber: n, Title: "Day", Focus: "Test"})
		require.NoError(t, err)
	}

	days, err := store.ListDays(ctx)
	require.NoError(t, err)
	require.Len(t, days, 3)
	assert.Equal(t, 1, days[0].DayNumber)
	assert.Equal(t, 2, days[1].DayNumber)
	assert.Equal(t, 3, days[2].DayNumber)
}

func TestListExercisesByDay_SortsByOrder(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	day, err := store.CreateDay(ctx, domain.InsertWorkoutDay{DayNumber: 1, Title: "Upper Body", Focus: "Test"})
	require.NoError(t, err)

	for _, fixture := range []struct {
		name  string
		order int
	}{
		{"Second", 2},
		{"First", 1},
		{"Third", 3},
	} {
		_, err := store.CreateExercise(ctx, domain.InsertExercise{
			WorkoutDayID: day.ID, Name: fixture.name, Sets: 3, Reps: "8-12", Order: fixture.order,
		})
		require.NoError(t, err)
	}

	exercises, err := store.ListExercisesByDay(ctx, day.ID)
	require.NoError(t, err)
	require.Len(t, exercises, 3)
	assert.Equal(t, "First", exercises[0].Name)
	assert.Equal(t, "Second", exercises[1].Name)
	assert.Equal(t, "Third", exercises[2].Name)
}

func TestCreateExercise_RoundTripsJSONColumns(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	day, err := store.CreateDay(ctx, domain.InsertWorkoutDay{DayNumber: 1, Title: "Upper Body", Focus: "Test"})
	require.NoError(t, err)

	weight := "45 lb"
	created, err := store.CreateExercise(ctx, domain.InsertExercise{
		WorkoutDayID:  day.ID,
		Name:          "Dumbbell Bench Press",
		Sets:          4,
		Reps:          "6-10",
		RPE:           "RPE 7-8",
		CurrentWeight: &weight,
		CurrentReps:   []int{8, 9, 10, 10},
		CompletedSets: []domain.CompletedSet{{Reps: 10}, {Reps: 9}},
		Order:         1,
	})
	require.NoError(t, err)

	fetched, err := store.GetExercise(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{8, 9, 10, 10}, fetched.CurrentReps)
	assert.Equal(t, []domain.CompletedSet{{Reps: 10}, {Reps: 9}}, fetched.CompletedSets)
	require.NotNil(t, fetched.CurrentWeight)
	assert.Equal(t, "45 lb", *fetched.CurrentWeight)
}

func TestUpdateExercise_MergesOnlyProvidedFields(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	day, err := store.CreateDay(ctx, domain.InsertWorkoutDay{DayNumber: 1, Title: "Upper Body", Focus: "Test"})
	require.NoError(t, err)

	created, err := store.CreateExercise(ctx, domain.InsertExercise{
		WorkoutDayID: day.ID, Name: "Goblet Squat", Sets: 4, Reps: "8-12", RPE: "RPE 7-8", Order: 1,
	})
	require.NoError(t, err)

	completed := []domain.CompletedSet{{Reps: 12}, {Reps: 11}}
	updated, err := store.UpdateExercise(ctx, created.ID, domain.ExercisePatch{CompletedSets: &completed})
	require.NoError(t, err)

	assert.Equal(t, completed, updated.CompletedSets)
	assert.Equal(t, "Goblet Squat", updated.Name)
	assert.Equal(t, 4, updated.Sets)
	assert.Nil(t, updated.CurrentWeight)
}

func TestGetDay_NotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetDay(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUpdateDay_Merge(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	day, err := store.CreateDay(ctx, domain.InsertWorkoutDay{DayNumber: 2, Title: "Lower + Core", Focus: "Variation A"})
	require.NoError(t, err)

	focus := "Variation C"
	updated, err := store.UpdateDay(ctx, day.ID, domain.WorkoutDayPatch{Focus: &focus})
	require.NoError(t, err)
	assert.Equal(t, "Variation C", updated.Focus)
	assert.Equal(t, "Lower + Core", updated.Title)
	assert.Equal(t, 2, updated.DayNumber)
}

func TestDeleteExercise(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	day, err := store.CreateDay(ctx, domain.InsertWorkoutDay{DayNumber: 1, Title: "Upper Body", Focus: "Test"})
	require.NoError(t, err)

	created, err := store.CreateExercise(ctx, domain.InsertExercise{
		WorkoutDayID: day.ID, Name: "Goblet Squat", Sets: 4, Reps: "8-12",
	})
	require.NoError(t, err)

	deleted, err := store.DeleteExercise(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = store.DeleteExercise(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestGetDayWithExercises(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	require.NoError(t, store.SeedDefaultPlan(ctx))

	days, err := store.ListDays(ctx)
	require.NoError(t, err)

	withExercises, err := store.GetDayWithExercises(ctx, days[0].ID)
	require.NoError(t, err)
	assert.Equal(t, days[0].ID, withExercises.ID)
	assert.Len(t, withExercises.Exercises, 8)
}

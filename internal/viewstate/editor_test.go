package viewstate

import (
	"testing"

	"alcyxob/workout-tracker/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testExercise() domain.Exercise {
	return domain.Exercise{
		ID:   "ex-1",
		Name: "Goblet Squat",
		Sets: 4,
		Reps: "8-12",
	}
}

func TestEditor_PlanFieldsLockedOutsideEditMode(t *testing.T) {
	editor := NewEditor(testExercise())

	_, err := editor.SetSets(5)
	assert.ErrorIs(t, err, ErrEditLocked)
	_, err = editor.SetReps("10-15")
	assert.ErrorIs(t, err, ErrEditLocked)
	_, err = editor.SetWeight("50 lb")
	assert.ErrorIs(t, err, ErrEditLocked)

	// The working copy stays untouched.
	assert.Equal(t, 4, editor.Exercise().Sets)
	assert.Equal(t, "8-12", editor.Exercise().Reps)
	assert.Nil(t, editor.Exercise().CurrentWeight)
}

func TestEditor_PlanFieldsInEditMode(t *testing.T) {
	editor := NewEditor(testExercise())
	editor.SetEditMode(true)

	patch, err := editor.SetSets(5)
	require.NoError(t, err)
	require.NotNil(t, patch.Sets)
	assert.Equal(t, 5, *patch.Sets)
	assert.Equal(t, 5, editor.Exercise().Sets)

	patch, err = editor.SetWeight("50 lb")
	require.NoError(t, err)
	require.NotNil(t, patch.CurrentWeight)
	assert.Equal(t, "50 lb", *patch.CurrentWeight)
	require.NotNil(t, editor.Exercise().CurrentWeight)
	assert.Equal(t, "50 lb", *editor.Exercise().CurrentWeight)
}

func TestEditor_LogSetAlwaysAllowed(t *testing.T) {
	editor := NewEditor(testExercise())
	require.False(t, editor.EditMode())

	patch, err := editor.LogSet(0, 10)
	require.NoError(t, err)
	require.NotNil(t, patch.CompletedSets)
	assert.Equal(t, []domain.CompletedSet{{Reps: 10}}, *patch.CompletedSets)
}

func TestEditor_LogSetSparseGrowth(t *testing.T) {
	editor := NewEditor(testExercise())

	// Logging set 3 first leaves sets 1 and 2 at zero reps.
	patch, err := editor.LogSet(2, 12)
	require.NoError(t, err)
	want := []domain.CompletedSet{{Reps: 0}, {Reps: 0}, {Reps: 12}}
	assert.Equal(t, want, *patch.CompletedSets)
	assert.Equal(t, want, editor.Exercise().CompletedSets)

	// Backfilling set 1 overwrites in place.
	patch, err = editor.LogSet(0, 10)
	require.NoError(t, err)
	want = []domain.CompletedSet{{Reps: 10}, {Reps: 0}, {Reps: 12}}
	assert.Equal(t, want, *patch.CompletedSets)
}

func TestEditor_LogSetNegativeIndex(t *testing.T) {
	editor := NewEditor(testExercise())

	_, err := editor.LogSet(-1, 10)
	assert.Error(t, err)
}

func TestEditor_SetCurrentRep(t *testing.T) {
	editor := NewEditor(testExercise())

	patch, err := editor.SetCurrentRep(1, 9)
	require.NoError(t, err)
	require.NotNil(t, patch.CurrentReps)
	assert.Equal(t, []int{0, 9}, *patch.CurrentReps)
	assert.Equal(t, []int{0, 9}, editor.Exercise().CurrentReps)
}

func TestEditor_ResetDiscardsLocalEdits(t *testing.T) {
	editor := NewEditor(testExercise())
	_, err := editor.LogSet(0, 10)
	require.NoError(t, err)

	refetched := testExercise()
	refetched.CompletedSets = []domain.CompletedSet{{Reps: 11}}
	editor.Reset(refetched)

	assert.Equal(t, []domain.CompletedSet{{Reps: 11}}, editor.Exercise().CompletedSets)
}

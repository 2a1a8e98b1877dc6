package viewstate

import (
	"errors"

	"alcyxob/workout-tracker/internal/domain"
)

// ErrEditLocked is returned when a plan parameter is changed while edit mode
// is off. Per-set logging is never locked.
var ErrEditLocked = errors.New("edit mode is off")

// Editor is the local-first working copy of one exercise. Every mutation
// updates the copy immediately for visual feedback and returns the
// partial-update patch to dispatch upstream (fire-and-forget); the caller
// reconciles later via Reset with a refetched record.
//
// Plan parameters (sets, rep range, weight) are gated behind edit mode;
// per-set rep logging stays editable regardless.
type Editor struct {
	exercise domain.Exercise
	editMode bool
}

// NewEditor creates an editor seeded with the given exercise.
func NewEditor(ex domain.Exercise) *Editor {
	return &Editor{exercise: ex}
}

// Exercise returns the current working copy.
func (e *Editor) Exercise() domain.Exercise {
	return e.exercise
}

// EditMode reports whether plan parameters are editable.
func (e *Editor) EditMode() bool {
	return e.editMode
}

// SetEditMode toggles plan-parameter editing.
func (e *Editor) SetEditMode(on bool) {
	e.editMode = on
}

// Reset replaces the working copy with a refetched record, discarding local
// edits. Used to reconcile after the server round trip.
func (e *Editor) Reset(ex domain.Exercise) {
	e.exercise = ex
}

// SetSets updates the planned set count. Requires edit mode.
func (e *Editor) SetSets(sets int) (domain.ExercisePatch, error) {
	if !e.editMode {
		return domain.ExercisePatch{}, ErrEditLocked
	}
	e.exercise.Sets = sets
	return domain.ExercisePatch{Sets: &sets}, nil
}

// SetReps updates the target rep range. Requires edit mode.
func (e *Editor) SetReps(reps string) (domain.ExercisePatch, error) {
	if !e.editMode {
		return domain.ExercisePatch{}, ErrEditLocked
	}
	e.exercise.Reps = reps
	return domain.ExercisePatch{Reps: &reps}, nil
}

// SetWeight updates the working weight label. Requires edit mode.
func (e *Editor) SetWeight(weight string) (domain.ExercisePatch, error) {
	if !e.editMode {
		return domain.ExercisePatch{}, ErrEditLocked
	}
	e.exercise.CurrentWeight = &weight
	return domain.ExercisePatch{CurrentWeight: &weight}, nil
}

// LogSet records reps actually performed for one set. Always allowed, in or
// out of edit mode. Logging a later set first grows the sequence with
// zero-rep placeholders, keeping the sparse-overwrite semantics of the set
// inputs.
func (e *Editor) LogSet(setIndex int, reps int) (domain.ExercisePatch, error) {
	if setIndex < 0 {
		return domain.ExercisePatch{}, errors.New("set index cannot be negative")
	}
	completed := make([]domain.CompletedSet, len(e.exercise.CompletedSets))
	copy(completed, e.exercise.CompletedSets)
	for len(completed) <= setIndex {
		completed = append(completed, domain.CompletedSet{})
	}
	completed[setIndex] = domain.CompletedSet{Reps: reps}
	e.exercise.CompletedSets = completed
	return domain.ExercisePatch{CompletedSets: &completed}, nil
}

// SetCurrentRep records the current per-set rep target. Like set logging,
// this is per-set progress and is not gated by edit mode.
func (e *Editor) SetCurrentRep(setIndex int, reps int) (domain.ExercisePatch, error) {
	if setIndex < 0 {
		return domain.ExercisePatch{}, errors.New("set index cannot be negative")
	}
	current := make([]int, len(e.exercise.CurrentReps))
	copy(current, e.exercise.CurrentReps)
	for len(current) <= setIndex {
		current = append(current, 0)
	}
	current[setIndex] = reps
	e.exercise.CurrentReps = current
	return domain.ExercisePatch{CurrentReps: &current}, nil
}

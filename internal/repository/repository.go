package repository

import (
	"alcyxob/workout-tracker/internal/domain"
	"context"
)

// Error constants for the repository layer.
var (
	ErrNotFound = RepositoryError("not found")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// Store is the storage contract every backend conforms to. Callers depend on
// this contract, not on the storage medium: the in-memory, sqlite and mongo
// implementations must produce identical observable behavior.
//
// Get/Update operations return ErrNotFound when the referenced id does not
// exist; DeleteExercise reports absence through its bool instead, and list
// and create operations cannot fail that way.
type Store interface {
	// ListDays returns all workout days, stably sorted by dayNumber ascending.
	ListDays(ctx context.Context) ([]domain.WorkoutDay, error)
	GetDay(ctx context.Context, id string) (*domain.WorkoutDay, error)
	// GetDayWithExercises returns the day plus ListExercisesByDay(id).
	GetDayWithExercises(ctx context.Context, id string) (*domain.WorkoutDayWithExercises, error)
	CreateDay(ctx context.Context, insert domain.InsertWorkoutDay) (*domain.WorkoutDay, error)
	// UpdateDay merges only the provided fields; unspecified fields retain
	// their prior values.
	UpdateDay(ctx context.Context, id string, patch domain.WorkoutDayPatch) (*domain.WorkoutDay, error)

	// ListExercisesByDay returns the day's exercises stably sorted by order
	// ascending, ties broken by original insertion order.
	ListExercisesByDay(ctx context.Context, dayID string) ([]domain.Exercise, error)
	GetExercise(ctx context.Context, id string) (*domain.Exercise, error)
	CreateExercise(ctx context.Context, insert domain.InsertExercise) (*domain.Exercise, error)
	UpdateExercise(ctx context.Context, id string, patch domain.ExercisePatch) (*domain.Exercise, error)
	// DeleteExercise reports whether a record existed and was removed.
	DeleteExercise(ctx context.Context, id string) (bool, error)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/repository"
)

// --- Error Definitions ---
var (
	ErrDayNotFound      = errors.New("workout day not found")
	ErrExerciseNotFound = errors.New("exercise not found")
)

// FieldViolation is one per-field validation failure reported to the caller.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError rejects a write payload as a whole: nothing is applied and
// every violated field is listed.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	fields := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		fields[i] = v.Field
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(fields, ", "))
}

// DaySummary is the day-summary view payload. It keeps the legacy
// exercise-count duration formula and the focus-label muscle-group guess;
// the per-set estimator lives in viewstate and the two are never reconciled.
type DaySummary struct {
	DayID          string `json:"dayId"`
	Title          string `json:"title"`
	TotalExercises int    `json:"totalExercises"`
	EstimatedTime  string `json:"estimatedTime"`
	MuscleGroups   int    `json:"muscleGroups"`
}

// --- Service Interface ---

// WorkoutService sits between the HTTP handlers and the storage backend:
// it validates write payloads, enforces day/exercise references and maps
// repository errors to service errors.
type WorkoutService interface {
	ListDays(ctx context.Context) ([]domain.WorkoutDay, error)
	GetDayWithExercises(ctx context.Context, id string) (*domain.WorkoutDayWithExercises, error)
	CreateDay(ctx context.Context, insert domain.InsertWorkoutDay) (*domain.WorkoutDay, error)
	UpdateDay(ctx context.Context, id string, patch domain.WorkoutDayPatch) (*domain.WorkoutDay, error)
	DaySummary(ctx context.Context, id string) (*DaySummary, error)

	ListExercisesByDay(ctx context.Context, dayID string) ([]domain.Exercise, error)
	GetExercise(ctx context.Context, id string) (*domain.Exercise, error)
	CreateExercise(ctx context.Context, insert domain.InsertExercise) (*domain.Exercise, error)
	UpdateExercise(ctx context.Context, id string, patch domain.ExercisePatch) (*domain.Exercise, error)
	DeleteExercise(ctx context.Context, id string) error
}

// --- Service Implementation ---

type workoutService struct {
	store repository.Store
}

// NewWorkoutService creates a WorkoutService on top of the given store.
func NewWorkoutService(store repository.Store) WorkoutService {
	return &workoutService{store: store}
}

func (s *workoutService) ListDays(ctx context.Context) ([]domain.WorkoutDay, error) {
	return s.store.ListDays(ctx)
}

func (s *workoutService) GetDayWithExercises(ctx context.Context, id string) (*domain.WorkoutDayWithExercises, error) {
	day, err := s.store.GetDayWithExercises(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDayNotFound
		}
		return nil, err
	}
	return day, nil
}

func (s *workoutService) CreateDay(ctx context.Context, insert domain.InsertWorkoutDay) (*domain.WorkoutDay, error) {
	if err := validateInsertDay(insert); err != nil {
		return nil, err
	}
	return s.store.CreateDay(ctx, insert)
}

func (s *workoutService) UpdateDay(ctx context.Context, id string, patch domain.WorkoutDayPatch) (*domain.WorkoutDay, error) {
	if err := validateDayPatch(patch); err != nil {
		return nil, err
	}
	day, err := s.store.UpdateDay(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDayNotFound
		}
		return nil, err
	}
	return day, nil
}

func (s *workoutService) DaySummary(ctx context.Context, id string) (*DaySummary, error) {
	day, err := s.store.GetDayWithExercises(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDayNotFound
		}
		return nil, err
	}
	return &DaySummary{
		DayID:          day.ID,
		Title:          domain.DayTitle(day.WorkoutDay),
		TotalExercises: len(day.Exercises),
		EstimatedTime:  domain.LegacyDurationRange(len(day.Exercises)),
		MuscleGroups:   domain.EstimateMuscleGroupsForFocus(day.Focus),
	}, nil
}

func (s *workoutService) ListExercisesByDay(ctx context.Context, dayID string) ([]domain.Exercise, error) {
	return s.store.ListExercisesByDay(ctx, dayID)
}

func (s *workoutService) GetExercise(ctx context.Context, id string) (*domain.Exercise, error) {
	ex, err := s.store.GetExercise(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return ex, nil
}

func (s *workoutService) CreateExercise(ctx context.Context, insert domain.InsertExercise) (*domain.Exercise, error) {
	if err := validateInsertExercise(insert); err != nil {
		return nil, err
	}
	// Referential check: an exercise must belong to an existing day.
	if _, err := s.store.GetDay(ctx, insert.WorkoutDayID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &ValidationError{Violations: []FieldViolation{
				{Field: "workoutDayId", Message: "references an unknown workout day"},
			}}
		}
		return nil, err
	}
	return s.store.CreateExercise(ctx, insert)
}

func (s *workoutService) UpdateExercise(ctx context.Context, id string, patch domain.ExercisePatch) (*domain.Exercise, error) {
	if err := validateExercisePatch(patch); err != nil {
		return nil, err
	}
	if patch.WorkoutDayID != nil {
		if _, err := s.store.GetDay(ctx, *patch.WorkoutDayID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, &ValidationError{Violations: []FieldViolation{
					{Field: "workoutDayId", Message: "references an unknown workout day"},
				}}
			}
			return nil, err
		}
	}
	ex, err := s.store.UpdateExercise(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return ex, nil
}

func (s *workoutService) DeleteExercise(ctx context.Context, id string) error {
	deleted, err := s.store.DeleteExercise(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrExerciseNotFound
	}
	return nil
}

// --- Validation ---

func validateInsertDay(insert domain.InsertWorkoutDay) error {
	var violations []FieldViolation
	if insert.DayNumber < 1 {
		violations = append(violations, FieldViolation{Field: "dayNumber", Message: "must be a positive integer"})
	}
	if strings.TrimSpace(insert.Title) == "" {
		violations = append(violations, FieldViolation{Field: "title", Message: "is required"})
	}
	if strings.TrimSpace(insert.Focus) == "" {
		violations = append(violations, FieldViolation{Field: "focus", Message: "is required"})
	}
	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}

func validateDayPatch(patch domain.WorkoutDayPatch) error {
	var violations []FieldViolation
	if patch.DayNumber != nil && *patch.DayNumber < 1 {
		violations = append(violations, FieldViolation{Field: "dayNumber", Message: "must be a positive integer"})
	}
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		violations = append(violations, FieldViolation{Field: "title", Message: "cannot be empty"})
	}
	if patch.Focus != nil && strings.TrimSpace(*patch.Focus) == "" {
		violations = append(violations, FieldViolation{Field: "focus", Message: "cannot be empty"})
	}
	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}

func validateInsertExercise(insert domain.InsertExercise) error {
	var violations []FieldViolation
	if strings.TrimSpace(insert.WorkoutDayID) == "" {
		violations = append(violations, FieldViolation{Field: "workoutDayId", Message: "is required"})
	}
	if strings.TrimSpace(insert.Name) == "" {
		violations = append(violations, FieldViolation{Field: "name", Message: "is required"})
	}
	if insert.Sets < 1 {
		violations = append(violations, FieldViolation{Field: "sets", Message: "must be a positive integer"})
	}
	if strings.TrimSpace(insert.Reps) == "" {
		violations = append(violations, FieldViolation{Field: "reps", Message: "is required"})
	}
	if strings.TrimSpace(insert.RPE) == "" {
		violations = append(violations, FieldViolation{Field: "rpe", Message: "is required"})
	}
	if strings.TrimSpace(insert.ProgressionRule) == "" {
		violations = append(violations, FieldViolation{Field: "progressionRule", Message: "is required"})
	}
	if strings.TrimSpace(insert.VideoURL) == "" {
		violations = append(violations, FieldViolation{Field: "videoUrl", Message: "is required"})
	}
	violations = append(violations, validateCompletedSets(insert.CompletedSets)...)
	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}

func validateExercisePatch(patch domain.ExercisePatch) error {
	var violations []FieldViolation
	if patch.WorkoutDayID != nil && strings.TrimSpace(*patch.WorkoutDayID) == "" {
		violations = append(violations, FieldViolation{Field: "workoutDayId", Message: "cannot be empty"})
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		violations = append(violations, FieldViolation{Field: "name", Message: "cannot be empty"})
	}
	if patch.Sets != nil && *patch.Sets < 1 {
		violations = append(violations, FieldViolation{Field: "sets", Message: "must be a positive integer"})
	}
	if patch.Reps != nil && strings.TrimSpace(*patch.Reps) == "" {
		violations = append(violations, FieldViolation{Field: "reps", Message: "cannot be empty"})
	}
	if patch.RPE != nil && strings.TrimSpace(*patch.RPE) == "" {
		violations = append(violations, FieldViolation{Field: "rpe", Message: "cannot be empty"})
	}
	if patch.VideoURL != nil && strings.TrimSpace(*patch.VideoURL) == "" {
		violations = append(violations, FieldViolation{Field: "videoUrl", Message: "cannot be empty"})
	}
	if patch.CompletedSets != nil {
		violations = append(violations, validateCompletedSets(*patch.CompletedSets)...)
	}
	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}

func validateCompletedSets(sets []domain.CompletedSet) []FieldViolation {
	for i, set := range sets {
		if set.Reps < 0 {
			return []FieldViolation{{
				Field:   fmt.Sprintf("completedSets[%d].reps", i),
				Message: "cannot be negative",
			}}
		}
	}
	return nil
}

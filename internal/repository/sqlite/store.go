package sqlite

import (
	"context"
	"errors"
	"time"

	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Exercises are ordered by their display position; equal positions fall back
// to creation order so the listing is stable.
const exerciseListOrder = `"order" ASC, created_at ASC, id ASC`

// Store is the durable relational implementation of repository.Store.
// Concurrency control is delegated entirely to sqlite; the application layer
// runs no explicit transactions, so concurrent partial updates to one record
// resolve as last-write-wins.
type Store struct {
	database *gorm.DB
}

// NewStore creates a Store on an already-opened database.
func NewStore(database *gorm.DB) *Store {
	return &Store{database: database}
}

// SeedDefaultPlan inserts the fixed starter plan if the store holds no
// workout days yet. Idempotent across restarts.
func (s *Store) SeedDefaultPlan(ctx context.Context) error {
	var count int64
	if err := s.database.WithContext(ctx).Model(&domain.WorkoutDay{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, seedDay := range repository.DefaultPlan() {
		day, err := s.CreateDay(ctx, seedDay.Day)
		if err != nil {
			return err
		}
		for _, insert := range seedDay.Exercises {
			insert.WorkoutDayID = day.ID
			if _, err := s.CreateExercise(ctx, insert); err != nil {
				return err
			}
		}
	}
	return nil
}

// --- Workout Days ---

func (s *Store) ListDays(ctx context.Context) ([]domain.WorkoutDay, error) {
	days := make([]domain.WorkoutDay, 0)
	err := s.database.WithContext(ctx).
		Order("day_number ASC, created_at ASC").
		Find(&days).Error
	if err != nil {
		return nil, err
	}
	return days, nil
}

func (s *Store) GetDay(ctx context.Context, id string) (*domain.WorkoutDay, error) {
	var day domain.WorkoutDay
	err := s.database.WithContext(ctx).First(&day, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &day, nil
}

func (s *Store) GetDayWithExercises(ctx context.Context, id string) (*domain.WorkoutDayWithExercises, error) {
	day, err := s.GetDay(ctx, id)
	if err != nil {
		return nil, err
	}
	exercises, err := s.ListExercisesByDay(ctx, id)
	if err != nil {
		return nil, err
	}
	return &domain.WorkoutDayWithExercises{WorkoutDay: *day, Exercises: exercises}, nil
}

func (s *Store) CreateDay(ctx context.Context, insert domain.InsertWorkoutDay) (*domain.WorkoutDay, error) {
	now := time.Now().UTC()
	day := domain.WorkoutDay{
		ID:        uuid.NewString(),
		DayNumber: insert.DayNumber,
		Title:     insert.Title,
		Focus:     insert.Focus,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.database.WithContext(ctx).Create(&day).Error; err != nil {
		return nil, err
	}
	return &day, nil
}

func (s *Store) UpdateDay(ctx context.Context, id string, patch domain.WorkoutDayPatch) (*domain.WorkoutDay, error) {
	day, err := s.GetDay(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(day)
	day.UpdatedAt = time.Now().UTC()
	if err := s.database.WithContext(ctx).Save(day).Error; err != nil {
		return nil, err
	}
	return day, nil
}

// --- Exercises ---

func (s *Store) ListExercisesByDay(ctx context.Context, dayID string) ([]domain.Exercise, error) {
	exercises := make([]domain.Exercise, 0)
	err := s.database.WithContext(ctx).
		Where("workout_day_id = ?", dayID).
		Order(exerciseListOrder).
		Find(&exercises).Error
	if err != nil {
		return nil, err
	}
	return exercises, nil
}

func (s *Store) GetExercise(ctx context.Context, id string) (*domain.Exercise, error) {
	var ex domain.Exercise
	err := s.database.WithContext(ctx).First(&ex, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &ex, nil
}

func (s *Store) CreateExercise(ctx context.Context, insert domain.InsertExercise) (*domain.Exercise, error) {
	now := time.Now().UTC()
	ex := domain.Exercise{
		ID:              uuid.NewString(),
		WorkoutDayID:    insert.WorkoutDayID,
		Name:            insert.Name,
		Sets:            insert.Sets,
		Reps:            insert.Reps,
		RPE:             insert.RPE,
		ProgressionRule: insert.ProgressionRule,
		VideoURL:        insert.VideoURL,
		CurrentWeight:   insert.CurrentWeight,
		CurrentReps:     insert.CurrentReps,
		CompletedSets:   insert.CompletedSets,
		LastWorkout:     insert.LastWorkout,
		Order:           insert.Order,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if ex.CurrentReps == nil {
		ex.CurrentReps = []int{}
	}
	if ex.CompletedSets == nil {
		ex.CompletedSets = []domain.CompletedSet{}
	}
	if err := s.database.WithContext(ctx).Create(&ex).Error; err != nil {
		return nil, err
	}
	return &ex, nil
}

func (s *Store) UpdateExercise(ctx context.Context, id string, patch domain.ExercisePatch) (*domain.Exercise, error) {
	ex, err := s.GetExercise(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(ex)
	ex.UpdatedAt = time.Now().UTC()
	if err := s.database.WithContext(ctx).Save(ex).Error; err != nil {
		return nil, err
	}
	return ex, nil
}

func (s *Store) DeleteExercise(ctx context.Context, id string) (bool, error) {
	result := s.database.WithContext(ctx).Delete(&domain.Exercise{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

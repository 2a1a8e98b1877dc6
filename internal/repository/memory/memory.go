package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/repository"

	"github.com/google/uuid"
)

// Store is the in-memory implementation of repository.Store, seeded with the
// fixed starter plan. It is meant for zero-dependency/demo operation: safe
// for concurrent requests within one process, not shared across processes.
type Store struct {
	mu sync.RWMutex

	days      map[string]domain.WorkoutDay
	exercises map[string]domain.Exercise

	// Insertion order per entity; the tie-breaker for equal sort keys.
	dayOrder      []string
	exerciseOrder []string
}

// New creates a store pre-seeded with the default plan.
func New() *Store {
	s := &Store{
		days:      make(map[string]domain.WorkoutDay),
		exercises: make(map[string]domain.Exercise),
	}
	s.seed()
	return s
}

// NewEmpty creates a store without seed data. Used by tests that build their
// own fixtures.
func NewEmpty() *Store {
	return &Store{
		days:      make(map[string]domain.WorkoutDay),
		exercises: make(map[string]domain.Exercise),
	}
}

func (s *Store) seed() {
	ctx := context.Background()
	for _, seedDay := range repository.DefaultPlan() {
		day, _ := s.CreateDay(ctx, seedDay.Day)
		for _, insert := range seedDay.Exercises {
			insert.WorkoutDayID = day.ID
			_, _ = s.CreateExercise(ctx, insert)
		}
	}
}

// --- Workout Days ---

func (s *Store) ListDays(_ context.Context) ([]domain.WorkoutDay, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	days := make([]domain.WorkoutDay, 0, len(s.dayOrder))
	for _, id := range s.dayOrder {
		days = append(days, s.days[id])
	}
	sort.SliceStable(days, func(i, j int) bool {
		return days[i].DayNumber < days[j].DayNumber
	})
	return days, nil
}

func (s *Store) GetDay(_ context.Context, id string) (*domain.WorkoutDay, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	day, ok := s.days[id]
	if !ok {
		return nil, repository.ErrNotFound
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

func (s *Store) CreateDay(_ context.Context, insert domain.InsertWorkoutDay) (*domain.WorkoutDay, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	day := domain.WorkoutDay{
		ID:        uuid.NewString(),
		DayNumber: insert.DayNumber,
		Title:     insert.Title,
		Focus:     insert.Focus,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.days[day.ID] = day
	s.dayOrder = append(s.dayOrder, day.ID)
	return &day, nil
}

func (s *Store) UpdateDay(_ context.Context, id string, patch domain.WorkoutDayPatch) (*domain.WorkoutDay, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	day, ok := s.days[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	patch.Apply(&day)
	day.UpdatedAt = time.Now().UTC()
	s.days[id] = day
	return &day, nil
}

// --- Exercises ---

func (s *Store) ListExercisesByDay(_ context.Context, dayID string) ([]domain.Exercise, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	exercises := make([]domain.Exercise, 0)
	for _, id := range s.exerciseOrder {
		ex := s.exercises[id]
		if ex.WorkoutDayID == dayID {
			exercises = append(exercises, copyExercise(ex))
		}
	}
	sort.SliceStable(exercises, func(i, j int) bool {
		return exercises[i].Order < exercises[j].Order
	})
	return exercises, nil
}

func (s *Store) GetExercise(_ context.Context, id string) (*domain.Exercise, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ex, ok := s.exercises[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	ex = copyExercise(ex)
	return &ex, nil
}

func (s *Store) CreateExercise(_ context.Context, insert domain.InsertExercise) (*domain.Exercise, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

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
	s.exercises[ex.ID] = ex
	s.exerciseOrder = append(s.exerciseOrder, ex.ID)
	created := copyExercise(ex)
	return &created, nil
}

func (s *Store) UpdateExercise(_ context.Context, id string, patch domain.ExercisePatch) (*domain.Exercise, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ex, ok := s.exercises[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	ex = copyExercise(ex)
	patch.Apply(&ex)
	ex.UpdatedAt = time.Now().UTC()
	s.exercises[id] = ex
	updated := copyExercise(ex)
	return &updated, nil
}

func (s *Store) DeleteExercise(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.exercises[id]; !ok {
		return false, nil
	}
	delete(s.exercises, id)
	for i, exID := range s.exerciseOrder {
		if exID == id {
			s.exerciseOrder = append(s.exerciseOrder[:i], s.exerciseOrder[i+1:]...)
			break
		}
	}
	return true, nil
}

// copyExercise clones the slice fields so callers never alias stored state.
func copyExercise(ex domain.Exercise) domain.Exercise {
	if ex.CurrentReps != nil {
		reps := make([]int, len(ex.CurrentReps))
		copy(reps, ex.CurrentReps)
		ex.CurrentReps = reps
	}
	if ex.CompletedSets != nil {
		sets := make([]domain.CompletedSet, len(ex.CompletedSets))
		copy(sets, ex.CompletedSets)
		ex.CompletedSets = sets
	}
	return ex
}

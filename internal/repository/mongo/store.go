package mongo

import (
	"context"
	"errors"
	"time"

	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	dayCollectionName      = "workout_days"
	exerciseCollectionName = "exercises"
)

// Store is the MongoDB implementation of repository.Store. Behavior must be
// indistinguishable from the memory and sqlite stores; ids stay opaque
// strings (UUIDs) rather than ObjectIDs so documents round-trip identically.
type Store struct {
	days      *mongo.Collection
	exercises *mongo.Collection
}

// NewStore creates a Store over the two plan collections of db.
func NewStore(db *mongo.Database) *Store {
	return &Store{
		days:      db.Collection(dayCollectionName),
		exercises: db.Collection(exerciseCollectionName),
	}
}

// EnsureIndexes creates the indexes the store queries rely on. Call during
// startup.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.exercises.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "workoutDayId", Value: 1}}},
		{Keys: bson.D{{Key: "workoutDayId", Value: 1}, {Key: "order", Value: 1}, {Key: "createdAt", Value: 1}}},
	})
	if err != nil {
		return err
	}
	_, err = s.days.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "dayNumber", Value: 1}},
	})
	return err
}

// SeedDefaultPlan inserts the fixed starter plan if the store holds no
// workout days yet.
func (s *Store) SeedDefaultPlan(ctx context.Context) error {
	count, err := s.days.CountDocuments(ctx, bson.M{})
	if err != nil {
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
	findOptions := options.Find().SetSort(bson.D{
		{Key: "dayNumber", Value: 1},
		{Key: "createdAt", Value: 1},
	})
	cursor, err := s.days.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	days := make([]domain.WorkoutDay, 0)
	if err := cursor.All(ctx, &days); err != nil {
		return nil, err
	}
	return days, nil
}

func (s *Store) GetDay(ctx context.Context, id string) (*domain.WorkoutDay, error) {
	var day domain.WorkoutDay
	err := s.days.FindOne(ctx, bson.M{"_id": id}).Decode(&day)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
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
	if _, err := s.days.InsertOne(ctx, day); err != nil {
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

	result, err := s.days.ReplaceOne(ctx, bson.M{"_id": id}, day)
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, repository.ErrNotFound
	}
	return day, nil
}

// --- Exercises ---

func (s *Store) ListExercisesByDay(ctx context.Context, dayID string) ([]domain.Exercise, error) {
	findOptions := options.Find().SetSort(bson.D{
		{Key: "order", Value: 1},
		{Key: "createdAt", Value: 1},
	})
	cursor, err := s.exercises.Find(ctx, bson.M{"workoutDayId": dayID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	exercises := make([]domain.Exercise, 0)
	if err := cursor.All(ctx, &exercises); err != nil {
		return nil, err
	}
	return exercises, nil
}

func (s *Store) GetExercise(ctx context.Context, id string) (*domain.Exercise, error) {
	var ex domain.Exercise
	err := s.exercises.FindOne(ctx, bson.M{"_id": id}).Decode(&ex)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
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
	if _, err := s.exercises.InsertOne(ctx, ex); err != nil {
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

	result, err := s.exercises.ReplaceOne(ctx, bson.M{"_id": id}, ex)
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, repository.ErrNotFound
	}
	return ex, nil
}

func (s *Store) DeleteExercise(ctx context.Context, id string) (bool, error) {
	result, err := s.exercises.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}

package domain

import "time"

// CompletedSet is a logged outcome (reps actually performed) for one set of
// an exercise in a session.
type CompletedSet struct {
	Reps int `bson:"reps" json:"reps"`
}

// Exercise represents one planned movement within a workout day, with targets
// (sets/reps/weight) and logged results.
//
// Name is the sole input to muscle-group and compound/isolation
// classification (see muscle_groups.go). Reps and RPE are free text and must
// be parsed defensively. ProgressionRule and LastWorkout are display-only.
type Exercise struct {
	ID              string `bson:"_id,omitempty" json:"id" gorm:"primaryKey"`
	WorkoutDayID    string `bson:"workoutDayId" json:"workoutDayId" gorm:"column:workout_day_id;not null;index"`
	Name            string `bson:"name" json:"name" gorm:"not null"`
	Sets            int    `bson:"sets" json:"sets" gorm:"not null"`
	Reps            string `bson:"reps" json:"reps" gorm:"not null"`
	RPE             string `bson:"rpe" json:"rpe" gorm:"column:rpe;not null"`
	ProgressionRule string `bson:"progressionRule" json:"progressionRule" gorm:"column:progression_rule;not null"`
	VideoURL        string `bson:"videoUrl" json:"videoUrl" gorm:"column:video_url;not null"`

	// CurrentWeight is a free-text weight label with the unit embedded
	// ("45 lb", "Bodyweight"). Nil means not yet set.
	CurrentWeight *string `bson:"currentWeight,omitempty" json:"currentWeight" gorm:"column:current_weight"`

	// CurrentReps holds per-set target reps. Its length should equal Sets
	// but that is not enforced; indices beyond the stored length read as
	// unset.
	CurrentReps []int `bson:"currentReps" json:"currentReps" gorm:"column:current_reps;serializer:json"`

	// CompletedSets is sparse: the user may log set 3 before set 1, leaving
	// earlier entries at zero reps.
	CompletedSets []CompletedSet `bson:"completedSets" json:"completedSets" gorm:"column:completed_sets;serializer:json"`

	LastWorkout *string `bson:"lastWorkout,omitempty" json:"lastWorkout" gorm:"column:last_workout"`

	// Order defines display position within the day. Ties are broken by
	// insertion order; gaps and duplicates are tolerated (stable sort, no
	// renumbering).
	Order int `bson:"order" json:"order" gorm:"column:order;not null"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// InsertExercise is the accepted input shape for creating an exercise.
// The server assigns the ID; CurrentReps and CompletedSets default to empty.
type InsertExercise struct {
	WorkoutDayID    string         `json:"workoutDayId"`
	Name            string         `json:"name"`
	Sets            int            `json:"sets"`
	Reps            string         `json:"reps"`
	RPE             string         `json:"rpe"`
	ProgressionRule string         `json:"progressionRule"`
	VideoURL        string         `json:"videoUrl"`
	CurrentWeight   *string        `json:"currentWeight"`
	CurrentReps     []int          `json:"currentReps"`
	CompletedSets   []CompletedSet `json:"completedSets"`
	LastWorkout     *string        `json:"lastWorkout"`
	Order           int            `json:"order"`
}

// ExercisePatch lists the fields legally updatable on an exercise. Nil
// fields are left untouched by Apply; a payload either validates and applies
// entirely or is rejected entirely.
type ExercisePatch struct {
	WorkoutDayID    *string         `json:"workoutDayId,omitempty"`
	Name            *string         `json:"name,omitempty"`
	Sets            *int            `json:"sets,omitempty"`
	Reps            *string         `json:"reps,omitempty"`
	RPE             *string         `json:"rpe,omitempty"`
	ProgressionRule *string         `json:"progressionRule,omitempty"`
	VideoURL        *string         `json:"videoUrl,omitempty"`
	CurrentWeight   *string         `json:"currentWeight,omitempty"`
	CurrentReps     *[]int          `json:"currentReps,omitempty"`
	CompletedSets   *[]CompletedSet `json:"completedSets,omitempty"`
	LastWorkout     *string         `json:"lastWorkout,omitempty"`
	Order           *int            `json:"order,omitempty"`
}

// Apply merges the provided fields into the exercise. Merge semantics for
// exercises are defined here, once, for every storage backend.
func (p ExercisePatch) Apply(ex *Exercise) {
	if p.WorkoutDayID != nil {
		ex.WorkoutDayID = *p.WorkoutDayID
	}
	if p.Name != nil {
		ex.Name = *p.Name
	}
	if p.Sets != nil {
		ex.Sets = *p.Sets
	}
	if p.Reps != nil {
		ex.Reps = *p.Reps
	}
	if p.RPE != nil {
		ex.RPE = *p.RPE
	}
	if p.ProgressionRule != nil {
		ex.ProgressionRule = *p.ProgressionRule
	}
	if p.VideoURL != nil {
		ex.VideoURL = *p.VideoURL
	}
	if p.CurrentWeight != nil {
		ex.CurrentWeight = p.CurrentWeight
	}
	if p.CurrentReps != nil {
		ex.CurrentReps = *p.CurrentReps
	}
	if p.CompletedSets != nil {
		ex.CompletedSets = *p.CompletedSets
	}
	if p.LastWorkout != nil {
		ex.LastWorkout = p.LastWorkout
	}
	if p.Order != nil {
		ex.Order = *p.Order
	}
}

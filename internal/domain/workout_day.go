package domain

import "time"

// WorkoutDay is one entry in the weekly plan, holding an ordered list of
// exercises. Days are created once at seed time (or via an explicit create)
// and are never deleted in normal operation.
type WorkoutDay struct {
	ID        string    `bson:"_id,omitempty" json:"id" gorm:"primaryKey"`
	DayNumber int       `bson:"dayNumber" json:"dayNumber" gorm:"column:day_number;not null"`
	Title     string    `bson:"title" json:"title" gorm:"not null"`
	Focus     string    `bson:"focus" json:"focus" gorm:"not null"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// WorkoutDayWithExercises is a day plus its exercises, sorted by order.
type WorkoutDayWithExercises struct {
	WorkoutDay
	Exercises []Exercise `bson:"exercises" json:"exercises" gorm:"-"`
}

// InsertWorkoutDay is the accepted input shape for creating a day.
// The server assigns the ID.
type InsertWorkoutDay struct {
	DayNumber int    `json:"dayNumber"`
	Title     string `json:"title"`
	Focus     string `json:"focus"`
}

// WorkoutDayPatch lists the fields legally updatable on a day. Nil fields
// are left untouched by Apply.
type WorkoutDayPatch struct {
	DayNumber *int    `json:"dayNumber,omitempty"`
	Title     *string `json:"title,omitempty"`
	Focus     *string `json:"focus,omitempty"`
}

// Apply merges the provided fields into the day. Merge semantics for days
// are defined here, once, for every storage backend.
func (p WorkoutDayPatch) Apply(day *WorkoutDay) {
	if p.DayNumber != nil {
		day.DayNumber = *p.DayNumber
	}
	if p.Title != nil {
		day.Title = *p.Title
	}
	if p.Focus != nil {
		day.Focus = *p.Focus
	}
}

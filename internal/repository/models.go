package repository

import (
	"time"
)

// User represents a user account in the database.
// The JSON field names mirror the column names the frontend was built
// against, so a user row can be returned directly (minus the hash).
type User struct {
	ID            int64     `db:"id" json:"id"`
	FirstName     string    `db:"first_name" json:"firstName"`
	LastName      string    `db:"last_name" json:"lastName"`
	Email         string    `db:"email" json:"email"`
	PasswordHash  string    `db:"password_hash" json:"-"`
	AuthKey       string    `db:"auth_key" json:"auth_key"`
	AuthKeyExpiry time.Time `db:"auth_key_expiry" json:"auth_key_expiry"`
}

// Exercise is one catalog entry. The catalog is seeded once and read-only
// from the API's perspective.
type Exercise struct {
	ID          int64  `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description"`
}

// Template is a named, reusable list of exercise prescriptions owned by
// one user. Public templates are readable by everyone.
type Template struct {
	ID          int64  `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description"`
	Public      bool   `db:"public" json:"public"`
	UserID      int64  `db:"user_id" json:"user_id"`
}

// TemplateSet is one prescribed exercise line within a template.
// OrderIndex defines display and apply order.
type TemplateSet struct {
	ID           int64   `db:"id" json:"id"`
	TemplateID   int64   `db:"template_id" json:"template_id"`
	ExerciseName string  `db:"exercise_name" json:"exercise_name"`
	Reps         int     `db:"reps" json:"reps"`
	Weight       float64 `db:"weight" json:"weight"`
	OrderIndex   int     `db:"order_index" json:"order_index"`
}

// Workout is one logged workout session. WorkoutID is the client-supplied
// external identifier, unique across all workouts; sets reference it rather
// than the internal row id.
type Workout struct {
	ID        int64  `db:"id" json:"id"`
	UserID    int64  `db:"user_id" json:"user_id"`
	Date      string `db:"date" json:"date"`
	WorkoutID int64  `db:"workout_id" json:"workout_id"`
	RPE       int    `db:"rpe" json:"rpe"`
}

// WorkoutSet is one completed set within a workout, keyed by the parent
// workout's external identifier.
type WorkoutSet struct {
	ID           int64   `db:"id" json:"id"`
	WorkoutID    int64   `db:"workout_id" json:"workout_id"`
	ExerciseName string  `db:"exercise_name" json:"exercise_name"`
	Reps         int     `db:"reps" json:"reps"`
	Weight       float64 `db:"weight" json:"weight"`
}

// UserSet is a workout set joined with its parent workout's date, as
// returned by the all-sets history query.
type UserSet struct {
	WorkoutSet
	WorkoutDate string `db:"workout_date" json:"workoutDate"`
}

// WeightEntry is one body-weight observation owned by one user.
type WeightEntry struct {
	ID     int64     `db:"id" json:"id"`
	UserID int64     `db:"user_id" json:"user_id"`
	Date   time.Time `db:"date" json:"date"`
	Weight float64   `db:"weight" json:"weight"`
}

package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

// Workout repository errors
var (
	ErrWorkoutNotFound    = errors.New("workout not found")
	ErrWorkoutSetNotFound = errors.New("workout set not found")
	ErrDuplicateWorkoutID = errors.New("workout id already exists")
)

// WorkoutRepository defines the interface for workout and workout-set data access
type WorkoutRepository interface {
	Insert(ctx context.Context, workout *Workout) error
	GetOwner(ctx context.Context, workoutID int64) (int64, error)
	GetByIDAndOwner(ctx context.Context, workoutID, userID int64) (*Workout, error)
	ListByUser(ctx context.Context, userID int64) ([]Workout, error)
	Delete(ctx context.Context, workoutID int64) error

	InsertSet(ctx context.Context, set *WorkoutSet) error
	ListSets(ctx context.Context, workoutID int64) ([]WorkoutSet, error)
	ListUserSets(ctx context.Context, userID int64, exerciseName string) ([]UserSet, error)
	GetSetOwner(ctx context.Context, setID int64) (int64, error)
	UpdateSet(ctx context.Context, setID int64, weight float64, reps int) error
}

// workoutRepository implements WorkoutRepository using PostgreSQL
type workoutRepository struct {
	db *sqlx.DB
}

// NewWorkoutRepository creates a new WorkoutRepository instance
func NewWorkoutRepository(db *sqlx.DB) WorkoutRepository {
	return &workoutRepository{db: db}
}

// Insert logs a new workout session. The external workout id is unique
// across all users; a collision returns ErrDuplicateWorkoutID.
func (r *workoutRepository) Insert(ctx context.Context, workout *Workout) error {
	query := `
		INSERT INTO workouts (user_id, date, workout_id, rpe)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRowxContext(ctx, query,
		workout.UserID,
		workout.Date,
		workout.WorkoutID,
		workout.RPE,
	).Scan(&workout.ID)

	if err != nil {
		if isUniqueViolation(err, "workouts_workout_id_key") {
			return ErrDuplicateWorkoutID
		}
		return err
	}

	return nil
}

// GetOwner resolves the owning user of a workout by its external id
func (r *workoutRepository) GetOwner(ctx context.Context, workoutID int64) (int64, error) {
	var userID int64
	err := r.db.GetContext(ctx, &userID,
		`SELECT user_id FROM workouts WHERE workout_id = $1`,
		workoutID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrWorkoutNotFound
		}
		return 0, err
	}
	return userID, nil
}

// GetByIDAndOwner retrieves a workout by the (external id, owner) compound key
func (r *workoutRepository) GetByIDAndOwner(ctx context.Context, workoutID, userID int64) (*Workout, error) {
	workout := &Workout{}
	err := r.db.GetContext(ctx, workout,
		`SELECT * FROM workouts WHERE workout_id = $1 AND user_id = $2`,
		workoutID, userID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return workout, nil
}

// ListByUser returns all workouts logged by a user, newest first
func (r *workoutRepository) ListByUser(ctx context.Context, userID int64) ([]Workout, error) {
	var workouts []Workout
	err := r.db.SelectContext(ctx, &workouts,
		`SELECT * FROM workouts WHERE user_id = $1 ORDER BY id DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	return workouts, nil
}

// Delete removes a workout and all of its sets in one transaction.
// The workout_sets foreign key cascades, but the delete is still issued
// explicitly so the cleanup does not depend on schema details.
func (r *workoutRepository) Delete(ctx context.Context, workoutID int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM workout_sets WHERE workout_id = $1`, workoutID,
	); err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx,
		`DELETE FROM workouts WHERE workout_id = $1`, workoutID,
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrWorkoutNotFound
	}

	return tx.Commit()
}

// InsertSet logs one completed set under the given external workout id
func (r *workoutRepository) InsertSet(ctx context.Context, set *WorkoutSet) error {
	query := `
		INSERT INTO workout_sets (workout_id, exercise_name, reps, weight)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	return r.db.QueryRowxContext(ctx, query,
		set.WorkoutID,
		set.ExerciseName,
		set.Reps,
		set.Weight,
	).Scan(&set.ID)
}

// ListSets returns all sets belonging to one workout
func (r *workoutRepository) ListSets(ctx context.Context, workoutID int64) ([]WorkoutSet, error) {
	var sets []WorkoutSet
	err := r.db.SelectContext(ctx, &sets,
		`SELECT * FROM workout_sets WHERE workout_id = $1 ORDER BY id`,
		workoutID,
	)
	if err != nil {
		return nil, err
	}
	return sets, nil
}

// ListUserSets returns every set the user has logged, joined with the parent
// workout's date. exerciseName, when non-empty, is an exact-match filter.
func (r *workoutRepository) ListUserSets(ctx context.Context, userID int64, exerciseName string) ([]UserSet, error) {
	query := `
		SELECT ws.id, ws.workout_id, ws.exercise_name, ws.reps, ws.weight, w.date AS workout_date
		FROM workout_sets ws
		JOIN workouts w ON ws.workout_id = w.workout_id
		WHERE w.user_id = $1
	`
	args := []interface{}{userID}

	if exerciseName != "" {
		query += ` AND ws.exercise_name = $2`
		args = append(args, exerciseName)
	}
	query += ` ORDER BY ws.id`

	var sets []UserSet
	err := r.db.SelectContext(ctx, &sets, query, args...)
	if err != nil {
		return nil, err
	}
	return sets, nil
}

// GetSetOwner resolves the owning user of a workout set via its parent workout
func (r *workoutRepository) GetSetOwner(ctx context.Context, setID int64) (int64, error) {
	var userID int64
	err := r.db.GetContext(ctx, &userID, `
		SELECT w.user_id
		FROM workout_sets ws
		JOIN workouts w ON ws.workout_id = w.workout_id
		WHERE ws.id = $1
	`, setID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrWorkoutSetNotFound
		}
		return 0, err
	}
	return userID, nil
}

// UpdateSet overwrites weight and reps of an existing set
func (r *workoutRepository) UpdateSet(ctx context.Context, setID int64, weight float64, reps int) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE workout_sets SET weight = $1, reps = $2 WHERE id = $3`,
		weight, reps, setID,
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrWorkoutSetNotFound
	}

	return nil
}

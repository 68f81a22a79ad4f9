// Package workout implements logged workout sessions and their sets.
// Every operation that touches a private resource resolves the caller's
// auth key and checks ownership before reaching storage.
package workout

import (
	"context"
	"log/slog"

	"github.com/gymtracker-app/backend/internal/repository"
)

// Authorizer resolves auth keys and enforces resource ownership.
// Implemented by the auth service.
type Authorizer interface {
	ResolveKey(ctx context.Context, authKey string) (int64, error)
	Authorize(ctx context.Context, authKey string, ownerID int64) (int64, error)
}

// InsertRequest represents the workout creation payload
type InsertRequest struct {
	UserID    int64  `json:"userID" validate:"required"`
	Date      string `json:"date" validate:"required"`
	WorkoutID int64  `json:"workoutID" validate:"required"`
	AuthKey   string `json:"authKey" validate:"required"`
	RPE       int    `json:"rpe" validate:"min=0,max=10"`
}

// InsertSetRequest represents the workout set creation payload.
// The auth key is required so the parent workout's ownership can be
// verified before the set is accepted.
type InsertSetRequest struct {
	WorkoutID    int64   `json:"workoutID" validate:"required"`
	ExerciseName string  `json:"exerciseName" validate:"required"`
	Reps         int     `json:"reps"`
	Weight       float64 `json:"weight"`
	AuthKey      string  `json:"authKey" validate:"required"`
}

// UpdateSetRequest represents the set update payload
type UpdateSetRequest struct {
	AuthKey string   `json:"authKey" validate:"required"`
	SetID   int64    `json:"setID" validate:"required"`
	Weight  *float64 `json:"weight" validate:"required"`
	Reps    *int     `json:"reps" validate:"required"`
}

// DeleteRequest represents the workout deletion payload
type DeleteRequest struct {
	AuthKey   string `json:"authKey" validate:"required"`
	WorkoutID int64  `json:"workoutID" validate:"required"`
}

// Service owns workout and workout-set operations
type Service struct {
	repo   repository.WorkoutRepository
	auth   Authorizer
	logger *slog.Logger
}

// NewService creates a new workout Service instance
func NewService(repo repository.WorkoutRepository, auth Authorizer, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, auth: auth, logger: logger}
}

// Insert logs a new workout session after verifying that the auth key
// belongs to the claimed user. The external workout id must be unique
// across all workouts; RPE defaults to 0 when the client omits it.
func (s *Service) Insert(ctx context.Context, req InsertRequest) (int64, error) {
	if _, err := s.auth.Authorize(ctx, req.AuthKey, req.UserID); err != nil {
		return 0, err
	}

	workout := &repository.Workout{
		UserID:    req.UserID,
		Date:      req.Date,
		WorkoutID: req.WorkoutID,
		RPE:       req.RPE,
	}

	if err := s.repo.Insert(ctx, workout); err != nil {
		return 0, err
	}

	s.logger.Info("workout logged", "user_id", req.UserID, "workout_id", req.WorkoutID)
	return workout.ID, nil
}

// InsertSet logs one completed set. The parent workout is looked up by
// its external id and the caller must own it, the same check getWorkoutSets
// performs; a set can never be attached to someone else's workout.
func (s *Service) InsertSet(ctx context.Context, req InsertSetRequest) (int64, error) {
	ownerID, err := s.repo.GetOwner(ctx, req.WorkoutID)
	if err != nil {
		return 0, err
	}

	if _, err := s.auth.Authorize(ctx, req.AuthKey, ownerID); err != nil {
		return 0, err
	}

	set := &repository.WorkoutSet{
		WorkoutID:    req.WorkoutID,
		ExerciseName: req.ExerciseName,
		Reps:         req.Reps,
		Weight:       req.Weight,
	}

	if err := s.repo.InsertSet(ctx, set); err != nil {
		return 0, err
	}

	return set.ID, nil
}

// ListByUser returns all workouts logged by a user, newest first
func (s *Service) ListByUser(ctx context.Context, userID int64) ([]repository.Workout, error) {
	return s.repo.ListByUser(ctx, userID)
}

// ListUserSets returns every set the auth key's holder has logged,
// optionally filtered to one exercise name.
func (s *Service) ListUserSets(ctx context.Context, authKey, exerciseName string) ([]repository.UserSet, error) {
	userID, err := s.auth.ResolveKey(ctx, authKey)
	if err != nil {
		return nil, err
	}
	return s.repo.ListUserSets(ctx, userID, exerciseName)
}

// ListSets returns one workout's sets. The workout is looked up first so
// a missing workout reports not-found rather than an authorization error,
// then the caller must prove ownership.
func (s *Service) ListSets(ctx context.Context, workoutID int64, authKey string) ([]repository.WorkoutSet, error) {
	ownerID, err := s.repo.GetOwner(ctx, workoutID)
	if err != nil {
		return nil, err
	}

	if _, err := s.auth.Authorize(ctx, authKey, ownerID); err != nil {
		return nil, err
	}

	return s.repo.ListSets(ctx, workoutID)
}

// UpdateSet overwrites weight and reps of a set owned by the caller
func (s *Service) UpdateSet(ctx context.Context, req UpdateSetRequest) error {
	ownerID, err := s.repo.GetSetOwner(ctx, req.SetID)
	if err != nil {
		return err
	}

	if _, err := s.auth.Authorize(ctx, req.AuthKey, ownerID); err != nil {
		return err
	}

	return s.repo.UpdateSet(ctx, req.SetID, *req.Weight, *req.Reps)
}

// Delete removes a workout and its sets. The lookup is by the compound
// (external id, owner) key, so a workout belonging to someone else is
// indistinguishable from one that does not exist.
func (s *Service) Delete(ctx context.Context, req DeleteRequest) error {
	userID, err := s.auth.ResolveKey(ctx, req.AuthKey)
	if err != nil {
		return err
	}

	if _, err := s.repo.GetByIDAndOwner(ctx, req.WorkoutID, userID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, req.WorkoutID); err != nil {
		return err
	}

	s.logger.Info("workout deleted", "user_id", userID, "workout_id", req.WorkoutID)
	return nil
}

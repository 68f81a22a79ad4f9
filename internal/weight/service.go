// Package weight implements body-weight tracking entries.
package weight

import (
	"context"
	"time"

	"github.com/gymtracker-app/backend/internal/repository"
)

// Authorizer resolves auth keys to user ids. Implemented by the auth service.
type Authorizer interface {
	ResolveKey(ctx context.Context, authKey string) (int64, error)
}

// AddRequest represents the weight entry payload
type AddRequest struct {
	AuthKey string    `json:"authKey" validate:"required"`
	Date    time.Time `json:"date" validate:"required"`
	Weight  float64   `json:"weight" validate:"required,gt=0"`
}

// Service owns body-weight entry operations
type Service struct {
	repo repository.WeightRepository
	auth Authorizer
}

// NewService creates a new weight Service instance
func NewService(repo repository.WeightRepository, auth Authorizer) *Service {
	return &Service{repo: repo, auth: auth}
}

// Add records a body-weight measurement for the auth key's holder
func (s *Service) Add(ctx context.Context, req AddRequest) (int64, error) {
	userID, err := s.auth.ResolveKey(ctx, req.AuthKey)
	if err != nil {
		return 0, err
	}

	entry := &repository.WeightEntry{
		UserID: userID,
		Date:   req.Date,
		Weight: req.Weight,
	}

	if err := s.repo.Insert(ctx, entry); err != nil {
		return 0, err
	}
	return entry.ID, nil
}

// List returns the caller's weight entries in chronological order
func (s *Service) List(ctx context.Context, authKey string) ([]repository.WeightEntry, error) {
	userID, err := s.auth.ResolveKey(ctx, authKey)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByUser(ctx, userID)
}

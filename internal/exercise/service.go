package exercise

import (
	"context"
	"log/slog"

	"github.com/gymtracker-app/backend/internal/repository"
)

// Service exposes the static exercise catalog
type Service struct {
	repo   repository.ExerciseRepository
	logger *slog.Logger
}

// NewService creates a new exercise Service instance
func NewService(repo repository.ExerciseRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// SeedIfEmpty loads the built-in catalog when the exercises table has no
// rows. Run once at startup; a populated table is left untouched.
func (s *Service) SeedIfEmpty(ctx context.Context) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if err := s.repo.SeedCatalog(ctx, catalog); err != nil {
		return err
	}

	s.logger.Info("seeded exercise catalog", "count", len(catalog))
	return nil
}

// DistinctNames returns the distinct exercise names, sorted ascending
func (s *Service) DistinctNames(ctx context.Context) ([]string, error) {
	return s.repo.DistinctNames(ctx)
}

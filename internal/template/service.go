// Package template implements reusable workout templates: a named,
// ordered list of exercise prescriptions a user can apply when logging a
// new workout. Public templates are readable by everyone; private ones
// only show up in their owner's listing.
package template

import (
	"context"
	"log/slog"

	"github.com/gymtracker-app/backend/internal/repository"
)

// SetInput is one prescribed exercise line in a template creation request
type SetInput struct {
	ExerciseName string  `json:"exerciseName" validate:"required"`
	Reps         int     `json:"reps"`
	Weight       float64 `json:"weight"`
}

// CreateRequest represents the template creation payload
type CreateRequest struct {
	Name        string     `json:"name" validate:"required"`
	Description string     `json:"description"`
	Public      bool       `json:"publicMode"`
	Sets        []SetInput `json:"sets" validate:"required,min=1,dive"`
	UserID      int64      `json:"userID" validate:"required"`
}

// Service owns template creation and the visibility-scoped listings
type Service struct {
	repo   repository.TemplateRepository
	logger *slog.Logger
}

// NewService creates a new template Service instance
func NewService(repo repository.TemplateRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// Create stores the template and its sets atomically, preserving the
// order the sets arrived in.
func (s *Service) Create(ctx context.Context, req CreateRequest) (int64, error) {
	template := &repository.Template{
		Name:        req.Name,
		Description: req.Description,
		Public:      req.Public,
		UserID:      req.UserID,
	}

	sets := make([]repository.TemplateSet, len(req.Sets))
	for i, in := range req.Sets {
		sets[i] = repository.TemplateSet{
			ExerciseName: in.ExerciseName,
			Reps:         in.Reps,
			Weight:       in.Weight,
		}
	}

	if err := s.repo.InsertWithSets(ctx, template, sets); err != nil {
		return 0, err
	}

	s.logger.Info("template created", "template_id", template.ID, "user_id", template.UserID, "sets", len(sets))
	return template.ID, nil
}

// ListPublic returns every template marked public
func (s *Service) ListPublic(ctx context.Context) ([]repository.Template, error) {
	return s.repo.ListPublic(ctx)
}

// ListPrivate returns the private templates owned by the given user
func (s *Service) ListPrivate(ctx context.Context, userID int64) ([]repository.Template, error) {
	return s.repo.ListPrivateByUser(ctx, userID)
}

// ListSets returns a template's sets in prescription order
func (s *Service) ListSets(ctx context.Context, templateID int64) ([]repository.TemplateSet, error) {
	return s.repo.ListSets(ctx, templateID)
}

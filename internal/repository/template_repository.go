package repository

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

// Template repository errors
var (
	ErrTemplateNotFound = errors.New("template not found")
)

// TemplateRepository defines the interface for template data access
type TemplateRepository interface {
	InsertWithSets(ctx context.Context, template *Template, sets []TemplateSet) error
	ListPublic(ctx context.Context) ([]Template, error)
	ListPrivateByUser(ctx context.Context, userID int64) ([]Template, error)
	ListSets(ctx context.Context, templateID int64) ([]TemplateSet, error)
}

// templateRepository implements TemplateRepository using PostgreSQL
type templateRepository struct {
	db *sqlx.DB
}

// NewTemplateRepository creates a new TemplateRepository instance
func NewTemplateRepository(db *sqlx.DB) TemplateRepository {
	return &templateRepository{db: db}
}

// InsertWithSets creates the template row and its sets in one transaction.
// Set order is preserved through order_index, so a template never commits
// partially populated.
func (r *templateRepository) InsertWithSets(ctx context.Context, template *Template, sets []TemplateSet) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRowxContext(ctx, `
		INSERT INTO templates (name, description, public, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, template.Name, template.Description, template.Public, template.UserID).Scan(&template.ID)
	if err != nil {
		return err
	}

	for i := range sets {
		sets[i].TemplateID = template.ID
		sets[i].OrderIndex = i

		err = tx.QueryRowxContext(ctx, `
			INSERT INTO template_sets (template_id, exercise_name, reps, weight, order_index)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`, sets[i].TemplateID, sets[i].ExerciseName, sets[i].Reps, sets[i].Weight, sets[i].OrderIndex).Scan(&sets[i].ID)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// ListPublic returns all templates marked public
func (r *templateRepository) ListPublic(ctx context.Context) ([]Template, error) {
	var templates []Template
	err := r.db.SelectContext(ctx, &templates,
		`SELECT * FROM templates WHERE public = TRUE ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	return templates, nil
}

// ListPrivateByUser returns the user's own private templates
func (r *templateRepository) ListPrivateByUser(ctx context.Context, userID int64) ([]Template, error) {
	var templates []Template
	err := r.db.SelectContext(ctx, &templates,
		`SELECT * FROM templates WHERE user_id = $1 AND public = FALSE ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	return templates, nil
}

// ListSets returns a template's sets in prescription order
func (r *templateRepository) ListSets(ctx context.Context, templateID int64) ([]TemplateSet, error) {
	var sets []TemplateSet
	err := r.db.SelectContext(ctx, &sets,
		`SELECT * FROM template_sets WHERE template_id = $1 ORDER BY order_index`,
		templateID,
	)
	if err != nil {
		return nil, err
	}
	return sets, nil
}

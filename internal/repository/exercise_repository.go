package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// ExerciseRepository defines the interface for the static exercise catalog
type ExerciseRepository interface {
	Count(ctx context.Context) (int, error)
	SeedCatalog(ctx context.Context, exercises []Exercise) error
	DistinctNames(ctx context.Context) ([]string, error)
}

// exerciseRepository implements ExerciseRepository using PostgreSQL
type exerciseRepository struct {
	db *sqlx.DB
}

// NewExerciseRepository creates a new ExerciseRepository instance
func NewExerciseRepository(db *sqlx.DB) ExerciseRepository {
	return &exerciseRepository{db: db}
}

// Count returns the number of catalog entries
func (r *exerciseRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM exercises`)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// SeedCatalog inserts the given catalog entries in one transaction
func (r *exerciseRepository) SeedCatalog(ctx context.Context, exercises []Exercise) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, e := range exercises {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO exercises (name, description) VALUES ($1, $2)`,
			e.Name, e.Description,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// DistinctNames returns the distinct exercise names, sorted ascending
func (r *exerciseRepository) DistinctNames(ctx context.Context) ([]string, error) {
	var names []string
	err := r.db.SelectContext(ctx, &names,
		`SELECT DISTINCT name FROM exercises ORDER BY name ASC`,
	)
	if err != nil {
		return nil, err
	}
	return names, nil
}

package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// WeightRepository defines the interface for body-weight entry data access
type WeightRepository interface {
	Insert(ctx context.Context, entry *WeightEntry) error
	ListByUser(ctx context.Context, userID int64) ([]WeightEntry, error)
}

// weightRepository implements WeightRepository using PostgreSQL
type weightRepository struct {
	db *sqlx.DB
}

// NewWeightRepository creates a new WeightRepository instance
func NewWeightRepository(db *sqlx.DB) WeightRepository {
	return &weightRepository{db: db}
}

// Insert records one body-weight observation
func (r *weightRepository) Insert(ctx context.Context, entry *WeightEntry) error {
	return r.db.QueryRowxContext(ctx, `
		INSERT INTO weight_entries (user_id, date, weight)
		VALUES ($1, $2, $3)
		RETURNING id
	`, entry.UserID, entry.Date, entry.Weight).Scan(&entry.ID)
}

// ListByUser returns the user's weight entries, oldest first
func (r *weightRepository) ListByUser(ctx context.Context, userID int64) ([]WeightEntry, error) {
	var entries []WeightEntry
	err := r.db.SelectContext(ctx, &entries,
		`SELECT * FROM weight_entries WHERE user_id = $1 ORDER BY date ASC, id ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

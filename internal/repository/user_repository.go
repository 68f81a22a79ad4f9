package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
)

// Common errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// uniqueViolation is the PostgreSQL error code for unique constraint violations
const uniqueViolation = "23505"

// isUniqueViolation reports whether err is a unique constraint violation,
// optionally restricted to the named constraint.
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByAuthKey(ctx context.Context, authKey string) (*User, error)
	UpdateAuthKey(ctx context.Context, id int64, authKey string, expiry time.Time) error
	UpdatePasswordHash(ctx context.Context, id int64, passwordHash string) error
	ListExpiredAuthKeys(ctx context.Context, now time.Time) ([]User, error)
}

// userRepository implements UserRepository using PostgreSQL
type userRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user with its initial auth key and expiry.
// Returns ErrEmailAlreadyExists when the email is taken.
func (r *userRepository) Create(ctx context.Context, user *User) error {
	query := `
		INSERT INTO users (first_name, last_name, email, password_hash, auth_key, auth_key_expiry)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRowxContext(ctx, query,
		user.FirstName,
		user.LastName,
		user.Email,
		user.PasswordHash,
		user.AuthKey,
		user.AuthKeyExpiry,
	).Scan(&user.ID)

	if err != nil {
		if isUniqueViolation(err, "users_email_key") {
			return ErrEmailAlreadyExists
		}
		return err
	}

	return nil
}

// GetByID retrieves a user by their ID
func (r *userRepository) GetByID(ctx context.Context, id int64) (*User, error) {
	user := &User{}
	err := r.db.GetContext(ctx, user, `SELECT * FROM users WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// GetByEmail retrieves a user by their email address. Emails are compared
// exactly as stored.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	user := &User{}
	err := r.db.GetContext(ctx, user, `SELECT * FROM users WHERE email = $1`, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// GetByAuthKey retrieves the user currently holding the given auth key
func (r *userRepository) GetByAuthKey(ctx context.Context, authKey string) (*User, error) {
	user := &User{}
	err := r.db.GetContext(ctx, user, `SELECT * FROM users WHERE auth_key = $1`, authKey)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateAuthKey assigns a fresh auth key and expiry to the user
func (r *userRepository) UpdateAuthKey(ctx context.Context, id int64, authKey string, expiry time.Time) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE users SET auth_key = $1, auth_key_expiry = $2 WHERE id = $3`,
		authKey, expiry, id,
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrUserNotFound
	}

	return nil
}

// UpdatePasswordHash replaces the stored password hash for the user
func (r *userRepository) UpdatePasswordHash(ctx context.Context, id int64, passwordHash string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE users SET password_hash = $1 WHERE id = $2`,
		passwordHash, id,
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrUserNotFound
	}

	return nil
}

// ListExpiredAuthKeys returns every user whose auth key expired before now.
// Used by the background rotation sweep.
func (r *userRepository) ListExpiredAuthKeys(ctx context.Context, now time.Time) ([]User, error) {
	var users []User
	err := r.db.SelectContext(ctx, &users,
		`SELECT * FROM users WHERE auth_key_expiry < $1 ORDER BY id`,
		now,
	)
	if err != nil {
		return nil, err
	}
	return users, nil
}

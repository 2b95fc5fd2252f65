package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/job-portal/internal/logger"
	"github.com/sbilibin2017/job-portal/internal/models"
)

// UserReadRepository handles user read operations.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByEmail returns the full user record for an email, or nil when absent.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, name, email, password_hash, role, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, email)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetAuthByID returns the public part of a user record, or nil when absent.
// The password hash is never selected here.
func (r *UserReadRepository) GetAuthByID(ctx context.Context, userID uuid.UUID) (*models.AuthUser, error) {
	const query = `
		SELECT user_id, name, email, role
		FROM users
		WHERE user_id = $1
	`

	var user models.AuthUser
	err := r.db.GetContext(ctx, &user, query, userID)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// UserWriteRepository handles user write operations.
type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user and returns the generated identifier.
func (r *UserWriteRepository) Save(ctx context.Context, name, email, passwordHash string, role models.Role) (uuid.UUID, error) {
	const query = `
		INSERT INTO users (user_id, name, email, password_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING user_id
	`
	args := []any{uuid.New(), name, email, passwordHash, role}

	var userID uuid.UUID
	err := r.db.GetContext(ctx, &userID, query, args...)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{name, email, role},
		"error", err,
	)

	if isUniqueViolation(err) {
		return uuid.Nil, ErrUniqueViolation
	}
	return userID, err
}

// Package auth_repo provides the PostgreSQL implementation for the user
// repository.
package auth_repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"crmdesk/internal/core/apperror"
	"crmdesk/internal/core/id"
	"crmdesk/internal/domain/auth"
	"crmdesk/internal/infrastructure/storage/postgres"
)

// UserRepo implements auth.UserRepository.
type UserRepo struct {
	db postgres.DB
}

// NewUserRepo creates a new user repository.
func NewUserRepo(db postgres.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Create creates a new user.
func (r *UserRepo) Create(ctx context.Context, user *auth.User) error {
	q := r.db.GetQuerier(ctx)

	query := `
		INSERT INTO users (
			id, email, password_hash, name, is_active,
			failed_login_attempts, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := q.Exec(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.Name,
		user.IsActive, user.FailedLoginAttempts,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

// GetByID retrieves user by ID.
func (r *UserRepo) GetByID(ctx context.Context, userID id.ID) (*auth.User, error) {
	return r.getOne(ctx, "id = $1", userID)
}

// GetByEmail retrieves user by email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*auth.User, error) {
	return r.getOne(ctx, "email = $1", email)
}

func (r *UserRepo) getOne(ctx context.Context, cond string, arg any) (*auth.User, error) {
	q := r.db.GetQuerier(ctx)

	query := `
		SELECT id, email, password_hash, name, is_active,
			   last_login_at, failed_login_attempts, locked_until,
			   created_at, updated_at
		FROM users
		WHERE ` + cond

	var user auth.User
	err := q.QueryRow(ctx, query, arg).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.Name,
		&user.IsActive, &user.LastLoginAt, &user.FailedLoginAttempts,
		&user.LockedUntil, &user.CreatedAt, &user.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperror.NewNotFound("user", fmt.Sprintf("%v", arg))
	}
	if err != nil {
		return nil, fmt.Errorf("query user: %w", err)
	}

	return &user, nil
}

// Update updates user data.
func (r *UserRepo) Update(ctx context.Context, user *auth.User) error {
	q := r.db.GetQuerier(ctx)

	query := `
		UPDATE users SET
			email = $2, password_hash = $3, name = $4, is_active = $5,
			last_login_at = $6, failed_login_attempts = $7, locked_until = $8,
			updated_at = NOW()
		WHERE id = $1
	`

	result, err := q.Exec(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.Name,
		user.IsActive, user.LastLoginAt, user.FailedLoginAttempts,
		user.LockedUntil,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("user", user.ID.String())
	}

	return nil
}

// Exists checks if a user with the given email exists.
func (r *UserRepo) Exists(ctx context.Context, email string) (bool, error) {
	q := r.db.GetQuerier(ctx)

	var exists int
	err := q.QueryRow(ctx, "SELECT 1 FROM users WHERE email = $1 LIMIT 1", email).Scan(&exists)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check user exists: %w", err)
	}

	return true, nil
}

// internal/adapters/db/user_repository.go
package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/amitabhanmolpain/realestate-be/internal/core/domain"
	"github.com/amitabhanmolpain/realestate-be/internal/core/ports"
)

const uniqueViolation = "23505"

var userColumns = []string{
	"id", "name", "email", "phone", "password_hash",
	"failed_login_attempts", "locked_until", "created_at", "updated_at",
}

type userRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewUserRepository creates a new account repository
func NewUserRepository(db *Database, logger *slog.Logger) ports.UserRepository {
	return &userRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "user")),
	}
}

// Save inserts an account; a duplicate email yields domain.ErrConflict.
func (r *userRepository) Save(ctx context.Context, u *domain.User) error {
	query, args, err := psql.Insert("users").Columns(userColumns...).Values(
		u.ID, u.Name, u.Email, u.Phone, u.PasswordHash,
		u.FailedLoginAttempts, u.LockedUntil, u.CreatedAt, u.UpdatedAt,
	).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: email already registered", domain.ErrConflict)
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

// Update persists profile fields and the login-attempt state.
func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	query, args, err := psql.Update("users").SetMap(map[string]interface{}{
		"name":                  u.Name,
		"phone":                 u.Phone,
		"password_hash":         u.PasswordHash,
		"failed_login_attempts": u.FailedLoginAttempts,
		"locked_until":          u.LockedUntil,
		"updated_at":            u.UpdatedAt,
	}).Where(squirrel.Eq{"id": u.ID}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.findOne(ctx, squirrel.Eq{"id": id})
}

// FindByEmail matches case-insensitively, mirroring the unique index.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, squirrel.Expr("lower(email) = ?", domain.NormalizeEmail(email)))
}

func (r *userRepository) findOne(ctx context.Context, pred squirrel.Sqlizer) (*domain.User, error) {
	query, args, err := psql.Select(userColumns...).From("users").Where(pred).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	u := &domain.User{}
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&u.ID, &u.Name, &u.Email, &u.Phone, &u.PasswordHash,
		&u.FailedLoginAttempts, &u.LockedUntil, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return u, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

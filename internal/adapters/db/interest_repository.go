// internal/adapters/db/interest_repository.go
package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/amitabhanmolpain/realestate-be/internal/core/domain"
	"github.com/amitabhanmolpain/realestate-be/internal/core/ports"
)

var interestColumns = []string{
	"i.id", "i.property_id", "i.user_id", "i.seller_id",
	"i.user_name", "i.user_email", "i.user_phone", "i.message",
	"i.interest_type", "i.status",
	"COALESCE(p.title, '')", "COALESCE(p.image, '')", "COALESCE(p.location, '')",
	"i.created_at",
}

type interestRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewInterestRepository creates a new buyer-interest repository
func NewInterestRepository(db *Database, logger *slog.Logger) ports.InterestRepository {
	return &interestRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "interest")),
	}
}

// Save records the interest once per user and listing; a repeat yields
// domain.ErrConflict.
func (r *interestRepository) Save(ctx context.Context, i *domain.Interest) error {
	query, args, err := psql.Insert("property_interests").Columns(
		"id", "property_id", "user_id", "seller_id",
		"user_name", "user_email", "user_phone", "message",
		"interest_type", "status", "created_at",
	).Values(
		i.ID, i.PropertyID, i.UserID, i.SellerID,
		i.UserName, i.UserEmail, i.UserPhone, i.Message,
		i.Type, i.Status, i.CreatedAt,
	).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert: %w", err)
	}

	return r.db.Transaction(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, query, args...); err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: interest already recorded", domain.ErrConflict)
			}
			return fmt.Errorf("failed to save interest: %w", err)
		}
		return incrementCounter(ctx, tx, i.PropertyID, domain.CounterInterests, 1)
	})
}

func (r *interestRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Interest, error) {
	query, args, err := r.selectInterests().Where(squirrel.Eq{"i.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	i, err := scanInterest(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find interest: %w", err)
	}
	return i, nil
}

func (r *interestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.InterestStatus) error {
	tag, err := r.db.Exec(ctx, `UPDATE property_interests SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update interest status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *interestRepository) Exists(ctx context.Context, userID, propertyID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM property_interests WHERE user_id = $1 AND property_id = $2)`,
		userID, propertyID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check interest: %w", err)
	}
	return exists, nil
}

func (r *interestRepository) ListBySeller(ctx context.Context, sellerID uuid.UUID, status *domain.InterestStatus, limit int) ([]domain.Interest, error) {
	qb := r.selectInterests().Where(squirrel.Eq{"i.seller_id": sellerID}).OrderBy("i.created_at DESC")
	if status != nil {
		qb = qb.Where(squirrel.Eq{"i.status": *status})
	}
	if limit > 0 {
		qb = qb.Limit(uint64(limit))
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query interests: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Interest, 0)
	for rows.Next() {
		i, err := scanInterest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan interest: %w", err)
		}
		out = append(out, *i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return out, nil
}

func (r *interestRepository) CountBySeller(ctx context.Context, sellerID uuid.UUID) (map[domain.InterestStatus]int, error) {
	rows, err := r.db.Query(ctx,
		`SELECT status, COUNT(*) FROM property_interests WHERE seller_id = $1 GROUP BY status`, sellerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count interests: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.InterestStatus]int)
	for rows.Next() {
		var status domain.InterestStatus
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("failed to scan interest count: %w", err)
		}
		counts[status] = n
	}
	return counts, rows.Err()
}

func (r *interestRepository) selectInterests() squirrel.SelectBuilder {
	return psql.Select(interestColumns...).
		From("property_interests i").
		LeftJoin("properties p ON p.id = i.property_id")
}

func scanInterest(row pgx.Row) (*domain.Interest, error) {
	i := &domain.Interest{}
	err := row.Scan(
		&i.ID, &i.PropertyID, &i.UserID, &i.SellerID,
		&i.UserName, &i.UserEmail, &i.UserPhone, &i.Message,
		&i.Type, &i.Status,
		&i.PropertyTitle, &i.PropertyImage, &i.PropertyLocation,
		&i.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return i, nil
}

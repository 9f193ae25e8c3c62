// internal/adapters/db/like_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/amitabhanmolpain/realestate-be/internal/core/domain"
	"github.com/amitabhanmolpain/realestate-be/internal/core/ports"
)

// likeRepository keeps property_likes and properties.likes_count in step;
// both writes share a transaction.
type likeRepository struct {
	db     *Database
	logger *slog.Logger
}

func NewLikeRepository(db *Database, logger *slog.Logger) ports.LikeRepository {
	return &likeRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "like")),
	}
}

func (r *likeRepository) Add(ctx context.Context, userID, propertyID uuid.UUID) (bool, error) {
	var changed bool
	err := r.db.Transaction(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`INSERT INTO property_likes (user_id, property_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			userID, propertyID)
		if err != nil {
			return fmt.Errorf("failed to insert like: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return nil
		}
		changed = true
		return incrementCounter(ctx, tx, propertyID, domain.CounterLikes, 1)
	})
	if err != nil {
		return false, err
	}
	return changed, nil
}

func (r *likeRepository) Remove(ctx context.Context, userID, propertyID uuid.UUID) (bool, error) {
	var changed bool
	err := r.db.Transaction(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`DELETE FROM property_likes WHERE user_id = $1 AND property_id = $2`,
			userID, propertyID)
		if err != nil {
			return fmt.Errorf("failed to delete like: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return nil
		}
		changed = true
		return incrementCounter(ctx, tx, propertyID, domain.CounterLikes, -1)
	})
	if err != nil {
		return false, err
	}
	return changed, nil
}

func (r *likeRepository) PropertyIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx,
		`SELECT property_id FROM property_likes WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query likes: %w", err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, fmt.Errorf("failed to scan likes: %w", err)
	}
	if ids == nil {
		ids = []uuid.UUID{}
	}
	return ids, nil
}

// ListProperties pages through a user's liked listings, most recent like first.
func (r *likeRepository) ListProperties(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Property, int, error) {
	var total int
	if err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM property_likes WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count likes: %w", err)
	}

	query, args, err := likedPropertiesQuery(userID, limit, offset).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query liked properties: %w", err)
	}
	list, err := collectProperties(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func likedPropertiesQuery(userID uuid.UUID, limit, offset int) squirrel.SelectBuilder {
	cols := make([]string, len(propertyColumns))
	for i, c := range propertyColumns {
		cols[i] = "p." + c
	}

	qb := psql.Select(cols...).
		From("property_likes l").
		Join("properties p ON p.id = l.property_id").
		Where(squirrel.Eq{"l.user_id": userID}).
		OrderBy("l.created_at DESC")
	if limit > 0 {
		qb = qb.Limit(uint64(limit))
	}
	if offset > 0 {
		qb = qb.Offset(uint64(offset))
	}
	return qb
}

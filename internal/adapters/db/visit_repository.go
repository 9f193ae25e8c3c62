// internal/adapters/db/visit_repository.go
package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/amitabhanmolpain/realestate-be/internal/core/domain"
	"github.com/amitabhanmolpain/realestate-be/internal/core/ports"
)

var visitColumns = []string{
	"v.id", "v.property_id", "v.user_id", "v.seller_id",
	"v.visitor_name", "v.visitor_email", "v.visitor_phone",
	"v.visit_date", "v.visit_time", "v.notes", "v.status",
	"COALESCE(p.title, '')", "COALESCE(p.image, '')", "COALESCE(p.location, '')",
	"v.created_at", "v.updated_at",
}

type visitRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewVisitRepository creates a new scheduled-visit repository
func NewVisitRepository(db *Database, logger *slog.Logger) ports.VisitRepository {
	return &visitRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "visit")),
	}
}

// Save stores the visit and bumps the listing's visit counter.
func (r *visitRepository) Save(ctx context.Context, v *domain.Visit) error {
	query, args, err := psql.Insert("scheduled_visits").Columns(
		"id", "property_id", "user_id", "seller_id",
		"visitor_name", "visitor_email", "visitor_phone",
		"visit_date", "visit_time", "notes", "status",
		"created_at", "updated_at",
	).Values(
		v.ID, v.PropertyID, v.UserID, v.SellerID,
		v.VisitorName, v.VisitorEmail, v.VisitorPhone,
		v.VisitDate, v.VisitTime, v.Notes, v.Status,
		v.CreatedAt, v.UpdatedAt,
	).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert: %w", err)
	}

	return r.db.Transaction(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to save visit: %w", err)
		}
		return incrementCounter(ctx, tx, v.PropertyID, domain.CounterVisits, 1)
	})
}

func (r *visitRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Visit, error) {
	query, args, err := r.selectVisits().Where(squirrel.Eq{"v.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	v, err := scanVisit(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find visit: %w", err)
	}
	return v, nil
}

func (r *visitRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.VisitStatus) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE scheduled_visits SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, id)
	if err != nil {
		return fmt.Errorf("failed to update visit status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// HasOpenVisit reports whether the user already has a pending or confirmed
// visit for the listing.
func (r *visitRepository) HasOpenVisit(ctx context.Context, userID, propertyID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM scheduled_visits
			WHERE user_id = $1 AND property_id = $2 AND status IN ($3, $4)
		)`, userID, propertyID, domain.VisitPending, domain.VisitConfirmed).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check open visit: %w", err)
	}
	return exists, nil
}

func (r *visitRepository) ListBySeller(ctx context.Context, sellerID uuid.UUID, status *domain.VisitStatus, limit int) ([]domain.Visit, error) {
	qb := r.selectVisits().Where(squirrel.Eq{"v.seller_id": sellerID}).OrderBy("v.visit_date DESC", "v.created_at DESC")
	if status != nil {
		qb = qb.Where(squirrel.Eq{"v.status": *status})
	}
	if limit > 0 {
		qb = qb.Limit(uint64(limit))
	}
	return r.list(ctx, qb)
}

func (r *visitRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Visit, error) {
	return r.list(ctx, r.selectVisits().Where(squirrel.Eq{"v.user_id": userID}).OrderBy("v.visit_date DESC"))
}

func (r *visitRepository) CountBySeller(ctx context.Context, sellerID uuid.UUID) (map[domain.VisitStatus]int, error) {
	rows, err := r.db.Query(ctx,
		`SELECT status, COUNT(*) FROM scheduled_visits WHERE seller_id = $1 GROUP BY status`, sellerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count visits: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.VisitStatus]int)
	for rows.Next() {
		var status domain.VisitStatus
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("failed to scan visit count: %w", err)
		}
		counts[status] = n
	}
	return counts, rows.Err()
}

// ExpirePending cancels pending visits whose date has passed.
func (r *visitRepository) ExpirePending(ctx context.Context, before time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE scheduled_visits SET status = $1, updated_at = NOW() WHERE status = $2 AND visit_date < $3`,
		domain.VisitCancelled, domain.VisitPending, before)
	if err != nil {
		return 0, fmt.Errorf("failed to expire visits: %w", err)
	}

	if n := tag.RowsAffected(); n > 0 {
		r.logger.InfoContext(ctx, "expired pending visits", slog.Int64("count", n))
	}
	return tag.RowsAffected(), nil
}

func (r *visitRepository) selectVisits() squirrel.SelectBuilder {
	return psql.Select(visitColumns...).
		From("scheduled_visits v").
		LeftJoin("properties p ON p.id = v.property_id")
}

func (r *visitRepository) list(ctx context.Context, qb squirrel.SelectBuilder) ([]domain.Visit, error) {
	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query visits: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Visit, 0)
	for rows.Next() {
		v, err := scanVisit(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan visit: %w", err)
		}
		out = append(out, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return out, nil
}

func scanVisit(row pgx.Row) (*domain.Visit, error) {
	v := &domain.Visit{}
	err := row.Scan(
		&v.ID, &v.PropertyID, &v.UserID, &v.SellerID,
		&v.VisitorName, &v.VisitorEmail, &v.VisitorPhone,
		&v.VisitDate, &v.VisitTime, &v.Notes, &v.Status,
		&v.PropertyTitle, &v.PropertyImage, &v.PropertyLocation,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return v, nil
}

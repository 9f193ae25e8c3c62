// internal/adapters/db/property_repository.go
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

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var propertyColumns = []string{
	"id", "title", "description", "location", "city", "property_type",
	"price", "area", "bedrooms", "bathrooms", "image", "images", "amenities",
	"seller_id", "seller_name", "seller_email", "seller_phone",
	"featured", "verified", "available", "status",
	"likes_count", "interests_count", "visits_count", "views_count",
	"posted_date", "created_at", "updated_at",
}

// propertyRepository implements ports.PropertyRepository
type propertyRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewPropertyRepository creates a new property repository
func NewPropertyRepository(db *Database, logger *slog.Logger) ports.PropertyRepository {
	return &propertyRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "property")),
	}
}

func insertProperty(p *domain.Property) squirrel.InsertBuilder {
	return psql.Insert("properties").Columns(propertyColumns...).Values(
		p.ID, p.Title, p.Description, p.Location, p.City, p.Type,
		p.Price, p.Area, p.Bedrooms, p.Bathrooms, p.Image, p.Images, p.Amenities,
		p.SellerID, p.SellerName, p.SellerEmail, p.SellerPhone,
		p.Featured, p.Verified, p.Available, p.Status,
		p.LikesCount, p.InterestsCount, p.VisitsCount, p.ViewsCount,
		p.PostedDate, p.CreatedAt, p.UpdatedAt,
	)
}

// Save creates a new listing
func (r *propertyRepository) Save(ctx context.Context, p *domain.Property) error {
	query, args, err := insertProperty(p).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save property: %w", err)
	}

	r.logger.DebugContext(ctx, "property saved", slog.String("id", p.ID.String()))
	return nil
}

// SaveBatch saves listings in one transaction
func (r *propertyRepository) SaveBatch(ctx context.Context, ps []domain.Property) error {
	if len(ps) == 0 {
		return nil
	}

	return r.db.Transaction(ctx, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for i := range ps {
			query, args, err := insertProperty(&ps[i]).ToSql()
			if err != nil {
				return fmt.Errorf("failed to build insert %d: %w", i, err)
			}
			batch.Queue(query, args...)
		}

		br := tx.SendBatch(ctx, batch)
		defer br.Close()

		for i := range ps {
			if _, err := br.Exec(); err != nil {
				return fmt.Errorf("failed to save property %d: %w", i, err)
			}
		}
		return nil
	})
}

// Update overwrites the editable fields of a listing
func (r *propertyRepository) Update(ctx context.Context, p *domain.Property) error {
	query, args, err := psql.Update("properties").SetMap(map[string]interface{}{
		"title":         p.Title,
		"description":   p.Description,
		"location":      p.Location,
		"city":          p.City,
		"property_type": p.Type,
		"price":         p.Price,
		"area":          p.Area,
		"bedrooms":      p.Bedrooms,
		"bathrooms":     p.Bathrooms,
		"image":         p.Image,
		"images":        p.Images,
		"amenities":     p.Amenities,
		"featured":      p.Featured,
		"verified":      p.Verified,
		"available":     p.Available,
		"status":        p.Status,
		"updated_at":    p.UpdatedAt,
	}).Where(squirrel.Eq{"id": p.ID}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update property: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a listing; likes, interests and visits cascade.
func (r *propertyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM properties WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete property: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// FindByID retrieves a listing by ID
func (r *propertyRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	query, args, err := psql.Select(propertyColumns...).From("properties").
		Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	p, err := scanProperty(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find property: %w", err)
	}
	return p, nil
}

func (r *propertyRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Property, error) {
	if len(ids) == 0 {
		return []domain.Property{}, nil
	}
	return r.list(ctx, psql.Select(propertyColumns...).From("properties").
		Where(squirrel.Eq{"id": ids}))
}

// ListAvailable loads every available, active listing in the default
// catalog order.
func (r *propertyRepository) ListAvailable(ctx context.Context) ([]domain.Property, error) {
	return r.list(ctx, psql.Select(propertyColumns...).From("properties").
		Where(squirrel.Eq{"available": true, "status": string(domain.PropertyActive)}).
		OrderBy("featured DESC", "posted_date DESC"))
}

func (r *propertyRepository) ListFeatured(ctx context.Context, limit int) ([]domain.Property, error) {
	qb := psql.Select(propertyColumns...).From("properties").
		Where(squirrel.Eq{"featured": true, "available": true, "status": string(domain.PropertyActive)}).
		OrderBy("posted_date DESC")
	if limit > 0 {
		qb = qb.Limit(uint64(limit))
	}
	return r.list(ctx, qb)
}

func (r *propertyRepository) ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]domain.Property, error) {
	return r.list(ctx, psql.Select(propertyColumns...).From("properties").
		Where(squirrel.Eq{"seller_id": sellerID}).
		OrderBy("created_at DESC"))
}

// IncrementCounter adds delta to a counter without letting it drop below zero.
func (r *propertyRepository) IncrementCounter(ctx context.Context, id uuid.UUID, counter domain.Counter, delta int) error {
	return incrementCounter(ctx, r.db, id, counter, delta)
}

func incrementCounter(ctx context.Context, q querier, id uuid.UUID, counter domain.Counter, delta int) error {
	query, args, err := counterUpdate(id, counter, delta)
	if err != nil {
		return err
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", counter, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// counterUpdate only interpolates whitelisted column names.
func counterUpdate(id uuid.UUID, counter domain.Counter, delta int) (string, []interface{}, error) {
	if !counter.Valid() {
		return "", nil, fmt.Errorf("unknown counter %q", counter)
	}

	col := string(counter)
	query, args, err := psql.Update("properties").
		Set(col, squirrel.Expr(fmt.Sprintf("GREATEST(%s + ?, 0)", col), delta)).
		Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("failed to build counter update: %w", err)
	}
	return query, args, nil
}

func (r *propertyRepository) SellerTotals(ctx context.Context, sellerID uuid.UUID) (*ports.PropertyTotals, error) {
	query, args, err := psql.Select(
		"COUNT(*)",
		"COUNT(*) FILTER (WHERE status = 'Active')",
		"COALESCE(SUM(likes_count), 0)",
		"COALESCE(SUM(views_count), 0)",
	).From("properties").Where(squirrel.Eq{"seller_id": sellerID}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build totals query: %w", err)
	}

	var t ports.PropertyTotals
	if err := r.db.QueryRow(ctx, query, args...).Scan(&t.Total, &t.Active, &t.Likes, &t.Views); err != nil {
		return nil, fmt.Errorf("failed to load seller totals: %w", err)
	}
	return &t, nil
}

func (r *propertyRepository) list(ctx context.Context, qb squirrel.SelectBuilder) ([]domain.Property, error) {
	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query properties: %w", err)
	}
	return collectProperties(rows)
}

func collectProperties(rows pgx.Rows) ([]domain.Property, error) {
	defer rows.Close()

	out := make([]domain.Property, 0)
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan property: %w", err)
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return out, nil
}

func scanProperty(row pgx.Row) (*domain.Property, error) {
	p := &domain.Property{}
	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.Location, &p.City, &p.Type,
		&p.Price, &p.Area, &p.Bedrooms, &p.Bathrooms, &p.Image, &p.Images, &p.Amenities,
		&p.SellerID, &p.SellerName, &p.SellerEmail, &p.SellerPhone,
		&p.Featured, &p.Verified, &p.Available, &p.Status,
		&p.LikesCount, &p.InterestsCount, &p.VisitsCount, &p.ViewsCount,
		&p.PostedDate, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

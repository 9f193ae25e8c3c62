// internal/core/services/catalog.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/amitabhanmolpain/realestate-be/internal/core/catalog"
	"github.com/amitabhanmolpain/realestate-be/internal/core/domain"
	"github.com/amitabhanmolpain/realestate-be/internal/core/ports"
)

const (
	snapshotKey       = "catalog:snapshot"
	featuredKeyPrefix = "catalog:featured:"
	catalogKeyPattern = "catalog:*"

	snapshotLoadTimeout = 30 * time.Second

	DefaultFeaturedLimit = 6
	MaxItemsPerPage      = 100
)

// CatalogOptions tunes the catalog read path
type CatalogOptions struct {
	SnapshotTTL    time.Duration
	FeaturedLimit  int
	DefaultPerPage int
}

func (o *CatalogOptions) withDefaults() {
	if o.SnapshotTTL <= 0 {
		o.SnapshotTTL = time.Minute
	}
	if o.FeaturedLimit <= 0 {
		o.FeaturedLimit = DefaultFeaturedLimit
	}
	if o.DefaultPerPage <= 0 {
		o.DefaultPerPage = catalog.DefaultItemsPerPage
	}
}

// CatalogService serves the buyer-facing catalog from a cached snapshot of
// available listings.
type CatalogService struct {
	repo   ports.PropertyRepository
	cache  ports.CacheRepository
	opts   CatalogOptions
	group  singleflight.Group
	logger *slog.Logger
}

var _ ports.CatalogService = (*CatalogService)(nil)

func NewCatalogService(repo ports.PropertyRepository, cache ports.CacheRepository, opts CatalogOptions, logger *slog.Logger) *CatalogService {
	opts.withDefaults()
	return &CatalogService{
		repo:   repo,
		cache:  cache,
		opts:   opts,
		logger: logger.With(slog.String("service", "catalog")),
	}
}

// Snapshot returns every available listing in default order. Concurrent
// misses share one database load. The load is detached from the caller that
// started it, so a cancelled request only abandons its own wait.
func (s *CatalogService) Snapshot(ctx context.Context) ([]domain.Property, error) {
	ch := s.group.DoChan(snapshotKey, func() (interface{}, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), snapshotLoadTimeout)
		defer cancel()

		var list []domain.Property
		err := s.cache.GetOrSet(loadCtx, snapshotKey, &list, func() (interface{}, error) {
			s.logger.DebugContext(loadCtx, "loading catalog snapshot")
			return s.repo.ListAvailable(loadCtx)
		}, s.opts.SnapshotTTL)
		if err != nil {
			return nil, err
		}
		return list, nil
	})

	var res singleflight.Result
	select {
	case res = <-ch:
	case <-ctx.Done():
		return nil, fmt.Errorf("failed to load catalog: %w", ctx.Err())
	}
	if res.Err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", res.Err)
	}

	list := res.Val.([]domain.Property)
	if res.Shared {
		// callers may reorder the result; don't hand out a shared backing array
		list = append([]domain.Property(nil), list...)
	}
	return list, nil
}

// Browse runs search, filters, sort and pagination over the snapshot.
func (s *CatalogService) Browse(ctx context.Context, params ports.BrowseParams) (*ports.BrowseResult, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PerPage < 1 {
		params.PerPage = s.opts.DefaultPerPage
	}
	if params.PerPage > MaxItemsPerPage {
		params.PerPage = MaxItemsPerPage
	}

	list, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	view := catalog.View{
		Query:        params.Query,
		Filters:      params.Filters,
		SortBy:       params.Sort,
		CurrentPage:  params.Page,
		ItemsPerPage: params.PerPage,
	}
	return toBrowseResult(view.Apply(list)), nil
}

func toBrowseResult(r catalog.Result) *ports.BrowseResult {
	return &ports.BrowseResult{
		Items: r.Items,
		Pagination: ports.Pagination{
			CurrentPage:  r.Page.Page,
			TotalPages:   r.TotalPages,
			TotalItems:   r.TotalCount,
			ItemsPerPage: r.PerPage,
		},
		PageNumbers: r.PageNumbers,
	}
}

// Featured returns up to limit featured listings, newest first.
func (s *CatalogService) Featured(ctx context.Context, limit int) ([]domain.Property, error) {
	if limit <= 0 {
		limit = s.opts.FeaturedLimit
	}

	var list []domain.Property
	err := s.cache.GetOrSet(ctx, featuredKeyPrefix+strconv.Itoa(limit), &list, func() (interface{}, error) {
		return s.repo.ListFeatured(ctx, limit)
	}, s.opts.SnapshotTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to load featured listings: %w", err)
	}
	if list == nil {
		list = []domain.Property{}
	}
	return list, nil
}

func (s *CatalogService) Get(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get property: %w", err)
	}
	return p, nil
}

// RecordView bumps the view counter. The snapshot is left alone so views
// don't churn the cache.
func (s *CatalogService) RecordView(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.IncrementCounter(ctx, id, domain.CounterViews, 1); err != nil {
		return fmt.Errorf("failed to record view: %w", err)
	}
	return nil
}

// Invalidate drops every cached catalog entry.
func (s *CatalogService) Invalidate(ctx context.Context) error {
	if err := s.cache.DeletePattern(ctx, catalogKeyPattern); err != nil {
		return fmt.Errorf("failed to invalidate catalog: %w", err)
	}
	s.logger.DebugContext(ctx, "catalog cache invalidated")
	return nil
}

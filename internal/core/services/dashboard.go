// internal/core/services/dashboard.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/amitabhanmolpain/realestate-be/internal/core/domain"
	"github.com/amitabhanmolpain/realestate-be/internal/core/ports"
)

const (
	DefaultActivityLimit = 10
	maxActivityLimit     = 50
	dashboardStatsTTL    = 30 * time.Second
)

// DashboardService aggregates seller insights
type DashboardService struct {
	properties ports.PropertyRepository
	interests  ports.InterestRepository
	visits     ports.VisitRepository
	cache      ports.CacheRepository
	logger     *slog.Logger
}

var _ ports.DashboardService = (*DashboardService)(nil)

func NewDashboardService(
	properties ports.PropertyRepository,
	interests ports.InterestRepository,
	visits ports.VisitRepository,
	cache ports.CacheRepository,
	logger *slog.Logger,
) *DashboardService {
	return &DashboardService{
		properties: properties,
		interests:  interests,
		visits:     visits,
		cache:      cache,
		logger:     logger.With(slog.String("service", "dashboard")),
	}
}

// Stats returns the seller's counters, cached for a short while.
func (s *DashboardService) Stats(ctx context.Context, seller domain.SessionUser) (*domain.SellerStats, error) {
	var stats domain.SellerStats
	key := "dashboard:" + seller.ID.String() + ":stats"

	err := s.cache.GetOrSet(ctx, key, &stats, func() (interface{}, error) {
		return s.computeStats(ctx, seller)
	}, dashboardStatsTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to load dashboard stats: %w", err)
	}
	return &stats, nil
}

func (s *DashboardService) computeStats(ctx context.Context, seller domain.SessionUser) (*domain.SellerStats, error) {
	totals, err := s.properties.SellerTotals(ctx, seller.ID)
	if err != nil {
		return nil, err
	}
	interests, err := s.interests.CountBySeller(ctx, seller.ID)
	if err != nil {
		return nil, err
	}
	visits, err := s.visits.CountBySeller(ctx, seller.ID)
	if err != nil {
		return nil, err
	}

	stats := &domain.SellerStats{
		TotalProperties:  totals.Total,
		ActiveProperties: totals.Active,
		TotalLikes:       totals.Likes,
		TotalViews:       totals.Views,
		NewInterests:     interests[domain.InterestNew],
		PendingVisits:    visits[domain.VisitPending],
		ConfirmedVisits:  visits[domain.VisitConfirmed],
	}
	for _, n := range interests {
		stats.TotalInterests += n
	}
	for _, n := range visits {
		stats.TotalVisits += n
	}
	return stats, nil
}

// RecentActivity merges interests and visit bookings, newest first.
func (s *DashboardService) RecentActivity(ctx context.Context, seller domain.SessionUser, limit int) ([]domain.Activity, error) {
	if limit <= 0 {
		limit = DefaultActivityLimit
	}
	if limit > maxActivityLimit {
		limit = maxActivityLimit
	}

	interests, err := s.interests.ListBySeller(ctx, seller.ID, nil, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load interests: %w", err)
	}
	visits, err := s.visits.ListBySeller(ctx, seller.ID, nil, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load visits: %w", err)
	}

	feed := make([]domain.Activity, 0, len(interests)+len(visits))
	for _, i := range interests {
		feed = append(feed, domain.Activity{
			Kind:          domain.ActivityInterest,
			UserName:      i.UserName,
			PropertyID:    i.PropertyID,
			PropertyTitle: i.PropertyTitle,
			CreatedAt:     i.CreatedAt,
			Message:       i.Message,
			Status:        string(i.Status),
		})
	}
	for _, v := range visits {
		date := v.VisitDate
		feed = append(feed, domain.Activity{
			Kind:          domain.ActivityVisit,
			UserName:      v.VisitorName,
			PropertyID:    v.PropertyID,
			PropertyTitle: v.PropertyTitle,
			CreatedAt:     v.CreatedAt,
			VisitDate:     &date,
			VisitTime:     v.VisitTime,
			Status:        string(v.Status),
		})
	}

	slices.SortStableFunc(feed, func(a, b domain.Activity) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	if len(feed) > limit {
		feed = feed[:limit]
	}
	return feed, nil
}

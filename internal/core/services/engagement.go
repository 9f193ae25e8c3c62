// internal/core/services/engagement.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/amitabhanmolpain/realestate-be/internal/core/catalog"
	"github.com/amitabhanmolpain/realestate-be/internal/core/domain"
	"github.com/amitabhanmolpain/realestate-be/internal/core/ports"
)

const (
	LikedPerPage    = 12
	visitDateLayout = "2006-01-02"
)

// EngagementService handles likes, buyer interests and visit bookings
type EngagementService struct {
	properties ports.PropertyRepository
	likes      ports.LikeRepository
	interests  ports.InterestRepository
	visits     ports.VisitRepository
	users      ports.UserRepository
	tasks      ports.TaskQueue
	now        func() time.Time
	logger     *slog.Logger
}

var _ ports.EngagementService = (*EngagementService)(nil)

func NewEngagementService(
	properties ports.PropertyRepository,
	likes ports.LikeRepository,
	interests ports.InterestRepository,
	visits ports.VisitRepository,
	users ports.UserRepository,
	tasks ports.TaskQueue,
	logger *slog.Logger,
) *EngagementService {
	return &EngagementService{
		properties: properties,
		likes:      likes,
		interests:  interests,
		visits:     visits,
		users:      users,
		tasks:      tasks,
		now:        time.Now,
		logger:     logger.With(slog.String("service", "engagement")),
	}
}

// Like adds the listing to the user's likes and returns the new like count.
// Liking twice is a no-op.
func (s *EngagementService) Like(ctx context.Context, user domain.SessionUser, propertyID uuid.UUID) (int, error) {
	p, err := s.properties.FindByID(ctx, propertyID)
	if err != nil {
		return 0, fmt.Errorf("failed to load listing: %w", err)
	}

	changed, err := s.likes.Add(ctx, user.ID, propertyID)
	if err != nil {
		return 0, fmt.Errorf("failed to like listing: %w", err)
	}
	if changed {
		return p.LikesCount + 1, nil
	}
	return p.LikesCount, nil
}

// Unlike removes the listing from the user's likes; the count never drops
// below zero.
func (s *EngagementService) Unlike(ctx context.Context, user domain.SessionUser, propertyID uuid.UUID) (int, error) {
	p, err := s.properties.FindByID(ctx, propertyID)
	if err != nil {
		return 0, fmt.Errorf("failed to load listing: %w", err)
	}

	changed, err := s.likes.Remove(ctx, user.ID, propertyID)
	if err != nil {
		return 0, fmt.Errorf("failed to unlike listing: %w", err)
	}
	if changed && p.LikesCount > 0 {
		return p.LikesCount - 1, nil
	}
	return p.LikesCount, nil
}

func (s *EngagementService) Liked(ctx context.Context, user domain.SessionUser, page int) (*ports.BrowseResult, error) {
	if page < 1 {
		page = 1
	}

	list, total, err := s.likes.ListProperties(ctx, user.ID, LikedPerPage, (page-1)*LikedPerPage)
	if err != nil {
		return nil, fmt.Errorf("failed to list liked properties: %w", err)
	}
	if list == nil {
		list = []domain.Property{}
	}

	totalPages := catalog.TotalPages(total, LikedPerPage)
	return &ports.BrowseResult{
		Items: list,
		Pagination: ports.Pagination{
			CurrentPage:  page,
			TotalPages:   totalPages,
			TotalItems:   total,
			ItemsPerPage: LikedPerPage,
		},
		PageNumbers: catalog.PageNumbers(page, totalPages),
	}, nil
}

func (s *EngagementService) LikedIDs(ctx context.Context, user domain.SessionUser) ([]uuid.UUID, error) {
	ids, err := s.likes.PropertyIDs(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list liked ids: %w", err)
	}
	return ids, nil
}

// ExpressInterest records a buyer's interest, once per listing, and notifies
// the seller.
func (s *EngagementService) ExpressInterest(ctx context.Context, user domain.SessionUser, propertyID uuid.UUID, req ports.InterestRequest) (*domain.Interest, error) {
	p, err := s.sellerListing(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	exists, err := s.interests.Exists(ctx, user.ID, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to check interest: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: interest already recorded for this property", domain.ErrConflict)
	}

	phone := strings.TrimSpace(req.Phone)
	if phone == "" {
		if u, err := s.users.FindByID(ctx, user.ID); err == nil {
			phone = u.Phone
		}
	}

	interest := &domain.Interest{
		ID:               uuid.New(),
		PropertyID:       propertyID,
		UserID:           user.ID,
		SellerID:         *p.SellerID,
		UserName:         user.Name,
		UserEmail:        user.Email,
		UserPhone:        phone,
		Message:          strings.TrimSpace(req.Message),
		Type:             req.Type,
		Status:           domain.InterestNew,
		PropertyTitle:    p.Title,
		PropertyImage:    p.Image,
		PropertyLocation: p.Location,
		CreatedAt:        s.now().UTC(),
	}
	if err := interest.Validate(); err != nil {
		return nil, err
	}

	if err := s.interests.Save(ctx, interest); err != nil {
		return nil, fmt.Errorf("failed to save interest: %w", err)
	}

	if err := s.tasks.NotifyInterest(ctx, interest); err != nil {
		s.logger.WarnContext(ctx, "failed to enqueue interest notification",
			slog.String("interest_id", interest.ID.String()),
			slog.String("error", err.Error()))
	}
	return interest, nil
}

func (s *EngagementService) SellerInterests(ctx context.Context, seller domain.SessionUser, status *domain.InterestStatus) ([]domain.Interest, error) {
	if status != nil && !status.Valid() {
		return nil, fmt.Errorf("%w: unknown interest status %q", domain.ErrInvalidInput, *status)
	}
	list, err := s.interests.ListBySeller(ctx, seller.ID, status, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list interests: %w", err)
	}
	return list, nil
}

func (s *EngagementService) UpdateInterestStatus(ctx context.Context, seller domain.SessionUser, id uuid.UUID, status domain.InterestStatus) (*domain.Interest, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown interest status %q", domain.ErrInvalidInput, status)
	}

	interest, err := s.interests.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load interest: %w", err)
	}
	if interest.SellerID != seller.ID {
		return nil, fmt.Errorf("%w: interest belongs to another seller", domain.ErrForbidden)
	}

	if err := s.interests.UpdateStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("failed to update interest: %w", err)
	}
	interest.Status = status
	return interest, nil
}

// ScheduleVisit books a visit. A user may hold only one pending or confirmed
// visit per listing.
func (s *EngagementService) ScheduleVisit(ctx context.Context, user domain.SessionUser, propertyID uuid.UUID, req ports.VisitRequest) (*domain.Visit, error) {
	date, err := time.Parse(visitDateLayout, strings.TrimSpace(req.VisitDate))
	if err != nil {
		return nil, fmt.Errorf("%w: visit_date must be YYYY-MM-DD", domain.ErrInvalidInput)
	}
	today := s.now().UTC().Truncate(24 * time.Hour)
	if date.Before(today) {
		return nil, fmt.Errorf("%w: visit_date is in the past", domain.ErrInvalidInput)
	}

	p, err := s.sellerListing(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	open, err := s.visits.HasOpenVisit(ctx, user.ID, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to check visits: %w", err)
	}
	if open {
		return nil, fmt.Errorf("%w: a visit is already scheduled for this property", domain.ErrConflict)
	}

	now := s.now().UTC()
	visit := &domain.Visit{
		ID:               uuid.New(),
		PropertyID:       propertyID,
		UserID:           user.ID,
		SellerID:         *p.SellerID,
		VisitorName:      firstNonEmpty(req.VisitorName, user.Name),
		VisitorEmail:     firstNonEmpty(req.VisitorEmail, user.Email),
		VisitorPhone:     strings.TrimSpace(req.VisitorPhone),
		VisitDate:        date,
		VisitTime:        strings.TrimSpace(req.VisitTime),
		Notes:            strings.TrimSpace(req.Notes),
		Status:           domain.VisitPending,
		PropertyTitle:    p.Title,
		PropertyImage:    p.Image,
		PropertyLocation: p.Location,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := visit.Validate(); err != nil {
		return nil, err
	}

	if err := s.visits.Save(ctx, visit); err != nil {
		return nil, fmt.Errorf("failed to save visit: %w", err)
	}

	if err := s.tasks.NotifyVisit(ctx, visit); err != nil {
		s.logger.WarnContext(ctx, "failed to enqueue visit notification",
			slog.String("visit_id", visit.ID.String()),
			slog.String("error", err.Error()))
	}
	return visit, nil
}

func (s *EngagementService) UserVisits(ctx context.Context, user domain.SessionUser) ([]domain.Visit, error) {
	list, err := s.visits.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list visits: %w", err)
	}
	return list, nil
}

func (s *EngagementService) SellerVisits(ctx context.Context, seller domain.SessionUser, status *domain.VisitStatus) ([]domain.Visit, error) {
	if status != nil && !status.Valid() {
		return nil, fmt.Errorf("%w: unknown visit status %q", domain.ErrInvalidInput, *status)
	}
	list, err := s.visits.ListBySeller(ctx, seller.ID, status, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list visits: %w", err)
	}
	return list, nil
}

func (s *EngagementService) UpdateVisitStatus(ctx context.Context, seller domain.SessionUser, id uuid.UUID, status domain.VisitStatus) (*domain.Visit, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown visit status %q", domain.ErrInvalidInput, status)
	}

	visit, err := s.visits.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load visit: %w", err)
	}
	if visit.SellerID != seller.ID {
		return nil, fmt.Errorf("%w: visit belongs to another seller", domain.ErrForbidden)
	}

	if err := s.visits.UpdateStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("failed to update visit: %w", err)
	}
	visit.Status = status
	visit.UpdatedAt = s.now().UTC()
	return visit, nil
}

// sellerListing loads a listing that can receive buyer requests.
func (s *EngagementService) sellerListing(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	p, err := s.properties.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load listing: %w", err)
	}
	if p.SellerID == nil {
		return nil, fmt.Errorf("%w: listing has no seller", domain.ErrInvalidInput)
	}
	return p, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

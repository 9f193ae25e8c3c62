// internal/core/ports/services.go
package ports

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/amitabhanmolpain/realestate-be/internal/core/catalog"
	"github.com/amitabhanmolpain/realestate-be/internal/core/domain"
)

// CatalogService is the buyer-facing read side of the marketplace.
type CatalogService interface {
	Browse(ctx context.Context, params BrowseParams) (*BrowseResult, error)
	Featured(ctx context.Context, limit int) ([]domain.Property, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Property, error)
	RecordView(ctx context.Context, id uuid.UUID) error
	Snapshot(ctx context.Context) ([]domain.Property, error)
	Invalidate(ctx context.Context) error
}

// BrowseParams carries one recompute request of a catalog view.
type BrowseParams struct {
	Query   string
	Filters domain.FilterSet
	Sort    domain.SortKey
	Page    int
	PerPage int
}

// BrowseResult is the page a buyer sees
type BrowseResult struct {
	Items       []domain.Property  `json:"properties"`
	Pagination  Pagination         `json:"pagination"`
	PageNumbers []catalog.PageLink `json:"page_numbers"`
}

// Pagination mirrors the listing envelope returned by every paged endpoint
type Pagination struct {
	CurrentPage  int `json:"current_page"`
	TotalPages   int `json:"total_pages"`
	TotalItems   int `json:"total_items"`
	ItemsPerPage int `json:"items_per_page"`
}

// ListingService manages a seller's own listings.
type ListingService interface {
	Create(ctx context.Context, seller domain.SessionUser, p *domain.Property) error
	Update(ctx context.Context, seller domain.SessionUser, id uuid.UUID, u domain.PropertyUpdate) (*domain.Property, error)
	Delete(ctx context.Context, seller domain.SessionUser, id uuid.UUID) error
	ListMine(ctx context.Context, seller domain.SessionUser) ([]domain.Property, error)
	UploadImage(ctx context.Context, seller domain.SessionUser, id uuid.UUID, filename, contentType string, body io.Reader) (*domain.Property, error)
	UploadBrochure(ctx context.Context, seller domain.SessionUser, id uuid.UUID, body io.Reader) (string, error)
	Import(ctx context.Context, seller domain.SessionUser, ps []domain.Property) (*ImportResult, error)
	EnrichFromBrochure(ctx context.Context, id uuid.UUID, amenities []string) error
}

// ImportResult summarizes a bulk listing import
type ImportResult struct {
	Imported int      `json:"imported"`
	Rejected int      `json:"rejected"`
	Errors   []string `json:"errors,omitempty"`
}

// EngagementService handles likes, interests and visits.
type EngagementService interface {
	Like(ctx context.Context, user domain.SessionUser, propertyID uuid.UUID) (int, error)
	Unlike(ctx context.Context, user domain.SessionUser, propertyID uuid.UUID) (int, error)
	Liked(ctx context.Context, user domain.SessionUser, page int) (*BrowseResult, error)
	LikedIDs(ctx context.Context, user domain.SessionUser) ([]uuid.UUID, error)

	ExpressInterest(ctx context.Context, user domain.SessionUser, propertyID uuid.UUID, req InterestRequest) (*domain.Interest, error)
	SellerInterests(ctx context.Context, seller domain.SessionUser, status *domain.InterestStatus) ([]domain.Interest, error)
	UpdateInterestStatus(ctx context.Context, seller domain.SessionUser, id uuid.UUID, status domain.InterestStatus) (*domain.Interest, error)

	ScheduleVisit(ctx context.Context, user domain.SessionUser, propertyID uuid.UUID, req VisitRequest) (*domain.Visit, error)
	UserVisits(ctx context.Context, user domain.SessionUser) ([]domain.Visit, error)
	SellerVisits(ctx context.Context, seller domain.SessionUser, status *domain.VisitStatus) ([]domain.Visit, error)
	UpdateVisitStatus(ctx context.Context, seller domain.SessionUser, id uuid.UUID, status domain.VisitStatus) (*domain.Visit, error)
}

// InterestRequest is the buyer-supplied part of an interest
type InterestRequest struct {
	Phone   string              `json:"phone"`
	Message string              `json:"message"`
	Type    domain.InterestType `json:"interest_type"`
}

// VisitRequest is the buyer-supplied part of a visit booking
type VisitRequest struct {
	VisitorName  string `json:"visitor_name"`
	VisitorEmail string `json:"visitor_email"`
	VisitorPhone string `json:"visitor_phone"`
	VisitDate    string `json:"visit_date"`
	VisitTime    string `json:"visit_time"`
	Notes        string `json:"notes"`
}

// DashboardService aggregates seller insights.
type DashboardService interface {
	Stats(ctx context.Context, seller domain.SessionUser) (*domain.SellerStats, error)
	RecentActivity(ctx context.Context, seller domain.SessionUser, limit int) ([]domain.Activity, error)
}

// AuthService owns the session lifecycle.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.Session, error)
	Login(ctx context.Context, email, password string) (*domain.Session, error)
	Authenticate(ctx context.Context, token string) (*domain.Session, error)
	Logout(ctx context.Context, session *domain.Session) error
}

// internal/core/ports/repositories.go
package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/amitabhanmolpain/realestate-be/internal/core/domain"
)

// PropertyRepository defines the persistence port for listings.
// Lookups of a missing row return domain.ErrNotFound.
type PropertyRepository interface {
	Save(ctx context.Context, p *domain.Property) error
	SaveBatch(ctx context.Context, ps []domain.Property) error
	Update(ctx context.Context, p *domain.Property) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Property, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Property, error)
	// ListAvailable returns every available listing; it is the catalog snapshot.
	ListAvailable(ctx context.Context) ([]domain.Property, error)
	ListFeatured(ctx context.Context, limit int) ([]domain.Property, error)
	ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]domain.Property, error)
	IncrementCounter(ctx context.Context, id uuid.UUID, counter domain.Counter, delta int) error
	SellerTotals(ctx context.Context, sellerID uuid.UUID) (*PropertyTotals, error)
}

// PropertyTotals aggregates a seller's listing counters
type PropertyTotals struct {
	Total  int
	Active int
	Likes  int
	Views  int
}

// UserRepository defines the persistence port for accounts.
type UserRepository interface {
	Save(ctx context.Context, u *domain.User) error
	Update(ctx context.Context, u *domain.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

// LikeRepository stores the liked-properties set of each user.
// Add and Remove report whether the set changed.
type LikeRepository interface {
	Add(ctx context.Context, userID, propertyID uuid.UUID) (bool, error)
	Remove(ctx context.Context, userID, propertyID uuid.UUID) (bool, error)
	PropertyIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	ListProperties(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Property, int, error)
}

// VisitRepository defines the persistence port for scheduled visits.
type VisitRepository interface {
	Save(ctx context.Context, v *domain.Visit) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Visit, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.VisitStatus) error
	HasOpenVisit(ctx context.Context, userID, propertyID uuid.UUID) (bool, error)
	ListBySeller(ctx context.Context, sellerID uuid.UUID, status *domain.VisitStatus, limit int) ([]domain.Visit, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Visit, error)
	CountBySeller(ctx context.Context, sellerID uuid.UUID) (map[domain.VisitStatus]int, error)
	ExpirePending(ctx context.Context, before time.Time) (int64, error)
}

// InterestRepository defines the persistence port for buyer interests.
type InterestRepository interface {
	Save(ctx context.Context, i *domain.Interest) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Interest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.InterestStatus) error
	Exists(ctx context.Context, userID, propertyID uuid.UUID) (bool, error)
	ListBySeller(ctx context.Context, sellerID uuid.UUID, status *domain.InterestStatus, limit int) ([]domain.Interest, error)
	CountBySeller(ctx context.Context, sellerID uuid.UUID) (map[domain.InterestStatus]int, error)
}

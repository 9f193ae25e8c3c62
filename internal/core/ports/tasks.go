// internal/core/ports/tasks.go
package ports

import (
	"context"

	"github.com/amitabhanmolpain/realestate-be/internal/core/domain"
)

// TaskQueue hands work to the background worker.
type TaskQueue interface {
	NotifyInterest(ctx context.Context, interest *domain.Interest) error
	NotifyVisit(ctx context.Context, visit *domain.Visit) error
	RefreshCatalog(ctx context.Context) error
	ImportListings(ctx context.Context, seller domain.SessionUser, objectKey string) error
	ExtractBrochure(ctx context.Context, propertyID string, objectKey string) error
}

// internal/workers/catalog_processor.go
package workers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/amitabhanmolpain/realestate-be/internal/core/ports"
)

// CatalogProcessor rebuilds the cached catalog snapshot
type CatalogProcessor struct {
	catalog ports.CatalogService
	logger  *slog.Logger
}

// NewCatalogProcessor creates a new catalog processor
func NewCatalogProcessor(catalog ports.CatalogService, logger *slog.Logger) *CatalogProcessor {
	return &CatalogProcessor{
		catalog: catalog,
		logger:  logger.With(slog.String("processor", "catalog")),
	}
}

// RefreshCatalog drops the cached snapshot and warms a fresh one so the
// next buyer request does not pay for the rebuild.
func (p *CatalogProcessor) RefreshCatalog(ctx context.Context, t *asynq.Task) error {
	start := time.Now()

	if err := p.catalog.Invalidate(ctx); err != nil {
		return fmt.Errorf("failed to invalidate catalog: %w", err)
	}

	snapshot, err := p.catalog.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("failed to rebuild catalog: %w", err)
	}

	p.logger.InfoContext(ctx, "catalog refreshed",
		slog.Int("properties", len(snapshot)),
		slog.Duration("took", time.Since(start)))
	return nil
}

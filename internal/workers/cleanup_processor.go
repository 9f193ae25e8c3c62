// internal/workers/cleanup_processor.go
package workers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/amitabhanmolpain/realestate-be/internal/core/ports"
)

// importsPrefix is where the import handler stages spreadsheets.
const importsPrefix = "imports/"

// CleanupProcessor handles periodic housekeeping
type CleanupProcessor struct {
	visits    ports.VisitRepository
	storage   ports.ObjectStorage
	importTTL time.Duration
	now       func() time.Time
	logger    *slog.Logger
}

// NewCleanupProcessor creates a new cleanup processor. Staged imports older
// than importTTL are removed.
func NewCleanupProcessor(visits ports.VisitRepository, storage ports.ObjectStorage, importTTL time.Duration, logger *slog.Logger) *CleanupProcessor {
	if importTTL <= 0 {
		importTTL = 24 * time.Hour
	}
	return &CleanupProcessor{
		visits:    visits,
		storage:   storage,
		importTTL: importTTL,
		now:       time.Now,
		logger:    logger.With(slog.String("processor", "cleanup")),
	}
}

// ExpireVisits cancels pending visit requests whose date has passed.
func (p *CleanupProcessor) ExpireVisits(ctx context.Context, t *asynq.Task) error {
	now := p.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	n, err := p.visits.ExpirePending(ctx, today)
	if err != nil {
		return fmt.Errorf("failed to expire visits: %w", err)
	}

	p.logger.InfoContext(ctx, "stale visit requests cancelled",
		slog.Int64("visits_cancelled", n))
	return nil
}

// CleanupImports removes staged spreadsheets the import worker never
// consumed.
func (p *CleanupProcessor) CleanupImports(ctx context.Context, t *asynq.Task) error {
	objects, err := p.storage.List(ctx, importsPrefix)
	if err != nil {
		return fmt.Errorf("failed to list staged imports: %w", err)
	}

	cutoff := p.now().Add(-p.importTTL)
	var deleted int
	for _, obj := range objects {
		if obj.LastModified.After(cutoff) {
			continue
		}
		if err := p.storage.Delete(ctx, obj.Key); err != nil {
			p.logger.WarnContext(ctx, "failed to delete staged import",
				slog.String("key", obj.Key),
				slog.String("error", err.Error()))
			continue
		}
		deleted++
	}

	p.logger.InfoContext(ctx, "staged imports cleaned up",
		slog.Int("files_deleted", deleted))
	return nil
}

// SetClock overrides the processor clock. Used in tests.
func (p *CleanupProcessor) SetClock(now func() time.Time) {
	p.now = now
}

// internal/workers/excel_processor.go
package workers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/amitabhanmolpain/realestate-be/internal/core/ports"
	"github.com/amitabhanmolpain/realestate-be/internal/pkg/sheet"
)

// ExcelProcessor creates listings from uploaded spreadsheets
type ExcelProcessor struct {
	listings ports.ListingService
	storage  ports.ObjectStorage
	logger   *slog.Logger
}

// NewExcelProcessor creates a new Excel processor
func NewExcelProcessor(listings ports.ListingService, storage ports.ObjectStorage, logger *slog.Logger) *ExcelProcessor {
	return &ExcelProcessor{
		listings: listings,
		storage:  storage,
		logger:   logger.With(slog.String("processor", "excel")),
	}
}

// ProcessImport handles TypeListingImport. Rows that fail to parse or
// validate are reported and skipped; the rest are created. The staged file
// is removed once the import has run.
func (p *ExcelProcessor) ProcessImport(ctx context.Context, t *asynq.Task) error {
	var payload ImportPayload
	if err := decode(t, &payload); err != nil {
		return err
	}

	p.logger.InfoContext(ctx, "processing listing import",
		slog.String("seller_id", payload.Seller.ID.String()),
		slog.String("object_key", payload.ObjectKey))

	data, err := p.storage.Download(ctx, payload.ObjectKey)
	if err != nil {
		return fmt.Errorf("failed to download import file: %w", skipIfNotFound(err))
	}

	rows, rowErrs, err := sheet.Read(data)
	if err != nil {
		p.discard(ctx, payload.ObjectKey)
		if errors.Is(err, sheet.ErrNoRows) {
			p.logger.WarnContext(ctx, "import file has no listings",
				slog.String("object_key", payload.ObjectKey))
			return nil
		}
		return fmt.Errorf("failed to read import file: %v: %w", err, asynq.SkipRetry)
	}

	result := &ports.ImportResult{}
	if len(rows) > 0 {
		result, err = p.listings.Import(ctx, payload.Seller, rows)
		if err != nil {
			return fmt.Errorf("failed to import listings: %w", err)
		}
	}

	for _, re := range rowErrs {
		result.Rejected++
		result.Errors = append(result.Errors, re.Error())
	}

	p.discard(ctx, payload.ObjectKey)

	p.logger.InfoContext(ctx, "listing import completed",
		slog.String("seller_id", payload.Seller.ID.String()),
		slog.Int("imported", result.Imported),
		slog.Int("rejected", result.Rejected),
		slog.Any("errors", result.Errors))
	return nil
}

func (p *ExcelProcessor) discard(ctx context.Context, key string) {
	if err := p.storage.Delete(ctx, key); err != nil {
		p.logger.WarnContext(ctx, "failed to remove import file",
			slog.String("object_key", key),
			slog.String("error", err.Error()))
	}
}

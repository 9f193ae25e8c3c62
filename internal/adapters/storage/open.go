// internal/adapters/storage/open.go
package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/amitabhanmolpain/realestate-be/internal/core/ports"
)

const (
	DriverLocal = "local"
	DriverS3    = "s3"
)

// Open returns the backend named by driver. The local driver stores files
// under localPath and publishes them below cfg.PublicBaseURL.
func Open(ctx context.Context, driver, localPath string, cfg *S3Config, logger *slog.Logger) (ports.ObjectStorage, error) {
	switch driver {
	case DriverS3:
		return NewS3Storage(ctx, cfg, logger)
	case DriverLocal, "":
		return NewLocalStorage(localPath, cfg.PublicBaseURL, logger)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}

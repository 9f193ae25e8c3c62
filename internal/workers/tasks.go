// internal/workers/tasks.go
package workers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/amitabhanmolpain/realestate-be/internal/core/domain"
	"github.com/amitabhanmolpain/realestate-be/internal/core/ports"
)

const (
	TypeNotifyInterest  = "notify:interest"
	TypeNotifyVisit     = "notify:visit"
	TypeCatalogRefresh  = "catalog:refresh"
	TypeListingImport   = "listings:import"
	TypeBrochureExtract = "brochure:extract"
	TypeExpireVisits    = "cleanup:visits"
	TypeCleanupImports  = "cleanup:imports"
)

const (
	QueueCritical = "critical"
	QueueDefault  = "default"
	QueueLow      = "low"
)

// InterestPayload carries a freshly recorded buyer interest
type InterestPayload struct {
	Interest domain.Interest `json:"interest"`
}

// VisitPayload carries a freshly booked visit
type VisitPayload struct {
	Visit domain.Visit `json:"visit"`
}

// ImportPayload points at a staged listing spreadsheet
type ImportPayload struct {
	Seller    domain.SessionUser `json:"seller"`
	ObjectKey string             `json:"object_key"`
}

// BrochurePayload points at a stored listing brochure
type BrochurePayload struct {
	PropertyID string `json:"property_id"`
	ObjectKey  string `json:"object_key"`
}

// Client is the part of *asynq.Client the enqueuer needs.
type Client interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Enqueuer hands work to the worker through asynq.
type Enqueuer struct {
	client   Client
	retryMax int
	logger   *slog.Logger
}

var _ ports.TaskQueue = (*Enqueuer)(nil)

// NewEnqueuer creates a task queue backed by client
func NewEnqueuer(client Client, retryMax int, logger *slog.Logger) *Enqueuer {
	if retryMax <= 0 {
		retryMax = 3
	}
	return &Enqueuer{
		client:   client,
		retryMax: retryMax,
		logger:   logger.With(slog.String("component", "enqueuer")),
	}
}

func (e *Enqueuer) NotifyInterest(ctx context.Context, interest *domain.Interest) error {
	return e.enqueue(ctx, TypeNotifyInterest, InterestPayload{Interest: *interest},
		asynq.Queue(QueueCritical),
		asynq.TaskID("interest:"+interest.ID.String()))
}

func (e *Enqueuer) NotifyVisit(ctx context.Context, visit *domain.Visit) error {
	return e.enqueue(ctx, TypeNotifyVisit, VisitPayload{Visit: *visit},
		asynq.Queue(QueueCritical),
		asynq.TaskID("visit:"+visit.ID.String()))
}

// RefreshCatalog collapses refresh requests made within the same minute.
func (e *Enqueuer) RefreshCatalog(ctx context.Context) error {
	return e.enqueue(ctx, TypeCatalogRefresh, struct{}{},
		asynq.Queue(QueueLow),
		asynq.Unique(time.Minute))
}

func (e *Enqueuer) ImportListings(ctx context.Context, seller domain.SessionUser, objectKey string) error {
	return e.enqueue(ctx, TypeListingImport, ImportPayload{Seller: seller, ObjectKey: objectKey},
		asynq.Queue(QueueDefault),
		asynq.Timeout(5*time.Minute))
}

func (e *Enqueuer) ExtractBrochure(ctx context.Context, propertyID string, objectKey string) error {
	return e.enqueue(ctx, TypeBrochureExtract, BrochurePayload{PropertyID: propertyID, ObjectKey: objectKey},
		asynq.Queue(QueueDefault),
		asynq.Timeout(2*time.Minute))
}

func (e *Enqueuer) enqueue(ctx context.Context, taskType string, payload interface{}, opts ...asynq.Option) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", taskType, err)
	}

	opts = append(opts, asynq.MaxRetry(e.retryMax))
	info, err := e.client.EnqueueContext(ctx, asynq.NewTask(taskType, b), opts...)
	switch {
	case errors.Is(err, asynq.ErrDuplicateTask), errors.Is(err, asynq.ErrTaskIDConflict):
		e.logger.DebugContext(ctx, "task already queued", slog.String("type", taskType))
		return nil
	case err != nil:
		return fmt.Errorf("failed to enqueue %s: %w", taskType, err)
	}

	e.logger.DebugContext(ctx, "task enqueued",
		slog.String("type", taskType),
		slog.String("task_id", info.ID),
		slog.String("queue", info.Queue))
	return nil
}

func decode(t *asynq.Task, dst interface{}) error {
	if err := json.Unmarshal(t.Payload(), dst); err != nil {
		// a malformed payload never becomes valid on retry
		return fmt.Errorf("failed to unmarshal payload: %v: %w", err, asynq.SkipRetry)
	}
	return nil
}

// skipIfNotFound stops retries for records that no longer exist.
func skipIfNotFound(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("%w: %w", err, asynq.SkipRetry)
	}
	return err
}

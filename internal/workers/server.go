// internal/workers/server.go
package workers

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/hibiken/asynq"

	"github.com/amitabhanmolpain/realestate-be/internal/pkg/logger"
)

// Processors groups the task handlers run by the worker
type Processors struct {
	Notifications *NotificationProcessor
	Catalog       *CatalogProcessor
	Excel         *ExcelProcessor
	Brochure      *BrochureProcessor
	Cleanup       *CleanupProcessor
}

// Register binds every task type to its handler.
func (p Processors) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(TypeNotifyInterest, p.Notifications.NotifyInterest)
	mux.HandleFunc(TypeNotifyVisit, p.Notifications.NotifyVisit)
	mux.HandleFunc(TypeCatalogRefresh, p.Catalog.RefreshCatalog)
	mux.HandleFunc(TypeListingImport, p.Excel.ProcessImport)
	mux.HandleFunc(TypeBrochureExtract, p.Brochure.ProcessBrochure)
	mux.HandleFunc(TypeExpireVisits, p.Cleanup.ExpireVisits)
	mux.HandleFunc(TypeCleanupImports, p.Cleanup.CleanupImports)
}

// TaskContext tags the context of every task with its id so handler logs
// can be correlated.
func TaskContext(next asynq.Handler) asynq.Handler {
	return asynq.HandlerFunc(func(ctx context.Context, t *asynq.Task) error {
		if id, ok := asynq.GetTaskID(ctx); ok {
			ctx = logger.WithTaskID(ctx, id)
		}
		return next.ProcessTask(ctx, t)
	})
}

// Schedules holds the cron specs of the periodic tasks. An empty spec
// disables the task.
type Schedules struct {
	ExpireVisits   string
	CatalogRefresh string
	CleanupImports string
}

// Registrar is the part of *asynq.Scheduler used to register periodic tasks.
type Registrar interface {
	Register(cronspec string, task *asynq.Task, opts ...asynq.Option) (string, error)
}

// RegisterPeriodic registers the periodic tasks named in s.
func RegisterPeriodic(r Registrar, s Schedules) error {
	entries := []struct {
		spec     string
		taskType string
		queue    string
	}{
		{s.ExpireVisits, TypeExpireVisits, QueueLow},
		{s.CatalogRefresh, TypeCatalogRefresh, QueueLow},
		{s.CleanupImports, TypeCleanupImports, QueueLow},
	}

	for _, e := range entries {
		if e.spec == "" {
			continue
		}
		if _, err := r.Register(e.spec, asynq.NewTask(e.taskType, nil), asynq.Queue(e.queue)); err != nil {
			return fmt.Errorf("failed to schedule %s: %w", e.taskType, err)
		}
	}
	return nil
}

// ErrorHandler logs tasks that failed.
func ErrorHandler(l *slog.Logger) asynq.ErrorHandler {
	return asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
		retried, _ := asynq.GetRetryCount(ctx)
		maxRetry, _ := asynq.GetMaxRetry(ctx)
		l.ErrorContext(ctx, "task processing failed",
			slog.String("type", task.Type()),
			slog.Int("retry", retried),
			slog.Int("max_retry", maxRetry),
			slog.String("error", err.Error()))
	})
}

// ExponentialBackoff doubles the delay per retry up to ten minutes.
func ExponentialBackoff(n int, _ error, _ *asynq.Task) time.Duration {
	const maxDelay = 10 * time.Minute
	if n >= 20 {
		return maxDelay
	}
	delay := time.Second * time.Duration(1<<uint(n))
	if delay > maxDelay {
		delay = maxDelay
	}
	return delay
}

// asynqLogger adapts slog for Asynq
type asynqLogger struct {
	logger *slog.Logger
}

// NewAsynqLogger bridges asynq's internal logging onto l.
func NewAsynqLogger(l *slog.Logger) asynq.Logger {
	return &asynqLogger{
		logger: l.With(slog.String("component", "asynq")),
	}
}

func (l *asynqLogger) Debug(args ...interface{}) {
	l.logger.Debug(fmt.Sprint(args...))
}

func (l *asynqLogger) Info(args ...interface{}) {
	l.logger.Info(fmt.Sprint(args...))
}

func (l *asynqLogger) Warn(args ...interface{}) {
	l.logger.Warn(fmt.Sprint(args...))
}

func (l *asynqLogger) Error(args ...interface{}) {
	l.logger.Error(fmt.Sprint(args...))
}

func (l *asynqLogger) Fatal(args ...interface{}) {
	l.logger.Error(fmt.Sprint(args...))
	os.Exit(1)
}

// internal/handlers/health.go
package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"runtime"
	"sync"
	"time"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	redis_a "github.com/amitabhanmolpain/realestate-be/internal/adapters/redis_adapter"
	"github.com/amitabhanmolpain/realestate-be/internal/core/ports"
	"github.com/amitabhanmolpain/realestate-be/internal/pkg/config"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
	statusDegraded  = "degraded"
)

// HealthHandler reports on the dependencies the catalog API needs. The task
// inspector and cache are optional.
type HealthHandler struct {
	db        ports.Database
	redis     *redis.Client
	cache     *redis_a.Cache
	tasks     *asynq.Inspector
	config    *config.Config
	logger    *slog.Logger
	startTime time.Time
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(
	database ports.Database,
	redisClient *redis.Client,
	cache *redis_a.Cache,
	inspector *asynq.Inspector,
	cfg *config.Config,
	logger *slog.Logger,
) *HealthHandler {
	return &HealthHandler{
		db:        database,
		redis:     redisClient,
		cache:     cache,
		tasks:     inspector,
		config:    cfg,
		logger:    logger.With(slog.String("handler", "health")),
		startTime: time.Now(),
	}
}

// HealthStatus is the body of GET /health.
type HealthStatus struct {
	Status      string                 `json:"status"`
	Version     string                 `json:"version"`
	Environment string                 `json:"environment"`
	Uptime      string                 `json:"uptime"`
	Timestamp   time.Time              `json:"timestamp"`
	Services    map[string]ServiceInfo `json:"services"`
	Runtime     RuntimeInfo            `json:"runtime"`
}

// ServiceInfo is the outcome of one dependency probe.
type ServiceInfo struct {
	Status       string                 `json:"status"`
	Message      string                 `json:"message,omitempty"`
	ResponseTime string                 `json:"response_time,omitempty"`
	Details      map[string]interface{} `json:"details,omitempty"`
}

type RuntimeInfo struct {
	GoVersion     string `json:"go_version"`
	NumGoroutines int    `json:"num_goroutines"`
	MemoryAllocMB uint64 `json:"memory_alloc_mb"`
	NumGC         uint32 `json:"num_gc"`
}

type probe struct {
	name  string
	check func(ctx context.Context) (map[string]interface{}, error)
}

func (h *HealthHandler) probes() []probe {
	list := []probe{
		{name: "database", check: h.checkDatabase},
		{name: "redis", check: h.checkRedis},
	}
	if h.tasks != nil {
		list = append(list, probe{name: "tasks", check: h.checkTasks})
	}
	return list
}

// Health runs every probe concurrently. Any failing probe degrades the
// service and the response becomes 503.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	health := HealthStatus{
		Status:      statusHealthy,
		Version:     h.config.App.Version,
		Environment: h.config.App.Environment,
		Uptime:      time.Since(h.startTime).Round(time.Second).String(),
		Timestamp:   time.Now().UTC(),
		Services:    make(map[string]ServiceInfo),
		Runtime:     runtimeInfo(),
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	for _, p := range h.probes() {
		g.Go(func() error {
			info := h.run(gctx, p)
			mu.Lock()
			health.Services[p.name] = info
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	status := http.StatusOK
	for _, info := range health.Services {
		if info.Status != statusHealthy {
			health.Status = statusDegraded
			status = http.StatusServiceUnavailable
		}
	}

	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	respondJSON(w, h.logger, status, health)
}

func (h *HealthHandler) run(ctx context.Context, p probe) ServiceInfo {
	start := time.Now()
	details, err := p.check(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "health probe failed",
			slog.String("probe", p.name),
			slog.String("error", err.Error()))
		return ServiceInfo{Status: statusUnhealthy, Message: err.Error()}
	}
	return ServiceInfo{
		Status:       statusHealthy,
		ResponseTime: time.Since(start).String(),
		Details:      details,
	}
}

// Liveness handles /live. It touches no dependency.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Round(time.Second).String(),
	})
}

// Readiness handles /ready: the API can serve the catalog once Postgres and
// Redis answer a ping.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	details := map[string]string{
		"database": readiness(h.db.Ping(ctx)),
		"redis":    readiness(h.redis.Ping(ctx).Err()),
	}
	ready := details["database"] == "ready" && details["redis"] == "ready"

	status := http.StatusOK
	if !ready {
		status = http.StatusServiceUnavailable
	}
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	respondJSON(w, h.logger, status, map[string]interface{}{
		"ready":   ready,
		"details": details,
	})
}

func readiness(err error) string {
	if err != nil {
		return "not ready"
	}
	return "ready"
}

func (h *HealthHandler) checkDatabase(ctx context.Context) (map[string]interface{}, error) {
	if err := h.db.Ping(ctx); err != nil {
		return nil, err
	}
	return h.db.Health(ctx), nil
}

func (h *HealthHandler) checkRedis(ctx context.Context) (map[string]interface{}, error) {
	if err := h.redis.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	pool := h.redis.PoolStats()
	details := map[string]interface{}{
		"total_conns": pool.TotalConns,
		"idle_conns":  pool.IdleConns,
	}
	if h.cache != nil {
		details["catalog_cache"] = h.cache.Stats()
	}
	return details, nil
}

// checkTasks reports the backlog of each task queue.
func (h *HealthHandler) checkTasks(_ context.Context) (map[string]interface{}, error) {
	queues, err := h.tasks.Queues()
	if err != nil {
		return nil, err
	}

	backlog := make(map[string]interface{}, len(queues))
	for _, name := range queues {
		q, err := h.tasks.GetQueueInfo(name)
		if err != nil {
			continue
		}
		backlog[name] = map[string]int{
			"pending":   q.Pending,
			"active":    q.Active,
			"scheduled": q.Scheduled,
			"retry":     q.Retry,
			"archived":  q.Archived,
		}
	}

	details := map[string]interface{}{"queues": backlog}
	if servers, err := h.tasks.Servers(); err == nil {
		details["workers"] = len(servers)
	}
	return details, nil
}

func runtimeInfo() RuntimeInfo {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	return RuntimeInfo{
		GoVersion:     runtime.Version(),
		NumGoroutines: runtime.NumGoroutine(),
		MemoryAllocMB: mem.Alloc / 1024 / 1024,
		NumGC:         mem.NumGC,
	}
}

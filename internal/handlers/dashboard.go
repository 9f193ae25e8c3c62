// internal/handlers/dashboard.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/amitabhanmolpain/realestate-be/internal/core/ports"
)

// DashboardHandler serves the seller dashboard
type DashboardHandler struct {
	dashboard ports.DashboardService
	logger    *slog.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboard ports.DashboardService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboard: dashboard,
		logger:    logger.With(slog.String("handler", "dashboard")),
	}
}

// GetDashboard handles GET /api/v1/seller/dashboard
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	seller, _ := currentUser(r)

	stats, err := h.dashboard.Stats(r.Context(), seller)
	if err != nil {
		respondServiceError(w, r, h.logger, err, "Failed to load dashboard")
		return
	}
	respondJSON(w, h.logger, http.StatusOK, stats)
}

// GetActivity handles GET /api/v1/seller/activity?limit=
func (h *DashboardHandler) GetActivity(w http.ResponseWriter, r *http.Request) {
	seller, _ := currentUser(r)

	feed, err := h.dashboard.RecentActivity(r.Context(), seller, queryInt(r, "limit", 0))
	if err != nil {
		respondServiceError(w, r, h.logger, err, "Failed to load activity")
		return
	}
	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{"activities": feed})
}

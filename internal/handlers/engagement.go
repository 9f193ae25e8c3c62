// internal/handlers/engagement.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/amitabhanmolpain/realestate-be/internal/core/ports"
)

// EngagementHandler handles buyer interests, visit bookings and likes
type EngagementHandler struct {
	engagement ports.EngagementService
	logger     *slog.Logger
}

func NewEngagementHandler(engagement ports.EngagementService, logger *slog.Logger) *EngagementHandler {
	return &EngagementHandler{
		engagement: engagement,
		logger:     logger.With(slog.String("handler", "engagement")),
	}
}

// ExpressInterest handles POST /api/v1/properties/{id}/interest
func (h *EngagementHandler) ExpressInterest(w http.ResponseWriter, r *http.Request) {
	user, _ := currentUser(r)
	id, err := pathUUID(r, "id")
	if err != nil {
		respondServiceError(w, r, h.logger, err, "Invalid request")
		return
	}

	var req ports.InterestRequest
	if err := decodeJSON(r, &req); err != nil {
		respondServiceError(w, r, h.logger, err, "Invalid request")
		return
	}

	interest, err := h.engagement.ExpressInterest(r.Context(), user, id, req)
	if err != nil {
		respondServiceError(w, r, h.logger, err, "Failed to record interest")
		return
	}

	respondJSON(w, h.logger, http.StatusCreated, map[string]interface{}{
		"message":  "Interest recorded, the seller will contact you soon",
		"interest": interest,
	})
}

// ScheduleVisit handles POST /api/v1/properties/{id}/schedule-visit
func (h *EngagementHandler) ScheduleVisit(w http.ResponseWriter, r *http.Request) {
	user, _ := currentUser(r)
	id, err := pathUUID(r, "id")
	if err != nil {
		respondServiceError(w, r, h.logger, err, "Invalid request")
		return
	}

	var req ports.VisitRequest
	if err := decodeJSON(r, &req); err != nil {
		respondServiceError(w, r, h.logger, err, "Invalid request")
		return
	}

	visit, err := h.engagement.ScheduleVisit(r.Context(), user, id, req)
	if err != nil {
		respondServiceError(w, r, h.logger, err, "Failed to schedule visit")
		return
	}

	respondJSON(w, h.logger, http.StatusCreated, map[string]interface{}{
		"message": "Visit scheduled",
		"visit":   visit,
	})
}

// UserVisits handles GET /api/v1/user/visits
func (h *EngagementHandler) UserVisits(w http.ResponseWriter, r *http.Request) {
	user, _ := currentUser(r)

	visits, err := h.engagement.UserVisits(r.Context(), user)
	if err != nil {
		respondServiceError(w, r, h.logger, err, "Failed to load visits")
		return
	}
	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{"visits": visits})
}

// Liked handles GET /api/v1/likes/properties
func (h *EngagementHandler) Liked(w http.ResponseWriter, r *http.Request) {
	user, _ := currentUser(r)

	result, err := h.engagement.Liked(r.Context(), user, queryInt(r, "page", 1))
	if err != nil {
		respondServiceError(w, r, h.logger, err, "Failed to load liked properties")
		return
	}
	respondJSON(w, h.logger, http.StatusOK, result)
}

// LikeFromBody handles POST /api/v1/likes/properties with {"property_id": ...}
func (h *EngagementHandler) LikeFromBody(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PropertyID string `json:"property_id"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondServiceError(w, r, h.logger, err, "Invalid request")
		return
	}
	r.SetPathValue("id", req.PropertyID)
	h.Like(w, r)
}

// Like handles POST /api/v1/likes/properties/{id}
func (h *EngagementHandler) Like(w http.ResponseWriter, r *http.Request) {
	user, _ := currentUser(r)
	id, err := pathUUID(r, "id")
	if err != nil {
		respondServiceError(w, r, h.logger, err, "Invalid request")
		return
	}

	count, err := h.engagement.Like(r.Context(), user, id)
	if err != nil {
		respondServiceError(w, r, h.logger, err, "Failed to like property")
		return
	}
	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"liked":       true,
		"property_id": id,
		"likes_count": count,
	})
}

// Unlike handles DELETE /api/v1/likes/properties/{id}
func (h *EngagementHandler) Unlike(w http.ResponseWriter, r *http.Request) {
	user, _ := currentUser(r)
	id, err := pathUUID(r, "id")
	if err != nil {
		respondServiceError(w, r, h.logger, err, "Invalid request")
		return
	}

	count, err := h.engagement.Unlike(r.Context(), user, id)
	if err != nil {
		respondServiceError(w, r, h.logger, err, "Failed to unlike property")
		return
	}
	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"liked":       false,
		"property_id": id,
		"likes_count": count,
	})
}

// LikedIDs handles GET /api/v1/likes/check
func (h *EngagementHandler) LikedIDs(w http.ResponseWriter, r *http.Request) {
	user, _ := currentUser(r)

	ids, err := h.engagement.LikedIDs(r.Context(), user)
	if err != nil {
		respondServiceError(w, r, h.logger, err, "Failed to load likes")
		return
	}
	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{"liked_property_ids": ids})
}

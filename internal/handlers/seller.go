// internal/handlers/seller.go
package handlers

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/amitabhanmolpain/realestate-be/internal/core/domain"
	"github.com/amitabhanmolpain/realestate-be/internal/core/ports"
	"github.com/amitabhanmolpain/realestate-be/internal/pkg/schema"
)

// SellerHandler handles a seller's listings and the buyer requests made on them
type SellerHandler struct {
	listings    ports.ListingService
	engagement  ports.EngagementService
	tasks       ports.TaskQueue
	schema      *schema.Validator
	imageMax    int64
	brochureMax int64
	logger      *slog.Logger
}

// SellerLimits caps upload sizes in bytes
type SellerLimits struct {
	ImageMaxBytes    int64
	BrochureMaxBytes int64
}

func NewSellerHandler(
	listings ports.ListingService,
	engagement ports.EngagementService,
	tasks ports.TaskQueue,
	validator *schema.Validator,
	limits SellerLimits,
	logger *slog.Logger,
) *SellerHandler {
	if limits.ImageMaxBytes <= 0 {
		limits.ImageMaxBytes = 5 << 20
	}
	if limits.BrochureMaxBytes <= 0 {
		limits.BrochureMaxBytes = 20 << 20
	}
	return &SellerHandler{
		listings:    listings,
		engagement:  engagement,
		tasks:       tasks,
		schema:      validator,
		imageMax:    limits.ImageMaxBytes,
		brochureMax: limits.BrochureMaxBytes,
		logger:      logger.With(slog.String("handler", "seller")),
	}
}

// ListProperties handles GET /api/v1/seller/properties
func (h *SellerHandler) ListProperties(w http.ResponseWriter, r *http.Request) {
	seller, _ := currentUser(r)

	list, err := h.listings.ListMine(r.Context(), seller)
	if err != nil {
		respondServiceError(w, r, h.logger, err, "Failed to list properties")
		return
	}
	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"properties": list,
		"total":      len(list),
	})
}

// CreateProperty handles POST /api/v1/seller/properties
func (h *SellerHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	seller, _ := currentUser(r)

	body, err := io.ReadAll(io.LimitReader(r.Body, maxJSONBody))
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.schema.ValidateProperty(body); err != nil {
		respondServiceError(w, r, h.logger, err, "Invalid request")
		return
	}

	var p domain.Property
	if err := json.Unmarshal(body, &p); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.listings.Create(r.Context(), seller, &p); err != nil {
		respondServiceError(w, r, h.logger, err, "Failed to create property")
		return
	}

	h.logger.InfoContext(r.Context(), "property created",
		slog.String("property_id", p.ID.String()))
	respondJSON(w, h.logger, http.StatusCreated, p)
}

// UpdateProperty handles PUT /api/v1/seller/properties/{id}
func (h *SellerHandler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	seller, _ := currentUser(r)
	id, err := pathUUID(r, "id")
	if err != nil {
		respondServiceError(w, r, h.logger, err, "Invalid request")
		return
	}

	var u domain.PropertyUpdate
	if err := decodeJSON(r, &u); err != nil {
		respondServiceError(w, r, h.logger, err, "Invalid request")
		return
	}

	p, err := h.listings.Update(r.Context(), seller, id, u)
	if err != nil {
		respondServiceError(w, r, h.logger, err, "Failed to update property")
		return
	}
	respondJSON(w, h.logger, http.StatusOK, p)
}

// DeleteProperty handles DELETE /api/v1/seller/properties/{id}
func (h *SellerHandler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	seller, _ := currentUser(r)
	id, err := pathUUID(r, "id")
	if err != nil {
		respondServiceError(w, r, h.logger, err, "Invalid request")
		return
	}

	if err := h.listings.Delete(r.Context(), seller, id); err != nil {
		respondServiceError(w, r, h.logger, err, "Failed to delete property")
		return
	}
	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"message":     "Property deleted",
		"property_id": id,
	})
}

// UploadImage handles POST /api/v1/seller/properties/{id}/images with a
// multipart "image" field.
func (h *SellerHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	seller, _ := currentUser(r)
	id, err := pathUUID(r, "id")
	if err != nil {
		respondServiceError(w, r, h.logger, err, "Invalid request")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.imageMax)
	if err := r.ParseMultipartForm(h.imageMax); err != nil {
		respondError(w, h.logger, http.StatusBadRequest,
			fmt.Sprintf("Image must be a multipart upload under %d MB", h.imageMax>>20))
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "image file is required")
		return
	}
	defer file.Close()

	body := bufio.NewReader(file)
	sniff, _ := body.Peek(512)
	contentType := http.DetectContentType(sniff)

	p, err := h.listings.UploadImage(r.Context(), seller, id, header.Filename, contentType, body)
	if err != nil {
		respondServiceError(w, r, h.logger, err, "Failed to upload image")
		return
	}
	respondJSON(w, h.logger, http.StatusOK, p)
}

// UploadBrochure handles POST /api/v1/seller/properties/{id}/brochure. The
// PDF is stored and amenities are extracted in the background.
func (h *SellerHandler) UploadBrochure(w http.ResponseWriter, r *http.Request) {
	seller, _ := currentUser(r)
	id, err := pathUUID(r, "id")
	if err != nil {
		respondServiceError(w, r, h.logger, err, "Invalid request")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.brochureMax)
	if err := r.ParseMultipartForm(h.brochureMax); err != nil {
		respondError(w, h.logger, http.StatusBadRequest,
			fmt.Sprintf("Brochure must be a multipart upload under %d MB", h.brochureMax>>20))
		return
	}

	file, _, err := r.FormFile("brochure")
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "brochure file is required")
		return
	}
	defer file.Close()

	body := bufio.NewReader(file)
	sniff, _ := body.Peek(512)
	if http.DetectContentType(sniff) != "application/pdf" {
		respondError(w, h.logger, http.StatusBadRequest, "Only PDF brochures are accepted")
		return
	}

	key, err := h.listings.UploadBrochure(r.Context(), seller, id, body)
	if err != nil {
		respondServiceError(w, r, h.logger, err, "Failed to upload brochure")
		return
	}

	if err := h.tasks.ExtractBrochure(r.Context(), id.String(), key); err != nil {
		respondServiceError(w, r, h.logger, err, "Failed to queue brochure processing")
		return
	}

	respondJSON(w, h.logger, http.StatusAccepted, map[string]interface{}{
		"message":     "Brochure received, amenities will be updated shortly",
		"property_id": id,
	})
}

// Interests handles GET /api/v1/seller/interests?status=
func (h *SellerHandler) Interests(w http.ResponseWriter, r *http.Request) {
	seller, _ := currentUser(r)

	var status *domain.InterestStatus
	if v := r.URL.Query().Get("status"); v != "" {
		s := domain.InterestStatus(v)
		if !s.Valid() {
			respondError(w, h.logger, http.StatusBadRequest, fmt.Sprintf("unknown status %q", v))
			return
		}
		status = &s
	}

	list, err := h.engagement.SellerInterests(r.Context(), seller, status)
	if err != nil {
		respondServiceError(w, r, h.logger, err, "Failed to load interests")
		return
	}
	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{"interests": list})
}

// UpdateInterest handles PUT /api/v1/seller/interests/{id}
func (h *SellerHandler) UpdateInterest(w http.ResponseWriter, r *http.Request) {
	seller, _ := currentUser(r)
	id, err := pathUUID(r, "id")
	if err != nil {
		respondServiceError(w, r, h.logger, err, "Invalid request")
		return
	}

	var req struct {
		Status domain.InterestStatus `json:"status"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondServiceError(w, r, h.logger, err, "Invalid request")
		return
	}

	interest, err := h.engagement.UpdateInterestStatus(r.Context(), seller, id, req.Status)
	if err != nil {
		respondServiceError(w, r, h.logger, err, "Failed to update interest")
		return
	}
	respondJSON(w, h.logger, http.StatusOK, interest)
}

// Visits handles GET /api/v1/seller/visits?status=
func (h *SellerHandler) Visits(w http.ResponseWriter, r *http.Request) {
	seller, _ := currentUser(r)

	var status *domain.VisitStatus
	if v := r.URL.Query().Get("status"); v != "" {
		s := domain.VisitStatus(v)
		if !s.Valid() {
			respondError(w, h.logger, http.StatusBadRequest, fmt.Sprintf("unknown status %q", v))
			return
		}
		status = &s
	}

	list, err := h.engagement.SellerVisits(r.Context(), seller, status)
	if err != nil {
		respondServiceError(w, r, h.logger, err, "Failed to load visits")
		return
	}
	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{"visits": list})
}

// UpdateVisit handles PUT /api/v1/seller/visits/{id}
func (h *SellerHandler) UpdateVisit(w http.ResponseWriter, r *http.Request) {
	seller, _ := currentUser(r)
	id, err := pathUUID(r, "id")
	if err != nil {
		respondServiceError(w, r, h.logger, err, "Invalid request")
		return
	}

	var req struct {
		Status domain.VisitStatus `json:"status"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondServiceError(w, r, h.logger, err, "Invalid request")
		return
	}

	visit, err := h.engagement.UpdateVisitStatus(r.Context(), seller, id, req.Status)
	if err != nil {
		respondServiceError(w, r, h.logger, err, "Failed to update visit")
		return
	}
	respondJSON(w, h.logger, http.StatusOK, visit)
}

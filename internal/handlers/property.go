// internal/handlers/property.go
package handlers

import (
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/amitabhanmolpain/realestate-be/internal/core/domain"
	"github.com/amitabhanmolpain/realestate-be/internal/core/ports"
)

// PropertyHandler serves the public catalog
type PropertyHandler struct {
	catalog ports.CatalogService
	logger  *slog.Logger
}

func NewPropertyHandler(catalog ports.CatalogService, logger *slog.Logger) *PropertyHandler {
	return &PropertyHandler{
		catalog: catalog,
		logger:  logger.With(slog.String("handler", "property")),
	}
}

// Browse handles GET /api/v1/properties
func (h *PropertyHandler) Browse(w http.ResponseWriter, r *http.Request) {
	params, err := parseBrowseParams(r.URL.Query())
	if err != nil {
		respondServiceError(w, r, h.logger, err, "Failed to list properties")
		return
	}

	result, err := h.catalog.Browse(r.Context(), params)
	if err != nil {
		respondServiceError(w, r, h.logger, err, "Failed to list properties")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, result)
}

// Featured handles GET /api/v1/properties/featured
func (h *PropertyHandler) Featured(w http.ResponseWriter, r *http.Request) {
	list, err := h.catalog.Featured(r.Context(), queryInt(r, "limit", 0))
	if err != nil {
		respondServiceError(w, r, h.logger, err, "Failed to load featured properties")
		return
	}
	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{"properties": list})
}

// Get handles GET /api/v1/properties/{id}
func (h *PropertyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondServiceError(w, r, h.logger, err, "Invalid request")
		return
	}

	p, err := h.catalog.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, h.logger, err, "Failed to load property")
		return
	}
	respondJSON(w, h.logger, http.StatusOK, p)
}

// View handles POST /api/v1/properties/{id}/view
func (h *PropertyHandler) View(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondServiceError(w, r, h.logger, err, "Invalid request")
		return
	}

	if err := h.catalog.RecordView(r.Context(), id); err != nil {
		respondServiceError(w, r, h.logger, err, "Failed to record view")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// EMI handles GET /api/v1/emi. Either principal or price (with an optional
// down_payment percentage) selects the loan amount; rate and tenure default
// to the standard home-loan terms.
func (h *PropertyHandler) EMI(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	rate, err := floatParam(q, "rate", domain.DefaultInterestRate)
	if err != nil {
		respondServiceError(w, r, h.logger, err, "Invalid request")
		return
	}
	tenure, err := intParam(q, "tenure", domain.DefaultTenureYears)
	if err != nil {
		respondServiceError(w, r, h.logger, err, "Invalid request")
		return
	}

	var loan domain.LoanInput
	switch {
	case q.Get("principal") != "":
		principal, err := floatParam(q, "principal", 0)
		if err != nil {
			respondServiceError(w, r, h.logger, err, "Invalid request")
			return
		}
		loan = domain.LoanInput{Principal: principal, AnnualRate: rate, TenureYears: tenure}
	case q.Get("price") != "":
		price, err := strconv.ParseInt(q.Get("price"), 10, 64)
		if err != nil {
			respondError(w, h.logger, http.StatusBadRequest, "price must be an integer")
			return
		}
		down, err := floatParam(q, "down_payment", domain.DefaultDownPaymentPct)
		if err != nil {
			respondServiceError(w, r, h.logger, err, "Invalid request")
			return
		}
		if down < domain.MinDownPaymentPct || down > domain.MaxDownPaymentPct {
			respondError(w, h.logger, http.StatusBadRequest,
				fmt.Sprintf("down_payment must be between %d and %d", domain.MinDownPaymentPct, domain.MaxDownPaymentPct))
			return
		}
		loan = domain.LoanFromDownPayment(price, down, rate, tenure)
	default:
		respondError(w, h.logger, http.StatusBadRequest, "principal or price is required")
		return
	}

	if err := loan.Validate(); err != nil {
		respondServiceError(w, r, h.logger, err, "Invalid request")
		return
	}

	emi, err := domain.CalculateEMI(loan)
	if err != nil {
		respondServiceError(w, r, h.logger, err, "Failed to calculate EMI")
		return
	}
	respondJSON(w, h.logger, http.StatusOK, emi)
}

// parseBrowseParams turns catalog query parameters into a browse request.
// Absent parameters place no constraint; malformed ones are rejected.
func parseBrowseParams(q url.Values) (ports.BrowseParams, error) {
	params := ports.BrowseParams{Query: strings.TrimSpace(q.Get("q"))}

	sort, ok := domain.ParseSortKey(q.Get("sort"))
	if !ok {
		return params, fmt.Errorf("%w: unknown sort %q", domain.ErrInvalidInput, q.Get("sort"))
	}
	params.Sort = sort

	if v := strings.TrimSpace(q.Get("city")); v != "" {
		params.Filters.City = &v
	}
	if v := strings.TrimSpace(q.Get("type")); v != "" {
		if !domain.PropertyType(v).Valid() {
			return params, fmt.Errorf("%w: unknown property type %q", domain.ErrInvalidInput, v)
		}
		params.Filters.Type = &v
	}
	if v := q.Get("bedrooms"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return params, fmt.Errorf("%w: bedrooms must be a non-negative integer", domain.ErrInvalidInput)
		}
		params.Filters.Bedrooms = &n
	}
	prices := []struct {
		name string
		dst  **int64
	}{
		{"min_price", &params.Filters.PriceRange.Min},
		{"max_price", &params.Filters.PriceRange.Max},
	}
	for _, p := range prices {
		v := q.Get(p.name)
		if v == "" {
			continue
		}
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 0 {
			return params, fmt.Errorf("%w: %s must be a non-negative integer", domain.ErrInvalidInput, p.name)
		}
		*p.dst = &n
	}

	paging := []struct {
		name string
		dst  *int
	}{
		{"page", &params.Page},
		{"per_page", &params.PerPage},
	}
	for _, p := range paging {
		v := q.Get(p.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return params, fmt.Errorf("%w: %s must be a positive integer", domain.ErrInvalidInput, p.name)
		}
		*p.dst = n
	}
	return params, nil
}

func floatParam(q url.Values, name string, def float64) (float64, error) {
	v := q.Get(name)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %s must be a number", domain.ErrInvalidInput, name)
	}
	return f, nil
}

func intParam(q url.Values, name string, def int) (int, error) {
	v := q.Get(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", domain.ErrInvalidInput, name)
	}
	return n, nil
}

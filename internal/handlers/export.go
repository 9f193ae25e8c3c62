// internal/handlers/export.go
package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/amitabhanmolpain/realestate-be/internal/core/ports"
	"github.com/amitabhanmolpain/realestate-be/internal/pkg/sheet"
)

// ExportHandler streams a seller's listings as a spreadsheet
type ExportHandler struct {
	listings ports.ListingService
	logger   *slog.Logger
}

// NewExportHandler creates a new export handler
func NewExportHandler(listings ports.ListingService, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{
		listings: listings,
		logger:   logger.With(slog.String("handler", "export")),
	}
}

// ExportExcel handles GET /api/v1/seller/properties/export
func (h *ExportHandler) ExportExcel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	seller, _ := currentUser(r)

	list, err := h.listings.ListMine(ctx, seller)
	if err != nil {
		respondServiceError(w, r, h.logger, err, "Failed to retrieve data")
		return
	}

	data, err := sheet.Bytes(list)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to generate Excel file", slog.String("error", err.Error()))
		respondError(w, h.logger, http.StatusInternalServerError, "Failed to generate Excel file")
		return
	}

	filename := fmt.Sprintf("listings_export_%s.xlsx", time.Now().Format("20060102_150405"))
	h.writeWorkbook(w, r, filename, data)

	h.logger.InfoContext(ctx, "Excel export completed",
		slog.Int("total_rows", len(list)),
		slog.String("filename", filename))
}

// Template handles GET /api/v1/seller/properties/import/template, an empty
// workbook with the columns the importer understands.
func (h *ExportHandler) Template(w http.ResponseWriter, r *http.Request) {
	data, err := sheet.Bytes(nil)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to generate template", slog.String("error", err.Error()))
		respondError(w, h.logger, http.StatusInternalServerError, "Failed to generate template")
		return
	}
	h.writeWorkbook(w, r, "listings_template.xlsx", data)
}

func (h *ExportHandler) writeWorkbook(w http.ResponseWriter, r *http.Request, filename string, data []byte) {
	w.Header().Set("Content-Type", sheet.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")

	if _, err := w.Write(data); err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to write Excel response", slog.String("error", err.Error()))
	}
}

// internal/handlers/import.go
package handlers

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/amitabhanmolpain/realestate-be/internal/adapters/storage"
	"github.com/amitabhanmolpain/realestate-be/internal/core/ports"
	"github.com/amitabhanmolpain/realestate-be/internal/pkg/sheet"
)

// zip local file header; every xlsx workbook starts with it
var xlsxMagic = []byte("PK\x03\x04")

// ImportHandler stages bulk-import spreadsheets for the worker
type ImportHandler struct {
	storage     ports.ObjectStorage
	tasks       ports.TaskQueue
	logger      *slog.Logger
	maxFileSize int64
}

// NewImportHandler creates a new import handler
func NewImportHandler(store ports.ObjectStorage, tasks ports.TaskQueue, logger *slog.Logger, maxFileSize int64) *ImportHandler {
	if maxFileSize <= 0 {
		maxFileSize = 10 << 20
	}
	return &ImportHandler{
		storage:     store,
		tasks:       tasks,
		logger:      logger.With(slog.String("handler", "import")),
		maxFileSize: maxFileSize,
	}
}

// ImportExcel handles POST /api/v1/seller/properties/import with a multipart
// "file" field. Rows are created by the worker; the response only confirms
// the upload was queued.
func (h *ImportHandler) ImportExcel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	seller, _ := currentUser(r)

	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize)
	if err := r.ParseMultipartForm(h.maxFileSize); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Failed to parse form data")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "File is required")
		return
	}
	defer file.Close()

	if !strings.EqualFold(filepath.Ext(header.Filename), ".xlsx") {
		respondError(w, h.logger, http.StatusBadRequest, "Only .xlsx files are allowed")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Failed to read upload")
		return
	}
	if !bytes.HasPrefix(data, xlsxMagic) {
		respondError(w, h.logger, http.StatusBadRequest, "File is not a valid Excel workbook")
		return
	}

	key := storage.ImportKey(seller.ID, header.Filename)
	if _, err := h.storage.Upload(ctx, key, bytes.NewReader(data), sheet.ContentType); err != nil {
		h.logger.ErrorContext(ctx, "failed to stage import file",
			slog.String("key", key),
			slog.String("error", err.Error()))
		respondError(w, h.logger, http.StatusInternalServerError, "Failed to save upload")
		return
	}

	if err := h.tasks.ImportListings(ctx, seller, key); err != nil {
		if delErr := h.storage.Delete(ctx, key); delErr != nil {
			h.logger.WarnContext(ctx, "failed to remove staged import",
				slog.String("key", key),
				slog.String("error", delErr.Error()))
		}
		h.logger.ErrorContext(ctx, "failed to enqueue import", slog.String("error", err.Error()))
		respondError(w, h.logger, http.StatusInternalServerError, "Failed to create import job")
		return
	}

	h.logger.InfoContext(ctx, "listing import queued",
		slog.String("key", key),
		slog.Int64("size", int64(len(data))))

	respondJSON(w, h.logger, http.StatusAccepted, map[string]interface{}{
		"message": fmt.Sprintf("%s received, listings will appear once processed", filepath.Base(header.Filename)),
		"file":    key,
	})
}

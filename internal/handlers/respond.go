// internal/handlers/respond.go
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/amitabhanmolpain/realestate-be/internal/core/domain"
	"github.com/amitabhanmolpain/realestate-be/internal/handlers/middleware"
)

const maxJSONBody = 1 << 20

func respondJSON(w http.ResponseWriter, logger *slog.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

func respondError(w http.ResponseWriter, logger *slog.Logger, status int, message string) {
	respondJSON(w, logger, status, map[string]string{"error": message})
}

// respondServiceError maps domain errors onto HTTP statuses. Anything that is
// not a known domain error is logged and reported as fallback.
func respondServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error, fallback string) {
	var loginErr *domain.LoginError
	switch {
	case errors.As(err, &loginErr) && errors.Is(err, domain.ErrAccountLocked):
		respondJSON(w, logger, http.StatusForbidden, map[string]interface{}{
			"error":          loginErr.Error(),
			"locked":         true,
			"remaining_time": loginErr.RemainingMinutes(),
		})
	case errors.As(err, &loginErr):
		respondJSON(w, logger, http.StatusUnauthorized, map[string]interface{}{
			"error":              loginErr.Error(),
			"attempts_remaining": loginErr.AttemptsRemaining,
		})
	case errors.Is(err, domain.ErrAccountLocked):
		respondError(w, logger, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidLoan):
		respondError(w, logger, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrInvalidCredentials):
		respondError(w, logger, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		respondError(w, logger, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		respondError(w, logger, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrConflict):
		respondError(w, logger, http.StatusConflict, err.Error())
	default:
		logger.ErrorContext(r.Context(), fallback,
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()))
		respondError(w, logger, http.StatusInternalServerError, fallback)
	}
}

// decodeJSON reads a bounded JSON body into dst.
func decodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxJSONBody))
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid request body", domain.ErrInvalidInput)
	}
	return nil
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid %s", domain.ErrInvalidInput, name)
	}
	return id, nil
}

// queryInt returns def when the parameter is absent or not a positive integer.
func queryInt(r *http.Request, name string, def int) int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

// currentUser returns the authenticated identity. Routes that call it are
// mounted behind middleware.Auth.
func currentUser(r *http.Request) (domain.SessionUser, bool) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		return domain.SessionUser{}, false
	}
	return sess.User, true
}

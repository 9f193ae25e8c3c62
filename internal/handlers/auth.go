// internal/handlers/auth.go
package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/amitabhanmolpain/realestate-be/internal/core/domain"
	"github.com/amitabhanmolpain/realestate-be/internal/core/ports"
	"github.com/amitabhanmolpain/realestate-be/internal/handlers/middleware"
)

// AuthHandler handles registration, login and logout
type AuthHandler struct {
	auth   ports.AuthService
	logger *slog.Logger
}

func NewAuthHandler(auth ports.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		auth:   auth,
		logger: logger.With(slog.String("handler", "auth")),
	}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionResponse is returned by register and login
type SessionResponse struct {
	Token     string             `json:"token"`
	User      domain.SessionUser `json:"user"`
	ExpiresAt time.Time          `json:"expires_at"`
}

func newSessionResponse(s *domain.Session) SessionResponse {
	return SessionResponse{Token: s.Token, User: s.User, ExpiresAt: s.ExpiresAt}
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		respondServiceError(w, r, h.logger, err, "Failed to register")
		return
	}

	sess, err := h.auth.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		respondServiceError(w, r, h.logger, err, "Failed to register")
		return
	}

	respondJSON(w, h.logger, http.StatusCreated, newSessionResponse(sess))
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondServiceError(w, r, h.logger, err, "Failed to log in")
		return
	}

	sess, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(w, r, h.logger, err, "Failed to log in")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, newSessionResponse(sess))
}

// Logout handles POST /api/v1/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sess, _ := middleware.SessionFromContext(r.Context())
	if err := h.auth.Logout(r.Context(), sess); err != nil {
		respondServiceError(w, r, h.logger, err, "Failed to log out")
		return
	}
	respondJSON(w, h.logger, http.StatusOK, map[string]string{"message": "Logged out"})
}

// Me handles GET /api/v1/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		respondError(w, h.logger, http.StatusUnauthorized, "Authentication required")
		return
	}
	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"user":       sess.User,
		"expires_at": sess.ExpiresAt,
	})
}

// internal/core/services/auth.go
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/amitabhanmolpain/realestate-be/internal/core/domain"
	"github.com/amitabhanmolpain/realestate-be/internal/core/ports"
)

const DefaultTokenTTL = 7 * 24 * time.Hour

// AuthService owns account credentials and the session lifecycle. A session
// exists only while the store holds it; a valid token without one is rejected.
type AuthService struct {
	users    ports.UserRepository
	tokens   ports.TokenIssuer
	sessions ports.SessionStore
	tokenTTL time.Duration
	now      func() time.Time
	logger   *slog.Logger
}

var _ ports.AuthService = (*AuthService)(nil)

func NewAuthService(users ports.UserRepository, tokens ports.TokenIssuer, sessions ports.SessionStore, tokenTTL time.Duration, logger *slog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = DefaultTokenTTL
	}
	return &AuthService{
		users:    users,
		tokens:   tokens,
		sessions: sessions,
		tokenTTL: tokenTTL,
		now:      time.Now,
		logger:   logger.With(slog.String("service", "auth")),
	}
}

// Register creates an account and signs it in.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.Session, error) {
	u, err := domain.NewUser(name, email, password)
	if err != nil {
		return nil, err
	}

	if err := s.users.Save(ctx, u); err != nil {
		return nil, fmt.Errorf("failed to register: %w", err)
	}

	s.logger.InfoContext(ctx, "user registered", slog.String("user_id", u.ID.String()))
	return s.startSession(ctx, u)
}

// Login verifies credentials. Five consecutive failures lock the account for
// fifteen minutes; failures are returned as *domain.LoginError.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	email = domain.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", domain.ErrInvalidInput)
	}

	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: no account for this email", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	now := s.now().UTC()
	hadLock := u.LockedUntil != nil
	if u.IsLocked(now) {
		return nil, &domain.LoginError{Err: domain.ErrAccountLocked, LockedFor: u.LockedUntil.Sub(now)}
	}

	if !u.CheckPassword(password) {
		loginErr := u.RegisterFailedLogin(now)
		u.UpdatedAt = now
		if err := s.users.Update(ctx, u); err != nil {
			return nil, fmt.Errorf("failed to record login attempt: %w", err)
		}
		s.logger.WarnContext(ctx, "failed login",
			slog.String("user_id", u.ID.String()),
			slog.Int("attempts", u.FailedLoginAttempts))
		return nil, loginErr
	}

	if hadLock || u.FailedLoginAttempts > 0 {
		u.ResetLoginAttempts()
		u.UpdatedAt = now
		if err := s.users.Update(ctx, u); err != nil {
			return nil, fmt.Errorf("failed to reset login attempts: %w", err)
		}
	}

	return s.startSession(ctx, u)
}

// Authenticate resolves a bearer token to its live session.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, fmt.Errorf("%w: missing token", domain.ErrUnauthorized)
	}

	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, err
	}

	sess, err := s.sessions.Get(ctx, claims.SessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: session ended", domain.ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if sess.User.ID != claims.User.ID {
		return nil, fmt.Errorf("%w: token does not match session", domain.ErrUnauthorized)
	}

	sess.Token = token
	return sess, nil
}

// Logout ends the session; the token stops working immediately.
func (s *AuthService) Logout(ctx context.Context, sess *domain.Session) error {
	if sess == nil {
		return nil
	}
	if err := s.sessions.Delete(ctx, sess.ID); err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}
	s.logger.InfoContext(ctx, "user logged out", slog.String("user_id", sess.User.ID.String()))
	return nil
}

func (s *AuthService) startSession(ctx context.Context, u *domain.User) (*domain.Session, error) {
	now := s.now().UTC()
	sess := &domain.Session{
		ID:        uuid.NewString(),
		User:      u.SessionUser(),
		IssuedAt:  now,
		ExpiresAt: now.Add(s.tokenTTL),
	}

	token, err := s.tokens.Issue(ports.TokenClaims{
		SessionID: sess.ID,
		User:      sess.User,
		IssuedAt:  sess.IssuedAt,
		ExpiresAt: sess.ExpiresAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	sess.Token = token

	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}
	return sess, nil
}

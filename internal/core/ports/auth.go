// internal/core/ports/auth.go
package ports

import (
	"context"
	"time"

	"github.com/amitabhanmolpain/realestate-be/internal/core/domain"
)

// TokenClaims are the identity facts carried by an access token
type TokenClaims struct {
	SessionID string
	User      domain.SessionUser
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenIssuer signs and verifies access tokens.
type TokenIssuer interface {
	Issue(claims TokenClaims) (string, error)
	Parse(token string) (*TokenClaims, error)
}

// SessionStore is the single source of truth for live sessions.
type SessionStore interface {
	Save(ctx context.Context, s *domain.Session) error
	Get(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}

// internal/adapters/auth/jwt.go
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/amitabhanmolpain/realestate-be/internal/core/domain"
	"github.com/amitabhanmolpain/realestate-be/internal/core/ports"
)

const issuer = "realestate-api"

type claims struct {
	SessionID string `json:"sid"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	jwt.RegisteredClaims
}

// JWTIssuer signs HS256 session tokens.
type JWTIssuer struct {
	secret []byte
	now    func() time.Time
}

var _ ports.TokenIssuer = (*JWTIssuer)(nil)

func NewJWTIssuer(secret string) (*JWTIssuer, error) {
	if len(secret) < 16 {
		return nil, errors.New("jwt secret must be at least 16 characters")
	}
	return &JWTIssuer{secret: []byte(secret), now: time.Now}, nil
}

func (j *JWTIssuer) Issue(c ports.TokenClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		SessionID: c.SessionID,
		Email:     c.User.Email,
		Name:      c.User.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   c.User.ID.String(),
			IssuedAt:  jwt.NewNumericDate(c.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(c.ExpiresAt),
		},
	})

	signed, err := token.SignedString(j.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Parse verifies signature, issuer and expiry. Any failure is reported as
// domain.ErrUnauthorized.
func (j *JWTIssuer) Parse(raw string) (*ports.TokenClaims, error) {
	var c claims
	_, err := jwt.ParseWithClaims(raw, &c, func(t *jwt.Token) (interface{}, error) {
		return j.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}

	userID, err := uuid.Parse(c.Subject)
	if err != nil || c.SessionID == "" {
		return nil, fmt.Errorf("%w: malformed token subject", domain.ErrUnauthorized)
	}

	out := &ports.TokenClaims{
		SessionID: c.SessionID,
		User:      domain.SessionUser{ID: userID, Name: c.Name, Email: c.Email},
	}
	if c.IssuedAt != nil {
		out.IssuedAt = c.IssuedAt.Time
	}
	if c.ExpiresAt != nil {
		out.ExpiresAt = c.ExpiresAt.Time
	}
	return out, nil
}

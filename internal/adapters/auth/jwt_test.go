package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amitabhanmolpain/realestate-be/internal/core/domain"
	"github.com/amitabhanmolpain/realestate-be/internal/core/ports"
)

const testSecret = "0123456789abcdef-test"

func testClaims(now time.Time) ports.TokenClaims {
	return ports.TokenClaims{
		SessionID: uuid.NewString(),
		User:      domain.SessionUser{ID: uuid.New(), Name: "Ravi", Email: "ravi@example.com"},
		IssuedAt:  now,
		ExpiresAt: now.Add(7 * 24 * time.Hour),
	}
}

func TestJWTIssuer_RoundTrip(t *testing.T) {
	issuer, err := NewJWTIssuer(testSecret)
	require.NoError(t, err)

	now := time.Now().Truncate(time.Second)
	in := testClaims(now)

	token, err := issuer.Issue(in)
	require.NoError(t, err)

	out, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, in.SessionID, out.SessionID)
	assert.Equal(t, in.User, out.User)
	assert.True(t, in.ExpiresAt.Equal(out.ExpiresAt))
}

func TestJWTIssuer_Rejects(t *testing.T) {
	issuer, err := NewJWTIssuer(testSecret)
	require.NoError(t, err)
	other, err := NewJWTIssuer("another-secret-of-length")
	require.NoError(t, err)

	now := time.Now()
	valid, err := issuer.Issue(testClaims(now))
	require.NoError(t, err)

	expired := testClaims(now.Add(-8 * 24 * time.Hour))
	expiredToken, err := issuer.Issue(expired)
	require.NoError(t, err)

	foreign, err := other.Issue(testClaims(now))
	require.NoError(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": uuid.NewString(), "sid": "x", "iss": "realestate-api"})
	noneToken, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{name: "expired", token: expiredToken},
		{name: "wrong_secret", token: foreign},
		{name: "alg_none", token: noneToken},
		{name: "tampered", token: valid[:len(valid)-2] + "xx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := issuer.Parse(tt.token)
			assert.ErrorIs(t, err, domain.ErrUnauthorized)
		})
	}
}

func TestNewJWTIssuer_ShortSecret(t *testing.T) {
	_, err := NewJWTIssuer("short")
	assert.Error(t, err)
}

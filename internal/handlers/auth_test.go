package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/amitabhanmolpain/realestate-be/internal/core/domain"
	"github.com/amitabhanmolpain/realestate-be/internal/handlers"
	"github.com/amitabhanmolpain/realestate-be/test/helpers"
	"github.com/amitabhanmolpain/realestate-be/test/mocks"
)

func TestAuthHandler_Login(t *testing.T) {
	user := helpers.SessionUser("asha")
	session := &domain.Session{ID: "s1", Token: "jwt", User: user, ExpiresAt: time.Now().Add(time.Hour)}

	tests := []struct {
		name           string
		body           string
		setupMocks     func(*mocks.MockAuthService)
		expectedStatus int
		validateBody   func(*testing.T, map[string]interface{})
	}{
		{
			name: "success",
			body: `{"email":"asha@example.com","password":"secret1"}`,
			setupMocks: func(m *mocks.MockAuthService) {
				m.EXPECT().Login(gomock.Any(), "asha@example.com", "secret1").Return(session, nil)
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "jwt", body["token"])
				assert.Equal(t, user.Email, body["user"].(map[string]interface{})["email"])
			},
		},
		{
			name: "wrong_password_reports_attempts",
			body: `{"email":"asha@example.com","password":"nope"}`,
			setupMocks: func(m *mocks.MockAuthService) {
				m.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, &domain.LoginError{Err: domain.ErrInvalidCredentials, AttemptsRemaining: 3})
			},
			expectedStatus: http.StatusUnauthorized,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, float64(3), body["attempts_remaining"])
			},
		},
		{
			name: "locked_account_reports_minutes",
			body: `{"email":"asha@example.com","password":"secret1"}`,
			setupMocks: func(m *mocks.MockAuthService) {
				m.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, &domain.LoginError{Err: domain.ErrAccountLocked, LockedFor: 12*time.Minute + 40*time.Second})
			},
			expectedStatus: http.StatusForbidden,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, true, body["locked"])
				assert.Equal(t, float64(12), body["remaining_time"])
			},
		},
		{
			name: "unknown_email",
			body: `{"email":"ghost@example.com","password":"secret1"}`,
			setupMocks: func(m *mocks.MockAuthService) {
				m.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, domain.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "malformed_body",
			body:           `{"email":`,
			setupMocks:     func(m *mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			auth := mocks.NewMockAuthService(ctrl)
			tt.setupMocks(auth)

			h := handlers.NewAuthHandler(auth, helpers.TestLogger())
			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.Login(rec, req)

			require.Equal(t, tt.expectedStatus, rec.Code, rec.Body.String())
			if tt.validateBody != nil {
				tt.validateBody(t, decodeBody(t, rec))
			}
		})
	}
}

func TestAuthHandler_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mocks.NewMockAuthService(ctrl)
	user := helpers.SessionUser("ravi")
	auth.EXPECT().
		Register(gomock.Any(), "Ravi", "ravi@example.com", "secret1").
		Return(&domain.Session{Token: "jwt", User: user}, nil)

	h := handlers.NewAuthHandler(auth, helpers.TestLogger())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register",
		strings.NewReader(`{"name":"Ravi","email":"ravi@example.com","password":"secret1"}`))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "jwt", decodeBody(t, rec)["token"])
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mocks.NewMockAuthService(ctrl)
	auth.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, domain.ErrConflict)

	h := handlers.NewAuthHandler(auth, helpers.TestLogger())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register",
		strings.NewReader(`{"name":"Ravi","email":"ravi@example.com","password":"secret1"}`))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAuthHandler_LogoutAndMe(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mocks.NewMockAuthService(ctrl)
	user := helpers.SessionUser("meera")
	auth.EXPECT().Logout(gomock.Any(), gomock.Any()).Return(nil)

	h := handlers.NewAuthHandler(auth, helpers.TestLogger())

	rec := httptest.NewRecorder()
	h.Me(rec, asUser(httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil), user))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, user.Name, decodeBody(t, rec)["user"].(map[string]interface{})["name"])

	rec = httptest.NewRecorder()
	h.Logout(rec, asUser(httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil), user))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.Me(rec, httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

package register

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mindora/mindora/internal/http/middlewarectx"
	"github.com/mindora/mindora/internal/lib/sl"
	"github.com/mindora/mindora/internal/models"
)

type AuthServiceMock struct {
	mock.Mock
}

func (m *AuthServiceMock) Register(ctx context.Context, username, email, password string) (*models.Principal, error) {
	args := m.Called(ctx, username, email, password)
	p, _ := args.Get(0).(*models.Principal)
	return p, args.Error(1)
}

func TestRegisterHandler_ServeHTTP(t *testing.T) {
	cookie := middlewarectx.SessionCookie{Name: "mindora_session"}
	valid := Request{Username: "alice", Email: "alice@example.com", Password: "secret1"}

	tests := []struct {
		name        string
		requestBody any
		setupMock   func(m *AuthServiceMock)
		wantStatus  int
		wantBody    map[string]any
		wantCookie  bool
	}{
		{
			name:        "valid registration",
			requestBody: valid,
			setupMock: func(m *AuthServiceMock) {
				m.On("Register", mock.Anything, "alice", "alice@example.com", "secret1").Return(&models.Principal{
					UserID: 1, Username: "alice", SessionID: "sid", ExpiresAt: time.Now().Add(time.Hour),
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   map[string]any{"id": float64(1), "username": "alice", "message": "Registration successful"},
			wantCookie: true,
		},
		{
			name:        "invalid json body",
			requestBody: "not a json",
			wantStatus:  http.StatusBadRequest,
			wantBody:    map[string]any{"error": "invalid request body"},
		},
		{
			name:        "missing password",
			requestBody: Request{Username: "alice", Email: "alice@example.com"},
			wantStatus:  http.StatusBadRequest,
			wantBody:    map[string]any{"error": "field password is a required field"},
		},
		{
			name:        "short username",
			requestBody: Request{Username: "al", Email: "alice@example.com", Password: "secret1"},
			wantStatus:  http.StatusBadRequest,
			wantBody:    map[string]any{"error": "field username must be at least 3"},
		},
		{
			name:        "bad email",
			requestBody: Request{Username: "alice", Email: "alice", Password: "secret1"},
			wantStatus:  http.StatusBadRequest,
			wantBody:    map[string]any{"error": "field email must be a valid email address"},
		},
		{
			name:        "duplicate user",
			requestBody: valid,
			setupMock: func(m *AuthServiceMock) {
				m.On("Register", mock.Anything, "alice", "alice@example.com", "secret1").
					Return(nil, models.ErrDuplicateUser)
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   map[string]any{"error": "user with this username or email already exists"},
		},
		{
			name:        "password longer than 72 bytes",
			requestBody: Request{Username: "alice", Email: "alice@example.com", Password: strings.Repeat("p", 73)},
			setupMock: func(m *AuthServiceMock) {
				m.On("Register", mock.Anything, "alice", "alice@example.com", strings.Repeat("p", 73)).
					Return(nil, fmt.Errorf("auth.Register: %w: %w", models.ErrPasswordTooLong, models.ErrValidation))
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   map[string]any{"error": "password must be at most 72 bytes"},
		},
		{
			name:        "service error",
			requestBody: valid,
			setupMock: func(m *AuthServiceMock) {
				m.On("Register", mock.Anything, "alice", "alice@example.com", "secret1").
					Return(nil, errors.New("db down"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   map[string]any{"error": "failed to register user"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(AuthServiceMock)
			if tt.setupMock != nil {
				tt.setupMock(svc)
			}
			handler := New(sl.Discard(), svc, cookie)

			var body []byte
			if s, ok := tt.requestBody.(string); ok {
				body = []byte(s)
			} else {
				var err error
				body, err = json.Marshal(tt.requestBody)
				require.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123"))
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var got map[string]any
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
			assert.Equal(t, tt.wantBody, got)

			cookies := rec.Result().Cookies()
			if tt.wantCookie {
				require.Len(t, cookies, 1)
				assert.Equal(t, "mindora_session", cookies[0].Name)
				assert.Equal(t, "sid", cookies[0].Value)
			} else {
				assert.Empty(t, cookies)
			}
			svc.AssertExpectations(t)
		})
	}
}

package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"linkvault/internal/domain"
	"linkvault/internal/domain/models"
	"linkvault/internal/domain/services"
	"linkvault/internal/httputil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubAuth resolves one known token and fails every other one with err
type stubAuth struct {
	services.AuthService
	token string
	user  *models.User
	err   error
}

func (s *stubAuth) Verify(_ context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, domain.ErrMissingToken
	}
	if token == s.token {
		return s.user, nil
	}
	return nil, s.err
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body httputil.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Message
}

func TestRequireAuth(t *testing.T) {
	user := &models.User{ID: "u1", Username: "alice"}

	tests := []struct {
		name       string
		verifyErr  error
		setup      func(r *http.Request)
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "cookie",
			setup:      func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "token", Value: "good"}) },
			wantStatus: http.StatusOK,
		},
		{
			name:       "bearer",
			setup:      func(r *http.Request) { r.Header.Set("Authorization", "Bearer good") },
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing",
			setup:      func(r *http.Request) {},
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "No token provided, authorization denied",
		},
		{
			name:       "invalid",
			verifyErr:  domain.ErrInvalidToken,
			setup:      func(r *http.Request) { r.Header.Set("Authorization", "Bearer bad") },
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "Invalid token",
		},
		{
			name:       "expired",
			verifyErr:  domain.ErrExpiredToken,
			setup:      func(r *http.Request) { r.Header.Set("Authorization", "Bearer old") },
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "Token expired",
		},
		{
			name:       "user gone",
			verifyErr:  domain.ErrNotFound,
			setup:      func(r *http.Request) { r.Header.Set("Authorization", "Bearer orphan") },
			wantStatus: http.StatusNotFound,
			wantMsg:    "User not found",
		},
		{
			name:       "store failure",
			verifyErr:  io.ErrUnexpectedEOF,
			setup:      func(r *http.Request) { r.Header.Set("Authorization", "Bearer x") },
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authSvc := &stubAuth{token: "good", user: user, err: tt.verifyErr}
			var seen *models.User
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = httputil.GetUser(r)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/verify", nil)
			tt.setup(req)
			rec := httptest.NewRecorder()
			RequireAuth(authSvc, discardLogger())(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, user, seen)
				return
			}
			assert.Nil(t, seen)
			assert.Equal(t, tt.wantMsg, decodeMessage(t, rec))
		})
	}
}

func TestRecovery(t *testing.T) {
	handler := Recovery(discardLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", decodeMessage(t, rec))
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := RequestLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/folders", nil))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "request", entry["msg"])
	assert.Equal(t, "/api/folders", entry["path"])
	assert.EqualValues(t, http.StatusTeapot, entry["status"])
}

func TestIPRateLimiter(t *testing.T) {
	limiter := NewIPRateLimiter(1, 2)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	assert.True(t, limiter.Allow("1.1.1.1"))
	assert.True(t, limiter.Allow("1.1.1.1"))
	assert.False(t, limiter.Allow("1.1.1.1"))
	assert.True(t, limiter.Allow("2.2.2.2"), "budgets are per IP")

	now = now.Add(time.Second)
	assert.True(t, limiter.Allow("1.1.1.1"))

	now = now.Add(idleLimiterTTL + time.Second)
	limiter.Allow("3.3.3.3")
	assert.Len(t, limiter.visitors, 1, "idle limiters are evicted")
}

func TestRateLimit_Responds429(t *testing.T) {
	limiter := NewIPRateLimiter(0.001, 1)
	handler := RateLimit(limiter, discardLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i, want := range []int{http.StatusOK, http.StatusTooManyRequests} {
		req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
		req.RemoteAddr = "10.0.0.1:5555"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, want, rec.Code, "request %d", i)
	}
}

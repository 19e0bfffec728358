package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkvault/internal/domain"
	"linkvault/internal/domain/models"
)

func TestOptionalString_TriState(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantPresent bool
		wantValue   *string
	}{
		{name: "absent", body: `{}`},
		{name: "null", body: `{"name":null}`, wantPresent: true},
		{name: "blank", body: `{"name":"   "}`, wantPresent: true, wantValue: strPtr("   ")},
		{name: "value", body: `{"name":"Reading"}`, wantPresent: true, wantValue: strPtr("Reading")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req struct {
				Name OptionalString `json:"name"`
			}
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))

			assert.Equal(t, tt.wantPresent, req.Name.Present)
			assert.Equal(t, tt.wantValue, req.Name.Ptr())
		})
	}
}

func strPtr(s string) *string { return &s }

func TestParseJSON(t *testing.T) {
	var dest struct {
		Name string `json:"name"`
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"x"}`))
	require.NoError(t, ParseJSON(httptest.NewRecorder(), r, &dest))
	assert.Equal(t, "x", dest.Name)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(``))
	assert.NoError(t, ParseJSON(httptest.NewRecorder(), r, &dest))

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
	assert.Error(t, ParseJSON(httptest.NewRecorder(), r, &dest))
}

func TestBearerToken(t *testing.T) {
	tests := map[string]string{
		"":              "",
		"Bearer":        "",
		"Bearer ":       "",
		"Basic abc":     "",
		"Bearer abc.de": "abc.de",
	}
	for header, want := range tests {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			r.Header.Set("Authorization", header)
		}
		assert.Equal(t, want, BearerToken(r), "header %q", header)
	}
}

func TestRespondErrorDetail(t *testing.T) {
	w := httptest.NewRecorder()
	RespondErrorDetail(w, http.StatusBadRequest, "email already exists", "duplicate key")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"email already exists","error":"duplicate key"}`, w.Body.String())

	w = httptest.NewRecorder()
	RespondError(w, http.StatusNotFound, "Folder not found")
	assert.JSONEq(t, `{"message":"Folder not found"}`, w.Body.String())
}

func TestUserContext(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, GetUser(r))
	assert.Empty(t, GetUserID(r))

	r = WithUser(r, &models.User{ID: "u1"})
	assert.Equal(t, "u1", GetUserID(r))
}

func TestSessionToken_CookieWins(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer from-header")
	assert.Equal(t, "from-header", SessionToken(r))

	r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "from-cookie"})
	assert.Equal(t, "from-cookie", SessionToken(r))
}

func TestRespondDomainError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name       string
		err        error
		resource   string
		wantStatus int
		wantMsg    string
	}{
		{"duplicate", &domain.DuplicateFieldError{Field: "email"}, "User", http.StatusBadRequest, "email already exists"},
		{"validation message", fmt.Errorf("create: %w", &domain.ValidationError{Message: "Folder name is required"}), "Folder", http.StatusBadRequest, "Folder name is required"},
		{"bare validation", domain.ErrValidation, "Folder", http.StatusBadRequest, "Validation failed."},
		{"credential", domain.ErrInvalidCredential, "User", http.StatusBadRequest, "Invalid password."},
		{"not found", fmt.Errorf("folder x: %w", domain.ErrNotFound), "Folder", http.StatusNotFound, "Folder not found"},
		{"missing token", domain.ErrMissingToken, "User", http.StatusUnauthorized, "No token provided, authorization denied"},
		{"expired token", domain.ErrExpiredToken, "User", http.StatusUnauthorized, "Token expired"},
		{"invalid token", domain.ErrInvalidToken, "User", http.StatusUnauthorized, "Invalid token"},
		{"unexpected", errors.New("connection reset"), "Link", http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			RespondDomainError(w, logger, tt.err, tt.resource)

			assert.Equal(t, tt.wantStatus, w.Code)
			var body ErrorBody
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantMsg, body.Message)
		})
	}
}

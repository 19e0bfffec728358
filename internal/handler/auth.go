package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"linkvault/internal/domain"
	"linkvault/internal/domain/models"
	"linkvault/internal/domain/services"
	"linkvault/internal/httputil"
)

// AuthHandler handles registration and session HTTP requests
type AuthHandler struct {
	authService  services.AuthService
	secureCookie bool
	logger       *slog.Logger
}

// NewAuthHandler creates a new auth handler.
// secureCookie marks the session cookie Secure (HTTPS only).
func NewAuthHandler(authService services.AuthService, secureCookie bool, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		secureCookie: secureCookie,
		logger:       logger,
	}
}

// Register creates an identity and starts a session
// POST /api/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req services.RegisterRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	session, err := h.authService.Register(r.Context(), &req)
	if err != nil {
		handleError(w, h.logger, err, "User")
		return
	}

	h.setSessionCookie(w, session)
	httputil.RespondJSON(w, http.StatusOK, session.Body())
}

// Login checks credentials and starts a session
// POST /api/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req services.LoginRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	session, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		// Unknown email is a client error on login, not a missing resource
		if errors.Is(err, domain.ErrNotFound) {
			httputil.RespondError(w, http.StatusBadRequest, "User not found.")
			return
		}
		handleError(w, h.logger, err, "User")
		return
	}

	h.setSessionCookie(w, session)
	httputil.RespondJSON(w, http.StatusOK, session.Body())
}

// Logout expires the session cookie. The token itself stays valid until expiry.
// POST /api/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     httputil.SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	httputil.RespondMessage(w, http.StatusOK, "Logged out successfully")
}

// Verify returns the identity of the current session
// GET /api/verify
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	user := httputil.GetUser(r)
	if user == nil {
		handleError(w, h.logger, domain.ErrMissingToken, "User")
		return
	}

	httputil.RespondJSON(w, http.StatusOK, user)
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, session *models.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     httputil.SessionCookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		MaxAge:   int(time.Until(session.ExpiresAt).Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

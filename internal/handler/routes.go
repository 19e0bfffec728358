package handler

import (
	"log/slog"
	"net/http"

	"linkvault/internal/domain/services"
	"linkvault/internal/middleware"
)

// Handlers groups the HTTP handlers served by the API
type Handlers struct {
	Auth   *AuthHandler
	Folder *FolderHandler
	Link   *LinkHandler
	Health *HealthHandler
}

// RouterConfig holds what NewRouter needs besides the handlers
type RouterConfig struct {
	AuthService services.AuthService
	// AuthLimiter guards register and login; nil disables rate limiting
	AuthLimiter *middleware.IPRateLimiter
	Logger      *slog.Logger
}

// NewRouter registers every API route on a new ServeMux
func NewRouter(h Handlers, cfg RouterConfig) *http.ServeMux {
	mux := http.NewServeMux()

	requireAuth := middleware.RequireAuth(cfg.AuthService, cfg.Logger)
	protected := func(fn http.HandlerFunc) http.Handler {
		return requireAuth(fn)
	}
	limited := func(fn http.HandlerFunc) http.Handler {
		if cfg.AuthLimiter == nil {
			return fn
		}
		return middleware.RateLimit(cfg.AuthLimiter, cfg.Logger)(fn)
	}

	mux.HandleFunc("GET /health", h.Health.Health)

	// Sessions
	mux.Handle("POST /api/register", limited(h.Auth.Register))
	mux.Handle("POST /api/login", limited(h.Auth.Login))
	mux.HandleFunc("POST /api/logout", h.Auth.Logout)
	mux.Handle("GET /api/verify", protected(h.Auth.Verify))

	// Folders
	mux.Handle("GET /api/folders", protected(h.Folder.ListFolders))
	mux.Handle("POST /api/folders", protected(h.Folder.CreateFolder))
	mux.Handle("GET /api/folders/{id}", protected(h.Folder.GetFolder))
	mux.Handle("PUT /api/folders/{id}", protected(h.Folder.UpdateFolder))
	mux.Handle("DELETE /api/folders/{id}", protected(h.Folder.DeleteFolder))

	// Links
	mux.Handle("GET /api/links", protected(h.Link.ListLinks))
	mux.Handle("POST /api/links", protected(h.Link.CreateLink))
	mux.Handle("GET /api/links/{id}", protected(h.Link.GetLink))
	mux.Handle("PUT /api/links/{id}", protected(h.Link.UpdateLink))
	mux.Handle("DELETE /api/links/{id}", protected(h.Link.DeleteLink))

	return mux
}

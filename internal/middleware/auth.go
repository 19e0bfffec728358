package middleware

import (
	"log/slog"
	"net/http"

	"linkvault/internal/domain/services"
	"linkvault/internal/httputil"
)

// RequireAuth resolves the session token to an identity and stores it in the
// request context. The token cookie is preferred over the Authorization header.
func RequireAuth(authService services.AuthService, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := authService.Verify(r.Context(), httputil.SessionToken(r))
			if err != nil {
				httputil.RespondDomainError(w, logger, err, "User")
				return
			}

			next.ServeHTTP(w, httputil.WithUser(r, user))
		})
	}
}

package handler

import (
	"log/slog"
	"net/http"

	"linkvault/internal/httputil"
)

// handleError converts domain errors to HTTP responses
func handleError(w http.ResponseWriter, logger *slog.Logger, err error, resource string) {
	httputil.RespondDomainError(w, logger, err, resource)
}

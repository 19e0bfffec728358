package httputil

import (
	"errors"
	"log/slog"
	"net/http"

	"linkvault/internal/domain"
)

// RespondDomainError converts domain errors to HTTP responses.
// resource names the entity in the 404 message ("Folder not found").
// Only unexpected errors are logged.
func RespondDomainError(w http.ResponseWriter, logger *slog.Logger, err error, resource string) {
	var (
		dupErr        *domain.DuplicateFieldError
		validationErr *domain.ValidationError
	)

	switch {
	case errors.As(err, &dupErr):
		RespondErrorDetail(w, http.StatusBadRequest, dupErr.Error(), err.Error())
	case errors.As(err, &validationErr):
		RespondError(w, http.StatusBadRequest, validationErr.Message)
	case errors.Is(err, domain.ErrValidation):
		RespondErrorDetail(w, http.StatusBadRequest, "Validation failed.", err.Error())
	case errors.Is(err, domain.ErrInvalidCredential):
		RespondError(w, http.StatusBadRequest, "Invalid password.")
	case errors.Is(err, domain.ErrNotFound):
		RespondError(w, http.StatusNotFound, resource+" not found")
	case errors.Is(err, domain.ErrExpiredToken):
		RespondError(w, http.StatusUnauthorized, "Token expired")
	case errors.Is(err, domain.ErrMissingToken):
		RespondError(w, http.StatusUnauthorized, "No token provided, authorization denied")
	case errors.Is(err, domain.ErrUnauthorized):
		RespondError(w, http.StatusUnauthorized, "Invalid token")
	default:
		logger.Error("request failed", "error", err)
		RespondErrorDetail(w, http.StatusInternalServerError, "Internal server error", err.Error())
	}
}

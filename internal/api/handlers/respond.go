package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/stardental/clinic-backend/internal/application/services"
	"github.com/stardental/clinic-backend/internal/infrastructure/observability"
	apperrors "github.com/stardental/clinic-backend/pkg/errors"
)

func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{
		"error": message,
	})
}

// respondWithServiceError maps service-layer errors onto HTTP responses.
// Field-level validation errors keep their per-field messages; AppError
// types map to statuses; anything else collapses to a generic 500 so
// internal detail never reaches the client.
func respondWithServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var fields services.FieldErrors
	if errors.As(err, &fields) {
		respondWithJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":  "validation failed",
			"fields": fields,
		})
		return
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case apperrors.ErrorTypeNotFound:
			respondWithError(w, http.StatusNotFound, appErr.Message)
			return
		case apperrors.ErrorTypeValidation:
			respondWithError(w, http.StatusBadRequest, appErr.Message)
			return
		case apperrors.ErrorTypeUnauthorized:
			respondWithError(w, http.StatusUnauthorized, appErr.Message)
			return
		}
	}

	observability.LoggerFromContext(r.Context()).Error().Err(err).
		Str("path", r.URL.Path).
		Msg(fallback)
	respondWithError(w, http.StatusInternalServerError, fallback)
}

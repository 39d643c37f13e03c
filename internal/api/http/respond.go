package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"verdata-backend/internal/domain"
	"verdata-backend/internal/logger"
	"verdata-backend/internal/security"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			logger.Error("failed to encode response", "error", err)
		}
	}
}

// writeError maps domain errors onto HTTP statuses. Unknown errors surface
// as 500 without leaking internals.
func writeError(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "validation_error", Message: ve.Error()})
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, security.ErrInvalidToken),
		errors.Is(err, security.ErrExpiredToken):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthorized", Message: err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		writeJSON(w, http.StatusForbidden, errorResponse{Error: "forbidden", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not_found", Message: err.Error()})
	case errors.Is(err, domain.ErrNotPending):
		writeJSON(w, http.StatusConflict, errorResponse{Error: "invalid_state", Message: err.Error()})
	default:
		logger.Error("internal error", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal_error", Message: "internal server error"})
	}
}

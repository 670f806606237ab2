package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"wedding-backend/internal/domain"
	"wedding-backend/internal/logger"
	"wedding-backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

// writeError maps the error taxonomy onto HTTP statuses: validation and
// malformed slugs are 400, lookups are 404, bad credentials are 401 and
// everything else is a 500 with the detail kept out of the response.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case domain.IsValidation(err), errors.Is(err, service.ErrMalformedSlug):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrGuestNotFound), errors.Is(err, domain.ErrInvitationNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
	default:
		logger.Error("internal error", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"mrs-backend/internal/domain"
	"mrs-backend/internal/logger"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

// writeError maps domain errors to HTTP status codes: validation and
// malformed input are 400, missing entities 404, business refusals 409.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	switch {
	case domain.IsValidation(err),
		errors.Is(err, domain.ErrRentalDateInFuture),
		errors.Is(err, domain.ErrUnknownCategory):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrMovieNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrRentalNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrMovieAlreadyRented),
		errors.Is(err, domain.ErrUserHasRentals),
		errors.Is(err, domain.ErrRentalLimitReached),
		errors.Is(err, domain.ErrOutOfStock):
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		logger.Error("request failed", "error", err)
		writeJSON(w, status, errorResponse{Error: "internal server error"})
		return
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeBadRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}

package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/droptoken-backend/internal/apperror"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(logger *slog.Logger, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("failed to write response", "error", err)
	}
}

func writeError(logger *slog.Logger, w http.ResponseWriter, err error) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		logger.Error("request failed", "error", err)
		writeJSON(logger, w, status, errorResponse{Error: "Internal Server Error"})
		return
	}

	writeJSON(logger, w, status, errorResponse{Error: err.Error()})
}

// statusFromError maps the game error kinds onto the drop_token status codes.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, apperror.ErrInvalidRequest),
		errors.Is(err, apperror.ErrConfiguration),
		errors.Is(err, apperror.ErrIllegalMove),
		errors.Is(err, apperror.ErrRange):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrNotFound),
		errors.Is(err, apperror.ErrAccessDenied):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrOutOfTurn):
		return http.StatusConflict
	case errors.Is(err, apperror.ErrGameOver):
		return http.StatusGone
	default:
		return http.StatusInternalServerError
	}
}

package handler

// Response helpers: every endpoint sends JSON through writeJSON, and every
// failure goes through writeError so the error body shape is identical
// across the API:
//
//	{"error": "<message>"}
//
// writeError is where domain errors become status codes. The services
// return apperror sentinels; nothing below the handler layer knows HTTP.

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sakif/gamepad-api/internal/apperror"
)

// ErrorResponse is the single error body shape used by the whole API.
type ErrorResponse struct {
	Error string `json:"error"`
}

// writeJSON sends a JSON response with the given status code.
// Headers and status must be written before the body — once Encode writes,
// the headers are on the wire.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			// Headers already sent; all we can do is log.
			slog.Error("failed to encode JSON response", slog.String("error", err.Error()))
		}
	}
}

// writeError maps a domain error to its HTTP status and sends the standard
// error body.
//
// STATUS MAPPING (mirrors the apperror taxonomy):
//
//	ErrValidation, ErrInvalidCredentials → 400
//	ErrUnauthorized                      → 401
//	ErrNotFound                          → 404
//	ErrConflict                          → 409
//	anything else                        → 500
//
// For typed errors the client sees the AppError message. For everything
// else the body is a generic message — internal error text (SQL, file
// paths) is logged server-side, never leaked.
func writeError(w http.ResponseWriter, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		status := http.StatusInternalServerError

		switch {
		case errors.Is(err, apperror.ErrValidation),
			errors.Is(err, apperror.ErrInvalidCredentials):
			status = http.StatusBadRequest
		case errors.Is(err, apperror.ErrUnauthorized):
			status = http.StatusUnauthorized
		case errors.Is(err, apperror.ErrNotFound):
			status = http.StatusNotFound
		case errors.Is(err, apperror.ErrConflict):
			status = http.StatusConflict
		}

		writeJSON(w, status, ErrorResponse{Error: appErr.Message})
		return
	}

	slog.Error("internal error", slog.String("error", err.Error()))
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/lumeo/backend/internal/service"
)

// respondJSON writes v as the JSON response body with the given status.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// errorResponse is the JSON failure shape of every API endpoint.
// Message is safe for direct display; the wrapped cause never leaves the
// server.
type errorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// respondError maps a service error onto the HTTP status for its code and
// writes the failure shape. Anything without a code is treated as INTERNAL.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	code := service.CodeOf(err)

	var status int
	switch code {
	case service.CodeUnauthenticated:
		status = http.StatusUnauthorized
	case service.CodePermissionDenied:
		status = http.StatusForbidden
	case service.CodeResourceExhausted:
		status = http.StatusTooManyRequests
	default:
		status = http.StatusInternalServerError
	}

	if status == http.StatusInternalServerError {
		slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	}

	respondJSON(w, status, errorResponse{
		Success: false,
		Code:    string(code),
		Message: service.MessageOf(err),
	})
}

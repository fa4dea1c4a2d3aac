package handler

import (
	"encoding/json"
	"net/http"

	"github.com/lumeo/backend/internal/model"
	"github.com/lumeo/backend/internal/service"
)

// ConsentHandler exposes the GDPR consent-recording endpoint.
type ConsentHandler struct {
	consentService service.ConsentService
}

// NewConsentHandler creates a ConsentHandler with the given service.
func NewConsentHandler(consentService service.ConsentService) *ConsentHandler {
	return &ConsentHandler{consentService: consentService}
}

// consentRequest is the expected JSON body for POST /api/consent.
// consentType is an open set; unrecognized values are stored as-is.
type consentRequest struct {
	Email          string `json:"email"`
	ConsentType    string `json:"consentType"`
	ConsentVersion string `json:"consentVersion"`
}

// Record handles POST /api/consent. No authentication: consent precedes login.
func (h *ConsentHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req consentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid_json"})
		return
	}
	if req.Email == "" {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "email_required"})
		return
	}

	rec := &model.ConsentRecord{
		Email:          req.Email,
		ConsentType:    req.ConsentType,
		ConsentVersion: req.ConsentVersion,
		IPAddress:      ClientIP(r),
		UserAgent:      r.UserAgent(),
	}
	if err := h.consentService.Record(r.Context(), rec); err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "consent recorded",
	})
}

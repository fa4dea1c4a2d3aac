package handler

import (
	"net/http"
	"strconv"

	"github.com/lumeo/backend/internal/model"
	"github.com/lumeo/backend/internal/repository"
)

// AuditHandler exposes the read-only admin view of the audit trail.
type AuditHandler struct {
	auditRepo repository.AuditLogRepository
}

// NewAuditHandler creates an AuditHandler over the given repository.
func NewAuditHandler(auditRepo repository.AuditLogRepository) *AuditHandler {
	return &AuditHandler{auditRepo: auditRepo}
}

// auditListResponse is the JSON response for GET /api/admin/audit-logs.
type auditListResponse struct {
	Entries []*model.AuditLogEntry `json:"entries"`
}

// List handles GET /api/admin/audit-logs (admin-only).
// Supports query params: action, limit, offset.
func (h *AuditHandler) List(w http.ResponseWriter, r *http.Request) {
	opts := model.AuditListOptions{
		Action: r.URL.Query().Get("action"),
		Limit:  50,
		Offset: 0,
	}

	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= 200 {
			opts.Limit = n
		}
	}
	if o := r.URL.Query().Get("offset"); o != "" {
		if n, err := strconv.Atoi(o); err == nil && n >= 0 {
			opts.Offset = n
		}
	}

	entries, err := h.auditRepo.List(r.Context(), opts)
	if err != nil {
		respondError(w, r, err)
		return
	}

	if entries == nil {
		entries = []*model.AuditLogEntry{}
	}
	respondJSON(w, http.StatusOK, auditListResponse{Entries: entries})
}

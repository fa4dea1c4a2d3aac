package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/lumeo/backend/internal/model"
	"github.com/lumeo/backend/internal/repository"
	"github.com/lumeo/backend/internal/service"
	"github.com/lumeo/backend/pkg/auth"
)

const maxMessageLength = 5000

// ContactHandler handles contact form submission, the rate-limit check,
// and admin message management.
type ContactHandler struct {
	contactService   service.ContactService
	rateLimitService service.RateLimitService
}

// NewContactHandler creates a ContactHandler with the given services.
func NewContactHandler(contactService service.ContactService, rateLimitService service.RateLimitService) *ContactHandler {
	return &ContactHandler{contactService: contactService, rateLimitService: rateLimitService}
}

// submitRequest is the expected JSON body for POST /api/contact.
type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	Message string `json:"message"`
}

// Submit handles POST /api/contact.
// email and message are required; message max 5000 chars. The submission is
// rate-limited by IP and email before anything is stored.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid_json"})
		return
	}

	if req.Email == "" {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "email_required"})
		return
	}
	if req.Message == "" {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "message_required"})
		return
	}
	if len([]rune(req.Message)) > maxMessageLength {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "message_too_long"})
		return
	}

	meta := service.RequestMeta{
		IPAddress: ClientIP(r),
		UserAgent: r.UserAgent(),
	}
	if _, err := h.rateLimitService.CheckAndLog(r.Context(), req.Email, meta); err != nil {
		respondError(w, r, err)
		return
	}

	msg := &model.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Company: req.Company,
		Message: req.Message,
	}
	if err := h.contactService.Submit(r.Context(), msg); err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{"success": true, "id": msg.ID})
}

// rateLimitRequest is the expected JSON body for POST /api/contact/rate-limit.
type rateLimitRequest struct {
	Email string `json:"email"`
}

// rateLimitResponse is the success shape of the rate-limit check.
type rateLimitResponse struct {
	Success bool   `json:"success"`
	Allowed bool   `json:"allowed"`
	Message string `json:"message"`
}

// RateLimit handles POST /api/contact/rate-limit: a standalone check-and-log
// call for clients that submit the form through another channel.
func (h *ContactHandler) RateLimit(w http.ResponseWriter, r *http.Request) {
	var req rateLimitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid_json"})
		return
	}
	if req.Email == "" {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "email_required"})
		return
	}

	meta := service.RequestMeta{
		IPAddress: ClientIP(r),
		UserAgent: r.UserAgent(),
	}
	result, err := h.rateLimitService.CheckAndLog(r.Context(), req.Email, meta)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, rateLimitResponse{
		Success: true,
		Allowed: result.Allowed,
		Message: result.Message,
	})
}

// adminListResponse is the JSON response for GET /api/admin/contacts.
type adminListResponse struct {
	Messages []*model.ContactMessage `json:"messages"`
}

// AdminList handles GET /api/admin/contacts (admin-only).
// Supports query params: status (all/unread/read), limit, offset.
func (h *ContactHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	opts := model.ContactListOptions{
		Status: r.URL.Query().Get("status"),
		Limit:  20,
		Offset: 0,
	}

	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= 100 {
			opts.Limit = n
		}
	}
	if o := r.URL.Query().Get("offset"); o != "" {
		if n, err := strconv.Atoi(o); err == nil && n >= 0 {
			opts.Offset = n
		}
	}

	messages, err := h.contactService.List(r.Context(), opts)
	if err != nil {
		respondError(w, r, err)
		return
	}

	// Return [] not null for empty lists
	if messages == nil {
		messages = []*model.ContactMessage{}
	}
	respondJSON(w, http.StatusOK, adminListResponse{Messages: messages})
}

// updateReadRequest is the expected JSON body for PATCH /api/admin/contacts/{id}/read.
type updateReadRequest struct {
	IsRead bool `json:"is_read"`
}

// UpdateRead handles PATCH /api/admin/contacts/{id}/read (admin-only).
func (h *ContactHandler) UpdateRead(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req updateReadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid_json"})
		return
	}

	if err := h.contactService.SetRead(r.Context(), id, req.IsRead); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondJSON(w, http.StatusNotFound, map[string]string{"error": "not_found"})
			return
		}
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}

// AdminDelete handles DELETE /api/admin/contacts/{id} (admin-only).
func (h *ContactHandler) AdminDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	deletedBy := ""
	if caller, ok := auth.IdentityFromContext(r.Context()); ok {
		deletedBy = caller.UID
	}

	if err := h.contactService.Delete(r.Context(), id, deletedBy); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondJSON(w, http.StatusNotFound, map[string]string{"error": "not_found"})
			return
		}
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}

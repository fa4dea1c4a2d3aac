package handler

import (
	"net/http"

	"github.com/lumeo/backend/internal/service"
	"github.com/lumeo/backend/pkg/auth"
)

// AdminClaimsHandler exposes the admin-claim issuance endpoint.
type AdminClaimsHandler struct {
	claimsService service.AdminClaimsService
}

// NewAdminClaimsHandler creates an AdminClaimsHandler with the given service.
func NewAdminClaimsHandler(claimsService service.AdminClaimsService) *AdminClaimsHandler {
	return &AdminClaimsHandler{claimsService: claimsService}
}

// setClaimsResponse is the success shape of POST /api/admin/claims.
type setClaimsResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UID     string `json:"uid"`
}

// SetClaims handles POST /api/admin/claims. The request carries no body:
// the grant applies to the caller's own identity only.
func (h *AdminClaimsHandler) SetClaims(w http.ResponseWriter, r *http.Request) {
	caller, _ := auth.IdentityFromContext(r.Context())

	meta := service.RequestMeta{
		IPAddress: ClientIP(r),
		UserAgent: r.UserAgent(),
	}
	uid, err := h.claimsService.SetAdminClaims(r.Context(), caller, meta)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, setClaimsResponse{
		Success: true,
		Message: "admin claim set",
		UID:     uid,
	})
}

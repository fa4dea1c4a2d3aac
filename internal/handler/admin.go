package handler

import (
	"net/http"

	"github.com/lumeo/backend/internal/identity"
	"github.com/lumeo/backend/pkg/auth"
)

// RequireAdmin is middleware for admin-only routes. It expects an
// authenticated identity in the context (RequireAuth runs first) and checks
// the admin capability claim against the identity provider.
func RequireAdmin(provider identity.Provider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := auth.IdentityFromContext(r.Context())
			if !ok {
				respondJSON(w, http.StatusUnauthorized, errorResponse{
					Code:    "UNAUTHENTICATED",
					Message: "authentication required",
				})
				return
			}

			claims, err := provider.GetCustomClaims(r.Context(), id.UID)
			if err != nil {
				respondError(w, r, err)
				return
			}
			if !identity.IsAdmin(claims) {
				respondJSON(w, http.StatusForbidden, errorResponse{
					Code:    "PERMISSION_DENIED",
					Message: "admin privileges required",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

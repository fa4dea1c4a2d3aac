// Package identity wraps the external identity provider's custom-claims API.
// The provider owns authentication itself; this backend only reads and
// attaches claims for already-verified identities.
package identity

import "context"

// Provider attaches and reads custom claims on an authenticated identity.
type Provider interface {
	// SetCustomClaims merges the given claims into the identity's claim set.
	// Setting the same claims twice is a no-op, so retries are safe.
	SetCustomClaims(ctx context.Context, uid string, claims map[string]any) error

	// GetCustomClaims returns the identity's current claim set. An identity
	// with no claims yields an empty map, not an error.
	GetCustomClaims(ctx context.Context, uid string) (map[string]any, error)
}

// IsAdmin reports whether the claim set carries the admin capability.
func IsAdmin(claims map[string]any) bool {
	v, ok := claims["admin"].(bool)
	return ok && v
}

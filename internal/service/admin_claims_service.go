package service

import (
	"context"

	"github.com/lumeo/backend/internal/identity"
	"github.com/lumeo/backend/internal/model"
	"github.com/lumeo/backend/internal/repository"
	"github.com/lumeo/backend/pkg/auth"
)

// AdminClaimsService grants the admin capability claim. The grant is
// self-service only: a caller can never target another identity.
type AdminClaimsService interface {
	// SetAdminClaims attaches {admin: true} to the caller's own identity and
	// records an audit entry. Fails with UNAUTHENTICATED for anonymous
	// callers and PERMISSION_DENIED for anyone but the configured owner.
	SetAdminClaims(ctx context.Context, caller auth.Identity, meta RequestMeta) (string, error)
}

type adminClaimsService struct {
	provider   identity.Provider
	auditRepo  repository.AuditLogRepository
	ownerEmail string
}

// NewAdminClaimsService creates an AdminClaimsService restricted to the given
// owner email. The owner email is injected configuration, not a constant, so
// each environment carries its own policy.
func NewAdminClaimsService(provider identity.Provider, auditRepo repository.AuditLogRepository, ownerEmail string) AdminClaimsService {
	return &adminClaimsService{provider: provider, auditRepo: auditRepo, ownerEmail: ownerEmail}
}

func (s *adminClaimsService) SetAdminClaims(ctx context.Context, caller auth.Identity, meta RequestMeta) (string, error) {
	if caller.UID == "" {
		return "", ErrUnauthenticated("authentication required")
	}
	if !caller.EmailVerified || caller.Email != s.ownerEmail {
		return "", ErrPermissionDenied("only the site owner can be granted admin access")
	}

	// Claim assignment and audit logging are independent idempotent writes;
	// a retry after a partial failure is safe either way.
	if err := s.provider.SetCustomClaims(ctx, caller.UID, map[string]any{"admin": true}); err != nil {
		return "", ErrInternal(err)
	}

	entry := &model.AuditLogEntry{
		Action: model.AuditAdminClaimSet,
		Details: map[string]any{
			"uid":        caller.UID,
			"email":      caller.Email,
			"ip_address": meta.IPAddress,
			"user_agent": meta.UserAgent,
		},
	}
	if err := s.auditRepo.Append(ctx, entry); err != nil {
		return "", ErrInternal(err)
	}

	return caller.UID, nil
}

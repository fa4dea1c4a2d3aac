package service

import (
	"context"

	"github.com/lumeo/backend/internal/model"
	"github.com/lumeo/backend/internal/repository"
)

// ConsentService records GDPR consent actions. No authentication is
// required: consent precedes login.
type ConsentService interface {
	// Record appends one consent record and one audit entry. consentType is
	// stored as given — the set of types is open, so unrecognized values are
	// not rejected.
	Record(ctx context.Context, rec *model.ConsentRecord) error
}

type consentServiceImpl struct {
	repo      repository.ConsentRepository
	auditRepo repository.AuditLogRepository
}

// NewConsentService creates a ConsentService backed by the given repositories.
func NewConsentService(repo repository.ConsentRepository, auditRepo repository.AuditLogRepository) ConsentService {
	return &consentServiceImpl{repo: repo, auditRepo: auditRepo}
}

// Record writes the consent record first, then the audit entry. The two
// writes are not transactional: an audit failure surfaces as INTERNAL but
// leaves the consent record in place, which is the legally significant
// artifact.
func (s *consentServiceImpl) Record(ctx context.Context, rec *model.ConsentRecord) error {
	if err := s.repo.Insert(ctx, rec); err != nil {
		return ErrInternal(err)
	}

	entry := &model.AuditLogEntry{
		Action: model.AuditUserConsentRecorded,
		Details: map[string]any{
			"email":        rec.Email,
			"consent_type": rec.ConsentType,
		},
	}
	if err := s.auditRepo.Append(ctx, entry); err != nil {
		return ErrInternal(err)
	}
	return nil
}

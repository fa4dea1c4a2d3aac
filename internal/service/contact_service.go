package service

import (
	"context"

	"github.com/lumeo/backend/internal/model"
	"github.com/lumeo/backend/internal/repository"
)

// ContactService defines the business logic for contact messages: public
// submission plus the admin management operations.
type ContactService interface {
	// Submit stores a new contact message. msg.ID and msg.CreatedAt are
	// populated by the implementation.
	Submit(ctx context.Context, msg *model.ContactMessage) error

	// List returns contact messages according to the given options.
	List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error)

	// SetRead toggles the read flag of one message.
	SetRead(ctx context.Context, id string, read bool) error

	// Delete removes one message. deletedBy records the acting admin's uid
	// in the audit trail.
	Delete(ctx context.Context, id string, deletedBy string) error
}

// contactServiceImpl is the production implementation of ContactService.
// Every successful write is followed by a best-effort audit entry; audit
// failures never surface to the caller because the primary write has
// already committed.
type contactServiceImpl struct {
	repo    repository.ContactRepository
	auditor contactAuditor
}

// NewContactService creates a ContactService backed by the given repositories.
func NewContactService(repo repository.ContactRepository, auditRepo repository.AuditLogRepository) ContactService {
	return &contactServiceImpl{repo: repo, auditor: contactAuditor{auditRepo: auditRepo}}
}

func (s *contactServiceImpl) Submit(ctx context.Context, msg *model.ContactMessage) error {
	msg.IsRead = false
	if err := s.repo.Save(ctx, msg); err != nil {
		return ErrInternal(err)
	}
	s.auditor.messageCreated(ctx, msg)
	return nil
}

func (s *contactServiceImpl) List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error) {
	return s.repo.List(ctx, opts)
}

func (s *contactServiceImpl) SetRead(ctx context.Context, id string, read bool) error {
	before, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.SetRead(ctx, id, read); err != nil {
		return err
	}
	after := *before
	after.IsRead = read
	s.auditor.messageUpdated(ctx, before, &after)
	return nil
}

func (s *contactServiceImpl) Delete(ctx context.Context, id string, deletedBy string) error {
	msg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.auditor.messageDeleted(ctx, msg, deletedBy)
	return nil
}

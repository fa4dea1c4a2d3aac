package service

import (
	"context"
	"time"

	"github.com/lumeo/backend/internal/model"
	"github.com/lumeo/backend/internal/repository"
)

const (
	messageRetention       = 30 * 24 * time.Hour
	submissionLogRetention = 7 * 24 * time.Hour
)

// SweepResult summarizes one contact-message retention sweep.
type SweepResult struct {
	Deleted int
	Cutoff  time.Time
}

// RetentionService deletes expired documents on behalf of the scheduler.
// Both sweeps are idempotent: a second run over unchanged data deletes
// nothing. Errors abort the run; batches committed before the error stay
// deleted and the next run picks up whatever remains.
type RetentionService interface {
	// SweepMessages deletes contact messages older than 30 days in store
	// batches and records one summary audit entry.
	SweepMessages(ctx context.Context) (*SweepResult, error)

	// SweepSubmissionLogs deletes rate-limit log entries older than 7 days
	// and returns the count. No audit entry is written for this sweep.
	SweepSubmissionLogs(ctx context.Context) (int, error)
}

type retentionServiceImpl struct {
	contactRepo repository.ContactRepository
	logRepo     repository.SubmissionLogRepository
	auditRepo   repository.AuditLogRepository
	now         func() time.Time
}

// NewRetentionService creates a RetentionService over the given repositories.
func NewRetentionService(contactRepo repository.ContactRepository, logRepo repository.SubmissionLogRepository, auditRepo repository.AuditLogRepository) RetentionService {
	return &retentionServiceImpl{
		contactRepo: contactRepo,
		logRepo:     logRepo,
		auditRepo:   auditRepo,
		now:         time.Now,
	}
}

func (s *retentionServiceImpl) SweepMessages(ctx context.Context) (*SweepResult, error) {
	cutoff := s.now().UTC().Add(-messageRetention)

	ids, err := s.contactRepo.FindIDsCreatedBefore(ctx, cutoff)
	if err != nil {
		return nil, err
	}

	// Flush a fresh batch every MaxBatchOps deletions; the final partial
	// batch is flushed after the scan.
	deleted := 0
	for start := 0; start < len(ids); start += repository.MaxBatchOps {
		end := start + repository.MaxBatchOps
		if end > len(ids) {
			end = len(ids)
		}
		if err := s.contactRepo.DeleteByIDs(ctx, ids[start:end]); err != nil {
			return nil, err
		}
		deleted += end - start
	}

	entry := &model.AuditLogEntry{
		Action: model.AuditAutoDeleteOldMessages,
		Details: map[string]any{
			"messages_deleted": deleted,
			"cutoff":           cutoff,
		},
	}
	if err := s.auditRepo.Append(ctx, entry); err != nil {
		return nil, err
	}

	return &SweepResult{Deleted: deleted, Cutoff: cutoff}, nil
}

func (s *retentionServiceImpl) SweepSubmissionLogs(ctx context.Context) (int, error) {
	cutoff := s.now().UTC().Add(-submissionLogRetention)
	return s.logRepo.DeleteOlderThan(ctx, cutoff)
}

package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/lumeo/backend/internal/model"
	"github.com/lumeo/backend/internal/repository"
)

func newRetentionServiceAt(contactRepo *mockContactRepo, logRepo *mockSubmissionLogRepo, audit *mockAuditRepo, now time.Time) *retentionServiceImpl {
	return &retentionServiceImpl{
		contactRepo: contactRepo,
		logRepo:     logRepo,
		auditRepo:   audit,
		now:         func() time.Time { return now },
	}
}

func seedMessage(repo *mockContactRepo, id string, createdAt time.Time) {
	repo.messages[id] = &model.ContactMessage{ID: id, Email: id + "@example.com", CreatedAt: createdAt}
}

// ---------------------------------------------------------------------------
// SweepMessages tests
// ---------------------------------------------------------------------------

func TestSweepMessages_DeletesOnlyExpired(t *testing.T) {
	now := time.Date(2026, 3, 1, 3, 0, 0, 0, time.UTC)
	repo := newMockContactRepo()
	seedMessage(repo, "young", now.Add(-29*24*time.Hour))
	seedMessage(repo, "expired", now.Add(-30*24*time.Hour-time.Second))
	seedMessage(repo, "older", now.Add(-45*24*time.Hour))

	audit := &mockAuditRepo{}
	svc := newRetentionServiceAt(repo, &mockSubmissionLogRepo{}, audit, now)

	result, err := svc.SweepMessages(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Deleted != 2 {
		t.Errorf("expected 2 deleted, got %d", result.Deleted)
	}
	if _, ok := repo.messages["young"]; !ok {
		t.Error("29-day-old message must survive the sweep")
	}
	if _, ok := repo.messages["expired"]; ok {
		t.Error("30d+1s message must be deleted")
	}
	if _, ok := repo.messages["older"]; ok {
		t.Error("45-day-old message must be deleted")
	}
}

func TestSweepMessages_BatchesCapped(t *testing.T) {
	now := time.Date(2026, 3, 1, 3, 0, 0, 0, time.UTC)
	repo := newMockContactRepo()
	for i := 0; i < 1200; i++ {
		seedMessage(repo, fmt.Sprintf("msg-%04d", i), now.Add(-60*24*time.Hour))
	}

	svc := newRetentionServiceAt(repo, &mockSubmissionLogRepo{}, &mockAuditRepo{}, now)
	result, err := svc.SweepMessages(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Deleted != 1200 {
		t.Errorf("expected 1200 deleted, got %d", result.Deleted)
	}

	total := 0
	for i, batch := range repo.deleteBatches {
		if len(batch) > repository.MaxBatchOps {
			t.Errorf("batch %d has %d ops, exceeds ceiling %d", i, len(batch), repository.MaxBatchOps)
		}
		total += len(batch)
	}
	if total != 1200 {
		t.Errorf("batches cover %d deletions, want 1200", total)
	}
	// 1200 eligible → two full batches plus a flushed partial batch.
	if len(repo.deleteBatches) != 3 {
		t.Errorf("expected 3 batches, got %d", len(repo.deleteBatches))
	}
	if last := repo.deleteBatches[len(repo.deleteBatches)-1]; len(last) != 200 {
		t.Errorf("expected final partial batch of 200, got %d", len(last))
	}
}

func TestSweepMessages_WritesSummaryAudit(t *testing.T) {
	now := time.Date(2026, 3, 1, 3, 0, 0, 0, time.UTC)
	repo := newMockContactRepo()
	seedMessage(repo, "expired", now.Add(-31*24*time.Hour))

	audit := &mockAuditRepo{}
	svc := newRetentionServiceAt(repo, &mockSubmissionLogRepo{}, audit, now)
	result, err := svc.SweepMessages(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(audit.entries) != 1 {
		t.Fatalf("expected 1 summary audit entry, got %d", len(audit.entries))
	}
	entry := audit.entries[0]
	if entry.Action != model.AuditAutoDeleteOldMessages {
		t.Errorf("expected action %s, got %s", model.AuditAutoDeleteOldMessages, entry.Action)
	}
	if entry.Details["messages_deleted"] != 1 {
		t.Errorf("expected messages_deleted=1, got %v", entry.Details["messages_deleted"])
	}
	if entry.Details["cutoff"] != result.Cutoff {
		t.Errorf("expected cutoff %v in details, got %v", result.Cutoff, entry.Details["cutoff"])
	}
}

// TestSweepMessages_Idempotent: a second run over unchanged data deletes
// nothing more.
func TestSweepMessages_Idempotent(t *testing.T) {
	now := time.Date(2026, 3, 1, 3, 0, 0, 0, time.UTC)
	repo := newMockContactRepo()
	seedMessage(repo, "expired", now.Add(-31*24*time.Hour))
	seedMessage(repo, "young", now.Add(-1*24*time.Hour))

	svc := newRetentionServiceAt(repo, &mockSubmissionLogRepo{}, &mockAuditRepo{}, now)

	first, err := svc.SweepMessages(context.Background())
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if first.Deleted != 1 {
		t.Fatalf("first run: expected 1 deleted, got %d", first.Deleted)
	}

	second, err := svc.SweepMessages(context.Background())
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if second.Deleted != 0 {
		t.Errorf("second run: expected 0 deleted, got %d", second.Deleted)
	}
}

// ---------------------------------------------------------------------------
// SweepSubmissionLogs tests
// ---------------------------------------------------------------------------

func TestSweepSubmissionLogs_DeletesExpiredOnly(t *testing.T) {
	now := time.Date(2026, 3, 1, 4, 0, 0, 0, time.UTC)
	logRepo := &mockSubmissionLogRepo{entries: []model.SubmissionLogEntry{
		{IPAddress: "1.1.1.1", Timestamp: now.Add(-8 * 24 * time.Hour)},
		{IPAddress: "2.2.2.2", Timestamp: now.Add(-6 * 24 * time.Hour)},
	}}

	audit := &mockAuditRepo{}
	svc := newRetentionServiceAt(newMockContactRepo(), logRepo, audit, now)

	deleted, err := svc.SweepSubmissionLogs(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != 1 {
		t.Errorf("expected 1 deleted, got %d", deleted)
	}
	if len(logRepo.entries) != 1 || logRepo.entries[0].IPAddress != "2.2.2.2" {
		t.Errorf("expected only the fresh entry to remain, got %+v", logRepo.entries)
	}
	// The log sweep writes no audit entry; only the message sweep does.
	if len(audit.entries) != 0 {
		t.Errorf("expected no audit entry from the log sweep, got %d", len(audit.entries))
	}
}

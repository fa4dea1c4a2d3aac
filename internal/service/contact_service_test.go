package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/lumeo/backend/internal/model"
	"github.com/lumeo/backend/internal/repository"
)

// ---------------------------------------------------------------------------
// mockContactRepo — in-memory ContactRepository for unit tests
// ---------------------------------------------------------------------------

type mockContactRepo struct {
	messages  map[string]*model.ContactMessage
	nextID    int
	saveErr   error
	deleteErr error

	deleteBatches [][]string
}

func newMockContactRepo() *mockContactRepo {
	return &mockContactRepo{messages: make(map[string]*model.ContactMessage)}
}

func (r *mockContactRepo) Save(ctx context.Context, msg *model.ContactMessage) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.nextID++
	msg.ID = fmt.Sprintf("msg-%d", r.nextID)
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}
	stored := *msg
	r.messages[msg.ID] = &stored
	return nil
}

func (r *mockContactRepo) FindByID(ctx context.Context, id string) (*model.ContactMessage, error) {
	m, ok := r.messages[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *m
	return &copied, nil
}

func (r *mockContactRepo) List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error) {
	var out []*model.ContactMessage
	for _, m := range r.messages {
		out = append(out, m)
	}
	return out, nil
}

func (r *mockContactRepo) SetRead(ctx context.Context, id string, read bool) error {
	m, ok := r.messages[id]
	if !ok {
		return repository.ErrNotFound
	}
	m.IsRead = read
	return nil
}

func (r *mockContactRepo) Delete(ctx context.Context, id string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.messages[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.messages, id)
	return nil
}

func (r *mockContactRepo) FindIDsCreatedBefore(ctx context.Context, cutoff time.Time) ([]string, error) {
	var ids []string
	for id, m := range r.messages {
		if m.CreatedAt.Before(cutoff) {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (r *mockContactRepo) DeleteByIDs(ctx context.Context, ids []string) error {
	r.deleteBatches = append(r.deleteBatches, ids)
	for _, id := range ids {
		delete(r.messages, id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Submit tests
// ---------------------------------------------------------------------------

func TestContactService_Submit_StoresUnread(t *testing.T) {
	repo := newMockContactRepo()
	audit := &mockAuditRepo{}
	svc := NewContactService(repo, audit)

	msg := &model.ContactMessage{
		Name:    "Alice",
		Email:   "alice@example.com",
		Message: "Hello",
		IsRead:  true, // must be reset by the service
	}
	if err := svc.Submit(context.Background(), msg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.ID == "" {
		t.Error("expected ID populated")
	}
	if msg.IsRead {
		t.Error("expected new message stored as unread")
	}
}

func TestContactService_Submit_WritesCreationAudit(t *testing.T) {
	repo := newMockContactRepo()
	audit := &mockAuditRepo{}
	svc := NewContactService(repo, audit)

	msg := &model.ContactMessage{Email: "a@example.com", Message: "Hi"}
	if err := svc.Submit(context.Background(), msg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(audit.entries) != 1 {
		t.Fatalf("expected 1 audit entry, got %d", len(audit.entries))
	}
	entry := audit.entries[0]
	if entry.Action != model.AuditContactMessageCreated {
		t.Errorf("expected action %s, got %s", model.AuditContactMessageCreated, entry.Action)
	}
	if entry.Details["email"] != "a@example.com" || entry.Details["document_id"] != msg.ID {
		t.Errorf("unexpected audit details: %v", entry.Details)
	}
}

// TestContactService_Submit_AuditFailureSwallowed: the message write has
// committed, so a failed audit append must not fail the submission.
func TestContactService_Submit_AuditFailureSwallowed(t *testing.T) {
	repo := newMockContactRepo()
	audit := &mockAuditRepo{appendErr: errors.New("audit store down")}
	svc := NewContactService(repo, audit)

	msg := &model.ContactMessage{Email: "a@example.com", Message: "Hi"}
	if err := svc.Submit(context.Background(), msg); err != nil {
		t.Fatalf("expected success despite audit failure, got %v", err)
	}
	if len(repo.messages) != 1 {
		t.Error("expected message persisted")
	}
}

// ---------------------------------------------------------------------------
// SetRead / update-audit tests
// ---------------------------------------------------------------------------

func TestContactService_SetRead_AuditsDiff(t *testing.T) {
	repo := newMockContactRepo()
	audit := &mockAuditRepo{}
	svc := NewContactService(repo, audit)

	msg := &model.ContactMessage{Email: "a@example.com", Message: "Hi"}
	if err := svc.Submit(context.Background(), msg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	audit.entries = nil

	if err := svc.SetRead(context.Background(), msg.ID, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(audit.entries) != 1 {
		t.Fatalf("expected 1 audit entry, got %d", len(audit.entries))
	}
	entry := audit.entries[0]
	if entry.Action != model.AuditContactMessageUpdated {
		t.Errorf("expected action %s, got %s", model.AuditContactMessageUpdated, entry.Action)
	}
	changes, ok := entry.Details["changes"].([]string)
	if !ok {
		t.Fatalf("expected changes list, got %T", entry.Details["changes"])
	}
	if !reflect.DeepEqual(changes, []string{"is_read"}) {
		t.Errorf("expected changes [is_read], got %v", changes)
	}
	if entry.Details["before"] == nil || entry.Details["after"] == nil {
		t.Error("expected before/after snapshots in audit details")
	}
}

func TestContactService_SetRead_NotFound(t *testing.T) {
	svc := NewContactService(newMockContactRepo(), &mockAuditRepo{})
	err := svc.SetRead(context.Background(), "missing", true)
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Delete tests
// ---------------------------------------------------------------------------

func TestContactService_Delete_WritesAudit(t *testing.T) {
	repo := newMockContactRepo()
	audit := &mockAuditRepo{}
	svc := NewContactService(repo, audit)

	msg := &model.ContactMessage{Email: "a@example.com", Message: "Hi"}
	if err := svc.Submit(context.Background(), msg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	audit.entries = nil

	if err := svc.Delete(context.Background(), msg.ID, "admin-uid"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(audit.entries) != 1 {
		t.Fatalf("expected 1 audit entry, got %d", len(audit.entries))
	}
	entry := audit.entries[0]
	if entry.Action != model.AuditContactMessageDeleted {
		t.Errorf("expected action %s, got %s", model.AuditContactMessageDeleted, entry.Action)
	}
	if entry.Details["deleted_by"] != "admin-uid" {
		t.Errorf("expected deleted_by recorded, got %v", entry.Details)
	}
}

// ---------------------------------------------------------------------------
// ChangedFields tests
// ---------------------------------------------------------------------------

func TestChangedFields_ExactDiff(t *testing.T) {
	before := map[string]any{"name": "A", "email": "a@x.com", "is_read": false}
	after := map[string]any{"name": "B", "email": "a@x.com", "is_read": true}

	got := ChangedFields(before, after)
	want := []string{"is_read", "name"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestChangedFields_NoChanges(t *testing.T) {
	fields := map[string]any{"name": "A", "is_read": true}
	if got := ChangedFields(fields, fields); len(got) != 0 {
		t.Errorf("expected no changes, got %v", got)
	}
}

func TestChangedFields_AddedAndRemovedKeys(t *testing.T) {
	before := map[string]any{"name": "A", "phone": "123"}
	after := map[string]any{"name": "A", "company": "ACME"}

	got := ChangedFields(before, after)
	want := []string{"company", "phone"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

package service

import (
	"context"
	"log/slog"
	"sort"

	"github.com/lumeo/backend/internal/model"
	"github.com/lumeo/backend/internal/repository"
)

// contactAuditor writes the reactive audit entries for contact-message
// writes. The triggering write has already committed when these run, so a
// failed audit append is logged and swallowed — it never fails the caller.
type contactAuditor struct {
	auditRepo repository.AuditLogRepository
}

func (a *contactAuditor) messageCreated(ctx context.Context, msg *model.ContactMessage) {
	entry := &model.AuditLogEntry{
		Action: model.AuditContactMessageCreated,
		Details: map[string]any{
			"document_id": msg.ID,
			"email":       msg.Email,
		},
	}
	if err := a.auditRepo.Append(ctx, entry); err != nil {
		slog.Error("audit append failed", "action", entry.Action, "document_id", msg.ID, "error", err)
	}
}

func (a *contactAuditor) messageUpdated(ctx context.Context, before, after *model.ContactMessage) {
	beforeFields := messageFields(before)
	afterFields := messageFields(after)
	entry := &model.AuditLogEntry{
		Action: model.AuditContactMessageUpdated,
		Details: map[string]any{
			"document_id": after.ID,
			"before":      beforeFields,
			"after":       afterFields,
			"changes":     ChangedFields(beforeFields, afterFields),
		},
	}
	if err := a.auditRepo.Append(ctx, entry); err != nil {
		slog.Error("audit append failed", "action", entry.Action, "document_id", after.ID, "error", err)
	}
}

func (a *contactAuditor) messageDeleted(ctx context.Context, msg *model.ContactMessage, deletedBy string) {
	entry := &model.AuditLogEntry{
		Action: model.AuditContactMessageDeleted,
		Details: map[string]any{
			"document_id": msg.ID,
			"email":       msg.Email,
			"deleted_by":  deletedBy,
		},
	}
	if err := a.auditRepo.Append(ctx, entry); err != nil {
		slog.Error("audit append failed", "action", entry.Action, "document_id", msg.ID, "error", err)
	}
}

// messageFields flattens a message into its top-level stored fields.
// The id is identity, not content, so it is not part of the snapshot.
func messageFields(msg *model.ContactMessage) map[string]any {
	return map[string]any{
		"name":       msg.Name,
		"email":      msg.Email,
		"phone":      msg.Phone,
		"company":    msg.Company,
		"message":    msg.Message,
		"is_read":    msg.IsRead,
		"created_at": msg.CreatedAt,
	}
}

// ChangedFields returns the sorted names of top-level fields whose values
// differ between the two snapshots. Comparison is shallow inequality.
func ChangedFields(before, after map[string]any) []string {
	var changed []string
	for key, b := range before {
		if a, ok := after[key]; !ok || a != b {
			changed = append(changed, key)
		}
	}
	for key := range after {
		if _, ok := before[key]; !ok {
			changed = append(changed, key)
		}
	}
	sort.Strings(changed)
	return changed
}

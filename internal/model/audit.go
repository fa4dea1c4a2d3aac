package model

import "time"

// Audit actions recorded by this backend. The action string is part of the
// stored row and must stay stable once written.
const (
	AuditAdminClaimSet         = "admin_claim_set"
	AuditContactMessageCreated = "contact_message_created"
	AuditContactMessageUpdated = "contact_message_updated"
	AuditContactMessageDeleted = "contact_message_deleted"
	AuditAutoDeleteOldMessages = "auto_delete_old_messages"
	AuditUserConsentRecorded   = "user_consent_recorded"
)

// AuditLogEntry is an append-only record of a privileged or sensitive action.
// Entries are never updated or deleted by this backend. Details carries the
// action-specific payload (document id, before/after snapshots, counts, ...)
// and is stored as JSONB; its keys reference other rows loosely, so an entry
// may outlive the document it describes.
type AuditLogEntry struct {
	ID        string         `json:"id"`
	Action    string         `json:"action"`
	Details   map[string]any `json:"details"`
	Timestamp time.Time      `json:"timestamp"`
}

// AuditListOptions carries filter and pagination parameters for listing
// audit log entries.
type AuditListOptions struct {
	// Action filters by action tag; empty returns all actions.
	Action string
	Limit  int
	Offset int
}

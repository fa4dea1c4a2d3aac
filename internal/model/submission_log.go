package model

import "time"

// SubmissionLogEntry records one allowed contact-form submission attempt.
// Entries exist only for rate-limit accounting and are never mutated;
// the retention sweeper removes them after seven days.
type SubmissionLogEntry struct {
	ID        string    `json:"id"`
	IPAddress string    `json:"ip_address"`
	Email     string    `json:"email"`
	UserAgent string    `json:"user_agent"`
	Timestamp time.Time `json:"timestamp"`
}

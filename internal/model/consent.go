package model

import "time"

// Known consent types. The set is open: unrecognized values are stored as-is
// so that new consent categories never require a schema change.
const (
	ConsentDataCollection = "data_collection"
	ConsentMarketing      = "marketing"
	ConsentAnalytics      = "analytics"
)

// ConsentRecord is an immutable record of a user's consent action.
// Consent precedes login, so there is no user id — the email and the request
// metadata are the legally significant identification.
type ConsentRecord struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	ConsentType    string    `json:"consent_type"`
	ConsentVersion string    `json:"consent_version"`
	IPAddress      string    `json:"ip_address"`
	UserAgent      string    `json:"user_agent"`
	Timestamp      time.Time `json:"timestamp"`
}

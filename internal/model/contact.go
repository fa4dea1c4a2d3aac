package model

import "time"

// ContactMessage represents a message submitted via the public contact form.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Company   string    `json:"company,omitempty"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// ContactListOptions carries filter and pagination parameters for listing
// contact messages.
type ContactListOptions struct {
	// Status filters by read state: "", "all", "unread", "read".
	// Empty string and "all" return all messages.
	Status string
	Limit  int
	Offset int
}

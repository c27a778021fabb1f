package models

import (
	"time"

	"github.com/google/uuid"
)

// SubmissionStatus tracks whether a contact submission has been read in
// the admin inbox.
type SubmissionStatus string

const (
	SubmissionUnread SubmissionStatus = "unread"
	SubmissionRead   SubmissionStatus = "read"
)

// ContactSubmission is an inbound message from the public contact form.
type ContactSubmission struct {
	ID        uuid.UUID        `json:"id"`
	Email     string           `json:"email"`
	Message   string           `json:"message"`
	Status    SubmissionStatus `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
}

// IsUnread reports whether the submission still awaits attention.
func (c *ContactSubmission) IsUnread() bool {
	return c.Status == SubmissionUnread
}

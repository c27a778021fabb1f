package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"foliocms/internal/models"
)

// SubmissionStore handles inbound contact form submissions.
type SubmissionStore struct {
	db *sql.DB
}

// NewSubmissionStore creates a new SubmissionStore with the given database connection.
func NewSubmissionStore(db *sql.DB) *SubmissionStore {
	return &SubmissionStore{db: db}
}

// Create persists a validated submission with the default unread status.
func (s *SubmissionStore) Create(email, message string) (*models.ContactSubmission, error) {
	sub := &models.ContactSubmission{}
	err := s.db.QueryRow(`
		INSERT INTO contact_submissions (email, message, status)
		VALUES ($1, $2, $3)
		RETURNING id, email, message, status, created_at
	`, email, message, models.SubmissionUnread).Scan(
		&sub.ID, &sub.Email, &sub.Message, &sub.Status, &sub.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create submission: %w", err)
	}
	return sub, nil
}

// List returns all submissions, newest first.
func (s *SubmissionStore) List() ([]models.ContactSubmission, error) {
	rows, err := s.db.Query(`
		SELECT id, email, message, status, created_at
		FROM contact_submissions
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	defer rows.Close()

	var subs []models.ContactSubmission
	for rows.Next() {
		var sub models.ContactSubmission
		if err := rows.Scan(&sub.ID, &sub.Email, &sub.Message, &sub.Status, &sub.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

// MarkRead flips a submission to read status.
func (s *SubmissionStore) MarkRead(id uuid.UUID) error {
	_, err := s.db.Exec(`
		UPDATE contact_submissions SET status = $1 WHERE id = $2
	`, models.SubmissionRead, id)
	if err != nil {
		return fmt.Errorf("mark submission read: %w", err)
	}
	return nil
}

// CountUnread returns how many submissions still await attention. Shown on
// the admin dashboard.
func (s *SubmissionStore) CountUnread() (int, error) {
	var count int
	err := s.db.QueryRow(`
		SELECT COUNT(*) FROM contact_submissions WHERE status = $1
	`, models.SubmissionUnread).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count unread submissions: %w", err)
	}
	return count, nil
}

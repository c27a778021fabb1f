// Package store provides database access methods for all FolioCMS
// entities. Each store struct wraps a *sql.DB and exposes typed query methods.
package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"foliocms/internal/models"
)

// HeroStore handles hero records. Heroes deliberately break the singleton
// convention of the other sections: one record exists per target audience
// and the public page selects by exact audience match.
type HeroStore struct {
	db *sql.DB
}

// NewHeroStore creates a new HeroStore with the given database connection.
func NewHeroStore(db *sql.DB) *HeroStore {
	return &HeroStore{db: db}
}

const heroColumns = `id, audience, title, subtitle, github_url, resume_url, is_visible, created_at, updated_at`

func scanHero(row interface{ Scan(...any) error }) (*models.Hero, error) {
	h := &models.Hero{}
	err := row.Scan(
		&h.ID, &h.Audience, &h.Title, &h.Subtitle, &h.GithubURL,
		&h.ResumeURL, &h.IsVisible, &h.CreatedAt, &h.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return h, nil
}

// ForAudience returns the first visible hero targeting the given audience,
// or nil if none exists. No fallback across audiences — the page default
// handles that by requesting the general audience.
func (s *HeroStore) ForAudience(aud models.Audience) (*models.Hero, error) {
	h, err := scanHero(s.db.QueryRow(`
		SELECT `+heroColumns+`
		FROM heroes
		WHERE audience = $1 AND is_visible = TRUE
		ORDER BY created_at ASC
		LIMIT 1
	`, aud))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find hero for audience: %w", err)
	}
	return h, nil
}

// List returns all hero records ordered by creation date. Used by the
// admin editor, which shows hidden heroes too.
func (s *HeroStore) List() ([]models.Hero, error) {
	rows, err := s.db.Query(`
		SELECT ` + heroColumns + `
		FROM heroes
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list heroes: %w", err)
	}
	defer rows.Close()

	var heroes []models.Hero
	for rows.Next() {
		h, err := scanHero(rows)
		if err != nil {
			return nil, fmt.Errorf("scan hero: %w", err)
		}
		heroes = append(heroes, *h)
	}
	return heroes, rows.Err()
}

// FindByID retrieves a hero by its UUID. Returns nil if not found.
func (s *HeroStore) FindByID(id uuid.UUID) (*models.Hero, error) {
	h, err := scanHero(s.db.QueryRow(`
		SELECT `+heroColumns+` FROM heroes WHERE id = $1
	`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find hero by id: %w", err)
	}
	return h, nil
}

// Create inserts a new hero record and returns it with the generated ID.
func (s *HeroStore) Create(h *models.Hero) (*models.Hero, error) {
	created, err := scanHero(s.db.QueryRow(`
		INSERT INTO heroes (audience, title, subtitle, github_url, resume_url, is_visible)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+heroColumns,
		h.Audience, h.Title, h.Subtitle, h.GithubURL, h.ResumeURL, h.IsVisible,
	))
	if err != nil {
		return nil, fmt.Errorf("create hero: %w", err)
	}
	return created, nil
}

// Update modifies an existing hero record.
func (s *HeroStore) Update(h *models.Hero) error {
	_, err := s.db.Exec(`
		UPDATE heroes SET
			audience = $1, title = $2, subtitle = $3, github_url = $4,
			resume_url = $5, is_visible = $6, updated_at = NOW()
		WHERE id = $7
	`, h.Audience, h.Title, h.Subtitle, h.GithubURL, h.ResumeURL, h.IsVisible, h.ID)
	if err != nil {
		return fmt.Errorf("update hero: %w", err)
	}
	return nil
}

// Delete removes a hero record by ID. Heroes are the only section records
// with individual deletion — removing one retires that audience's intro.
func (s *HeroStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM heroes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete hero: %w", err)
	}
	return nil
}

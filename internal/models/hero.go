package models

import (
	"time"

	"github.com/google/uuid"
)

// Hero is the page intro block. Unlike the other sections, heroes are not
// a singleton: one record exists per target audience and the public page
// picks the first visible record whose audience matches exactly. This
// divergence is deliberate — hero copy genuinely differs per audience.
type Hero struct {
	ID        uuid.UUID `json:"id"`
	Audience  Audience  `json:"audience"`
	Title     string    `json:"title"`
	Subtitle  *string   `json:"subtitle,omitempty"`
	GithubURL *string   `json:"github_url,omitempty"`
	ResumeURL *string   `json:"resume_url,omitempty"`
	IsVisible bool      `json:"is_visible"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

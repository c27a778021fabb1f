package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"foliocms/internal/models"
)

// Seed populates the database with initial development content: a hero
// per audience and one row per page section. It is a no-op when any
// content already exists, so it is safe to run on every startup.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM sections").Scan(&count); err != nil {
		return fmt.Errorf("seed check sections: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	if err := seedHeroes(db); err != nil {
		return err
	}
	if err := seedSections(db); err != nil {
		return err
	}

	slog.Info("database seeded with starter content")
	return nil
}

func seedHeroes(db *sql.DB) error {
	subtitle := "Full-stack developer building fast, focused web products."
	github := "https://github.com/example"

	heroes := []struct {
		audience models.Audience
		title    string
	}{
		{models.AudienceGeneral, "Hi, I'm a developer who ships."},
		{models.AudienceCompany, "Engineering experience your team can plug in tomorrow."},
		{models.AudienceFreelance, "Your project, delivered end to end."},
	}

	for _, h := range heroes {
		_, err := db.Exec(`
			INSERT INTO heroes (audience, title, subtitle, github_url, is_visible)
			VALUES ($1, $2, $3, $4, TRUE)
		`, h.audience, h.title, subtitle, github)
		if err != nil {
			return fmt.Errorf("seed hero %s: %w", h.audience, err)
		}
	}

	return nil
}

func seedSections(db *sql.DB) error {
	storyTabs := []models.StoryTab{
		{
			ID:      "beginnings",
			Title:   "Beginnings",
			Content: "Started out building small sites for friends, then never stopped.",
			Year:    "2018",
			Visibility: models.Visibility{
				IsVisible: true,
			},
		},
		{
			ID:      "today",
			Title:   "Today",
			Content: "These days I design and run production services end to end.",
			Year:    "2025",
			Visibility: models.Visibility{
				IsVisible: true,
			},
		},
	}

	skillCategories := []models.SkillCategory{
		{
			ID:    "backend",
			Title: "Backend",
			Skills: []models.SkillItem{
				{ID: "go", Name: "Go", IsCore: true, Visibility: models.Visibility{IsVisible: true}},
				{ID: "postgres", Name: "PostgreSQL", Visibility: models.Visibility{IsVisible: true}},
			},
			Visibility: models.Visibility{IsVisible: true},
		},
		{
			ID:    "frontend",
			Title: "Frontend",
			Skills: []models.SkillItem{
				{ID: "ts", Name: "TypeScript", Visibility: models.Visibility{IsVisible: true}},
			},
			Visibility: models.Visibility{IsVisible: true},
		},
	}

	projects := []models.Project{
		{
			ID:          "portfolio",
			Title:       "This site",
			Description: "Audience-aware portfolio with a built-in CMS.",
			TechStack:   []string{"go", "postgres"},
			Visibility:  models.Visibility{IsVisible: true},
		},
	}

	testimonials := []models.Testimonial{
		{
			ID:        "first-client",
			Name:      "A. Client",
			Role:      "Founder",
			Content:   "Delivered ahead of schedule, communicated the whole way.",
			IsVisible: true,
		},
	}

	socialLinks := []models.SocialLink{
		{
			ID:         "github",
			Platform:   "github",
			Label:      "GitHub",
			URL:        "https://github.com/example",
			Visibility: models.Visibility{IsVisible: true},
		},
	}

	sections := []struct {
		key           models.SectionKey
		onlyFreelance bool
		title         any
		subtitle      any
		description   any
		receiverEmail any
		items         any
	}{
		{key: models.SectionStory, items: storyTabs},
		{key: models.SectionSkills, items: skillCategories},
		{key: models.SectionProjects, items: projects},
		{key: models.SectionTestimonials, onlyFreelance: true, items: testimonials},
		{
			key:           models.SectionContact,
			title:         "Let's talk",
			subtitle:      "Have a project in mind?",
			description:   "Drop a message and I'll get back within a day.",
			receiverEmail: "hello@example.com",
			items:         socialLinks,
		},
	}

	for _, s := range sections {
		payload, err := json.Marshal(s.items)
		if err != nil {
			return fmt.Errorf("seed marshal %s items: %w", s.key, err)
		}

		_, err = db.Exec(`
			INSERT INTO sections (key, is_visible, only_freelance, title, subtitle, description, receiver_email, items)
			VALUES ($1, TRUE, $2, $3, $4, $5, $6, $7)
		`, s.key, s.onlyFreelance, s.title, s.subtitle, s.description, s.receiverEmail, payload)
		if err != nil {
			return fmt.Errorf("seed section %s: %w", s.key, err)
		}
	}

	return nil
}

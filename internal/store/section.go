package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"foliocms/internal/models"
)

// SectionStore handles the singleton content sections. Every section lives
// in one row of the sections table under its well-known key, with its item
// list stored as a JSONB array, and saves are keyed upserts — a section
// can never exist twice, and the whole item list is replaced on each save
// (last-writer-wins, no merge).
type SectionStore struct {
	db *sql.DB
}

// NewSectionStore creates a new SectionStore with the given database connection.
func NewSectionStore(db *sql.DB) *SectionStore {
	return &SectionStore{db: db}
}

// sectionRow is the raw sections table row. Scalar columns not used by a
// given section type stay NULL.
type sectionRow struct {
	isVisible     bool
	onlyFreelance bool
	title         sql.NullString
	subtitle      sql.NullString
	description   sql.NullString
	receiverEmail sql.NullString
	items         []byte
}

// get loads a section row by key. Returns nil if the section has never
// been saved.
func (s *SectionStore) get(key models.SectionKey) (*sectionRow, error) {
	row := &sectionRow{}
	err := s.db.QueryRow(`
		SELECT is_visible, only_freelance, title, subtitle, description, receiver_email, items
		FROM sections WHERE key = $1
	`, string(key)).Scan(
		&row.isVisible, &row.onlyFreelance, &row.title, &row.subtitle,
		&row.description, &row.receiverEmail, &row.items,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get section %s: %w", key, err)
	}
	return row, nil
}

// upsert writes a section row wholesale under its key.
func (s *SectionStore) upsert(key models.SectionKey, row *sectionRow) error {
	if len(row.items) == 0 {
		row.items = []byte("[]")
	}

	_, err := s.db.Exec(`
		INSERT INTO sections (key, is_visible, only_freelance, title, subtitle, description, receiver_email, items, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		ON CONFLICT (key) DO UPDATE SET
			is_visible = EXCLUDED.is_visible,
			only_freelance = EXCLUDED.only_freelance,
			title = EXCLUDED.title,
			subtitle = EXCLUDED.subtitle,
			description = EXCLUDED.description,
			receiver_email = EXCLUDED.receiver_email,
			items = EXCLUDED.items,
			updated_at = NOW()
	`, string(key), row.isVisible, row.onlyFreelance, row.title, row.subtitle,
		row.description, row.receiverEmail, row.items,
	)
	if err != nil {
		return fmt.Errorf("upsert section %s: %w", key, err)
	}
	return nil
}

// SectionStatus is a lightweight sections row for the admin dashboard.
type SectionStatus struct {
	Key       models.SectionKey
	IsVisible bool
}

// Statuses returns every saved section with its visibility switch, without
// decoding item payloads. Sections that were never saved are absent.
func (s *SectionStore) Statuses() ([]SectionStatus, error) {
	rows, err := s.db.Query(`SELECT key, is_visible FROM sections ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("section statuses: %w", err)
	}
	defer rows.Close()

	var out []SectionStatus
	for rows.Next() {
		var st SectionStatus
		if err := rows.Scan(&st.Key, &st.IsVisible); err != nil {
			return nil, fmt.Errorf("scan section status: %w", err)
		}
		out = append(out, st)
	}
	return out, rows.Err()
}

// marshalItems encodes a section's item list, mapping a nil slice to an
// empty JSON array so the stored document is always a list.
func marshalItems(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal section items: %w", err)
	}
	if string(data) == "null" {
		data = []byte("[]")
	}
	return data, nil
}

// Story loads the story section. Returns nil if it has never been saved.
func (s *SectionStore) Story() (*models.StorySection, error) {
	row, err := s.get(models.SectionStory)
	if err != nil || row == nil {
		return nil, err
	}

	var tabs []models.StoryTab
	if err := json.Unmarshal(row.items, &tabs); err != nil {
		return nil, fmt.Errorf("decode story tabs: %w", err)
	}
	return &models.StorySection{IsVisible: row.isVisible, Tabs: tabs}, nil
}

// SaveStory replaces the story section wholesale.
func (s *SectionStore) SaveStory(isVisible bool, tabs []models.StoryTab) error {
	items, err := marshalItems(tabs)
	if err != nil {
		return err
	}
	return s.upsert(models.SectionStory, &sectionRow{isVisible: isVisible, items: items})
}

// Skills loads the skills section. Returns nil if it has never been saved.
func (s *SectionStore) Skills() (*models.SkillsSection, error) {
	row, err := s.get(models.SectionSkills)
	if err != nil || row == nil {
		return nil, err
	}

	var categories []models.SkillCategory
	if err := json.Unmarshal(row.items, &categories); err != nil {
		return nil, fmt.Errorf("decode skill categories: %w", err)
	}
	return &models.SkillsSection{IsVisible: row.isVisible, Categories: categories}, nil
}

// SaveSkills replaces the skills section wholesale.
func (s *SectionStore) SaveSkills(isVisible bool, categories []models.SkillCategory) error {
	items, err := marshalItems(categories)
	if err != nil {
		return err
	}
	return s.upsert(models.SectionSkills, &sectionRow{isVisible: isVisible, items: items})
}

// Projects loads the projects section. Returns nil if it has never been saved.
func (s *SectionStore) Projects() (*models.ProjectsSection, error) {
	row, err := s.get(models.SectionProjects)
	if err != nil || row == nil {
		return nil, err
	}

	var projects []models.Project
	if err := json.Unmarshal(row.items, &projects); err != nil {
		return nil, fmt.Errorf("decode projects: %w", err)
	}
	return &models.ProjectsSection{IsVisible: row.isVisible, Projects: projects}, nil
}

// SaveProjects replaces the projects section wholesale.
func (s *SectionStore) SaveProjects(isVisible bool, projects []models.Project) error {
	items, err := marshalItems(projects)
	if err != nil {
		return err
	}
	return s.upsert(models.SectionProjects, &sectionRow{isVisible: isVisible, items: items})
}

// Testimonials loads the testimonials section. Returns nil if it has never
// been saved.
func (s *SectionStore) Testimonials() (*models.TestimonialsSection, error) {
	row, err := s.get(models.SectionTestimonials)
	if err != nil || row == nil {
		return nil, err
	}

	var testimonials []models.Testimonial
	if err := json.Unmarshal(row.items, &testimonials); err != nil {
		return nil, fmt.Errorf("decode testimonials: %w", err)
	}
	return &models.TestimonialsSection{
		IsVisible:     row.isVisible,
		OnlyFreelance: row.onlyFreelance,
		Testimonials:  testimonials,
	}, nil
}

// SaveTestimonials replaces the testimonials section wholesale.
func (s *SectionStore) SaveTestimonials(isVisible, onlyFreelance bool, testimonials []models.Testimonial) error {
	items, err := marshalItems(testimonials)
	if err != nil {
		return err
	}
	return s.upsert(models.SectionTestimonials, &sectionRow{
		isVisible:     isVisible,
		onlyFreelance: onlyFreelance,
		items:         items,
	})
}

// Contact loads the contact section. Returns nil if it has never been saved.
func (s *SectionStore) Contact() (*models.ContactSection, error) {
	row, err := s.get(models.SectionContact)
	if err != nil || row == nil {
		return nil, err
	}

	var links []models.SocialLink
	if err := json.Unmarshal(row.items, &links); err != nil {
		return nil, fmt.Errorf("decode social links: %w", err)
	}
	return &models.ContactSection{
		IsVisible:     row.isVisible,
		Title:         row.title.String,
		Subtitle:      row.subtitle.String,
		Description:   row.description.String,
		ReceiverEmail: row.receiverEmail.String,
		SocialLinks:   links,
	}, nil
}

// SaveContact replaces the contact section wholesale.
func (s *SectionStore) SaveContact(section *models.ContactSection) error {
	items, err := marshalItems(section.SocialLinks)
	if err != nil {
		return err
	}
	return s.upsert(models.SectionContact, &sectionRow{
		isVisible:     section.IsVisible,
		title:         nullString(section.Title),
		subtitle:      nullString(section.Subtitle),
		description:   nullString(section.Description),
		receiverEmail: nullString(section.ReceiverEmail),
		items:         items,
	})
}

// nullString maps an empty string to SQL NULL.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

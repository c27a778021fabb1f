package models

// SectionKey identifies a singleton content section. Each key maps to
// exactly one row in the sections table; saves are keyed upserts so a
// section can never exist twice.
type SectionKey string

const (
	SectionStory        SectionKey = "story"
	SectionSkills       SectionKey = "skills"
	SectionProjects     SectionKey = "projects"
	SectionTestimonials SectionKey = "testimonials"
	SectionContact      SectionKey = "contact"

	// SectionHero is not stored in the sections table (heroes are one row
	// per audience) but shares the admin editor namespace.
	SectionHero SectionKey = "hero"
)

// SectionName returns the display name for an admin editor, or "" for an
// unknown key.
func SectionName(key SectionKey) string {
	switch key {
	case SectionHero:
		return "Hero Section"
	case SectionStory:
		return "Story Section"
	case SectionSkills:
		return "Skills"
	case SectionProjects:
		return "Projects"
	case SectionTestimonials:
		return "Testimonials"
	case SectionContact:
		return "Contact & Social Links"
	default:
		return ""
	}
}

// StoryTab is one chapter of the story section.
type StoryTab struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"` // Markdown
	Year    string `json:"year,omitempty"`
	Visibility
}

// StorySection holds the ordered story tabs.
type StorySection struct {
	IsVisible bool       `json:"isVisible"`
	Tabs      []StoryTab `json:"tabs"`
}

// VisibleTabs returns the tabs shown to the given audience, or nil when
// the whole section is hidden. The story is additionally suppressed for
// the company audience outright.
func (s *StorySection) VisibleTabs(aud Audience) []StoryTab {
	if s == nil || !s.IsVisible || aud == AudienceCompany {
		return nil
	}
	return filterShown(s.Tabs, aud)
}

// SkillItem is a single technology inside a skill category.
type SkillItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IconName string `json:"iconName,omitempty"`
	IsCore   bool   `json:"isCore"`
	Visibility
}

// SkillCategory groups skills under a heading. Categories and their skills
// are filtered independently; a category with no surviving skills is
// dropped entirely.
type SkillCategory struct {
	ID     string      `json:"id"`
	Title  string      `json:"title"`
	Skills []SkillItem `json:"skills"`
	Visibility
}

// SkillsSection holds the ordered skill categories.
type SkillsSection struct {
	IsVisible  bool            `json:"isVisible"`
	Categories []SkillCategory `json:"categories"`
}

// VisibleCategories returns the categories shown to the given audience,
// each narrowed to its visible skills. Categories whose skills all filter
// out are omitted rather than rendered empty.
func (s *SkillsSection) VisibleCategories(aud Audience) []SkillCategory {
	if s == nil || !s.IsVisible {
		return nil
	}

	var out []SkillCategory
	for _, cat := range filterShown(s.Categories, aud) {
		skills := filterShown(cat.Skills, aud)
		if len(skills) == 0 {
			continue
		}
		cat.Skills = skills
		out = append(out, cat)
	}
	return out
}

// Project is one portfolio work item.
type Project struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"` // Markdown
	Images      []string `json:"images,omitempty"`
	TechStack   []string `json:"techStack,omitempty"`
	LiveURL     string   `json:"liveUrl,omitempty"`
	RepoURL     string   `json:"repoUrl,omitempty"`
	UseIframe   bool     `json:"useIframe,omitempty"`
	Visibility
}

// ProjectsSection holds the ordered project list.
type ProjectsSection struct {
	IsVisible bool      `json:"isVisible"`
	Projects  []Project `json:"projects"`
}

// VisibleProjects returns the projects shown to the given audience, or nil
// when the section is hidden.
func (s *ProjectsSection) VisibleProjects(aud Audience) []Project {
	if s == nil || !s.IsVisible {
		return nil
	}
	return filterShown(s.Projects, aud)
}

// Testimonial is a client quote. Testimonials have no per-item audience
// targeting — only the visibility toggle and the section-wide
// onlyFreelance switch.
type Testimonial struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Company   string `json:"company,omitempty"`
	Content   string `json:"content"`
	AvatarURL string `json:"avatarUrl,omitempty"`
	IsVisible bool   `json:"isVisible"`
}

// ShownTo reports whether the testimonial itself is visible. Audience
// gating happens at the section level via OnlyFreelance.
func (t Testimonial) ShownTo(Audience) bool {
	return t.IsVisible
}

// TestimonialsSection holds the client quotes plus the freelance-only gate.
type TestimonialsSection struct {
	IsVisible     bool          `json:"isVisible"`
	OnlyFreelance bool          `json:"onlyFreelance"`
	Testimonials  []Testimonial `json:"testimonials"`
}

// Visible returns the testimonials shown to the given audience. The
// OnlyFreelance gate is evaluated before any per-item flag: when set, the
// section is empty for every audience except freelance.
func (s *TestimonialsSection) Visible(aud Audience) []Testimonial {
	if s == nil || !s.IsVisible {
		return nil
	}
	if s.OnlyFreelance && aud != AudienceFreelance {
		return nil
	}
	return filterShown(s.Testimonials, aud)
}

// SocialLink is one entry in the contact section's link list.
type SocialLink struct {
	ID       string `json:"id"`
	Platform string `json:"platform"`
	URL      string `json:"url"`
	IconName string `json:"iconName,omitempty"`
	Label    string `json:"label"`
	Visibility
}

// ContactSection holds the contact block settings and social links.
type ContactSection struct {
	IsVisible     bool         `json:"isVisible"`
	Title         string       `json:"title"`
	Subtitle      string       `json:"subtitle"`
	Description   string       `json:"description,omitempty"`
	ReceiverEmail string       `json:"receiverEmail,omitempty"`
	SocialLinks   []SocialLink `json:"socialLinks"`
}

// VisibleLinks returns the social links shown to the given audience, or
// nil when the section is hidden.
func (s *ContactSection) VisibleLinks(aud Audience) []SocialLink {
	if s == nil || !s.IsVisible {
		return nil
	}
	return filterShown(s.SocialLinks, aud)
}

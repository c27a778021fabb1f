package models

import (
	"encoding/json"
	"testing"
)

func vis(visible bool, audiences ...Audience) Visibility {
	v := Visibility{IsVisible: visible}
	if audiences != nil {
		v.Audiences = AudienceList(audiences)
	}
	return v
}

// TestStorySectionVisibleTabs covers section-level short-circuiting and
// the company suppression rule.
func TestStorySectionVisibleTabs(t *testing.T) {
	section := &StorySection{
		IsVisible: true,
		Tabs: []StoryTab{
			{ID: "a", Title: "Origins", Visibility: vis(true)},
			{ID: "b", Title: "Hidden", Visibility: vis(false)},
			{ID: "c", Title: "Freelance only", Visibility: vis(true, AudienceFreelance)},
		},
	}

	general := section.VisibleTabs(AudienceGeneral)
	if len(general) != 1 || general[0].ID != "a" {
		t.Errorf("general tabs = %v, want [a]", ids(general))
	}

	freelance := section.VisibleTabs(AudienceFreelance)
	if len(freelance) != 2 {
		t.Errorf("freelance tabs = %v, want [a c]", ids(freelance))
	}

	if got := section.VisibleTabs(AudienceCompany); got != nil {
		t.Errorf("company tabs = %v, want nil (story hidden for company)", ids(got))
	}

	section.IsVisible = false
	if got := section.VisibleTabs(AudienceGeneral); got != nil {
		t.Errorf("hidden section returned tabs %v", ids(got))
	}

	var nilSection *StorySection
	if got := nilSection.VisibleTabs(AudienceGeneral); got != nil {
		t.Error("nil section must render nothing")
	}
}

func ids(tabs []StoryTab) []string {
	out := make([]string, len(tabs))
	for i, tab := range tabs {
		out[i] = tab.ID
	}
	return out
}

// TestSkillsSectionDropsEmptyCategories verifies that a visible category
// whose skills all filter out is omitted entirely, never rendered as an
// empty shell.
func TestSkillsSectionDropsEmptyCategories(t *testing.T) {
	section := &SkillsSection{
		IsVisible: true,
		Categories: []SkillCategory{
			{
				ID: "backend", Title: "Backend", Visibility: vis(true),
				Skills: []SkillItem{
					{ID: "go", Name: "Go", Visibility: vis(true)},
					{ID: "rust", Name: "Rust", Visibility: vis(true, AudienceCompany)},
				},
			},
			{
				ID: "design", Title: "Design", Visibility: vis(true),
				Skills: []SkillItem{
					{ID: "figma", Name: "Figma", Visibility: vis(false)},
				},
			},
			{
				ID: "secret", Title: "Secret", Visibility: vis(false),
				Skills: []SkillItem{
					{ID: "magic", Name: "Magic", Visibility: vis(true)},
				},
			},
		},
	}

	got := section.VisibleCategories(AudienceGeneral)
	if len(got) != 1 {
		t.Fatalf("got %d categories, want 1", len(got))
	}
	if got[0].ID != "backend" {
		t.Errorf("category = %q, want backend", got[0].ID)
	}
	if len(got[0].Skills) != 1 || got[0].Skills[0].ID != "go" {
		t.Errorf("backend skills filtered wrong: %v", got[0].Skills)
	}

	// Company sees both backend skills.
	company := section.VisibleCategories(AudienceCompany)
	if len(company) != 1 || len(company[0].Skills) != 2 {
		t.Errorf("company view wrong: %v", company)
	}
}

// TestSkillsFilterDoesNotMutate ensures filtering returns narrowed copies
// without touching the stored section.
func TestSkillsFilterDoesNotMutate(t *testing.T) {
	section := &SkillsSection{
		IsVisible: true,
		Categories: []SkillCategory{
			{
				ID: "all", Title: "All", Visibility: vis(true),
				Skills: []SkillItem{
					{ID: "a", Name: "A", Visibility: vis(true)},
					{ID: "b", Name: "B", Visibility: vis(false)},
				},
			},
		},
	}

	section.VisibleCategories(AudienceGeneral)

	if len(section.Categories[0].Skills) != 2 {
		t.Error("filtering mutated the stored category")
	}
}

// TestTestimonialsOnlyFreelance verifies the section gate is evaluated
// before per-item flags.
func TestTestimonialsOnlyFreelance(t *testing.T) {
	section := &TestimonialsSection{
		IsVisible:     true,
		OnlyFreelance: true,
		Testimonials: []Testimonial{
			{ID: "t1", Name: "Ana", IsVisible: true},
			{ID: "t2", Name: "Ben", IsVisible: false},
		},
	}

	if got := section.Visible(AudienceGeneral); got != nil {
		t.Errorf("general got %d testimonials, want none", len(got))
	}
	if got := section.Visible(AudienceCompany); got != nil {
		t.Errorf("company got %d testimonials, want none", len(got))
	}

	freelance := section.Visible(AudienceFreelance)
	if len(freelance) != 1 || freelance[0].ID != "t1" {
		t.Errorf("freelance view = %v, want [t1]", freelance)
	}

	section.OnlyFreelance = false
	if got := section.Visible(AudienceGeneral); len(got) != 1 {
		t.Errorf("general with gate off = %v, want one testimonial", got)
	}
}

// TestContactSectionVisibleLinks covers social link filtering including
// the legacy nil audience list.
func TestContactSectionVisibleLinks(t *testing.T) {
	section := &ContactSection{
		IsVisible: true,
		SocialLinks: []SocialLink{
			{ID: "gh", Label: "GitHub", Visibility: vis(true)},
			{ID: "li", Label: "LinkedIn", Visibility: vis(true, AudienceCompany)},
			{ID: "x", Label: "X", Visibility: vis(false)},
		},
	}

	general := section.VisibleLinks(AudienceGeneral)
	if len(general) != 1 || general[0].ID != "gh" {
		t.Errorf("general links wrong: %v", general)
	}

	company := section.VisibleLinks(AudienceCompany)
	if len(company) != 2 {
		t.Errorf("company links wrong: %v", company)
	}
}

// TestSectionPayloadDecoding decodes a stored document the way the store
// does, exercising the legacy/explicit audience handling end to end.
func TestSectionPayloadDecoding(t *testing.T) {
	raw := `[
		{"id":"1","title":"Legacy","content":"then","isVisible":true},
		{"id":"2","title":"Nobody","content":"now","isVisible":true,"audiences":[]},
		{"id":"3","title":"Free","content":"soon","isVisible":true,"audiences":["freelance"]}
	]`

	var tabs []StoryTab
	if err := json.Unmarshal([]byte(raw), &tabs); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	section := &StorySection{IsVisible: true, Tabs: tabs}

	general := section.VisibleTabs(AudienceGeneral)
	if len(general) != 1 || general[0].ID != "1" {
		t.Errorf("general = %v, want [1]", ids(general))
	}

	freelance := section.VisibleTabs(AudienceFreelance)
	if len(freelance) != 2 {
		t.Errorf("freelance = %v, want [1 3]", ids(freelance))
	}
}

// TestSectionName covers editor display names and the unknown-key case.
func TestSectionName(t *testing.T) {
	if SectionName(SectionSkills) == "" {
		t.Error("skills section has no display name")
	}
	if got := SectionName(SectionKey("billing")); got != "" {
		t.Errorf("unknown section name = %q, want empty", got)
	}
}

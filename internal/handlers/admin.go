package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"foliocms/internal/cache"
	"foliocms/internal/models"
	"foliocms/internal/render"
	"foliocms/internal/store"
)

// Admin groups the CMS handlers: section editors, hero management, and
// the submissions inbox. Every successful save clears the page cache so
// the public page reflects the change immediately.
type Admin struct {
	renderer    *render.Renderer
	sections    *store.SectionStore
	heroes      *store.HeroStore
	submissions *store.SubmissionStore
	pageCache   *cache.PageCache
}

// NewAdmin creates a new Admin handler group.
func NewAdmin(renderer *render.Renderer, sections *store.SectionStore, heroes *store.HeroStore, submissions *store.SubmissionStore, pageCache *cache.PageCache) *Admin {
	return &Admin{
		renderer:    renderer,
		sections:    sections,
		heroes:      heroes,
		submissions: submissions,
		pageCache:   pageCache,
	}
}

// sectionOverview is one dashboard row: a section's key, display name,
// and whether it has been saved and switched on.
type sectionOverview struct {
	Key     string
	Name    string
	Saved   bool
	Visible bool
}

// Dashboard shows inbox and content counts plus a per-section status list.
func (a *Admin) Dashboard(w http.ResponseWriter, r *http.Request) {
	unread, err := a.submissions.CountUnread()
	if err != nil {
		slog.Error("count unread failed", "error", err)
	}

	heroes, err := a.heroes.List()
	if err != nil {
		slog.Error("list heroes failed", "error", err)
	}

	statuses, err := a.sections.Statuses()
	if err != nil {
		slog.Error("section statuses failed", "error", err)
	}
	visible := map[models.SectionKey]bool{}
	saved := map[models.SectionKey]bool{}
	for _, st := range statuses {
		saved[st.Key] = true
		visible[st.Key] = st.IsVisible
	}

	var sections []sectionOverview
	for _, key := range []models.SectionKey{
		models.SectionStory, models.SectionSkills, models.SectionProjects,
		models.SectionTestimonials, models.SectionContact,
	} {
		sections = append(sections, sectionOverview{
			Key:     string(key),
			Name:    models.SectionName(key),
			Saved:   saved[key],
			Visible: visible[key],
		})
	}

	a.renderer.Page(w, r, "dashboard", &render.PageData{
		Title:   "Dashboard",
		Section: "dashboard",
		Data: map[string]any{
			"UnreadCount": unread,
			"HeroCount":   len(heroes),
			"Sections":    sections,
		},
	})
}

// ---------------------------------------------------------------------------
// Section editors
// ---------------------------------------------------------------------------

// SectionEdit renders the editor for a page section. Sections without a
// dedicated editor get a placeholder page instead of a 404 so new keys
// can ship before their editors do.
func (a *Admin) SectionEdit(w http.ResponseWriter, r *http.Request) {
	key := models.SectionKey(chi.URLParam(r, "key"))
	tmpl := "section_" + string(key)

	if !a.renderer.HasAdmin(tmpl) {
		a.renderer.Page(w, r, "placeholder", &render.PageData{
			Title:   models.SectionName(key),
			Section: string(key),
		})
		return
	}

	data, err := a.sectionEditData(key)
	if err != nil {
		slog.Error("load section failed", "key", key, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	a.renderer.Page(w, r, tmpl, &render.PageData{
		Title:   models.SectionName(key),
		Section: string(key),
		Data:    data,
	})
}

// sectionEditData loads a section and prepares the editor's view data:
// the section itself, its items re-marshaled as indented JSON for the
// textarea, and the current preset per item for the dropdowns.
func (a *Admin) sectionEditData(key models.SectionKey) (map[string]any, error) {
	data := map[string]any{"Presets": models.Presets}
	presets := map[string]models.Preset{}
	data["ItemPresets"] = presets

	switch key {
	case models.SectionStory:
		sec, err := a.sections.Story()
		if err != nil {
			return nil, err
		}
		if sec == nil {
			sec = &models.StorySection{IsVisible: true}
		}
		for _, tab := range sec.Tabs {
			presets[tab.ID] = models.PresetFor(tab.Visibility)
		}
		data["Section"] = sec
		data["ItemsJSON"] = indentJSON(sec.Tabs)

	case models.SectionSkills:
		sec, err := a.sections.Skills()
		if err != nil {
			return nil, err
		}
		if sec == nil {
			sec = &models.SkillsSection{IsVisible: true}
		}
		for _, cat := range sec.Categories {
			presets[cat.ID] = models.PresetFor(cat.Visibility)
			for _, skill := range cat.Skills {
				presets[skill.ID] = models.PresetFor(skill.Visibility)
			}
		}
		data["Section"] = sec
		data["ItemsJSON"] = indentJSON(sec.Categories)

	case models.SectionProjects:
		sec, err := a.sections.Projects()
		if err != nil {
			return nil, err
		}
		if sec == nil {
			sec = &models.ProjectsSection{IsVisible: true}
		}
		for _, proj := range sec.Projects {
			presets[proj.ID] = models.PresetFor(proj.Visibility)
		}
		data["Section"] = sec
		data["ItemsJSON"] = indentJSON(sec.Projects)

	case models.SectionTestimonials:
		sec, err := a.sections.Testimonials()
		if err != nil {
			return nil, err
		}
		if sec == nil {
			sec = &models.TestimonialsSection{IsVisible: true}
		}
		data["Section"] = sec
		data["ItemsJSON"] = indentJSON(sec.Testimonials)

	case models.SectionContact:
		sec, err := a.sections.Contact()
		if err != nil {
			return nil, err
		}
		if sec == nil {
			sec = &models.ContactSection{IsVisible: true}
		}
		for _, link := range sec.SocialLinks {
			presets[link.ID] = models.PresetFor(link.Visibility)
		}
		data["Section"] = sec
		data["ItemsJSON"] = indentJSON(sec.SocialLinks)
	}

	return data, nil
}

// SectionSave persists a section editor form. Item payloads arrive as a
// JSON array; per-item preset dropdowns override the visibility embedded
// in that JSON. A malformed payload fails before anything is written.
func (a *Admin) SectionSave(w http.ResponseWriter, r *http.Request) {
	key := models.SectionKey(chi.URLParam(r, "key"))
	isVisible := r.FormValue("is_visible") == "1"

	var err error
	switch key {
	case models.SectionStory:
		var tabs []models.StoryTab
		if !decodeItems(w, r.FormValue("tabs"), "tabs", &tabs) {
			return
		}
		for i := range tabs {
			applyPreset(r, tabs[i].ID, &tabs[i].Visibility)
		}
		err = a.sections.SaveStory(isVisible, tabs)

	case models.SectionSkills:
		var categories []models.SkillCategory
		if !decodeItems(w, r.FormValue("categories"), "categories", &categories) {
			return
		}
		for i := range categories {
			applyPreset(r, categories[i].ID, &categories[i].Visibility)
			for j := range categories[i].Skills {
				applyPreset(r, categories[i].Skills[j].ID, &categories[i].Skills[j].Visibility)
			}
		}
		err = a.sections.SaveSkills(isVisible, categories)

	case models.SectionProjects:
		var projects []models.Project
		if !decodeItems(w, r.FormValue("projects"), "projects", &projects) {
			return
		}
		for i := range projects {
			applyPreset(r, projects[i].ID, &projects[i].Visibility)
		}
		err = a.sections.SaveProjects(isVisible, projects)

	case models.SectionTestimonials:
		var testimonials []models.Testimonial
		if !decodeItems(w, r.FormValue("testimonials"), "testimonials", &testimonials) {
			return
		}
		for i := range testimonials {
			// Checkboxes override the JSON payload; an absent box means
			// the item was unchecked.
			testimonials[i].IsVisible = r.FormValue("visible_"+testimonials[i].ID) == "1"
		}
		onlyFreelance := r.FormValue("only_freelance") == "1"
		err = a.sections.SaveTestimonials(isVisible, onlyFreelance, testimonials)

	case models.SectionContact:
		var links []models.SocialLink
		if !decodeItems(w, r.FormValue("links"), "links", &links) {
			return
		}
		for i := range links {
			applyPreset(r, links[i].ID, &links[i].Visibility)
		}
		err = a.sections.SaveContact(&models.ContactSection{
			IsVisible:     isVisible,
			Title:         r.FormValue("title"),
			Subtitle:      r.FormValue("subtitle"),
			Description:   r.FormValue("description"),
			ReceiverEmail: r.FormValue("receiver_email"),
			SocialLinks:   links,
		})

	default:
		http.NotFound(w, r)
		return
	}

	if err != nil {
		slog.Error("section save failed", "key", key, "error", err)
		jsonError(w, http.StatusInternalServerError, "Failed to save "+models.SectionName(key)+".")
		return
	}

	a.invalidate(r.Context())
	http.Redirect(w, r, "/admin/sections/"+string(key), http.StatusSeeOther)
}

// ---------------------------------------------------------------------------
// Heroes
// ---------------------------------------------------------------------------

// Heroes renders the hero manager: one editable card per existing hero
// plus a creation form.
func (a *Admin) Heroes(w http.ResponseWriter, r *http.Request) {
	heroes, err := a.heroes.List()
	if err != nil {
		slog.Error("list heroes failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	a.renderer.Page(w, r, "heroes", &render.PageData{
		Title:   "Hero",
		Section: "hero",
		Data: map[string]any{
			"Heroes":    heroes,
			"Audiences": models.AllAudiences(),
		},
	})
}

// HeroCreate adds a new hero variant.
func (a *Admin) HeroCreate(w http.ResponseWriter, r *http.Request) {
	title := r.FormValue("title")
	if title == "" {
		http.Redirect(w, r, "/admin/heroes", http.StatusSeeOther)
		return
	}

	_, err := a.heroes.Create(&models.Hero{
		Audience:  models.ParseAudience(r.FormValue("audience")),
		Title:     title,
		Subtitle:  strPtr(r.FormValue("subtitle")),
		GithubURL: strPtr(r.FormValue("github_url")),
		ResumeURL: strPtr(r.FormValue("resume_url")),
		IsVisible: r.FormValue("is_visible") == "1",
	})
	if err != nil {
		slog.Error("hero create failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	a.invalidate(r.Context())
	http.Redirect(w, r, "/admin/heroes", http.StatusSeeOther)
}

// HeroUpdate saves edits to an existing hero. The audience is fixed at
// creation time.
func (a *Admin) HeroUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	hero, err := a.heroes.FindByID(id)
	if err != nil {
		slog.Error("find hero failed", "id", id, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if hero == nil {
		http.NotFound(w, r)
		return
	}

	hero.Title = r.FormValue("title")
	hero.Subtitle = strPtr(r.FormValue("subtitle"))
	hero.GithubURL = strPtr(r.FormValue("github_url"))
	hero.ResumeURL = strPtr(r.FormValue("resume_url"))
	hero.IsVisible = r.FormValue("is_visible") == "1"

	if err := a.heroes.Update(hero); err != nil {
		slog.Error("hero update failed", "id", id, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	a.invalidate(r.Context())
	http.Redirect(w, r, "/admin/heroes", http.StatusSeeOther)
}

// HeroDelete removes a hero variant.
func (a *Admin) HeroDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := a.heroes.Delete(id); err != nil {
		slog.Error("hero delete failed", "id", id, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	a.invalidate(r.Context())
	http.Redirect(w, r, "/admin/heroes", http.StatusSeeOther)
}

// ---------------------------------------------------------------------------
// Submissions inbox
// ---------------------------------------------------------------------------

// Submissions lists contact form messages, newest first.
func (a *Admin) Submissions(w http.ResponseWriter, r *http.Request) {
	subs, err := a.submissions.List()
	if err != nil {
		slog.Error("list submissions failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	a.renderer.Page(w, r, "submissions", &render.PageData{
		Title:   "Submissions",
		Section: "submissions",
		Data:    map[string]any{"Submissions": subs},
	})
}

// SubmissionMarkRead flags a message as read.
func (a *Admin) SubmissionMarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := a.submissions.MarkRead(id); err != nil {
		slog.Error("mark read failed", "id", id, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/admin/submissions", http.StatusSeeOther)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// decodeItems parses the JSON items payload from an editor form. On
// failure it writes the error response and returns false; nothing has
// been persisted at that point. An empty payload decodes to no items.
func decodeItems(w http.ResponseWriter, raw, name string, dest any) bool {
	if raw == "" {
		return true
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		jsonError(w, http.StatusBadRequest, "Invalid "+name+" data")
		return false
	}
	return true
}

// applyPreset overrides an item's visibility from its preset dropdown,
// when one was submitted and names a known preset.
func applyPreset(r *http.Request, id string, v *models.Visibility) {
	raw := r.FormValue("preset_" + id)
	if raw == "" {
		return
	}
	preset := models.Preset(raw)
	if !preset.Valid() {
		return
	}
	*v = preset.State()
}

// jsonError writes a JSON error response in the shape the editors expect.
func jsonError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"message": message,
	})
}

// indentJSON marshals items for display in an editor textarea.
func indentJSON(v any) string {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "[]"
	}
	return string(out)
}

// strPtr converts an optional form value to a nullable column value.
func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// invalidate clears every cached page variant after a content change.
func (a *Admin) invalidate(ctx context.Context) {
	a.pageCache.InvalidateAll(ctx)
}

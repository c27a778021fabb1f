// Package handlers contains the HTTP handlers for the public portfolio
// page, the contact pipeline, and the admin CMS.
package handlers

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"

	"foliocms/internal/cache"
	"foliocms/internal/mailer"
	"foliocms/internal/models"
	"foliocms/internal/render"
	"foliocms/internal/store"
)

// Public groups handlers for the visitor-facing page. The home page is
// rendered once per audience and served from the Valkey page cache on
// subsequent requests.
type Public struct {
	renderer    *render.Renderer
	sections    *store.SectionStore
	heroes      *store.HeroStore
	submissions *store.SubmissionStore
	mail        *mailer.Client
	pageCache   *cache.PageCache
}

// NewPublic creates a new Public handler group.
func NewPublic(renderer *render.Renderer, sections *store.SectionStore, heroes *store.HeroStore, submissions *store.SubmissionStore, mail *mailer.Client, pageCache *cache.PageCache) *Public {
	return &Public{
		renderer:    renderer,
		sections:    sections,
		heroes:      heroes,
		submissions: submissions,
		mail:        mail,
		pageCache:   pageCache,
	}
}

// HomeData is everything the public page template needs, already filtered
// for the visitor's audience. Hidden sections are nil so the template
// never has to evaluate item-level visibility itself.
type HomeData struct {
	Audience     models.Audience
	Hero         *models.Hero
	Story        *models.StorySection
	Skills       *models.SkillsSection
	Projects     *models.ProjectsSection
	Testimonials []models.Testimonial
	Contact      *models.ContactSection
	Sent         bool
	Error        bool
	ErrorMessage string
}

// Home renders the portfolio page for the audience given in the
// ?audience query parameter (defaulting to general). Pages without
// one-time banners are cached per audience.
func (p *Public) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	aud := models.ParseAudience(r.URL.Query().Get("audience"))
	sent := r.URL.Query().Get("sent") == "1"
	errCode := r.URL.Query().Get("error")

	// One-time banners make the page uncacheable.
	cacheable := !sent && errCode == ""

	if cacheable {
		if cached, ok := p.pageCache.Get(ctx, cache.HomeKey(string(aud))); ok {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write(cached)
			return
		}
	}

	data := p.buildHomeData(aud)
	data.Sent = sent
	if errCode != "" {
		data.Error = true
		data.ErrorMessage = contactErrorMessage(errCode)
	}

	var buf bytes.Buffer
	if err := p.renderer.Public(&buf, "home", data); err != nil {
		slog.Error("home render failed", "audience", aud, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if cacheable {
		p.pageCache.Set(ctx, cache.HomeKey(string(aud)), buf.Bytes())
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// buildHomeData loads every section and filters it for the audience.
// Individual load errors degrade to a missing section rather than
// failing the whole page.
func (p *Public) buildHomeData(aud models.Audience) *HomeData {
	data := &HomeData{Audience: aud}

	hero, err := p.heroes.ForAudience(aud)
	if err != nil {
		slog.Error("load hero failed", "audience", aud, "error", err)
	}
	data.Hero = hero

	if story, err := p.sections.Story(); err != nil {
		slog.Error("load story failed", "error", err)
	} else if story != nil && story.IsVisible {
		if tabs := story.VisibleTabs(aud); len(tabs) > 0 {
			data.Story = &models.StorySection{IsVisible: true, Tabs: tabs}
		}
	}

	if skills, err := p.sections.Skills(); err != nil {
		slog.Error("load skills failed", "error", err)
	} else if skills != nil && skills.IsVisible {
		if cats := skills.VisibleCategories(aud); len(cats) > 0 {
			data.Skills = &models.SkillsSection{IsVisible: true, Categories: cats}
		}
	}

	if projects, err := p.sections.Projects(); err != nil {
		slog.Error("load projects failed", "error", err)
	} else if projects != nil && projects.IsVisible {
		if items := projects.VisibleProjects(aud); len(items) > 0 {
			data.Projects = &models.ProjectsSection{IsVisible: true, Projects: items}
		}
	}

	if testimonials, err := p.sections.Testimonials(); err != nil {
		slog.Error("load testimonials failed", "error", err)
	} else if testimonials != nil {
		data.Testimonials = testimonials.Visible(aud)
	}

	if contact, err := p.sections.Contact(); err != nil {
		slog.Error("load contact failed", "error", err)
	} else if contact != nil && contact.IsVisible {
		filtered := *contact
		filtered.SocialLinks = contact.VisibleLinks(aud)
		data.Contact = &filtered
	}

	return data
}

// ContactSubmit handles the public contact form. The submission is
// persisted first; the email notification is best effort and never
// fails the request.
func (p *Public) ContactSubmit(w http.ResponseWriter, r *http.Request) {
	aud := models.ParseAudience(r.FormValue("audience"))
	back := func(query string) string {
		return fmt.Sprintf("/?audience=%s&%s#contact", aud, query)
	}

	email := r.FormValue("email")
	message := r.FormValue("message")

	// Validation failures carry their code back to the form so the page
	// can show which field was rejected; persistence failures stay generic.
	if code := validateContact(email, message); code != "" {
		slog.Info("contact form rejected", "code", code)
		http.Redirect(w, r, back("error="+code), http.StatusSeeOther)
		return
	}

	sub, err := p.submissions.Create(email, message)
	if err != nil {
		slog.Error("contact submission save failed", "error", err)
		http.Redirect(w, r, back("error=1"), http.StatusSeeOther)
		return
	}

	p.notify(r, sub)

	http.Redirect(w, r, back("sent=1"), http.StatusSeeOther)
}

// notify sends the email notification for a new submission. Failures are
// logged only — the message is already safely stored.
func (p *Public) notify(r *http.Request, sub *models.ContactSubmission) {
	if !p.mail.Enabled() {
		return
	}

	// The saved receiver wins; without one the notification still goes
	// out, to the default address.
	recipient := mailer.DefaultRecipient
	contact, err := p.sections.Contact()
	if err != nil {
		slog.Error("load contact receiver failed", "error", err)
	}
	if contact != nil && contact.ReceiverEmail != "" {
		recipient = contact.ReceiverEmail
	}

	subject := "New message from " + sub.Email

	if err := p.mail.Send(r.Context(), recipient, subject, sub.Message); err != nil {
		slog.Warn("contact notification failed", "error", err)
	}
}

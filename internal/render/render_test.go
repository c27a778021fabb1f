package render

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"foliocms/internal/middleware"
	"foliocms/internal/models"
	"foliocms/internal/session"
)

// helperRequestWithContext builds an *http.Request whose context carries a
// session, which the admin templates expect for authenticated pages.
func helperRequestWithContext(method, target string, sess *session.Data) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	if sess != nil {
		ctx := context.WithValue(req.Context(), middleware.SessionKey, sess)
		req = req.WithContext(ctx)
	}
	return req
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		devMode bool
	}{
		{"dev mode", true},
		{"prod mode", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rn, err := New(tt.devMode)
			if err != nil {
				t.Fatalf("New(devMode=%v) returned error: %v", tt.devMode, err)
			}
			if len(rn.admin) == 0 {
				t.Error("renderer has no parsed admin templates")
			}

			for _, name := range []string{"dashboard", "login", "heroes", "submissions", "placeholder",
				"section_story", "section_skills", "section_projects", "section_testimonials", "section_contact"} {
				if !rn.HasAdmin(name) {
					t.Errorf("expected admin template %q to be parsed", name)
				}
			}

			// base.html should NOT appear as a standalone template key.
			if rn.HasAdmin("base") {
				t.Error("base.html should not be registered as a separate template")
			}

			if _, ok := rn.public["home"]; !ok {
				t.Error("expected public template home to be parsed")
			}
		})
	}
}

func TestPageRendering(t *testing.T) {
	rn, err := New(true)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	sess := &session.Data{CreatedAt: time.Now()}
	req := helperRequestWithContext(http.MethodGet, "/admin", sess)
	w := httptest.NewRecorder()

	rn.Page(w, req, "dashboard", &PageData{
		Title:   "Dashboard",
		Section: "dashboard",
		Session: sess,
		Data:    map[string]any{"UnreadCount": 3, "HeroCount": 2},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	body := w.Body.String()
	if !strings.Contains(body, "<!DOCTYPE html>") {
		t.Error("full page render should contain <!DOCTYPE html>")
	}
	if !strings.Contains(body, "Folio Admin") {
		t.Error("full page render should contain the admin branding")
	}
	if !strings.Contains(body, "Unread messages") {
		t.Error("full page render should contain dashboard content")
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("Content-Type: got %q", ct)
	}
}

func TestHTMXPartialRendering(t *testing.T) {
	rn, err := New(true)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	req := helperRequestWithContext(http.MethodGet, "/admin", &session.Data{CreatedAt: time.Now()})
	req.Header.Set("HX-Request", "true")

	w := httptest.NewRecorder()
	rn.Page(w, req, "dashboard", &PageData{
		Title:   "Dashboard",
		Section: "dashboard",
		Data:    map[string]any{"UnreadCount": 0, "HeroCount": 0},
	})

	body := w.Body.String()
	if strings.Contains(body, "<!DOCTYPE html>") {
		t.Error("HTMX partial should NOT contain <!DOCTYPE html>")
	}
	if !strings.Contains(body, "Unread messages") {
		t.Error("HTMX partial should contain dashboard content block")
	}
}

func TestLoginRendersStandalone(t *testing.T) {
	rn, err := New(true)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	w := httptest.NewRecorder()
	req := helperRequestWithContext(http.MethodGet, "/admin/login", nil)
	rn.Page(w, req, "login", &PageData{Title: "Log in", Data: map[string]any{"Error": "Wrong password"}})

	body := w.Body.String()
	if !strings.Contains(body, "<!DOCTYPE html>") {
		t.Error("standalone login should be a full HTML page")
	}
	if !strings.Contains(body, "Wrong password") {
		t.Error("login should render the error message")
	}
	if strings.Contains(body, "Dashboard") {
		t.Error("login should not include the admin sidebar")
	}
}

func TestPageUnknownTemplate(t *testing.T) {
	rn, err := New(true)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	w := httptest.NewRecorder()
	req := helperRequestWithContext(http.MethodGet, "/admin", nil)
	rn.Page(w, req, "no-such-page", &PageData{})

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status: got %d, want 500", w.Code)
	}
}

func TestPublicHomeRendering(t *testing.T) {
	rn, err := New(true)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	subtitle := "I build things"
	github := "https://github.com/example"
	data := struct {
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
	}{
		Audience: models.AudienceGeneral,
		Hero: &models.Hero{
			Title:    "Hello there",
			Subtitle: &subtitle,
			GithubURL: &github,
		},
		Story: &models.StorySection{
			IsVisible: true,
			Tabs: []models.StoryTab{
				{ID: "t1", Title: "Early days", Content: "It **started** small.", Year: "2019"},
			},
		},
		Testimonials: []models.Testimonial{
			{ID: "x", Name: "A. Client", Content: "Great work."},
		},
		Contact: &models.ContactSection{
			IsVisible: true,
			Title:     "Say hi",
			SocialLinks: []models.SocialLink{
				{ID: "gh", Platform: "github", Label: "GitHub", URL: github},
			},
		},
		Sent: true,
	}

	var buf bytes.Buffer
	if err := rn.Public(&buf, "home", data); err != nil {
		t.Fatalf("Public: %v", err)
	}

	body := buf.String()
	checks := []string{
		"Hello there",
		"I build things",
		"Early days",
		"<strong>started</strong>", // markdown rendered
		"2019",                     // year badge
		"Great work.",
		"Say hi",
		"your message is on its way", // sent banner
		`action="/contact"`,
	}
	for _, want := range checks {
		if !strings.Contains(body, want) {
			t.Errorf("rendered home missing %q", want)
		}
	}

	// Hidden/nil sections simply don't render.
	if strings.Contains(body, `id="skills"`) {
		t.Error("nil skills section should not render")
	}
	if strings.Contains(body, `id="projects"`) {
		t.Error("nil projects section should not render")
	}
}

func TestPublicUnknownTemplate(t *testing.T) {
	rn, err := New(true)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var buf bytes.Buffer
	if err := rn.Public(&buf, "nope", nil); err == nil {
		t.Error("expected error for unknown public template")
	}
}

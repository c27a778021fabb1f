package handlers

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"foliocms/internal/middleware"
	"foliocms/internal/render"
	"foliocms/internal/session"
)

// Auth groups the login and logout handlers. The admin area has a single
// shared credential: a bcrypt hash when configured, otherwise a plaintext
// password compared in constant time (development convenience).
type Auth struct {
	renderer     *render.Renderer
	sessions     *session.Store
	password     string
	passwordHash string
}

// NewAuth creates a new Auth handler group.
func NewAuth(renderer *render.Renderer, sessions *session.Store, password, passwordHash string) *Auth {
	return &Auth{
		renderer:     renderer,
		sessions:     sessions,
		password:     password,
		passwordHash: passwordHash,
	}
}

// LoginPage renders the login form, or redirects straight to the
// dashboard when a session already exists.
func (a *Auth) LoginPage(w http.ResponseWriter, r *http.Request) {
	if middleware.SessionFromCtx(r.Context()) != nil {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	a.renderer.Page(w, r, "login", &render.PageData{
		Title: "Log in",
		Data:  map[string]any{},
	})
}

// LoginSubmit checks the shared password and creates a session.
func (a *Auth) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	if !a.checkPassword(r.FormValue("password")) {
		a.renderer.Page(w, r, "login", &render.PageData{
			Title: "Log in",
			Data:  map[string]any{"Error": "Invalid password."},
		})
		return
	}

	if _, err := a.sessions.Create(r.Context(), w); err != nil {
		slog.Error("session create failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// Logout destroys the session and returns to the login page.
func (a *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	if err := a.sessions.Destroy(r.Context(), w, r); err != nil {
		slog.Error("session destroy failed", "error", err)
	}
	http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
}

// checkPassword validates the submitted password against the configured
// credential. The bcrypt hash takes precedence when both are set.
func (a *Auth) checkPassword(submitted string) bool {
	if a.passwordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(a.passwordHash), []byte(submitted)) == nil
	}
	if a.password == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a.password), []byte(submitted)) == 1
}

// Package router sets up all HTTP routes and middleware chains for the
// portfolio server. It organizes routes into public and admin groups
// with appropriate middleware stacks.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"foliocms/internal/handlers"
	"foliocms/internal/middleware"
	"foliocms/internal/session"
	"foliocms/web"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up. The rate limiters guard the two
// unauthenticated POST endpoints; secureCookies controls the CSRF
// cookie's Secure flag.
func New(
	sessionStore *session.Store,
	public *handlers.Public,
	admin *handlers.Admin,
	auth *handlers.Auth,
	loginLimiter *middleware.RateLimiter,
	contactLimiter *middleware.RateLimiter,
	secureCookies bool,
) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	// Health check — no auth, no CSRF.
	r.Get("/health", healthHandler)

	// Static assets (compiled CSS, vendored JS).
	r.Handle("/static/*", http.FileServer(http.FS(web.StaticFS)))

	// Public site.
	r.Get("/", public.Home)
	r.With(contactLimiter.Middleware).Post("/contact", public.ContactSubmit)

	// Admin area — CSRF protection plus session loading on everything.
	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.NewCSRF(secureCookies))
		r.Use(middleware.LoadSession(sessionStore))

		// Auth pages — accessible without a session.
		r.Get("/login", auth.LoginPage)
		r.With(loginLimiter.Middleware).Post("/login", auth.LoginSubmit)
		r.Post("/logout", auth.Logout)

		// Authenticated admin area.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)

			r.Get("/", admin.Dashboard)

			r.Route("/sections", func(r chi.Router) {
				r.Get("/{key}", admin.SectionEdit)
				r.Post("/{key}", admin.SectionSave)
			})

			r.Route("/heroes", func(r chi.Router) {
				r.Get("/", admin.Heroes)
				r.Post("/", admin.HeroCreate)
				r.Post("/{id}", admin.HeroUpdate)
				r.Post("/{id}/delete", admin.HeroDelete)
			})

			r.Route("/submissions", func(r chi.Router) {
				r.Get("/", admin.Submissions)
				r.Post("/{id}/read", admin.SubmissionMarkRead)
			})
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

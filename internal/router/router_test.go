package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"foliocms/internal/handlers"
	"foliocms/internal/middleware"
	"foliocms/internal/session"
)

// newTestRouter builds the full router with inert dependencies. The
// session store points at an address nothing listens on — requests
// without a session cookie never reach Valkey, so the redirect paths
// can be exercised without a running instance.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	t.Cleanup(func() { client.Close() })
	sessionStore := session.NewStore(client, false)

	loginLimiter := middleware.NewRateLimiter(5, time.Minute)
	t.Cleanup(loginLimiter.Stop)
	contactLimiter := middleware.NewRateLimiter(3, time.Minute)
	t.Cleanup(contactLimiter.Stop)

	return New(
		sessionStore,
		&handlers.Public{},
		&handlers.Admin{},
		&handlers.Auth{},
		loginLimiter,
		contactLimiter,
		false,
	)
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type: got %q, want application/json", ct)
	}
	if w.Body.String() != `{"status":"ok"}` {
		t.Errorf("body: got %q", w.Body.String())
	}
}

func TestSecurityHeadersApplied(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options: got %q, want nosniff", got)
	}
	if got := w.Header().Get("X-Frame-Options"); got != "SAMEORIGIN" {
		t.Errorf("X-Frame-Options: got %q, want SAMEORIGIN", got)
	}
}

func TestAdminRequiresSession(t *testing.T) {
	r := newTestRouter(t)

	paths := []string{
		"/admin",
		"/admin/sections/story",
		"/admin/heroes",
		"/admin/submissions",
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusSeeOther {
				t.Fatalf("status: got %d, want 303", w.Code)
			}
			if loc := w.Header().Get("Location"); loc != "/admin/login" {
				t.Errorf("redirect: got %q, want /admin/login", loc)
			}
		})
	}
}

func TestStaticAssetsServed(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/static/css/input.css", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", w.Code)
	}
}

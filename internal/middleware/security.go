package middleware

import "net/http"

// SecureHeaders sets browser protection headers on every response, the
// public portfolio page and the admin area alike. The admin area layers
// CSRF and session checks on top; these headers are the baseline both
// surfaces share. SAMEORIGIN (rather than DENY) framing is required for
// the project cards that embed a live site preview in an iframe.
func SecureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()

		// Serve embedded static assets with their declared types only.
		h.Set("X-Content-Type-Options", "nosniff")

		// Same-origin framing only; keeps the iframe previews working.
		h.Set("X-Frame-Options", "SAMEORIGIN")

		// Disable the legacy XSS filter (can cause issues; CSP is preferred).
		h.Set("X-XSS-Protection", "0")

		// Audience query parameters stay out of cross-origin referrers.
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")

		// Opt out of FLoC cohort calculations.
		h.Set("Permissions-Policy", "interest-cohort=()")

		next.ServeHTTP(w, r)
	})
}

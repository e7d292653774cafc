package middleware

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"bio-page/auth"
)

// AdminAuth protects admin routes with session authentication. Requests
// without a valid session are redirected to the login page; the wrapped
// handler never runs.
type AdminAuth struct {
	sessions *auth.SessionManager
}

// NewAdminAuth creates a new admin authentication middleware.
func NewAdminAuth(sessions *auth.SessionManager) *AdminAuth {
	return &AdminAuth{sessions: sessions}
}

// Protect wraps an HTTP handler with the session gate.
func (a *AdminAuth) Protect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !a.sessions.Verify(r) {
			log.Warn().
				Str("path", r.URL.Path).
				Str("ip", r.RemoteAddr).
				Msg("Admin route accessed without valid session")
			http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

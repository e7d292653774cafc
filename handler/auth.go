package handler

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"bio-page/utils"
)

// loginPage is the template payload for the login form.
type loginPage struct {
	Flashes []Flash
}

// Login renders the login form on GET and attempts authentication on POST.
// Email matches case-insensitively; the password digest must match exactly.
func (h *BioHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.render(w, "login.html", loginPage{Flashes: consumeFlashes(w, r)})
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	password := strings.TrimSpace(r.FormValue("password"))

	rec := h.store.Load()
	if strings.EqualFold(email, rec.Admin.Email) &&
		utils.HashPassword(password) == rec.Admin.PasswordHash {
		if err := h.sessions.Issue(w); err != nil {
			log.Error().Err(err).Msg("Failed to issue session")
			h.render(w, "login.html", loginPage{Flashes: []Flash{
				{Message: "Login failed, please try again.", Category: flashError},
			}})
			return
		}
		log.Info().Str("ip", r.RemoteAddr).Msg("Admin logged in")
		addFlash(w, r, "Welcome back, Admin!", flashSuccess)
		http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
		return
	}

	log.Warn().Str("ip", r.RemoteAddr).Msg("Failed admin login attempt")
	h.render(w, "login.html", loginPage{Flashes: []Flash{
		{Message: "Invalid credentials!", Category: flashError},
	}})
}

// Logout clears the session and returns the client to the login page.
func (h *BioHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)
	addFlash(w, r, "Logged out successfully!", flashInfo)
	http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
}

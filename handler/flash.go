package handler

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
)

// Flash message categories.
const (
	flashSuccess = "success"
	flashError   = "error"
	flashInfo    = "info"
)

const flashCookieName = "bio_flash"

// Flash is a one-line status message queued for the next rendered page.
type Flash struct {
	Message  string `json:"message"`
	Category string `json:"category"`
}

// addFlash queues a status message in a short-lived cookie. Messages
// already queued on the request survive the append.
func addFlash(w http.ResponseWriter, r *http.Request, message, category string) {
	flashes := append(peekFlashes(r), Flash{Message: message, Category: category})
	encoded, err := json.Marshal(flashes)
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    base64.URLEncoding.EncodeToString(encoded),
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// consumeFlashes returns queued messages and clears the queue, so each
// message is shown exactly once.
func consumeFlashes(w http.ResponseWriter, r *http.Request) []Flash {
	flashes := peekFlashes(r)
	if flashes != nil {
		http.SetCookie(w, &http.Cookie{
			Name:     flashCookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return flashes
}

func peekFlashes(r *http.Request) []Flash {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil {
		return nil
	}
	decoded, err := base64.URLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}
	var flashes []Flash
	if err := json.Unmarshal(decoded, &flashes); err != nil {
		return nil
	}
	return flashes
}

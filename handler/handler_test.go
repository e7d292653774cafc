package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"bio-page/auth"
	"bio-page/config"
	"bio-page/store"
)

func newTestHandler(t *testing.T) (*BioHandler, *store.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bio_data.json")
	st, err := store.New(path)
	if err != nil {
		t.Fatalf("store.New() error = %v", err)
	}
	sessions := auth.NewSessionManager("bio_session", time.Hour)
	return NewBioHandler(st, sessions, config.Config{}), st, path
}

func postForm(t *testing.T, h http.HandlerFunc, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	h(w, req)
	return w
}

func wantRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()
	if w.Code != http.StatusSeeOther {
		t.Errorf("status = %d, want %d", w.Code, http.StatusSeeOther)
	}
	if got := w.Header().Get("Location"); got != location {
		t.Errorf("redirect location = %q, want %q", got, location)
	}
}

func TestFlashQueueConsumedOnce(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	addFlash(w, req, "saved", flashSuccess)

	// Carry the response cookie into the next request, as a browser would.
	next := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	for _, c := range w.Result().Cookies() {
		next.AddCookie(c)
	}

	render := httptest.NewRecorder()
	flashes := consumeFlashes(render, next)
	if len(flashes) != 1 || flashes[0].Message != "saved" || flashes[0].Category != flashSuccess {
		t.Fatalf("consumeFlashes() = %v, want one success flash", flashes)
	}

	// The consuming response must clear the cookie.
	cleared := false
	for _, c := range render.Result().Cookies() {
		if c.Name == flashCookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("consumeFlashes() did not clear the flash cookie")
	}
}

func TestHealthCheck(t *testing.T) {
	h, _, _ := newTestHandler(t)
	w := httptest.NewRecorder()
	h.HealthCheck(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "healthy") {
		t.Errorf("body = %q, want health status", w.Body.String())
	}
}

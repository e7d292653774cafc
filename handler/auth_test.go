package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"bio-page/middleware"
	"bio-page/model"
)

func TestLoginWithDefaultCredentials(t *testing.T) {
	h, _, _ := newTestHandler(t)

	form := url.Values{
		"email":    {model.DefaultAdminEmail},
		"password": {model.DefaultAdminPassword},
	}
	w := postForm(t, h.Login, "/admin/login", form)
	wantRedirect(t, w, "/admin/dashboard")

	sessionSet := false
	for _, c := range w.Result().Cookies() {
		if c.Name == "bio_session" && c.Value != "" {
			sessionSet = true
		}
	}
	if !sessionSet {
		t.Error("successful login did not set a session cookie")
	}
}

func TestLoginEmailIsCaseInsensitive(t *testing.T) {
	h, _, _ := newTestHandler(t)

	form := url.Values{
		"email":    {strings.ToUpper(model.DefaultAdminEmail)},
		"password": {model.DefaultAdminPassword},
	}
	w := postForm(t, h.Login, "/admin/login", form)
	wantRedirect(t, w, "/admin/dashboard")
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	h, _, _ := newTestHandler(t)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"Wrong password", model.DefaultAdminEmail, "nope"},
		{"Wrong case password", model.DefaultAdminEmail, strings.ToUpper(model.DefaultAdminPassword)},
		{"Wrong email", "other@example.com", model.DefaultAdminPassword},
		{"Empty form", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := url.Values{"email": {tt.email}, "password": {tt.password}}
			w := postForm(t, h.Login, "/admin/login", form)
			if w.Code != http.StatusOK {
				t.Errorf("status = %d, want 200 (login form re-rendered)", w.Code)
			}
			if !strings.Contains(w.Body.String(), "Invalid credentials") {
				t.Error("response does not surface the auth failure")
			}
			for _, c := range w.Result().Cookies() {
				if c.Name == "bio_session" {
					t.Error("failed login set a session cookie")
				}
			}
		})
	}
}

func TestLoginGetRendersForm(t *testing.T) {
	h, _, _ := newTestHandler(t)

	w := httptest.NewRecorder()
	h.Login(w, httptest.NewRequest(http.MethodGet, "/admin/login", nil))
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `name="password"`) {
		t.Error("login form is missing the password field")
	}
}

func TestLogoutClearsSession(t *testing.T) {
	h, _, _ := newTestHandler(t)

	w := httptest.NewRecorder()
	h.Logout(w, httptest.NewRequest(http.MethodGet, "/admin/logout", nil))
	wantRedirect(t, w, "/admin/login")

	cleared := false
	for _, c := range w.Result().Cookies() {
		if c.Name == "bio_session" && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("logout did not expire the session cookie")
	}
}

// Any admin-mutating operation without a session must redirect to login and
// leave the store file byte-for-byte unchanged.
func TestAuthGateBlocksMutations(t *testing.T) {
	h, st, path := newTestHandler(t)
	st.Load() // seed the file
	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	gate := middleware.NewAdminAuth(h.sessions)

	mutations := []struct {
		name    string
		path    string
		handler http.HandlerFunc
	}{
		{"profile", "/admin/update/profile", h.UpdateProfile},
		{"bio", "/admin/update/bio", h.UpdateBio},
		{"socials", "/admin/update/socials", h.UpdateSocials},
		{"second_dev", "/admin/update/second_dev", h.UpdateSecondDev},
		{"music", "/admin/update/music", h.UpdateMusic},
		{"password", "/admin/update/password", h.UpdatePassword},
		{"email", "/admin/update/email", h.UpdateEmail},
		{"custom_css", "/admin/update/custom_css", h.UpdateCustomCSS},
		{"reset", "/admin/reset", h.ResetData},
	}

	for _, tt := range mutations {
		t.Run(tt.name, func(t *testing.T) {
			protected := gate.Protect(tt.handler)
			form := url.Values{"name": {"intruder"}, "new_email": {"x@y.z"}}
			req := httptest.NewRequest(http.MethodPost, tt.path, strings.NewReader(form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			w := httptest.NewRecorder()
			protected.ServeHTTP(w, req)

			wantRedirect(t, w, "/admin/login")
		})
	}

	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(before) != string(after) {
		t.Error("store file changed despite the auth gate")
	}
}

func TestAuthGatePassesValidSession(t *testing.T) {
	h, _, _ := newTestHandler(t)

	issued := httptest.NewRecorder()
	if err := h.sessions.Issue(issued); err != nil {
		t.Fatal(err)
	}

	gate := middleware.NewAdminAuth(h.sessions)
	called := false
	protected := gate.Protect(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	for _, c := range issued.Result().Cookies() {
		req.AddCookie(c)
	}
	protected.ServeHTTP(httptest.NewRecorder(), req)

	if !called {
		t.Error("authenticated request did not reach the handler")
	}
}

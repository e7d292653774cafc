package handler

import (
	"net/url"
	"testing"

	"bio-page/model"
	"bio-page/utils"
)

func TestUpdatePasswordRotation(t *testing.T) {
	h, st, _ := newTestHandler(t)

	form := url.Values{
		"current_password": {model.DefaultAdminPassword},
		"new_password":     {"fresh-secret"},
		"confirm_password": {"fresh-secret"},
	}
	w := postForm(t, h.UpdatePassword, "/admin/update/password", form)
	wantRedirect(t, w, "/admin/dashboard")

	got := st.Load().Admin.PasswordHash
	if got != utils.HashPassword("fresh-secret") {
		t.Error("stored digest does not match the new password")
	}
	if got == utils.HashPassword(model.DefaultAdminPassword) {
		t.Error("old password still authenticates after rotation")
	}
}

func TestUpdatePasswordRejectedChanges(t *testing.T) {
	tests := []struct {
		name    string
		current string
		newPass string
		confirm string
	}{
		{"Wrong current password", "not-the-password", "fresh-secret", "fresh-secret"},
		{"Mismatched confirmation", model.DefaultAdminPassword, "fresh-secret", "other"},
		{"Too short", model.DefaultAdminPassword, "abc", "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, st, _ := newTestHandler(t)
			before := st.Load().Admin.PasswordHash

			form := url.Values{
				"current_password": {tt.current},
				"new_password":     {tt.newPass},
				"confirm_password": {tt.confirm},
			}
			w := postForm(t, h.UpdatePassword, "/admin/update/password", form)
			wantRedirect(t, w, "/admin/dashboard")

			if got := st.Load().Admin.PasswordHash; got != before {
				t.Error("password digest changed despite failed validation")
			}
		})
	}
}

func TestUpdateEmail(t *testing.T) {
	h, st, _ := newTestHandler(t)

	w := postForm(t, h.UpdateEmail, "/admin/update/email", url.Values{"new_email": {"  new@example.com  "}})
	wantRedirect(t, w, "/admin/dashboard")
	if got := st.Load().Admin.Email; got != "new@example.com" {
		t.Errorf("email = %q, want trimmed submitted value", got)
	}
}

func TestUpdateEmailRejectsEmpty(t *testing.T) {
	h, st, _ := newTestHandler(t)
	before := st.Load().Admin.Email

	tests := []struct {
		name string
		form url.Values
	}{
		{"Empty value", url.Values{"new_email": {""}}},
		{"Whitespace only", url.Values{"new_email": {"   "}}},
		{"Field absent", url.Values{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postForm(t, h.UpdateEmail, "/admin/update/email", tt.form)
			wantRedirect(t, w, "/admin/dashboard")
			if got := st.Load().Admin.Email; got != before {
				t.Errorf("email = %q, want unchanged %q", got, before)
			}
		})
	}
}

package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"bio-page/model"
	"bio-page/utils"
)

// UpdatePassword handles POST /admin/update/password. Rotation requires the
// current password, and matching new/confirm values of at least the minimum
// length; any failed check leaves the stored digest untouched.
func (h *BioHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	current := r.FormValue("current_password")
	newPassword := r.FormValue("new_password")
	confirm := r.FormValue("confirm_password")

	_, err := h.store.Update(func(rec *model.Record) error {
		if err := utils.ValidatePasswordChange(rec.Admin.PasswordHash, current, newPassword, confirm); err != nil {
			return err
		}
		rec.Admin.PasswordHash = utils.HashPassword(newPassword)
		return nil
	})
	if err != nil {
		if msg, ok := validationMessage(err); ok {
			addFlash(w, r, msg, flashError)
			http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
			return
		}
		h.finishUpdate(w, r, err, "")
		return
	}

	log.Info().Msg("Admin password changed")
	h.finishUpdate(w, r, nil, "Password changed successfully!")
}

// UpdateEmail handles POST /admin/update/email. Only a non-empty value is
// required; the caller is already authenticated.
func (h *BioHandler) UpdateEmail(w http.ResponseWriter, r *http.Request) {
	newEmail := strings.TrimSpace(r.FormValue("new_email"))
	if newEmail == "" {
		addFlash(w, r, "Email cannot be empty!", flashError)
		http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
		return
	}

	_, err := h.store.Update(func(rec *model.Record) error {
		rec.Admin.Email = newEmail
		return nil
	})
	h.finishUpdate(w, r, err, fmt.Sprintf("Admin email updated to %s!", newEmail))
}

// validationMessage maps credential validation errors to the one-line
// status shown on the dashboard.
func validationMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, utils.ErrWrongCurrentPassword):
		return "Current password is incorrect!", true
	case errors.Is(err, utils.ErrPasswordMismatch):
		return "New passwords do not match!", true
	case errors.Is(err, utils.ErrPasswordTooShort):
		return fmt.Sprintf("Password must be at least %d characters!", utils.MinPasswordLength), true
	}
	return "", false
}

package handler

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"bio-page/model"
	"bio-page/utils"
)

// formField returns the submitted value for key, or current when the field
// was not part of the submission. An absent field means "leave unchanged";
// an empty submitted field overwrites with the empty string.
func formField(r *http.Request, key, current string) string {
	if vals, ok := r.Form[key]; ok && len(vals) > 0 {
		return vals[0]
	}
	return current
}

// checkboxOn reports whether an HTML checkbox was checked. Unchecked boxes
// submit nothing at all, so an absent field means false here, not
// "unchanged" as with every other field.
func checkboxOn(r *http.Request, key string) bool {
	return r.FormValue(key) == "on"
}

// finishUpdate persists nothing itself; it just turns the outcome of an
// update into a status flash and sends the client back to the dashboard.
func (h *BioHandler) finishUpdate(w http.ResponseWriter, r *http.Request, err error, success string) {
	if err != nil {
		log.Error().Err(err).Str("path", r.URL.Path).Msg("Failed to save record")
		addFlash(w, r, "Failed to save changes!", flashError)
	} else {
		addFlash(w, r, success, flashSuccess)
	}
	http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
}

// UpdateProfile handles POST /admin/update/profile.
func (h *BioHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	r.ParseForm()
	_, err := h.store.Update(func(rec *model.Record) error {
		p := &rec.Profile
		p.Name = formField(r, "name", p.Name)
		p.Tagline = formField(r, "tagline", p.Tagline)
		p.About = formField(r, "about", p.About)
		p.ProfilePic = formField(r, "profile_pic", p.ProfilePic)
		p.BackgroundVideo = formField(r, "background_video", p.BackgroundVideo)
		return nil
	})
	h.finishUpdate(w, r, err, "Profile updated successfully!")
}

// UpdateBio handles POST /admin/update/bio. Only bio keys already present
// in the record are updated; the form cannot add or remove keys. A
// non-empty skills string fully replaces the skills list.
func (h *BioHandler) UpdateBio(w http.ResponseWriter, r *http.Request) {
	r.ParseForm()
	_, err := h.store.Update(func(rec *model.Record) error {
		for key := range rec.BioInfo {
			if vals, ok := r.Form[key]; ok && len(vals) > 0 {
				rec.BioInfo[key] = vals[0]
			}
		}
		if raw := r.FormValue("skills"); raw != "" {
			rec.Skills = utils.ParseSkills(raw)
		}
		return nil
	})
	h.finishUpdate(w, r, err, "Bio info updated!")
}

// UpdateSocials handles POST /admin/update/socials. It iterates the
// existing link keys, never adding new ones. Label and URL follow the
// absent-means-unchanged rule; the enabled flag is always recomputed from
// the checkbox marker.
func (h *BioHandler) UpdateSocials(w http.ResponseWriter, r *http.Request) {
	r.ParseForm()
	_, err := h.store.Update(func(rec *model.Record) error {
		for key, link := range rec.SocialLinks {
			link.Label = formField(r, key+"_label", link.Label)
			link.URL = formField(r, key+"_url", link.URL)
			link.Enabled = checkboxOn(r, key+"_enabled")
			rec.SocialLinks[key] = link
		}
		return nil
	})
	h.finishUpdate(w, r, err, "Social links updated!")
}

// UpdateSecondDev handles POST /admin/update/second_dev.
func (h *BioHandler) UpdateSecondDev(w http.ResponseWriter, r *http.Request) {
	r.ParseForm()
	_, err := h.store.Update(func(rec *model.Record) error {
		sd := &rec.SecondDeveloper
		sd.Enabled = checkboxOn(r, "enabled")
		sd.Name = formField(r, "name", sd.Name)
		sd.About = formField(r, "about", sd.About)
		sd.ProfilePic = formField(r, "profile_pic", sd.ProfilePic)
		sd.SocialURL = formField(r, "social_url", sd.SocialURL)
		if raw := r.FormValue("skills"); raw != "" {
			sd.Skills = utils.ParseSkills(raw)
		}
		return nil
	})
	h.finishUpdate(w, r, err, "Second developer updated!")
}

// UpdateMusic handles POST /admin/update/music.
func (h *BioHandler) UpdateMusic(w http.ResponseWriter, r *http.Request) {
	r.ParseForm()
	_, err := h.store.Update(func(rec *model.Record) error {
		rec.Music.URL = formField(r, "music_url", rec.Music.URL)
		rec.Music.Autoplay = checkboxOn(r, "autoplay")
		return nil
	})
	h.finishUpdate(w, r, err, "Music settings updated!")
}

// UpdateCustomCSS handles POST /admin/update/custom_css. The submitted
// style replaces the stored one verbatim; an absent field clears it.
func (h *BioHandler) UpdateCustomCSS(w http.ResponseWriter, r *http.Request) {
	r.ParseForm()
	_, err := h.store.Update(func(rec *model.Record) error {
		rec.CustomCSS = r.FormValue("custom_css")
		return nil
	})
	h.finishUpdate(w, r, err, "Custom CSS updated!")
}

// ResetData handles POST /admin/reset. The whole record is replaced with a
// fresh default record and persisted. Irreversible; any confirmation is a
// presentation concern.
func (h *BioHandler) ResetData(w http.ResponseWriter, r *http.Request) {
	err := h.store.Save(model.DefaultRecord())
	h.finishUpdate(w, r, err, "All data reset to defaults!")
}

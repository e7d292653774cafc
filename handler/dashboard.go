package handler

import (
	"net/http"
	"sort"

	"bio-page/model"
)

// dashboardPage is the template payload for the admin dashboard.
type dashboardPage struct {
	Record     *model.Record
	SocialKeys []string
	Flashes    []Flash
}

// Dashboard renders the admin editor with the current record.
func (h *BioHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	rec := h.store.Load()

	// Stable form ordering for the social link inputs.
	keys := make([]string, 0, len(rec.SocialLinks))
	for k := range rec.SocialLinks {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	h.render(w, "dashboard.html", dashboardPage{
		Record:     rec,
		SocialKeys: keys,
		Flashes:    consumeFlashes(w, r),
	})
}

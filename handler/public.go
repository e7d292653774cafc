package handler

import (
	"encoding/json"
	"html/template"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"bio-page/model"
)

// publicPage is the template payload for the public bio page.
type publicPage struct {
	Record *model.Record
	// CustomCSS is injected verbatim. The admin is the only author of this
	// field, so it is a documented trust boundary, not an escaping bug.
	CustomCSS template.CSS
}

// Index serves the public bio page. Every load counts as one visit and the
// new count is persisted before rendering; repeated loads by the same
// visitor are not deduplicated.
func (h *BioHandler) Index(w http.ResponseWriter, r *http.Request) {
	rec, err := h.store.Update(func(rec *model.Record) error {
		rec.VisitorCount++
		return nil
	})
	if err != nil {
		// The page still renders; only the counter bump is lost.
		log.Error().Err(err).Msg("Failed to persist visitor count")
	}

	h.render(w, "index.html", publicPage{
		Record:    rec,
		CustomCSS: template.CSS(rec.CustomCSS),
	})
}

// HealthCheck reports process liveness.
func (h *BioHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	})
}
